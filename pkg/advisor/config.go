package advisor

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the generative-text service settings. An empty APIKey is a
// valid configuration: the client then answers every request with its
// fallback strings and never goes to the network.
type Config struct {
	APIKey  string        `envconfig:"AI_API_KEY"`
	BaseURL string        `envconfig:"AI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model   string        `envconfig:"AI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"AI_TIMEOUT" default:"15s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("restoflow", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
