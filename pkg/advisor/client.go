package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

// Fallback strings returned whenever the external service is unreachable
// or not configured. Advisory calls never surface an error to the caller.
const (
	fallbackNotConfigured = "The AI assistant is not available right now."
	fallbackPairing       = "The chef's suggestion cannot be fetched right now."
	fallbackMenuOffline   = "Sorry, I cannot reach the menu right now."
	fallbackMenuError     = "I had trouble reaching the kitchen. Please check the menu list instead."
)

// Client talks to a generative-language generateContent endpoint. It
// implements model.Advisor: every method resolves to a string, degrading
// to a fallback on any failure.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *log.Logger
}

var _ model.Advisor = &Client{}

func NewClient(cfg Config, logger *log.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) SuggestPairing(ctx context.Context, selected []model.MenuItem, targetCategory string) string {
	if c.cfg.APIKey == "" {
		return fallbackNotConfigured
	}

	names := make([]string, 0, len(selected))
	for _, item := range selected {
		names = append(names, item.Name)
	}
	ordered := strings.Join(names, ", ")
	if ordered == "" {
		ordered = "nothing yet"
	}

	prompt := fmt.Sprintf(
		"You are a Michelin-starred chef at an upscale restaurant. "+
			"The guest has ordered: %s. "+
			"Recommend one special item from the %s category that pairs with their current selection "+
			"(or make a general recommendation if nothing has been ordered yet). "+
			"Be short, elegant and persuasive, two sentences at most. Return plain text only.",
		ordered, targetCategory,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.WithError(err).Warn("pairing suggestion failed")
		return fallbackPairing
	}
	return text
}

func (c *Client) CharacterizeOrder(ctx context.Context, summary string) string {
	if c.cfg.APIKey == "" {
		return ""
	}

	prompt := fmt.Sprintf(
		"Look at this order and make a playful, one-line remark about the mood of the meal "+
			"(for example: 'A romantic dinner!', 'A feast fit for royalty!'): %s",
		summary,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.WithError(err).Warn("order characterization failed")
		return ""
	}
	return text
}

func (c *Client) AnswerMenuQuestion(ctx context.Context, question string, menu []model.MenuItem) string {
	if c.cfg.APIKey == "" {
		return fallbackMenuOffline
	}

	lines := make([]string, 0, len(menu))
	for _, item := range menu {
		lines = append(lines, fmt.Sprintf("%s (%.2f, %s)", item.Name, item.Price, item.Description))
	}

	prompt := fmt.Sprintf(
		"You are a friendly and knowledgeable waiter at an upscale restaurant. "+
			"Here is the menu:\n%s\n\nThe guest asks: %q\n\n"+
			"Give an appetizing, helpful answer recommending specific items from the menu. "+
			"If the question is not about food or the menu, politely steer the guest back to the menu. "+
			"Do not use markdown; answer conversationally.",
		strings.Join(lines, "\n"), question,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.WithError(err).Warn("menu question failed")
		return fallbackMenuError
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call generate endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("generate endpoint returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "decode response")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("response contains no candidates")
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("response text is empty")
	}
	return text, nil
}
