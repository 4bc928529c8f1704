package event

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/hothifafawaz/restoflow/pkg/common/domain"
)

// LogDispatcher writes every domain event to the structured log. Events
// are observational only; a dispatch can never fail a mutation.
type LogDispatcher struct {
	logger *log.Logger
}

var _ domain.EventDispatcher = &LogDispatcher{}

func NewLogDispatcher(logger *log.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event domain.Event) error {
	d.logger.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": fmt.Sprintf("%+v", event),
	}).Info("domain event")
	return nil
}
