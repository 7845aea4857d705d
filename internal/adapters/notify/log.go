package notify

import (
	"context"

	"github.com/skystore/catalog/internal/core/domain"
	"github.com/skystore/catalog/internal/core/logger"
	"github.com/skystore/catalog/internal/core/port"
)

// LogNotifier forwards catalog events to the structured logger. It is the
// default observability sink for the CLI.
type LogNotifier struct{}

func NewLogNotifier() port.NotifierPort {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event domain.Event) error {
	logger.Info(ctx, "Catalog event", map[string]any{
		"event":  event.GetName(),
		"entity": event.GetEntityName(),
	})
	return nil
}
