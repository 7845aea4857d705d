package notify

import (
	"context"

	"github.com/skystore/catalog/internal/core/domain"
)

// MemoryNotifier records events in order of arrival. Intended for tests and
// for inspecting a run after the fact.
type MemoryNotifier struct {
	events []domain.Event
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (n *MemoryNotifier) Notify(_ context.Context, event domain.Event) error {
	n.events = append(n.events, event)
	return nil
}

func (n *MemoryNotifier) Events() []domain.Event {
	out := make([]domain.Event, len(n.events))
	copy(out, n.events)
	return out
}
