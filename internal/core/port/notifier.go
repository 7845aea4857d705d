package port

import (
	"context"

	"github.com/skystore/catalog/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// NotifierPort is an append-only sink for catalog events. Delivery failures
// are logged by callers and never influence control flow.
type NotifierPort interface {
	Notify(ctx context.Context, event domain.Event) error
}
