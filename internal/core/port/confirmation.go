package port

import (
	"context"

	"github.com/skystore/catalog/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// PriceReduction describes a proposed price decrease awaiting approval.
type PriceReduction struct {
	ProductName string
	From        domain.Amount
	To          domain.Amount
}

type ConfirmationPort interface {
	Confirm(ctx context.Context, reduction PriceReduction) (bool, error)
}
