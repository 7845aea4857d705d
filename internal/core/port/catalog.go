package port

import (
	"context"

	"github.com/skystore/catalog/internal/core/dto"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CatalogPort supplies raw category records from some external source.
type CatalogPort interface {
	Load(ctx context.Context) ([]dto.CategoryRecord, error)
}
