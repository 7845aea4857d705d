package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skystore/catalog/internal/core/dto"
	"github.com/skystore/catalog/internal/core/port"
)

// Loader reads catalog records from a JSON file shaped as a top-level array
// of category objects, each with a products array.
type Loader struct {
	path string
}

func NewLoader(path string) port.CatalogPort {
	return &Loader{path: path}
}

func (l *Loader) Load(ctx context.Context) ([]dto.CategoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var records []dto.CategoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return records, nil
}
