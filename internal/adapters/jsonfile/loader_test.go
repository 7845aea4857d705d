package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/skystore/catalog/internal/adapters/jsonfile"
)

func TestLoader_Load(t *testing.T) {
	loader := jsonfile.NewLoader(filepath.Join("testdata", "catalog.json"))

	records, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 category records, got %d", len(records))
	}

	first := records[0]
	if first.Name != "Смартфоны" {
		t.Fatalf("expected category 'Смартфоны', got %q", first.Name)
	}
	if len(first.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(first.Products))
	}
	if first.Products[0].Price != 180000.0 {
		t.Fatalf("expected price 180000, got %v", first.Products[0].Price)
	}

	phone := first.Products[1]
	if phone.Kind != "smartphone" {
		t.Fatalf("expected kind 'smartphone', got %q", phone.Kind)
	}
	if phone.Memory != 512 || phone.Model != "15 Pro" {
		t.Fatalf("unexpected smartphone fields %+v", phone)
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := jsonfile.NewLoader(filepath.Join("testdata", "nonexistent.json"))

	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := jsonfile.NewLoader(path)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	loader := jsonfile.NewLoader(filepath.Join("testdata", "catalog.json"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.Load(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
