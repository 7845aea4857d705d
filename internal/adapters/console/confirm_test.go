package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/skystore/catalog/internal/adapters/console"
	"github.com/skystore/catalog/internal/core/port"
)

func TestConfirmer_Confirm(t *testing.T) {
	reduction := port.PriceReduction{ProductName: "Хлеб", From: 100, To: 80}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y approves", "y\n", true},
		{"uppercase Y approves", "Y\n", true},
		{"n declines", "n\n", false},
		{"empty line declines", "\n", false},
		{"anything else declines", "да\n", false},
		{"whitespace around answer", "  y  \n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			confirmer := console.NewConfirmer(strings.NewReader(tt.input), &out, false)

			got, err := confirmer.Confirm(context.Background(), reduction)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if !strings.Contains(out.String(), "Хлеб") {
				t.Fatalf("expected prompt to mention the product, got %q", out.String())
			}
		})
	}
}

func TestConfirmer_AssumeYes(t *testing.T) {
	// no prompt, no read
	confirmer := console.NewConfirmer(strings.NewReader(""), &bytes.Buffer{}, true)

	got, err := confirmer.Confirm(context.Background(), port.PriceReduction{From: 100, To: 50})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got {
		t.Fatal("expected assumeYes to approve")
	}
}

func TestConfirmer_CancelledContext(t *testing.T) {
	confirmer := console.NewConfirmer(strings.NewReader("y\n"), &bytes.Buffer{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := confirmer.Confirm(ctx, port.PriceReduction{From: 100, To: 50}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
