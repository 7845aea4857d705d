package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/skystore/catalog/internal/core/port"
)

// Confirmer asks a yes/no question on the terminal before a price reduction
// goes through. Reader and writer are injected so the adapter stays testable
// without real interactive input.
type Confirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func NewConfirmer(in io.Reader, out io.Writer, assumeYes bool) port.ConfirmationPort {
	return &Confirmer{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

func (c *Confirmer) Confirm(ctx context.Context, reduction port.PriceReduction) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := fmt.Fprintf(c.out, "Цена товара %s будет понижена с %v до %v. Подтвердите действие (y/n): ",
		reduction.ProductName, float64(reduction.From), float64(reduction.To))
	if err != nil {
		return false, err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
