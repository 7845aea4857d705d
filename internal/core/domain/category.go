package domain

import (
	"fmt"

	"github.com/skystore/catalog/internal/core/serviceerrors"
)

// Category is a named grouping of products. Adding a product bumps the
// process-wide product counter exactly once per successful add; a rejected
// product is neither stored nor counted. (The historical behavior counted and
// stored rejected zero-quantity products through a finally block; that was a
// bug, not a contract.)
type Category struct {
	Name        string
	Description string
	products    []*Product
	counters    *Counters
}

func NewCategory(name, description string, counters *Counters, products ...*Product) (*Category, error) {
	if name == "" {
		return nil, serviceerrors.NewInvalidArgumentError("category name must be a non-empty string")
	}
	if description == "" {
		return nil, serviceerrors.NewInvalidArgumentError("category description must be a non-empty string")
	}
	if counters == nil {
		return nil, serviceerrors.NewInvalidArgumentError("category requires a counters reference")
	}

	c := &Category{Name: name, Description: description, counters: counters}
	for _, p := range products {
		if err := c.AddProduct(p); err != nil {
			return nil, err
		}
	}

	counters.addCategory()
	return c, nil
}

// ValidateProduct is the add-time validation hook: a product must exist and
// must have stock to sell.
func (c *Category) ValidateProduct(product *Product) error {
	if product == nil {
		return serviceerrors.NewInvalidArgumentError("product must not be nil")
	}
	if product.Quantity == 0 {
		return serviceerrors.NewZeroQuantityError("a product with zero quantity cannot be added")
	}
	return nil
}

func (c *Category) AddProduct(product *Product) error {
	if err := c.ValidateProduct(product); err != nil {
		return err
	}
	c.products = append(c.products, product)
	c.counters.addProduct()
	return nil
}

// Len is the number of distinct products currently held.
func (c *Category) Len() int {
	return len(c.products)
}

// Products returns a copy of the held products in insertion order.
func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Iter returns a fresh single-pass iterator over the category's products in
// insertion order. Each call starts a new pass.
func (c *Category) Iter() *CategoryIterator {
	return &CategoryIterator{category: c}
}

type CategoryIterator struct {
	category *Category
	index    int
}

// Next yields the next product, reporting false once the pass is exhausted.
func (it *CategoryIterator) Next() (*Product, bool) {
	if it.index >= len(it.category.products) {
		return nil, false
	}
	p := it.category.products[it.index]
	it.index++
	return p, true
}

// CalculateTotal sums stock quantity across all held products.
func (c *Category) CalculateTotal() Amount {
	var total Amount
	for _, p := range c.products {
		total += Amount(p.Quantity)
	}
	return total
}

// AveragePrice is the arithmetic mean price of the held products, 0 for an
// empty category.
func (c *Category) AveragePrice() Amount {
	if len(c.products) == 0 {
		return 0
	}
	var sum Amount
	for _, p := range c.products {
		sum = sum.Add(p.Price())
	}
	return sum / Amount(len(c.products))
}

func (c *Category) DisplayInfo() string {
	return fmt.Sprintf("%s, количество продуктов: %d", c.Name, int(c.CalculateTotal()))
}

func (c *Category) String() string {
	return c.DisplayInfo()
}
