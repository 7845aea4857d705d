package domain

import (
	"fmt"

	"github.com/skystore/catalog/internal/core/serviceerrors"
)

// Order reserves a quantity of an existing product. The order holds a
// non-owning reference: creating or resizing it mutates the product's stock
// directly, so the owning category sees the decrement too. There is no
// restock on discard.
type Order struct {
	product  *Product
	quantity int
	total    Amount
}

func NewOrder(product *Product, quantity int) (*Order, error) {
	o := &Order{}
	if err := o.ValidateProduct(product); err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > product.Quantity {
		return nil, serviceerrors.NewInvalidArgumentError("invalid product quantity for order")
	}

	o.product = product
	o.quantity = quantity
	product.Quantity -= quantity
	o.total = o.CalculateTotal()
	return o, nil
}

func (o *Order) ValidateProduct(product *Product) error {
	if product == nil {
		return serviceerrors.NewMissingAttributeError("order requires a product with a price")
	}
	return nil
}

func (o *Order) Product() *Product {
	return o.product
}

func (o *Order) Quantity() int {
	return o.quantity
}

// UpdateQuantity resizes the order and adjusts the product's stock by the
// delta: growing the order decrements stock further, shrinking it restores
// stock. The new quantity must be coverable by current stock plus what this
// order already reserves.
func (o *Order) UpdateQuantity(newQuantity int) error {
	if newQuantity <= 0 {
		return serviceerrors.NewInvalidArgumentError("order quantity must be a positive number")
	}
	if newQuantity > o.quantity+o.product.Quantity {
		return serviceerrors.NewInvalidArgumentError("requested quantity exceeds available stock")
	}
	o.product.Quantity -= newQuantity - o.quantity
	o.quantity = newQuantity
	o.total = o.CalculateTotal()
	return nil
}

// CalculateTotal recomputes price times quantity on demand.
func (o *Order) CalculateTotal() Amount {
	return o.product.Price().Multiply(o.quantity)
}

// DisplayInfo formats the order using the total cached at the last mutation.
func (o *Order) DisplayInfo() string {
	return fmt.Sprintf("Заказ: %s × %d = %.2f ₽", o.product.Name, o.quantity, float64(o.total))
}

func (o *Order) String() string {
	return o.DisplayInfo()
}
