package domain

import (
	"context"
	"fmt"

	"github.com/skystore/catalog/internal/core/serviceerrors"
)

type Kind string

const (
	KindProduct    Kind = "product"
	KindSmartphone Kind = "smartphone"
	KindLawnGrass  Kind = "lawn_grass"
)

// SmartphoneSpec carries the attributes specific to smartphone products.
type SmartphoneSpec struct {
	Efficiency float64
	Model      string
	Memory     int
	Color      string
}

// LawnGrassSpec carries the attributes specific to lawn grass products.
type LawnGrassSpec struct {
	Country           string
	GerminationPeriod int
	Color             string
}

// Product is a sellable catalog item. The concrete variant is tagged by Kind;
// exactly one of Smartphone/LawnGrass is set for the corresponding kind and
// both are nil for a plain product. Price and Quantity are shared mutable
// state: the owning Category and any Order referencing the product observe
// the same instance.
type Product struct {
	Kind        Kind
	Name        string
	Description string
	price       Amount
	Quantity    int

	Smartphone *SmartphoneSpec
	LawnGrass  *LawnGrassSpec
}

func validateBase(name, description string, price Amount, quantity int) error {
	if name == "" {
		return serviceerrors.NewInvalidArgumentError("product name must be a non-empty string")
	}
	if description == "" {
		return serviceerrors.NewInvalidArgumentError("product description must be a non-empty string")
	}
	if !price.Positive() {
		return serviceerrors.NewInvalidArgumentError("product price must be positive")
	}
	if quantity < 0 {
		return serviceerrors.NewInvalidArgumentError("product quantity must not be negative")
	}
	return nil
}

func NewProduct(name, description string, price Amount, quantity int) (*Product, error) {
	if err := validateBase(name, description, price, quantity); err != nil {
		return nil, err
	}
	return &Product{
		Kind:        KindProduct,
		Name:        name,
		Description: description,
		price:       price,
		Quantity:    quantity,
	}, nil
}

func NewSmartphone(name, description string, price Amount, quantity int, spec SmartphoneSpec) (*Product, error) {
	if err := validateBase(name, description, price, quantity); err != nil {
		return nil, err
	}
	if spec.Efficiency <= 0 {
		return nil, serviceerrors.NewInvalidArgumentError("smartphone efficiency must be positive")
	}
	if spec.Model == "" {
		return nil, serviceerrors.NewInvalidArgumentError("smartphone model must be a non-empty string")
	}
	if spec.Memory < 0 {
		return nil, serviceerrors.NewInvalidArgumentError("smartphone memory must not be negative")
	}
	if spec.Color == "" {
		return nil, serviceerrors.NewInvalidArgumentError("smartphone color must be a non-empty string")
	}
	return &Product{
		Kind:        KindSmartphone,
		Name:        name,
		Description: description,
		price:       price,
		Quantity:    quantity,
		Smartphone:  &spec,
	}, nil
}

func NewLawnGrass(name, description string, price Amount, quantity int, spec LawnGrassSpec) (*Product, error) {
	if err := validateBase(name, description, price, quantity); err != nil {
		return nil, err
	}
	if spec.Country == "" {
		return nil, serviceerrors.NewInvalidArgumentError("lawn grass country must be a non-empty string")
	}
	if spec.GerminationPeriod < 0 {
		return nil, serviceerrors.NewInvalidArgumentError("lawn grass germination period must not be negative")
	}
	if spec.Color == "" {
		return nil, serviceerrors.NewInvalidArgumentError("lawn grass color must be a non-empty string")
	}
	return &Product{
		Kind:        KindLawnGrass,
		Name:        name,
		Description: description,
		price:       price,
		Quantity:    quantity,
		LawnGrass:   &spec,
	}, nil
}

func (p *Product) Price() Amount {
	return p.price
}

// ConfirmReduction is the injected capability SetPrice consults before
// lowering a price. It must answer synchronously.
type ConfirmReduction func(ctx context.Context, from, to Amount) (bool, error)

// SetPrice validates and applies a price change. Raising the price (or
// keeping it equal) is unconditional. Lowering it is a two-phase operation:
// the confirmer is asked first, and on decline the price stays as it was.
// The returned bool reports whether the price actually changed.
func (p *Product) SetPrice(ctx context.Context, newPrice Amount, confirm ConfirmReduction) (bool, error) {
	if !newPrice.Positive() {
		return false, serviceerrors.NewInvalidArgumentError("product price must be positive")
	}
	if newPrice < p.price {
		if confirm == nil {
			return false, serviceerrors.NewMissingAttributeError("price reduction requires a confirmation capability")
		}
		ok, err := confirm(ctx, p.price, newPrice)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	changed := newPrice != p.price
	p.price = newPrice
	return changed, nil
}

// raisePrice bumps the price without confirmation; used by the merge-on-name
// factory, which never lowers a price.
func (p *Product) raisePrice(newPrice Amount) {
	if newPrice > p.price {
		p.price = newPrice
	}
}

// Combine returns the total stock value of two products of the same concrete
// variant: quantity*price summed over both operands. Mixing variants is a
// type mismatch; a smartphone cannot be combined with lawn grass or with a
// plain product.
func (p *Product) Combine(other *Product) (Amount, error) {
	if other == nil {
		return 0, serviceerrors.NewMissingAttributeError("cannot combine with a nil product")
	}
	if p.Kind != other.Kind {
		return 0, serviceerrors.NewTypeMismatchError(
			fmt.Sprintf("cannot combine %s with %s", p.Kind, other.Kind))
	}
	return p.price.Multiply(p.Quantity).Add(other.price.Multiply(other.Quantity)), nil
}

func (p *Product) String() string {
	return fmt.Sprintf("%s, %v руб. Остаток: %d", p.Name, float64(p.price), p.Quantity)
}

// NewOrUpdateProduct is the catalog's de-duplication policy. When a product
// with the same name already exists in the supplied collection it is merged
// into: quantity adds up and the price is raised if the record's is higher
// (never lowered, no confirmation), and the existing instance is returned.
// Otherwise a fresh validated product is built.
func NewOrUpdateProduct(name, description string, price Amount, quantity int, existing []*Product) (*Product, error) {
	if err := validateBase(name, description, price, quantity); err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p != nil && p.Name == name {
			p.Quantity += quantity
			p.raisePrice(price)
			return p, nil
		}
	}
	return NewProduct(name, description, price, quantity)
}
