package domain

// Amount is a money value in rubles. Catalog prices come from JSON as plain
// floats, so the value type wraps float64 rather than integer cents.
type Amount float64

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) Positive() bool {
	return a > 0
}

// Entity is the common contract of product-holding aggregates.
type Entity interface {
	ValidateProduct(product *Product) error
	CalculateTotal() Amount
	DisplayInfo() string
}

type Event interface {
	GetName() string
	GetEntityName() string
}
