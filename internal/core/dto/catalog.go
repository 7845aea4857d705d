package dto

// ProductRecord is the raw catalog shape of a product. Kind is optional and
// defaults to a plain product; smartphone and lawn grass records carry their
// extra fields alongside the base four.
type ProductRecord struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`

	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=product smartphone lawn_grass"`

	Efficiency        float64 `json:"efficiency,omitempty" validate:"omitempty,gt=0"`
	Model             string  `json:"model,omitempty"`
	Memory            int     `json:"memory,omitempty" validate:"omitempty,gte=0"`
	Color             string  `json:"color,omitempty"`
	Country           string  `json:"country,omitempty"`
	GerminationPeriod int     `json:"germination_period,omitempty" validate:"omitempty,gte=0"`
}

type CategoryRecord struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Products    []ProductRecord `json:"products" validate:"omitempty,dive"`
}
