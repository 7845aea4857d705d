package dto

type PlaceOrderRequest struct {
	Category string `json:"category" validate:"required"`
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}
