package domain

// Catalog events flow into the observability sink; they never influence
// control flow.

type ProductCreatedEvent struct {
	ProductName string `json:"product_name"`
	Kind        Kind   `json:"kind"`
}

func (e *ProductCreatedEvent) GetName() string {
	return "product.created"
}

func (e *ProductCreatedEvent) GetEntityName() string {
	return "product"
}

func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{ProductName: product.Name, Kind: product.Kind}
}

type ProductAddedEvent struct {
	CategoryName string `json:"category_name"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
}

func (e *ProductAddedEvent) GetName() string {
	return "product.added"
}

func (e *ProductAddedEvent) GetEntityName() string {
	return "category"
}

func NewProductAddedEvent(category *Category, product *Product) *ProductAddedEvent {
	return &ProductAddedEvent{
		CategoryName: category.Name,
		ProductName:  product.Name,
		Quantity:     product.Quantity,
	}
}

type OrderPlacedEvent struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

func (e *OrderPlacedEvent) GetName() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) GetEntityName() string {
	return "order"
}

func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		ProductName: order.Product().Name,
		Quantity:    order.Quantity(),
		Total:       float64(order.CalculateTotal()),
	}
}
