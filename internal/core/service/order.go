package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/skystore/catalog/internal/core/domain"
	"github.com/skystore/catalog/internal/core/dto"
	"github.com/skystore/catalog/internal/core/logger"
	"github.com/skystore/catalog/internal/core/port"
	"github.com/skystore/catalog/internal/core/serviceerrors"
)

// OrderService places orders against catalog products. An order reserves
// stock by decrementing the shared product instance, so the catalog reflects
// the reservation immediately.
type OrderService struct {
	catalog  *CatalogService
	notifier port.NotifierPort
	validate *validator.Validate
}

func NewOrderService(catalog *CatalogService, notifier port.NotifierPort) *OrderService {
	return &OrderService{
		catalog:  catalog,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, serviceerrors.NewInvalidArgumentError(err.Error())
	}

	product, err := s.catalog.Product(request.Category, request.Product)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(product, request.Quantity)
	if err != nil {
		logger.Error(ctx, "order: place failed", err, map[string]any{
			"product":  request.Product,
			"quantity": request.Quantity,
		})
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, domain.NewOrderPlacedEvent(order)); err != nil {
			logger.Error(ctx, "notifier: publish failed", err, map[string]any{
				"event": "order.placed",
			})
		}
	}

	logger.Info(ctx, "Order placed", map[string]any{
		"product":  product.Name,
		"quantity": order.Quantity(),
		"total":    float64(order.CalculateTotal()),
	})
	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, order *domain.Order, newQuantity int) error {
	if order == nil {
		return serviceerrors.NewInvalidArgumentError("order must not be nil")
	}

	if err := order.UpdateQuantity(newQuantity); err != nil {
		logger.Error(ctx, "order: update failed", err, map[string]any{
			"product":  order.Product().Name,
			"quantity": newQuantity,
		})
		return err
	}

	logger.Info(ctx, "Order updated", map[string]any{
		"product":  order.Product().Name,
		"quantity": order.Quantity(),
		"total":    float64(order.CalculateTotal()),
	})
	return nil
}
