package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skystore/catalog/internal/core/domain"
	"github.com/skystore/catalog/internal/core/dto"
	"github.com/skystore/catalog/internal/core/logger"
	"github.com/skystore/catalog/internal/core/port"
	"github.com/skystore/catalog/internal/core/serviceerrors"
)

// CatalogService owns the in-memory catalog: the category list, the
// process-wide counters, and the ports for price confirmation and event
// notification.
type CatalogService struct {
	counters   *domain.Counters
	categories []*domain.Category
	confirmer  port.ConfirmationPort
	notifier   port.NotifierPort
	validate   *validator.Validate
}

func NewCatalogService(counters *domain.Counters, confirmer port.ConfirmationPort, notifier port.NotifierPort) *CatalogService {
	return &CatalogService{
		counters:  counters,
		confirmer: confirmer,
		notifier:  notifier,
		validate:  validator.New(),
	}
}

func (s *CatalogService) notify(ctx context.Context, event domain.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		logger.Error(ctx, "notifier: publish failed", err, map[string]any{
			"event": event.GetName(),
		})
	}
}

func buildProduct(record *dto.ProductRecord) (*domain.Product, error) {
	price := domain.Amount(record.Price)
	switch record.Kind {
	case "", string(domain.KindProduct):
		return domain.NewProduct(record.Name, record.Description, price, record.Quantity)
	case string(domain.KindSmartphone):
		return domain.NewSmartphone(record.Name, record.Description, price, record.Quantity, domain.SmartphoneSpec{
			Efficiency: record.Efficiency,
			Model:      record.Model,
			Memory:     record.Memory,
			Color:      record.Color,
		})
	case string(domain.KindLawnGrass):
		return domain.NewLawnGrass(record.Name, record.Description, price, record.Quantity, domain.LawnGrassSpec{
			Country:           record.Country,
			GerminationPeriod: record.GerminationPeriod,
			Color:             record.Color,
		})
	default:
		return nil, serviceerrors.NewInvalidArgumentError(fmt.Sprintf("unknown product kind %q", record.Kind))
	}
}

// CreateCategory validates the record, constructs its products, and registers
// the new category.
func (s *CatalogService) CreateCategory(ctx context.Context, record *dto.CategoryRecord) (*domain.Category, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, serviceerrors.NewInvalidArgumentError(err.Error())
	}

	products := make([]*domain.Product, 0, len(record.Products))
	for i := range record.Products {
		product, err := buildProduct(&record.Products[i])
		if err != nil {
			logger.Error(ctx, "catalog: build product failed", err, map[string]any{
				"category": record.Name,
				"product":  record.Products[i].Name,
			})
			return nil, err
		}
		s.notify(ctx, domain.NewProductCreatedEvent(product))
		products = append(products, product)
	}

	category, err := domain.NewCategory(record.Name, record.Description, s.counters, products...)
	if err != nil {
		logger.Error(ctx, "catalog: create category failed", err, map[string]any{
			"category": record.Name,
		})
		return nil, err
	}

	s.categories = append(s.categories, category)
	logger.Info(ctx, "Category created", map[string]any{
		"category": category.Name,
		"products": category.Len(),
	})
	return category, nil
}

// ImportRecords runs loader output through CreateCategory and returns the
// constructed categories.
func (s *CatalogService) ImportRecords(ctx context.Context, records []dto.CategoryRecord) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(records))
	for i := range records {
		category, err := s.CreateCategory(ctx, &records[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// AddProduct applies the merge-on-name policy inside the named category: an
// existing product absorbs the record's quantity and keeps the higher price;
// a new product is appended and counted.
func (s *CatalogService) AddProduct(ctx context.Context, categoryName string, record *dto.ProductRecord) (*domain.Product, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, serviceerrors.NewInvalidArgumentError(err.Error())
	}

	category, err := s.Category(categoryName)
	if err != nil {
		return nil, err
	}

	existing := category.Products()
	product, err := domain.NewOrUpdateProduct(record.Name, record.Description, domain.Amount(record.Price), record.Quantity, existing)
	if err != nil {
		logger.Error(ctx, "catalog: add product failed", err, map[string]any{
			"category": categoryName,
			"product":  record.Name,
		})
		return nil, err
	}

	merged := false
	for _, p := range existing {
		if p == product {
			merged = true
			break
		}
	}
	if !merged {
		if err := category.AddProduct(product); err != nil {
			logger.Error(ctx, "catalog: add product failed", err, map[string]any{
				"category": categoryName,
				"product":  product.Name,
			})
			return nil, err
		}
		s.notify(ctx, domain.NewProductCreatedEvent(product))
	}
	s.notify(ctx, domain.NewProductAddedEvent(category, product))

	logger.Info(ctx, "Product added", map[string]any{
		"category": categoryName,
		"product":  product.Name,
		"merged":   merged,
	})
	return product, nil
}

// ChangePrice sets a product's price, routing reductions through the
// confirmation port. The returned bool reports whether the price changed.
func (s *CatalogService) ChangePrice(ctx context.Context, categoryName, productName string, newPrice domain.Amount) (bool, error) {
	product, err := s.Product(categoryName, productName)
	if err != nil {
		return false, err
	}

	changed, err := product.SetPrice(ctx, newPrice, func(ctx context.Context, from, to domain.Amount) (bool, error) {
		return s.confirmer.Confirm(ctx, port.PriceReduction{
			ProductName: product.Name,
			From:        from,
			To:          to,
		})
	})
	if err != nil {
		logger.Error(ctx, "catalog: price change failed", err, map[string]any{
			"product":   productName,
			"new_price": float64(newPrice),
		})
		return false, err
	}

	if !changed {
		logger.Info(ctx, "Price change declined", map[string]any{
			"product": productName,
		})
		return false, nil
	}

	logger.Info(ctx, "Price changed", map[string]any{
		"product":   productName,
		"new_price": float64(newPrice),
	})
	return true, nil
}

func (s *CatalogService) Category(name string) (*domain.Category, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("category %q not found", name))
}

func (s *CatalogService) Product(categoryName, productName string) (*domain.Product, error) {
	category, err := s.Category(categoryName)
	if err != nil {
		return nil, err
	}
	for it := category.Iter(); ; {
		p, ok := it.Next()
		if !ok {
			break
		}
		if p.Name == productName {
			return p, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %q not found in category %q", productName, categoryName))
}

func (s *CatalogService) Categories() []*domain.Category {
	out := make([]*domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CatalogService) CategoryCount() int64 {
	return s.counters.CategoryCount()
}

func (s *CatalogService) ProductCount() int64 {
	return s.counters.ProductCount()
}
