package domain

import (
	"testing"

	"github.com/skystore/catalog/internal/core/serviceerrors"
)

func mustProduct(t *testing.T, name string, price Amount, quantity int) *Product {
	t.Helper()
	p, err := NewProduct(name, "описание", price, quantity)
	if err != nil {
		t.Fatalf("failed to build product %s: %v", name, err)
	}
	return p
}

func TestNewCategory(t *testing.T) {
	counters := NewCounters()
	p1 := mustProduct(t, "iPhone 14", 79990.0, 10)
	p2 := mustProduct(t, "Samsung S22", 69990.0, 15)

	category, err := NewCategory("Смартфоны", "Категория смартфонов", counters, p1, p2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if category.Name != "Смартфоны" {
		t.Fatalf("expected name 'Смартфоны', got %q", category.Name)
	}
	if category.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", category.Len())
	}
	if counters.CategoryCount() != 1 {
		t.Fatalf("expected 1 category counted, got %d", counters.CategoryCount())
	}
	if counters.ProductCount() != 2 {
		t.Fatalf("expected 2 products counted, got %d", counters.ProductCount())
	}
}

func TestNewCategory_Empty(t *testing.T) {
	counters := NewCounters()
	category, err := NewCategory("Планшеты", "Категория планшетов", counters)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if category.Len() != 0 {
		t.Fatalf("expected 0 products, got %d", category.Len())
	}
	if counters.CategoryCount() != 1 {
		t.Fatalf("expected 1 category counted, got %d", counters.CategoryCount())
	}
	if counters.ProductCount() != 0 {
		t.Fatalf("expected 0 products counted, got %d", counters.ProductCount())
	}
}

func TestNewCategory_Invalid(t *testing.T) {
	counters := NewCounters()

	tests := []struct {
		name         string
		categoryName string
		description  string
	}{
		{"empty name", "", "desc"},
		{"empty description", "Смартфоны", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCategory(tt.categoryName, tt.description, counters); !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidArgument) {
				t.Fatalf("expected invalid argument error, got %v", err)
			}
		})
	}

	t.Run("nil product element", func(t *testing.T) {
		if _, err := NewCategory("Смартфоны", "desc", counters, nil); !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidArgument) {
			t.Fatalf("expected invalid argument error, got %v", err)
		}
	})

	t.Run("nil counters", func(t *testing.T) {
		if _, err := NewCategory("Смартфоны", "desc", nil); !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidArgument) {
			t.Fatalf("expected invalid argument error, got %v", err)
		}
	})

	if counters.CategoryCount() != 0 {
		t.Fatalf("expected no categories counted after failures, got %d", counters.CategoryCount())
	}
}

func TestCategory_AddProduct(t *testing.T) {
	counters := NewCounters()
	category, err := NewCategory("Смартфоны", "desc", counters)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	p := mustProduct(t, "Xiaomi 13", 49990.0, 20)
	if err := category.AddProduct(p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if category.Len() != 1 {
		t.Fatalf("expected 1 product, got %d", category.Len())
	}
	if counters.ProductCount() != 1 {
		t.Fatalf("expected 1 product counted, got %d", counters.ProductCount())
	}

	t.Run("zero quantity rejected and not counted", func(t *testing.T) {
		zero := mustProduct(t, "Пустой", 100, 0)
		err := category.AddProduct(zero)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindZeroQuantity) {
			t.Fatalf("expected zero quantity error, got %v", err)
		}
		if category.Len() != 1 {
			t.Fatalf("expected collection unchanged, got %d products", category.Len())
		}
		if counters.ProductCount() != 1 {
			t.Fatalf("expected counter unchanged, got %d", counters.ProductCount())
		}
	})

	t.Run("nil product rejected", func(t *testing.T) {
		if err := category.AddProduct(nil); !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidArgument) {
			t.Fatalf("expected invalid argument error, got %v", err)
		}
	})
}

func TestCounters_SharedAcrossCategories(t *testing.T) {
	counters := NewCounters()

	if _, err := NewCategory("Ноутбуки", "desc", counters, mustProduct(t, "A", 100, 1)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := NewCategory("Планшеты", "desc", counters, mustProduct(t, "B", 100, 1), mustProduct(t, "C", 100, 1)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if counters.CategoryCount() != 2 {
		t.Fatalf("expected 2 categories, got %d", counters.CategoryCount())
	}
	if counters.ProductCount() != 3 {
		t.Fatalf("expected 3 products, got %d", counters.ProductCount())
	}
}

func TestCategory_Iter(t *testing.T) {
	counters := NewCounters()
	p1 := mustProduct(t, "A", 100, 1)
	p2 := mustProduct(t, "B", 200, 2)
	p3 := mustProduct(t, "C", 300, 3)
	category, err := NewCategory("Смартфоны", "desc", counters, p1, p2, p3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	it := category.Iter()
	var names []string
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Fatalf("expected insertion order [A B C], got %v", names)
	}

	// exhausted iterator stays exhausted
	if _, ok := it.Next(); ok {
		t.Fatal("expected exhausted iterator to return false")
	}

	// a fresh iterator starts a new pass
	if p, ok := category.Iter().Next(); !ok || p.Name != "A" {
		t.Fatalf("expected fresh iterator to restart at A, got %v (ok=%v)", p, ok)
	}
}

func TestCategory_Products_ReturnsCopy(t *testing.T) {
	counters := NewCounters()
	category, _ := NewCategory("Смартфоны", "desc", counters, mustProduct(t, "A", 100, 1))

	products := category.Products()
	products[0] = nil
	if got := category.Products()[0]; got == nil || got.Name != "A" {
		t.Fatal("expected internal collection to be unaffected by mutation of the copy")
	}
}

func TestCategory_AveragePrice(t *testing.T) {
	counters := NewCounters()

	t.Run("empty category returns zero", func(t *testing.T) {
		category, _ := NewCategory("Пустая", "desc", counters)
		if got := category.AveragePrice(); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("mean of prices", func(t *testing.T) {
		category, _ := NewCategory("Смартфоны", "desc", counters,
			mustProduct(t, "A", 4000, 1),
			mustProduct(t, "B", 2000, 1),
		)
		if got := category.AveragePrice(); got != 3000.0 {
			t.Fatalf("expected 3000, got %v", got)
		}
	})
}

func TestCategory_DisplayInfo(t *testing.T) {
	counters := NewCounters()
	category, _ := NewCategory("Электроника", "Техника для дома", counters,
		mustProduct(t, "A", 1000, 10),
		mustProduct(t, "B", 5000, 5),
	)

	want := "Электроника, количество продуктов: 15"
	if got := category.DisplayInfo(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := category.String(); got != want {
		t.Fatalf("expected String to match DisplayInfo, got %q", got)
	}
	if got := category.CalculateTotal(); got != 15 {
		t.Fatalf("expected total quantity 15, got %v", got)
	}
}
