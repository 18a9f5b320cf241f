package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mvaldez/catalogo/internal/domain/product"
)

func testProducts() []product.Product {
	price := decimal.NewFromInt(10)
	return []product.Product{
		{ID: "1", Name: "Smart TV", Price: price, Category: product.CategoryTechnology},
		{ID: "2", Name: "Zapatillas Running", Price: price, Category: product.CategorySports},
		{ID: "3", Name: "Smartphone", Price: price, Category: product.CategoryTechnology},
	}
}

func TestFilter(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{
			name:     "empty search and all categories returns input unchanged",
			search:   "",
			category: CategoryAll,
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "case-insensitive substring match",
			search:   "smart",
			category: CategoryAll,
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "category exact match",
			search:   "",
			category: "Sports",
			wantIDs:  []string{"2"},
		},
		{
			name:     "search and category combined",
			search:   "phone",
			category: "Technology",
			wantIDs:  []string{"3"},
		},
		{
			name:     "no match",
			search:   "drone",
			category: CategoryAll,
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.search, tt.category)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_IdentityPreservesOrder(t *testing.T) {
	products := testProducts()
	got := Filter(products, "", CategoryAll)
	assert.Equal(t, products, got)
}
