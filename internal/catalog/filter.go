package catalog

import (
	"strings"

	"github.com/mvaldez/catalogo/internal/domain/product"
)

// CategoryAll is the sentinel filter value matching every category.
const CategoryAll = "all"

// Filter returns the products matching both the search term and the category
// filter, preserving input order. A product matches when the category filter
// is CategoryAll or equals the product's category exactly, and its name
// contains the search term case-insensitively. The empty search term matches
// everything. Pure and stateless; safe to call on every keystroke.
func Filter(products []product.Product, search, category string) []product.Product {
	term := strings.ToLower(search)

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category.String() != category {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
