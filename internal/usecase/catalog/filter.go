package catalog

import (
	"strings"

	dom "example.com/bookstore-storefront/internal/domain/catalog"
)

// AllCategories is the sentinel slug that passes every product through the
// category filter.
const AllCategories = "todas"

// Filter derives the visible product list from the full catalog. A product
// passes when it matches both the category filter and the search filter;
// result ordering is catalog order, never re-sorted.
//
// The category filter resolves the slug against the category list and
// compares numeric IDs; an unknown slug matches nothing. The search filter is
// a case-insensitive substring match on title or author; an empty term
// matches everything.
func Filter(products []dom.Product, categories []dom.Category, f dom.ListFilter) []dom.Product {
	var categoryID int64
	allCategories := f.CategorySlug == "" || f.CategorySlug == AllCategories
	if !allCategories {
		for _, c := range categories {
			if c.Slug == f.CategorySlug {
				categoryID = c.ID
				break
			}
		}
	}

	term := strings.ToLower(f.Search)

	out := make([]dom.Product, 0, len(products))
	for _, p := range products {
		if !allCategories && p.CategoryID != categoryID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Author), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
