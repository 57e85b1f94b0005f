package catalog

import (
	"strings"

	"masterjacobs_backend/internal/models"
)

// DefaultPageSize matches the product grid on the landing page.
const DefaultPageSize = 12

// Filters compose onto one filtered view. The zero value matches the whole
// catalog: an empty Query means no text filter at all, and the pointer
// fields are simply not applied when nil.
type Filters struct {
	Query    string
	Category string // raw category name or its slug
	MinPrice *int
	MaxPrice *int
	Featured *bool
	InStock  *bool
}

// Filter returns the products matching every active filter.
func (s *Store) Filter(f Filters) []models.CatalogProduct {
	products := s.Products()
	out := make([]models.CatalogProduct, 0, len(products))
	for _, p := range products {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.CatalogProduct, f Filters) bool {
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	if f.Category != "" && p.Category != f.Category && Slugify(p.Category) != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match over name, description
// and category.
func matchesQuery(p models.CatalogProduct, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Search returns products whose name, description or category contains the
// query, case-insensitively.
func (s *Store) Search(query string) []models.CatalogProduct {
	return s.Filter(Filters{Query: query})
}

// ProductsByCategory matches either the raw category name or its slug, so
// both kinds of callers keep working.
func (s *Store) ProductsByCategory(key string) []models.CatalogProduct {
	return s.Filter(Filters{Category: key})
}

// Featured returns the promoted products.
func (s *Store) Featured() []models.CatalogProduct {
	featured := true
	return s.Filter(Filters{Featured: &featured})
}

// TotalPages is ceil(total/perPage); an empty result has zero pages.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return (total + perPage - 1) / perPage
}

// Paginate slices one 1-indexed page out of items. A page past the end
// yields an empty slice rather than an error.
func Paginate(items []models.CatalogProduct, page, perPage int) []models.CatalogProduct {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []models.CatalogProduct{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
