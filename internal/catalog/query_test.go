package catalog

import (
	"fmt"
	"testing"

	"masterjacobs_backend/internal/models"
)

func queryStore() *Store {
	s := newTestStore()
	s.Replace([]models.CatalogProduct{
		{ID: "kanelbulle-standard-1", Name: "Kanelbulle", Slug: "kanelbulle-standard", Category: "Fika", Description: "Nybakad bulle", Price: 25, InStock: true},
		{ID: "chokladboll-strossel-2", Name: "Chokladboll", Slug: "chokladboll-strossel", Category: "Fika", Description: "Klassisk chokladboll", Price: 20, InStock: true, Featured: true},
		{ID: "prinsesstarta-6-bitar-3", Name: "Prinsesstårta", Slug: "prinsesstarta-6-bitar", Category: "Tårtor & bakelser", Description: "Grön marsipan", Price: 149, InStock: true, Featured: true},
		{ID: "ragbrod-stor-4", Name: "Rågbröd", Slug: "ragbrod-stor", Category: "Matbröd/Bullar", Description: "Dagligt bakat bröd", Price: 45, InStock: false},
	})
	return s
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := queryStore()
	got := s.Search("kanel")
	if len(got) != 1 || got[0].Name != "Kanelbulle" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(s.Search("KANEL")) != 1 {
		t.Fatalf("search should be case-insensitive")
	}
}

func TestSearchCoversDescriptionAndCategory(t *testing.T) {
	s := queryStore()
	if got := s.Search("marsipan"); len(got) != 1 || got[0].Name != "Prinsesstårta" {
		t.Fatalf("description not searched: %+v", got)
	}
	if got := s.Search("fika"); len(got) != 2 {
		t.Fatalf("category not searched, got %d", len(got))
	}
}

func TestEmptyQueryMeansNoTextFilter(t *testing.T) {
	s := queryStore()
	if got := s.Filter(Filters{Query: ""}); len(got) != 4 {
		t.Fatalf("empty query must match everything, got %d", len(got))
	}
}

func TestCategoryDualMatch(t *testing.T) {
	s := queryStore()
	bySlug := s.ProductsByCategory("tartor-bakelser")
	byName := s.ProductsByCategory("Tårtor & bakelser")
	if len(bySlug) != 1 || len(byName) != 1 || bySlug[0].ID != byName[0].ID {
		t.Fatalf("slug and raw-name keys must match the same set: %d vs %d", len(bySlug), len(byName))
	}
}

func TestPriceRangeInclusive(t *testing.T) {
	s := queryStore()
	min, max := 20, 25
	got := s.Filter(Filters{MinPrice: &min, MaxPrice: &max})
	if len(got) != 2 {
		t.Fatalf("bounds must be inclusive, got %d products", len(got))
	}
}

func TestFilterComposition(t *testing.T) {
	s := queryStore()
	all := s.Products()
	fika := s.Filter(Filters{Category: "Fika"})
	fikaFeatured := s.Filter(Filters{Category: "Fika", Featured: boolPtr(true)})

	if !subset(fikaFeatured, fika) || !subset(fika, all) {
		t.Fatalf("composed filters must narrow: %d ⊄ %d ⊄ %d", len(fikaFeatured), len(fika), len(all))
	}
	if len(fikaFeatured) != 1 || fikaFeatured[0].Name != "Chokladboll" {
		t.Fatalf("unexpected composition result: %+v", fikaFeatured)
	}
}

func TestInStockFilter(t *testing.T) {
	s := queryStore()
	got := s.Filter(Filters{InStock: boolPtr(true)})
	if len(got) != 3 {
		t.Fatalf("expected 3 in-stock products, got %d", len(got))
	}
}

func TestPaginationCoverage(t *testing.T) {
	s := newTestStore()
	var products []models.CatalogProduct
	for i := 0; i < 25; i++ {
		products = append(products, models.CatalogProduct{
			ID:   fmt.Sprintf("produkt-%d", i),
			Name: fmt.Sprintf("Produkt %d", i),
		})
	}
	s.Replace(products)

	filtered := s.Filter(Filters{})
	perPage := 12
	pages := TotalPages(len(filtered), perPage)
	if pages != 3 {
		t.Fatalf("expected 3 pages, got %d", pages)
	}

	var rebuilt []models.CatalogProduct
	for page := 1; page <= pages; page++ {
		rebuilt = append(rebuilt, Paginate(filtered, page, perPage)...)
	}
	if len(rebuilt) != len(filtered) {
		t.Fatalf("pages concat to %d items, want %d", len(rebuilt), len(filtered))
	}
	for i := range rebuilt {
		if rebuilt[i].ID != filtered[i].ID {
			t.Fatalf("page order diverged at %d: %q vs %q", i, rebuilt[i].ID, filtered[i].ID)
		}
	}
}

func TestPaginationEdges(t *testing.T) {
	if TotalPages(0, 12) != 0 {
		t.Fatalf("zero items must mean zero pages")
	}
	s := queryStore()
	if got := Paginate(s.Products(), 99, 12); len(got) != 0 {
		t.Fatalf("page past the end must be empty, got %d", len(got))
	}
	if got := Paginate(s.Products(), 0, 12); len(got) != 4 {
		t.Fatalf("page below 1 is treated as the first page, got %d", len(got))
	}
}

func subset(small, big []models.CatalogProduct) bool {
	ids := make(map[string]bool, len(big))
	for _, p := range big {
		ids[p.ID] = true
	}
	for _, p := range small {
		if !ids[p.ID] {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool { return &b }
