package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"masterjacobs_backend/internal/models"
)

// Source supplies raw CSV text for one price list.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

type snapshot struct {
	products   []models.CatalogProduct
	categories []models.ProductCategory
}

// Store holds the current catalog snapshot. It is built explicitly and
// handed to its consumers; there is no package-level instance. Readers keep
// seeing the previous snapshot until a load replaces it whole.
type Store struct {
	norm Normalizer

	mu   sync.RWMutex
	snap snapshot
}

// NewStore returns an empty store that normalizes rows with norm.
func NewStore(norm Normalizer) *Store {
	return &Store{norm: norm}
}

// Load fetches every source concurrently, then joins results in source
// order so id derivation stays deterministic when the same product appears
// in two files. Sources that fail are logged and skipped; only when all of
// them fail does Load keep the previous snapshot and report an error.
func (s *Store) Load(ctx context.Context, sources ...Source) error {
	texts := make([]string, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			texts[i], errs[i] = src.Fetch(ctx)
		}(i, src)
	}
	wg.Wait()

	var rows []RawRow
	loaded := 0
	for i, src := range sources {
		if errs[i] != nil {
			log.Printf("⚠️ Källan %s kunde inte hämtas: %v", src.Name(), errs[i])
			continue
		}
		rows = append(rows, ParseCSV(texts[i])...)
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("catalog load: all %d sources failed", len(sources))
	}

	s.Replace(s.normalizeRows(rows))
	return nil
}

// normalizeRows maps rows to products, counting occurrences of each
// name+variant pair so exact duplicates get distinct ids.
func (s *Store) normalizeRows(rows []RawRow) []models.CatalogProduct {
	seen := make(map[string]int)
	products := make([]models.CatalogProduct, 0, len(rows))
	for _, row := range rows {
		key := row["name"] + "\x00" + row["variant"]
		products = append(products, s.norm.Normalize(row, seen[key]))
		seen[key]++
	}
	return products
}

// Replace installs a new product set atomically, recomputing categories.
// Used by Load and by callers restoring a cached or built-in catalog.
func (s *Store) Replace(products []models.CatalogProduct) {
	snap := snapshot{
		products:   products,
		categories: AggregateCategories(products),
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Products returns the current product snapshot.
func (s *Store) Products() []models.CatalogProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.products
}

// Categories returns the current category snapshot.
func (s *Store) Categories() []models.ProductCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.categories
}

// GetByID looks a product up by its derived id.
func (s *Store) GetByID(id string) (models.CatalogProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.snap.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.CatalogProduct{}, false
}

// GetBySlug looks a product up by its browsing slug.
func (s *Store) GetBySlug(slug string) (models.CatalogProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.snap.products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.CatalogProduct{}, false
}

// GetCategory looks a category up by slug or raw name.
func (s *Store) GetCategory(key string) (models.ProductCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.snap.categories {
		if c.Slug == key || c.Name == key {
			return c, true
		}
	}
	return models.ProductCategory{}, false
}
