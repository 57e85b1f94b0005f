package cache

import (
	"encoding/json"
	"fmt"

	"masterjacobs_backend/internal/models"
)

const snapshotKey = "catalog:snapshot"

// SaveCatalogSnapshot stores the last successfully loaded product set, with
// no TTL. It is the fallback when every CSV source fails on a later reload
// or restart.
func SaveCatalogSnapshot(products []models.CatalogProduct) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return Redis.Set(ctx, snapshotKey, data, 0).Err()
}

// LoadCatalogSnapshot restores the last good product set.
func LoadCatalogSnapshot() ([]models.CatalogProduct, error) {
	if Redis == nil {
		return nil, fmt.Errorf("redis inte tillgänglig")
	}
	data, err := Redis.Get(ctx, snapshotKey).Result()
	if err != nil {
		return nil, err
	}
	var products []models.CatalogProduct
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("tom katalog i cache")
	}
	return products, nil
}
