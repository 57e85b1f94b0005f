package product

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
	"masterjacobs_backend/internal/catalog"
	"masterjacobs_backend/internal/search"
)

// Refresh re-runs the catalog load from the configured CSV sources, then
// reindexes search and stores the last-good snapshot. Used at startup and
// by the reload endpoint.
func (h *Handler) Refresh(ctx context.Context) error {
	if err := h.Store.Load(ctx, h.Sources...); err != nil {
		return err
	}

	products := h.Store.Products()
	cache.InvalidateCatalogCache()
	if err := cache.SaveCatalogSnapshot(products); err != nil {
		log.Printf("⚠️ Kunde inte spara katalog-snapshot: %v", err)
	}
	go search.IndexCatalog(products)

	log.Printf("✅ Katalog laddad: %d produkter, %d kategorier",
		len(products), len(h.Store.Categories()))
	return nil
}

// RestoreFallback installs the cached snapshot if one exists, otherwise the
// built-in assortment, so the catalog is never empty.
func (h *Handler) RestoreFallback() {
	if products, err := cache.LoadCatalogSnapshot(); err == nil {
		h.Store.Replace(products)
		log.Printf("⚠️ CSV-källorna misslyckades — återställde %d produkter från cache", len(products))
		return
	}
	h.Store.Replace(catalog.FallbackProducts())
	log.Println("⚠️ CSV-källorna misslyckades — använder inbyggd reservkatalog")
}

// ReloadCatalog re-reads the price lists on demand.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	if err := h.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Kunde inte ladda produktkatalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Katalogen har laddats om",
		"products":   len(h.Store.Products()),
		"categories": len(h.Store.Categories()),
	})
}
