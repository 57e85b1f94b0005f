package product

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
)

// GetAllCategories lists the derived categories, cached for an hour.
func (h *Handler) GetAllCategories(c *gin.Context) {
	cacheKey := "categories:all"
	if val, err := cache.GetCache(cacheKey); err == nil && val != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
		return
	}

	categories := h.Store.Categories()
	if data, err := json.Marshal(categories); err == nil {
		cache.SetCache(cacheKey, data, cache.CategoryCacheTTL)
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryProducts lists the products of one category, addressed by slug
// or raw name.
func (h *Handler) GetCategoryProducts(c *gin.Context) {
	key := c.Param("slug")
	category, ok := h.Store.GetCategory(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kategorin hittades inte"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"items":    h.Store.ProductsByCategory(key),
	})
}
