package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
	"masterjacobs_backend/internal/catalog"
	"masterjacobs_backend/internal/models"
	"masterjacobs_backend/internal/search"
)

// Handler serves the catalog over HTTP. The store is injected so tests can
// run several independent catalogs side by side.
type Handler struct {
	Store   *catalog.Store
	Sources []catalog.Source
}

func NewHandler(store *catalog.Store, sources []catalog.Source) *Handler {
	return &Handler{Store: store, Sources: sources}
}

type productListResponse struct {
	Items      []models.CatalogProduct `json:"items"`
	Page       int                     `json:"page"`
	PerPage    int                     `json:"per_page"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
}

// GetProducts lists the catalog, filtered and paginated. Responses are
// cached per query string.
func (h *Handler) GetProducts(c *gin.Context) {
	cacheKey := "products:" + c.Request.URL.RawQuery
	if val, err := cache.GetCache(cacheKey); err == nil && val != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
		return
	}

	filters := catalog.Filters{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	if v, err := strconv.Atoi(c.Query("min_price")); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("max_price")); err == nil {
		filters.MaxPrice = &v
	}
	if v, err := strconv.ParseBool(c.Query("featured")); err == nil {
		filters.Featured = &v
	}
	if v, err := strconv.ParseBool(c.Query("in_stock")); err == nil {
		filters.InStock = &v
	}

	page := atoiDefault(c.Query("page"), 1)
	perPage := atoiDefault(c.Query("per_page"), catalog.DefaultPageSize)

	filtered := h.Store.Filter(filters)
	resp := productListResponse{
		Items:      catalog.Paginate(filtered, page, perPage),
		Page:       page,
		PerPage:    perPage,
		Total:      len(filtered),
		TotalPages: catalog.TotalPages(len(filtered), perPage),
	}

	if data, err := json.Marshal(resp); err == nil {
		cache.SetCache(cacheKey, data, cache.ProductCacheTTL)
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct fetches one product by slug, falling back to id so old links
// with the hashed identifier keep working.
func (h *Handler) GetProduct(c *gin.Context) {
	key := c.Param("slug")
	p, ok := h.Store.GetBySlug(key)
	if !ok {
		p, ok = h.Store.GetByID(key)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produkten hittades inte"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchProducts queries Elasticsearch first and falls back to the
// in-memory catalog scan when the index is unavailable or empty.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parametern 'q' saknas"})
		return
	}

	if results, err := search.SearchProducts(query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, gin.H{"items": results, "total": len(results)})
		return
	}

	items := h.Store.Search(query)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetFeatured lists the promoted products.
func (h *Handler) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Featured()})
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
