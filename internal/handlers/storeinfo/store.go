package storeinfo

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
	"masterjacobs_backend/internal/commerce"
	"masterjacobs_backend/internal/models"
)

// Handler exposes the external webshop platform's store data plus the
// delivery zone check.
type Handler struct {
	Commerce *commerce.Client
}

func NewHandler(client *commerce.Client) *Handler {
	return &Handler{Commerce: client}
}

// GetStoreInfo proxies the platform's store configuration, cached for an
// hour.
func (h *Handler) GetStoreInfo(c *gin.Context) {
	cacheKey := "store:info"
	if val, err := cache.GetCache(cacheKey); err == nil && val != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
		return
	}

	cfg, err := h.Commerce.StoreInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Kunde inte hämta butiksinformation"})
		return
	}

	if data, err := json.Marshal(cfg); err == nil {
		cache.SetCache(cacheKey, data, cache.StoreInfoTTL)
	}
	c.JSON(http.StatusOK, cfg)
}

type outletResponse struct {
	models.Outlet
	IsOpen bool `json:"is_open"`
}

// GetOutlets lists shop locations with an open/closed flag. When the
// platform returns nothing the main bakery is served as fallback.
func (h *Handler) GetOutlets(c *gin.Context) {
	outlets, err := h.Commerce.Outlets(c.Request.Context())
	if err != nil || len(outlets) == 0 {
		outlets = []models.Outlet{commerce.FallbackOutlet()}
	}

	now := time.Now()
	resp := make([]outletResponse, 0, len(outlets))
	for _, o := range outlets {
		resp = append(resp, outletResponse{
			Outlet: o,
			IsOpen: commerce.OpenAt(o.OpeningHours, now),
		})
	}
	c.JSON(http.StatusOK, gin.H{"outlets": resp})
}

// CheckDelivery answers whether the bakery delivers to a postal code.
func (h *Handler) CheckDelivery(c *gin.Context) {
	code := c.Query("postal_code")
	if !commerce.ValidPostalCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltigt postnummer"})
		return
	}

	if commerce.CheckDeliveryAvailability(code) {
		c.JSON(http.StatusOK, gin.H{
			"postal_code": code,
			"deliverable": true,
			"message":     "Vi levererar till din adress!",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"postal_code": code,
		"deliverable": false,
		"message":     "Tyvärr levererar vi inte till ditt område ännu",
	})
}
