package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/config"
	"masterjacobs_backend/internal/handlers/product"
	"masterjacobs_backend/internal/handlers/storeinfo"
	"masterjacobs_backend/internal/middleware"
)

// RegisterRoutes wires the public API. Everything is read-only except the
// contact relay and the catalog reload.
func RegisterRoutes(r *gin.Engine, products *product.Handler, store *storeinfo.Handler) {
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.Getenv("CORS_ORIGINS", "https://www.masterjacobs.se"), ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())
	{
		api.GET("/products", products.GetProducts)
		api.GET("/products/featured", products.GetFeatured)
		api.GET("/products/search", middleware.SearchRateLimit(), products.SearchProducts)
		api.GET("/products/:slug", products.GetProduct)
		api.GET("/products/:slug/qr", products.ProductQR)

		api.GET("/categories", products.GetAllCategories)
		api.GET("/categories/:slug/products", products.GetCategoryProducts)

		api.GET("/store/info", store.GetStoreInfo)
		api.GET("/store/outlets", store.GetOutlets)
		api.GET("/store/delivery-check", store.CheckDelivery)

		api.POST("/contact", middleware.ContactRateLimit(), store.Contact)
		api.POST("/catalog/reload", products.ReloadCatalog)
	}
}
