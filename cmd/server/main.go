package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"masterjacobs_backend/internal/cache"
	"masterjacobs_backend/internal/catalog"
	"masterjacobs_backend/internal/commerce"
	"masterjacobs_backend/internal/config"
	"masterjacobs_backend/internal/handlers/product"
	"masterjacobs_backend/internal/handlers/storeinfo"
	"masterjacobs_backend/internal/routes"
	"masterjacobs_backend/internal/search"
)

func main() {
	config.Load()

	if err := cache.InitRedis(); err != nil {
		log.Println("⚠️ Redis inte tillgänglig — kör utan cache:", err)
	}
	if err := search.InitElastic(); err != nil {
		log.Println("⚠️ Elasticsearch inte tillgänglig — söker i minnet:", err)
	}

	store := catalog.NewStore(catalog.Normalizer{Domain: config.CommerceDomain()})
	sources := catalog.SourcesFromList(config.CSVSources())
	products := product.NewHandler(store, sources)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := products.Refresh(ctx); err != nil {
		log.Println("❌ Kunde inte ladda produktkatalogen:", err)
		products.RestoreFallback()
	}
	cancel()

	commerceClient := commerce.NewClient(config.CommerceAPIBase())
	storeHandler := storeinfo.NewHandler(commerceClient)

	r := gin.Default()
	routes.RegisterRoutes(r, products, storeHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Katalogtjänsten lyssnar på port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Servern kunde inte starta:", err)
	}
}
