package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"masterjacobs_backend/internal/models"
)

const productIndex = "products"

// ElasticClient is nil when ELASTIC_URL is unconfigured; the search handler
// then falls back to the in-memory catalog scan.
var ElasticClient *elasticsearch.Client

// InitElastic connects to Elasticsearch if ELASTIC_URL is set.
func InitElastic() error {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		return fmt.Errorf("ELASTIC_URL inte konfigurerad")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("kunde inte skapa Elasticsearch-klient: %v", err)
	}

	res, err := client.Info()
	if err != nil {
		return fmt.Errorf("kunde inte ansluta till Elasticsearch: %v", err)
	}
	defer res.Body.Close()

	ElasticClient = client
	log.Println("✅ Elasticsearch ansluten")
	return nil
}

// IndexCatalog reindexes every product after a catalog load. Failures are
// logged and swallowed; search falls back to the in-memory scan anyway.
func IndexCatalog(products []models.CatalogProduct) {
	if ElasticClient == nil {
		return
	}

	indexed := 0
	for _, p := range products {
		data, _ := json.Marshal(p)
		req := esapi.IndexRequest{
			Index:      productIndex,
			DocumentID: p.ID,
			Body:       bytes.NewReader(data),
			Refresh:    "true",
		}
		res, err := req.Do(context.Background(), ElasticClient)
		if err != nil {
			log.Println("❌ Fel vid indexering i Elasticsearch:", err)
			continue
		}
		if res.IsError() {
			log.Printf("⚠️ Elasticsearch svarade med fel för %s: %s", p.Name, res.String())
		} else {
			indexed++
		}
		res.Body.Close()
	}
	log.Printf("✅ %d produkter indexerade i Elasticsearch", indexed)
}

// SearchProducts runs a multi_match over name, description, variant and
// category and returns the raw documents.
func SearchProducts(query string) ([]map[string]interface{}, error) {
	if ElasticClient == nil {
		return nil, errors.New("elasticsearch-klienten är inte initialiserad")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "variant", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("fel vid kodning av sökfråga: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), ElasticClient)
	if err != nil {
		return nil, fmt.Errorf("fel vid Elasticsearch-anrop: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("indexet hittades inte eller är tomt")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("fel vid avkodning av svar: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("ogiltigt Elasticsearch-svar")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("inga träffar")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}
	return results, nil
}
