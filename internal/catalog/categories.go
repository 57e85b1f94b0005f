package catalog

import (
	"fmt"
	"strings"

	"masterjacobs_backend/internal/models"
)

// categoryDescriptions holds hand-written copy for the known categories.
var categoryDescriptions = map[string]string{
	"Tårtor & bakelser": "Våra signatur svenska tårtor och klassiska bakelser för alla tillfällen",
	"Fika":              "Perfekt för svenska fika-stunder med vänner och familj",
	"Frukost":           "Näringsrika frukostalternativ för en bra start på dagen",
	"Matbröd/Bullar":    "Dagligt bakat bröd och bullar med traditionella recept",
	"Extras":            "Tillbehör och presenter för att göra din beställning extra speciell",
}

var categoryImages = map[string]string{
	"Tårtor & bakelser": "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
	"Fika":              "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop",
	"Frukost":           "https://images.unsplash.com/photo-1553530979-4c9d4e0d4b42?w=400&h=300&fit=crop",
	"Matbröd/Bullar":    "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?w=400&h=300&fit=crop",
	"Extras":            "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400&h=300&fit=crop",
}

const genericCategoryImage = "https://images.unsplash.com/photo-1586788680434-30d324b2d46f?w=400&h=300&fit=crop"

// AggregateCategories derives one ProductCategory per distinct category
// value, in order of first appearance. Grouping is by exact string match;
// only the derived slug is normalized.
func AggregateCategories(products []models.CatalogProduct) []models.ProductCategory {
	counts := make(map[string]int)
	var order []string
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	categories := make([]models.ProductCategory, 0, len(order))
	for _, name := range order {
		slug := Slugify(name)
		description, ok := categoryDescriptions[name]
		if !ok {
			description = fmt.Sprintf("Utforska vårt sortiment av %s", strings.ToLower(name))
		}
		imageURL, ok := categoryImages[name]
		if !ok {
			imageURL = genericCategoryImage
		}
		categories = append(categories, models.ProductCategory{
			ID:             slug,
			Name:           name,
			Slug:           slug,
			Description:    description,
			SEOTitle:       fmt.Sprintf("%s - Mäster Jacobs Bageri Västerås", name),
			SEODescription: fmt.Sprintf("Upptäck vårt sortiment av %s från Mäster Jacobs bageri. Färskt bakat dagligen i Västerås.", strings.ToLower(name)),
			ProductCount:   counts[name],
			ImageURL:       imageURL,
		})
	}
	return categories
}
