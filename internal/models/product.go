package models

// CatalogProduct is one sellable item from the bakery's CSV price lists,
// normalized for browsing. Purchases happen on the external webshop via
// CommerceURL; CatalogURL is the internal browsing path.
type CatalogProduct struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	Variant        string `json:"variant"`
	Price          int    `json:"price"`
	Currency       string `json:"currency"`
	ImageURL       string `json:"image_url"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	InStock        bool   `json:"in_stock"`
	Featured       bool   `json:"featured"`
	CatalogURL     string `json:"catalog_url"`
	CommerceURL    string `json:"commerce_url"`
}
