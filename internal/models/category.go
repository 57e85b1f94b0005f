package models

// ProductCategory is derived from the product set on every catalog load,
// never authored on its own. ProductCount always matches the number of
// products whose Category equals Name exactly.
type ProductCategory struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	ProductCount   int    `json:"product_count"`
	ImageURL       string `json:"image_url,omitempty"`
}
