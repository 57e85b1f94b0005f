package catalog

import "masterjacobs_backend/internal/models"

// FallbackProducts is a small built-in assortment served when every CSV
// source fails and no cached snapshot exists, so the page never renders an
// empty catalog.
func FallbackProducts() []models.CatalogProduct {
	return []models.CatalogProduct{
		{
			ID:             "prinsesstarta-6-bitar-1001",
			Category:       "Tårtor & bakelser",
			Name:           "Prinsesstårta",
			Variant:        "6 bitar",
			Price:          149,
			Currency:       Currency,
			ImageURL:       "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=400&h=300&fit=crop",
			Slug:           "prinsesstarta-6-bitar",
			Description:    "Klassisk svensk prinsesstårta med grön marsipan",
			SEOTitle:       "Prinsesstårta 6 bitar - 149 kr | Mäster Jacobs",
			SEODescription: "Beställ klassisk prinsesstårta från Mäster Jacobs bageri i Västerås",
			InStock:        true,
			Featured:       true,
			CatalogURL:     "/produkter/prinsesstarta-6-bitar",
			CommerceURL:    "https://www.masterjacobs.se/shop/bestill/prinsesstarta-6-bitar-1001",
		},
		{
			ID:             "chokladboll-strossel-2001",
			Category:       "Fika",
			Name:           "Chokladboll",
			Variant:        "Strössel",
			Price:          20,
			Currency:       Currency,
			ImageURL:       "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400&h=300&fit=crop",
			Slug:           "chokladboll-strossel",
			Description:    "Klassisk chokladboll rullade i kokosströssel",
			SEOTitle:       "Chokladboll Strössel - 20 kr | Mäster Jacobs",
			SEODescription: "Beställ traditionella chokladbollar från Mäster Jacobs bageri",
			InStock:        true,
			Featured:       true,
			CatalogURL:     "/produkter/chokladboll-strossel",
			CommerceURL:    "https://www.masterjacobs.se/shop/bestill/chokladboll-strossel-2001",
		},
		{
			ID:             "kanelknut-standard-3001",
			Category:       "Matbröd/Bullar",
			Name:           "Kanelknut",
			Variant:        "Standard",
			Price:          20,
			Currency:       Currency,
			ImageURL:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop",
			Slug:           "kanelknut-standard",
			Description:    "Nybakad kanelknut med äkta kanel och socker",
			SEOTitle:       "Kanelknut Standard - 20 kr | Mäster Jacobs",
			SEODescription: "Färska kanelknutar bakade dagligen med traditionella recept",
			InStock:        true,
			Featured:       false,
			CatalogURL:     "/produkter/kanelknut-standard",
			CommerceURL:    "https://www.masterjacobs.se/shop/bestill/kanelknut-standard-3001",
		},
	}
}
