package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"masterjacobs_backend/internal/models"
)

const (
	// Currency is fixed; prices in the CSV are whole kronor.
	Currency = "kr"

	defaultCategory  = "Okategoriserad"
	defaultName      = "Okänd produkt"
	placeholderImage = "placeholder.jpg"
)

// featuredProducts are promoted on the landing page.
var featuredProducts = map[string]bool{
	"Prinsesstårta": true,
	"Kanelknut":     true,
	"Chokladboll":   true,
	"Kladdkaka":     true,
}

// productDescriptions holds hand-written copy for the signature products.
// Everything else gets the generic template.
var productDescriptions = map[string]string{
	"Prinsesstårta":     "Klassisk svensk prinsesstårta med grön marsipan, vispgrädde och hallonsylt. En riktig favorit för alla tillfällen.",
	"Carl Gustav-tårta": "Elegant tårta med ljus chokladmousse och färska bär. Perfekt för festliga tillfällen.",
	"Gräddtårta":        "Luftig sockerkaka med vispgrädde och färska säsongens bär. En tidlös klassiker.",
	"Budapest tårta":    "Exklusiv tårta med rik chokladmousse och hasselnötter. Lyxig smakupplevelse.",
	"Kanelknut":         "Nybakad kanelknut med äkta kanel och socker. Perfekt till morgonkaffet.",
	"Chokladboll":       "Klassisk chokladboll rullade i kokosströssel. Gjord på traditionellt sätt.",
	"Kladdkaka":         "Saftig kladdkaka med intensiv chokladsmak. Serveras gärna med grädde.",
	"Foccacia":          "Italienskt tunnbröd med örter och olivolja. Färskt bakat dagligen.",
}

var swedishLetters = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")

// Normalizer turns raw CSV rows into catalog products. Domain is the host of
// the external webshop that order URLs point at.
type Normalizer struct {
	Domain string
}

// Normalize maps one raw row into a complete, valid CatalogProduct. It is
// total: an all-empty row gets every default and still yields non-empty,
// URL-safe id and slug. ordinal is the zero-based position of this row among
// rows with the same name+variant; it disambiguates the id hash for exact
// duplicates while ordinal 0 keeps the historical id.
func (n Normalizer) Normalize(row RawRow, ordinal int) models.CatalogProduct {
	name := row["name"]
	if name == "" {
		name = defaultName
	}
	variant := row["variant"]
	category := row["category"]
	if category == "" {
		category = defaultCategory
	}
	imageURL := row["image_url"]
	if imageURL == "" {
		imageURL = placeholderImage
	}

	id := ProductID(name, variant, ordinal)
	slug := Slugify(name + " " + variant)
	price := parsePrice(row["price_kr"])
	label := strings.TrimSpace(name + " " + variant)

	description, ok := productDescriptions[name]
	if !ok {
		description = fmt.Sprintf("Färsk %s från Mäster Jacobs bageri.", label)
	}

	return models.CatalogProduct{
		ID:             id,
		Category:       category,
		Name:           name,
		Variant:        variant,
		Price:          price,
		Currency:       Currency,
		ImageURL:       imageURL,
		Slug:           slug,
		Description:    description,
		SEOTitle:       fmt.Sprintf("%s - %d kr | Mäster Jacobs Bageri", label, price),
		SEODescription: fmt.Sprintf("Beställ %s för %d kr från Mäster Jacobs bageri i Västerås. Färskt bakat dagligen med traditionella recept.", label, price),
		InStock:        true,
		Featured:       featuredProducts[name],
		CatalogURL:     "/produkter/" + slug,
		CommerceURL:    fmt.Sprintf("https://%s/shop/bestill/%s-%s", n.Domain, slug, id),
	}
}

// ProductID derives the stable product identifier: transliterated and
// slugified name+variant plus a short numeric hash suffix. Rows beyond the
// first with an identical name+variant fold their ordinal into the hash so
// duplicates still get distinct ids.
func ProductID(name, variant string, ordinal int) string {
	combined := strings.ToLower(name + "-" + variant)
	combined = swedishLetters.Replace(combined)
	combined = collapseNonAlnum(combined)
	if combined == "" {
		combined = "produkt"
	}
	hashInput := combined
	if ordinal > 0 {
		hashInput = combined + "#" + strconv.Itoa(ordinal)
	}
	return combined + "-" + hashSuffix(hashInput)
}

// Slugify derives the browsing slug: lowercase, Swedish letters folded to
// ascii, punctuation dropped, spaces turned into single hyphens. Unlike the
// id there is no hash suffix.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = swedishLetters.Replace(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(collapseHyphens(b.String()), "-")
	if slug == "" {
		return "produkt"
	}
	return slug
}

// collapseNonAlnum replaces every run of characters outside [a-z0-9] with a
// single hyphen and trims hyphens from both ends.
func collapseNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return strings.Trim(collapseHyphens(b.String()), "-")
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// hashSuffix returns up to four decimal digits from a stable 32-bit string
// hash. Best-effort uniqueness, not cryptographic.
func hashSuffix(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	if h < 0 {
		h = -h
	}
	digits := strconv.Itoa(int(h))
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return digits
}

// parsePrice reads the leading integer of the price column, so "25" and
// "25 kr" both work. Anything unparseable becomes 0, never an error.
func parsePrice(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
