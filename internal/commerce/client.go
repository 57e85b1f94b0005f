// Package commerce is a read-only client for the external webshop platform
// that owns cart, checkout and payment. This service only consumes its
// store configuration and outlet endpoints; everything transactional stays
// on the platform's side.
package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"masterjacobs_backend/internal/models"
)

const bakerySlug = "master-jacobs-bageri-konditori"

// Client talks to the platform's store API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the store API rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StoreInfo fetches the store configuration (currency, delivery thresholds,
// ordering schedule).
func (c *Client) StoreInfo(ctx context.Context) (models.StoreConfig, error) {
	var raw struct {
		Bakery struct {
			ID      int      `json:"id"`
			Name    string   `json:"name"`
			Email   string   `json:"email"`
			Phone   string   `json:"phone"`
			Cities  []string `json:"cities"`
			Country struct {
				Currency       string `json:"currency"`
				CurrencySymbol string `json:"currency_symbol"`
			} `json:"country"`
			MinCartPriceAllowsDelivery     int `json:"min_cart_price_allows_delivery"`
			MinCartPriceAllowsFreeDelivery int `json:"min_cart_price_allows_free_delivery"`
			DeliveryDeposit                int `json:"delivery_deposit"`
			MaxDeliveryPrice               int `json:"max_delivery_price"`
			Area                           struct {
				InvoiceFee int `json:"invoice_fee"`
			} `json:"area"`
			Schedule map[string]struct {
				OrderBefore int  `json:"orderBefore"`
				DayOff      bool `json:"dayOff"`
				DaysBefore  int  `json:"daysBefore"`
			} `json:"schedule"`
		} `json:"bakery"`
	}

	path := fmt.Sprintf("/bakeries/%s/web-shop/", bakerySlug)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return models.StoreConfig{}, fmt.Errorf("store info: %w", err)
	}

	schedule := make(map[string]models.DaySchedule, len(raw.Bakery.Schedule))
	for day, s := range raw.Bakery.Schedule {
		schedule[day] = models.DaySchedule{
			OrderBefore: s.OrderBefore,
			DayOff:      s.DayOff,
			DaysBefore:  s.DaysBefore,
		}
	}

	return models.StoreConfig{
		ID:                      raw.Bakery.ID,
		Name:                    raw.Bakery.Name,
		Email:                   raw.Bakery.Email,
		Phone:                   raw.Bakery.Phone,
		Currency:                raw.Bakery.Country.Currency,
		CurrencySymbol:          raw.Bakery.Country.CurrencySymbol,
		Cities:                  raw.Bakery.Cities,
		MinCartPriceForDelivery: raw.Bakery.MinCartPriceAllowsDelivery,
		FreeDeliveryThreshold:   raw.Bakery.MinCartPriceAllowsFreeDelivery,
		DeliveryDeposit:         raw.Bakery.DeliveryDeposit,
		InvoiceFee:              raw.Bakery.Area.InvoiceFee,
		MaxDeliveryPrice:        raw.Bakery.MaxDeliveryPrice,
		Schedule:                schedule,
	}, nil
}

// Outlets fetches the shop locations.
func (c *Client) Outlets(ctx context.Context) ([]models.Outlet, error) {
	var raw struct {
		Outlets []struct {
			ID           int                        `json:"id"`
			Name         string                     `json:"name"`
			Address      string                     `json:"address"`
			City         string                     `json:"city"`
			PostalCode   string                     `json:"postal_code"`
			Phone        string                     `json:"phone"`
			OpeningHours map[string]models.DayHours `json:"opening_hours"`
			Coordinates  struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"coordinates"`
		} `json:"outlets"`
	}

	if err := c.getJSON(ctx, "/bakeries/378/outlets/", &raw); err != nil {
		return nil, fmt.Errorf("outlets: %w", err)
	}

	outlets := make([]models.Outlet, 0, len(raw.Outlets))
	for _, o := range raw.Outlets {
		outlets = append(outlets, models.Outlet{
			ID:           o.ID,
			Name:         o.Name,
			Address:      o.Address,
			City:         o.City,
			PostalCode:   o.PostalCode,
			Phone:        o.Phone,
			OpeningHours: o.OpeningHours,
			Latitude:     o.Coordinates.Lat,
			Longitude:    o.Coordinates.Lng,
		})
	}
	return outlets, nil
}

// FallbackOutlet is the main bakery, used when the platform returns no
// outlet data.
func FallbackOutlet() models.Outlet {
	return models.Outlet{
		ID:         378,
		Name:       "Mäster Jacobs Bageri & Konditori",
		Address:    "Pettersbergatan 37",
		City:       "Västerås",
		PostalCode: "72212",
		Phone:      "+46 021-30 15 09",
		OpeningHours: map[string]models.DayHours{
			"monday":    {Open: "06:00", Close: "18:00"},
			"tuesday":   {Open: "06:00", Close: "18:00"},
			"wednesday": {Open: "06:00", Close: "18:00"},
			"thursday":  {Open: "06:00", Close: "18:00"},
			"friday":    {Open: "06:00", Close: "18:00"},
			"saturday":  {Open: "07:00", Close: "16:00"},
			"sunday":    {Open: "08:00", Close: "16:00"},
		},
		Latitude:  59.6099,
		Longitude: 16.5448,
	}
}
