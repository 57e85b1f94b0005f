package commerce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStoreInfoMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bakeries/master-jacobs-bageri-konditori/web-shop/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bakery": {
			"id": 378,
			"name": "Mäster Jacobs",
			"email": "info@masterjacobs.se",
			"phone": "+46 021-30 15 09",
			"cities": ["Västerås"],
			"country": {"currency": "SEK", "currency_symbol": "kr"},
			"min_cart_price_allows_delivery": 300,
			"min_cart_price_allows_free_delivery": 600,
			"delivery_deposit": 79,
			"max_delivery_price": 99,
			"area": {"invoice_fee": 25},
			"schedule": {"monday": {"orderBefore": 840, "dayOff": false, "daysBefore": 1}}
		}}`))
	}))
	defer srv.Close()

	cfg, err := NewClient(srv.URL).StoreInfo(context.Background())
	if err != nil {
		t.Fatalf("store info failed: %v", err)
	}
	if cfg.ID != 378 || cfg.Currency != "SEK" || cfg.CurrencySymbol != "kr" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MinCartPriceForDelivery != 300 || cfg.FreeDeliveryThreshold != 600 {
		t.Fatalf("thresholds not mapped: %+v", cfg)
	}
	day, ok := cfg.Schedule["monday"]
	if !ok || day.OrderBefore != 840 || day.DaysBefore != 1 {
		t.Fatalf("schedule not mapped: %+v", cfg.Schedule)
	}
}

func TestOutletsErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nere", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Outlets(context.Background()); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
