package models

// StoreConfig mirrors the store configuration exposed by the external
// webshop platform (delivery thresholds in whole kronor, schedule keyed by
// lowercase english weekday).
type StoreConfig struct {
	ID                      int                    `json:"id"`
	Name                    string                 `json:"name"`
	Email                   string                 `json:"email"`
	Phone                   string                 `json:"phone"`
	Currency                string                 `json:"currency"`
	CurrencySymbol          string                 `json:"currency_symbol"`
	Cities                  []string               `json:"cities"`
	MinCartPriceForDelivery int                    `json:"min_cart_price_for_delivery"`
	FreeDeliveryThreshold   int                    `json:"free_delivery_threshold"`
	DeliveryDeposit         int                    `json:"delivery_deposit"`
	InvoiceFee              int                    `json:"invoice_fee"`
	MaxDeliveryPrice        int                    `json:"max_delivery_price"`
	Schedule                map[string]DaySchedule `json:"schedule"`
}

// DaySchedule describes the ordering rules for one weekday.
type DaySchedule struct {
	OrderBefore int  `json:"order_before"` // minutes from midnight
	DayOff      bool `json:"day_off"`
	DaysBefore  int  `json:"days_before"`
}

// DayHours is one day's opening interval, "HH:MM" on both ends.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Outlet is a physical shop location.
type Outlet struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	PostalCode   string              `json:"postal_code"`
	Phone        string              `json:"phone"`
	OpeningHours map[string]DayHours `json:"opening_hours"`
	Latitude     float64             `json:"latitude,omitempty"`
	Longitude    float64             `json:"longitude,omitempty"`
}

// OrderingStatus is the answer to "can I order for delivery on this day".
type OrderingStatus struct {
	Allowed  bool   `json:"allowed"`
	Deadline string `json:"deadline,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ContactMessage is the landing page contact form payload.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
