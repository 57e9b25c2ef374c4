package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	ImageURL     string          `json:"image_url"`
}

type Bill struct {
	GrossAmount decimal.Decimal `json:"gross_amount"`
	Tax         decimal.Decimal `json:"tax"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Discount    decimal.Decimal `json:"discount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
}

type Restaurant struct {
	ID              string `json:"-"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
	AddressStreet1  string `json:"address_street_1"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressPostal   string `json:"address_postal_code"`
}

type Cart struct {
	ID           string     `json:"-"`
	CustomerID   string     `json:"-"`
	MenuItems    []CartItem `json:"menu_items"`
	Bill         Bill       `json:"bill"`
	Restaurant   Restaurant `json:"restaurant"`
	RestaurantID string     `json:"restaurant_id"`
}

type WorkingHour struct {
	Day    string `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// Envelope wraps every response body.
type Envelope struct {
	Data interface{} `json:"data"`
}
