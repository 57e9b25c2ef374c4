package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuLineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price_per_item"`
	ImageURL  string          `json:"image_url"`
}

type BillBreakdown struct {
	GrossAmount decimal.Decimal `json:"gross_amount"`
	Tax         decimal.Decimal `json:"tax"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Discount    decimal.Decimal `json:"discount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
}

type Restaurant struct {
	Name            string `json:"name"`
	ProfileImageURL string `json:"profile_image_url"`
	AddressStreet1  string `json:"address_street_1"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressPostal   string `json:"address_postal_code"`
}

// Address renders the single-line address shown in the header and footer.
func (r Restaurant) Address() string {
	return r.AddressStreet1 + ", " + r.AddressCity + ", " + r.AddressState + " " + r.AddressPostal
}

type Cart struct {
	MenuItems    []MenuLineItem `json:"menu_items"`
	Bill         BillBreakdown  `json:"bill"`
	Restaurant   Restaurant     `json:"restaurant"`
	RestaurantID string         `json:"restaurant_id"`

	// Edited is set once a line item was removed or re-quantified locally.
	Edited bool `json:"-"`
}

// Clone returns a copy whose item slice can be modified independently.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	out := *c
	out.MenuItems = append([]MenuLineItem(nil), c.MenuItems...)
	return &out
}

// Item looks up a line item by id.
func (c *Cart) Item(id string) (MenuLineItem, bool) {
	if c == nil {
		return MenuLineItem{}, false
	}
	for _, item := range c.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuLineItem{}, false
}

type WorkingHourWindow struct {
	Day    string `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// NormalizedDay is the upper-case English weekday name the window applies to.
func (w WorkingHourWindow) NormalizedDay() string {
	return strings.ToUpper(strings.TrimSpace(w.Day))
}

type PromoState struct {
	PendingCode    string          `json:"pending_code"`
	AppliedCode    string          `json:"applied_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// Applied reports whether a promo code is currently in effect.
func (p PromoState) Applied() bool {
	return p.AppliedCode != ""
}

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryMethodDelivery || m == DeliveryMethodPickup
}

// Summary is the footer line describing where the order ends up.
func (m DeliveryMethod) Summary(address string) string {
	if m == DeliveryMethodPickup {
		return "You'll pick up your order at " + address
	}
	return "Your order will be delivered to " + address
}

// PaymentMethod is the wallet shown on the payment card. Only Apple Pay is
// offered and no charge is made.
type PaymentMethod struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

var ApplePay = PaymentMethod{Kind: "apple_pay", Label: "Apple Pay"}

type OrderIntent struct {
	ID           uuid.UUID       `json:"id"`
	SessionID    uuid.UUID       `json:"session_id"`
	RestaurantID string          `json:"restaurant_id"`
	Items        []MenuLineItem  `json:"items"`
	Method       DeliveryMethod  `json:"method"`
	Payment      PaymentMethod   `json:"payment"`
	PromoCode    string          `json:"promo_code,omitempty"`
	Total        decimal.Decimal `json:"total"`
	PickupCode   []byte          `json:"pickup_code,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CheckoutEvent struct {
	Type         string          `json:"type"`
	OrderID      uuid.UUID       `json:"order_id"`
	SessionID    uuid.UUID       `json:"session_id"`
	RestaurantID string          `json:"restaurant_id"`
	Method       DeliveryMethod  `json:"method"`
	ItemCount    int             `json:"item_count"`
	Total        decimal.Decimal `json:"total"`
	Timestamp    time.Time       `json:"timestamp"`
}
