package editor

import (
	"errors"
	"sort"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/money"

	"github.com/shopspring/decimal"
)

var ErrUnknownCustomization = errors.New("unknown customization")

// Customizations offered on every item. They are not priced.
var Customizations = map[string]string{
	"extra_sauce": "Extra Sauce",
	"no_onions":   "No Onions",
	"gluten_free": "Gluten-Free Bun",
}

// ItemEditor holds the draft of a single item's edit sheet.
type ItemEditor struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"image_url"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Committed    int             `json:"committed_quantity"`
	Draft        int             `json:"draft_quantity"`
	Options      map[string]bool `json:"customizations"`
	Instructions string          `json:"special_instructions"`
}

func New(item domain.MenuLineItem) *ItemEditor {
	options := make(map[string]bool, len(Customizations))
	for key := range Customizations {
		options[key] = false
	}
	return &ItemEditor{
		ItemID:    item.ID,
		Name:      item.Name,
		ImageURL:  item.ImageURL,
		UnitPrice: item.UnitPrice,
		Committed: item.Quantity,
		Draft:     item.Quantity,
		Options:   options,
	}
}

// Step moves the draft by delta, never below one. It reports whether the
// draft actually changed.
func (e *ItemEditor) Step(delta int) bool {
	next := money.ClampQuantity(e.Draft, delta)
	if next == e.Draft {
		return false
	}
	e.Draft = next
	return true
}

func (e *ItemEditor) Toggle(key string) error {
	if _, ok := Customizations[key]; !ok {
		return ErrUnknownCustomization
	}
	e.Options[key] = !e.Options[key]
	return nil
}

func (e *ItemEditor) SetInstructions(text string) {
	e.Instructions = text
}

// Selected lists enabled customization keys in stable order.
func (e *ItemEditor) Selected() []string {
	var keys []string
	for key, on := range e.Options {
		if on {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (e *ItemEditor) DraftTotal() decimal.Decimal {
	return money.LineTotal(e.UnitPrice, e.Draft)
}

// Commit returns the quantity to write back and whether it differs from the
// committed one.
func (e *ItemEditor) Commit() (int, bool) {
	return e.Draft, e.Draft != e.Committed
}
