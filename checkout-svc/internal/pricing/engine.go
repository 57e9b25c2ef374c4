// Package pricing derives the priced checkout view from a cart snapshot and
// the user's local edits. Every function here is pure: carts and promo
// states come in by value or are cloned before modification.
package pricing

import (
	"context"
	"errors"
	"strings"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/money"

	"github.com/shopspring/decimal"
)

// ErrRemovalRequired is returned when a quantity edit would drop below one;
// callers must route the item through removal confirmation instead.
var ErrRemovalRequired = errors.New("quantity below one requires removal")

var ErrItemNotInCart = errors.New("item not in cart")

// ErrInvalidDiscount is returned when a validator grants zero or less.
var ErrInvalidDiscount = errors.New("promo discount must be positive")

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
)

type PricedLine struct {
	Item      domain.MenuLineItem `json:"item"`
	LineTotal decimal.Decimal     `json:"line_total"`
}

type View struct {
	Status        Status               `json:"status"`
	Lines         []PricedLine         `json:"lines,omitempty"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Discount      decimal.Decimal      `json:"discount"`
	Tax           decimal.Decimal      `json:"tax"`
	PlatformFee   decimal.Decimal      `json:"platform_fee"`
	OriginalTotal decimal.Decimal      `json:"original_total"`
	Total         decimal.Decimal      `json:"total"`
	HasDiscount   bool                 `json:"has_discount"`
	Bill          domain.BillBreakdown `json:"bill"`
}

// PromoValidator decides the discount granted for a code.
type PromoValidator interface {
	Discount(ctx context.Context, code string) (decimal.Decimal, error)
}

// FlatPromo accepts any non-empty code for a fixed amount.
type FlatPromo struct {
	Amount decimal.Decimal
}

func NewFlatPromo(amount decimal.Decimal) FlatPromo {
	return FlatPromo{Amount: amount}
}

func (f FlatPromo) Discount(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.Amount, nil
}

// DefaultFlatDiscount is the placeholder promo amount.
var DefaultFlatDiscount = decimal.NewFromInt(5)

// RemoveItem drops itemID from the cart. A nil cart is returned unchanged.
func RemoveItem(cart *domain.Cart, itemID string) *domain.Cart {
	if cart == nil {
		return nil
	}
	out := cart.Clone()
	kept := out.MenuItems[:0]
	for _, item := range out.MenuItems {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) != len(cart.MenuItems) {
		out.Edited = true
	}
	out.MenuItems = kept
	return out
}

func SetQuantity(item domain.MenuLineItem, quantity int) (domain.MenuLineItem, error) {
	if quantity < 1 {
		return item, ErrRemovalRequired
	}
	item.Quantity = quantity
	return item, nil
}

func SetCartQuantity(cart *domain.Cart, itemID string, quantity int) (*domain.Cart, error) {
	if cart == nil {
		return nil, nil
	}
	out := cart.Clone()
	for i, item := range out.MenuItems {
		if item.ID != itemID {
			continue
		}
		updated, err := SetQuantity(item, quantity)
		if err != nil {
			return cart, err
		}
		if updated.Quantity != item.Quantity {
			out.MenuItems[i] = updated
			out.Edited = true
		}
		return out, nil
	}
	return cart, ErrItemNotInCart
}

// NewPromoState starts with the bill's own discount and no applied code.
func NewPromoState(bill domain.BillBreakdown) domain.PromoState {
	return domain.PromoState{DiscountAmount: bill.Discount}
}

// ApplyPromo applies the trimmed pending code. Blank codes leave state untouched.
func ApplyPromo(ctx context.Context, state domain.PromoState, pending string, validator PromoValidator) (domain.PromoState, error) {
	code := strings.TrimSpace(pending)
	if code == "" {
		return state, nil
	}
	if validator == nil {
		validator = NewFlatPromo(DefaultFlatDiscount)
	}
	amount, err := validator.Discount(ctx, code)
	if err != nil {
		return state, err
	}
	if !amount.IsPositive() {
		return state, ErrInvalidDiscount
	}
	return domain.PromoState{AppliedCode: code, DiscountAmount: amount}, nil
}

// RemovePromo clears the applied code; the discount falls back to the bill's.
func RemovePromo(state domain.PromoState, bill domain.BillBreakdown) domain.PromoState {
	return domain.PromoState{PendingCode: state.PendingCode, DiscountAmount: bill.Discount}
}

func ComputeTotal(bill domain.BillBreakdown, discount decimal.Decimal) decimal.Decimal {
	return money.Sum(bill.GrossAmount, bill.Tax, bill.PlatformFee).Sub(discount)
}

// Gross is the server gross until the cart has been edited locally, then the
// sum over the surviving line items.
func Gross(cart *domain.Cart) decimal.Decimal {
	if cart == nil {
		return decimal.Zero
	}
	if !cart.Edited {
		return cart.Bill.GrossAmount
	}
	totals := make([]decimal.Decimal, 0, len(cart.MenuItems))
	for _, item := range cart.MenuItems {
		totals = append(totals, money.LineTotal(item.UnitPrice, item.Quantity))
	}
	return money.Sum(totals...)
}

func Price(cart *domain.Cart, promo domain.PromoState) View {
	if cart == nil {
		return View{Status: StatusLoading}
	}

	lines := make([]PricedLine, 0, len(cart.MenuItems))
	for _, item := range cart.MenuItems {
		lines = append(lines, PricedLine{Item: item, LineTotal: money.LineTotal(item.UnitPrice, item.Quantity)})
	}

	bill := cart.Bill
	bill.GrossAmount = Gross(cart)
	bill.Discount = promo.DiscountAmount
	bill.NetAmount = ComputeTotal(bill, promo.DiscountAmount)

	return View{
		Status:        StatusReady,
		Lines:         lines,
		Subtotal:      bill.GrossAmount,
		Discount:      promo.DiscountAmount,
		Tax:           bill.Tax,
		PlatformFee:   bill.PlatformFee,
		OriginalTotal: ComputeTotal(bill, decimal.Zero),
		Total:         bill.NetAmount,
		HasDiscount:   promo.DiscountAmount.IsPositive(),
		Bill:          bill,
	}
}
