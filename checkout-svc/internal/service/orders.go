package service

import (
	"context"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/pricing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const EventOrderRequested = "order_requested"

// PlaceOrder snapshots the current cart into an order intent. No payment is
// taken; the intent is announced on the checkout events topic.
func (s *CheckoutSession) PlaceOrder(ctx context.Context) (*domain.OrderIntent, error) {
	s.mu.Lock()
	if err := s.requireCartLocked("place_order"); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if len(s.cart.MenuItems) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	view := pricing.Price(s.cart, s.promo)
	intent := &domain.OrderIntent{
		ID:           uuid.New(),
		SessionID:    s.id,
		RestaurantID: s.cart.RestaurantID,
		Items:        append([]domain.MenuLineItem(nil), s.cart.MenuItems...),
		Method:       s.method,
		Payment:      domain.ApplePay,
		PromoCode:    s.promo.AppliedCode,
		Total:        view.Total,
		CreatedAt:    s.deps.Clock().UTC(),
	}
	s.mu.Unlock()

	log := s.log.WithFields(logrus.Fields{
		"order_id":      intent.ID.String(),
		"restaurant_id": intent.RestaurantID,
		"method":        intent.Method,
	})

	if intent.Method == domain.DeliveryMethodPickup && s.deps.QR != nil {
		png, err := s.deps.QR.Generate(intent.ID.String())
		if err != nil {
			log.WithError(err).Warn("error generating pickup code")
		} else {
			intent.PickupCode = png
		}
	}

	if s.deps.Publisher != nil {
		event := domain.CheckoutEvent{
			Type:         EventOrderRequested,
			OrderID:      intent.ID,
			SessionID:    intent.SessionID,
			RestaurantID: intent.RestaurantID,
			Method:       intent.Method,
			ItemCount:    len(intent.Items),
			Total:        intent.Total,
			Timestamp:    intent.CreatedAt,
		}
		if err := s.deps.Publisher.PublishCheckoutEvent(ctx, event); err != nil {
			log.WithError(err).Warn("error publishing checkout event")
		}
	}

	log.WithField("total", intent.Total.StringFixed(2)).Info("order requested")
	s.deps.Effects.Haptic("place_order")
	return intent, nil
}
