package service

import (
	"context"

	"overcooked-checkout/checkout-svc/internal/domain"

	"github.com/google/uuid"
)

type CartSource interface {
	FetchCart(ctx context.Context) (*domain.Cart, error)
	FetchWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHourWindow, error)
}

type HoursCache interface {
	GetWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHourWindow, bool, error)
	SetWorkingHours(ctx context.Context, restaurantID string, hours []domain.WorkingHourWindow) error
}

type EventPublisher interface {
	PublishCheckoutEvent(ctx context.Context, event domain.CheckoutEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// Effects run after a successful mutation. They stand in for layout
// animation and haptic feedback on the client.
type Effects interface {
	Animate(action string)
	Haptic(action string)
}

type noEffects struct{}

func (noEffects) Animate(string) {}
func (noEffects) Haptic(string)  {}

type SessionStore interface {
	Create(ctx context.Context) (*CheckoutSession, error)
	Get(id uuid.UUID) (*CheckoutSession, error)
	Close(id uuid.UUID) error
}

var _ SessionStore = (*SessionRegistry)(nil)
