package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/editor"
	"overcooked-checkout/checkout-svc/internal/hours"
	"overcooked-checkout/checkout-svc/internal/money"
	"overcooked-checkout/checkout-svc/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrCartNotLoaded   = errors.New("cart has not loaded")
	ErrSessionClosed   = errors.New("checkout session is closed")
	ErrAlreadyLoaded   = errors.New("checkout session already loaded")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrNoEditor        = errors.New("no item editor is open")
	ErrInvalidMethod   = errors.New("delivery method must be delivery or pickup")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCartUnavailable = errors.New("cart could not be fetched")
)

type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
	StatusClosed  LoadStatus = "closed"
)

type Dependencies struct {
	Source    CartSource
	Cache     HoursCache
	Promos    pricing.PromoValidator
	Hours     *hours.Evaluator
	Publisher EventPublisher
	QR        QRGenerator
	Effects   Effects
	Logger    logrus.FieldLogger
	Clock     func() time.Time
}

type EditorView struct {
	editor.ItemEditor
	DraftTotal  decimal.Decimal `json:"draft_total"`
	UpdateLabel string          `json:"update_label"`
}

type View struct {
	SessionID       uuid.UUID                  `json:"session_id"`
	Status          LoadStatus                 `json:"status"`
	Error           string                     `json:"error,omitempty"`
	Restaurant      *domain.Restaurant         `json:"restaurant,omitempty"`
	Address         string                     `json:"address,omitempty"`
	Hours           hours.Status               `json:"hours"`
	WorkingHours    []domain.WorkingHourWindow `json:"working_hours,omitempty"`
	Pricing         pricing.View               `json:"pricing"`
	Promo           domain.PromoState          `json:"promo"`
	DeliveryMethod  domain.DeliveryMethod      `json:"delivery_method"`
	PaymentMethod   *domain.PaymentMethod      `json:"payment_method,omitempty"`
	Summary         string                     `json:"summary,omitempty"`
	EmptyCart       bool                       `json:"empty_cart"`
	PendingRemoval  string                     `json:"pending_removal,omitempty"`
	Editor          *EditorView                `json:"editor,omitempty"`
	PlaceOrderLabel string                     `json:"place_order_label,omitempty"`
}

// CheckoutSession is the state behind one open checkout screen.
type CheckoutSession struct {
	mu   sync.Mutex
	id   uuid.UUID
	deps Dependencies
	log  logrus.FieldLogger

	status  LoadStatus
	loadErr error
	cart    *domain.Cart
	hours   []domain.WorkingHourWindow
	promo   domain.PromoState
	method  domain.DeliveryMethod
	removal editor.RemovalFlow
	editor  *editor.ItemEditor
}

func NewCheckoutSession(deps Dependencies) *CheckoutSession {
	if deps.Effects == nil {
		deps.Effects = noEffects{}
	}
	if deps.Promos == nil {
		deps.Promos = pricing.NewFlatPromo(pricing.DefaultFlatDiscount)
	}
	if deps.Hours == nil {
		deps.Hours = hours.NewEvaluator(hours.PresenceOnly, nil)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	id := uuid.New()
	return &CheckoutSession{
		id:     id,
		deps:   deps,
		log:    deps.Logger.WithField("session_id", id.String()),
		status: StatusLoading,
		method: domain.DeliveryMethodDelivery,
	}
}

func (s *CheckoutSession) ID() uuid.UUID {
	return s.id
}

// Load runs the fetch sequence: the cart, then the restaurant's working hours.
// A cart failure moves the session to Failed; a working-hours failure only
// leaves the restaurant without hours.
func (s *CheckoutSession) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusLoading {
		s.mu.Unlock()
		if s.status == StatusClosed {
			return ErrSessionClosed
		}
		return ErrAlreadyLoaded
	}
	s.mu.Unlock()

	cart, err := s.deps.Source.FetchCart(ctx)
	if err != nil || cart == nil {
		if err == nil {
			err = ErrCartUnavailable
		}
		s.log.WithError(err).Error("error loading cart")
		return s.fail(fmt.Errorf("fetch cart: %w", err))
	}

	windows, err := s.workingHours(ctx, cart.RestaurantID)
	if err != nil {
		s.log.WithError(err).WithField("restaurant_id", cart.RestaurantID).Error("error loading working hours")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusClosed {
		s.log.Warn("discarding cart that arrived after the session closed")
		return ErrSessionClosed
	}
	s.cart = cart
	s.hours = windows
	pending := s.promo.PendingCode
	s.promo = pricing.NewPromoState(cart.Bill)
	s.promo.PendingCode = pending
	s.status = StatusReady
	s.log.WithFields(logrus.Fields{
		"restaurant_id": cart.RestaurantID,
		"items":         len(cart.MenuItems),
	}).Info("checkout loaded")
	return nil
}

func (s *CheckoutSession) workingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHourWindow, error) {
	if s.deps.Cache != nil {
		cached, ok, err := s.deps.Cache.GetWorkingHours(ctx, restaurantID)
		if err != nil {
			s.log.WithError(err).Warn("working hours cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	windows, err := s.deps.Source.FetchWorkingHours(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("fetch working hours: %w", err)
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.SetWorkingHours(ctx, restaurantID, windows); err != nil {
			s.log.WithError(err).Warn("working hours cache write failed")
		}
	}
	return windows, nil
}

func (s *CheckoutSession) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusClosed {
		return ErrSessionClosed
	}
	s.status = StatusFailed
	s.loadErr = err
	return err
}

// Close marks the screen as gone. Later fetch results are dropped.
func (s *CheckoutSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusClosed
	s.editor = nil
	s.removal.Reset()
}

func (s *CheckoutSession) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *CheckoutSession) viewLocked() View {
	view := View{
		SessionID:      s.id,
		Status:         s.status,
		Pricing:        pricing.Price(s.cart, s.promo),
		Promo:          s.promo,
		DeliveryMethod: s.method,
	}
	if s.loadErr != nil {
		view.Error = s.loadErr.Error()
	}
	if s.cart == nil {
		return view
	}

	restaurant := s.cart.Restaurant
	view.Restaurant = &restaurant
	view.Address = restaurant.Address()
	view.Hours = s.deps.Hours.IsOpenToday(s.hours, s.deps.Clock())
	view.WorkingHours = s.hours
	view.Summary = s.method.Summary(view.Address)
	payment := domain.ApplePay
	view.PaymentMethod = &payment
	view.EmptyCart = len(s.cart.MenuItems) == 0
	view.PlaceOrderLabel = "Place Order – " + money.Format(view.Pricing.Total)
	if itemID, ok := s.removal.Pending(); ok {
		view.PendingRemoval = itemID
	}
	if s.editor != nil {
		draft := *s.editor
		draft.Options = make(map[string]bool, len(s.editor.Options))
		for key, on := range s.editor.Options {
			draft.Options[key] = on
		}
		view.Editor = &EditorView{
			ItemEditor:  draft,
			DraftTotal:  s.editor.DraftTotal(),
			UpdateLabel: "Update Item – " + money.Format(s.editor.DraftTotal()),
		}
	}
	return view
}

func (s *CheckoutSession) requireCartLocked(action string) error {
	if s.status == StatusClosed {
		return ErrSessionClosed
	}
	if s.cart == nil {
		s.log.WithField("action", action).Warn("cart is not loaded")
		return ErrCartNotLoaded
	}
	return nil
}

// StepQuantity is the card stepper. Stepping to zero asks for removal
// confirmation instead of changing the quantity.
func (s *CheckoutSession) StepQuantity(itemID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("step_quantity"); err != nil {
		return err
	}
	item, ok := s.cart.Item(itemID)
	if !ok {
		return ErrItemNotFound
	}
	s.deps.Effects.Haptic("step_quantity")
	return s.setQuantityLocked(itemID, item.Quantity+delta)
}

func (s *CheckoutSession) SetQuantity(itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("set_quantity"); err != nil {
		return err
	}
	if _, ok := s.cart.Item(itemID); !ok {
		return ErrItemNotFound
	}
	return s.setQuantityLocked(itemID, quantity)
}

func (s *CheckoutSession) setQuantityLocked(itemID string, quantity int) error {
	cart, err := pricing.SetCartQuantity(s.cart, itemID, quantity)
	if errors.Is(err, pricing.ErrRemovalRequired) {
		return s.requestRemovalLocked(itemID)
	}
	if err != nil {
		return err
	}
	s.cart = cart
	s.deps.Effects.Animate("set_quantity")
	return nil
}

func (s *CheckoutSession) RequestRemoval(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("request_removal"); err != nil {
		return err
	}
	if _, ok := s.cart.Item(itemID); !ok {
		return ErrItemNotFound
	}
	return s.requestRemovalLocked(itemID)
}

func (s *CheckoutSession) requestRemovalLocked(itemID string) error {
	return s.removal.Request(itemID)
}

func (s *CheckoutSession) ConfirmRemoval() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("confirm_removal"); err != nil {
		return err
	}
	itemID, err := s.removal.Confirm()
	if err != nil {
		return err
	}
	s.cart = pricing.RemoveItem(s.cart, itemID)
	if s.editor != nil && s.editor.ItemID == itemID {
		s.editor = nil
	}
	s.log.WithField("item_id", itemID).Info("item removed")
	s.deps.Effects.Animate("remove_item")
	return nil
}

func (s *CheckoutSession) CancelRemoval() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removal.Cancel()
}

func (s *CheckoutSession) OpenEditor(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("open_editor"); err != nil {
		return err
	}
	item, ok := s.cart.Item(itemID)
	if !ok {
		return ErrItemNotFound
	}
	s.editor = editor.New(item)
	return nil
}

func (s *CheckoutSession) EditorStep(delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return ErrNoEditor
	}
	s.deps.Effects.Animate("editor_step")
	if s.editor.Step(delta) {
		s.deps.Effects.Haptic("editor_step")
	}
	return nil
}

func (s *CheckoutSession) EditorToggle(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return ErrNoEditor
	}
	return s.editor.Toggle(key)
}

func (s *CheckoutSession) EditorInstructions(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return ErrNoEditor
	}
	s.editor.SetInstructions(text)
	return nil
}

// CommitEditor writes the draft quantity back when it changed and closes the editor.
func (s *CheckoutSession) CommitEditor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return ErrNoEditor
	}
	if err := s.requireCartLocked("commit_editor"); err != nil {
		return err
	}
	quantity, changed := s.editor.Commit()
	itemID := s.editor.ItemID
	s.editor = nil
	if !changed {
		return nil
	}
	return s.setQuantityLocked(itemID, quantity)
}

// EditorRemove routes the editor's remove button through the same
// confirmation as the card stepper.
func (s *CheckoutSession) EditorRemove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return ErrNoEditor
	}
	if err := s.requireCartLocked("editor_remove"); err != nil {
		return err
	}
	return s.requestRemovalLocked(s.editor.ItemID)
}

func (s *CheckoutSession) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = nil
}

func (s *CheckoutSession) SetPendingPromo(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promo.PendingCode = code
}

func (s *CheckoutSession) ApplyPromo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("apply_promo"); err != nil {
		return err
	}
	next, err := pricing.ApplyPromo(ctx, s.promo, s.promo.PendingCode, s.deps.Promos)
	if err != nil {
		return fmt.Errorf("apply promo: %w", err)
	}
	if next == s.promo {
		return nil
	}
	s.promo = next
	s.log.WithField("code", next.AppliedCode).Info("promo applied")
	s.deps.Effects.Animate("apply_promo")
	return nil
}

func (s *CheckoutSession) RemovePromo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireCartLocked("remove_promo"); err != nil {
		return err
	}
	if !s.promo.Applied() {
		return nil
	}
	s.promo = pricing.RemovePromo(s.promo, s.cart.Bill)
	s.deps.Effects.Animate("remove_promo")
	return nil
}

func (s *CheckoutSession) SetDeliveryMethod(method domain.DeliveryMethod) error {
	if !method.Valid() {
		return ErrInvalidMethod
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusClosed {
		return ErrSessionClosed
	}
	if s.method != method {
		s.method = method
		s.deps.Effects.Animate("delivery_method")
	}
	return nil
}
