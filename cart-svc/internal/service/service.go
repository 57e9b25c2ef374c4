package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"overcooked-checkout/cart-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type CartRepository interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	ListWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHour, error)
	RestaurantExists(ctx context.Context, restaurantID string) (bool, error)
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	WorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHour, error)
}

var _ CartServiceInterface = (*CartService)(nil)

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// GetCart returns the customer's cart with gross and net amounts derived from
// its line items.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	ComputeBill(cart)
	return cart, nil
}

func (s *CartService) WorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHour, error) {
	exists, err := s.repo.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}
	return s.repo.ListWorkingHours(ctx, restaurantID)
}

func ComputeBill(cart *domain.Cart) {
	gross := decimal.Zero
	for _, item := range cart.MenuItems {
		gross = gross.Add(item.PricePerItem.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	cart.Bill.GrossAmount = gross.Round(2)
	cart.Bill.NetAmount = gross.Add(cart.Bill.Tax).Add(cart.Bill.PlatformFee).Sub(cart.Bill.Discount).Round(2)
}
