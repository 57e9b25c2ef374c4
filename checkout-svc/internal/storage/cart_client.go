package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"overcooked-checkout/checkout-svc/internal/domain"
)

const (
	CartPath         = "/mobile/api/v2/cart"
	WorkingHoursPath = "/restaurant/api/v1/restaurants/%s/working-hours"
)

var ErrUnexpectedStatus = errors.New("unexpected upstream status")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type authKey struct{}

// WithAuthorization carries the caller's Authorization header to the cart API.
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, header)
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// CartClient reads the customer's cart and restaurant hours from the cart API.
type CartClient struct {
	BaseURL string
	Token   string
	Client  HTTPClient
}

func NewCartClient(baseURL, token string, client HTTPClient) *CartClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CartClient{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, Client: client}
}

func (c *CartClient) FetchCart(ctx context.Context) (*domain.Cart, error) {
	var body envelope[*domain.Cart]
	if err := c.get(ctx, CartPath, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, fmt.Errorf("cart response has no data")
	}
	return body.Data, nil
}

func (c *CartClient) FetchWorkingHours(ctx context.Context, restaurantID string) ([]domain.WorkingHourWindow, error) {
	var body envelope[[]domain.WorkingHourWindow]
	path := fmt.Sprintf(WorkingHoursPath, url.PathEscape(restaurantID))
	if err := c.get(ctx, path, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *CartClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if auth, ok := ctx.Value(authKey{}).(string); ok {
		req.Header.Set("Authorization", auth)
	} else if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: %w %d: %s", path, ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
