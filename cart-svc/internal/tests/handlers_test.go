package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-checkout/cart-svc/internal/api/http"
	"overcooked-checkout/cart-svc/internal/domain"
	"overcooked-checkout/cart-svc/internal/mocks"
	"overcooked-checkout/cart-svc/internal/service"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*mocks.CartServiceInterface, http.Handler) {
	svc := mocks.NewCartServiceInterface(t)
	logger, _ := test.NewNullLogger()
	return svc, httpapi.NewRouter(httpapi.NewHandler(svc, logger))
}

func TestHandler_HealthCheck(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "cart-svc", body["service"])
}

func TestHandler_GetCart(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		customer   string
		cart       *domain.Cart
		mockError  error
		wantStatus int
	}{
		{
			name:       "customer header",
			headers:    map[string]string{"X-Customer-ID": "cust-1"},
			customer:   "cust-1",
			cart:       storedCart(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer token",
			headers:    map[string]string{"Authorization": "Bearer cust-2"},
			customer:   "cust-2",
			cart:       storedCart(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "no customer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no cart",
			headers:    map[string]string{"X-Customer-ID": "cust-3"},
			customer:   "cust-3",
			mockError:  service.ErrCartNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "internal error",
			headers:    map[string]string{"X-Customer-ID": "cust-4"},
			customer:   "cust-4",
			mockError:  assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, router := newRouter(t)
			if testCase.customer != "" {
				svc.On("GetCart", mock.Anything, testCase.customer).Return(testCase.cart, testCase.mockError).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/mobile/api/v2/cart", nil)
			for key, value := range testCase.headers {
				req.Header.Set(key, value)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantStatus, rr.Code)
			if testCase.wantStatus != http.StatusOK {
				return
			}
			var body struct {
				Data struct {
					MenuItems    []map[string]interface{} `json:"menu_items"`
					RestaurantID string                   `json:"restaurant_id"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, "r-1", body.Data.RestaurantID)
			assert.Len(t, body.Data.MenuItems, 2)
			assert.Equal(t, "10", body.Data.MenuItems[0]["price_per_item"])
		})
	}
}

func TestHandler_GetWorkingHours(t *testing.T) {
	svc, router := newRouter(t)
	hours := []domain.WorkingHour{{Day: "MONDAY", Opens: "09:00", Closes: "17:00"}}
	svc.On("WorkingHours", mock.Anything, "r-1").Return(hours, nil).Once()
	svc.On("WorkingHours", mock.Anything, "r-9").Return(nil, service.ErrRestaurantNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/restaurant/api/v1/restaurants/r-1/working-hours", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"day":"MONDAY","opens":"09:00","closes":"17:00"}]}`, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/restaurant/api/v1/restaurants/r-9/working-hours", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
