package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"overcooked-checkout/api-gateway/internal/gateway"
	"overcooked-checkout/api-gateway/internal/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newGateway(client gateway.HTTPClient) *gateway.Gateway {
	logger, _ := test.NewNullLogger()
	return gateway.NewGateway(gateway.Config{
		CartSvcURL:     "http://cart-svc",
		CheckoutSvcURL: "http://checkout-svc",
	}, client, logger)
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newGateway(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantTarget string
	}{
		{name: "cart", method: http.MethodGet, path: "/mobile/api/v2/cart", wantTarget: "http://cart-svc/mobile/api/v2/cart"},
		{name: "working hours", method: http.MethodGet, path: "/restaurant/api/v1/restaurants/r-1/working-hours", wantTarget: "http://cart-svc/restaurant/api/v1/restaurants/r-1/working-hours"},
		{name: "checkout session", method: http.MethodPost, path: "/api/checkout/sessions", wantTarget: "http://checkout-svc/api/checkout/sessions"},
		{name: "query string kept", method: http.MethodGet, path: "/api/checkout/sessions/abc?x=1", wantTarget: "http://checkout-svc/api/checkout/sessions/abc?x=1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := newGateway(mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.wantTarget &&
					req.Method == testCase.method &&
					req.Header.Get("Authorization") == "Bearer cust-1"
			})).Return(okResponse(`{"data":{}}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			req.Header.Set("Authorization", "Bearer cust-1")
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := newGateway(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/mobile/api/v2/cart", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "connection failed")
}
