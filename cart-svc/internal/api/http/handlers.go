package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"overcooked-checkout/cart-svc/internal/domain"
	"overcooked-checkout/cart-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Carts service.CartServiceInterface
	Log   logrus.FieldLogger
}

func NewHandler(carts service.CartServiceInterface, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Carts: carts, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/mobile/api/v2/cart", h.getCart).Methods("GET")
	r.HandleFunc("/restaurant/api/v1/restaurants/{id}/working-hours", h.getWorkingHours).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// customerID reads X-Customer-ID, or the bearer token when the header is absent.
func customerID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Customer-ID")); id != "" {
		return id
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	customer := customerID(r)
	if customer == "" {
		http.Error(w, "missing customer", http.StatusUnauthorized)
		return
	}
	cart, err := h.Carts.GetCart(r.Context(), customer)
	if errors.Is(err, service.ErrCartNotFound) {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.WithError(err).WithField("customer_id", customer).Error("error loading cart")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Envelope{Data: cart})
}

func (h *Handler) getWorkingHours(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	hours, err := h.Carts.WorkingHours(r.Context(), restaurantID)
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.WithError(err).WithField("restaurant_id", restaurantID).Error("error loading working hours")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.Envelope{Data: hours})
}
