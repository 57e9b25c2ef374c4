package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/editor"
	"overcooked-checkout/checkout-svc/internal/pricing"
	"overcooked-checkout/checkout-svc/internal/service"
	"overcooked-checkout/checkout-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	sessionsPath = "/api/checkout/sessions"
	sessionPath  = sessionsPath + "/{id}"
)

type Handler struct {
	Sessions service.SessionStore
	Log      logrus.FieldLogger
}

func NewHandler(sessions service.SessionStore, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Sessions: sessions, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc(sessionsPath, h.createSession).Methods("POST")
	r.HandleFunc(sessionPath, h.getSession).Methods("GET")
	r.HandleFunc(sessionPath, h.closeSession).Methods("DELETE")
	r.HandleFunc(sessionPath+"/items/{itemId}/step", h.stepQuantity).Methods("POST")
	r.HandleFunc(sessionPath+"/items/{itemId}/quantity", h.setQuantity).Methods("PUT")
	r.HandleFunc(sessionPath+"/items/{itemId}/removal", h.requestRemoval).Methods("POST")
	r.HandleFunc(sessionPath+"/removal/confirm", h.confirmRemoval).Methods("POST")
	r.HandleFunc(sessionPath+"/removal/cancel", h.cancelRemoval).Methods("POST")
	r.HandleFunc(sessionPath+"/editor", h.openEditor).Methods("POST")
	r.HandleFunc(sessionPath+"/editor", h.updateEditor).Methods("PATCH")
	r.HandleFunc(sessionPath+"/editor", h.closeEditor).Methods("DELETE")
	r.HandleFunc(sessionPath+"/editor/commit", h.commitEditor).Methods("POST")
	r.HandleFunc(sessionPath+"/editor/remove", h.editorRemove).Methods("POST")
	r.HandleFunc(sessionPath+"/promo/pending", h.setPendingPromo).Methods("PUT")
	r.HandleFunc(sessionPath+"/promo", h.applyPromo).Methods("POST")
	r.HandleFunc(sessionPath+"/promo", h.removePromo).Methods("DELETE")
	r.HandleFunc(sessionPath+"/delivery-method", h.setDeliveryMethod).Methods("PUT")
	r.HandleFunc(sessionPath+"/orders", h.placeOrder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "checkout-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := storage.WithAuthorization(r.Context(), r.Header.Get("Authorization"))
	session, err := h.Sessions.Create(ctx)
	if session == nil {
		h.fail(w, err)
		return
	}
	if err != nil {
		h.Log.WithError(err).WithField("session_id", session.ID().String()).Warn("checkout session failed to load")
		writeJSON(w, http.StatusBadGateway, session.View())
		return
	}
	writeJSON(w, http.StatusCreated, session.View())
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.View())
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}
	if err := h.Sessions.Close(id); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type stepRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) stepQuantity(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.StepQuantity(mux.Vars(r)["itemId"], req.Delta)
	})
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.SetQuantity(mux.Vars(r)["itemId"], req.Quantity)
	})
}

func (h *Handler) requestRemoval(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.RequestRemoval(mux.Vars(r)["itemId"])
	})
}

func (h *Handler) confirmRemoval(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*service.CheckoutSession).ConfirmRemoval)
}

func (h *Handler) cancelRemoval(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*service.CheckoutSession).CancelRemoval)
}

type openEditorRequest struct {
	ItemID string `json:"item_id"`
}

func (h *Handler) openEditor(w http.ResponseWriter, r *http.Request) {
	var req openEditorRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.OpenEditor(req.ItemID)
	})
}

type editorUpdateRequest struct {
	Delta        int     `json:"delta"`
	Toggle       string  `json:"toggle"`
	Instructions *string `json:"instructions"`
}

func (h *Handler) updateEditor(w http.ResponseWriter, r *http.Request) {
	var req editorUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		if req.Delta != 0 {
			if err := s.EditorStep(req.Delta); err != nil {
				return err
			}
		}
		if req.Toggle != "" {
			if err := s.EditorToggle(req.Toggle); err != nil {
				return err
			}
		}
		if req.Instructions != nil {
			return s.EditorInstructions(*req.Instructions)
		}
		return nil
	})
}

func (h *Handler) commitEditor(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*service.CheckoutSession).CommitEditor)
}

func (h *Handler) editorRemove(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*service.CheckoutSession).EditorRemove)
}

func (h *Handler) closeEditor(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		s.CloseEditor()
		return nil
	})
}

type promoRequest struct {
	Code string `json:"code"`
}

func (h *Handler) setPendingPromo(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		s.SetPendingPromo(req.Code)
		return nil
	})
}

func (h *Handler) applyPromo(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.ApplyPromo(r.Context())
	})
}

func (h *Handler) removePromo(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*service.CheckoutSession).RemovePromo)
}

type methodRequest struct {
	Method domain.DeliveryMethod `json:"method"`
}

func (h *Handler) setDeliveryMethod(w http.ResponseWriter, r *http.Request) {
	var req methodRequest
	if !decode(w, r, &req) {
		return
	}
	h.mutate(w, r, func(s *service.CheckoutSession) error {
		return s.SetDeliveryMethod(req.Method)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	intent, err := session.PlaceOrder(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, intent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*service.CheckoutSession, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}
	session, err := h.Sessions.Get(id)
	if err != nil {
		h.fail(w, err)
		return nil, false
	}
	return session, true
}

// mutate runs fn against the addressed session and answers with the new view.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(*service.CheckoutSession) error) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := fn(session); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.View())
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.Log.WithError(err).Error("checkout request failed")
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, editor.ErrUnknownCustomization),
		errors.Is(err, pricing.ErrInvalidDiscount):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCartNotLoaded),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrNoEditor),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, editor.ErrRemovalPending),
		errors.Is(err, editor.ErrNoPendingRemoval):
		return http.StatusConflict
	case errors.Is(err, service.ErrCartUnavailable), errors.Is(err, storage.ErrUnexpectedStatus):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
