package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/blueshop/storefront/internal/checkout"
)

type CheckoutHandler struct {
	session *checkout.CheckoutSession
	timeout time.Duration
}

func NewCheckoutHandler(session *checkout.CheckoutSession, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		session: session,
		timeout: timeout,
	}
}

// PlaceOrder runs the full submission sequence. Validation failures never
// reach the collaborator; a submission already in flight is rejected rather
// than queued.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.session.PlaceOrder(ctx)
	if err != nil {
		switch {
		case checkout.IsValidationError(err):
			respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, checkout.ErrSubmissionInFlight):
			respondError(w, http.StatusConflict, "submission_in_flight", err.Error())
		default:
			log.Printf("order placement failed request_id=%s: %v", getRequestID(r.Context()), err)
			respondError(w, http.StatusBadGateway, "order_failed", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// LastOrder serves the confirmation panel for the most recent order.
func (h *CheckoutHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	result := h.session.LastOrder()
	if result == nil {
		respondError(w, http.StatusNotFound, "no_order", "no order has been placed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
