package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blueshop/storefront/internal/checkout"
	"github.com/blueshop/storefront/internal/domain"
)

type CartHandler struct {
	session *checkout.CheckoutSession
}

func NewCartHandler(session *checkout.CheckoutSession) *CartHandler {
	return &CartHandler{session: session}
}

// AddItemRequestDTO is the product snapshot the storefront sends when the
// customer hits the add affordance.
type AddItemRequestDTO struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items  []domain.CartLine `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	h.session.AddItem(domain.Product{
		ID:    req.ID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	})

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero and below removes the line, so no lower bound here.
	h.session.UpdateQuantity(productID, req.Quantity)

	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	h.session.RemoveItem(productID)

	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.session.SetCustomer(customer)

	respondJSON(w, http.StatusOK, customer)
}

func (h *CartHandler) cartResponse() CartResponse {
	return CartResponse{
		Items:  h.session.Lines(),
		Totals: h.session.Totals(),
	}
}
