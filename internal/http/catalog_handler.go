package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/blueshop/storefront/internal/domain"
)

// Catalog is the slice of the catalog client the product handlers need.
type Catalog interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Loaded() bool
	Products() []domain.Product
}

type ProductHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewProductHandler(catalog Catalog, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	InStock     bool    `json:"in_stock"`
	StockQty    *int    `json:"stock_qty,omitempty"`
	Purchasable bool    `json:"purchasable"`
}

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// Get serves the product list, fetching from the collaborator on first use
// and from the in-memory snapshot afterwards.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Loaded() {
		respondJSON(w, http.StatusOK, toProductsResponse(h.catalog.Products()))
		return
	}
	h.load(w, r)
}

// Reload refetches the catalog. This backs the storefront's manual reload
// action; there is no automatic retry.
func (h *ProductHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.load(w, r)
}

func (h *ProductHandler) load(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.Load(ctx)
	if err != nil {
		log.Printf("catalog load failed request_id=%s: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusBadGateway, "load_failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toProductsResponse(products))
}

func toProductsResponse(in []domain.Product) *ProductsResponse {
	products := make([]ProductResponse, len(in))
	for i, p := range in {
		products[i] = ProductResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			InStock:     p.InStock,
			StockQty:    p.StockQty,
			Purchasable: p.Purchasable(),
		}
	}
	return &ProductsResponse{Products: products}
}
