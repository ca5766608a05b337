package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blueshop/storefront/internal/domain"
)

// --- mock ---

type CatalogMock struct {
	products  []domain.Product
	err       error
	loaded    bool
	loadCalls int
}

func (m *CatalogMock) Load(ctx context.Context) ([]domain.Product, error) {
	m.loadCalls++
	if m.err != nil {
		return nil, m.err
	}
	m.loaded = true
	return m.products, nil
}

func (m *CatalogMock) Loaded() bool { return m.loaded }

func (m *CatalogMock) Products() []domain.Product { return m.products }

// --- tests ---

func TestGetProducts_LoadsOnFirstUse(t *testing.T) {
	zero := 0
	mock := &CatalogMock{products: []domain.Product{
		{ID: "p1", Title: "Mug", Price: 12.50, InStock: true},
		{ID: "p2", Title: "Shirt", Price: 25, InStock: false},
		{ID: "p3", Title: "Cap", Price: 15, InStock: true, StockQty: &zero},
	}}
	handler := NewProductHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/products", nil)
	handler.Get(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.loadCalls != 1 {
		t.Errorf("expected one load, got %d", mock.loadCalls)
	}

	var resp ProductsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(resp.Products))
	}
	// Affordance rule: out of stock or zero known stock disables the add.
	if !resp.Products[0].Purchasable {
		t.Error("in-stock product should be purchasable")
	}
	if resp.Products[1].Purchasable {
		t.Error("out-of-stock product should not be purchasable")
	}
	if resp.Products[2].Purchasable {
		t.Error("zero-stock product should not be purchasable")
	}
}

func TestGetProducts_ServesSnapshotOnceLoaded(t *testing.T) {
	mock := &CatalogMock{
		products: []domain.Product{{ID: "p1", Title: "Mug", Price: 12.50, InStock: true}},
		loaded:   true,
	}
	handler := NewProductHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Get(recorder, httptest.NewRequest("GET", "/api/v1/products", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.loadCalls != 0 {
		t.Errorf("expected no refetch, got %d", mock.loadCalls)
	}
}

func TestReloadProducts_AlwaysRefetches(t *testing.T) {
	mock := &CatalogMock{
		products: []domain.Product{{ID: "p1", Title: "Mug", Price: 12.50, InStock: true}},
		loaded:   true,
	}
	handler := NewProductHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Reload(recorder, httptest.NewRequest("POST", "/api/v1/products/reload", nil))

	if mock.loadCalls != 1 {
		t.Errorf("expected one load, got %d", mock.loadCalls)
	}
}

func TestGetProducts_LoadFailure(t *testing.T) {
	mock := &CatalogMock{err: errors.New("failed to load products")}
	handler := NewProductHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Get(recorder, httptest.NewRequest("GET", "/api/v1/products", nil))

	if recorder.Code != http.StatusBadGateway {
		t.Errorf("expected %d, got %d", http.StatusBadGateway, recorder.Code)
	}

	var resp ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&resp)
	if resp.Error != "failed to load products" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}
