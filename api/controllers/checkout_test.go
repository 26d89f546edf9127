package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamehubph/gamehub-backend/internal/cart"
	"github.com/gamehubph/gamehub-backend/internal/catalog"
	"github.com/gamehubph/gamehub-backend/internal/checkout"
)

func TestCheckout(t *testing.T) {
	supplier, err := catalog.NewSupplier()
	if err != nil {
		t.Fatalf("build supplier: %v", err)
	}
	store := cart.NewStore()
	svc, err := checkout.NewService(store)
	if err != nil {
		t.Fatalf("build checkout service: %v", err)
	}

	product, err := supplier.ByID(2)
	if err != nil {
		t.Fatalf("load product: %v", err)
	}
	store.Add(product)
	store.Add(product)
	store.ApplyPromoCode("MSGYAT")

	handler := Checkout(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data checkout.OrderSummary `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if envelope.Data.TotalQuantity != 2 {
		t.Fatalf("expected quantity 2 got %d", envelope.Data.TotalQuantity)
	}
	// 2 x ₱10,400.00 = 2,080,000 centavos; 15% off = 312,000; + ₱500.00 fee.
	if envelope.Data.TotalCents != 2080000-312000+50000 {
		t.Fatalf("unexpected total %d", envelope.Data.TotalCents)
	}

	if lines := store.Lines(); len(lines) != 0 {
		t.Fatalf("cart should be cleared after checkout, got %d lines", len(lines))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, err := checkout.NewService(cart.NewStore())
	if err != nil {
		t.Fatalf("build checkout service: %v", err)
	}

	handler := Checkout(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
