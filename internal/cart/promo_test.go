package cart

import "testing"

func TestApplyPromoCodeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        string
		wantPercent int
		wantSuccess bool
		wantMessage string
	}{
		{name: "top tier", code: "BKLNGNCLALTOP", wantPercent: 30, wantSuccess: true, wantMessage: "Valid promo code"},
		{name: "mid tier", code: "ALLENKALBO", wantPercent: 20, wantSuccess: true, wantMessage: "Valid promo code"},
		{name: "low tier", code: "MSGYAT", wantPercent: 15, wantSuccess: true, wantMessage: "Valid promo code"},
		{name: "lowercase matches", code: "bklngnclaltop", wantPercent: 30, wantSuccess: true, wantMessage: "Valid promo code"},
		{name: "mixed case matches", code: "MsGyAt", wantPercent: 15, wantSuccess: true, wantMessage: "Valid promo code"},
		{name: "unknown code", code: "NOTACODE", wantPercent: 0, wantSuccess: false, wantMessage: "Invalid promo code"},
		{name: "partial code misses", code: "MSGYA", wantPercent: 0, wantSuccess: false, wantMessage: "Invalid promo code"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore()
			res := store.ApplyPromoCode(tt.code)

			if res.Success != tt.wantSuccess {
				t.Fatalf("success = %v, want %v", res.Success, tt.wantSuccess)
			}
			if res.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", res.Message, tt.wantMessage)
			}
			if got := store.DiscountPercent(); got != tt.wantPercent {
				t.Fatalf("discount = %d, want %d", got, tt.wantPercent)
			}
			if got := store.PromoCode(); got != tt.code {
				t.Fatalf("raw code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestEmptyCodeClearsPromoState(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if res := store.ApplyPromoCode("BKLNGNCLALTOP"); !res.Success {
		t.Fatalf("expected valid promo, got %+v", res)
	}

	res := store.ApplyPromoCode("")
	if res.Success || res.Message != "" {
		t.Fatalf("expected silent reset, got %+v", res)
	}
	if store.DiscountPercent() != 0 {
		t.Fatalf("expected discount reset, got %d", store.DiscountPercent())
	}
	if store.PromoCode() != "" {
		t.Fatalf("expected code cleared, got %q", store.PromoCode())
	}
}

func TestInvalidCodeKeepsRawCodeButZeroesDiscount(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ApplyPromoCode("ALLENKALBO")

	res := store.ApplyPromoCode("WRONG")
	if res.Success {
		t.Fatal("expected failure for unknown code")
	}
	if store.PromoCode() != "WRONG" {
		t.Fatalf("raw code should be stored, got %q", store.PromoCode())
	}
	if store.DiscountPercent() != 0 {
		t.Fatalf("expected discount zeroed, got %d", store.DiscountPercent())
	}
}
