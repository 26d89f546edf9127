package cart

import "strings"

// PromoResult mirrors what the storefront shows after a code submission.
type PromoResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Promo codes unlock a fixed percentage discount. Matching is exact after
// uppercasing; no partial or fuzzy matches.
var promoDiscounts = map[string]int{
	"BKLNGNCLALTOP": 30,
	"ALLENKALBO":    20,
	"MSGYAT":        15,
}

// ApplyPromoCode stores the raw code and recomputes the discount. An empty
// code clears the promo state; an unknown code keeps the raw code but zeroes
// the discount.
func (s *Store) ApplyPromoCode(code string) PromoResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code == "" {
		s.promoCode = ""
		s.discountPercent = 0
		return PromoResult{Success: false, Message: ""}
	}

	s.promoCode = code
	if percent, ok := promoDiscounts[strings.ToUpper(code)]; ok {
		s.discountPercent = percent
		return PromoResult{Success: true, Message: "Valid promo code"}
	}

	s.discountPercent = 0
	return PromoResult{Success: false, Message: "Invalid promo code"}
}
