package cart

import (
	"sync"

	"github.com/gamehubph/gamehub-backend/internal/catalog"
	"github.com/gamehubph/gamehub-backend/pkg/money"
)

// DeliveryFeeCents is the flat delivery charge applied to every order.
const DeliveryFeeCents int64 = 50000

// Line is one product's aggregated quantity in the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store holds the cart lines and promo state. Lines keep insertion order and
// hold at most one entry per product id. A mutex serializes all operations so
// the store stays safe under a multi-goroutine HTTP host.
type Store struct {
	mu              sync.Mutex
	lines           []Line
	promoCode       string
	discountPercent int
}

// NewStore builds an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges the product into an existing line or appends a new one with
// quantity 1. It never fails.
func (s *Store) Add(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: 1})
}

// Remove deletes the line for the product id. Unknown ids are a no-op.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or below
// removes the line; unknown ids are a no-op.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) removeLocked(productID int64) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

// Snapshot is a consistent view of the cart captured under a single lock
// hold, so the totals always agree with the lines they were computed from.
type Snapshot struct {
	Lines           []Line
	PromoCode       string
	DiscountPercent int
	SubtotalCents   int64
	TotalCents      int64
}

// Snapshot captures the lines, promo state, and totals atomically.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SnapshotAndClear captures the cart and empties it in one lock hold, which
// is what checkout needs: no mutation can land between the totals being read
// and the cart being reset. A cart with no lines is left untouched so a
// rejected checkout cannot drop promo state.
func (s *Store) SnapshotAndClear() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	if len(snap.Lines) > 0 {
		s.clearLocked()
	}
	return snap
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	subtotal := s.subtotalLocked()
	discount := subtotal * int64(s.discountPercent) / 100
	return Snapshot{
		Lines:           lines,
		PromoCode:       s.promoCode,
		DiscountPercent: s.discountPercent,
		SubtotalCents:   subtotal,
		TotalCents:      subtotal + DeliveryFeeCents - discount,
	}
}

// SubtotalCents sums price × quantity across all lines. A price that fails
// to parse counts as zero so one bad record cannot wedge the cart.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() int64 {
	var total int64
	for _, line := range s.lines {
		cents, err := money.ParseCents(line.Product.Price)
		if err != nil {
			cents = 0
		}
		total += cents * int64(line.Quantity)
	}
	return total
}

// TotalCents is subtotal plus the flat delivery fee minus the promo discount.
// The discount always applies to the live subtotal, never a cached one.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.subtotalLocked()
	discount := subtotal * int64(s.discountPercent) / 100
	return subtotal + DeliveryFeeCents - discount
}

// Clear empties the lines and resets the promo state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.lines = nil
	s.promoCode = ""
	s.discountPercent = 0
}

// Lines returns a snapshot of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// PromoCode returns the last-submitted code, valid or not.
func (s *Store) PromoCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promoCode
}

// DiscountPercent returns the active discount percentage.
func (s *Store) DiscountPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountPercent
}
