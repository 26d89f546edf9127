package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/gamehubph/gamehub-backend/internal/cart"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/money"
)

type cartStore interface {
	SnapshotAndClear() cart.Snapshot
}

// OrderItem is one cart line snapshotted into a placed order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderSummary is the receipt returned when an order is placed. Amounts are
// carried in centavos alongside their display strings.
type OrderSummary struct {
	Items            []OrderItem `json:"items"`
	TotalQuantity    int         `json:"total_quantity"`
	SubtotalCents    int64       `json:"subtotal_cents"`
	Subtotal         string      `json:"subtotal"`
	DeliveryFeeCents int64       `json:"delivery_fee_cents"`
	DeliveryFee      string      `json:"delivery_fee"`
	DiscountPercent  int         `json:"discount_percent"`
	SavedCents       int64       `json:"saved_cents"`
	Saved            string      `json:"saved"`
	TotalCents       int64       `json:"total_cents"`
	Total            string      `json:"total"`
	PlacedAt         time.Time   `json:"placed_at"`
}

// Service places orders from the live cart.
type Service interface {
	PlaceOrder(ctx context.Context) (*OrderSummary, error)
}

type service struct {
	cart cartStore
	now  func() time.Time
}

// NewService builds a checkout service over the cart store.
func NewService(store cartStore) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{
		cart: store,
		now:  time.Now,
	}, nil
}

// PlaceOrder snapshots the cart into a receipt and clears it in one atomic
// step, so the totals on the receipt always match its items even when other
// goroutines mutate the cart mid-checkout. An empty cart cannot be checked
// out and is left untouched.
func (s *service) PlaceOrder(_ context.Context) (*OrderSummary, error) {
	snap := s.cart.SnapshotAndClear()
	if len(snap.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make([]OrderItem, 0, len(snap.Lines))
	totalQuantity := 0
	for _, line := range snap.Lines {
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
		totalQuantity += line.Quantity
	}

	saved := snap.SubtotalCents * int64(snap.DiscountPercent) / 100

	return &OrderSummary{
		Items:            items,
		TotalQuantity:    totalQuantity,
		SubtotalCents:    snap.SubtotalCents,
		Subtotal:         money.FormatPHP(snap.SubtotalCents),
		DeliveryFeeCents: cart.DeliveryFeeCents,
		DeliveryFee:      money.FormatPHP(cart.DeliveryFeeCents),
		DiscountPercent:  snap.DiscountPercent,
		SavedCents:       saved,
		Saved:            money.FormatPHP(saved),
		TotalCents:       snap.TotalCents,
		Total:            money.FormatPHP(snap.TotalCents),
		PlacedAt:         s.now(),
	}, nil
}
