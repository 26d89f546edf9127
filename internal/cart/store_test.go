package cart

import (
	"testing"

	"github.com/gamehubph/gamehub-backend/internal/catalog"
	"github.com/gamehubph/gamehub-backend/pkg/enums"
	"github.com/gamehubph/gamehub-backend/pkg/money"
)

func ps5() catalog.Product {
	return catalog.Product{ID: 1, Name: "PlayStation 5 Pro", Price: "₱ 44,385.00", Category: enums.ProductCategoryPlaystation}
}

func switchV1() catalog.Product {
	return catalog.Product{ID: 2, Name: "Nintendo Switch v1", Price: "₱10,400.00", Category: enums.ProductCategoryNintendo}
}

func TestAddMergesQuantities(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(ps5())
	store.Add(ps5())

	lines := store.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(switchV1())
	store.Add(ps5())
	store.Add(switchV1())

	lines := store.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != 2 || lines[1].Product.ID != 1 {
		t.Fatalf("expected insertion order [2 1], got [%d %d]", lines[0].Product.ID, lines[1].Product.ID)
	}
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(ps5())
	store.Remove(99)

	if len(store.Lines()) != 1 {
		t.Fatal("removing an unknown id must not change the cart")
	}

	store.Remove(1)
	if len(store.Lines()) != 0 {
		t.Fatal("expected line removed")
	}
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(ps5())

	store.UpdateQuantity(1, 5)
	if got := store.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity replaced with 5, got %d", got)
	}

	// Unknown product id is a no-op, not an append.
	store.UpdateQuantity(42, 3)
	if len(store.Lines()) != 1 {
		t.Fatal("update of unknown id must not add lines")
	}

	store.UpdateQuantity(1, 0)
	if len(store.Lines()) != 0 {
		t.Fatal("quantity 0 must remove the line")
	}

	store.Add(ps5())
	store.UpdateQuantity(1, -5)
	if len(store.Lines()) != 0 {
		t.Fatal("negative quantity must remove the line")
	}
}

func TestSubtotalCents(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if got := store.SubtotalCents(); got != 0 {
		t.Fatalf("empty cart subtotal should be 0, got %d", got)
	}

	store.Add(ps5())
	store.Add(switchV1())
	store.UpdateQuantity(2, 2)

	want := int64(4438500 + 2*1040000)
	if got := store.SubtotalCents(); got != want {
		t.Fatalf("expected subtotal %d, got %d", want, got)
	}
}

func TestSubtotalTreatsUnparseablePriceAsZero(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(catalog.Product{ID: 7, Name: "Mystery Box", Price: "n/a"})
	store.Add(switchV1())

	if got := store.SubtotalCents(); got != 1040000 {
		t.Fatalf("expected bad price to count as zero, got subtotal %d", got)
	}
}

func TestTotalCentsAppliesFeeAndDiscount(t *testing.T) {
	t.Parallel()

	store := NewStore()
	// Subtotal of exactly ₱10,000.00.
	store.Add(catalog.Product{ID: 9, Name: "Gift Card", Price: "₱ 10,000.00"})

	if res := store.ApplyPromoCode("ALLENKALBO"); !res.Success {
		t.Fatalf("expected valid promo, got %+v", res)
	}

	// 10,000 + 500 - 2,000 = 8,500 pesos.
	if got := store.TotalCents(); got != 850000 {
		t.Fatalf("expected total 850000, got %d", got)
	}
}

func TestTotalDiscountTracksLiveSubtotal(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(catalog.Product{ID: 9, Name: "Gift Card", Price: "₱ 10,000.00"})
	store.ApplyPromoCode("ALLENKALBO")

	store.Add(catalog.Product{ID: 10, Name: "Gift Card XL", Price: "₱ 5,000.00"})

	// (10,000+5,000) + 500 - 20% of 15,000 = 12,500 pesos.
	if got := store.TotalCents(); got != 1250000 {
		t.Fatalf("expected total 1250000, got %d", got)
	}
}

func TestSnapshotTotalsAgreeWithLines(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(catalog.Product{ID: 9, Name: "Gift Card", Price: "₱ 10,000.00"})
	store.ApplyPromoCode("ALLENKALBO")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			store.Add(switchV1())
		}
	}()

	// Every snapshot must be internally consistent no matter how the
	// concurrent adds interleave.
	for i := 0; i < 50; i++ {
		snap := store.Snapshot()

		var want int64
		for _, line := range snap.Lines {
			cents, err := money.ParseCents(line.Product.Price)
			if err != nil {
				cents = 0
			}
			want += cents * int64(line.Quantity)
		}
		if snap.SubtotalCents != want {
			t.Fatalf("snapshot subtotal %d disagrees with its lines (%d)", snap.SubtotalCents, want)
		}
		discount := want * int64(snap.DiscountPercent) / 100
		if snap.TotalCents != want+DeliveryFeeCents-discount {
			t.Fatalf("snapshot total %d disagrees with its subtotal %d", snap.TotalCents, want)
		}
	}
	<-done
}

func TestSnapshotAndClear(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(catalog.Product{ID: 9, Name: "Gift Card", Price: "₱ 10,000.00"})
	store.ApplyPromoCode("ALLENKALBO")

	snap := store.SnapshotAndClear()
	if len(snap.Lines) != 1 || snap.SubtotalCents != 1000000 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	// 10,000 + 500 - 2,000 = 8,500 pesos.
	if snap.TotalCents != 850000 {
		t.Fatalf("expected total 850000, got %d", snap.TotalCents)
	}

	if len(store.Lines()) != 0 || store.PromoCode() != "" || store.DiscountPercent() != 0 {
		t.Fatal("expected cart emptied after snapshot-and-clear")
	}
}

func TestSnapshotAndClearLeavesEmptyCartUntouched(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ApplyPromoCode("MSGYAT")

	snap := store.SnapshotAndClear()
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty snapshot, got %d lines", len(snap.Lines))
	}

	if store.DiscountPercent() != 15 || store.PromoCode() != "MSGYAT" {
		t.Fatal("empty-cart snapshot must not drop promo state")
	}
}

func TestClearResetsEverything(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(ps5())
	store.ApplyPromoCode("MSGYAT")

	store.Clear()

	if len(store.Lines()) != 0 {
		t.Fatal("expected no lines after clear")
	}
	if got := store.SubtotalCents(); got != 0 {
		t.Fatalf("expected subtotal 0, got %d", got)
	}
	if store.PromoCode() != "" || store.DiscountPercent() != 0 {
		t.Fatal("expected promo state reset")
	}
}
