package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gamehubph/gamehub-backend/api/responses"
	"github.com/gamehubph/gamehub-backend/api/validators"
	cartsvc "github.com/gamehubph/gamehub-backend/internal/cart"
	"github.com/gamehubph/gamehub-backend/internal/catalog"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/logger"
	"github.com/gamehubph/gamehub-backend/pkg/money"
)

// cartStore is the surface the cart controllers need from the cart store.
type cartStore interface {
	Add(product catalog.Product)
	Remove(productID int64)
	UpdateQuantity(productID int64, quantity int)
	ApplyPromoCode(code string) cartsvc.PromoResult
	Snapshot() cartsvc.Snapshot
	Clear()
}

// productLoader resolves catalog products flowing into the cart.
type productLoader interface {
	ByID(id int64) (catalog.Product, error)
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

type updateItemRequest struct {
	// Pointer so an explicit zero survives validation; zero removes the line.
	Quantity *int `json:"quantity" validate:"required"`
}

type promoRequest struct {
	// Empty codes are allowed and clear the promo state.
	Code string `json:"code"`
}

type cartView struct {
	Items            []cartsvc.Line `json:"items"`
	PromoCode        string         `json:"promo_code"`
	DiscountPercent  int            `json:"discount_percent"`
	SubtotalCents    int64          `json:"subtotal_cents"`
	Subtotal         string         `json:"subtotal"`
	DeliveryFeeCents int64          `json:"delivery_fee_cents"`
	DeliveryFee      string         `json:"delivery_fee"`
	TotalCents       int64          `json:"total_cents"`
	Total            string         `json:"total"`
}

// newCartView renders a single consistent snapshot, never a mix of reads
// taken across separate lock holds.
func newCartView(store cartStore) cartView {
	snap := store.Snapshot()
	return cartView{
		Items:            snap.Lines,
		PromoCode:        snap.PromoCode,
		DiscountPercent:  snap.DiscountPercent,
		SubtotalCents:    snap.SubtotalCents,
		Subtotal:         money.FormatPHP(snap.SubtotalCents),
		DeliveryFeeCents: cartsvc.DeliveryFeeCents,
		DeliveryFee:      money.FormatPHP(cartsvc.DeliveryFeeCents),
		TotalCents:       snap.TotalCents,
		Total:            money.FormatPHP(snap.TotalCents),
	}
}

// CartFetch returns the cart with its computed totals.
func CartFetch(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartAddItem adds one unit of a catalog product, merging existing lines.
func CartAddItem(store cartStore, products productLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.ByID(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Add(product)
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartUpdateItem replaces a line's quantity; zero or below removes the line.
func CartUpdateItem(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(productID, *payload.Quantity)
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartRemoveItem deletes a line; unknown ids are still a 200.
func CartRemoveItem(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		store.Remove(productID)
		responses.WriteSuccess(w, newCartView(store))
	}
}

type promoResponse struct {
	Result cartsvc.PromoResult `json:"result"`
	Cart   cartView            `json:"cart"`
}

// CartApplyPromo submits a promo code. Invalid codes are a 200 with a failed
// result, mirroring the storefront's inline feedback.
func CartApplyPromo(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload promoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := store.ApplyPromoCode(payload.Code)
		responses.WriteSuccess(w, promoResponse{
			Result: result,
			Cart:   newCartView(store),
		})
	}
}

// CartClear empties the cart and resets the promo state.
func CartClear(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		store.Clear()
		responses.WriteSuccess(w, newCartView(store))
	}
}
