package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gamehubph/gamehub-backend/api/responses"
	"github.com/gamehubph/gamehub-backend/internal/catalog"
	"github.com/gamehubph/gamehub-backend/pkg/enums"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/logger"
)

// ListProducts serves the catalog, optionally narrowed by a category chip
// and a name search, matching the storefront home screen's filters.
func ListProducts(supplier *catalog.Supplier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if supplier == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var category enums.ProductCategory
		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			parsed, err := enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			category = parsed
		}

		search := strings.TrimSpace(r.URL.Query().Get("search"))
		responses.WriteSuccess(w, supplier.Filter(category, search))
	}
}

// GetProduct serves a single catalog entry.
func GetProduct(supplier *catalog.Supplier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if supplier == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := supplier.ByID(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
