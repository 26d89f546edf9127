package controllers

import (
	"net/http"

	"github.com/gamehubph/gamehub-backend/api/responses"
	checkoutsvc "github.com/gamehubph/gamehub-backend/internal/checkout"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/logger"
)

// Checkout places the order from the live cart and returns the receipt.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		summary, err := svc.PlaceOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(r.Context(), "order.placed")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, summary)
	}
}
