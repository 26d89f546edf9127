package controllers

import (
	"net/http"
	"time"

	"github.com/gamehubph/gamehub-backend/api/middleware"
	"github.com/gamehubph/gamehub-backend/api/responses"
	"github.com/gamehubph/gamehub-backend/api/validators"
	"github.com/gamehubph/gamehub-backend/internal/accounts"
	pkgAuth "github.com/gamehubph/gamehub-backend/pkg/auth"
	"github.com/gamehubph/gamehub-backend/pkg/config"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/logger"
)

// accountStore is the surface the auth controllers need from the account store.
type accountStore interface {
	Register(username, password, email string) (accounts.Account, error)
	Login(username, password string) (accounts.Account, string, error)
	Logout()
	Current() (accounts.Account, string, bool)
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	Account     accountView `json:"account"`
}

func newAccountView(acc accounts.Account) accountView {
	return accountView{
		ID:        acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt,
	}
}

// AuthRegister creates a new account. The session is untouched; the client
// logs in separately, matching the storefront's signup flow.
func AuthRegister(store accountStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account store unavailable"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, err := store.Register(payload.Username, payload.Password, payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithAccountID(r.Context(), account.ID), "account.registered")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newAccountView(account))
	}
}

// AuthLogin authenticates and mints an access token bound to the store's
// single live session.
func AuthLogin(store accountStore, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account store unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		account, sessionID, err := store.Login(payload.Username, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
			AccountID: account.ID,
			Username:  account.Username,
			JTI:       sessionID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt"))
			return
		}

		if logg != nil {
			logg.Info(logg.WithAccountID(r.Context(), account.ID), "account.logged_in")
		}
		responses.WriteSuccess(w, loginResponse{
			AccessToken: token,
			Account:     newAccountView(account),
		})
	}
}

// AuthLogout clears the session unconditionally; repeat calls stay 200.
func AuthLogout(store accountStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account store unavailable"))
			return
		}

		store.Logout()
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthMe returns the account behind the live session.
func AuthMe(store accountStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account store unavailable"))
			return
		}

		account, sessionID, ok := store.Current()
		if !ok || sessionID != middleware.SessionIDFromContext(r.Context()) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}

		responses.WriteSuccess(w, newAccountView(account))
	}
}
