package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamehubph/gamehub-backend/api/middleware"
	"github.com/gamehubph/gamehub-backend/internal/accounts"
	pkgAuth "github.com/gamehubph/gamehub-backend/pkg/auth"
	"github.com/gamehubph/gamehub-backend/pkg/config"
	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/gamehubph/gamehub-backend/pkg/types"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "gamehub-test", ExpirationMinutes: 10}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope.Error.Code
}

func TestAuthRegister(t *testing.T) {
	store := accounts.NewStore()
	handler := AuthRegister(store, nil)

	rec := postJSON(t, handler, "/register", `{"username":"alice","password":"pw1","email":"a@x.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data accountView `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Username != "alice" || envelope.Data.ID == 0 {
		t.Fatalf("unexpected account view %+v", envelope.Data)
	}
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
	store := accounts.NewStore()
	handler := AuthRegister(store, nil)

	if rec := postJSON(t, handler, "/register", `{"username":"alice","password":"pw1","email":"a@x.com"}`); rec.Code != http.StatusCreated {
		t.Fatalf("setup register failed: %d", rec.Code)
	}

	rec := postJSON(t, handler, "/register", `{"username":"alice","password":"pw2","email":"b@x.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != string(pkgerrors.CodeConflict) {
		t.Fatalf("unexpected error code %s", code)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	handler := AuthRegister(accounts.NewStore(), nil)

	rec := postJSON(t, handler, "/register", `{"username":"alice","password":"pw1","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAuthLoginMintsSessionBoundToken(t *testing.T) {
	store := accounts.NewStore()
	if _, err := store.Register("alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("register: %v", err)
	}
	cfg := testJWTConfig()
	handler := AuthLogin(store, cfg, nil)

	rec := postJSON(t, handler, "/login", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data loginResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, err := pkgAuth.ParseAccessToken(cfg, envelope.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if ok, _ := store.HasSession(context.Background(), claims.ID); !ok {
		t.Fatal("token jti should match the live session")
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	store := accounts.NewStore()
	if _, err := store.Register("alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("register: %v", err)
	}
	handler := AuthLogin(store, testJWTConfig(), nil)

	rec := postJSON(t, handler, "/login", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthLogoutIsIdempotent(t *testing.T) {
	store := accounts.NewStore()
	handler := AuthLogout(store, nil)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on call %d got %d", i+1, rec.Code)
		}
	}
}

func TestAuthMe(t *testing.T) {
	store := accounts.NewStore()
	if _, err := store.Register("alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, sessionID, err := store.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	handler := AuthMe(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	store.Logout()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout got %d", rec.Code)
	}
}
