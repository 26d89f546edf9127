package accounts

import (
	"context"
	"sync"
	"time"

	pkgerrors "github.com/gamehubph/gamehub-backend/pkg/errors"
	"github.com/google/uuid"
)

// Account is a registered storefront account. Passwords are stored and
// compared as plain strings; hashing is an open question tracked in DESIGN.md.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the single live login for the process.
type Session struct {
	ID        string
	AccountID int64
}

var (
	ErrDuplicateUsername  = pkgerrors.New(pkgerrors.CodeConflict, "username already exists")
	ErrDuplicateEmail     = pkgerrors.New(pkgerrors.CodeConflict, "email already exists")
	ErrInvalidCredentials = pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
)

// Store holds registered accounts and the current session in process memory.
// All operations are serialized by a mutex so the store stays safe when the
// HTTP host drives it from multiple goroutines.
type Store struct {
	mu       sync.Mutex
	accounts []Account
	session  *Session
	nextID   int64
	now      func() time.Time
}

// NewStore builds an empty account store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		now:    time.Now,
	}
}

// Register creates an account. Username uniqueness is checked before email
// uniqueness; both comparisons are case-sensitive. The session is untouched.
func (s *Store) Register(username, password, email string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username {
			return Account{}, ErrDuplicateUsername
		}
	}
	for _, acc := range s.accounts {
		if acc.Email == email {
			return Account{}, ErrDuplicateEmail
		}
	}

	account := Account{
		ID:        s.nextID,
		Username:  username,
		Password:  password,
		Email:     email,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.accounts = append(s.accounts, account)
	return account, nil
}

// Login matches username and password exactly. Success replaces any existing
// session; failure leaves the current session untouched.
func (s *Store) Login(username, password string) (Account, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username && acc.Password == password {
			s.session = &Session{
				ID:        uuid.NewString(),
				AccountID: acc.ID,
			}
			return acc, s.session.ID, nil
		}
	}
	return Account{}, "", ErrInvalidCredentials
}

// Logout clears the session unconditionally. Calling it with no session is
// not an error.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Current returns the logged-in account and its session id, if any.
func (s *Store) Current() (Account, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return Account{}, "", false
	}
	for _, acc := range s.accounts {
		if acc.ID == s.session.AccountID {
			return acc, s.session.ID, true
		}
	}
	return Account{}, "", false
}

// HasSession reports whether the given session id is the live one. It is the
// check the auth middleware runs against presented tokens. The error return
// exists for the middleware's SessionChecker contract, which admits checkers
// backed by external stores; the in-memory lookup itself cannot fail.
func (s *Store) HasSession(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.ID == sessionID, nil
}
