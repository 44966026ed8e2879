// Package session holds the single source of truth for "who is logged
// in". All account state mutation funnels through the Store's methods;
// UI code never touches the persisted token directly.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/octabyte/smartsaas-go/gateway"
	"github.com/octabyte/smartsaas-go/models"
	"github.com/octabyte/smartsaas-go/storage"
	"github.com/octabyte/smartsaas-go/utils/logger"
)

const (
	msgLoginSuccess     = "Login successful"
	msgRegisterSuccess  = "Registration successful, welcome!"
	msgLogoutSuccess    = "Logged out"
	msgLoginFallback    = "Login failed"
	msgRegisterFallback = "Registration failed"
)

// API is the slice of the gateway client the session store depends on.
type API interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

// MessageExtractor pulls the server-supplied message out of a failed
// call, falling back to a generic one. gateway.ErrorMessage satisfies
// it.
type MessageExtractor func(err error, fallback string) string

// Result is the discriminated outcome of Login and Register. Callers
// render inline feedback instead of handling errors.
type Result struct {
	Success bool
	Error   string
}

// Config holds the dependencies of a session store.
type Config struct {
	API    API
	Tokens storage.TokenStore
	// Notifier defaults to LogNotifier.
	Notifier Notifier
	// ErrorMessage defaults to a plain unwrap-or-fallback extractor.
	ErrorMessage MessageExtractor
}

// Store owns the current user, the authenticated flag, and the loading
// flag during startup verification. Exactly one of
// Initializing/Anonymous/Authenticated holds at any time.
type Store struct {
	mu       sync.RWMutex
	api      API
	tokens   storage.TokenStore
	notifier Notifier
	errMsg   MessageExtractor

	status Status
	user   models.User
}

func New(cfg Config) *Store {
	if cfg.Tokens == nil {
		cfg.Tokens = storage.NewMemoryStore()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = LogNotifier{}
	}
	if cfg.ErrorMessage == nil {
		cfg.ErrorMessage = gateway.ErrorMessage
	}
	return &Store{
		api:      cfg.API,
		tokens:   cfg.Tokens,
		notifier: cfg.Notifier,
		errMsg:   cfg.ErrorMessage,
		status:   StatusInitializing,
	}
}

// Start restores the session from the persisted token. No token leaves
// the store Anonymous; a token that fails verification for any reason
// is discarded.
func (s *Store) Start(ctx context.Context) {
	_, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoToken) {
			logger.LogErrorf("restoring session token: %v", err)
		}
		s.setAnonymous()
		return
	}

	user, err := s.api.GetCurrentUser(ctx)
	if err != nil {
		if _, clearErr := s.tokens.Clear(ctx); clearErr != nil {
			logger.LogErrorf("discarding stale token: %v", clearErr)
		}
		s.setAnonymous()
		return
	}

	s.setAuthenticated(*user)
}

func (s *Store) Login(ctx context.Context, email, password string) Result {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		msg := s.errMsg(err, msgLoginFallback)
		s.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	if err := s.tokens.Save(ctx, resp.AccessToken); err != nil {
		logger.LogErrorf("persisting session token: %v", err)
	}
	s.setAuthenticated(resp.User)
	s.notifier.Success(msgLoginSuccess)
	return Result{Success: true}
}

func (s *Store) Register(ctx context.Context, email, password string) Result {
	resp, err := s.api.Register(ctx, email, password)
	if err != nil {
		msg := s.errMsg(err, msgRegisterFallback)
		s.notifier.Error(msg)
		return Result{Success: false, Error: msg}
	}

	if err := s.tokens.Save(ctx, resp.AccessToken); err != nil {
		logger.LogErrorf("persisting session token: %v", err)
	}
	s.setAuthenticated(resp.User)
	s.notifier.Success(msgRegisterSuccess)
	return Result{Success: true}
}

// Logout clears the persisted token and the user synchronously. It
// never fails and performs no network access.
func (s *Store) Logout(ctx context.Context) {
	if _, err := s.tokens.Clear(ctx); err != nil {
		logger.LogErrorf("clearing session token on logout: %v", err)
	}
	s.setAnonymous()
	s.notifier.Success(msgLogoutSuccess)
}

// UpdateCredits replaces the user's credit balance in place. It does
// not change authentication state and has no failure mode; negative
// values are ignored.
func (s *Store) UpdateCredits(credits int) {
	if credits < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusAuthenticated {
		return
	}
	s.user.Credits = credits
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// User returns a copy of the current user. The zero value while not
// authenticated.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// IsLoading reports whether startup verification is still in flight.
func (s *Store) IsLoading() bool {
	return s.Status() == StatusInitializing
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAnonymous
	s.user = models.User{}
}

func (s *Store) setAuthenticated(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAuthenticated
	s.user = user
}
