package storage

import (
	"context"
	"errors"
)

// TokenKey is the single storage key the bearer token lives under.
const TokenKey = "access_token"

// ErrNoToken is returned by Load when no token is persisted.
var ErrNoToken = errors.New("storage: no token persisted")

// TokenStore persists the session bearer token across restarts.
//
// Clear reports whether a token was actually removed: when several
// in-flight requests hit a 401 at once, only the caller whose Clear
// removed the token performs the login redirect.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) (bool, error)
}
