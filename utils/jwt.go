package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/octabyte/smartsaas-go/models"
)

// UserFromJWT decodes the "user" claim embedded in a bearer token's
// payload without verifying the signature. It gives the UI a user
// preview while the verification round-trip is still in flight; the
// backend remains the authority on whether the token is valid.
func UserFromJWT(token string) (models.User, error) {
	var user models.User

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return user, fmt.Errorf("malformed JWT: expected 3 parts, got %d", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return user, fmt.Errorf("decode JWT payload: %w", err)
	}

	userJSON := gjson.GetBytes(payload, "user").Raw
	if userJSON == "" {
		return user, fmt.Errorf("JWT payload has no user claim")
	}

	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return user, fmt.Errorf("unmarshal user claim: %w", err)
	}
	return user, nil
}
