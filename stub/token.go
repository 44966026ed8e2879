package stub

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/octabyte/smartsaas-go/models"
)

const tokenTTL = 24 * time.Hour

// sessionClaims embeds the user snapshot the way the production backend
// does, so clients can peek at it without a verification round-trip.
type sessionClaims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}

func (s *Server) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

func (s *Server) parseToken(raw string) (models.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return models.User{}, err
	}
	if !token.Valid {
		return models.User{}, fmt.Errorf("invalid token")
	}
	return claims.User, nil
}
