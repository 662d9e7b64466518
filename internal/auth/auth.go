// Package auth issues and verifies the HS256 bearer tokens that identify
// staff and customers on the gRPC API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/and161185/stampcard/internal/errs"
	"github.com/and161185/stampcard/internal/model"
)

// Leeway tolerates clock drift between issuer and server.
const Leeway = 30 * time.Second

// Claims are the JWT claims of an access token. Subject is the staff or customer id.
type Claims struct {
	ShopID string `json:"shop_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs an access token for p valid for ttl from now.
func Issue(key []byte, p model.Principal, now time.Time, ttl time.Duration) (string, error) {
	if len(key) == 0 {
		return "", errors.New("empty signing key")
	}
	claims := Claims{
		ShopID: p.ShopID.String(),
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// Parse verifies an HS256 token and returns its principal.
// Every failure wraps errs.ErrUnauthorized.
func Parse(key []byte, token string) (model.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithLeeway(Leeway), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return model.Principal{}, fmt.Errorf("%w: invalid token", errs.ErrUnauthorized)
	}

	sub, err := uuid.FromString(claims.Subject)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	shop, err := uuid.FromString(claims.ShopID)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: bad shop", errs.ErrUnauthorized)
	}
	role := model.Role(claims.Role)
	switch role {
	case model.RoleAdmin, model.RoleBarista, model.RoleCustomer:
	default:
		return model.Principal{}, fmt.Errorf("%w: unknown role %q", errs.ErrUnauthorized, claims.Role)
	}
	return model.Principal{Subject: sub, ShopID: shop, Role: role}, nil
}
