package token

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mediaverse/mediaverse/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Introspection reports the state and claims of a session token. If Active is
// false the other fields may not be populated.
type Introspection struct {
	Active bool    `json:"active"`
	Name   *string `json:"name,omitempty"` // Display name of the user the token was minted for
	Sub    *string `json:"sub,omitempty"`  // User ID
	Exp    *int64  `json:"exp,omitempty"`  // Expiration (unix seconds)
	Iat    *int64  `json:"iat,omitempty"`  // Issued at time
}

// Manager mints and introspects the bearer tokens that back a session.
type Manager struct {
	signer Signer
	expiry time.Duration
}

func NewManager(signer Signer, expiry time.Duration) *Manager {
	return &Manager{signer: signer, expiry: expiry}
}

// Mint signs a token for the given user with the configured lifetime. The
// payload carries the display name claim the original apps mint, plus
// sub/iat/jti.
func (m *Manager) Mint(user *users.User) (string, time.Time, error) {
	now := NowTimeFunc()
	expiresAt := now.Add(m.expiry)
	claims := jwtlib.MapClaims{
		"name": user.Name,
		"sub":  user.ID,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"jti":  uuid.New().String(),
	}
	signed, err := m.signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Introspect parses and verifies a token. The signature is always checked
// against the signing secret; expired, tampered or malformed tokens come back
// inactive. The exp claim of a verified token is still compared against
// NowTimeFunc so callers with an injected clock see consistent results.
func (m *Manager) Introspect(rawToken string) (*Introspection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &Introspection{Active: false}, nil
	}

	parsed, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, m.signer.GetVerificationKey,
		jwtlib.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return &Introspection{Active: false}, err
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return &Introspection{Active: false}, errors.New("error extracting claims from token")
	}

	name, _ := claims["name"].(string)
	sub, _ := claims["sub"].(string)
	iat, _ := claims["iat"].(float64)
	exp, hasExp := claims["exp"].(float64)

	iatInt := int64(iat)
	expInt := int64(exp)

	active := hasExp && NowTimeFunc().Unix() < expInt

	return &Introspection{
		Active: active,
		Name:   &name,
		Sub:    &sub,
		Exp:    &expInt,
		Iat:    &iatInt,
	}, nil
}
