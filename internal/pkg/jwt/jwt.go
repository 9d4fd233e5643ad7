// internal/pkg/jwt/jwt.go
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Config holds token signing settings.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims represents the dashboard JWT claims.
type Claims struct {
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 dashboard tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Generate creates a signed token for a dashboard user.
func (m *Manager) Generate(userID, role string, companyID *string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:      role,
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ID:        ulid.Make().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
