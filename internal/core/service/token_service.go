package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and checks HS256-signed identity tokens. Tokens are
// stateless: subject, issued-at, and expiry only, no server-side session row.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with secret. A non-positive
// ttl falls back to 24 hours.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime, which is also the session
// cookie's max-age.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue mints a token whose subject is the given login.
func (s *TokenService) Issue(login string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   login,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate fails closed: parse errors, signature mismatches, past expiry, and
// subject mismatches all yield a non-nil error.
func (s *TokenService) Validate(token, login string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if claims.Subject != login {
		return fmt.Errorf("token subject %q does not match %q", claims.Subject, login)
	}
	return nil
}

// ExtractSubject decodes the token's subject. It verifies the signature and
// expiry but needs no loaded principal, so it can run before the user lookup.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
