package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTTL applies when Issue is called without a positive ttl.
const DefaultAccessTTL = 30 * time.Minute

// ErrInvalidCredential is the only error Verify returns. Expired, forged and
// malformed tokens are indistinguishable to the caller.
var ErrInvalidCredential = errors.New("invalid credential")

// JWTManager issues and verifies HS256 access tokens carrying a subject.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager builds a manager signing with secret. A non-positive
// accessTTL falls back to DefaultAccessTTL.
func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	return &JWTManager{secret: []byte(secret), accessTTL: accessTTL, now: time.Now}
}

// WithClock replaces the time source used for both issuing and verifying.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

// AccessTTL returns the default token lifetime.
func (m *JWTManager) AccessTTL() time.Duration { return m.accessTTL }

// Issue signs a token for subject valid for ttl (default lifetime if ttl <= 0).
func (m *JWTManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = m.accessTTL
	}
	now := m.now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

// Verify checks signature and expiry and returns the token subject.
func (m *JWTManager) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid {
		return "", ErrInvalidCredential
	}
	if claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}
