package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestJWTManager_IssueVerify(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("super-secret", time.Hour)

	for _, sub := range []string{"u1", "alice@example.com", "名前", strings.Repeat("x", 256)} {
		tok, exp, err := m.Issue(sub, time.Minute)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

		got, err := m.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, sub, got)
	}
}

func TestJWTManager_DefaultTTL(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewJWTManager("secret", 0).WithClock(clock.Now)
	require.Equal(t, DefaultAccessTTL, m.AccessTTL())

	_, exp, err := m.Issue("u1", 0)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(30*time.Minute), exp)
}

func TestJWTManager_Expiry(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewJWTManager("secret", time.Minute).WithClock(clock.Now)

	tok, _, err := m.Issue("u1", time.Minute)
	require.NoError(t, err)

	clock.t = clock.t.Add(59 * time.Second)
	sub, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)

	clock.t = clock.t.Add(2 * time.Second)
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestJWTManager_RejectsForeignTokens(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("right-secret", time.Hour)
	other := NewJWTManager("wrong-secret", time.Hour)

	forged, _, err := other.Issue("u1", time.Minute)
	require.NoError(t, err)

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1", ExpiresAt: exp}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "u1", ExpiresAt: exp}).
		SignedString([]byte("right-secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString([]byte("right-secret"))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: exp}).
		SignedString([]byte("right-secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"wrong secret":   forged,
		"alg none":       none,
		"other hmac alg": hs512,
		"missing exp":    noExp,
		"missing sub":    noSub,
		"malformed":      "not.a.jwt",
		"empty":          "",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			sub, err := m.Verify(tok)
			assert.Empty(t, sub)
			assert.ErrorIs(t, err, ErrInvalidCredential)
			assert.Equal(t, ErrInvalidCredential, err)
		})
	}
}
