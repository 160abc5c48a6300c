package jwt

import (
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", 64))

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "test-token-id" }

func newTestJWT(t *testing.T, ttl time.Duration, now time.Time) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "gonotes",
		Audiences: []string{"gonotes"},
		TTL:       ttl,
		Clock:     fakeClock{now: now},
		UUID:      fakeUUID{},
	})
	require.NoError(t, err)

	return j
}

func TestNewHS512_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS512(Config{Secret: []byte("too-short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestSymmetric_GenerateVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t, time.Hour, time.Now())

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.UserEmail)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "gonotes", claims.Issuer)
}

func TestSymmetric_VerifyExpiredToken(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-48 * time.Hour)
	j := newTestJWT(t, time.Hour, past)

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetric_VerifyWrongKey(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t, time.Hour, time.Now())
	other := newTestJWT(t, time.Hour, time.Now())
	other.secret = []byte(strings.Repeat("x", 64))

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestSymmetric_VerifyRejectsOtherSigningMethod(t *testing.T) {
	t.Parallel()

	now := time.Now()
	spoofed, err := libJWT.NewWithClaims(libJWT.SigningMethodHS256, Claims{
		RegisteredClaims: libJWT.RegisteredClaims{
			Subject:   "42",
			Issuer:    "gonotes",
			Audience:  []string{"gonotes"},
			IssuedAt:  libJWT.NewNumericDate(now),
			ExpiresAt: libJWT.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: 42,
	}).SignedString(testSecret)
	require.NoError(t, err)

	j := newTestJWT(t, time.Hour, now)

	_, err = j.Verify(spoofed)
	assert.Error(t, err)
}

func TestSymmetric_VerifyGarbage(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t, time.Hour, time.Now())

	_, err := j.Verify("not.a.token")
	assert.Error(t, err)
}
