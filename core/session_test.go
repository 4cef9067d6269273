package core

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionTestSecret = []byte("session-test-secret-32-bytes-long!")

func TestSessionIssuer_RoundTrip(t *testing.T) {
	si := NewSessionIssuer(sessionTestSecret, time.Hour)

	token, err := si.Issue("acct-123", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := si.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "acct-123", accountID)
}

func TestSessionIssuer_ClaimsContent(t *testing.T) {
	si := NewSessionIssuer(sessionTestSecret, time.Hour)

	tokenString, err := si.Issue("acct-123", "a@x.com")
	require.NoError(t, err)

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return sessionTestSecret, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "acct-123", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestSessionIssuer_Verify(t *testing.T) {
	si := NewSessionIssuer(sessionTestSecret, time.Hour)
	token, err := si.Issue("acct-123", "a@x.com")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := si.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := si.Verify(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSessionIssuer([]byte("a-completely-different-32b-secret!"), time.Hour)

		_, err := other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "acct-123"})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = si.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestSessionIssuer_Expired(t *testing.T) {
	si := NewSessionIssuer(sessionTestSecret, time.Millisecond)
	token, err := si.Issue("acct-123", "a@x.com")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = si.Verify(token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionIssuer_DefaultTTL(t *testing.T) {
	si := NewSessionIssuer(sessionTestSecret, 0)

	tokenString, err := si.Issue("acct-123", "a@x.com")
	require.NoError(t, err)

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return sessionTestSecret, nil
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionTTL), claims.ExpiresAt.Time, time.Minute)
}
