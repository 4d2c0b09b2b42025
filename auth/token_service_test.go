package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/stockroom/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Generate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	service := auth.NewTokenService(signingKey, 30*time.Minute, "stockroom", nil)

	t.Run("round trips subject, id and expiry", func(t *testing.T) {
		identity := testIdentity(42, "alice", "alice@example.com", true)

		before := time.Now().UTC()
		token, err := service.Generate(identity)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.Validate(token)
		require.NoError(t, err)

		assert.Equal(t, "alice", claims.Subject())
		assert.Equal(t, int64(42), claims.PrincipalID())

		// exp lands 30 minutes after issuance, give or take clock skew
		assert.WithinDuration(t, before.Add(30*time.Minute), claims.Expires(), 5*time.Second)
		assert.WithinDuration(t, before, claims.IssuedAt(), 5*time.Second)
	})

	t.Run("generates distinct token ids", func(t *testing.T) {
		identity := testIdentity(42, "alice", "alice@example.com", true)

		first, err := service.Generate(identity)
		require.NoError(t, err)

		second, err := service.Generate(identity)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects nil identity", func(t *testing.T) {
		_, err := service.Generate(nil)
		assert.Error(t, err)
	})
}

func TestTokenService_Validate(t *testing.T) {
	signingKey := []byte("test-signing-key")
	service := auth.NewTokenService(signingKey, 30*time.Minute, "stockroom", nil)

	signed := func(ts *auth.TokenServiceImpl, claims *auth.JWTClaims) string {
		token, err := ts.SignClaims(claims)
		require.NoError(t, err)
		return token
	}

	t.Run("rejects expired token", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		token := signed(service, &auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "stockroom",
				Subject:   "alice",
				IssuedAt:  jwt.NewNumericDate(past),
				ExpiresAt: jwt.NewNumericDate(past.Add(30 * time.Minute)),
			},
			UID: 42,
		})

		_, err := service.Validate(token)
		require.Error(t, err)
		assert.True(t, auth.IsTokenExpiredError(err))
	})

	t.Run("rejects token signed with a different key", func(t *testing.T) {
		other := auth.NewTokenService([]byte("some-other-key"), 30*time.Minute, "stockroom", nil)
		identity := testIdentity(42, "alice", "alice@example.com", true)

		token, err := other.Generate(identity)
		require.NoError(t, err)

		_, err = service.Validate(token)
		require.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		identity := testIdentity(42, "alice", "alice@example.com", true)

		token, err := service.Generate(identity)
		require.NoError(t, err)

		_, err = service.Validate(token[:len(token)-2] + "xx")
		require.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		require.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("rejects token without a subject", func(t *testing.T) {
		now := time.Now().UTC()
		token := signed(service, &auth.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "stockroom",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
			},
			UID: 42,
		})

		_, err := service.Validate(token)
		require.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		other := auth.NewTokenService(signingKey, 30*time.Minute, "someone-else", nil)
		identity := testIdentity(42, "alice", "alice@example.com", true)

		token, err := other.Generate(identity)
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.Error(t, err)
	})
}
