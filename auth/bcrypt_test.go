package auth_test

import (
	"errors"
	"testing"

	"github.com/goliatone/stockroom/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// low cost keeps the test fast; correctness does not depend on the
	// work factor
	const cost = 4

	t.Run("verifies against the original password", func(t *testing.T) {
		hash, err := auth.HashPasswordCost("wonderland42", cost)
		require.NoError(t, err)
		assert.NotEqual(t, "wonderland42", hash)

		assert.NoError(t, auth.ComparePasswordAndHash("wonderland42", hash))
	})

	t.Run("same password hashes to different strings", func(t *testing.T) {
		first, err := auth.HashPasswordCost("wonderland42", cost)
		require.NoError(t, err)

		second, err := auth.HashPasswordCost("wonderland42", cost)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.NoError(t, auth.ComparePasswordAndHash("wonderland42", first))
		assert.NoError(t, auth.ComparePasswordAndHash("wonderland42", second))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := auth.HashPasswordCost("", cost)
		assert.ErrorIs(t, err, auth.ErrNoEmptyString)
	})

	t.Run("out of range cost falls back to the default", func(t *testing.T) {
		hash, err := auth.HashPasswordCost("wonderland42", 99)
		require.NoError(t, err)
		assert.NoError(t, auth.ComparePasswordAndHash("wonderland42", hash))
	})
}

func TestBcryptHasher(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hasher := auth.BcryptHasher{Cost: 4}

		hash, err := hasher.HashPassword("wonderland42")
		require.NoError(t, err)
		assert.NotEqual(t, "wonderland42", hash)

		assert.NoError(t, hasher.ComparePasswordAndHash("wonderland42", hash))
		assert.ErrorIs(t, hasher.ComparePasswordAndHash("Wonderland42", hash),
			auth.ErrMismatchedHashAndPassword)
	})

	t.Run("zero value uses the default cost", func(t *testing.T) {
		hash, err := auth.BcryptHasher{}.HashPassword("wonderland42")
		require.NoError(t, err)
		assert.NoError(t, auth.ComparePasswordAndHash("wonderland42", hash))
	})
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := auth.HashPasswordCost("wonderland42", 4)
	require.NoError(t, err)

	t.Run("wrong password is a mismatch", func(t *testing.T) {
		err := auth.ComparePasswordAndHash("Wonderland42", hash)
		assert.True(t, errors.Is(err, auth.ErrMismatchedHashAndPassword))
	})

	t.Run("malformed stored hash reads as a mismatch", func(t *testing.T) {
		err := auth.ComparePasswordAndHash("wonderland42", "plaintext-left-by-an-old-migration")
		assert.True(t, errors.Is(err, auth.ErrMismatchedHashAndPassword))
	})

	t.Run("empty hash reads as a mismatch", func(t *testing.T) {
		err := auth.ComparePasswordAndHash("wonderland42", "")
		assert.True(t, errors.Is(err, auth.ErrMismatchedHashAndPassword))
	})
}
