package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func staffRecord(t *testing.T, password string) *store.Staff {
	t.Helper()

	hash, err := auth.HashPasswordCost(password, 4)
	require.NoError(t, err)

	return &store.Staff{
		ID:           42,
		FirstName:    "Alice",
		LastName:     "Liddell",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func TestStaffProvider_VerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the identity for valid credentials", func(t *testing.T) {
		record := staffRecord(t, "wonderland42")

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)
		staffStore.On("TrackSuccessfulLogin", ctx, record).Return(nil)

		provider := auth.NewStaffProvider(staffStore)

		identity, err := provider.VerifyIdentity(ctx, "alice", "wonderland42")
		require.NoError(t, err)

		assert.Equal(t, int64(42), identity.ID())
		assert.Equal(t, "alice", identity.Username())
		assert.Equal(t, "alice@example.com", identity.Email())
		assert.True(t, identity.IsActive())

		staffStore.AssertExpectations(t)
	})

	t.Run("wrong password records the attempt", func(t *testing.T) {
		record := staffRecord(t, "wonderland42")

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)
		staffStore.On("TrackAttemptedLogin", ctx, record).Return(nil)

		provider := auth.NewStaffProvider(staffStore)

		_, err := provider.VerifyIdentity(ctx, "alice", "Wonderland42")
		assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)

		staffStore.AssertExpectations(t)
		staffStore.AssertNotCalled(t, "TrackSuccessfulLogin", mock.Anything, mock.Anything)
	})

	t.Run("unknown username maps to identity not found", func(t *testing.T) {
		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "nobody").
			Return(nil, store.NewRecordNotFound("staff"))

		provider := auth.NewStaffProvider(staffStore)

		_, err := provider.VerifyIdentity(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
	})

	t.Run("malformed stored hash reads as bad credentials", func(t *testing.T) {
		record := staffRecord(t, "wonderland42")
		record.PasswordHash = "plaintext-left-by-an-old-migration"

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)
		staffStore.On("TrackAttemptedLogin", ctx, record).Return(nil)

		provider := auth.NewStaffProvider(staffStore)

		_, err := provider.VerifyIdentity(ctx, "alice", "wonderland42")
		assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	})

	t.Run("too many recent attempts locks the account", func(t *testing.T) {
		now := time.Now()
		record := staffRecord(t, "wonderland42")
		record.LoginAttempts = auth.MaxLoginAttempts + 1
		record.LoginAttemptAt = &now

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)

		provider := auth.NewStaffProvider(staffStore)

		_, err := provider.VerifyIdentity(ctx, "alice", "wonderland42")
		assert.ErrorIs(t, err, auth.ErrTooManyLoginAttempts)
	})

	t.Run("attempts outside the cooldown window are forgiven", func(t *testing.T) {
		stale := time.Now().Add(-25 * time.Hour)
		record := staffRecord(t, "wonderland42")
		record.LoginAttempts = auth.MaxLoginAttempts + 1
		record.LoginAttemptAt = &stale

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)
		staffStore.On("TrackSuccessfulLogin", ctx, record).Return(nil)

		provider := auth.NewStaffProvider(staffStore)

		identity, err := provider.VerifyIdentity(ctx, "alice", "wonderland42")
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username())
	})

	t.Run("deactivated staff still verifies", func(t *testing.T) {
		record := staffRecord(t, "wonderland42")
		record.IsActive = false

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)
		staffStore.On("TrackSuccessfulLogin", ctx, record).Return(nil)

		provider := auth.NewStaffProvider(staffStore)

		identity, err := provider.VerifyIdentity(ctx, "alice", "wonderland42")
		require.NoError(t, err)
		assert.False(t, identity.IsActive())
	})
}

func TestStaffProvider_FindIdentityByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves without a password check", func(t *testing.T) {
		record := staffRecord(t, "wonderland42")

		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "alice").Return(record, nil)

		provider := auth.NewStaffProvider(staffStore)

		identity, err := provider.FindIdentityByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(42), identity.ID())
	})

	t.Run("unknown username maps to identity not found", func(t *testing.T) {
		staffStore := &MockStaffStore{}
		staffStore.On("ByUsername", ctx, "nobody").
			Return(nil, store.NewRecordNotFound("staff"))

		provider := auth.NewStaffProvider(staffStore)

		_, err := provider.FindIdentityByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
	})
}

func TestIsOutsideThresholdPeriod(t *testing.T) {
	t.Run("recent timestamp is inside", func(t *testing.T) {
		outside, err := auth.IsOutsideThresholdPeriod(time.Now().Add(-time.Hour), "24h")
		require.NoError(t, err)
		assert.False(t, outside)
	})

	t.Run("stale timestamp is outside", func(t *testing.T) {
		outside, err := auth.IsOutsideThresholdPeriod(time.Now().Add(-25*time.Hour), "24h")
		require.NoError(t, err)
		assert.True(t, outside)
	})

	t.Run("bad duration expression errors", func(t *testing.T) {
		_, err := auth.IsOutsideThresholdPeriod(time.Now(), "one day")
		assert.Error(t, err)
	})
}
