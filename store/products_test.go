package store_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, db *store.ProductRepository, name string) *store.Product {
	t.Helper()

	record, err := db.Create(context.Background(), &store.Product{
		Name:       name,
		Price:      9.99,
		CategoryID: 1,
		SupplierID: 1,
	})
	require.NoError(t, err)

	return record
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("new products are available", func(t *testing.T) {
		db := testDB(t)
		repo := store.NewProductRepository(store.NewRepository[store.Product](db, "product"))

		record := seedProduct(t, repo, "earl grey")
		assert.Equal(t, store.ProductAvailable, record.Status)

		listed, err := repo.ListByStatus(ctx, store.ProductAvailable)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("status flips require the expected current state", func(t *testing.T) {
		db := testDB(t)
		repo := store.NewProductRepository(store.NewRepository[store.Product](db, "product"))

		record := seedProduct(t, repo, "earl grey")

		retired, err := repo.SetStatus(ctx, record.ID, store.ProductAvailable, store.ProductUnavailable)
		require.NoError(t, err)
		assert.Equal(t, store.ProductUnavailable, retired.Status)

		// retiring again is a not-found: nothing matches the from state
		_, err = repo.SetStatus(ctx, record.ID, store.ProductAvailable, store.ProductUnavailable)
		require.Error(t, err)
		assert.True(t, goerrors.IsNotFound(err))

		restocked, err := repo.SetStatus(ctx, record.ID, store.ProductUnavailable, store.ProductAvailable)
		require.NoError(t, err)
		assert.Equal(t, store.ProductAvailable, restocked.Status)
	})

	t.Run("listing splits on status", func(t *testing.T) {
		db := testDB(t)
		repo := store.NewProductRepository(store.NewRepository[store.Product](db, "product"))

		first := seedProduct(t, repo, "earl grey")
		seedProduct(t, repo, "oolong")

		_, err := repo.SetStatus(ctx, first.ID, store.ProductAvailable, store.ProductUnavailable)
		require.NoError(t, err)

		available, err := repo.ListByStatus(ctx, store.ProductAvailable)
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, "oolong", available[0].Name)

		unavailable, err := repo.ListByStatus(ctx, store.ProductUnavailable)
		require.NoError(t, err)
		require.Len(t, unavailable, 1)
		assert.Equal(t, "earl grey", unavailable[0].Name)
	})
}

func TestRoleRepository_ListWithStaffCount(t *testing.T) {
	ctx := context.Background()

	db := testDB(t)
	roles := store.NewRoleRepository(store.NewRepository[store.Role](db, "role"))
	staff := store.NewStaffRepository(db)

	manager, err := roles.Create(ctx, &store.Role{Name: "manager", IsActive: true})
	require.NoError(t, err)
	_, err = roles.Create(ctx, &store.Role{Name: "clerk", IsActive: true})
	require.NoError(t, err)

	for _, username := range []string{"alice", "bob"} {
		_, err := staff.Register(ctx, &store.Staff{
			FirstName:    "Staff",
			LastName:     "Member",
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: "x",
			RoleID:       manager.ID,
		})
		require.NoError(t, err)
	}

	// a deactivated staff member must not count
	carol, err := staff.Register(ctx, &store.Staff{
		FirstName:    "Carol",
		LastName:     "Jones",
		Username:     "carol",
		Email:        "carol@example.com",
		PasswordHash: "x",
		RoleID:       manager.ID,
	})
	require.NoError(t, err)
	_, err = staff.SetActive(ctx, carol.ID, false)
	require.NoError(t, err)

	listed, err := roles.ListWithStaffCount(ctx, true)
	require.NoError(t, err)
	// the migration seeds an admin role alongside the two created above
	require.Len(t, listed, 3)

	byName := map[string]int64{}
	for _, role := range listed {
		byName[role.Name] = role.StaffCount
	}

	assert.Equal(t, int64(2), byName["manager"])
	assert.Equal(t, int64(0), byName["clerk"])
	assert.Equal(t, int64(0), byName["admin"])
}
