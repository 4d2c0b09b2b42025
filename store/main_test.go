package store_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/stockroom/store"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// testDB opens a per-test in-memory database with the schema applied.
func testDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := store.Connect(store.DriverSQLite, dsn)
	require.NoError(t, err)

	// a single connection keeps the shared-cache memory database alive
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.Migrate(context.Background(), db, store.DriverSQLite))

	return db
}
