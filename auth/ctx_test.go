package auth_test

import (
	"context"
	"testing"

	"github.com/goliatone/stockroom/auth"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalContext(t *testing.T) {
	t.Run("round trips the identity", func(t *testing.T) {
		identity := testIdentity(42, "alice", "alice@example.com", true)

		ctx := auth.WithPrincipal(context.Background(), identity)

		resolved := auth.PrincipalFromContext(ctx)
		assert.NotNil(t, resolved)
		assert.Equal(t, "alice", resolved.Username())
	})

	t.Run("empty context yields nil", func(t *testing.T) {
		assert.Nil(t, auth.PrincipalFromContext(context.Background()))
	})
}
