package auth

import "context"

type contextKey struct{ name string }

var principalCtxKey = &contextKey{"principal"}

// WithPrincipal returns a context carrying the resolved identity.
func WithPrincipal(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, principalCtxKey, identity)
}

// PrincipalFromContext retrieves the identity stored by WithPrincipal, or
// nil when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) Identity {
	identity, _ := ctx.Value(principalCtxKey).(Identity)
	return identity
}
