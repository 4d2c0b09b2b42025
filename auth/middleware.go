package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

// ErrJWTMissingOrMalformed is returned when the Authorization header is
// absent or does not carry a bearer token.
var ErrJWTMissingOrMalformed = goerrors.New(
	"missing or malformed JWT",
	goerrors.CategoryAuth,
).WithTextCode(textCodeUnauthorized).WithCode(goerrors.CodeUnauthorized)

// MiddlewareConfig configures the bearer-token middleware.
type MiddlewareConfig struct {
	// Authenticator resolves tokens into identities. Required.
	Authenticator Authenticator

	// ContextKey is the locals key the identity is stored under.
	// Optional. Default: "principal".
	ContextKey string

	// AuthScheme expected in the Authorization header.
	// Optional. Default: "Bearer".
	AuthScheme string

	// Filter defines a function to skip the middleware.
	// Optional. Default: nil
	Filter func(*fiber.Ctx) bool

	// ErrorHandler is executed when resolving the identity fails.
	// Optional. Default: 401 with a WWW-Authenticate challenge.
	ErrorHandler fiber.ErrorHandler
}

func (c MiddlewareConfig) withDefaults() MiddlewareConfig {
	if c.ContextKey == "" {
		c.ContextKey = "principal"
	}
	if c.AuthScheme == "" {
		c.AuthScheme = "Bearer"
	}
	if c.ErrorHandler == nil {
		c.ErrorHandler = defaultErrorHandler
	}
	return c
}

func defaultErrorHandler(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponseBody(err))
}

// Protected returns a handler that rejects requests without a valid bearer
// token and stores the resolved identity in both fiber locals and the
// request context.
func Protected(config ...MiddlewareConfig) fiber.Handler {
	cfg := MiddlewareConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	cfg = cfg.withDefaults()

	if cfg.Authenticator == nil {
		panic("auth: Protected middleware requires an Authenticator")
	}

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		token, err := tokenFromHeader(c, cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		identity, err := cfg.Authenticator.IdentityFromToken(c.UserContext(), token)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, identity)
		c.SetUserContext(WithPrincipal(c.UserContext(), identity))

		return c.Next()
	}
}

// PrincipalFrom retrieves the identity the middleware stored in locals.
func PrincipalFrom(c *fiber.Ctx, key ...string) Identity {
	contextKey := "principal"
	if len(key) > 0 && key[0] != "" {
		contextKey = key[0]
	}
	identity, _ := c.Locals(contextKey).(Identity)
	return identity
}

func tokenFromHeader(c *fiber.Ctx, authScheme string) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	l := len(authScheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], authScheme) {
		return strings.TrimSpace(header[l+1:]), nil
	}
	return "", ErrJWTMissingOrMalformed
}
