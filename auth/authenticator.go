package auth

import (
	"context"
	"reflect"

	goerrors "github.com/goliatone/go-errors"
)

// Auther orchestrates credential verification, token issuance, and request
// identity resolution.
type Auther struct {
	provider     IdentityProvider
	tokenService TokenService
	validator    TokenValidator
	logger       Logger
}

// NewAuthenticator returns a new Authenticator. Tokens are validated through
// the token service unless WithTokenValidator installs a different one.
func NewAuthenticator(provider IdentityProvider, tokenService TokenService) *Auther {
	return &Auther{
		provider:     provider,
		tokenService: tokenService,
		validator:    tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithTokenValidator swaps the validator used by IdentityFromToken. Token
// generation keeps going through the token service.
func (s *Auther) WithTokenValidator(validator TokenValidator) *Auther {
	if validator != nil {
		s.validator = validator
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the username/password pair and issues a signed token.
// The active flag is not consulted here: a deactivated principal still
// receives a usable token for the full validity window.
func (s *Auther) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, username, password)
	if err != nil {
		s.logger.Error("Login verify identity failed for %q: %v", username, err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrIdentityNotFound
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation failed for %q: %v", username, err)
		return "", err
	}

	return token, nil
}

// Impersonate issues a token for the given username without a password
// check. Meant for operator tooling behind its own authorization.
func (s *Auther) Impersonate(ctx context.Context, username string) (string, error) {
	identity, err := s.provider.FindIdentityByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Impersonate find identity failed for %q: %v", username, err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Impersonate identity is nil")
		return "", ErrIdentityNotFound
	}

	return s.tokenService.Generate(identity)
}

// IdentityFromToken validates a bearer token and re-resolves the principal
// named by its subject claim. Every failure maps to ErrUnauthorized; the
// underlying cause is kept in the error chain for logging.
func (s *Auther) IdentityFromToken(ctx context.Context, raw string) (Identity, error) {
	claims, err := s.validator.Validate(raw)
	if err != nil {
		s.logger.Error("IdentityFromToken validation failed: %v", err)
		return nil, unauthorized(err)
	}

	identity, err := s.provider.FindIdentityByUsername(ctx, claims.Subject())
	if err != nil {
		// Covers principals renamed or removed after token issuance.
		s.logger.Error("IdentityFromToken resolve failed for %q: %v", claims.Subject(), err)
		return nil, unauthorized(err)
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		return nil, unauthorized(ErrIdentityNotFound)
	}

	return identity, nil
}

func unauthorized(err error) error {
	return goerrors.Wrap(err, ErrUnauthorized.Category, ErrUnauthorized.Message).
		WithTextCode(ErrUnauthorized.TextCode).
		WithCode(goerrors.CodeUnauthorized)
}
