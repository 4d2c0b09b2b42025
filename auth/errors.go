package auth

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeBadCredentials  = "BAD_CREDENTIALS"
	textCodeTokenExpired    = "TOKEN_EXPIRED"
	textCodeTokenMalformed  = "TOKEN_MALFORMED"
	textCodeUnauthorized    = "UNAUTHORIZED"
	textCodeTooManyAttempts = "TOO_MANY_LOGIN_ATTEMPTS"
)

// ErrIdentityNotFound is returned when no principal matches the username.
// The HTTP layer collapses it into the generic credentials rejection; the
// distinction survives only in logs.
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryAuth).
	WithTextCode(textCodeBadCredentials).
	WithCode(goerrors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is returned when a password does not verify
// against the stored hash. A malformed stored hash reads the same way.
var ErrMismatchedHashAndPassword = goerrors.New("mismatched hash and password", goerrors.CategoryAuth).
	WithTextCode(textCodeBadCredentials).
	WithCode(goerrors.CodeUnauthorized)

// ErrInvalidCredentials is the caller-facing login rejection. It deliberately
// does not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = goerrors.New("invalid username or password", goerrors.CategoryAuth).
	WithTextCode(textCodeBadCredentials).
	WithCode(goerrors.CodeUnauthorized)

// ErrTooManyLoginAttempts is returned when a principal exceeded the allowed
// failed logins inside the cool down window.
var ErrTooManyLoginAttempts = goerrors.New("too many login attempts", goerrors.CategoryAuth).
	WithTextCode(textCodeTooManyAttempts).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenExpired is returned when the exp claim is in the past.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenMalformed covers signature, format, and claim shape failures.
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrUnauthorized is returned when a bearer token cannot be mapped back to a
// live principal.
var ErrUnauthorized = goerrors.New("credentials could not be validated", goerrors.CategoryAuth).
	WithTextCode(textCodeUnauthorized).
	WithCode(goerrors.CodeUnauthorized)

// ErrNoEmptyString rejects empty passwords at hashing time.
var ErrNoEmptyString = goerrors.New("password must not be empty", goerrors.CategoryBadInput).
	WithCode(goerrors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// ErrorResponseBody shapes err into the single error payload the API returns.
// Every failure, login or token related, comes back in this one shape.
func ErrorResponseBody(err error) map[string]any {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		rich = goerrors.Wrap(err, goerrors.CategoryInternal, "An unexpected server error occurred").
			WithCode(goerrors.CodeInternal)
	}

	body := map[string]any{
		"message": rich.Message,
	}
	if rich.TextCode != "" {
		body["text_code"] = rich.TextCode
	}

	return map[string]any{"error": body}
}
