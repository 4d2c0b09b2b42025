package store

import (
	"database/sql"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// NewRecordNotFound builds the not-found error all repositories return, so
// callers can test for it with goerrors.IsNotFound.
func NewRecordNotFound(resource string) *goerrors.Error {
	return goerrors.New(resource+" not found", goerrors.CategoryNotFound).
		WithTextCode("RECORD_NOT_FOUND").
		WithCode(goerrors.CodeNotFound)
}

func notFoundOr(err error, resource string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return NewRecordNotFound(resource)
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "query failed for "+resource)
}
