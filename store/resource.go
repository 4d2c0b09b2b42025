package store

import (
	"context"
	"database/sql"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Repository is the shared data access layer for the soft-deletable
// resources. All nine tables share the same life cycle: create, list by
// active flag, fetch, update, deactivate, reactivate.
type Repository[T any] struct {
	db        *bun.DB
	name      string
	idColumn  string
	relations []string
}

// RepositoryOption customizes repository construction.
type RepositoryOption[T any] func(*Repository[T])

// WithIDColumn overrides the primary key column used in lookups. Payments
// are keyed by bill_number instead of id.
func WithIDColumn[T any](column string) RepositoryOption[T] {
	return func(r *Repository[T]) {
		r.idColumn = column
	}
}

// WithRelations eagerly loads the named bun relations on reads.
func WithRelations[T any](relations ...string) RepositoryOption[T] {
	return func(r *Repository[T]) {
		r.relations = append(r.relations, relations...)
	}
}

// NewRepository builds a repository for model T. The name is used in
// not-found errors and log lines.
func NewRepository[T any](db *bun.DB, name string, opts ...RepositoryOption[T]) *Repository[T] {
	repo := &Repository[T]{
		db:       db,
		name:     name,
		idColumn: "id",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo
}

// DB exposes the underlying handle for callers that need raw queries.
func (r *Repository[T]) DB() *bun.DB {
	return r.db
}

func (r *Repository[T]) selectQuery(model any) *bun.SelectQuery {
	q := r.db.NewSelect().Model(model)
	for _, rel := range r.relations {
		q = q.Relation(rel)
	}
	return q
}

// Create inserts the record and scans generated columns back into it.
func (r *Repository[T]) Create(ctx context.Context, record *T) (*T, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create "+r.name)
	}
	return record, nil
}

// ByID fetches a single record by primary key.
func (r *Repository[T]) ByID(ctx context.Context, id int64) (*T, error) {
	record := new(T)
	err := r.selectQuery(record).
		Where(fmt.Sprintf("?TableAlias.%s = ?", r.idColumn), id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, notFoundOr(err, r.name)
	}
	return record, nil
}

// List returns records filtered by the is_active flag, ordered by id.
func (r *Repository[T]) List(ctx context.Context, active bool) ([]T, error) {
	var records []T
	err := r.selectQuery(&records).
		Where("?TableAlias.is_active = ?", active).
		OrderExpr(fmt.Sprintf("?TableAlias.%s ASC", r.idColumn)).
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list "+r.name)
	}
	return records, nil
}

// Update persists every column of the record, matched by primary key.
func (r *Repository[T]) Update(ctx context.Context, record *T) (*T, error) {
	res, err := r.db.NewUpdate().Model(record).WherePK().Exec(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not update "+r.name)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, NewRecordNotFound(r.name)
	}
	return record, nil
}

// SetActive flips the soft-delete flag and returns the updated record.
func (r *Repository[T]) SetActive(ctx context.Context, id int64, active bool) (*T, error) {
	res, err := r.db.NewUpdate().
		Model((*T)(nil)).
		Set("is_active = ?", active).
		Where(fmt.Sprintf("?TableAlias.%s = ?", r.idColumn), id).
		Exec(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not toggle "+r.name)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, NewRecordNotFound(r.name)
	}
	return r.ByID(ctx, id)
}

// RunInTx runs f inside a transaction on the shared handle.
func (r *Repository[T]) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return r.db.RunInTx(ctx, opts, f)
	}
}
