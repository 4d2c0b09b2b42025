package store

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// StaffRepository extends the shared repository with the credential-store
// contract the auth layer depends on: exact-match username lookups and
// login bookkeeping.
type StaffRepository struct {
	*Repository[Staff]
	db *bun.DB
}

func NewStaffRepository(db *bun.DB) *StaffRepository {
	return &StaffRepository{
		Repository: NewRepository[Staff](db, "staff"),
		db:         db,
	}
}

// ByUsername resolves a principal by exact username match, active or not.
func (r *StaffRepository) ByUsername(ctx context.Context, username string) (*Staff, error) {
	record := &Staff{}
	err := r.db.NewSelect().Model(record).
		Where("?TableAlias.username = ?", username).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, notFoundOr(err, "staff")
	}
	return record, nil
}

// ByUsernameOrEmail is the uniqueness lookup used at registration. Username
// and email are unique across active and inactive rows.
func (r *StaffRepository) ByUsernameOrEmail(ctx context.Context, username, email string) (*Staff, error) {
	record := &Staff{}
	err := r.db.NewSelect().Model(record).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.username = ?", username).
				WhereOr("?TableAlias.email = ?", email)
		}).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, notFoundOr(err, "staff")
	}
	return record, nil
}

// ErrStaffExists is returned when a registration collides with an existing
// username or email, active or not.
var ErrStaffExists = goerrors.New("username or email already registered", goerrors.CategoryConflict).
	WithTextCode("DUPLICATE_PRINCIPAL").
	WithCode(goerrors.CodeConflict)

// Register creates a new staff member. The password must already be hashed
// by the caller; new staff are active by default. The uniqueness check and
// the insert run in one transaction.
func (r *StaffRepository) Register(ctx context.Context, record *Staff) (*Staff, error) {
	record.IsActive = true

	err := r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*Staff)(nil)).
			WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("?TableAlias.username = ?", record.Username).
					WhereOr("?TableAlias.email = ?", record.Email)
			}).
			Exists(ctx)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not check staff uniqueness")
		}
		if exists {
			return ErrStaffExists
		}

		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not register staff")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Empty reports whether the staff table has no rows at all. Used to open the
// registration endpoint for the very first principal on a fresh install.
func (r *StaffRepository) Empty(ctx context.Context) (bool, error) {
	count, err := r.db.NewSelect().Model((*Staff)(nil)).Count(ctx)
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "could not count staff")
	}
	return count == 0, nil
}

// TrackAttemptedLogin increments the failed login counter and stamps the
// attempt time.
func (r *StaffRepository) TrackAttemptedLogin(ctx context.Context, record *Staff) error {
	now := time.Now()
	record.LoginAttempts++
	record.LoginAttemptAt = &now

	_, err := r.db.NewUpdate().Model(record).
		Column("login_attempts", "login_attempt_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not track login attempt")
	}
	return nil
}

// TrackSuccessfulLogin resets the failed counter and stamps the login time.
func (r *StaffRepository) TrackSuccessfulLogin(ctx context.Context, record *Staff) error {
	now := time.Now()
	record.LoginAttempts = 0
	record.LoginAttemptAt = nil
	record.LoggedInAt = &now

	_, err := r.db.NewUpdate().Model(record).
		Column("login_attempts", "login_attempt_at", "loggedin_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not track successful login")
	}
	return nil
}
