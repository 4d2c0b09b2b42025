package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/stockroom/store"
)

// StaffStore is the credential-store contract: a synchronous exact-match
// lookup plus login bookkeeping.
type StaffStore interface {
	ByUsername(ctx context.Context, username string) (*store.Staff, error)
	TrackAttemptedLogin(ctx context.Context, record *store.Staff) error
	TrackSuccessfulLogin(ctx context.Context, record *store.Staff) error
}

// MaxLoginAttempts is the maximum number of failed attempts a principal gets
// inside the cool down window.
var MaxLoginAttempts = 5

// CoolDownPeriod is the window over which failed attempts accumulate.
var CoolDownPeriod = "24h"

// StaffProvider adapts the staff repository to the IdentityProvider
// contract used by the authenticator.
type StaffProvider struct {
	store  StaffStore
	logger Logger
}

// NewStaffProvider will create a new StaffProvider
func NewStaffProvider(store StaffStore) *StaffProvider {
	return &StaffProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *StaffProvider) WithLogger(logger Logger) *StaffProvider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// VerifyIdentity will find the principal, compare the password, and return
// the identity. The active flag is not checked here.
func (p *StaffProvider) VerifyIdentity(ctx context.Context, username, password string) (Identity, error) {
	staff, err := p.store.ByUsername(ctx, username)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve staff during verification")
	}

	if staff.LoginAttemptAt != nil {
		expired, err := IsOutsideThresholdPeriod(*staff.LoginAttemptAt, CoolDownPeriod)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to calculate login attempt cooldown")
		}

		if expired {
			staff.LoginAttempts = 0
		}
	}

	if staff.LoginAttempts > MaxLoginAttempts {
		return nil, ErrTooManyLoginAttempts
	}

	if err := ComparePasswordAndHash(password, staff.PasswordHash); err != nil {
		if err2 := p.store.TrackAttemptedLogin(ctx, staff); err2 != nil {
			return nil, goerrors.Wrap(err2, goerrors.CategoryInternal, "failed to track login attempt")
		}
		return nil, err
	}

	if err := p.store.TrackSuccessfulLogin(ctx, staff); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to track successful login")
	}

	return staffIdentity{staff}, nil
}

// FindIdentityByUsername resolves a principal without a password check.
func (p *StaffProvider) FindIdentityByUsername(ctx context.Context, username string) (Identity, error) {
	staff, err := p.store.ByUsername(ctx, username)
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve staff")
	}
	return staffIdentity{staff}, nil
}

type staffIdentity struct {
	staff *store.Staff
}

func (i staffIdentity) ID() int64        { return i.staff.ID }
func (i staffIdentity) Username() string { return i.staff.Username }
func (i staffIdentity) Email() string    { return i.staff.Email }
func (i staffIdentity) IsActive() bool   { return i.staff.IsActive }

// Staff exposes the underlying record for handlers that need more than the
// Identity surface.
func (i staffIdentity) Staff() *store.Staff { return i.staff }

// IsOutsideThresholdPeriod reports whether t is further in the past than the
// period expression allows.
func IsOutsideThresholdPeriod(t time.Time, period string) (bool, error) {
	d, err := time.ParseDuration(period)
	if err != nil {
		return false, err
	}
	return time.Since(t) > d, nil
}
