package auth_test

import (
	"context"

	"github.com/goliatone/stockroom/auth"
	"github.com/goliatone/stockroom/store"
	"github.com/stretchr/testify/mock"
)

// MockIdentity implements auth.Identity for testing
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockIdentity) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) IsActive() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockLogger implements auth.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, username, password string) (auth.Identity, error) {
	args := m.Called(ctx, username, password)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByUsername(ctx context.Context, username string) (auth.Identity, error) {
	args := m.Called(ctx, username)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenValidator implements auth.TokenValidator for testing
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) Validate(raw string) (auth.AuthClaims, error) {
	args := m.Called(raw)
	if claims := args.Get(0); claims != nil {
		return claims.(auth.AuthClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockStaffStore implements auth.StaffStore for testing
type MockStaffStore struct {
	mock.Mock
}

func (m *MockStaffStore) ByUsername(ctx context.Context, username string) (*store.Staff, error) {
	args := m.Called(ctx, username)
	if record := args.Get(0); record != nil {
		return record.(*store.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffStore) TrackAttemptedLogin(ctx context.Context, record *store.Staff) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStaffStore) TrackSuccessfulLogin(ctx context.Context, record *store.Staff) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func testIdentity(id int64, username, email string, active bool) *MockIdentity {
	identity := &MockIdentity{}
	identity.On("ID").Return(id)
	identity.On("Username").Return(username)
	identity.On("Email").Return(email)
	identity.On("IsActive").Return(active)
	return identity
}
