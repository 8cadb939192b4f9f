package persistence

import (
	context "context"

	persistence "github.com/amirhossein-jamali/simple-banking/internal/domain/port/persistence"
	mock "github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock type for the UnitOfWork type.
//
// WithinTransaction mirrors the real contract: it records the call, then runs
// Begin, fn, and Commit or Rollback through the mocked methods, so tests set
// expectations on those and assert which one ran.
type MockUnitOfWork struct {
	mock.Mock
}

// Begin provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := _m.Called(ctx)

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}
	return r0, ret.Error(1)
}

// Commit provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Commit(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Rollback provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Rollback(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// WithinTransaction runs fn between the mocked Begin and Commit/Rollback
func (_m *MockUnitOfWork) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := _m.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = _m.Rollback(txCtx)
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}
	if err := _m.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetCardRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetCardRepository(ctx context.Context) persistence.CardRepository {
	ret := _m.Called(ctx)
	return ret.Get(0).(persistence.CardRepository)
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
