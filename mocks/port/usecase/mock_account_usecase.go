package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockAccountUseCase is a mock type for the AccountUseCase type
type MockAccountUseCase struct {
	mock.Mock
}

// CreateAccount provides a mock function with given fields: ctx
func (_m *MockAccountUseCase) CreateAccount(ctx context.Context) (*entity.Card, error) {
	ret := _m.Called(ctx)

	var r0 *entity.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Card)
	}
	return r0, ret.Error(1)
}

// Authenticate provides a mock function with given fields: ctx, number, pin
func (_m *MockAccountUseCase) Authenticate(ctx context.Context, number string, pin string) (string, error) {
	ret := _m.Called(ctx, number, pin)
	return ret.String(0), ret.Error(1)
}

// ReadBalance provides a mock function with given fields: ctx, number
func (_m *MockAccountUseCase) ReadBalance(ctx context.Context, number string) (int64, error) {
	ret := _m.Called(ctx, number)
	return ret.Get(0).(int64), ret.Error(1)
}

// Credit provides a mock function with given fields: ctx, number, amount
func (_m *MockAccountUseCase) Credit(ctx context.Context, number string, amount int64) (int64, error) {
	ret := _m.Called(ctx, number, amount)
	return ret.Get(0).(int64), ret.Error(1)
}

// CloseAccount provides a mock function with given fields: ctx, number
func (_m *MockAccountUseCase) CloseAccount(ctx context.Context, number string) error {
	ret := _m.Called(ctx, number)
	return ret.Error(0)
}

// NewMockAccountUseCase creates a new instance of MockAccountUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	m := &MockAccountUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
