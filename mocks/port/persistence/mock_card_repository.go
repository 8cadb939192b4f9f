package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock type for the CardRepository type
type MockCardRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, card
func (_m *MockCardRepository) Create(ctx context.Context, card *entity.Card) error {
	ret := _m.Called(ctx, card)
	return ret.Error(0)
}

// GetByNumber provides a mock function with given fields: ctx, number
func (_m *MockCardRepository) GetByNumber(ctx context.Context, number string) (*entity.Card, error) {
	ret := _m.Called(ctx, number)

	var r0 *entity.Card
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Card); ok {
		r0 = rf(ctx, number)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Card)
	}
	return r0, ret.Error(1)
}

// GetByNumberAndPIN provides a mock function with given fields: ctx, number, pin
func (_m *MockCardRepository) GetByNumberAndPIN(ctx context.Context, number string, pin string) (*entity.Card, error) {
	ret := _m.Called(ctx, number, pin)

	var r0 *entity.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Card)
	}
	return r0, ret.Error(1)
}

// Credit provides a mock function with given fields: ctx, number, amount
func (_m *MockCardRepository) Credit(ctx context.Context, number string, amount int64) (int64, error) {
	ret := _m.Called(ctx, number, amount)
	return ret.Get(0).(int64), ret.Error(1)
}

// Debit provides a mock function with given fields: ctx, number, amount
func (_m *MockCardRepository) Debit(ctx context.Context, number string, amount int64) (int64, error) {
	ret := _m.Called(ctx, number, amount)
	return ret.Get(0).(int64), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, number
func (_m *MockCardRepository) Delete(ctx context.Context, number string) error {
	ret := _m.Called(ctx, number)
	return ret.Error(0)
}

// NewMockCardRepository creates a new instance of MockCardRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCardRepository {
	m := &MockCardRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
