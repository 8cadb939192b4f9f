package usecase

import (
	context "context"

	usecase "github.com/amirhossein-jamali/simple-banking/internal/domain/port/usecase"
	mock "github.com/stretchr/testify/mock"
)

// MockTransferUseCase is a mock type for the TransferUseCase type
type MockTransferUseCase struct {
	mock.Mock
}

// ValidateTarget provides a mock function with given fields: ctx, source, target
func (_m *MockTransferUseCase) ValidateTarget(ctx context.Context, source string, target string) error {
	ret := _m.Called(ctx, source, target)
	return ret.Error(0)
}

// Transfer provides a mock function with given fields: ctx, source, target, amount
func (_m *MockTransferUseCase) Transfer(ctx context.Context, source string, target string, amount int64) (*usecase.TransferReceipt, error) {
	ret := _m.Called(ctx, source, target, amount)

	var r0 *usecase.TransferReceipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.TransferReceipt)
	}
	return r0, ret.Error(1)
}

// NewMockTransferUseCase creates a new instance of MockTransferUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransferUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransferUseCase {
	m := &MockTransferUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
