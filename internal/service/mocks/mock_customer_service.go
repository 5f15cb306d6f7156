package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/dto"
	"crmapi/internal/result"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) result.OperationResult[[]dto.Customer] {
	args := m.Called(ctx)
	return args.Get(0).(result.OperationResult[[]dto.Customer])
}

func (m *MockCustomerService) Get(ctx context.Context, id int) result.OperationResult[dto.Customer] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.OperationResult[dto.Customer])
}

func (m *MockCustomerService) Create(ctx context.Context, in dto.CustomerCreate) result.OperationResult[dto.Customer] {
	args := m.Called(ctx, in)
	return args.Get(0).(result.OperationResult[dto.Customer])
}

func (m *MockCustomerService) Update(ctx context.Context, id int, in dto.CustomerUpdate) result.OperationResult[dto.Customer] {
	args := m.Called(ctx, id, in)
	return args.Get(0).(result.OperationResult[dto.Customer])
}

func (m *MockCustomerService) Delete(ctx context.Context, id int) result.OperationResult[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.OperationResult[bool])
}
