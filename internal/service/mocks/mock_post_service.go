package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/dto"
	"crmapi/internal/result"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context) result.OperationResult[[]dto.Post] {
	args := m.Called(ctx)
	return args.Get(0).(result.OperationResult[[]dto.Post])
}

func (m *MockPostService) Get(ctx context.Context, id int) result.OperationResult[dto.Post] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.OperationResult[dto.Post])
}

func (m *MockPostService) Create(ctx context.Context, in dto.PostCreate) result.OperationResult[dto.Post] {
	args := m.Called(ctx, in)
	return args.Get(0).(result.OperationResult[dto.Post])
}

func (m *MockPostService) CreateBatch(ctx context.Context, ins []dto.PostCreate) result.OperationResult[[]dto.Post] {
	args := m.Called(ctx, ins)
	return args.Get(0).(result.OperationResult[[]dto.Post])
}

func (m *MockPostService) Update(ctx context.Context, id int, in dto.PostUpdate) result.OperationResult[dto.Post] {
	args := m.Called(ctx, id, in)
	return args.Get(0).(result.OperationResult[dto.Post])
}

func (m *MockPostService) Delete(ctx context.Context, id int) result.OperationResult[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.OperationResult[bool])
}
