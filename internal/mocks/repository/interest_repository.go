package repository

import (
	"context"

	"solarad/internal/domain/entity"
	"solarad/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInterestRepository is a mock implementation of repository.InterestRepository.
type MockInterestRepository struct {
	mock.Mock
}

// NewMockInterestRepository creates a new mock bound to the test's lifecycle.
func NewMockInterestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInterestRepository {
	m := &MockInterestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInterestRepository) Upsert(ctx context.Context, interest *entity.Interest) error {
	return m.Called(ctx, interest).Error(0)
}

func (m *MockInterestRepository) FindByPair(ctx context.Context, locationID, employeeID uuid.UUID) (*entity.Interest, error) {
	args := m.Called(ctx, locationID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Interest), args.Error(1)
}

func (m *MockInterestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Interest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Interest), args.Error(1)
}

func (m *MockInterestRepository) Update(ctx context.Context, interest *entity.Interest) error {
	return m.Called(ctx, interest).Error(0)
}

func (m *MockInterestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Interest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Interest), args.Error(1)
}

func (m *MockInterestRepository) List(ctx context.Context, filter repository.InterestFilter) ([]*entity.Interest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Interest), args.Error(1)
}

func (m *MockInterestRepository) CountByStatus(ctx context.Context, status entity.InterestStatus) (int64, error) {
	args := m.Called(ctx, status)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterestRepository) CountApproved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
