package repository

import (
	"context"

	"solarad/internal/domain/entity"
	"solarad/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

// NewMockLocationRepository creates a new mock bound to the test's lifecycle.
func NewMockLocationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationRepository {
	m := &MockLocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLocationRepository) Create(ctx context.Context, location *entity.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Location), args.Error(1)
}

func (m *MockLocationRepository) Search(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Location), args.Error(1)
}

func (m *MockLocationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
