// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"encoding/json"

	"solarad/internal/domain/entity"
	"solarad/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock bound to the test's lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockSessionStore is a mock implementation of service.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

// NewMockSessionStore creates a new mock bound to the test's lifecycle.
func NewMockSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionStore {
	m := &MockSessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionStore) Create(ctx context.Context, identity entity.Identity) (string, error) {
	args := m.Called(ctx, identity)

	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*entity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

func (m *MockSessionStore) Destroy(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockPlacesService is a mock implementation of service.PlacesService.
type MockPlacesService struct {
	mock.Mock
}

// NewMockPlacesService creates a new mock bound to the test's lifecycle.
func NewMockPlacesService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlacesService {
	m := &MockPlacesService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlacesService) Search(ctx context.Context, query service.PlacesQuery) ([]*entity.Location, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Location), args.Error(1)
}

// MockRegionDirectory is a mock implementation of service.RegionDirectory.
type MockRegionDirectory struct {
	mock.Mock
}

// NewMockRegionDirectory creates a new mock bound to the test's lifecycle.
func NewMockRegionDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegionDirectory {
	m := &MockRegionDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRegionDirectory) Provinces(ctx context.Context) ([]entity.Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Province), args.Error(1)
}

func (m *MockRegionDirectory) AmphuresByProvince(ctx context.Context, provinceID int) ([]entity.Amphure, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Amphure), args.Error(1)
}

func (m *MockRegionDirectory) TambonsByAmphure(ctx context.Context, amphureID int) ([]entity.Tambon, error) {
	args := m.Called(ctx, amphureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Tambon), args.Error(1)
}

func (m *MockRegionDirectory) All(ctx context.Context) (*entity.RegionData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RegionData), args.Error(1)
}

func (m *MockRegionDirectory) Centroid(provinceTH string) (entity.Coordinate, bool) {
	args := m.Called(provinceTH)

	return args.Get(0).(entity.Coordinate), args.Bool(1)
}

// MockAddressSearcher is a mock implementation of service.AddressSearcher.
type MockAddressSearcher struct {
	mock.Mock
}

// NewMockAddressSearcher creates a new mock bound to the test's lifecycle.
func NewMockAddressSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressSearcher {
	m := &MockAddressSearcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressSearcher) Search(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(json.RawMessage), args.Error(1)
}
