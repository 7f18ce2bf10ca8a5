package repository

import (
	"context"

	"solarad/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a new mock bound to the test's lifecycle.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// PassthroughTransactionManager runs the callback directly against a fixed
// factory, without any transaction semantics. It lets usecase tests exercise
// the code inside Execute with ordinary mocks.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a new mock bound to the test's lifecycle.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	return m.Called().Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) LocationRepo() repository.LocationRepository {
	return m.Called().Get(0).(repository.LocationRepository)
}

func (m *MockRepositoryFactory) InterestRepo() repository.InterestRepository {
	return m.Called().Get(0).(repository.InterestRepository)
}
