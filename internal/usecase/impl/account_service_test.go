package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"solarad/config"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	mockRepo "solarad/internal/mocks/repository"
	mockSvc "solarad/internal/mocks/service"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	sessions    *mockSvc.MockSessionStore
}

func createTestAccountService(t *testing.T, seed *config.SeedConfig) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockSvc.NewMockSessionStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("AccountRepo").Return(repository.AccountRepository(accountRepo)).Maybe()

	cfg := &config.Config{Seed: seed}

	service := NewAccountService(AccountServiceParams{
		TxManager:   &mockRepo.PassthroughTransactionManager{Factory: factory},
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Sessions:    sessions,
		Config:      cfg,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		sessions:    sessions,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "secret123").Return("hashed", nil)
	fixtures.accountRepo.On("FindByUsername", ctx, "somchai").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = uuid.New()
		}).
		Return(nil)

	account, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Username: "  SomChai ",
		Password: "secret123",
		FullName: "สมชาย ใจดี",
	})
	require.NoError(t, err)

	assert.Equal(t, "somchai", account.Username)
	assert.Equal(t, entity.RoleEmployee, account.Role)
	assert.True(t, account.IsActive)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	cases := []usecase.RegisterInput{
		{Password: "secret123", FullName: "สมชาย"},
		{Username: "somchai", FullName: "สมชาย"},
		{Username: "somchai", Password: "secret123"},
		{Username: "somchai", Password: "secret123", FullName: "   "},
	}

	for _, input := range cases {
		_, err := fixtures.service.Register(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingField)
	}
}

func TestAccountService_Register_DuplicateHandle(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "secret123").Return("hashed", nil)
	fixtures.accountRepo.On("FindByUsername", ctx, "somchai").
		Return(&entity.Account{ID: uuid.New(), Username: "somchai"}, nil)

	// The handle check is case-insensitive through normalization.
	_, err := fixtures.service.Register(ctx, usecase.RegisterInput{
		Username: "SOMCHAI",
		Password: "secret123",
		FullName: "สมชาย ใจดี",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateHandle)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	accountID := uuid.New()
	fixtures.accountRepo.On("FindByUsername", ctx, "somchai").Return(&entity.Account{
		ID:           accountID,
		Username:     "somchai",
		PasswordHash: "hashed",
		FullName:     "สมชาย ใจดี",
		Role:         entity.RoleEmployee,
		IsActive:     true,
	}, nil)
	fixtures.hasher.On("Check", "secret123", "hashed").Return(true)
	fixtures.sessions.On("Create", ctx, mock.AnythingOfType("entity.Identity")).
		Return("session-id", nil)

	output, err := fixtures.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "SomChai",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "session-id", output.SessionID)
	assert.Equal(t, accountID, output.Identity.ID)
	assert.Equal(t, entity.RoleEmployee, output.Identity.Role)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByUsername", ctx, "somchai").Return(&entity.Account{
		ID:           uuid.New(),
		Username:     "somchai",
		PasswordHash: "hashed",
		IsActive:     true,
	}, nil)
	fixtures.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fixtures.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "somchai",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Authenticate_UnknownAndInactiveLookAlike(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.On("FindByUsername", ctx, "inactive").Return(&entity.Account{
		ID:           uuid.New(),
		Username:     "inactive",
		PasswordHash: "hashed",
		IsActive:     false,
	}, nil)

	_, unknownErr := fixtures.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "ghost",
		Password: "secret123",
	})
	_, inactiveErr := fixtures.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "inactive",
		Password: "secret123",
	})

	// Unknown handles and disabled accounts must be indistinguishable.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, inactiveErr, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Logout(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.sessions.On("Destroy", ctx, "session-id").Return(nil)

	assert.NoError(t, fixtures.service.Logout(ctx, "session-id"))
	assert.NoError(t, fixtures.service.Logout(ctx, ""))
}

func TestAccountService_CreateByAdmin_RoleHandling(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "secret123").Return("hashed", nil)
	fixtures.accountRepo.On("FindByUsername", ctx, "newadmin").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fixtures.service.CreateByAdmin(ctx, usecase.CreateAccountInput{
		Username: "NewAdmin",
		Password: "secret123",
		FullName: "ผู้ดูแล",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, account.Role)

	_, err = fixtures.service.CreateByAdmin(ctx, usecase.CreateAccountInput{
		Username: "broken",
		Password: "secret123",
		FullName: "ผิดพลาด",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateAccount_UnknownIDIsNoop(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()
	id := uuid.New()

	fixtures.accountRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAccountNotFound)

	err := fixtures.service.UpdateAccount(ctx, usecase.UpdateAccountInput{
		ID:       id,
		FullName: "ไม่มีตัวตน",
		Role:     entity.RoleEmployee,
	})
	assert.NoError(t, err)
}

func TestAccountService_UpdateAccount_RotatesPassword(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()
	id := uuid.New()

	fixtures.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:           id,
		Username:     "somchai",
		PasswordHash: "old-hash",
		Role:         entity.RoleEmployee,
		IsActive:     true,
	}, nil)
	fixtures.hasher.On("Hash", "newsecret").Return("new-hash", nil)
	fixtures.accountRepo.On("Update", ctx, mock.MatchedBy(func(account *entity.Account) bool {
		return account.PasswordHash == "new-hash" && account.FullName == "ชื่อใหม่"
	})).Return(nil)

	err := fixtures.service.UpdateAccount(ctx, usecase.UpdateAccountInput{
		ID:       id,
		FullName: "ชื่อใหม่",
		Role:     entity.RoleEmployee,
		IsActive: true,
		Password: "newsecret",
	})
	assert.NoError(t, err)
}

func TestAccountService_DeleteAccount_SelfDeletionForbidden(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()
	callerID := uuid.New()

	err := fixtures.service.DeleteAccount(ctx, callerID, callerID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfDeletionForbidden)
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fixtures := createTestAccountService(t, nil)
	ctx := context.Background()
	callerID, targetID := uuid.New(), uuid.New()

	fixtures.accountRepo.On("Delete", ctx, targetID).Return(nil)

	assert.NoError(t, fixtures.service.DeleteAccount(ctx, callerID, targetID))
}

func TestAccountService_SeedDefaults(t *testing.T) {
	seed := &config.SeedConfig{
		Enabled:          true,
		AdminUsername:    "admin",
		AdminPassword:    "admin123",
		EmployeeUsername: "employee1",
		EmployeePassword: "employee123",
	}
	fixtures := createTestAccountService(t, seed)
	ctx := context.Background()

	// No admin yet, but an employee already exists.
	fixtures.accountRepo.On("CountActiveByRole", ctx, entity.RoleAdmin).Return(int64(0), nil)
	fixtures.accountRepo.On("CountActiveByRole", ctx, entity.RoleEmployee).Return(int64(3), nil)

	fixtures.hasher.On("Hash", "admin123").Return("hashed", nil)
	fixtures.accountRepo.On("FindByUsername", ctx, "admin").
		Return(nil, repository.ErrAccountNotFound)
	fixtures.accountRepo.On("Create", ctx, mock.MatchedBy(func(account *entity.Account) bool {
		return account.Username == "admin" && account.Role == entity.RoleAdmin
	})).Return(nil)

	assert.NoError(t, fixtures.service.SeedDefaults(ctx))
}

func TestAccountService_SeedDefaults_Disabled(t *testing.T) {
	fixtures := createTestAccountService(t, &config.SeedConfig{Enabled: false})

	assert.NoError(t, fixtures.service.SeedDefaults(context.Background()))
}
