// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"solarad/config"
	deliverycontext "solarad/internal/delivery/context"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/domain/service"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	sessions    service.SessionStore
	seed        *config.SeedConfig
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Sessions    service.SessionStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var seed *config.SeedConfig
	if params.Config != nil {
		seed = params.Config.Seed
	}

	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		sessions:    params.Sessions,
		seed:        seed,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register self-registers a new employee account.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	username := normalizeUsername(input.Username)
	if username == "" || input.Password == "" || strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrMissingField
	}

	return srv.createAccount(ctx, usecase.CreateAccountInput{
		Username: username,
		Password: input.Password,
		FullName: strings.TrimSpace(input.FullName),
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     entity.RoleEmployee,
	})
}

// CreateByAdmin creates an account with a caller-chosen role.
func (srv *accountService) CreateByAdmin(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	input.Username = normalizeUsername(input.Username)
	if input.Username == "" || input.Password == "" || strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrMissingField
	}

	if input.Role == "" {
		input.Role = entity.RoleEmployee
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + string(input.Role))
	}

	input.FullName = strings.TrimSpace(input.FullName)

	return srv.createAccount(ctx, input)
}

// createAccount checks handle uniqueness and persists the account within one
// transaction. The storage unique index backstops concurrent registration of
// the same handle.
func (srv *accountService) createAccount(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Creating account", slog.String("username", input.Username), slog.Any("role", input.Role))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: hash,
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrDuplicateHandle
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

// Authenticate verifies credentials and opens a session. Missing and
// inactive accounts answer the same way as a wrong password, so the handle
// space is not probeable.
func (srv *accountService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	username := normalizeUsername(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingField
	}

	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !account.IsActive || !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	identity := account.Identity()

	sessionID, err := srv.sessions.Create(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	srv.log(ctx).Info("Login", slog.String("username", account.Username), slog.Any("role", account.Role))

	return &usecase.AuthenticateOutput{
		SessionID: sessionID,
		Identity:  identity,
	}, nil
}

// Logout destroys a session. Unknown session ids succeed silently.
func (srv *accountService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.sessions.Destroy(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// CurrentUser loads the full account behind a signed-in identity.
func (srv *accountService) CurrentUser(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to load current account")
	}

	return account, nil
}

// UpdateAccount replaces an account's mutable fields. Updating an unknown id
// is a silent no-op.
func (srv *accountService) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) error {
	if input.Role != "" && !input.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role: " + string(input.Role))
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				srv.log(ctx).Warn("Update of unknown account ignored", slog.Any("accountID", input.ID))

				return nil
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		account.FullName = input.FullName
		account.Email = input.Email
		account.Phone = input.Phone
		if input.Role != "" {
			account.Role = input.Role
		}
		account.IsActive = input.IsActive

		if input.Password != "" {
			hash, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed
			}
			account.PasswordHash = hash
		}

		return accountRepo.Update(ctx, account)
	})
}

// DeleteAccount removes an account. The caller cannot delete itself.
func (srv *accountService) DeleteAccount(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return domainerrors.ErrSelfDeletionForbidden
	}

	if err := srv.accountRepo.Delete(ctx, targetID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", targetID), slog.Any("deletedBy", callerID))

	return nil
}

// ListAccounts returns every account, newest first.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// SeedDefaults provisions the default admin and demo employee accounts when
// their role has no active account yet.
func (srv *accountService) SeedDefaults(ctx context.Context) error {
	if srv.seed == nil || !srv.seed.Enabled {
		return nil
	}

	seeds := []usecase.CreateAccountInput{
		{
			Username: srv.seed.AdminUsername,
			Password: srv.seed.AdminPassword,
			FullName: "ผู้ดูแลระบบ",
			Role:     entity.RoleAdmin,
		},
		{
			Username: srv.seed.EmployeeUsername,
			Password: srv.seed.EmployeePassword,
			FullName: "พนักงานทดสอบ",
			Role:     entity.RoleEmployee,
		},
	}

	for _, seed := range seeds {
		if seed.Username == "" || seed.Password == "" {
			continue
		}

		count, err := srv.accountRepo.CountActiveByRole(ctx, seed.Role)
		if err != nil {
			return errors.Wrap(err, "failed to count accounts for seeding")
		}
		if count > 0 {
			continue
		}

		if _, err := srv.createAccount(ctx, seed); err != nil {
			// A concurrent boot may have seeded the same handle already.
			if errors.Is(err, domainerrors.ErrDuplicateHandle) {
				continue
			}

			return errors.Wrap(err, "failed to seed default account")
		}

		srv.log(ctx).Info("Seeded default account", slog.String("username", seed.Username), slog.Any("role", seed.Role))
	}

	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
