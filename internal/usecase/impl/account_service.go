// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "heatmap/internal/delivery/context"
	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/domain/service"
	"heatmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with the default user role.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user, passwordHash); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	creds, err := srv.userRepo.FindCredentials(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password, so login cannot probe identifiers.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user credentials")
	}

	if !srv.hasher.Check(input.Password, creds.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.GenerateToken(creds.User.ID, creds.User.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", creds.User.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        creds.User,
	}, nil
}

// GetProfile returns the caller's own account.
func (srv *accountService) GetProfile(ctx context.Context, caller authz.Caller) (*entity.User, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateProfile applies partial profile changes and, when both password
// fields are present, rotates the password after re-verifying the current one.
// Everything runs inside a single transaction so a failed password check
// leaves the profile untouched.
func (srv *accountService) UpdateProfile(ctx context.Context, caller authz.Caller, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	changingPassword := input.CurrentPassword != nil || input.NewPassword != nil
	if changingPassword && (input.CurrentPassword == nil || input.NewPassword == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password change requires both current and new password")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, caller.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by ID")
		}

		if changingPassword {
			creds, err := userRepo.FindCredentials(ctx, user.Username)
			if err != nil {
				return errors.Wrap(err, "failed to load stored credentials")
			}
			if !srv.hasher.Check(*input.CurrentPassword, creds.PasswordHash) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
			}

			newHash, err := srv.hasher.Hash(*input.NewPassword)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
			}
			if err := userRepo.UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
				return errors.Wrap(err, "failed to update password hash")
			}
		}

		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already taken")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", caller.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", updated.ID))

	return updated, nil
}
