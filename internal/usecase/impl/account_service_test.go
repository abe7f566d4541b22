package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	mockRepo "heatmap/internal/mocks/repository"
	mockSvc "heatmap/internal/mocks/service"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_DuplicateUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "tester", Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindCredentials(ctx, "tester").
		Return(&repository.Credentials{User: user, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, entity.RoleUser).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "tester", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindCredentials(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "tester", Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindCredentials(ctx, "tester").
		Return(&repository.Credentials{User: user, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "tester", Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_ErrorsAreIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "tester", Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindCredentials(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindCredentials(ctx, "tester").
		Return(&repository.Credentials{User: user, PasswordHash: "stored_hash"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "wrong"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "tester", Password: "wrong"})

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccountService_GetProfile_Unauthenticated(t *testing.T) {
	fx := createTestAccountService(t)

	user, err := fx.service.GetProfile(context.Background(), authz.Anonymous())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Username: "tester", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, authz.NewCaller(userID, entity.RoleUser))

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestAccountService_UpdateProfile_RequiresBothPasswordFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	current := "OldPassword1!"
	input := &usecase.UpdateProfileInput{CurrentPassword: &current}

	user, err := fx.service.UpdateProfile(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateProfile_PasswordRotation(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	current := "OldPassword1!"
	next := "NewPassword1!"
	input := &usecase.UpdateProfileInput{CurrentPassword: &current, NewPassword: &next}

	stored := &entity.User{ID: userID, Username: "tester", Email: "tester@example.com", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().
				FindCredentials(ctx, stored.Username).
				Return(&repository.Credentials{User: stored, PasswordHash: "old_hash"}, nil)
			mockUserRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new_hash").Return(nil)
			mockUserRepo.EXPECT().Update(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(current, "old_hash").Return(true)
	fx.hasher.EXPECT().Hash(next).Return("new_hash", nil)

	user, err := fx.service.UpdateProfile(ctx, authz.NewCaller(userID, entity.RoleUser), input)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAccountService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	current := "WrongPassword1!"
	next := "NewPassword1!"
	input := &usecase.UpdateProfileInput{CurrentPassword: &current, NewPassword: &next}

	stored := &entity.User{ID: userID, Username: "tester", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().
				FindCredentials(ctx, stored.Username).
				Return(&repository.Credentials{User: stored, PasswordHash: "old_hash"}, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(current, "old_hash").Return(false)

	user, err := fx.service.UpdateProfile(ctx, authz.NewCaller(userID, entity.RoleUser), input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdateProfile_ProfileFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	newEmail := "new@example.com"
	input := &usecase.UpdateProfileInput{Email: &newEmail}

	stored := &entity.User{ID: userID, Username: "tester", Email: "old@example.com", Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().Update(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpdateProfile(ctx, authz.NewCaller(userID, entity.RoleUser), input)

	require.NoError(t, err)
	assert.Equal(t, newEmail, user.Email)
}
