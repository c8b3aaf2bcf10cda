package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	mockRepo "perk/internal/mocks/repository"
	mockSvc "perk/internal/mocks/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockAccountRepository,
	*mockSvc.MockTokenService,
	*mockSvc.MockPasswordHasher,
) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		TokenService: tokenService,
		Hasher:       hasher,
		Logger:       logger,
	})

	return svc, accountRepo, tokenService, hasher
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, accountRepo, tokenService, hasher := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "$2a$10$hash",
		Roles:        []string{"business"},
	}

	accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	hasher.EXPECT().Check("correct-password", account.PasswordHash).Return(true)
	tokenService.EXPECT().GenerateTokens(account.ID, account.Roles).Return("access-token", "refresh-token", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.AccountID)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, []string{"business"}, output.Roles)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), output.RefreshExpiresAt, time.Minute)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, accountRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, accountRepo, tokenService, _ := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:    uuid.New(),
		Email: "owner@example.com",
		Roles: []string{"business", "admin"},
	}

	tokenService.EXPECT().ValidateRefreshToken("old-refresh-token").Return(&service.Claims{
		AccountID: account.ID,
		Type:      "refresh",
	}, nil)
	accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	tokenService.EXPECT().GenerateTokens(account.ID, account.Roles).Return("new-access-token", "new-refresh-token", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.AccountID)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
	assert.Equal(t, []string{"business", "admin"}, output.Roles)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, _, tokenService, _ := createTestAuthService(t)

	ctx := context.Background()

	tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Refresh_AccountGone(t *testing.T) {
	svc, accountRepo, tokenService, _ := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	tokenService.EXPECT().ValidateRefreshToken("orphaned-token").Return(&service.Claims{
		AccountID: accountID,
		Type:      "refresh",
	}, nil)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "orphaned-token"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, accountRepo, _, hasher := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "$2a$10$hash",
	}

	accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	hasher.EXPECT().Check("wrong-password", account.PasswordHash).Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}
