package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "perk/internal/delivery/context"
	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	"perk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

// Login verifies credentials against the account record and issues a token
// pair. Unknown email and wrong password produce the same error, so the
// endpoint does not leak which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issueTokens(account)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Account logged in",
		slog.Any("accountID", account.ID),
	)

	return output, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. A token whose
// account no longer exists fails the same way an invalid token does.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	output, err := srv.issueTokens(account)
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Tokens refreshed",
		slog.Any("accountID", account.ID),
	)

	return output, nil
}

func (srv *authService) issueTokens(account *entity.Account) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccountID:        account.ID,
		Roles:            account.Roles,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}, nil
}
