package impl

import (
	"context"
	"log/slog"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/domain/service"
	"openshop/internal/dto"
	"openshop/internal/mapper"
	"openshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the user, its USER role link and its empty cart in one transaction.
func (srv *authService) RegisterUser(ctx context.Context, req *dto.UserRegisterRequest) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", req.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		// 1. Reject known emails before doing any work
		_, err := userRepo.FindByEmail(ctx, req.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration rejected")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		// 2. The default role must have been seeded
		role, err := roleRepo.FindByRoleName(ctx, entity.RoleUser)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return domainerrors.ErrResourceNotFound.WithDetails("Role USER not found")
			}

			return errors.Wrap(err, "failed to find default role")
		}

		// 3. Build the user and hash the password
		newUser := mapper.ToUserEntity(req)

		hashedPassword, err := srv.hasher.Hash(req.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		newUser.PasswordHash = hashedPassword
		newUser.Roles = []*entity.Role{role}

		// 4. Every user owns exactly one cart from the start
		newUser.Cart = &entity.Cart{Items: []*entity.CartItem{}}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", req.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserRegistered, registeredUser.ID.String(), map[string]any{
		"email":    registeredUser.Email,
		"username": registeredUser.Name,
	})

	return registeredUser, nil
}

// Login verifies the password and issues an access token.
func (srv *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := srv.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", req.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(req.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, user.RoleNames())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:        mapper.ToUserResponse(user),
	}, nil
}
