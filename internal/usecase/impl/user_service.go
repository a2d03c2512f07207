package impl

import (
	"context"
	"log/slog"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/dto"
	"openshop/internal/mapper"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentUser returns the caller's profile
func (srv *userService) GetCurrentUser(ctx context.Context, principal *entity.Principal) (*dto.UserResponse, error) {
	user, err := resolveCurrentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	return mapper.ToUserResponse(user), nil
}

// UpdateCurrentUser applies the fields present in the request and saves the user once
func (srv *userService) UpdateCurrentUser(ctx context.Context, principal *entity.Principal, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := resolveCurrentUser(ctx, userRepo, principal)
		if err != nil {
			return err
		}

		if req.Username != nil {
			user.Name = *req.Username
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("User profile updated", slog.Any("userID", updated.ID))

	return mapper.ToUserResponse(updated), nil
}

// GetAddresses lists the caller's addresses in insertion order
func (srv *userService) GetAddresses(ctx context.Context, principal *entity.Principal) ([]*dto.AddressResponse, error) {
	user, err := resolveCurrentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	return mapper.ToAddressResponseList(user.Addresses), nil
}

// AddAddress stores a new address owned by the caller
func (srv *userService) AddAddress(ctx context.Context, principal *entity.Principal, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var created *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveCurrentUser(ctx, repoFactory.UserRepo(), principal)
		if err != nil {
			return err
		}

		address := mapper.ToAddressEntity(req)
		address.UserID = user.ID

		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		user.Addresses = append(user.Addresses, address)

		created = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	srv.log(ctx).Info("Address added",
		slog.Any("userID", created.UserID),
		slog.Any("addressID", created.ID),
	)

	return mapper.ToAddressResponse(created), nil
}

// UpdateUserAddress replaces the stored fields the request carries
func (srv *userService) UpdateUserAddress(ctx context.Context, principal *entity.Principal, addressID uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveCurrentUser(ctx, repoFactory.UserRepo(), principal)
		if err != nil {
			return err
		}

		address, ok := user.FindAddress(addressID)
		if !ok {
			return domainerrors.ErrAddressNotFound
		}

		applyAddressChanges(address, req)

		if err := repoFactory.AddressRepo().Update(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	return mapper.ToAddressResponse(updated), nil
}

// DeleteUserAddress detaches the address from the caller and deletes it
func (srv *userService) DeleteUserAddress(ctx context.Context, principal *entity.Principal, addressID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := resolveCurrentUser(ctx, userRepo, principal)
		if err != nil {
			return err
		}

		if !user.RemoveAddress(addressID) {
			return domainerrors.ErrAddressNotFound
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save user")
		}

		if err := repoFactory.AddressRepo().Delete(ctx, addressID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete address transaction")
	}

	srv.log(ctx).Info("Address deleted", slog.Any("addressID", addressID))

	return nil
}

// applyAddressChanges copies the non-empty request fields onto the address.
func applyAddressChanges(address *entity.Address, req *dto.AddressRequest) {
	if req == nil {
		return
	}
	if req.AddressLine != "" {
		address.AddressLine = req.AddressLine
	}
	if req.City != "" {
		address.City = req.City
	}
	if req.State != "" {
		address.State = req.State
	}
	if req.PostalCode != "" {
		address.PostalCode = req.PostalCode
	}
	if req.Country != "" {
		address.Country = req.Country
	}
}
