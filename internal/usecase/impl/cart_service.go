package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/domain/service"
	"openshop/internal/dto"
	"openshop/internal/mapper"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type cartService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadCart resolves the caller and loads their cart with item variants.
func loadCart(ctx context.Context, userRepo repository.UserRepository, cartRepo repository.CartRepository, principal *entity.Principal) (*entity.Cart, error) {
	user, err := resolveCurrentUser(ctx, userRepo, principal)
	if err != nil {
		return nil, err
	}

	cart, err := cartRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WithDetails("Cart not found")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func checkStock(variant *entity.Variant, quantity int) error {
	if quantity > variant.Stock {
		return domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("requested %d of %s, %d in stock", quantity, variant.SKU, variant.Stock),
		)
	}

	return nil
}

// GetCart returns the caller's cart
func (srv *cartService) GetCart(ctx context.Context, principal *entity.Principal) (*dto.CartResponse, error) {
	cart, err := loadCart(ctx, srv.userRepo, srv.cartRepo, principal)
	if err != nil {
		return nil, err
	}

	return mapper.ToCartResponse(cart), nil
}

// AddItem puts a variant into the cart, merging with an existing line for the same variant
func (srv *cartService) AddItem(ctx context.Context, principal *entity.Principal, req *dto.CartItemRequest) (*dto.CartResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	var (
		cart  *entity.Cart
		saved *entity.CartItem
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = loadCart(ctx, repoFactory.UserRepo(), cartRepo, principal)
		if err != nil {
			return err
		}

		variant, err := repoFactory.VariantRepo().FindByID(ctx, req.VariantID)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return domainerrors.ErrVariantNotFound
			}

			return errors.Wrap(err, "failed to find variant")
		}

		item, exists := cart.FindItemByVariant(variant.ID)
		if !exists {
			item = mapper.ToCartItemEntity(req)
			item.CartID = cart.ID
			item.Quantity = 0
		}
		quantity := item.Quantity + req.Quantity

		if err := checkStock(variant, quantity); err != nil {
			return err
		}

		item.Variant = variant
		item.Quantity = quantity
		item.Reprice()

		if err := cartRepo.SaveItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to save cart item")
		}
		if !exists {
			cart.Items = append(cart.Items, item)
		}

		saved = item

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add cart item transaction")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventCartItemAdded, cart.ID.String(), map[string]any{
		"userId":    cart.UserID.String(),
		"itemId":    saved.ID.String(),
		"variantId": saved.Variant.ID.String(),
		"quantity":  saved.Quantity,
	})

	return mapper.ToCartResponse(cart), nil
}

// UpdateItemQuantity sets the quantity of one of the caller's cart items
func (srv *cartService) UpdateItemQuantity(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, quantity int) (*dto.CartResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = loadCart(ctx, repoFactory.UserRepo(), cartRepo, principal)
		if err != nil {
			return err
		}

		item, ok := cart.FindItem(itemID)
		if !ok || item.Variant == nil {
			return domainerrors.ErrCartItemNotFound
		}

		// Stock and price are read fresh, not from the preloaded item.
		variant, err := repoFactory.VariantRepo().FindByID(ctx, item.Variant.ID)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return domainerrors.ErrVariantNotFound
			}

			return errors.Wrap(err, "failed to find variant")
		}

		if err := checkStock(variant, quantity); err != nil {
			return err
		}

		item.Variant = variant
		item.Quantity = quantity
		item.Reprice()

		if err := cartRepo.SaveItem(ctx, item); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to save cart item")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update cart item transaction")
	}

	return mapper.ToCartResponse(cart), nil
}

// RemoveItem deletes one of the caller's cart items
func (srv *cartService) RemoveItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) (*dto.CartResponse, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = loadCart(ctx, repoFactory.UserRepo(), cartRepo, principal)
		if err != nil {
			return err
		}

		if _, ok := cart.FindItem(itemID); !ok {
			return domainerrors.ErrCartItemNotFound
		}

		if err := cartRepo.DeleteItem(ctx, itemID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to delete cart item")
		}
		cart.Items = removeCartItem(cart.Items, itemID)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute remove cart item transaction")
	}

	return mapper.ToCartResponse(cart), nil
}

// ClearCart empties the caller's cart
func (srv *cartService) ClearCart(ctx context.Context, principal *entity.Principal) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var err error
		cart, err = loadCart(ctx, repoFactory.UserRepo(), cartRepo, principal)
		if err != nil {
			return err
		}

		if err := cartRepo.ClearItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute clear cart transaction")
	}

	srv.log(ctx).Info("Cart cleared", slog.Any("cartID", cart.ID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventCartCleared, cart.ID.String(), map[string]any{
		"userId":       cart.UserID.String(),
		"itemsRemoved": len(cart.Items),
	})

	return nil
}

func removeCartItem(items []*entity.CartItem, itemID uuid.UUID) []*entity.CartItem {
	out := make([]*entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			out = append(out, item)
		}
	}

	return out
}
