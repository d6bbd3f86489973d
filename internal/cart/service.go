package cart

import (
	"context"

	"blackboxinc-be/internal/product"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	GetCart(ctx context.Context, userID uint, limit, page *int32) ([]ItemView, int64, error)
	Snapshot(ctx context.Context, userID uint) ([]*CartItem, error)
	UpdateQuantity(ctx context.Context, params UpdateQuantityParams) error
	RemoveFromCart(ctx context.Context, params RemoveParams) error
	ClearCart(ctx context.Context, userID uint) error
}

// service implements the Service interface
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddToCart adds a product (optionally a specific variant) to a user's cart.
// Quantities for the same line are merged and checked against stock.
func (s *service) AddToCart(
	ctx context.Context,
	params AddToCartParams,
) (*CartItem, error) {

	if params.UserID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// Resolve available stock: variant stock when a variant is chosen,
	// product stock otherwise. Only active products can be added.
	var available int
	if params.VariantID != nil {
		variant, err := s.productRepo.GetVariantByID(ctx, product.GetVariantOptions{
			VariantID:  *params.VariantID,
			OnlyActive: true,
		})
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, ErrProductNotFound
		}
		available = variant.Stock
	} else {
		p, err := s.productRepo.GetProductByID(ctx, params.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		available = p.Stock
	}

	existing, err := s.repo.GetCartItemByLine(ctx, params.UserID, params.ProductID, params.VariantID)
	if err != nil {
		return nil, err
	}

	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}

	if available < finalQty {
		return nil, ErrInsufficientStock
	}

	if existing == nil {
		return s.repo.CreateCartItem(ctx, CreateCartItemParams{
			UserID:    params.UserID,
			ProductID: params.ProductID,
			VariantID: params.VariantID,
			Quantity:  params.Quantity,
		})
	}

	if err := s.repo.UpdateCartItemQuantity(ctx, existing.ID, finalQty); err != nil {
		return nil, err
	}
	existing.Quantity = finalQty
	return existing, nil
}

// GetCart returns the user's cart projected into display views.
func (s *service) GetCart(
	ctx context.Context,
	userID uint,
	limit, page *int32,
) ([]ItemView, int64, error) {

	items, total, err := s.repo.GetCartItems(ctx, userID, limit, page)
	if err != nil {
		return nil, 0, err
	}

	return ToViews(items), total, nil
}

// Snapshot returns the raw cart lines, unpaginated, for checkout assembly.
func (s *service) Snapshot(ctx context.Context, userID uint) ([]*CartItem, error) {
	items, _, err := s.repo.GetCartItems(ctx, userID, nil, nil)
	return items, err
}

// UpdateQuantity updates the quantity of a cart line; zero or negative removes it.
func (s *service) UpdateQuantity(ctx context.Context, params UpdateQuantityParams) error {
	if params.UserID == 0 {
		return ErrUserNotAuthenticated
	}

	if params.Quantity <= 0 {
		return s.repo.RemoveFromCart(ctx, RemoveParams{
			UserID:    params.UserID,
			ProductID: params.ProductID,
			VariantID: params.VariantID,
		})
	}

	existing, err := s.repo.GetCartItemByLine(ctx, params.UserID, params.ProductID, params.VariantID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCartItemNotFound
	}

	return s.repo.UpdateCartItemQuantity(ctx, existing.ID, params.Quantity)
}

// RemoveFromCart deletes a cart line.
func (s *service) RemoveFromCart(ctx context.Context, params RemoveParams) error {
	if params.UserID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.RemoveFromCart(ctx, params)
}

// ClearCart removes all items for a given user.
func (s *service) ClearCart(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.ClearCart(ctx, userID)
}
