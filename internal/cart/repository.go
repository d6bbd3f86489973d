package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartItems(ctx context.Context, userID uint, limit, page *int32) ([]*CartItem, int64, error)
	GetCartItemByLine(ctx context.Context, userID, productID uint, variantID *uint) (*CartItem, error)
	CreateCartItem(ctx context.Context, params CreateCartItemParams) (*CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, cartItemID uint, quantity int) error
	RemoveFromCart(ctx context.Context, params RemoveParams) error
	ClearCart(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const cartSelect = `
	SELECT
		ci.id,
		ci.user_id,
		ci.product_id,
		ci.variant_id,
		ci.quantity,
		ci.created_at,
		ci.updated_at,
		p.name,
		COALESCE(v.price, p.price),
		COALESCE(v.image_url, p.image_url),
		c.name,
		p.stock,
		v.stock
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN product_variants v ON v.id = ci.variant_id
`

func scanCartItem(scanner interface{ Scan(...interface{}) error }) (*CartItem, error) {
	var item CartItem
	err := scanner.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.VariantID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.ProductName,
		&item.Price,
		&item.ImageURL,
		&item.CategoryName,
		&item.ProductStock,
		&item.VariantStock,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetCartItems(
	ctx context.Context,
	userID uint,
	limit, page *int32,
) ([]*CartItem, int64, error) {

	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	var total int64
	countQuery := "SELECT COUNT(*) FROM cart_items ci WHERE ci.user_id = $1"
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		log.Error("DB count failed GetCartItems", zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetCartItems, err)
	}

	query := cartSelect + `
	WHERE ci.user_id = $1
	ORDER BY ci.created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, finalLimit, finalOffset)
	if err != nil {
		log.Error("DB query failed GetCartItems", zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetCartItems, err)
	}
	defer rows.Close()

	var items []*CartItem
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			log.Error("Row scan failed GetCartItems", zap.Error(err))
			return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetCartItems, err)
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

func (r *repository) GetCartItemByLine(
	ctx context.Context,
	userID, productID uint,
	variantID *uint,
) (*CartItem, error) {

	query := cartSelect + `
	WHERE ci.user_id = $1
	  AND ci.product_id = $2
	  AND ci.variant_id IS NOT DISTINCT FROM $3`

	item, err := scanCartItem(r.db.QueryRowContext(ctx, query, userID, productID, variantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed GetCartItemByLine", zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (r *repository) CreateCartItem(
	ctx context.Context,
	params CreateCartItemParams,
) (*CartItem, error) {

	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", params.UserID),
		zap.Uint("product_id", params.ProductID),
	)

	query := `
		INSERT INTO cart_items (user_id, product_id, variant_id, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	item := &CartItem{
		UserID:    params.UserID,
		ProductID: params.ProductID,
		VariantID: params.VariantID,
		Quantity:  params.Quantity,
	}

	err := r.db.QueryRowContext(
		ctx, query,
		params.UserID, params.ProductID, params.VariantID, params.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		log.Error("DB insert failed CreateCartItem", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateCartItem, err)
	}

	return item, nil
}

func (r *repository) UpdateCartItemQuantity(
	ctx context.Context,
	cartItemID uint,
	quantity int,
) error {

	query := `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, quantity, cartItemID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB update failed UpdateCartItemQuantity", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (r *repository) RemoveFromCart(ctx context.Context, params RemoveParams) error {
	query := `
		DELETE FROM cart_items
		WHERE user_id = $1
		  AND product_id = $2
		  AND variant_id IS NOT DISTINCT FROM $3`

	res, err := r.db.ExecContext(ctx, query, params.UserID, params.ProductID, params.VariantID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB delete failed RemoveFromCart", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedRemoveCart, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedRemoveCart, err)
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (r *repository) ClearCart(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB delete failed ClearCart", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}
