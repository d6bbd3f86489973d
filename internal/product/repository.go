package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"blackboxinc-be/internal/logger"
	"blackboxinc-be/internal/utils"

	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, opts ListOptions) ([]*Product, int64, error)
	GetProductByID(ctx context.Context, productID uint) (*Product, error)
	GetVariantByID(ctx context.Context, opts GetVariantOptions) (*Variant, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(
	ctx context.Context,
	opts ListOptions,
) ([]*Product, int64, error) {

	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.String("filter", utils.PtrString(opts.Filter)),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)
	log.Info("GetProducts started")

	where := []string{"p.status = 'active'"}
	args := []interface{}{}

	if opts.Filter != nil && *opts.Filter != "" {
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*opts.Filter+"%")
	}
	if opts.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *opts.CategoryID)
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	// ---------- COUNT ----------
	var total int64
	countQuery := "SELECT COUNT(*) FROM products p" + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("DB count failed GetProducts", zap.Error(err))
		return nil, 0, err
	}

	// ---------- DATA ----------
	query := `
		SELECT
			p.id,
			p.name,
			p.slug,
			p.category_id,
			c.name,
			p.price,
			p.stock,
			p.description,
			p.image_url,
			p.status,
			p.created_at,
			p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
	` + whereClause

	query += " ORDER BY p.created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetProducts", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.CategoryID,
			&p.CategoryName,
			&p.Price,
			&p.Stock,
			&p.Description,
			&p.ImageURL,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			log.Error("Row scan failed GetProducts", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) GetProductByID(
	ctx context.Context,
	productID uint,
) (*Product, error) {

	log := logger.FromCtx(ctx).With(zap.Uint("product_id", productID))

	query := `
		SELECT
			p.id,
			p.name,
			p.slug,
			p.category_id,
			c.name,
			p.price,
			p.stock,
			p.description,
			p.image_url,
			p.status,
			p.created_at,
			p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.CategoryID,
		&p.CategoryName,
		&p.Price,
		&p.Stock,
		&p.Description,
		&p.ImageURL,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("DB query failed GetProductByID", zap.Error(err))
		return nil, err
	}

	variants, err := r.getVariants(ctx, p.ID)
	if err != nil {
		log.Error("DB query failed loading variants", zap.Error(err))
		return nil, err
	}
	p.Variants = variants

	return &p, nil
}

func (r *repository) getVariants(ctx context.Context, productID uint) ([]*Variant, error) {
	query := `
		SELECT id, product_id, name, price, stock, image_url
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []*Variant
	for rows.Next() {
		var v Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.Stock, &v.ImageURL); err != nil {
			return nil, err
		}
		variants = append(variants, &v)
	}

	return variants, rows.Err()
}

func (r *repository) GetVariantByID(
	ctx context.Context,
	opts GetVariantOptions,
) (*Variant, error) {

	log := logger.FromCtx(ctx).With(zap.Uint("variant_id", opts.VariantID))

	query := `
		SELECT v.id, v.product_id, v.name, v.price, v.stock, v.image_url
		FROM product_variants v
	`
	args := []interface{}{opts.VariantID}

	if opts.OnlyActive {
		query += `
		JOIN products p ON p.id = v.product_id
		WHERE v.id = $1 AND p.status = 'active'`
	} else {
		query += " WHERE v.id = $1"
	}

	var v Variant
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Price, &v.Stock, &v.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("DB query failed GetVariantByID", zap.Error(err))
		return nil, err
	}

	return &v, nil
}
