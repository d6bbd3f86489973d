package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrders(ctx context.Context, opts ListOptions) ([]*Order, int64, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	GetByExternalID(ctx context.Context, externalID string) (*Order, error)
	UpdateStatusCode(ctx context.Context, externalID string, code int) error
	UpdateFulfillment(ctx context.Context, orderID uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder persists the order, its items and applied vouchers in one
// transaction and fills in the generated ids.
func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(zap.String("external_id", o.ExternalID))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("Failed to begin tx CreateOrder", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			external_id, user_id, customer_name, customer_email,
			district_id, address_line,
			courier, shipping_service, shipping_cost,
			payment_type, payment_method, payment_channel,
			subtotal, discount, total, status_code
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id, created_at`,
		o.ExternalID, o.UserID, o.CustomerName, o.CustomerEmail,
		o.DistrictID, o.AddressLine,
		o.Courier, o.ShippingService, o.ShippingCost,
		o.PaymentType, o.PaymentMethod, o.PaymentChannel,
		o.Subtotal, o.Discount, o.Total, o.StatusCode,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("DB insert failed CreateOrder", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	for _, item := range o.Items {
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, variant_id, name, price, quantity, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id`,
			o.ID, item.ProductID, item.VariantID, item.Name, item.Price, item.Quantity, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			log.Error("DB insert failed order item", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}
		item.OrderID = o.ID
	}

	for _, voucherID := range o.VoucherIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_vouchers (order_id, voucher_id) VALUES ($1, $2)",
			o.ID, voucherID,
		); err != nil {
			log.Error("DB insert failed order voucher", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit CreateOrder", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	return nil
}

const orderSelect = `
	SELECT
		o.id, o.external_id, o.user_id, o.customer_name, o.customer_email,
		o.district_id, o.address_line,
		o.courier, o.shipping_service, o.shipping_cost,
		o.payment_type, o.payment_method, o.payment_channel,
		o.subtotal, o.discount, o.total,
		o.status_code, o.fulfillment_status,
		o.created_at, o.updated_at
	FROM orders o
`

func scanOrder(scanner interface{ Scan(...interface{}) error }) (*Order, error) {
	var o Order
	var fulfillment sql.NullString

	err := scanner.Scan(
		&o.ID, &o.ExternalID, &o.UserID, &o.CustomerName, &o.CustomerEmail,
		&o.DistrictID, &o.AddressLine,
		&o.Courier, &o.ShippingService, &o.ShippingCost,
		&o.PaymentType, &o.PaymentMethod, &o.PaymentChannel,
		&o.Subtotal, &o.Discount, &o.Total,
		&o.StatusCode, &fulfillment,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fulfillment.Valid {
		s := Status(fulfillment.String)
		o.Fulfillment = &s
	}

	return &o, nil
}

func (r *repository) GetOrders(ctx context.Context, opts ListOptions) ([]*Order, int64, error) {
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
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	where := ""
	args := []interface{}{}
	if opts.UserID != nil {
		where = " WHERE o.user_id = $1"
		args = append(args, *opts.UserID)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders o"+where, args...).Scan(&total); err != nil {
		log.Error("DB count failed GetOrders", zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}

	query := orderSelect + where + " ORDER BY o.created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetOrders", zap.Error(err))
		return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("Row scan failed GetOrders", zap.Error(err))
			return nil, 0, fmt.Errorf("%w: %v", ErrFailedGetOrders, err)
		}
		orders = append(orders, o)
	}

	return orders, total, rows.Err()
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.id = $1", orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed GetOrderDetail", zap.Error(err))
		return nil, err
	}

	items, err := r.getItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *repository) GetByExternalID(ctx context.Context, externalID string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.external_id = $1", externalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed GetByExternalID", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *repository) getItems(ctx context.Context, orderID uint) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, variant_id, name, price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.VariantID,
			&item.Name, &item.Price, &item.Quantity, &item.Subtotal,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *repository) UpdateStatusCode(ctx context.Context, externalID string, code int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status_code = $1, updated_at = NOW()
		WHERE external_id = $2`, code, externalID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB update failed UpdateStatusCode", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) UpdateFulfillment(ctx context.Context, orderID uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET fulfillment_status = $1, updated_at = NOW()
		WHERE id = $2`, string(status), orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB update failed UpdateFulfillment", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateOrder, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
