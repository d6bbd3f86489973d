package order

import (
	"context"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context, opts ListOptions) ([]*Order, int64, error)
	Detail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)
	UpdateStatusByExternalID(ctx context.Context, externalID string, code int) error
	UpdateFulfillment(ctx context.Context, orderID uint, status Status) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, o *Order) error {
	return s.repo.CreateOrder(ctx, o)
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Order, int64, error) {
	return s.repo.GetOrders(ctx, opts)
}

// Detail returns an order; non-admin callers only see their own.
func (s *service) Detail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if o.UserID == nil || *o.UserID != userID {
			return nil, ErrUnauthorized
		}
	}

	return o, nil
}

// UpdateStatusByExternalID applies a webhook-delivered status code.
func (s *service) UpdateStatusByExternalID(ctx context.Context, externalID string, code int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("external_id", externalID),
		zap.Int("status_code", code),
	)

	if err := s.repo.UpdateStatusCode(ctx, externalID, code); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return err
	}

	log.Info("order status updated", zap.String("status", string(StatusFromCode(&code))))
	return nil
}

// UpdateFulfillment sets the fulfillment status (admin path). Only shipped
// and delivered are reachable here; payment outcomes come from the webhook.
func (s *service) UpdateFulfillment(ctx context.Context, orderID uint, status Status) error {
	valid := map[Status]bool{
		StatusShipped:   true,
		StatusDelivered: true,
	}

	if !valid[status] {
		return ErrInvalidFulfillmentStatus
	}

	return s.repo.UpdateFulfillment(ctx, orderID, status)
}
