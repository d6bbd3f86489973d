package product

import (
	"context"
)

// Service defines the business logic for the product catalog.
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, int64, error)
	Detail(ctx context.Context, productID uint) (*Product, error)
	Variant(ctx context.Context, variantID uint) (*Variant, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, int64, error) {
	return s.repo.GetProducts(ctx, opts)
}

func (s *service) Detail(ctx context.Context, productID uint) (*Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}

func (s *service) Variant(ctx context.Context, variantID uint) (*Variant, error) {
	v, err := s.repo.GetVariantByID(ctx, GetVariantOptions{
		VariantID:  variantID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVariantNotFound
	}
	return v, nil
}
