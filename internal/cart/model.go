package cart

import "time"

// CartItem is a persisted cart line joined with the product fields needed
// for display and stock checks. One row per user+product+variant.
type CartItem struct {
	ID        uint
	UserID    uint
	ProductID uint
	VariantID *uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt *time.Time

	ProductName  string
	Price        int
	ImageURL     *string
	CategoryName string
	ProductStock int
	VariantStock *int
}

type AddToCartParams struct {
	UserID    uint
	ProductID uint
	VariantID *uint
	Quantity  int
}

type UpdateQuantityParams struct {
	UserID    uint
	ProductID uint
	VariantID *uint
	Quantity  int
}

type RemoveParams struct {
	UserID    uint
	ProductID uint
	VariantID *uint
}

type CreateCartItemParams struct {
	UserID    uint
	ProductID uint
	VariantID *uint
	Quantity  int
}
