package order

import "time"

type Order struct {
	ID         uint
	ExternalID string
	UserID     *uint // nil for guest (public endpoint) orders

	CustomerName  string
	CustomerEmail string

	DistrictID  string
	AddressLine string

	Courier         string
	ShippingService string
	ShippingCost    int

	PaymentType    string
	PaymentMethod  *string
	PaymentChannel *string

	Subtotal int
	Discount int
	Total    int

	// StatusCode is the payment gateway's numeric transaction status.
	// Fulfillment, when set, overrides the mapped payment status for display.
	StatusCode  int
	Fulfillment *Status

	VoucherIDs []int

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*OrderItem
}

type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	VariantID *uint
	Name      string
	Price     int
	Quantity  int
	Subtotal  int
}

type ListOptions struct {
	UserID *uint // nil lists all orders (admin)
	Limit  *int32
	Page   *int32
}
