package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/logger"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/shipping"
)

// ClearCartFunc empties a user's cart after a successful submission. It is
// injected so the checkout service does not own the cart's persistence.
type ClearCartFunc func(ctx context.Context, userID uint) error

// Service runs the checkout flow: selection state for authenticated users
// and order submission for both surfaces.
type Service interface {
	Session(userID uint) *Session
	Submit(ctx context.Context, params SubmitParams) (*Result, error)
	SubmitGuest(ctx context.Context, params GuestSubmitParams) (*Result, error)
}

// SubmitParams is the authenticated submission. Cart lines and selections
// come from the server side (persisted cart + session), not the request.
type SubmitParams struct {
	UserID        uint
	CustomerName  string
	CustomerEmail string
	AddressLine   string
}

// GuestLine is one cart line of a guest submission. Guests have no
// persisted cart, so the lines ride along in the request.
type GuestLine struct {
	ProductID uint  `json:"product_id" validate:"required"`
	VariantID *uint `json:"product_variant_id"`
	Quantity  int   `json:"quantity" validate:"required"`
}

type GuestSubmitParams struct {
	CustomerName   string
	CustomerEmail  string
	AddressLine    string
	DistrictID     string
	Courier        string
	ShippingOption *shipping.CostOption
	Payment        payment.Selection
	Lines          []GuestLine
}

// Result is the submission outcome returned to the handler.
type Result struct {
	Order       *order.Order
	Status      order.Status
	RedirectURL string
	PaymentCode string
}

type service struct {
	sessions    *SessionStore
	cartSvc     cart.Service
	productRepo product.Repository
	orders      order.Service
	gateway     payment.Gateway
	clearCart   ClearCartFunc
}

func NewService(
	sessions *SessionStore,
	cartSvc cart.Service,
	productRepo product.Repository,
	orders order.Service,
	gateway payment.Gateway,
	clearCart ClearCartFunc,
) Service {
	return &service{
		sessions:    sessions,
		cartSvc:     cartSvc,
		productRepo: productRepo,
		orders:      orders,
		gateway:     gateway,
		clearCart:   clearCart,
	}
}

func (s *service) Session(userID uint) *Session {
	return s.sessions.Get(userID)
}

// Submit drives the authenticated checkout: snapshot the cart, assemble
// the private detail items, charge the gateway and persist the order. The
// cart and the session are only cleared once the order is stored.
func (s *service) Submit(ctx context.Context, params SubmitParams) (*Result, error) {
	log := logger.FromCtx(ctx)

	items, err := s.cartSvc.Snapshot(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	details, err := AssembleDetails(items, EndpointPrivate)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Get(params.UserID)
	ship := sess.Shipping()
	if ship.Option == nil {
		return nil, ErrShippingNotSelected
	}
	pay := sess.Payment()
	if pay == nil {
		return nil, ErrPaymentNotSelected
	}

	userID := params.UserID
	o := &order.Order{
		ExternalID:      newExternalID(),
		UserID:          &userID,
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		DistrictID:      sess.Destination(),
		AddressLine:     params.AddressLine,
		Courier:         ship.Courier,
		ShippingService: ship.Option.Service,
		ShippingCost:    ship.Option.Cost,
		VoucherIDs:      sess.Vouchers(),
	}
	fillLines(o, items, details)
	applyPayment(o, *pay)

	resp, err := s.charge(ctx, o, *pay)
	if err != nil {
		return nil, err
	}
	o.StatusCode = resp.StatusCode

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := s.clearCart(ctx, params.UserID); err != nil {
		log.Error("failed to clear cart after checkout",
			zap.Uint("user_id", params.UserID), zap.Error(err))
	}
	s.sessions.Clear(params.UserID)

	log.Info("checkout submitted",
		zap.String("external_id", o.ExternalID),
		zap.Int("status_code", o.StatusCode))

	return &Result{
		Order:       o,
		Status:      o.Status(),
		RedirectURL: resp.RedirectURL,
		PaymentCode: resp.PaymentCode,
	}, nil
}

// SubmitGuest drives the public checkout. Lines arrive in the request and
// are priced against the catalog; variant ids stay optional.
func (s *service) SubmitGuest(ctx context.Context, params GuestSubmitParams) (*Result, error) {
	log := logger.FromCtx(ctx)

	if len(params.Lines) == 0 {
		return nil, ErrCartEmpty
	}
	if params.ShippingOption == nil {
		return nil, ErrShippingNotSelected
	}
	if err := params.Payment.Validate(); err != nil {
		return nil, err
	}

	items, err := s.resolveLines(ctx, params.Lines)
	if err != nil {
		return nil, err
	}

	details, err := AssembleDetails(items, EndpointPublic)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		ExternalID:      newExternalID(),
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		DistrictID:      params.DistrictID,
		AddressLine:     params.AddressLine,
		Courier:         params.Courier,
		ShippingService: params.ShippingOption.Service,
		ShippingCost:    params.ShippingOption.Cost,
	}
	fillLines(o, items, details)
	applyPayment(o, params.Payment)

	resp, err := s.charge(ctx, o, params.Payment)
	if err != nil {
		return nil, err
	}
	o.StatusCode = resp.StatusCode

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Info("guest checkout submitted",
		zap.String("external_id", o.ExternalID),
		zap.Int("status_code", o.StatusCode))

	return &Result{
		Order:       o,
		Status:      o.Status(),
		RedirectURL: resp.RedirectURL,
		PaymentCode: resp.PaymentCode,
	}, nil
}

// resolveLines prices guest lines against the catalog, producing the same
// shape the persisted cart yields so assembly treats both surfaces alike.
func (s *service) resolveLines(ctx context.Context, lines []GuestLine) ([]*cart.CartItem, error) {
	items := make([]*cart.CartItem, 0, len(lines))
	for _, line := range lines {
		p, err := s.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item := &cart.CartItem{
			ProductID:    p.ID,
			VariantID:    line.VariantID,
			Quantity:     line.Quantity,
			ProductName:  p.Name,
			Price:        p.Price,
			ProductStock: p.Stock,
		}
		if line.VariantID != nil {
			v, err := s.productRepo.GetVariantByID(ctx, product.GetVariantOptions{
				VariantID: *line.VariantID,
			})
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, product.ErrVariantNotFound
			}
			item.Price = v.Price
			item.VariantStock = &v.Stock
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) charge(ctx context.Context, o *order.Order, sel payment.Selection) (*payment.SubmitResponse, error) {
	txItems := make([]payment.TransactionItem, 0, len(o.Items))
	for _, it := range o.Items {
		txItems = append(txItems, payment.TransactionItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return s.gateway.Submit(ctx, payment.SubmitRequest{
		ExternalID:    o.ExternalID,
		Amount:        o.Total,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Selection:     sel,
		Items:         txItems,
	})
}

// fillLines copies assembled detail items onto the order and totals them.
// details and items are index-aligned: assembly emits one output per line.
func fillLines(o *order.Order, items []*cart.CartItem, details []DetailItem) {
	subtotal := 0
	for i, d := range details {
		item := items[i]
		lineTotal := item.Price * d.Quantity
		subtotal += lineTotal
		o.Items = append(o.Items, &order.OrderItem{
			ProductID: d.ProductID,
			VariantID: d.ProductVariantID,
			Name:      item.ProductName,
			Price:     item.Price,
			Quantity:  d.Quantity,
			Subtotal:  lineTotal,
		})
	}
	o.Subtotal = subtotal
	o.Total = subtotal + o.ShippingCost - o.Discount
}

func applyPayment(o *order.Order, sel payment.Selection) {
	o.PaymentType = string(sel.Type)
	if sel.Method != "" {
		method := sel.Method
		o.PaymentMethod = &method
	}
	if sel.Channel != "" {
		channel := sel.Channel
		o.PaymentChannel = &channel
	}
}

func newExternalID() string {
	return fmt.Sprintf("ORD-%s", uuid.NewString())
}
