package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blackboxinc-be/internal/cart"
	"blackboxinc-be/internal/order"
	"blackboxinc-be/internal/payment"
	"blackboxinc-be/internal/product"
	"blackboxinc-be/internal/utils"
)

// MockCartService is a mock implementation of cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, params cart.AddToCartParams) (*cart.CartItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, userID uint, limit, page *int32) ([]cart.ItemView, int64, error) {
	args := m.Called(ctx, userID, limit, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]cart.ItemView), args.Get(1).(int64), args.Error(2)
}

func (m *MockCartService) Snapshot(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, params cart.UpdateQuantityParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, params cart.RemoveParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderService) List(ctx context.Context, opts order.ListOptions) ([]*order.Order, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) Detail(ctx context.Context, userID, orderID uint, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatusByExternalID(ctx context.Context, externalID string, code int) error {
	args := m.Called(ctx, externalID, code)
	return args.Error(0)
}

func (m *MockOrderService) UpdateFulfillment(ctx context.Context, orderID uint, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// MockGateway is a mock implementation of payment.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Submit(ctx context.Context, req payment.SubmitRequest) (*payment.SubmitResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SubmitResponse), args.Error(1)
}

func (m *MockGateway) GetStatus(ctx context.Context, externalID string) (*payment.SubmitResponse, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SubmitResponse), args.Error(1)
}

func (m *MockGateway) VerifySignature(n payment.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of product.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProducts(ctx context.Context, opts product.ListOptions) ([]*product.Product, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*product.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, productID uint) (*product.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetVariantByID(ctx context.Context, opts product.GetVariantOptions) (*product.Variant, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Variant), args.Error(1)
}

type fixture struct {
	cartSvc  *MockCartService
	orders   *MockOrderService
	gateway  *MockGateway
	products *MockProductRepository
	sessions *SessionStore
	cleared  []uint
	clearErr error
	svc      Service
}

func newFixture() *fixture {
	f := &fixture{
		cartSvc:  new(MockCartService),
		orders:   new(MockOrderService),
		gateway:  new(MockGateway),
		products: new(MockProductRepository),
		sessions: NewSessionStore(),
	}
	clearFn := func(ctx context.Context, userID uint) error {
		f.cleared = append(f.cleared, userID)
		return f.clearErr
	}
	f.svc = NewService(f.sessions, f.cartSvc, f.products, f.orders, f.gateway, clearFn)
	return f
}

func readySession(f *fixture, userID uint) *Session {
	sess := f.sessions.Get(userID)
	sess.SetDestination("1101")
	sess.SetShipping("jne", jneReg())
	_ = sess.SetPayment(payment.Selection{Type: payment.TypeAutomatic, Method: "bank_transfer"})
	return sess
}

func snapshotLine() []*cart.CartItem {
	return []*cart.CartItem{
		{
			ProductID:   10,
			VariantID:   utils.UintPtr(5),
			Quantity:    2,
			ProductName: "Kopi Gayo 250g",
			Price:       45000,
		},
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	params := SubmitParams{
		UserID:        7,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
		AddressLine:   "Jl. Merdeka 1",
	}

	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		readySession(f, 7)

		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)
		f.gateway.On("Submit", ctx, mock.MatchedBy(func(req payment.SubmitRequest) bool {
			return req.Amount == 2*45000+18000 && len(req.Items) == 1
		})).Return(&payment.SubmitResponse{StatusCode: payment.CodePending, Outcome: "pending", RedirectURL: "https://pay.example/redir"}, nil)
		f.orders.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		res, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, res.Status)
		assert.Equal(t, "https://pay.example/redir", res.RedirectURL)
		require.NotNil(t, res.Order.UserID)
		assert.Equal(t, uint(7), *res.Order.UserID)
		assert.Equal(t, 90000, res.Order.Subtotal)
		assert.Equal(t, 108000, res.Order.Total)
		require.Len(t, res.Order.Items, 1)
		require.NotNil(t, res.Order.Items[0].VariantID)
		assert.Equal(t, uint(5), *res.Order.Items[0].VariantID)

		// cart cleared, session consumed
		assert.Equal(t, []uint{7}, f.cleared)
		assert.Nil(t, f.sessions.Get(7).Payment())
		f.orders.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		f := newFixture()
		readySession(f, 7)
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return([]*cart.CartItem{}, nil)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrCartEmpty)
	})

	t.Run("LineWithoutVariantRejected", func(t *testing.T) {
		f := newFixture()
		readySession(f, 7)
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return([]*cart.CartItem{
			{ProductID: 11, Quantity: 1, Price: 10000},
		}, nil)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrMissingVariant)
		f.gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("NoShippingSelected", func(t *testing.T) {
		f := newFixture()
		sess := f.sessions.Get(7)
		_ = sess.SetPayment(payment.Selection{Type: payment.TypeCOD})
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrShippingNotSelected)
	})

	t.Run("NoPaymentSelected", func(t *testing.T) {
		f := newFixture()
		sess := f.sessions.Get(7)
		sess.SetShipping("jne", jneReg())
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrPaymentNotSelected)
	})

	t.Run("GatewayFailureKeepsCart", func(t *testing.T) {
		f := newFixture()
		readySession(f, 7)
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)
		f.gateway.On("Submit", ctx, mock.Anything).Return(nil, payment.ErrGatewayUnavailable)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
		assert.Empty(t, f.cleared)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("PersistFailureKeepsCart", func(t *testing.T) {
		f := newFixture()
		readySession(f, 7)
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)
		f.gateway.On("Submit", ctx, mock.Anything).Return(&payment.SubmitResponse{StatusCode: payment.CodePending}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := f.svc.Submit(ctx, params)
		assert.Error(t, err)
		assert.Empty(t, f.cleared)
	})

	t.Run("ClearCartFailureDoesNotFailSubmission", func(t *testing.T) {
		f := newFixture()
		f.clearErr = errors.New("db down")
		readySession(f, 7)
		f.cartSvc.On("Snapshot", ctx, uint(7)).Return(snapshotLine(), nil)
		f.gateway.On("Submit", ctx, mock.Anything).Return(&payment.SubmitResponse{StatusCode: payment.CodePaid, Outcome: "settlement"}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(nil)

		res, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, res.Status)
	})
}

func TestService_SubmitGuest(t *testing.T) {
	ctx := context.Background()

	baseParams := func() GuestSubmitParams {
		return GuestSubmitParams{
			CustomerName:   "Siti",
			CustomerEmail:  "siti@example.com",
			AddressLine:    "Jl. Sudirman 2",
			DistrictID:     "2203",
			Courier:        "jne",
			ShippingOption: jneReg(),
			Payment:        payment.Selection{Type: payment.TypeCOD},
			Lines: []GuestLine{
				{ProductID: 11, Quantity: 1},
			},
		}
	}

	t.Run("SuccessWithoutVariant", func(t *testing.T) {
		f := newFixture()
		f.products.On("GetProductByID", ctx, uint(11)).
			Return(&product.Product{ID: 11, Name: "Teh Melati", Price: 20000, Stock: 4}, nil)
		f.gateway.On("Submit", ctx, mock.Anything).
			Return(&payment.SubmitResponse{StatusCode: payment.CodePending}, nil)
		f.orders.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

		res, err := f.svc.SubmitGuest(ctx, baseParams())
		require.NoError(t, err)

		assert.Nil(t, res.Order.UserID)
		assert.Equal(t, order.StatusPending, res.Status)
		assert.Equal(t, 20000+18000, res.Order.Total)
		require.Len(t, res.Order.Items, 1)
		assert.Nil(t, res.Order.Items[0].VariantID)
		assert.Empty(t, f.cleared, "guests have no persisted cart to clear")
	})

	t.Run("VariantPricedFromVariant", func(t *testing.T) {
		f := newFixture()
		params := baseParams()
		params.Lines = []GuestLine{{ProductID: 10, VariantID: utils.UintPtr(5), Quantity: 2}}

		f.products.On("GetProductByID", ctx, uint(10)).
			Return(&product.Product{ID: 10, Name: "Kopi Gayo", Price: 45000, Stock: 9}, nil)
		f.products.On("GetVariantByID", ctx, product.GetVariantOptions{VariantID: 5}).
			Return(&product.Variant{ID: 5, ProductID: 10, Name: "500g", Price: 80000, Stock: 3}, nil)
		f.gateway.On("Submit", ctx, mock.Anything).
			Return(&payment.SubmitResponse{StatusCode: payment.CodePending}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(nil)

		res, err := f.svc.SubmitGuest(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 2*80000, res.Order.Subtotal)
	})

	t.Run("UnknownVariant", func(t *testing.T) {
		f := newFixture()
		params := baseParams()
		params.Lines = []GuestLine{{ProductID: 10, VariantID: utils.UintPtr(99), Quantity: 1}}

		f.products.On("GetProductByID", ctx, uint(10)).
			Return(&product.Product{ID: 10, Name: "Kopi Gayo", Price: 45000}, nil)
		f.products.On("GetVariantByID", ctx, product.GetVariantOptions{VariantID: 99}).
			Return(nil, nil)

		_, err := f.svc.SubmitGuest(ctx, params)
		assert.ErrorIs(t, err, product.ErrVariantNotFound)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		f := newFixture()
		params := baseParams()
		params.Lines = []GuestLine{{ProductID: 11, Quantity: 0}}
		f.products.On("GetProductByID", ctx, uint(11)).
			Return(&product.Product{ID: 11, Name: "Teh Melati", Price: 20000}, nil)

		_, err := f.svc.SubmitGuest(ctx, params)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("InvalidPayment", func(t *testing.T) {
		f := newFixture()
		params := baseParams()
		params.Payment = payment.Selection{Type: payment.TypeAutomatic}

		_, err := f.svc.SubmitGuest(ctx, params)
		assert.ErrorIs(t, err, payment.ErrMethodRequired)
	})

	t.Run("NoLines", func(t *testing.T) {
		f := newFixture()
		params := baseParams()
		params.Lines = nil

		_, err := f.svc.SubmitGuest(ctx, params)
		assert.ErrorIs(t, err, ErrCartEmpty)
	})
}
