package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	paymentMocks "github.com/SergeyBogomolovv/shop-order-service/internal/payment/mocks"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/shop-order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderService перечисляет методы сервиса, нужные тестам: конкретный
// тип конструктора не экспортируется.
type orderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (service.CreatedOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	ConfirmPayment(ctx context.Context, provider, providerRef string) (entities.Order, error)
	PaymentReturn(ctx context.Context, providerRef string) (entities.Order, error)
	ApplyPaymentEvent(ctx context.Context, providerRef string, status payment.Status) (entities.Order, error)
	AdminUpdateOrder(ctx context.Context, orderID string, upd service.AdminOrderUpdate) (entities.Order, error)
}

type serviceMocks struct {
	orders     *mocks.MockOrderRepo
	products   *mocks.MockProductRepo
	cache      *mocks.MockCache
	dispatcher *mocks.MockDispatcher
	gateway    *paymentMocks.MockGateway
}

func newTestService(t *testing.T) (orderService, serviceMocks) {
	m := serviceMocks{
		orders:     mocks.NewMockOrderRepo(t),
		products:   mocks.NewMockProductRepo(t),
		cache:      mocks.NewMockCache(t),
		dispatcher: mocks.NewMockDispatcher(t),
		gateway:    paymentMocks.NewMockGateway(t),
	}
	m.gateway.EXPECT().Name().Return(payment.MomoName).Maybe()

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, m.orders, m.products, payment.NewRegistry(m.gateway), m.dispatcher, m.cache)
	return svc, m
}

func TestOrderService_CreateOrder(t *testing.T) {
	activeProduct := entities.Product{
		ID:         "p1",
		Name:       "Vanilla pods",
		Slug:       "vanilla-pods",
		PriceMinor: 1000,
		Stock:      5,
		IsActive:   true,
	}

	validInput := service.CreateOrderInput{
		Email:    "buyer@example.com",
		Provider: payment.MomoName,
		Items:    []service.OrderItemInput{{ProductID: "p1", Quantity: 2}},
	}

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior func(m serviceMocks)
		wantErr      error
		check        func(t *testing.T, created service.CreatedOrder)
	}{
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(m serviceMocks) {
				m.products.EXPECT().
					GetByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{activeProduct}, nil)
				m.products.EXPECT().ReserveStock(mock.Anything, "p1", 2).Return(nil)
				m.orders.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.TotalMinor == 2000 &&
							o.Status == entities.OrderPending &&
							o.ShippingStatus == entities.ShippingPreparation &&
							o.PaymentStatus == entities.PaymentPending &&
							len(o.Items) == 1 &&
							o.Items[0].UnitPriceMinor == 1000 &&
							o.Items[0].LineTotalMinor == 2000 &&
							o.Items[0].ProductName == "Vanilla pods"
					})).
					Return(nil)
				m.gateway.EXPECT().
					CreateInvoice(mock.Anything, mock.Anything).
					Return(payment.Invoice{CheckoutURL: "https://pay.example/inv-1", ProviderRef: "inv-1"}, nil)
				m.orders.EXPECT().
					SetPaymentRef(mock.Anything, mock.Anything, payment.MomoName, "inv-1").
					Return(nil)
			},
			check: func(t *testing.T, created service.CreatedOrder) {
				assert.Equal(t, "https://pay.example/inv-1", created.CheckoutURL)
				assert.Equal(t, int64(2000), created.Order.TotalMinor)
				assert.Equal(t, "inv-1", created.Order.PaymentProviderRef)
				assert.Equal(t, payment.MomoName, created.Order.PaymentProvider)
			},
		},
		{
			name:         "empty cart",
			input:        service.CreateOrderInput{Email: "buyer@example.com", Provider: payment.MomoName},
			mockBehavior: func(m serviceMocks) {},
			wantErr:      entities.ErrEmptyOrder,
		},
		{
			name: "invalid quantity",
			input: service.CreateOrderInput{
				Email:    "buyer@example.com",
				Provider: payment.MomoName,
				Items:    []service.OrderItemInput{{ProductID: "p1", Quantity: 0}},
			},
			mockBehavior: func(m serviceMocks) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "unknown provider",
			input: service.CreateOrderInput{
				Email:    "buyer@example.com",
				Provider: "cash",
				Items:    []service.OrderItemInput{{ProductID: "p1", Quantity: 1}},
			},
			mockBehavior: func(m serviceMocks) {},
			wantErr:      entities.ErrUnknownProvider,
		},
		{
			name:  "missing product",
			input: validInput,
			mockBehavior: func(m serviceMocks) {
				m.products.EXPECT().
					GetByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{}, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:  "inactive product",
			input: validInput,
			mockBehavior: func(m serviceMocks) {
				inactive := activeProduct
				inactive.IsActive = false
				m.products.EXPECT().
					GetByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{inactive}, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:  "insufficient stock aborts whole order",
			input: validInput,
			mockBehavior: func(m serviceMocks) {
				m.products.EXPECT().
					GetByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{activeProduct}, nil)
				m.products.EXPECT().
					ReserveStock(mock.Anything, "p1", 2).
					Return(entities.ErrInsufficientStock)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "invoice failure rolls back reservation",
			input: validInput,
			mockBehavior: func(m serviceMocks) {
				m.products.EXPECT().
					GetByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{activeProduct}, nil)
				m.products.EXPECT().ReserveStock(mock.Anything, "p1", 2).Return(nil)
				m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				m.gateway.EXPECT().
					CreateInvoice(mock.Anything, mock.Anything).
					Return(payment.Invoice{}, entities.ErrProviderUnavailable)

				// компенсация: вернуть остаток и закрыть заказ
				m.products.EXPECT().RecreditStock(mock.Anything, "p1", 2).Return(nil)
				m.orders.EXPECT().
					Update(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Status == entities.OrderCancelled &&
							o.PaymentStatus == entities.PaymentFailed
					})).
					Return(nil)
			},
			wantErr: entities.ErrProviderUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tc.mockBehavior(m)

			created, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, created)
			}
		})
	}
}

func TestOrderService_CreateOrder_MultiItemConservation(t *testing.T) {
	svc, m := newTestService(t)

	p1 := entities.Product{ID: "p1", Name: "Vanilla pods", Slug: "vanilla-pods", PriceMinor: 1000, Stock: 5, IsActive: true}
	p2 := entities.Product{ID: "p2", Name: "Cloves", Slug: "cloves", PriceMinor: 250, Stock: 10, IsActive: true}

	m.products.EXPECT().
		GetByIDs(mock.Anything, []string{"p1", "p2"}).
		Return([]entities.Product{p1, p2}, nil)
	m.products.EXPECT().ReserveStock(mock.Anything, "p1", 2).Return(nil)
	m.products.EXPECT().ReserveStock(mock.Anything, "p2", 4).Return(nil)

	var saved entities.Order
	m.orders.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			saved = o
			return nil
		})
	m.gateway.EXPECT().
		CreateInvoice(mock.Anything, mock.Anything).
		Return(payment.Invoice{CheckoutURL: "https://pay.example/inv-2", ProviderRef: "inv-2"}, nil)
	m.orders.EXPECT().SetPaymentRef(mock.Anything, mock.Anything, payment.MomoName, "inv-2").Return(nil)

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderInput{
		Email:    "buyer@example.com",
		Provider: payment.MomoName,
		Items: []service.OrderItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*1000+4*250), saved.TotalMinor)
	assert.Equal(t, saved.TotalMinor, saved.Total())
}

func TestOrderService_CreateOrder_RollbackFailureIsNotSwallowed(t *testing.T) {
	svc, m := newTestService(t)

	p1 := entities.Product{ID: "p1", Name: "Vanilla pods", Slug: "vanilla-pods", PriceMinor: 1000, Stock: 5, IsActive: true}

	m.products.EXPECT().GetByIDs(mock.Anything, []string{"p1"}).Return([]entities.Product{p1}, nil)
	m.products.EXPECT().ReserveStock(mock.Anything, "p1", 1).Return(nil)
	m.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().
		CreateInvoice(mock.Anything, mock.Anything).
		Return(payment.Invoice{}, entities.ErrProviderUnavailable)
	m.products.EXPECT().RecreditStock(mock.Anything, "p1", 1).Return(errors.New("db down"))

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderInput{
		Email:    "buyer@example.com",
		Provider: payment.MomoName,
		Items:    []service.OrderItemInput{{ProductID: "p1", Quantity: 1}},
	})

	// исходная ошибка провайдера остаётся результатом операции
	assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
}
