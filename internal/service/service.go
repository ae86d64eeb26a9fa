package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

type OrderRepo interface {
	Create(ctx context.Context, o entities.Order) error
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	GetByProviderRef(ctx context.Context, providerRef string) (entities.Order, error)
	List(ctx context.Context, limit, offset int) ([]entities.Order, error)
	SetPaymentRef(ctx context.Context, orderID, provider, providerRef string) error
	Update(ctx context.Context, o entities.Order) error
}

type ProductRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error)

	// ReserveStock возвращает ErrInsufficientStock, если условный
	// декремент не затронул ни одной строки.
	ReserveStock(ctx context.Context, productID string, qty int) error
	RecreditStock(ctx context.Context, productID string, qty int) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Dispatcher отправляет уведомления после коммита. Ошибки здесь
// логируются и никогда не влияют на результат транзакции.
type Dispatcher interface {
	OrderPaid(ctx context.Context, order entities.Order) error
	OrderCancelled(ctx context.Context, order entities.Order) error
	OrderShipped(ctx context.Context, order entities.Order) error
}

type orderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	orders     OrderRepo
	products   ProductRepo
	gateways   payment.Registry
	dispatcher Dispatcher
	cache      Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	gateways payment.Registry,
	dispatcher Dispatcher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		orders:     orders,
		products:   products,
		gateways:   gateways,
		dispatcher: dispatcher,
		cache:      cache,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	return s.orders.List(ctx, limit, offset)
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
