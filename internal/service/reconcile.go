package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

var checkStatusRetry = utils.RetryConfig{
	InitialDelay: 200 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// ConfirmPayment — вход для вебхука: пуш провайдера лишь триггер,
// фактический статус всегда перезапрашивается у провайдера.
func (s *orderService) ConfirmPayment(ctx context.Context, provider, providerRef string) (entities.Order, error) {
	gateway, err := s.gateways.Get(provider)
	if err != nil {
		return entities.Order{}, err
	}

	var status payment.Status
	fn := func() error {
		var err error
		status, err = gateway.CheckStatus(ctx, providerRef)
		return err
	}
	if err := utils.Retry(checkStatusRetry, fn); err != nil {
		return entities.Order{}, err
	}

	return s.ApplyPaymentEvent(ctx, providerRef, status)
}

// PaymentReturn обслуживает браузерный return/poll: отдаёт текущее
// состояние заказа, перед этим перепроверив провайдера, если оплата
// ещё не в терминальном статусе.
func (s *orderService) PaymentReturn(ctx context.Context, providerRef string) (entities.Order, error) {
	order, err := s.orders.GetByProviderRef(ctx, providerRef)
	if err != nil {
		return entities.Order{}, err
	}

	if order.PaymentStatus.Terminal() || order.PaymentProvider == "" {
		return order, nil
	}

	updated, err := s.ConfirmPayment(ctx, order.PaymentProvider, providerRef)
	if err != nil {
		// Провайдер недоступен — клиент продолжит поллить,
		// отдаём состояние как есть.
		s.logger.Warn("payment re-check failed",
			slog.String("provider_ref", providerRef), slog.Any("error", err))
		return order, nil
	}
	return updated, nil
}

// ApplyPaymentEvent — единственная точка применения платёжного события
// к заказу, через неё идут все три канала (вебхук, поллинг, админ).
// PAID — поглощающее состояние: повторная доставка того же факта
// не меняет заказ и не шлёт второе письмо.
func (s *orderService) ApplyPaymentEvent(ctx context.Context, providerRef string, status payment.Status) (entities.Order, error) {
	var (
		order           entities.Order
		notifyPaid      bool
		notifyCancelled bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetByProviderRef(ctx, providerRef)
		if err != nil {
			return err
		}

		switch status {
		case payment.StatusWaiting, payment.StatusUnknown:
			// Промежуточный или незнакомый статус — ничего не решаем.
			return nil

		case payment.StatusAccepted:
			if order.PaymentStatus == entities.PaymentPaid {
				return nil
			}
			order.PaymentStatus = entities.PaymentPaid
			if order.PaidAt == nil {
				now := time.Now().UTC()
				order.PaidAt = &now
			}
			// Поздняя оплата отменённого заказа: статус заказа не
			// воскрешаем, но факт оплаты фиксируем для сверки.
			if order.Status != entities.OrderCancelled {
				order.Status = entities.OrderConfirmed
			}
			notifyPaid = true
			return s.orders.Update(ctx, order)

		case payment.StatusRefused, payment.StatusCancelled:
			if order.PaymentStatus == entities.PaymentPaid {
				return nil
			}
			mapped := entities.PaymentFailed
			if status == payment.StatusCancelled {
				mapped = entities.PaymentCancelled
			}

			if !order.ShippingStatus.Advanced() && order.Status != entities.OrderCancelled {
				for _, it := range order.Items {
					if err := s.products.RecreditStock(ctx, it.ProductID, it.Quantity); err != nil {
						return err
					}
				}
				order.Status = entities.OrderCancelled
				notifyCancelled = true
			}
			order.PaymentStatus = mapped
			return s.orders.Update(ctx, order)

		default:
			return nil
		}
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(order.ID)

	if notifyPaid {
		if err := s.dispatcher.OrderPaid(ctx, order); err != nil {
			s.logger.Error("failed to dispatch paid notification",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}
	if notifyCancelled {
		if err := s.dispatcher.OrderCancelled(ctx, order); err != nil {
			s.logger.Error("failed to dispatch cancelled notification",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}

	return order, nil
}
