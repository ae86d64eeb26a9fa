package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
)

// AdminOrderUpdate — частичное обновление заказа администратором.
// nil-поле означает "не трогать".
type AdminOrderUpdate struct {
	Status          *entities.OrderStatus
	ShippingStatus  *entities.ShippingStatus
	Notes           *string
	ShippingAddress *string
}

// AdminUpdateOrder применяет ручной переход в одной транзакции.
// Ручной CONFIRMED считается подтверждением оплаты и ставит
// paymentStatus=PAID, поэтому guard по доставке в том же запросе
// видит уже обновлённый эффективный статус.
func (s *orderService) AdminUpdateOrder(ctx context.Context, orderID string, upd AdminOrderUpdate) (entities.Order, error) {
	var (
		order           entities.Order
		notifyPaid      bool
		notifyCancelled bool
		notifyShipped   bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		if upd.Status != nil {
			switch *upd.Status {
			case entities.OrderConfirmed:
				if order.PaymentStatus != entities.PaymentPaid {
					order.PaymentStatus = entities.PaymentPaid
					if order.PaidAt == nil {
						now := time.Now().UTC()
						order.PaidAt = &now
					}
					notifyPaid = true
				}
				order.Status = entities.OrderConfirmed

			case entities.OrderCancelled:
				if order.Status != entities.OrderCancelled {
					if order.PaymentStatus != entities.PaymentPaid {
						order.PaymentStatus = entities.PaymentCancelled
					}
					// Возврат на склад только пока ничего не уехало.
					if !order.ShippingStatus.Advanced() {
						for _, it := range order.Items {
							if err := s.products.RecreditStock(ctx, it.ProductID, it.Quantity); err != nil {
								return err
							}
						}
					}
					order.Status = entities.OrderCancelled
					notifyCancelled = true
				}

			case entities.OrderPending:
				order.Status = entities.OrderPending
			}
		}

		if upd.ShippingStatus != nil {
			target := *upd.ShippingStatus
			if target.Advanced() && order.PaymentStatus != entities.PaymentPaid {
				return entities.ErrPaymentNotConfirmed
			}
			if target == entities.ShippingShipped && order.ShippingStatus != entities.ShippingShipped {
				notifyShipped = true
			}
			order.ShippingStatus = target
		}

		if upd.Notes != nil {
			order.Notes = *upd.Notes
		}
		if upd.ShippingAddress != nil {
			order.ShippingAddress = *upd.ShippingAddress
		}

		return s.orders.Update(ctx, order)
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
	if notifyShipped {
		if err := s.dispatcher.OrderShipped(ctx, order); err != nil {
			s.logger.Error("failed to dispatch shipped notification",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}

	return order, nil
}
