package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/google/uuid"
)

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	Email           string
	CustomerName    string
	ShippingAddress string
	Provider        string
	Items           []OrderItemInput
}

type CreatedOrder struct {
	Order       entities.Order
	CheckoutURL string
}

// CreateOrder создаёт заказ из корзины: цены пересчитываются из каталога
// (клиентским ценам не доверяем), склад резервируется условным декрементом,
// заказ и снапшоты позиций пишутся в одной транзакции.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (CreatedOrder, error) {
	if len(in.Items) == 0 {
		return CreatedOrder{}, entities.ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return CreatedOrder{}, fmt.Errorf("%w: quantity for product %s", entities.ErrInvalidQuantity, it.ProductID)
		}
	}

	gateway, err := s.gateways.Get(in.Provider)
	if err != nil {
		return CreatedOrder{}, err
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		Email:        in.Email,
		CustomerName: in.CustomerName,

		Status:         entities.OrderPending,
		ShippingStatus: entities.ShippingPreparation,
		PaymentStatus:  entities.PaymentPending,

		ShippingAddress: in.ShippingAddress,
		CreatedAt:       time.Now().UTC(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ids := make([]string, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.ProductID)
		}

		products, err := s.products.GetByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		byID := make(map[string]entities.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		order.Items = make([]entities.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			product, ok := byID[it.ProductID]
			if !ok || !product.IsActive {
				return fmt.Errorf("%w: product %s", entities.ErrProductUnavailable, it.ProductID)
			}

			lineTotal := product.PriceMinor * int64(it.Quantity)
			order.Items = append(order.Items, entities.OrderItem{
				ProductID:      product.ID,
				Quantity:       it.Quantity,
				UnitPriceMinor: product.PriceMinor,
				LineTotalMinor: lineTotal,
				ProductName:    product.Name,
				ProductSlug:    product.Slug,
			})
			order.TotalMinor += lineTotal

			// Проигрыш гонки за остаток откатывает весь заказ:
			// частичная резервация корзины не коммитится никогда.
			if err := s.products.ReserveStock(ctx, product.ID, it.Quantity); err != nil {
				return err
			}
		}

		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return CreatedOrder{}, err
	}

	invoice, err := gateway.CreateInvoice(ctx, order)
	if err != nil {
		s.logger.Error("failed to create invoice, rolling back reservation",
			slog.String("order_id", order.ID), slog.Any("error", err))
		if rbErr := s.cancelReservation(ctx, order); rbErr != nil {
			s.logger.Error("failed to roll back reservation",
				slog.String("order_id", order.ID), slog.Any("error", rbErr))
		}
		return CreatedOrder{}, err
	}

	if err := s.orders.SetPaymentRef(ctx, order.ID, gateway.Name(), invoice.ProviderRef); err != nil {
		return CreatedOrder{}, fmt.Errorf("failed to save payment ref: %w", err)
	}

	order.PaymentProvider = gateway.Name()
	order.PaymentProviderRef = invoice.ProviderRef

	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("provider", gateway.Name()),
		slog.Int64("total_minor", order.TotalMinor),
	)

	return CreatedOrder{Order: order, CheckoutURL: invoice.CheckoutURL}, nil
}

// cancelReservation — компенсация, когда инвойс у провайдера не создался:
// вернуть остатки и закрыть заказ одной транзакцией.
func (s *orderService) cancelReservation(ctx context.Context, order entities.Order) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, it := range order.Items {
			if err := s.products.RecreditStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		order.Status = entities.OrderCancelled
		order.PaymentStatus = entities.PaymentFailed
		return s.orders.Update(ctx, order)
	})
}
