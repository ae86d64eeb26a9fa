package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "email", "customer_name", "total_minor",
	"status", "shipping_status", "payment_status",
	"payment_provider", "payment_provider_ref", "paid_at",
	"shipping_address", "notes", "created_at",
}

var itemColumns = []string{
	"order_id", "product_id", "quantity",
	"unit_price_minor", "line_total_minor",
	"product_name", "product_slug",
}

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) Create(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.Email, nullString(o.CustomerName), o.TotalMinor,
			string(o.Status), string(o.ShippingStatus), string(o.PaymentStatus),
			nullString(o.PaymentProvider), nullString(o.PaymentProviderRef), nullTime(o.PaidAt),
			nullString(o.ShippingAddress), nullString(o.Notes), o.CreatedAt,
		).
		MustSql()

	if _, err := execContext(ctx, r.db, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range o.Items {
		q = q.Values(o.ID, it.ProductID, it.Quantity, it.UnitPriceMinor, it.LineTotalMinor, it.ProductName, it.ProductSlug)
	}

	query, args = q.MustSql()
	if _, err := execContext(ctx, r.db, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"id": orderID})
}

// GetByProviderRef находит заказ по внешнему идентификатору инвойса.
// Это единственный ключ, который доступен провайдеру при доставке события.
func (r *ordersRepo) GetByProviderRef(ctx context.Context, providerRef string) (entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"payment_provider_ref": providerRef})
}

func (r *ordersRepo) getOne(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := getContext(ctx, r.db, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		MustSql()

	var items []OrderItem
	if err := selectContext(ctx, r.db, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *ordersRepo) List(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var orders []Order
	if err := selectContext(ctx, r.db, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := selectContext(ctx, r.db, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

// SetPaymentRef сохраняет корреляционный идентификатор после создания
// инвойса. Отдельный маленький апдейт вне транзакции создания заказа.
func (r *ordersRepo) SetPaymentRef(ctx context.Context, orderID, provider, providerRef string) error {
	query, args := r.qb.Update("orders").
		Set("payment_provider", provider).
		Set("payment_provider_ref", providerRef).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := execContext(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set payment ref: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// Update перезаписывает изменяемые поля заказа. Позиции заказа
// неизменяемы и не трогаются.
func (r *ordersRepo) Update(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("shipping_status", string(o.ShippingStatus)).
		Set("payment_status", string(o.PaymentStatus)).
		Set("paid_at", nullTime(o.PaidAt)).
		Set("shipping_address", nullString(o.ShippingAddress)).
		Set("notes", nullString(o.Notes)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := execContext(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
