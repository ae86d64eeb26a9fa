package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/trm"

	"github.com/jmoiron/sqlx"
)

type Order struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	CustomerName sql.NullString `db:"customer_name"`

	TotalMinor int64 `db:"total_minor"`

	Status         string `db:"status"`
	ShippingStatus string `db:"shipping_status"`
	PaymentStatus  string `db:"payment_status"`

	PaymentProvider    sql.NullString `db:"payment_provider"`
	PaymentProviderRef sql.NullString `db:"payment_provider_ref"`
	PaidAt             sql.NullTime   `db:"paid_at"`

	ShippingAddress sql.NullString `db:"shipping_address"`
	Notes           sql.NullString `db:"notes"`

	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	OrderID        string `db:"order_id"`
	ProductID      string `db:"product_id"`
	Quantity       int    `db:"quantity"`
	UnitPriceMinor int64  `db:"unit_price_minor"`
	LineTotalMinor int64  `db:"line_total_minor"`
	ProductName    string `db:"product_name"`
	ProductSlug    string `db:"product_slug"`
}

type Product struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Slug       string `db:"slug"`
	PriceMinor int64  `db:"price_minor"`
	Stock      int    `db:"stock"`
	IsActive   bool   `db:"is_active"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		Email:        o.Email,
		CustomerName: nullStringToString(o.CustomerName),

		TotalMinor: o.TotalMinor,

		Status:         entities.OrderStatus(o.Status),
		ShippingStatus: entities.ShippingStatus(o.ShippingStatus),
		PaymentStatus:  entities.PaymentStatus(o.PaymentStatus),

		PaymentProvider:    nullStringToString(o.PaymentProvider),
		PaymentProviderRef: nullStringToString(o.PaymentProviderRef),

		ShippingAddress: nullStringToString(o.ShippingAddress),
		Notes:           nullStringToString(o.Notes),

		CreatedAt: o.CreatedAt,
	}

	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time
		order.PaidAt = &paidAt
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		UnitPriceMinor: i.UnitPriceMinor,
		LineTotalMinor: i.LineTotalMinor,
		ProductName:    i.ProductName,
		ProductSlug:    i.ProductSlug,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		PriceMinor: p.PriceMinor,
		Stock:      p.Stock,
		IsActive:   p.IsActive,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func execContext(ctx context.Context, db *sqlx.DB, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return db.ExecContext(ctx, query, args...)
}

func getContext(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return db.GetContext(ctx, dest, query, args...)
}

func selectContext(ctx context.Context, db *sqlx.DB, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return db.SelectContext(ctx, dest, query, args...)
}
