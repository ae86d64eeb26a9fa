package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductsRepo(db *sqlx.DB) *productsRepo {
	return &productsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *productsRepo) GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	query, args := r.qb.Select("id", "name", "slug", "price_minor", "stock", "is_active").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := selectContext(ctx, r.db, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// ReserveStock выполняет условный декремент. Сам UPDATE и есть
// защита от гонок: проигравший запрос получает 0 затронутых строк
// и ErrInsufficientStock, вся транзакция заказа откатывается.
func (r *productsRepo) ReserveStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.And{
			sq.Eq{"id": productID},
			sq.Expr("stock >= ?", qty),
			sq.Eq{"is_active": true},
		}).
		MustSql()

	res, err := execContext(ctx, r.db, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, productID)
	}
	return nil
}

// RecreditStock возвращает зарезервированное количество на склад.
// Компенсация резервации при отмене или неуспешной оплате.
func (r *productsRepo) RecreditStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := execContext(ctx, r.db, query, args...); err != nil {
		return fmt.Errorf("failed to recredit stock: %w", err)
	}
	return nil
}
