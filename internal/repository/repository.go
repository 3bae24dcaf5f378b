package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CartItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"product_id",
		"quantity",
		"created_at",
	).From("cart_items").Where(sq.Eq{"user_id": userID}).OrderBy("created_at", "id").PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.CartItem, 0)

	for rows.Next() {
		var item entity.CartItem

		err = rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// AddCartItem inserts the item or adds its quantity to the existing line of the same product.
func (r *Repository) AddCartItem(ctx context.Context, item entity.CartItem) (entity.CartItem, error) {
	sql, args, err := sq.Insert("cart_items").
		Columns("id", "user_id", "product_id", "quantity", "created_at").
		Values(item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt).
		Suffix(`ON CONFLICT (user_id, product_id) DO UPDATE
			SET quantity = cart_items.quantity + EXCLUDED.quantity
			RETURNING id, quantity, created_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.CartItem{}, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return entity.CartItem{}, err
	}

	return item, nil
}

func (r *Repository) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	const q = `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, itemID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	const q = `DELETE FROM cart_items WHERE user_id = $1`

	_, err := r.db.Exec(ctx, q, userID)

	return err
}

// ClaimOutcome records outcome for the order's stage. It returns false when the
// stage was already reconciled, in which case nothing must be done again.
func (r *Repository) ClaimOutcome(ctx context.Context, orderID string, outcome entity.Outcome, at time.Time) (bool, error) {
	const q = `
	INSERT INTO checkout_outcomes (order_id, stage, outcome, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (order_id, stage) DO NOTHING
	`

	result, err := r.db.Exec(ctx, q, orderID, outcome.Stage(), outcome, at)
	if err != nil {
		return false, fmt.Errorf("claim outcome: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) Outcome(ctx context.Context, orderID, stage string) (entity.Outcome, error) {
	const q = `SELECT outcome FROM checkout_outcomes WHERE order_id = $1 AND stage = $2`

	var outcome entity.Outcome

	rows, err := r.db.Query(ctx, q, orderID, stage)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", err
		}

		return "", entity.ErrNotFound
	}

	if err = rows.Scan(&outcome); err != nil {
		return "", err
	}

	return outcome, nil
}

// ReopenPayment drops a failed payment outcome so that a retried payment can
// be reconciled. A paid outcome is final and stays.
func (r *Repository) ReopenPayment(ctx context.Context, orderID string) error {
	const q = `DELETE FROM checkout_outcomes WHERE order_id = $1 AND stage = $2 AND outcome = $3`

	_, err := r.db.Exec(ctx, q, orderID, entity.OutcomeFailed.Stage(), entity.OutcomeFailed)

	return err
}

func (r *Repository) PruneOutcomes(ctx context.Context, before time.Time) (int64, error) {
	const q = `DELETE FROM checkout_outcomes WHERE created_at < $1`

	result, err := r.db.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

// SaveOrder remembers who placed the order. Saving it again keeps the owner.
func (r *Repository) SaveOrder(ctx context.Context, order entity.PlacedOrder) error {
	sql, args, err := sq.Insert("checkout_orders").
		Columns("order_id", "order_number", "user_id", "method", "created_at").
		Values(order.ID, order.Number, order.UserID, order.Method, order.CreatedAt).
		Suffix(`ON CONFLICT (order_id) DO UPDATE
			SET order_number = EXCLUDED.order_number, method = EXCLUDED.method
			WHERE checkout_orders.user_id = EXCLUDED.user_id`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	return nil
}

func (r *Repository) PlacedOrder(ctx context.Context, orderID string) (entity.PlacedOrder, error) {
	sql, args, err := sq.Select("order_id", "order_number", "user_id", "method", "created_at").
		From("checkout_orders").
		Where(sq.Eq{"order_id": orderID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.PlacedOrder{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.PlacedOrder{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return entity.PlacedOrder{}, err
		}

		return entity.PlacedOrder{}, entity.ErrNotFound
	}

	var order entity.PlacedOrder

	err = rows.Scan(&order.ID, &order.Number, &order.UserID, &order.Method, &order.CreatedAt)
	if err != nil {
		return entity.PlacedOrder{}, err
	}

	return order, nil
}

func (r *Repository) PruneOrders(ctx context.Context, before time.Time) (int64, error) {
	const q = `DELETE FROM checkout_orders WHERE created_at < $1`

	result, err := r.db.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
