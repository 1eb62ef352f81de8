package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/falvarado7/grubdash/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema issues idempotent DDL so the service can start against an
// empty database. Line items cascade with their order.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			image_url TEXT NOT NULL,
			price INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			deliver_to TEXT NOT NULL,
			mobile_number TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending'
		)`,
		`CREATE TABLE IF NOT EXISTS order_dishes (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			image_url TEXT NOT NULL,
			price INTEGER NOT NULL,
			quantity INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return withRetry(func() error {
		return r.DB.QueryRowContext(ctx,
			"INSERT INTO dishes (name, description, image_url, price) VALUES ($1, $2, $3, $4) RETURNING id",
			dish.Name, dish.Description, dish.ImageURL, dish.Price,
		).Scan(&dish.ID)
	})
}

func (r *PostgresRepository) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	dishes := []domain.Dish{}
	err := withRetry(func() error {
		rows, err := r.DB.QueryContext(ctx,
			"SELECT id, name, description, image_url, price FROM dishes ORDER BY id")
		if err != nil {
			return err
		}
		defer rows.Close()

		dishes = dishes[:0]
		for rows.Next() {
			var dish domain.Dish
			if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.ImageURL, &dish.Price); err != nil {
				return err
			}
			dishes = append(dishes, dish)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *PostgresRepository) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := withRetry(func() error {
		return r.DB.QueryRowContext(ctx,
			"SELECT id, name, description, image_url, price FROM dishes WHERE id = $1", dishID).
			Scan(&dish.ID, &dish.Name, &dish.Description, &dish.ImageURL, &dish.Price)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	return withRetry(func() error {
		result, err := r.DB.ExecContext(ctx,
			"UPDATE dishes SET name=$1, description=$2, image_url=$3, price=$4 WHERE id=$5",
			dish.Name, dish.Description, dish.ImageURL, dish.Price, dish.ID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, dishID int) error {
	return withRetry(func() error {
		result, err := r.DB.ExecContext(ctx, "DELETE FROM dishes WHERE id=$1", dishID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// CreateOrder inserts the order row and every line item in one transaction,
// assigning ids to the order and each item.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return withRetry(func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := tx.QueryRowContext(ctx,
			"INSERT INTO orders (deliver_to, mobile_number, status) VALUES ($1, $2, $3) RETURNING id",
			order.DeliverTo, order.MobileNumber, order.Status,
		).Scan(&order.ID); err != nil {
			return err
		}

		for i := range order.Dishes {
			if err := insertOrderDish(ctx, tx, order.ID, &order.Dishes[i]); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

func insertOrderDish(ctx context.Context, tx *sql.Tx, orderID int, item *domain.OrderDish) error {
	return tx.QueryRowContext(ctx,
		`INSERT INTO order_dishes (order_id, name, description, image_url, price, quantity)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		orderID, item.Name, item.Description, item.ImageURL, item.Price, item.Quantity,
	).Scan(&item.ID)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	err := withRetry(func() error {
		if err := r.DB.QueryRowContext(ctx,
			"SELECT id, deliver_to, mobile_number, status FROM orders WHERE id = $1", orderID).
			Scan(&order.ID, &order.DeliverTo, &order.MobileNumber, &order.Status); err != nil {
			return err
		}
		items, err := r.orderDishes(ctx, orderID)
		if err != nil {
			return err
		}
		order.Dishes = items
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) orderDishes(ctx context.Context, orderID int) ([]domain.OrderDish, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, description, image_url, price, quantity
		 FROM order_dishes WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderDish{}
	for rows.Next() {
		var item domain.OrderDish
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.ImageURL, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := withRetry(func() error {
		rows, err := r.DB.QueryContext(ctx,
			"SELECT id, deliver_to, mobile_number, status FROM orders ORDER BY id")
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			var order domain.Order
			if err := rows.Scan(&order.ID, &order.DeliverTo, &order.MobileNumber, &order.Status); err != nil {
				return err
			}
			orders = append(orders, order)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range orders {
			items, err := r.orderDishes(ctx, orders[i].ID)
			if err != nil {
				return err
			}
			orders[i].Dishes = items
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ReplaceOrder commits the order's scalar fields and the wholesale line-item
// replacement as one transaction: existing items are cleared and the
// submitted set re-inserted with fresh ids.
func (r *PostgresRepository) ReplaceOrder(ctx context.Context, order *domain.Order) error {
	return withRetry(func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		result, err := tx.ExecContext(ctx,
			"UPDATE orders SET deliver_to=$1, mobile_number=$2, status=$3 WHERE id=$4",
			order.DeliverTo, order.MobileNumber, order.Status, order.ID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM order_dishes WHERE order_id=$1", order.ID); err != nil {
			return err
		}
		for i := range order.Dishes {
			if err := insertOrderDish(ctx, tx, order.ID, &order.Dishes[i]); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, orderID int) error {
	return withRetry(func() error {
		result, err := r.DB.ExecContext(ctx, "DELETE FROM orders WHERE id=$1", orderID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
