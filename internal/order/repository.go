package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gudangku-be/internal/logger"
	"gudangku-be/internal/product"
	"gudangku-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	PlaceOrderTx(ctx context.Context, input PlaceOrderInput) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrderTx creates an order with exactly one item and decrements the
// product's stock, all inside a single transaction. The product row is
// locked for the duration so concurrent placements serialize; the
// conditional decrement is a second guard against racing past the stock
// check.
func (r *repository) PlaceOrderTx(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrderTx"),
		zap.Int("quantity", input.Quantity),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	// 1. Lock and read the product
	var (
		productID uint
		price     float64
		stock     int
	)

	switch {
	case input.ProductID != nil:
		err = tx.QueryRowContext(ctx, `
			SELECT id, price, quantity
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, *input.ProductID).Scan(&productID, &price, &stock)
	case input.ProductName != nil:
		err = tx.QueryRowContext(ctx, `
			SELECT id, price, quantity
			FROM products
			WHERE name = $1
			FOR UPDATE
		`, *input.ProductName).Scan(&productID, &price, &stock)
	default:
		return nil, ErrProductRequired
	}

	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("product not found for order")
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to read product for order", zap.Error(err))
		return nil, err
	}

	// 2. Stock check
	if input.Quantity > stock {
		log.Warn("insufficient stock",
			zap.Uint("product_id", productID),
			zap.Int("available", stock),
		)
		return nil, ErrInsufficientStock
	}

	order := &Order{
		ExternalID:  uuid.New(),
		Reference:   utils.GenerateOrderReference(),
		OrderDate:   time.Now(),
		Status:      StatusCompleted,
		TotalAmount: float64(input.Quantity) * price,
	}

	// 3. Insert order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (external_id, reference, order_date, status, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		order.ExternalID,
		order.Reference,
		order.OrderDate,
		order.Status,
		order.TotalAmount,
	).Scan(&order.ID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 4. Insert order item with the price snapshot
	item := Item{
		OrderID:   order.ID,
		ProductID: productID,
		Quantity:  input.Quantity,
		UnitPrice: price,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		item.OrderID,
		item.ProductID,
		item.Quantity,
		item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		log.Error("failed to insert order item", zap.Error(err))
		return nil, err
	}

	// 5. Decrement stock, guarded
	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET quantity = quantity - $1, updated_at = NOW()
		WHERE id = $2 AND quantity >= $1
	`, input.Quantity, productID)
	if err != nil {
		log.Error("failed to decrement stock", zap.Error(err))
		return nil, err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		log.Warn("stock decrement guard hit", zap.Uint("product_id", productID))
		return nil, ErrInsufficientStock
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	order.Items = []Item{item}

	log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.String("reference", order.Reference),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return order, nil
}

func (r *repository) ListOrders(ctx context.Context) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, external_id, reference, order_date, status, total_amount
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.ExternalID,
			&o.Reference,
			&o.OrderDate,
			&o.Status,
			&o.TotalAmount,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, external_id, reference, order_date, status, total_amount
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID,
		&o.ExternalID,
		&o.Reference,
		&o.OrderDate,
		&o.Status,
		&o.TotalAmount,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, p.name
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.ProductName,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders failed: %w", err)
	}
	return count, nil
}
