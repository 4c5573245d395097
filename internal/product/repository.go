package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gudangku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, input NewProductInput, supplierID *uint) (*Product, error)
	UpdateStock(ctx context.Context, id uint, quantity int) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT
		p.id,
		p.name,
		p.description,
		p.quantity,
		p.price,
		p.supplier_id,
		p.created_at,
		p.updated_at,
		s.name AS supplier_name
	FROM products p
	LEFT JOIN suppliers s ON s.id = p.supplier_id
`

func scanProduct(row interface{ Scan(dest ...any) error }, p *Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Quantity,
		&p.Price,
		&p.SupplierID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SupplierName,
	)
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product

	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) ListLowStock(ctx context.Context, threshold int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx,
		productSelect+` WHERE p.quantity < $1 ORDER BY p.id`, threshold)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query low stock products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product

	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id), &p)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput, supplierID *uint) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	query := `
		INSERT INTO products (name, description, quantity, price, supplier_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, quantity, price, supplier_id, created_at, updated_at
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		input.Name,
		input.Description,
		input.Quantity,
		input.Price,
		supplierID,
	).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Quantity,
		&p.Price,
		&p.SupplierID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		log.Error("insert product failed", zap.Error(err))
		return nil, fmt.Errorf("create product failed: %w", err)
	}

	log.Info("product created", zap.Uint("product_id", p.ID))

	return &p, nil
}

func (r *repository) UpdateStock(ctx context.Context, id uint, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2
	`, quantity, id)
	if err != nil {
		return fmt.Errorf("update stock failed: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
