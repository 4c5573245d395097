package supplier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gudangku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Supplier, error)
	GetByName(ctx context.Context, name string) (*Supplier, error)
	Create(ctx context.Context, input NewSupplierInput) (*Supplier, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Supplier, error) {
	query := `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query suppliers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var suppliers []*Supplier

	for rows.Next() {
		var s Supplier
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.ContactPerson,
			&s.Email,
			&s.Phone,
			&s.Address,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Supplier, error) {
	query := `
		SELECT id, name, contact_person, email, phone, address, created_at
		FROM suppliers
		WHERE name = $1
		LIMIT 1
	`

	var s Supplier
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(
			&s.ID,
			&s.Name,
			&s.ContactPerson,
			&s.Email,
			&s.Phone,
			&s.Address,
			&s.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Create(ctx context.Context, input NewSupplierInput) (*Supplier, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateSupplier"),
		zap.String("name", input.Name),
	)

	query := `
		INSERT INTO suppliers (name, contact_person, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, contact_person, email, phone, address, created_at
	`

	var s Supplier
	err := r.db.QueryRowContext(ctx, query,
		input.Name,
		input.ContactPerson,
		input.Email,
		input.Phone,
		input.Address,
	).Scan(
		&s.ID,
		&s.Name,
		&s.ContactPerson,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.CreatedAt,
	)
	if err != nil {
		log.Error("insert supplier failed", zap.Error(err))
		return nil, fmt.Errorf("create supplier failed: %w", err)
	}

	log.Info("supplier created", zap.Uint("supplier_id", s.ID))

	return &s, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count)
	return count, err
}
