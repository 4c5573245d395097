package product

import (
	"context"

	"gudangku-be/internal/logger"
	"gudangku-be/internal/metrics"
	"gudangku-be/internal/supplier"
	"gudangku-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for the product catalog.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*Product, error)
	CreateProduct(ctx context.Context, input NewProductInput) (*Product, error)
	UpdateStock(ctx context.Context, id uint, quantity int) (*Product, error)
}

type service struct {
	repo         Repository
	supplierRepo supplier.Repository
}

func NewService(repo Repository, supplierRepo supplier.Repository) Service {
	return &service{
		repo:         repo,
		supplierRepo: supplierRepo,
	}
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	timer := metrics.StartTimer()

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Info("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", timer.Duration()),
	)

	return products, nil
}

func (s *service) ListLowStock(ctx context.Context, threshold int) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListLowStock"),
		zap.Int("threshold", threshold),
	)

	products, err := s.repo.ListLowStock(ctx, threshold)
	if err != nil {
		log.Error("failed to list low stock products", zap.Error(err))
		return nil, err
	}

	log.Info("list low stock success", zap.Int("count", len(products)))

	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	input.Name = utils.NormalizeName(input.Name)
	if input.Name == "" {
		log.Warn("product creation rejected: empty name")
		return nil, ErrNameRequired
	}

	if input.Price < 0 {
		log.Warn("product creation rejected: negative price",
			zap.Float64("price", input.Price),
		)
		return nil, ErrInvalidPrice
	}

	if input.Quantity < 0 {
		log.Warn("product creation rejected: negative quantity",
			zap.Int("quantity", input.Quantity),
		)
		return nil, ErrInvalidQuantity
	}

	// A named supplier must resolve; a missing one is an input error, not
	// a silent unset.
	var supplierID *uint
	if input.SupplierName != nil && *input.SupplierName != "" {
		sup, err := s.supplierRepo.GetByName(ctx, *input.SupplierName)
		if err != nil {
			log.Warn("supplier resolution failed",
				zap.String("supplier_name", *input.SupplierName),
				zap.Error(err),
			)
			return nil, err
		}
		supplierID = &sup.ID
	}

	created, err := s.repo.Create(ctx, input, supplierID)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	log.Info("product created", zap.Uint("product_id", created.ID))

	return created, nil
}

func (s *service) UpdateStock(ctx context.Context, id uint, quantity int) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStock"),
		zap.Uint("product_id", id),
		zap.Int("quantity", quantity),
	)

	if quantity < 0 {
		log.Warn("stock update rejected: negative quantity")
		return nil, ErrInvalidQuantity
	}

	if err := s.repo.UpdateStock(ctx, id, quantity); err != nil {
		log.Error("failed to update stock", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.StockUpdates.Inc()
	log.Info("stock updated")

	return updated, nil
}
