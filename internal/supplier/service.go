package supplier

import (
	"context"

	"gudangku-be/internal/logger"
	"gudangku-be/internal/metrics"
	"gudangku-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for suppliers.
type Service interface {
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	CreateSupplier(ctx context.Context, input NewSupplierInput) (*Supplier, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListSuppliers"),
	)

	timer := metrics.StartTimer()

	suppliers, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list suppliers", zap.Error(err))
		return nil, err
	}

	log.Info("list suppliers success",
		zap.Int("count", len(suppliers)),
		zap.Duration("duration", timer.Duration()),
	)

	return suppliers, nil
}

func (s *service) CreateSupplier(ctx context.Context, input NewSupplierInput) (*Supplier, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateSupplier"),
		zap.String("name", input.Name),
	)

	input.Name = utils.NormalizeName(input.Name)
	if input.Name == "" {
		log.Warn("supplier creation rejected: empty name")
		return nil, ErrNameRequired
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create supplier", zap.Error(err))
		return nil, err
	}

	metrics.SuppliersCreated.Inc()
	log.Info("supplier created", zap.Uint("supplier_id", created.ID))

	return created, nil
}
