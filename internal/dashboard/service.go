package dashboard

import (
	"context"

	"gudangku-be/internal/logger"
	"gudangku-be/internal/order"
	"gudangku-be/internal/product"
	"gudangku-be/internal/supplier"

	"go.uber.org/zap"
)

// Stats holds the headline entity counts.
type Stats struct {
	TotalProducts  int
	TotalSuppliers int
	TotalOrders    int
}

// StockLevel is one bar of the stock-level view.
type StockLevel struct {
	ProductName string
	Quantity    int
}

// Overview is everything the dashboard renders in one round trip.
type Overview struct {
	Stats       Stats
	StockLevels []StockLevel
	LowStock    []*product.Product
}

type Service interface {
	Overview(ctx context.Context, lowStockThreshold int) (*Overview, error)
}

type service struct {
	productRepo  product.Repository
	supplierRepo supplier.Repository
	orderRepo    order.Repository
}

func NewService(
	productRepo product.Repository,
	supplierRepo supplier.Repository,
	orderRepo order.Repository,
) Service {
	return &service{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

func (s *service) Overview(ctx context.Context, lowStockThreshold int) (*Overview, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Overview"),
		zap.Int("low_stock_threshold", lowStockThreshold),
	)

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	totalSuppliers, err := s.supplierRepo.Count(ctx)
	if err != nil {
		log.Error("failed to count suppliers", zap.Error(err))
		return nil, err
	}

	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		log.Error("failed to count orders", zap.Error(err))
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		log.Error("failed to list products for stock levels", zap.Error(err))
		return nil, err
	}

	levels := make([]StockLevel, 0, len(products))
	for _, p := range products {
		levels = append(levels, StockLevel{
			ProductName: p.Name,
			Quantity:    p.Quantity,
		})
	}

	lowStock, err := s.productRepo.ListLowStock(ctx, lowStockThreshold)
	if err != nil {
		log.Error("failed to list low stock products", zap.Error(err))
		return nil, err
	}

	log.Info("dashboard overview built",
		zap.Int("products", totalProducts),
		zap.Int("suppliers", totalSuppliers),
		zap.Int("orders", totalOrders),
		zap.Int("low_stock", len(lowStock)),
	)

	return &Overview{
		Stats: Stats{
			TotalProducts:  totalProducts,
			TotalSuppliers: totalSuppliers,
			TotalOrders:    totalOrders,
		},
		StockLevels: levels,
		LowStock:    lowStock,
	}, nil
}
