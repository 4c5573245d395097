package order

import (
	"context"

	"gudangku-be/internal/logger"
	"gudangku-be/internal/metrics"

	"go.uber.org/zap"
)

// Service defines the business logic for order placement and inspection.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("quantity", input.Quantity),
	)

	if input.ProductID == nil && input.ProductName == nil {
		log.Warn("order rejected: no product selector")
		return nil, ErrProductRequired
	}

	if input.Quantity <= 0 {
		log.Warn("order rejected: non-positive quantity")
		return nil, ErrInvalidQuantity
	}

	order, err := s.repo.PlaceOrderTx(ctx, input)
	if err != nil {
		log.Warn("order placement failed", zap.Error(err))
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.String("reference", order.Reference),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Uint64("orders_placed_total", metrics.OrdersPlaced.Load()),
	)

	return order, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListOrders"),
	)

	timer := metrics.StartTimer()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	log.Info("list orders success",
		zap.Int("count", len(orders)),
		zap.Duration("duration", timer.Duration()),
	)

	return orders, nil
}

func (s *service) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetOrderDetail"),
		zap.Uint("order_id", orderID),
	)

	order, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		log.Warn("failed to get order detail", zap.Error(err))
		return nil, err
	}

	return order, nil
}
