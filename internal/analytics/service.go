package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/kuvot/artorders/internal/order"
)

// OrderSource supplies the order collection the aggregations run over.
// Satisfied by the order service.
type OrderSource interface {
	List(ctx context.Context, filter order.ListFilter) ([]*order.Order, error)
}

type Service struct {
	orders OrderSource
}

func NewService(orders OrderSource) *Service {
	return &Service{orders: orders}
}

// Range restricts a summary to an order-date window. Nil bounds are open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Summary computes the analytics summary, optionally restricted to one
// month label or an order-date range. Cancelled orders are filtered out
// here, before aggregation; the aggregator itself takes everything it is
// given.
func (s *Service) Summary(ctx context.Context, monthFilter string, rng Range) (*Summary, error) {
	orders, err := s.listActive(ctx, rng)
	if err != nil {
		return nil, err
	}

	return Summarize(orders, monthFilter), nil
}

// Daily computes the figures for one calendar day, cancelled orders
// excluded.
func (s *Service) Daily(ctx context.Context, day time.Time) (Daily, error) {
	orders, err := s.listActive(ctx, Range{})
	if err != nil {
		return Daily{}, err
	}

	return DailyStats(orders, day), nil
}

// Months returns the month labels available for filtering, newest first.
// Cancelled orders still count here so their months stay selectable.
func (s *Service) Months(ctx context.Context) ([]string, error) {
	orders, err := s.orders.List(ctx, order.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return DistinctMonths(orders), nil
}

func (s *Service) listActive(ctx context.Context, rng Range) ([]*order.Order, error) {
	orders, err := s.orders.List(ctx, order.ListFilter{StartDate: rng.From, EndDate: rng.To})
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	active := make([]*order.Order, 0, len(orders))

	for _, o := range orders {
		if o.Status == order.StatusCancelled {
			continue
		}

		active = append(active, o)
	}

	return active, nil
}
