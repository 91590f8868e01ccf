package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/catalog"
	"github.com/kuvot/artorders/internal/product"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateOrder(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	UpdateWaybill(ctx context.Context, id uuid.UUID, waybillNumber string) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// CatalogSource supplies the price snapshot line items are built against.
type CatalogSource interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

// ProductSource resolves product references on line items. Satisfied by the
// product service.
type ProductSource interface {
	Get(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type Service struct {
	repo     Repository
	catalog  CatalogSource
	products ProductSource
}

func NewService(repo Repository, catalog CatalogSource, products ProductSource) *Service {
	return &Service{repo: repo, catalog: catalog, products: products}
}

// ItemParams describes one line item: either a size with an add-on
// selection, or a product reference. ProductID wins when both are set; the
// money figures are resolved from the catalogs.
type ItemParams struct {
	Size          string
	ProductID     *uuid.UUID
	Quantity      int
	WithFinish    bool
	WithPackaging bool
	FrameTier     FrameTier
}

type CreateParams struct {
	OrderDate        time.Time
	PaintingName     string
	Type             Type
	Channel          Channel
	Status           Status
	Comment          string
	Items            []ItemParams
	ExtraIncome      int64
	DiscountedAmount *int64
}

type UpdateParams struct {
	OrderDate        *time.Time
	PaintingName     *string
	Type             *Type
	Channel          *Channel
	Status           *Status
	Comment          *string
	Items            []ItemParams
	ExtraIncome      *int64
	DiscountedAmount *int64
	ClearDiscount    bool
}

type ListFilter struct {
	Month     *string
	Type      *Type
	Status    *Status
	Channel   *Channel
	Size      *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	items, err := s.buildItems(ctx, params.Items)
	if err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusNew
	}

	o := &Order{
		OrderDate:        params.OrderDate,
		Month:            MonthLabel(params.OrderDate),
		PaintingName:     params.PaintingName,
		Type:             params.Type,
		Channel:          params.Channel,
		Status:           status,
		Comment:          params.Comment,
		Items:            items,
		ExtraIncome:      params.ExtraIncome,
		DiscountedAmount: params.DiscountedAmount,
	}

	val, err := Valuate(o)
	if err != nil {
		return nil, err
	}

	val.Apply(o)

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

// Update replaces the order's scalar fields and, when items are given, its
// whole line-item set, then revaluates the order.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.OrderDate != nil {
		o.OrderDate = *params.OrderDate
		o.Month = MonthLabel(o.OrderDate)
	}

	if params.PaintingName != nil {
		o.PaintingName = *params.PaintingName
	}

	if params.Type != nil {
		o.Type = *params.Type
	}

	if params.Channel != nil {
		o.Channel = *params.Channel
	}

	if params.Status != nil {
		o.Status = *params.Status
	}

	if params.Comment != nil {
		o.Comment = *params.Comment
	}

	if params.ExtraIncome != nil {
		o.ExtraIncome = *params.ExtraIncome
	}

	if params.ClearDiscount {
		o.DiscountedAmount = nil
	} else if params.DiscountedAmount != nil {
		o.DiscountedAmount = params.DiscountedAmount
	}

	if params.Items != nil {
		items, err := s.buildItems(ctx, params.Items)
		if err != nil {
			return nil, err
		}

		o.Items = items
	}

	val, err := Valuate(o)
	if err != nil {
		return nil, err
	}

	val.Apply(o)

	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// AttachWaybill links a carrier waybill number to the order.
func (s *Service) AttachWaybill(ctx context.Context, id uuid.UUID, waybillNumber string) error {
	return s.repo.UpdateWaybill(ctx, id, waybillNumber)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, id)
}

func (s *Service) buildItems(ctx context.Context, params []ItemParams) ([]LineItem, error) {
	if len(params) == 0 {
		return nil, nil
	}

	// The snapshot is fetched once, and only when a sized item needs it.
	var snap catalog.Snapshot

	items := make([]LineItem, 0, len(params))

	for _, p := range params {
		if p.ProductID != nil {
			prod, err := s.products.Get(ctx, *p.ProductID)
			if err != nil {
				if errors.Is(err, product.ErrNotFound) {
					return nil, fmt.Errorf("product %s: %w", *p.ProductID, ErrUnknownProduct)
				}

				return nil, fmt.Errorf("loading product: %w", err)
			}

			items = append(items, NewProductLineItem(*prod, p.Quantity))

			continue
		}

		if snap == nil {
			var err error

			snap, err = s.catalog.Snapshot(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading catalog snapshot: %w", err)
			}
		}

		entry, ok := snap.Lookup(p.Size)
		if !ok {
			return nil, fmt.Errorf("size %q: %w", p.Size, ErrUnknownSize)
		}

		items = append(items, NewLineItem(entry, p.Quantity, AddOns{
			Finish:    p.WithFinish,
			Packaging: p.WithPackaging,
			Frame:     p.FrameTier,
		}))
	}

	return items, nil
}
