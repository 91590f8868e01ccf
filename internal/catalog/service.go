package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a price entry does not exist.
	ErrNotFound = errors.New("price entry not found")
	// ErrNegativeAmount is returned when an entry carries a negative money
	// figure.
	ErrNegativeAmount = errors.New("price entry amounts must not be negative")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateEntry(ctx context.Context, entry *PriceEntry) error
	GetEntry(ctx context.Context, id string) (*PriceEntry, error)
	ListEntries(ctx context.Context) ([]*PriceEntry, error)
	UpdateEntry(ctx context.Context, entry *PriceEntry) error
	DeleteEntry(ctx context.Context, id string) error
	CountEntries(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EntryParams struct {
	Size           string
	CostPrice      int64
	SellPrice      int64
	FinishCost     int64
	FinishPrice    int64
	PackagingCost  int64
	PackagingPrice int64
	FrameACost     int64
	FrameAPrice    int64
	FrameBCost     int64
	FrameBPrice    int64
}

func (p EntryParams) validate() error {
	amounts := []int64{
		p.CostPrice, p.SellPrice,
		p.FinishCost, p.FinishPrice,
		p.PackagingCost, p.PackagingPrice,
		p.FrameACost, p.FrameAPrice,
		p.FrameBCost, p.FrameBPrice,
	}

	for _, a := range amounts {
		if a < 0 {
			return ErrNegativeAmount
		}
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params EntryParams) (*PriceEntry, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	entry := paramsToEntry(params)
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]*PriceEntry, error) {
	return s.repo.ListEntries(ctx)
}

// Snapshot materializes the current catalog as a size-keyed lookup for
// order valuation.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing price entries: %w", err)
	}

	return NewSnapshot(entries), nil
}

func (s *Service) Update(ctx context.Context, id string, params EntryParams) (*PriceEntry, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := paramsToEntry(params)
	updated.ID = entry.ID
	updated.CreatedAt = entry.CreatedAt

	if err := s.repo.UpdateEntry(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteEntry(ctx, id)
}

// Seed fills an empty catalog with the default size grid. Returns the
// number of entries created, zero when the catalog already has data.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.CountEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting price entries: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	for _, params := range defaultPriceList {
		if err := s.repo.CreateEntry(ctx, paramsToEntry(params)); err != nil {
			return 0, fmt.Errorf("seeding size %s: %w", params.Size, err)
		}
	}

	return len(defaultPriceList), nil
}

func paramsToEntry(params EntryParams) *PriceEntry {
	return &PriceEntry{
		Size:           params.Size,
		CostPrice:      params.CostPrice,
		SellPrice:      params.SellPrice,
		FinishCost:     params.FinishCost,
		FinishPrice:    params.FinishPrice,
		PackagingCost:  params.PackagingCost,
		PackagingPrice: params.PackagingPrice,
		FrameACost:     params.FrameACost,
		FrameAPrice:    params.FrameAPrice,
		FrameBCost:     params.FrameBCost,
		FrameBPrice:    params.FrameBPrice,
	}
}
