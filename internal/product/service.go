package product

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	Name      string
	Category  string
	CostPrice int64
	SellPrice int64
}

func (p Params) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if p.CostPrice < 0 || p.SellPrice < 0 {
		return ErrNegativeAmount
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := &Product{
		Name:      params.Name,
		Category:  params.Category,
		CostPrice: params.CostPrice,
		SellPrice: params.SellPrice,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = params.Name
	p.Category = params.Category
	p.CostPrice = params.CostPrice
	p.SellPrice = params.SellPrice

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}
