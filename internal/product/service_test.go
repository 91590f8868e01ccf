package product_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kuvot/artorders/internal/product"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	repo.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			return nil
		})

	p, err := svc.Create(context.Background(), product.Params{
		Name:      "Postcard set",
		Category:  "prints",
		CostPrice: 5000,
		SellPrice: 15000,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Postcard set", p.Name)
	assert.Equal(t, int64(15000), p.SellPrice)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  product.Params
		wantErr error
	}{
		{
			name:    "EmptyName",
			params:  product.Params{Name: "   ", SellPrice: 100},
			wantErr: product.ErrEmptyName,
		},
		{
			name:    "NegativeSellPrice",
			params:  product.Params{Name: "Sticker", SellPrice: -1},
			wantErr: product.ErrNegativeAmount,
		},
		{
			name:    "NegativeCostPrice",
			params:  product.Params{Name: "Sticker", CostPrice: -100, SellPrice: 200},
			wantErr: product.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := product.NewService(product.NewMockRepository(ctrl))

			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	id := uuid.New()
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetProduct(gomock.Any(), id).Return(&product.Product{
		ID: id, Name: "Postcard set", CostPrice: 5000, SellPrice: 12000, CreatedAt: created,
	}, nil)
	repo.EXPECT().
		UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *product.Product) error {
			assert.Equal(t, id, p.ID)
			assert.Equal(t, created, p.CreatedAt)
			return nil
		})

	p, err := svc.Update(context.Background(), id, product.Params{
		Name: "Postcard set", Category: "prints", CostPrice: 5000, SellPrice: 15000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), p.SellPrice)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := product.NewMockRepository(ctrl)
	svc := product.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetProduct(gomock.Any(), id).Return(nil, product.ErrNotFound)

	_, err := svc.Update(context.Background(), id, product.Params{Name: "Sticker"})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestService_Update_RejectsNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := product.NewService(product.NewMockRepository(ctrl))

	_, err := svc.Update(context.Background(), uuid.New(), product.Params{
		Name: "Sticker", SellPrice: -500,
	})
	assert.ErrorIs(t, err, product.ErrNegativeAmount)
}
