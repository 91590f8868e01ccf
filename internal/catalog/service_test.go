package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kuvot/artorders/internal/catalog"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *catalog.PriceEntry) error {
			entry.ID = uuid.New()
			entry.CreatedAt = time.Now()
			return nil
		})

	entry, err := svc.Create(context.Background(), catalog.EntryParams{
		Size:        "30х40",
		CostPrice:   24000,
		SellPrice:   65000,
		FinishCost:  5000,
		FinishPrice: 10000,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "30х40", entry.Size)
	assert.Equal(t, int64(65000), entry.SellPrice)
}

func TestService_Create_RejectsNegativeAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	tests := []struct {
		name   string
		params catalog.EntryParams
	}{
		{name: "SellPrice", params: catalog.EntryParams{Size: "30х40", SellPrice: -65000}},
		{name: "CostPrice", params: catalog.EntryParams{Size: "30х40", CostPrice: -1}},
		{name: "FrameBCost", params: catalog.EntryParams{Size: "30х40", SellPrice: 65000, FrameBCost: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, catalog.ErrNegativeAmount)
		})
	}
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().ListEntries(gomock.Any()).Return([]*catalog.PriceEntry{
		{ID: uuid.New(), Size: "30х40", CostPrice: 24000, SellPrice: 65000},
		{ID: uuid.New(), Size: "50х70", CostPrice: 40000, SellPrice: 120000},
	}, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	entry, ok := snap.Lookup("50х70")
	require.True(t, ok)
	assert.Equal(t, int64(120000), entry.SellPrice)

	_, ok = snap.Lookup("100х100")
	assert.False(t, ok)
}

func TestService_Snapshot_LaterDuplicateWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().ListEntries(gomock.Any()).Return([]*catalog.PriceEntry{
		{Size: "30х40", SellPrice: 60000},
		{Size: "30х40", SellPrice: 65000},
	}, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	entry, ok := snap.Lookup("30х40")
	require.True(t, ok)
	assert.Equal(t, int64(65000), entry.SellPrice)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	id := uuid.New()
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetEntry(gomock.Any(), id.String()).Return(&catalog.PriceEntry{
		ID: id, Size: "30х40", CostPrice: 24000, SellPrice: 60000, CreatedAt: created,
	}, nil)
	repo.EXPECT().
		UpdateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *catalog.PriceEntry) error {
			assert.Equal(t, id, entry.ID)
			assert.Equal(t, created, entry.CreatedAt)
			return nil
		})

	entry, err := svc.Update(context.Background(), id.String(), catalog.EntryParams{
		Size: "30х40", CostPrice: 24000, SellPrice: 65000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(65000), entry.SellPrice)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().GetEntry(gomock.Any(), "missing").Return(nil, catalog.ErrNotFound)

	_, err := svc.Update(context.Background(), "missing", catalog.EntryParams{})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_Update_RejectsNegativeAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	_, err := svc.Update(context.Background(), uuid.NewString(), catalog.EntryParams{
		Size: "30х40", SellPrice: 65000, PackagingPrice: -9000,
	})
	assert.ErrorIs(t, err, catalog.ErrNegativeAmount)
}

func TestService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	sizes := make(map[string]struct{})

	repo.EXPECT().CountEntries(gomock.Any()).Return(0, nil)
	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *catalog.PriceEntry) error {
			assert.Positive(t, entry.SellPrice)
			assert.Positive(t, entry.CostPrice)
			sizes[entry.Size] = struct{}{}
			return nil
		}).
		Times(22)

	created, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 22, created)
	assert.Len(t, sizes, 22, "every seeded size is distinct")
	assert.Contains(t, sizes, "30х40")
	assert.Contains(t, sizes, "100х150")
}

func TestService_Seed_SkipsNonEmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().CountEntries(gomock.Any()).Return(5, nil)

	created, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestService_Seed_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repoErr := errors.New("connection refused")
	repo.EXPECT().CountEntries(gomock.Any()).Return(0, repoErr)

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, repoErr)
}
