package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvot/artorders/internal/catalog"
	"github.com/kuvot/artorders/internal/order"
)

var entry30x40 = catalog.PriceEntry{
	Size:           "30х40",
	CostPrice:      300,
	SellPrice:      600,
	FinishCost:     50,
	FinishPrice:    100,
	PackagingCost:  30,
	PackagingPrice: 90,
	FrameACost:     250,
	FrameAPrice:    490,
	FrameBCost:     180,
	FrameBPrice:    380,
}

func testOrder(items ...order.LineItem) *order.Order {
	return &order.Order{
		OrderDate:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		PaintingName: "Sunset over the bay",
		Type:         order.TypeOriginal,
		Channel:      order.ChannelInstagram,
		Status:       order.StatusNew,
		Items:        items,
	}
}

func TestNewLineItem_CopiesCatalogFigures(t *testing.T) {
	item := order.NewLineItem(entry30x40, 2, order.AddOns{Finish: true, Frame: order.FrameTierB})

	assert.Equal(t, "30х40", item.Size)
	assert.Equal(t, int64(600), item.UnitPrice)
	assert.Equal(t, int64(300), item.UnitCost)
	assert.Equal(t, int64(100), item.FinishPrice)
	assert.Equal(t, int64(50), item.FinishCost)
	assert.Equal(t, int64(380), item.FramePrice)
	assert.Equal(t, int64(180), item.FrameCost)

	// Unselected add-ons must stay zero.
	assert.Zero(t, item.PackagingPrice)
	assert.Zero(t, item.PackagingCost)
}

func TestNewLineItem_NoFrameKeepsZeroFrameFigures(t *testing.T) {
	item := order.NewLineItem(entry30x40, 1, order.AddOns{})

	assert.Equal(t, order.FrameNone, item.FrameTier)
	assert.Zero(t, item.FramePrice)
	assert.Zero(t, item.FrameCost)
}

func TestLineItem_RevenueAndCost(t *testing.T) {
	tests := []struct {
		name        string
		item        order.LineItem
		wantRevenue int64
		wantCost    int64
	}{
		{
			name:        "BareItemQuantityTwo",
			item:        order.NewLineItem(entry30x40, 2, order.AddOns{}),
			wantRevenue: 1200,
			wantCost:    600,
		},
		{
			name:        "WithFinish",
			item:        order.NewLineItem(entry30x40, 2, order.AddOns{Finish: true}),
			wantRevenue: 1400,
			wantCost:    700,
		},
		{
			name:        "AllAddOns",
			item:        order.NewLineItem(entry30x40, 1, order.AddOns{Finish: true, Packaging: true, Frame: order.FrameTierA}),
			wantRevenue: 600 + 100 + 90 + 490,
			wantCost:    300 + 50 + 30 + 250,
		},
		{
			name:        "ZeroQuantityTreatedAsOne",
			item:        order.NewLineItem(entry30x40, 0, order.AddOns{}),
			wantRevenue: 600,
			wantCost:    300,
		},
		{
			name: "SelectedFrameWithZeroFiguresAddsNothing",
			item: order.LineItem{
				Size:      "30х40",
				Quantity:  3,
				UnitPrice: 600,
				UnitCost:  300,
				FrameTier: order.FrameTierA,
			},
			wantRevenue: 1800,
			wantCost:    900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRevenue, tt.item.Revenue())
			assert.Equal(t, tt.wantCost, tt.item.Cost())
			assert.Equal(t, tt.wantRevenue-tt.wantCost, tt.item.Profit())
		})
	}
}

func TestLineItem_MonotonicInQuantity(t *testing.T) {
	prev := order.NewLineItem(entry30x40, 1, order.AddOns{Finish: true})

	for qty := 2; qty <= 5; qty++ {
		cur := order.NewLineItem(entry30x40, qty, order.AddOns{Finish: true})

		assert.Greater(t, cur.Revenue(), prev.Revenue())
		assert.Greater(t, cur.Cost(), prev.Cost())

		prev = cur
	}
}

func TestValuate_NoDiscount(t *testing.T) {
	o := testOrder(order.NewLineItem(entry30x40, 2, order.AddOns{}))

	val, err := order.Valuate(o)
	require.NoError(t, err)

	assert.Equal(t, int64(1200), val.TotalAmount)
	assert.Equal(t, int64(600), val.TotalCost)
	assert.Equal(t, int64(1200), val.FinalAmount)
	assert.Zero(t, val.Discount)
	assert.Equal(t, int64(600), val.NetIncome)
}

func TestValuate_DiscountAndExtraIncome(t *testing.T) {
	// totalAmount 1000, discounted 800, extra income 50, cost 400.
	o := testOrder(order.LineItem{Size: "30х40", Quantity: 1, UnitPrice: 1000, UnitCost: 400})
	o.DiscountedAmount = new(int64(800))
	o.ExtraIncome = 50

	val, err := order.Valuate(o)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), val.TotalAmount)
	assert.Equal(t, int64(800), val.FinalAmount)
	assert.Equal(t, int64(200), val.Discount)
	assert.Equal(t, int64(450), val.NetIncome)
}

func TestValuate_ZeroDiscountedAmountMeansNoDiscount(t *testing.T) {
	o := testOrder(order.LineItem{Size: "30х40", Quantity: 1, UnitPrice: 1000, UnitCost: 400})
	o.DiscountedAmount = new(int64(0))

	val, err := order.Valuate(o)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), val.FinalAmount)
	assert.Zero(t, val.Discount)
}

func TestValuate_DiscountedAboveTotalIsPriceIncrease(t *testing.T) {
	o := testOrder(order.LineItem{Size: "30х40", Quantity: 1, UnitPrice: 1000, UnitCost: 400})
	o.DiscountedAmount = new(int64(1300))

	val, err := order.Valuate(o)
	require.NoError(t, err)

	assert.Equal(t, int64(1300), val.FinalAmount)
	assert.Zero(t, val.Discount)
	assert.Equal(t, int64(900), val.NetIncome)
}

func TestValuate_SumsAcrossItems(t *testing.T) {
	items := []order.LineItem{
		order.NewLineItem(entry30x40, 2, order.AddOns{}),
		order.NewLineItem(entry30x40, 1, order.AddOns{Finish: true, Packaging: true}),
	}
	o := testOrder(items...)

	val, err := order.Valuate(o)
	require.NoError(t, err)

	var wantAmount, wantCost int64
	for _, item := range items {
		wantAmount += item.Revenue()
		wantCost += item.Cost()
	}

	assert.Equal(t, wantAmount, val.TotalAmount)
	assert.Equal(t, wantCost, val.TotalCost)
}

func TestValuate_Idempotent(t *testing.T) {
	o := testOrder(order.NewLineItem(entry30x40, 3, order.AddOns{Packaging: true}))
	o.DiscountedAmount = new(int64(2000))
	o.ExtraIncome = 120

	first, err := order.Valuate(o)
	require.NoError(t, err)

	first.Apply(o)

	second, err := order.Valuate(o)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValuate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *order.Order)
		wantErr error
	}{
		{
			name:    "NoItems",
			mutate:  func(o *order.Order) { o.Items = nil },
			wantErr: order.ErrNoLineItems,
		},
		{
			name:    "EmptyName",
			mutate:  func(o *order.Order) { o.PaintingName = "  " },
			wantErr: order.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOrder(order.NewLineItem(entry30x40, 1, order.AddOns{}))
			tt.mutate(o)

			_, err := order.Valuate(o)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2024-05", order.MonthLabel(time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-01", order.MonthLabel(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
}
