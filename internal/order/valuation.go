package order

import (
	"fmt"
	"strings"

	"github.com/kuvot/artorders/internal/catalog"
	"github.com/kuvot/artorders/internal/product"
)

// AddOns selects the optional extras for a new line item.
type AddOns struct {
	Finish    bool
	Packaging bool
	Frame     FrameTier
}

// NewLineItem builds a line item from a catalog entry, copying the unit and
// add-on figures so the item stays priced as of the moment it was added.
// Frame price and cost stay zero unless a tier is selected.
func NewLineItem(entry catalog.PriceEntry, quantity int, addons AddOns) LineItem {
	item := LineItem{
		Size:          entry.Size,
		Quantity:      quantity,
		UnitPrice:     entry.SellPrice,
		UnitCost:      entry.CostPrice,
		WithFinish:    addons.Finish,
		WithPackaging: addons.Packaging,
		FrameTier:     addons.Frame,
	}

	if addons.Finish {
		item.FinishPrice = entry.FinishPrice
		item.FinishCost = entry.FinishCost
	}

	if addons.Packaging {
		item.PackagingPrice = entry.PackagingPrice
		item.PackagingCost = entry.PackagingCost
	}

	switch addons.Frame {
	case FrameTierA:
		item.FramePrice = entry.FrameAPrice
		item.FrameCost = entry.FrameACost
	case FrameTierB:
		item.FramePrice = entry.FrameBPrice
		item.FrameCost = entry.FrameBCost
	}

	return item
}

// NewProductLineItem builds a line item from a product, copying its prices
// the same way catalog figures are copied for sized items. Products carry
// no add-ons.
func NewProductLineItem(p product.Product, quantity int) LineItem {
	id := p.ID

	return LineItem{
		ProductID:   &id,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SellPrice,
		UnitCost:    p.CostPrice,
	}
}

func (li LineItem) quantityOrOne() int64 {
	if li.Quantity < 1 {
		return 1
	}

	return int64(li.Quantity)
}

// Revenue is the sell-side total of the item: quantity times unit price
// plus each selected add-on's price.
func (li LineItem) Revenue() int64 {
	qty := li.quantityOrOne()
	total := li.UnitPrice * qty

	if li.WithFinish {
		total += li.FinishPrice * qty
	}

	if li.WithPackaging {
		total += li.PackagingPrice * qty
	}

	if li.FrameTier != FrameNone {
		total += li.FramePrice * qty
	}

	return total
}

// Cost is the cost-side total of the item, same formula as Revenue over the
// cost fields.
func (li LineItem) Cost() int64 {
	qty := li.quantityOrOne()
	total := li.UnitCost * qty

	if li.WithFinish {
		total += li.FinishCost * qty
	}

	if li.WithPackaging {
		total += li.PackagingCost * qty
	}

	if li.FrameTier != FrameNone {
		total += li.FrameCost * qty
	}

	return total
}

// Profit is the item's revenue minus its cost. It can be negative.
func (li LineItem) Profit() int64 {
	return li.Revenue() - li.Cost()
}

// Valuation carries the derived money figures of one order.
type Valuation struct {
	TotalAmount int64
	TotalCost   int64
	FinalAmount int64
	Discount    int64
	NetIncome   int64
}

// Validate checks the shape constraints that must hold before an order can
// be valuated.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.PaintingName) == "" {
		return ErrEmptyName
	}

	if len(o.Items) == 0 {
		return ErrNoLineItems
	}

	return nil
}

// Valuate computes the order-level money figures from the line items and
// the discount and extra-income adjustments. It is a pure function of the
// order's current fields.
//
// When a discounted amount is set and positive it becomes the final amount,
// and the discount is reported as the non-negative reduction against the
// undiscounted total. A discounted amount above the total is kept as a
// price increase with discount zero.
func Valuate(o *Order) (Valuation, error) {
	if err := o.Validate(); err != nil {
		return Valuation{}, fmt.Errorf("invalid order: %w", err)
	}

	var val Valuation

	for _, item := range o.Items {
		val.TotalAmount += item.Revenue()
		val.TotalCost += item.Cost()
	}

	if o.DiscountedAmount != nil && *o.DiscountedAmount > 0 {
		val.FinalAmount = *o.DiscountedAmount

		if d := val.TotalAmount - *o.DiscountedAmount; d > 0 {
			val.Discount = d
		}
	} else {
		val.FinalAmount = val.TotalAmount
	}

	val.NetIncome = val.FinalAmount + o.ExtraIncome - val.TotalCost

	return val, nil
}

// Apply writes the valuation back onto the order's derived fields.
func (v Valuation) Apply(o *Order) {
	o.TotalAmount = v.TotalAmount
	o.TotalCost = v.TotalCost
	o.FinalAmount = v.FinalAmount
	o.Discount = v.Discount
	o.NetIncome = v.NetIncome
}
