package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents what kind of painting was sold.
type Type string

const (
	TypeDigital  Type = "digital"
	TypePrint    Type = "print"
	TypeOriginal Type = "original"
)

// Channel represents the sales channel the order came through.
type Channel string

const (
	ChannelInstagram Channel = "instagram"
	ChannelMessenger Channel = "messenger"
	ChannelViber     Channel = "viber_telegram"
)

// Status represents the lifecycle state of an order. Cancelling keeps the
// record, only the status changes.
type Status string

const (
	StatusNew       Status = "new"
	StatusPaid      Status = "paid"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// FrameTier selects one of the two frame options, or none.
type FrameTier string

const (
	FrameNone  FrameTier = ""
	FrameTierA FrameTier = "tier_a"
	FrameTierB FrameTier = "tier_b"
)

var (
	ErrNotFound       = errors.New("order not found")
	ErrNoLineItems    = errors.New("order has no line items")
	ErrEmptyName      = errors.New("order has no painting name")
	ErrUnknownSize    = errors.New("size not in price catalog")
	ErrUnknownProduct = errors.New("product not in product catalog")
)

// LineItem is one priced position within an order: either a sized canvas
// from the price catalog or a product. Unit and add-on figures are copied
// from the catalog when the item is added, so later catalog edits never
// change historical orders. Amounts are in kopecks.
type LineItem struct {
	Size          string
	ProductID     *uuid.UUID
	ProductName   string
	Quantity      int
	UnitPrice     int64
	UnitCost      int64
	WithFinish    bool
	WithPackaging bool
	FrameTier     FrameTier

	FinishPrice    int64
	FinishCost     int64
	PackagingPrice int64
	PackagingCost  int64
	FramePrice     int64
	FrameCost      int64
}

// Label is the display name of the item: the product name for product
// items, the size label otherwise.
func (li LineItem) Label() string {
	if li.ProductID != nil {
		return li.ProductName
	}

	return li.Size
}

// Order is the aggregate root owning its line items. The derived money
// fields are recomputed by Valuate whenever the order changes.
type Order struct {
	ID               uuid.UUID
	OrderDate        time.Time
	Month            string
	PaintingName     string
	Type             Type
	Channel          Channel
	Status           Status
	Comment          string
	Items            []LineItem
	ExtraIncome      int64
	DiscountedAmount *int64

	TotalAmount int64
	TotalCost   int64
	FinalAmount int64
	Discount    int64
	NetIncome   int64

	WaybillNumber string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

// MonthLabel derives the year-month key used for analytics grouping and
// month filter population.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}
