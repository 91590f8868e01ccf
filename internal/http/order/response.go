package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/order"
)

type lineItemResponse struct {
	Size          string          `json:"size,omitempty"`
	ProductID     *uuid.UUID      `json:"product_id,omitempty"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     int64           `json:"unit_price"`
	UnitCost      int64           `json:"unit_cost"`
	WithFinish    bool            `json:"with_finish"`
	WithPackaging bool            `json:"with_packaging"`
	FrameTier     order.FrameTier `json:"frame_tier,omitempty"`
	Revenue       int64           `json:"revenue"`
	Cost          int64           `json:"cost"`
	Profit        int64           `json:"profit"`
}

type orderResponse struct {
	ID               uuid.UUID          `json:"id"`
	OrderDate        time.Time          `json:"order_date"`
	Month            string             `json:"month"`
	PaintingName     string             `json:"painting_name"`
	Type             order.Type         `json:"type"`
	Channel          order.Channel      `json:"channel"`
	Status           order.Status       `json:"status"`
	Comment          string             `json:"comment,omitempty"`
	Items            []lineItemResponse `json:"items"`
	ExtraIncome      int64              `json:"extra_income"`
	DiscountedAmount *int64             `json:"discounted_amount,omitempty"`
	TotalAmount      int64              `json:"total_amount"`
	TotalCost        int64              `json:"total_cost"`
	FinalAmount      int64              `json:"final_amount"`
	Discount         int64              `json:"discount"`
	NetIncome        int64              `json:"net_income"`
	WaybillNumber    string             `json:"waybill_number,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(o *order.Order) orderResponse {
	items := make([]lineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = lineItemResponse{
			Size:          item.Size,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			UnitCost:      item.UnitCost,
			WithFinish:    item.WithFinish,
			WithPackaging: item.WithPackaging,
			FrameTier:     item.FrameTier,
			Revenue:       item.Revenue(),
			Cost:          item.Cost(),
			Profit:        item.Profit(),
		}
	}

	return orderResponse{
		ID:               o.ID,
		OrderDate:        o.OrderDate,
		Month:            o.Month,
		PaintingName:     o.PaintingName,
		Type:             o.Type,
		Channel:          o.Channel,
		Status:           o.Status,
		Comment:          o.Comment,
		Items:            items,
		ExtraIncome:      o.ExtraIncome,
		DiscountedAmount: o.DiscountedAmount,
		TotalAmount:      o.TotalAmount,
		TotalCost:        o.TotalCost,
		FinalAmount:      o.FinalAmount,
		Discount:         o.Discount,
		NetIncome:        o.NetIncome,
		WaybillNumber:    o.WaybillNumber,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
