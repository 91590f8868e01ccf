package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/order"
)

type Handler struct {
	svc *order.Service
}

func NewHandler(svc *order.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}", h.update)
}

type itemRequest struct {
	Size          string          `json:"size"`
	ProductID     *uuid.UUID      `json:"product_id"`
	Quantity      int             `json:"quantity"`
	WithFinish    bool            `json:"with_finish"`
	WithPackaging bool            `json:"with_packaging"`
	FrameTier     order.FrameTier `json:"frame_tier"`
}

func toItemParams(items []itemRequest) []order.ItemParams {
	params := make([]order.ItemParams, len(items))
	for i, item := range items {
		params[i] = order.ItemParams{
			Size:          item.Size,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			WithFinish:    item.WithFinish,
			WithPackaging: item.WithPackaging,
			FrameTier:     item.FrameTier,
		}
	}

	return params
}

type createOrderRequest struct {
	OrderDate        time.Time     `json:"order_date"`
	PaintingName     string        `json:"painting_name"`
	Type             order.Type    `json:"type"`
	Channel          order.Channel `json:"channel"`
	Status           order.Status  `json:"status"`
	Comment          string        `json:"comment"`
	Items            []itemRequest `json:"items"`
	ExtraIncome      int64         `json:"extra_income"`
	DiscountedAmount *int64        `json:"discounted_amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Create(r.Context(), order.CreateParams{
		OrderDate:        req.OrderDate,
		PaintingName:     req.PaintingName,
		Type:             req.Type,
		Channel:          req.Channel,
		Status:           req.Status,
		Comment:          req.Comment,
		Items:            toItemParams(req.Items),
		ExtraIncome:      req.ExtraIncome,
		DiscountedAmount: req.DiscountedAmount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := order.ListFilter{}

	if s := r.URL.Query().Get("month"); s != "" {
		filter.Month = new(s)
	}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(order.Type(s))
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(order.Status(s))
	}

	if s := r.URL.Query().Get("channel"); s != "" {
		filter.Channel = new(order.Channel(s))
	}

	if s := r.URL.Query().Get("size"); s != "" {
		filter.Size = new(s)
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		filter.EndDate = &t
	}

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(orders)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateOrderRequest struct {
	OrderDate        *time.Time     `json:"order_date,omitempty"`
	PaintingName     *string        `json:"painting_name,omitempty"`
	Type             *order.Type    `json:"type,omitempty"`
	Channel          *order.Channel `json:"channel,omitempty"`
	Status           *order.Status  `json:"status,omitempty"`
	Comment          *string        `json:"comment,omitempty"`
	Items            []itemRequest  `json:"items,omitempty"`
	ExtraIncome      *int64         `json:"extra_income,omitempty"`
	DiscountedAmount *int64         `json:"discounted_amount,omitempty"`
	ClearDiscount    bool           `json:"clear_discount,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := order.UpdateParams{
		OrderDate:        req.OrderDate,
		PaintingName:     req.PaintingName,
		Type:             req.Type,
		Channel:          req.Channel,
		Status:           req.Status,
		Comment:          req.Comment,
		ExtraIncome:      req.ExtraIncome,
		DiscountedAmount: req.DiscountedAmount,
		ClearDiscount:    req.ClearDiscount,
	}
	if req.Items != nil {
		params.Items = toItemParams(req.Items)
	}

	o, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, order.ErrUnknownSize),
		errors.Is(err, order.ErrUnknownProduct),
		errors.Is(err, order.ErrNoLineItems),
		errors.Is(err, order.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
