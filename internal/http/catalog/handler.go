package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/catalog"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/seed", h.seed)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type entryRequest struct {
	Size           string `json:"size"`
	CostPrice      int64  `json:"cost_price"`
	SellPrice      int64  `json:"sell_price"`
	FinishCost     int64  `json:"finish_cost"`
	FinishPrice    int64  `json:"finish_price"`
	PackagingCost  int64  `json:"packaging_cost"`
	PackagingPrice int64  `json:"packaging_price"`
	FrameACost     int64  `json:"frame_a_cost"`
	FrameAPrice    int64  `json:"frame_a_price"`
	FrameBCost     int64  `json:"frame_b_cost"`
	FrameBPrice    int64  `json:"frame_b_price"`
}

func (r entryRequest) params() catalog.EntryParams {
	return catalog.EntryParams{
		Size:           r.Size,
		CostPrice:      r.CostPrice,
		SellPrice:      r.SellPrice,
		FinishCost:     r.FinishCost,
		FinishPrice:    r.FinishPrice,
		PackagingCost:  r.PackagingCost,
		PackagingPrice: r.PackagingPrice,
		FrameACost:     r.FrameACost,
		FrameAPrice:    r.FrameAPrice,
		FrameBCost:     r.FrameBCost,
		FrameBPrice:    r.FrameBPrice,
	}
}

type entryResponse struct {
	ID             uuid.UUID  `json:"id"`
	Size           string     `json:"size"`
	CostPrice      int64      `json:"cost_price"`
	SellPrice      int64      `json:"sell_price"`
	FinishCost     int64      `json:"finish_cost"`
	FinishPrice    int64      `json:"finish_price"`
	PackagingCost  int64      `json:"packaging_cost"`
	PackagingPrice int64      `json:"packaging_price"`
	FrameACost     int64      `json:"frame_a_cost"`
	FrameAPrice    int64      `json:"frame_a_price"`
	FrameBCost     int64      `json:"frame_b_cost"`
	FrameBPrice    int64      `json:"frame_b_price"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func toResponse(entry *catalog.PriceEntry) entryResponse {
	return entryResponse{
		ID:             entry.ID,
		Size:           entry.Size,
		CostPrice:      entry.CostPrice,
		SellPrice:      entry.SellPrice,
		FinishCost:     entry.FinishCost,
		FinishPrice:    entry.FinishPrice,
		PackagingCost:  entry.PackagingCost,
		PackagingPrice: entry.PackagingPrice,
		FrameACost:     entry.FrameACost,
		FrameAPrice:    entry.FrameAPrice,
		FrameBCost:     entry.FrameBCost,
		FrameBPrice:    entry.FrameBPrice,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = toResponse(entry)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.Seed(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]int{"created": created}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
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
	case errors.Is(err, catalog.ErrNotFound):
		http.Error(w, "price entry not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrNegativeAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
