package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kuvot/artorders/internal/export"
	"github.com/kuvot/artorders/internal/order"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/orders", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter := order.ListFilter{}

	month := r.URL.Query().Get("month")
	if month != "" {
		filter.Month = new(month)
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		filter.EndDate = &t
	}

	f, err := h.svc.Workbook(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(month)))

	if err := f.Write(w); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}
