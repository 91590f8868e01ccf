package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kuvot/artorders/internal/analytics"
)

const defaultTopN = 10

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/months", h.months)
	r.Get("/daily", h.daily)
}

type summaryResponse struct {
	*analytics.Summary

	Margin       int                  `json:"margin"`
	TopByRevenue []analytics.SizeRank `json:"top_sizes_by_revenue"`
	TopByProfit  []analytics.SizeRank `json:"top_sizes_by_profit"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	topN := defaultTopN
	if s := r.URL.Query().Get("top"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			topN = n
		}
	}

	var rng analytics.Range

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rng.From = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rng.To = &t
	}

	summary, err := h.svc.Summary(r.Context(), month, rng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		Summary:      summary,
		Margin:       analytics.Margin(summary.TotalRevenue, summary.TotalProfit),
		TopByRevenue: summary.TopSizesByRevenue(topN),
		TopByProfit:  summary.TopSizesByProfit(topN),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) months(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.Months(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if months == nil {
		months = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(months); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	day := time.Now()

	if s := r.URL.Query().Get("date"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		day = parsed
	}

	stats, err := h.svc.Daily(r.Context(), day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(stats); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
