package shipping

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/shipping"
)

const defaultSearchLimit = 20

type Handler struct {
	svc *shipping.Service
}

func NewHandler(svc *shipping.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/settings", h.settings)
	r.Put("/settings", h.configure)
	r.Get("/cities", h.cities)
	r.Get("/warehouses", h.warehouses)
	r.Post("/waybills", h.createWaybill)
	r.Get("/waybills", h.listWaybills)
	r.Get("/waybills/{number}/status", h.track)
	r.Route("/templates", func(r chi.Router) {
		r.Post("/", h.createTemplate)
		r.Get("/", h.listTemplates)
		r.Post("/seed", h.seedTemplates)
		r.Put("/{id}", h.updateTemplate)
		r.Delete("/{id}", h.deleteTemplate)
	})
}

type settingsResponse struct {
	APIKey     string `json:"api_key"`
	SenderName string `json:"sender_name,omitempty"`
	Configured bool   `json:"configured"`
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		if errors.Is(err, shipping.ErrNotConfigured) {
			writeJSON(w, settingsResponse{Configured: false})
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, settingsResponse{
		APIKey:     settings.MaskedKey(),
		SenderName: settings.SenderName,
		Configured: true,
	})
}

type configureRequest struct {
	APIKey      string `json:"api_key"`
	SenderPhone string `json:"sender_phone"`
}

func (h *Handler) configure(w http.ResponseWriter, r *http.Request) {
	var req configureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.APIKey == "" {
		http.Error(w, "api_key is required", http.StatusBadRequest)
		return
	}

	settings, err := h.svc.Configure(r.Context(), req.APIKey, req.SenderPhone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, settingsResponse{
		APIKey:     settings.MaskedKey(),
		SenderName: settings.SenderName,
		Configured: true,
	})
}

func searchLimit(r *http.Request) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}

	return defaultSearchLimit
}

func (h *Handler) cities(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	if search == "" {
		http.Error(w, "search is required", http.StatusBadRequest)
		return
	}

	cities, err := h.svc.Cities(r.Context(), search, searchLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, cities)
}

func (h *Handler) warehouses(w http.ResponseWriter, r *http.Request) {
	cityRef := r.URL.Query().Get("city_ref")
	if cityRef == "" {
		http.Error(w, "city_ref is required", http.StatusBadRequest)
		return
	}

	warehouses, err := h.svc.Warehouses(r.Context(), cityRef, r.URL.Query().Get("search"), searchLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, warehouses)
}

type createWaybillRequest struct {
	OrderID           *uuid.UUID `json:"order_id,omitempty"`
	RecipientName     string     `json:"recipient_name"`
	RecipientPhone    string     `json:"recipient_phone"`
	RecipientCityRef  string     `json:"recipient_city_ref"`
	RecipientCityName string     `json:"recipient_city_name"`
	WarehouseRef      string     `json:"warehouse_ref"`
	WarehouseName     string     `json:"warehouse_name"`
	TemplateID        *uuid.UUID `json:"template_id,omitempty"`
	Length            float64    `json:"length"`
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	Weight            float64    `json:"weight"`
	Description       string     `json:"description"`
	Cost              int64      `json:"cost"`
	PaymentMethod     string     `json:"payment_method"`
	PayerType         string     `json:"payer_type"`
	CODAmount         *int64     `json:"cod_amount,omitempty"`
}

type waybillResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           *uuid.UUID `json:"order_id,omitempty"`
	Number            string     `json:"number"`
	RecipientName     string     `json:"recipient_name"`
	RecipientCity     string     `json:"recipient_city"`
	Weight            float64    `json:"weight"`
	Cost              int64      `json:"cost"`
	CODAmount         *int64     `json:"cod_amount,omitempty"`
	EstimatedDelivery string     `json:"estimated_delivery,omitempty"`
	Status            string     `json:"status"`
	PrintURL          string     `json:"print_url"`
	CreatedAt         time.Time  `json:"created_at"`
}

func toWaybillResponse(wb *shipping.Waybill) waybillResponse {
	return waybillResponse{
		ID:                wb.ID,
		OrderID:           wb.OrderID,
		Number:            wb.Number,
		RecipientName:     wb.RecipientName,
		RecipientCity:     wb.RecipientCity,
		Weight:            wb.Weight,
		Cost:              wb.Cost,
		CODAmount:         wb.CODAmount,
		EstimatedDelivery: wb.EstimatedDelivery,
		Status:            wb.Status,
		PrintURL:          wb.PrintURL,
		CreatedAt:         wb.CreatedAt,
	}
}

func (h *Handler) createWaybill(w http.ResponseWriter, r *http.Request) {
	var req createWaybillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wb, err := h.svc.CreateWaybill(r.Context(), shipping.WaybillParams{
		OrderID:           req.OrderID,
		RecipientName:     req.RecipientName,
		RecipientPhone:    req.RecipientPhone,
		RecipientCityRef:  req.RecipientCityRef,
		RecipientCityName: req.RecipientCityName,
		WarehouseRef:      req.WarehouseRef,
		WarehouseName:     req.WarehouseName,
		TemplateID:        req.TemplateID,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		Weight:            req.Weight,
		Description:       req.Description,
		Cost:              req.Cost,
		PaymentMethod:     req.PaymentMethod,
		PayerType:         req.PayerType,
		CODAmount:         req.CODAmount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toWaybillResponse(wb)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listWaybills(w http.ResponseWriter, r *http.Request) {
	var orderID *uuid.UUID

	if s := r.URL.Query().Get("order_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid order_id", http.StatusBadRequest)
			return
		}

		orderID = &id
	}

	waybills, err := h.svc.ListWaybills(r.Context(), orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]waybillResponse, len(waybills))
	for i, wb := range waybills {
		resp[i] = toWaybillResponse(wb)
	}

	writeJSON(w, resp)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Track(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, status)
}

type templateRequest struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

func (r templateRequest) params() shipping.TemplateParams {
	return shipping.TemplateParams{
		Name:   r.Name,
		Length: r.Length,
		Width:  r.Width,
		Height: r.Height,
		Weight: r.Weight,
	}
}

type templateResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Length float64   `json:"length"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Weight float64   `json:"weight"`
}

func toTemplateResponse(tpl *shipping.DimensionTemplate) templateResponse {
	return templateResponse{
		ID:     tpl.ID,
		Name:   tpl.Name,
		Length: tpl.Length,
		Width:  tpl.Width,
		Height: tpl.Height,
		Weight: tpl.Weight,
	}
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tpl, err := h.svc.CreateTemplate(r.Context(), req.params())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toTemplateResponse(tpl)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]templateResponse, len(templates))
	for i, tpl := range templates {
		resp[i] = toTemplateResponse(tpl)
	}

	writeJSON(w, resp)
}

func (h *Handler) seedTemplates(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.SeedTemplates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int{"created": created})
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tpl, err := h.svc.UpdateTemplate(r.Context(), id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toTemplateResponse(tpl))
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteTemplate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps shipping errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shipping.ErrNotConfigured):
		http.Error(w, "carrier api key not configured", http.StatusConflict)
	case errors.Is(err, shipping.ErrNoSender):
		http.Error(w, "sender data not configured", http.StatusConflict)
	case errors.Is(err, shipping.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
