package shipping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error

	CreateWaybill(ctx context.Context, wb *Waybill) error
	ListWaybills(ctx context.Context, orderID *uuid.UUID) ([]*Waybill, error)
	UpdateWaybillStatus(ctx context.Context, number, status, statusCode string) error

	CreateTemplate(ctx context.Context, tpl *DimensionTemplate) error
	GetTemplate(ctx context.Context, id uuid.UUID) (*DimensionTemplate, error)
	ListTemplates(ctx context.Context) ([]*DimensionTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *DimensionTemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	CountTemplates(ctx context.Context) (int, error)
}

// OrderLinker writes the created waybill number back onto the order.
// Satisfied by the order service.
type OrderLinker interface {
	AttachWaybill(ctx context.Context, id uuid.UUID, waybillNumber string) error
}

type Service struct {
	repo   Repository
	client *Client
	orders OrderLinker
}

func NewService(repo Repository, client *Client, orders OrderLinker) *Service {
	return &Service{repo: repo, client: client, orders: orders}
}

// Configure stores the carrier API key and discovers the sender party data
// from the account. Discovery failures are logged but do not block saving
// the key, so a partially reachable account can still be fixed later.
func (s *Service) Configure(ctx context.Context, apiKey, senderPhone string) (*Settings, error) {
	settings := &Settings{APIKey: apiKey, SenderPhone: senderPhone}

	if err := s.discoverSender(ctx, settings); err != nil {
		slog.Warn("carrier sender discovery failed", "error", err)
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("saving carrier settings: %w", err)
	}

	return settings, nil
}

func (s *Service) discoverSender(ctx context.Context, settings *Settings) error {
	parties, err := s.client.SenderCounterparties(ctx, settings.APIKey)
	if err != nil {
		return err
	}

	if len(parties) == 0 {
		return nil
	}

	sender := parties[0]
	settings.SenderRef = sender.Ref
	settings.SenderName = sender.Name
	settings.SenderCityRef = sender.City

	contactRef, err := s.client.CounterpartyContactRef(ctx, settings.APIKey, sender.Ref)
	if err != nil {
		return err
	}

	settings.SenderContactRef = contactRef

	addressRef, err := s.client.CounterpartyAddressRef(ctx, settings.APIKey, sender.Ref)
	if err != nil {
		return err
	}

	settings.SenderAddressRef = addressRef

	return nil
}

// Settings returns the stored carrier settings, or ErrNotConfigured when
// no key has been saved yet.
func (s *Service) Settings(ctx context.Context) (*Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotConfigured
		}

		return nil, err
	}

	return settings, nil
}

func (s *Service) Cities(ctx context.Context, search string, limit int) ([]City, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.SearchCities(ctx, settings.APIKey, search, limit)
}

func (s *Service) Warehouses(ctx context.Context, cityRef, search string, limit int) ([]Warehouse, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	return s.client.Warehouses(ctx, settings.APIKey, cityRef, search, limit)
}

// WaybillParams describes a shipment to create. Dimensions can come from a
// template or be given directly; TemplateID wins when both are set.
type WaybillParams struct {
	OrderID           *uuid.UUID
	RecipientName     string
	RecipientPhone    string
	RecipientCityRef  string
	RecipientCityName string
	WarehouseRef      string
	WarehouseName     string
	TemplateID        *uuid.UUID
	Length            float64
	Width             float64
	Height            float64
	Weight            float64
	Description       string
	Cost              int64
	PaymentMethod     string
	PayerType         string
	CODAmount         *int64
}

// CreateWaybill creates the carrier document, stores the local waybill
// record and links it back to the order when one is referenced.
func (s *Service) CreateWaybill(ctx context.Context, params WaybillParams) (*Waybill, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	if settings.SenderRef == "" {
		return nil, ErrNoSender
	}

	if params.TemplateID != nil {
		tpl, err := s.repo.GetTemplate(ctx, *params.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("loading dimension template: %w", err)
		}

		params.Length = tpl.Length
		params.Width = tpl.Width
		params.Height = tpl.Height
		params.Weight = tpl.Weight
	}

	recipient, err := s.client.SaveRecipient(ctx, settings.APIKey, params.RecipientName, params.RecipientPhone)
	if err != nil {
		return nil, fmt.Errorf("creating recipient: %w", err)
	}

	doc, err := s.client.CreateDocument(ctx, settings.APIKey, documentProps(settings, params, recipient))
	if err != nil {
		return nil, fmt.Errorf("creating carrier document: %w", err)
	}

	wb := &Waybill{
		OrderID:            params.OrderID,
		Number:             doc.Number,
		Ref:                doc.Ref,
		RecipientName:      params.RecipientName,
		RecipientPhone:     params.RecipientPhone,
		RecipientCity:      params.RecipientCityName,
		RecipientWarehouse: params.WarehouseName,
		Weight:             params.Weight,
		Description:        params.Description,
		Cost:               params.Cost,
		CODAmount:          params.CODAmount,
		EstimatedDelivery:  doc.EstimatedDelivery,
		Status:             "created",
		PrintURL:           PrintURL(doc.Ref),
	}

	if err := s.repo.CreateWaybill(ctx, wb); err != nil {
		return nil, fmt.Errorf("saving waybill: %w", err)
	}

	if params.OrderID != nil {
		if err := s.orders.AttachWaybill(ctx, *params.OrderID, doc.Number); err != nil {
			return nil, fmt.Errorf("linking waybill to order: %w", err)
		}
	}

	return wb, nil
}

func documentProps(settings *Settings, params WaybillParams, recipient *SavedRecipient) map[string]any {
	volume := math.Round(params.Length*params.Width*params.Height/1e6*1e4) / 1e4

	paymentMethod := params.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	payerType := params.PayerType
	if payerType == "" {
		payerType = "Recipient"
	}

	props := map[string]any{
		"PayerType":        payerType,
		"PaymentMethod":    paymentMethod,
		"DateTime":         time.Now().Format("02.01.2006"),
		"CargoType":        "Cargo",
		"ServiceType":      "WarehouseWarehouse",
		"SeatsAmount":      "1",
		"Weight":           fmt.Sprintf("%g", params.Weight),
		"Description":      params.Description,
		"Cost":             fmt.Sprintf("%d", params.Cost/100),
		"CitySender":       settings.SenderCityRef,
		"Sender":           settings.SenderRef,
		"SenderAddress":    settings.SenderAddressRef,
		"ContactSender":    settings.SenderContactRef,
		"SendersPhone":     settings.SenderPhone,
		"CityRecipient":    params.RecipientCityRef,
		"Recipient":        recipient.Ref,
		"RecipientAddress": params.WarehouseRef,
		"ContactRecipient": recipient.ContactRef,
		"RecipientsPhone":  params.RecipientPhone,
		"VolumeGeneral":    fmt.Sprintf("%g", volume),
		"OptionsSeat": []map[string]string{{
			"volumetricVolume": fmt.Sprintf("%g", volume),
			"volumetricLength": fmt.Sprintf("%g", params.Length),
			"volumetricWidth":  fmt.Sprintf("%g", params.Width),
			"volumetricHeight": fmt.Sprintf("%g", params.Height),
			"weight":           fmt.Sprintf("%g", params.Weight),
		}},
	}

	if params.CODAmount != nil && *params.CODAmount > 0 {
		props["BackwardDeliveryData"] = []map[string]string{{
			"PayerType":        "Recipient",
			"CargoType":        "Money",
			"RedeliveryString": fmt.Sprintf("%d", *params.CODAmount/100),
		}}
	}

	return props
}

// PrintURL builds the carrier's PDF print link for a document ref.
func PrintURL(ref string) string {
	return fmt.Sprintf("https://my.novaposhta.ua/orders/printDocument/orders[]/%s/type/pdf", ref)
}

func (s *Service) ListWaybills(ctx context.Context, orderID *uuid.UUID) ([]*Waybill, error) {
	return s.repo.ListWaybills(ctx, orderID)
}

// Track fetches the current carrier status for a waybill number and stores
// it on the local record.
func (s *Service) Track(ctx context.Context, number string) (*TrackingStatus, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	status, err := s.client.TrackDocument(ctx, settings.APIKey, number)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateWaybillStatus(ctx, number, status.Status, status.StatusCode); err != nil {
		return nil, fmt.Errorf("recording waybill status: %w", err)
	}

	return status, nil
}

type TemplateParams struct {
	Name   string
	Length float64
	Width  float64
	Height float64
	Weight float64
}

func (s *Service) CreateTemplate(ctx context.Context, params TemplateParams) (*DimensionTemplate, error) {
	tpl := &DimensionTemplate{
		Name:   params.Name,
		Length: params.Length,
		Width:  params.Width,
		Height: params.Height,
		Weight: params.Weight,
	}
	if err := s.repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

func (s *Service) ListTemplates(ctx context.Context) ([]*DimensionTemplate, error) {
	return s.repo.ListTemplates(ctx)
}

func (s *Service) UpdateTemplate(ctx context.Context, id uuid.UUID, params TemplateParams) (*DimensionTemplate, error) {
	tpl, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	tpl.Name = params.Name
	tpl.Length = params.Length
	tpl.Width = params.Width
	tpl.Height = params.Height
	tpl.Weight = params.Weight

	if err := s.repo.UpdateTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTemplate(ctx, id)
}

// defaultTemplates cover the common canvas formats.
var defaultTemplates = []TemplateParams{
	{Name: "20x30 см", Length: 35, Width: 25, Height: 5, Weight: 0.5},
	{Name: "30x40 см", Length: 45, Width: 35, Height: 5, Weight: 0.8},
	{Name: "40x50 см", Length: 55, Width: 45, Height: 6, Weight: 1.2},
	{Name: "40x60 см", Length: 65, Width: 45, Height: 6, Weight: 1.5},
	{Name: "50x70 см", Length: 75, Width: 55, Height: 7, Weight: 2.0},
	{Name: "60x80 см", Length: 85, Width: 65, Height: 8, Weight: 2.8},
	{Name: "70x100 см", Length: 105, Width: 75, Height: 10, Weight: 4.0},
	{Name: "80x120 см", Length: 125, Width: 85, Height: 10, Weight: 5.5},
}

// SeedTemplates fills the template table when it is empty. Returns the
// number of templates created.
func (s *Service) SeedTemplates(ctx context.Context) (int, error) {
	count, err := s.repo.CountTemplates(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	for _, params := range defaultTemplates {
		if _, err := s.CreateTemplate(ctx, params); err != nil {
			return 0, fmt.Errorf("seeding template %s: %w", params.Name, err)
		}
	}

	return len(defaultTemplates), nil
}
