package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCarrier emulates the carrier JSON API, dispatching on model and
// method like the real endpoint does.
func fakeCarrier(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.APIKey == "" {
			writeCarrierResponse(w, false, nil, []string{"API key missing"})
			return
		}

		switch req.ModelName + "." + req.CalledMethod {
		case "Counterparty.getCounterparties":
			writeCarrierResponse(w, true, []map[string]string{
				{"Ref": "sender-ref", "Description": "FOP Artist", "City": "city-ref"},
			}, nil)
		case "Counterparty.getCounterpartyContactPersons":
			writeCarrierResponse(w, true, []map[string]string{{"Ref": "contact-ref"}}, nil)
		case "Counterparty.getCounterpartyAddresses":
			writeCarrierResponse(w, true, []map[string]string{{"Ref": "address-ref"}}, nil)
		case "Counterparty.save":
			writeCarrierResponse(w, true, []map[string]any{
				{
					"Ref": "recipient-ref",
					"ContactPerson": map[string]any{
						"data": []map[string]string{{"Ref": "recipient-contact-ref"}},
					},
				},
			}, nil)
		case "InternetDocument.save":
			writeCarrierResponse(w, true, []map[string]string{
				{"Ref": "doc-ref", "IntDocNumber": "20450000000001", "EstimatedDeliveryDate": "15.05.2024"},
			}, nil)
		case "TrackingDocument.getStatusDocuments":
			writeCarrierResponse(w, true, []map[string]string{
				{"Number": "20450000000001", "Status": "In transit", "StatusCode": "5"},
			}, nil)
		case "Address.getCities":
			writeCarrierResponse(w, true, []map[string]string{
				{"Ref": "city-1", "Description": "Kyiv", "AreaDescription": "Kyivska"},
			}, nil)
		default:
			writeCarrierResponse(w, false, nil, []string{"unknown method"})
		}
	}))
}

func writeCarrierResponse(w http.ResponseWriter, success bool, data any, errs []string) {
	raw, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"data":    json.RawMessage(raw),
		"errors":  errs,
	})
}

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	settings  *Settings
	waybills  []*Waybill
	templates map[uuid.UUID]*DimensionTemplate
}

func newMemRepo() *memRepo {
	return &memRepo{templates: make(map[uuid.UUID]*DimensionTemplate)}
}

func (m *memRepo) GetSettings(_ context.Context) (*Settings, error) {
	if m.settings == nil {
		return nil, ErrNotFound
	}

	return m.settings, nil
}

func (m *memRepo) SaveSettings(_ context.Context, settings *Settings) error {
	m.settings = settings
	return nil
}

func (m *memRepo) CreateWaybill(_ context.Context, wb *Waybill) error {
	wb.ID = uuid.New()
	m.waybills = append(m.waybills, wb)

	return nil
}

func (m *memRepo) ListWaybills(_ context.Context, orderID *uuid.UUID) ([]*Waybill, error) {
	if orderID == nil {
		return m.waybills, nil
	}

	var out []*Waybill

	for _, wb := range m.waybills {
		if wb.OrderID != nil && *wb.OrderID == *orderID {
			out = append(out, wb)
		}
	}

	return out, nil
}

func (m *memRepo) UpdateWaybillStatus(_ context.Context, number, status, statusCode string) error {
	for _, wb := range m.waybills {
		if wb.Number == number {
			wb.Status = status
			wb.StatusCode = statusCode
		}
	}

	return nil
}

func (m *memRepo) CreateTemplate(_ context.Context, tpl *DimensionTemplate) error {
	tpl.ID = uuid.New()
	m.templates[tpl.ID] = tpl

	return nil
}

func (m *memRepo) GetTemplate(_ context.Context, id uuid.UUID) (*DimensionTemplate, error) {
	tpl, ok := m.templates[id]
	if !ok {
		return nil, ErrNotFound
	}

	return tpl, nil
}

func (m *memRepo) ListTemplates(_ context.Context) ([]*DimensionTemplate, error) {
	out := make([]*DimensionTemplate, 0, len(m.templates))
	for _, tpl := range m.templates {
		out = append(out, tpl)
	}

	return out, nil
}

func (m *memRepo) UpdateTemplate(_ context.Context, tpl *DimensionTemplate) error {
	m.templates[tpl.ID] = tpl
	return nil
}

func (m *memRepo) DeleteTemplate(_ context.Context, id uuid.UUID) error {
	delete(m.templates, id)
	return nil
}

func (m *memRepo) CountTemplates(_ context.Context) (int, error) {
	return len(m.templates), nil
}

// stubLinker records waybill attachments.
type stubLinker struct {
	orderID uuid.UUID
	number  string
}

func (s *stubLinker) AttachWaybill(_ context.Context, id uuid.UUID, number string) error {
	s.orderID = id
	s.number = number

	return nil
}

func TestService_Configure_DiscoversSender(t *testing.T) {
	ts := fakeCarrier(t)
	defer ts.Close()

	repo := newMemRepo()
	svc := NewService(repo, NewClient(ts.URL), &stubLinker{})

	settings, err := svc.Configure(context.Background(), "test-key", "+380501112233")
	require.NoError(t, err)

	assert.Equal(t, "sender-ref", settings.SenderRef)
	assert.Equal(t, "contact-ref", settings.SenderContactRef)
	assert.Equal(t, "address-ref", settings.SenderAddressRef)
	assert.Equal(t, "city-ref", settings.SenderCityRef)
	assert.Equal(t, "FOP Artist", settings.SenderName)
	assert.Same(t, settings, repo.settings)
}

func TestService_Settings_NotConfigured(t *testing.T) {
	svc := NewService(newMemRepo(), NewClient(""), &stubLinker{})

	_, err := svc.Settings(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_CreateWaybill(t *testing.T) {
	ts := fakeCarrier(t)
	defer ts.Close()

	repo := newMemRepo()
	repo.settings = &Settings{
		APIKey:           "test-key",
		SenderRef:        "sender-ref",
		SenderContactRef: "contact-ref",
		SenderAddressRef: "address-ref",
		SenderCityRef:    "city-ref",
		SenderPhone:      "+380501112233",
	}

	linker := &stubLinker{}
	svc := NewService(repo, NewClient(ts.URL), linker)

	orderID := uuid.New()
	cod := int64(80000)

	wb, err := svc.CreateWaybill(context.Background(), WaybillParams{
		OrderID:           &orderID,
		RecipientName:     "Олена Петрівна Шевченко",
		RecipientPhone:    "+380671234567",
		RecipientCityRef:  "city-1",
		RecipientCityName: "Kyiv",
		WarehouseRef:      "wh-1",
		WarehouseName:     "Warehouse #1",
		Length:            45,
		Width:             35,
		Height:            5,
		Weight:            0.8,
		Description:       "Painting 30х40",
		Cost:              65000,
		CODAmount:         &cod,
	})
	require.NoError(t, err)

	assert.Equal(t, "20450000000001", wb.Number)
	assert.Equal(t, "doc-ref", wb.Ref)
	assert.Equal(t, "15.05.2024", wb.EstimatedDelivery)
	assert.Equal(t, "created", wb.Status)
	assert.Contains(t, wb.PrintURL, "doc-ref")

	// The waybill was persisted and linked back to the order.
	require.Len(t, repo.waybills, 1)
	assert.Equal(t, orderID, linker.orderID)
	assert.Equal(t, "20450000000001", linker.number)
}

func TestService_CreateWaybill_UsesTemplateDimensions(t *testing.T) {
	ts := fakeCarrier(t)
	defer ts.Close()

	repo := newMemRepo()
	repo.settings = &Settings{APIKey: "test-key", SenderRef: "sender-ref"}

	svc := NewService(repo, NewClient(ts.URL), &stubLinker{})

	tpl, err := svc.CreateTemplate(context.Background(), TemplateParams{
		Name: "30x40 см", Length: 45, Width: 35, Height: 5, Weight: 0.8,
	})
	require.NoError(t, err)

	wb, err := svc.CreateWaybill(context.Background(), WaybillParams{
		RecipientName:    "Test Recipient",
		RecipientPhone:   "+380671234567",
		RecipientCityRef: "city-1",
		WarehouseRef:     "wh-1",
		TemplateID:       &tpl.ID,
		Description:      "Painting",
		Cost:             65000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.8, wb.Weight)
}

func TestService_CreateWaybill_NoSender(t *testing.T) {
	repo := newMemRepo()
	repo.settings = &Settings{APIKey: "test-key"}

	svc := NewService(repo, NewClient(""), &stubLinker{})

	_, err := svc.CreateWaybill(context.Background(), WaybillParams{})
	assert.ErrorIs(t, err, ErrNoSender)
}

func TestService_Track_UpdatesLocalRecord(t *testing.T) {
	ts := fakeCarrier(t)
	defer ts.Close()

	repo := newMemRepo()
	repo.settings = &Settings{APIKey: "test-key"}
	repo.waybills = []*Waybill{{Number: "20450000000001", Status: "created"}}

	svc := NewService(repo, NewClient(ts.URL), &stubLinker{})

	status, err := svc.Track(context.Background(), "20450000000001")
	require.NoError(t, err)

	assert.Equal(t, "In transit", status.Status)
	assert.Equal(t, "In transit", repo.waybills[0].Status)
	assert.Equal(t, "5", repo.waybills[0].StatusCode)
}

func TestService_SeedTemplates(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, NewClient(""), &stubLinker{})

	created, err := svc.SeedTemplates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(defaultTemplates), created)

	// Second run is a no-op.
	created, err = svc.SeedTemplates(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestSettings_MaskedKey(t *testing.T) {
	assert.Equal(t, "abcd****wxyz", (&Settings{APIKey: "abcdefgh-stuvwxyz"}).MaskedKey())
	assert.Equal(t, "short", (&Settings{APIKey: "short"}).MaskedKey())
}
