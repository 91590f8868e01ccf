package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.novaposhta.ua/v2.0/json/"

// Client is a thin wrapper over the carrier's JSON-RPC style API: every
// call posts a model name, a method name and a property bag.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a carrier API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

type apiRequest struct {
	APIKey           string `json:"apiKey"`
	ModelName        string `json:"modelName"`
	CalledMethod     string `json:"calledMethod"`
	MethodProperties any    `json:"methodProperties"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func (c *Client) call(ctx context.Context, apiKey, model, method string, props, out any) error {
	if apiKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(apiRequest{
		APIKey:           apiKey,
		ModelName:        model,
		CalledMethod:     method,
		MethodProperties: props,
	})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from carrier api", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if !parsed.Success {
		msg := "unknown error"
		if len(parsed.Errors) > 0 {
			msg = strings.Join(parsed.Errors, ", ")
		}

		return fmt.Errorf("carrier api %s.%s: %s", model, method, msg)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(parsed.Data, out); err != nil {
		return fmt.Errorf("decoding %s.%s data: %w", model, method, err)
	}

	return nil
}

// City is a settlement returned by address search.
type City struct {
	Ref  string `json:"Ref"`
	Name string `json:"Description"`
	Area string `json:"AreaDescription"`
}

func (c *Client) SearchCities(ctx context.Context, apiKey, search string, limit int) ([]City, error) {
	var cities []City

	err := c.call(ctx, apiKey, "Address", "getCities", map[string]string{
		"FindByString": search,
		"Limit":        strconv.Itoa(limit),
	}, &cities)
	if err != nil {
		return nil, err
	}

	return cities, nil
}

// Warehouse is a carrier pickup point within a city.
type Warehouse struct {
	Ref    string `json:"Ref"`
	Name   string `json:"Description"`
	Number string `json:"Number"`
}

func (c *Client) Warehouses(ctx context.Context, apiKey, cityRef, search string, limit int) ([]Warehouse, error) {
	props := map[string]string{
		"CityRef": cityRef,
		"Limit":   strconv.Itoa(limit),
	}
	if search != "" {
		props["FindByString"] = search
	}

	var warehouses []Warehouse
	if err := c.call(ctx, apiKey, "Address", "getWarehouses", props, &warehouses); err != nil {
		return nil, err
	}

	return warehouses, nil
}

// Counterparty is a sender or recipient party on the carrier account.
type Counterparty struct {
	Ref  string `json:"Ref"`
	Name string `json:"Description"`
	City string `json:"City"`
}

func (c *Client) SenderCounterparties(ctx context.Context, apiKey string) ([]Counterparty, error) {
	var parties []Counterparty

	err := c.call(ctx, apiKey, "Counterparty", "getCounterparties", map[string]string{
		"CounterpartyProperty": "Sender",
		"Page":                 "1",
	}, &parties)
	if err != nil {
		return nil, err
	}

	return parties, nil
}

type contactPerson struct {
	Ref string `json:"Ref"`
}

func (c *Client) CounterpartyContactRef(ctx context.Context, apiKey, counterpartyRef string) (string, error) {
	var contacts []contactPerson

	err := c.call(ctx, apiKey, "Counterparty", "getCounterpartyContactPersons", map[string]string{
		"Ref":  counterpartyRef,
		"Page": "1",
	}, &contacts)
	if err != nil {
		return "", err
	}

	if len(contacts) == 0 {
		return "", nil
	}

	return contacts[0].Ref, nil
}

type counterpartyAddress struct {
	Ref string `json:"Ref"`
}

func (c *Client) CounterpartyAddressRef(ctx context.Context, apiKey, counterpartyRef string) (string, error) {
	var addresses []counterpartyAddress

	err := c.call(ctx, apiKey, "Counterparty", "getCounterpartyAddresses", map[string]string{
		"Ref":                  counterpartyRef,
		"CounterpartyProperty": "Sender",
	}, &addresses)
	if err != nil {
		return "", err
	}

	if len(addresses) == 0 {
		return "", nil
	}

	return addresses[0].Ref, nil
}

// SavedRecipient is the result of creating a private-person recipient.
type SavedRecipient struct {
	Ref        string
	ContactRef string
}

type savedCounterparty struct {
	Ref           string `json:"Ref"`
	ContactPerson struct {
		Data []contactPerson `json:"data"`
	} `json:"ContactPerson"`
}

// SaveRecipient creates a private-person recipient counterparty on the
// carrier account. The name is split as "first last middle".
func (c *Client) SaveRecipient(ctx context.Context, apiKey, fullName, phone string) (*SavedRecipient, error) {
	parts := strings.SplitN(fullName, " ", 3)
	props := map[string]string{
		"FirstName":            parts[0],
		"Phone":                phone,
		"CounterpartyType":     "PrivatePerson",
		"CounterpartyProperty": "Recipient",
	}

	if len(parts) > 1 {
		props["LastName"] = parts[1]
	}

	if len(parts) > 2 {
		props["MiddleName"] = parts[2]
	}

	var saved []savedCounterparty
	if err := c.call(ctx, apiKey, "Counterparty", "save", props, &saved); err != nil {
		return nil, err
	}

	if len(saved) == 0 {
		return nil, fmt.Errorf("carrier api returned no recipient")
	}

	recipient := &SavedRecipient{Ref: saved[0].Ref}
	if len(saved[0].ContactPerson.Data) > 0 {
		recipient.ContactRef = saved[0].ContactPerson.Data[0].Ref
	}

	return recipient, nil
}

// DocumentResult is the carrier's response to waybill creation.
type DocumentResult struct {
	Ref               string `json:"Ref"`
	Number            string `json:"IntDocNumber"`
	EstimatedDelivery string `json:"EstimatedDeliveryDate"`
}

func (c *Client) CreateDocument(ctx context.Context, apiKey string, props map[string]any) (*DocumentResult, error) {
	var docs []DocumentResult
	if err := c.call(ctx, apiKey, "InternetDocument", "save", props, &docs); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("carrier api returned no document")
	}

	return &docs[0], nil
}

// TrackingStatus is one tracked document's current state.
type TrackingStatus struct {
	Number     string `json:"Number"`
	Status     string `json:"Status"`
	StatusCode string `json:"StatusCode"`
}

func (c *Client) TrackDocument(ctx context.Context, apiKey, number string) (*TrackingStatus, error) {
	props := map[string]any{
		"Documents": []map[string]string{{"DocumentNumber": number}},
	}

	var statuses []TrackingStatus
	if err := c.call(ctx, apiKey, "TrackingDocument", "getStatusDocuments", props, &statuses); err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		return nil, ErrNotFound
	}

	return &statuses[0], nil
}
