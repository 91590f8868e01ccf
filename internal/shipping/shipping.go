// Package shipping integrates with the Nova Poshta carrier API: address
// lookup, waybill (internet document) creation and tracking. Orders only
// reference waybills by number; the valuation engine knows nothing about
// delivery.
package shipping

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrNotConfigured = errors.New("carrier api key not configured")
	ErrNoSender      = errors.New("sender data not configured")
)

// Settings holds the carrier account data discovered from the API when the
// key is saved.
type Settings struct {
	APIKey           string
	SenderRef        string
	SenderContactRef string
	SenderAddressRef string
	SenderCityRef    string
	SenderPhone      string
	SenderName       string
}

// MaskedKey returns the API key with the middle hidden, for display.
func (s *Settings) MaskedKey() string {
	if len(s.APIKey) <= 8 {
		return s.APIKey
	}

	return s.APIKey[:4] + "****" + s.APIKey[len(s.APIKey)-4:]
}

// DimensionTemplate is a reusable parcel size preset for a canvas format.
type DimensionTemplate struct {
	ID     uuid.UUID
	Name   string
	Length float64 // cm
	Width  float64 // cm
	Height float64 // cm
	Weight float64 // kg
}

// Waybill is the local record of a created carrier document.
type Waybill struct {
	ID                 uuid.UUID
	OrderID            *uuid.UUID
	Number             string
	Ref                string
	RecipientName      string
	RecipientPhone     string
	RecipientCity      string
	RecipientWarehouse string
	Weight             float64
	Description        string
	Cost               int64 // declared value in kopecks
	CODAmount          *int64
	EstimatedDelivery  string
	Status             string
	StatusCode         string
	PrintURL           string
	CreatedAt          time.Time
}
