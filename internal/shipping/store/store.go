package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/shipping"
)

// settingsKey is the fixed primary key of the single settings row.
const settingsKey = "default"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSettings(ctx context.Context) (*shipping.Settings, error) {
	query := `
		SELECT api_key, sender_ref, sender_contact_ref, sender_address_ref,
			sender_city_ref, sender_phone, sender_name
		FROM shipping_settings
		WHERE id = $1
	`

	var settings shipping.Settings

	err := s.db.QueryRowContext(ctx, query, settingsKey).Scan(
		&settings.APIKey, &settings.SenderRef, &settings.SenderContactRef,
		&settings.SenderAddressRef, &settings.SenderCityRef,
		&settings.SenderPhone, &settings.SenderName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shipping.ErrNotFound
		}

		return nil, fmt.Errorf("getting shipping settings: %w", err)
	}

	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *shipping.Settings) error {
	query := `
		INSERT INTO shipping_settings (id, api_key, sender_ref, sender_contact_ref,
			sender_address_ref, sender_city_ref, sender_phone, sender_name, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			api_key = EXCLUDED.api_key,
			sender_ref = EXCLUDED.sender_ref,
			sender_contact_ref = EXCLUDED.sender_contact_ref,
			sender_address_ref = EXCLUDED.sender_address_ref,
			sender_city_ref = EXCLUDED.sender_city_ref,
			sender_phone = EXCLUDED.sender_phone,
			sender_name = EXCLUDED.sender_name,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, settingsKey,
		settings.APIKey, settings.SenderRef, settings.SenderContactRef,
		settings.SenderAddressRef, settings.SenderCityRef,
		settings.SenderPhone, settings.SenderName,
	)
	if err != nil {
		return fmt.Errorf("saving shipping settings: %w", err)
	}

	return nil
}

func (s *Store) CreateWaybill(ctx context.Context, wb *shipping.Waybill) error {
	query := `
		INSERT INTO waybills (order_id, number, ref, recipient_name, recipient_phone,
			recipient_city, recipient_warehouse, weight, description, cost, cod_amount,
			estimated_delivery, status, status_code, print_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		wb.OrderID, wb.Number, wb.Ref, wb.RecipientName, wb.RecipientPhone,
		wb.RecipientCity, wb.RecipientWarehouse, wb.Weight, wb.Description,
		wb.Cost, wb.CODAmount, wb.EstimatedDelivery, wb.Status, wb.StatusCode,
		wb.PrintURL,
	).Scan(&wb.ID, &wb.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating waybill: %w", err)
	}

	return nil
}

func (s *Store) ListWaybills(ctx context.Context, orderID *uuid.UUID) ([]*shipping.Waybill, error) {
	query := `
		SELECT id, order_id, number, ref, recipient_name, recipient_phone,
			recipient_city, recipient_warehouse, weight, description, cost, cod_amount,
			estimated_delivery, status, status_code, print_url, created_at
		FROM waybills
	`

	var args []any

	if orderID != nil {
		query += " WHERE order_id = $1"

		args = append(args, *orderID)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing waybills: %w", err)
	}
	defer rows.Close()

	var waybills []*shipping.Waybill

	for rows.Next() {
		var (
			wb         shipping.Waybill
			codAmount  sql.NullInt64
			statusCode sql.NullString
		)

		err := rows.Scan(
			&wb.ID, &wb.OrderID, &wb.Number, &wb.Ref, &wb.RecipientName,
			&wb.RecipientPhone, &wb.RecipientCity, &wb.RecipientWarehouse,
			&wb.Weight, &wb.Description, &wb.Cost, &codAmount,
			&wb.EstimatedDelivery, &wb.Status, &statusCode, &wb.PrintURL,
			&wb.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning waybill: %w", err)
		}

		if codAmount.Valid {
			wb.CODAmount = new(codAmount.Int64)
		}

		wb.StatusCode = statusCode.String

		waybills = append(waybills, &wb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waybill rows: %w", err)
	}

	return waybills, nil
}

func (s *Store) UpdateWaybillStatus(ctx context.Context, number, status, statusCode string) error {
	query := `
		UPDATE waybills
		SET status = $1, status_code = $2
		WHERE number = $3
	`

	_, err := s.db.ExecContext(ctx, query, status, statusCode, number)
	if err != nil {
		return fmt.Errorf("updating waybill status: %w", err)
	}

	return nil
}

func (s *Store) CreateTemplate(ctx context.Context, tpl *shipping.DimensionTemplate) error {
	query := `
		INSERT INTO dimension_templates (name, length_cm, width_cm, height_cm, weight_kg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		tpl.Name, tpl.Length, tpl.Width, tpl.Height, tpl.Weight,
	).Scan(&tpl.ID)
	if err != nil {
		return fmt.Errorf("creating dimension template: %w", err)
	}

	return nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (*shipping.DimensionTemplate, error) {
	query := `
		SELECT id, name, length_cm, width_cm, height_cm, weight_kg
		FROM dimension_templates
		WHERE id = $1
	`

	var tpl shipping.DimensionTemplate

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tpl.ID, &tpl.Name, &tpl.Length, &tpl.Width, &tpl.Height, &tpl.Weight,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shipping.ErrNotFound
		}

		return nil, fmt.Errorf("getting dimension template: %w", err)
	}

	return &tpl, nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]*shipping.DimensionTemplate, error) {
	query := `
		SELECT id, name, length_cm, width_cm, height_cm, weight_kg
		FROM dimension_templates
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dimension templates: %w", err)
	}
	defer rows.Close()

	var templates []*shipping.DimensionTemplate

	for rows.Next() {
		var tpl shipping.DimensionTemplate

		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Length, &tpl.Width, &tpl.Height, &tpl.Weight); err != nil {
			return nil, fmt.Errorf("scanning dimension template: %w", err)
		}

		templates = append(templates, &tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template rows: %w", err)
	}

	return templates, nil
}

func (s *Store) UpdateTemplate(ctx context.Context, tpl *shipping.DimensionTemplate) error {
	query := `
		UPDATE dimension_templates
		SET name = $1, length_cm = $2, width_cm = $3, height_cm = $4, weight_kg = $5
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query, tpl.Name, tpl.Length, tpl.Width, tpl.Height, tpl.Weight, tpl.ID)
	if err != nil {
		return fmt.Errorf("updating dimension template: %w", err)
	}

	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM dimension_templates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting dimension template: %w", err)
	}

	return nil
}

func (s *Store) CountTemplates(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dimension_templates").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting dimension templates: %w", err)
	}

	return count, nil
}
