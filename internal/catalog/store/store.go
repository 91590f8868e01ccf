package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kuvot/artorders/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const entryColumns = `id, size, cost_price, sell_price,
	finish_cost, finish_price, packaging_cost, packaging_price,
	frame_a_cost, frame_a_price, frame_b_cost, frame_b_price,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*catalog.PriceEntry, error) {
	var entry catalog.PriceEntry

	err := row.Scan(
		&entry.ID, &entry.Size, &entry.CostPrice, &entry.SellPrice,
		&entry.FinishCost, &entry.FinishPrice,
		&entry.PackagingCost, &entry.PackagingPrice,
		&entry.FrameACost, &entry.FrameAPrice,
		&entry.FrameBCost, &entry.FrameBPrice,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *Store) CreateEntry(ctx context.Context, entry *catalog.PriceEntry) error {
	query := `
		INSERT INTO price_catalog (size, cost_price, sell_price,
			finish_cost, finish_price, packaging_cost, packaging_price,
			frame_a_cost, frame_a_price, frame_b_cost, frame_b_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		entry.Size, entry.CostPrice, entry.SellPrice,
		entry.FinishCost, entry.FinishPrice,
		entry.PackagingCost, entry.PackagingPrice,
		entry.FrameACost, entry.FrameAPrice,
		entry.FrameBCost, entry.FrameBPrice,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating price entry: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id string) (*catalog.PriceEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM price_catalog WHERE id = $1", entryColumns)

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting price entry: %w", err)
	}

	return entry, nil
}

func (s *Store) ListEntries(ctx context.Context) ([]*catalog.PriceEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM price_catalog ORDER BY created_at ASC", entryColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing price entries: %w", err)
	}
	defer rows.Close()

	var entries []*catalog.PriceEntry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning price entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, entry *catalog.PriceEntry) error {
	query := `
		UPDATE price_catalog
		SET size = $1, cost_price = $2, sell_price = $3,
			finish_cost = $4, finish_price = $5,
			packaging_cost = $6, packaging_price = $7,
			frame_a_cost = $8, frame_a_price = $9,
			frame_b_cost = $10, frame_b_price = $11,
			updated_at = NOW()
		WHERE id = $12
	`

	result, err := s.db.ExecContext(ctx, query,
		entry.Size, entry.CostPrice, entry.SellPrice,
		entry.FinishCost, entry.FinishPrice,
		entry.PackagingCost, entry.PackagingPrice,
		entry.FrameACost, entry.FrameAPrice,
		entry.FrameBCost, entry.FrameBPrice,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("updating price entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM price_catalog WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting price entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

func (s *Store) CountEntries(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM price_catalog").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting price entries: %w", err)
	}

	return count, nil
}
