package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kuvot/artorders/internal/order"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectOrderColumns = `
	o.id, o.order_date, o.month, o.painting_name, o.order_type, o.sales_channel,
	o.status, o.comment, o.extra_income, o.discounted_amount,
	o.total_amount, o.total_cost, o.final_amount, o.discount, o.net_income,
	o.waybill_number, o.created_at, o.updated_at, o.deleted_at
`

const selectItemColumns = `
	i.size, i.product_id, i.product_name, i.quantity, i.unit_price, i.unit_cost,
	i.with_finish, i.with_packaging, i.frame_tier,
	i.finish_price, i.finish_cost, i.packaging_price, i.packaging_cost,
	i.frame_price, i.frame_cost
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanOrderRow reads one joined orders/order_items row. The item part is
// nullable because of the LEFT JOIN.
func scanOrderRow(s scanner) (*order.Order, *order.LineItem, error) {
	var (
		o          order.Order
		typeStr    string
		channelStr string
		statusStr  string
		comment    sql.NullString
		discounted sql.NullInt64
		waybill    sql.NullString

		itemSize    sql.NullString
		productID   uuid.NullUUID
		productName sql.NullString
		itemQty     sql.NullInt64
		unitPrice   sql.NullInt64
		unitCost    sql.NullInt64
		withFinish  sql.NullBool
		withPack    sql.NullBool
		frameTier   sql.NullString
		finishPrice sql.NullInt64
		finishCost  sql.NullInt64
		packPrice   sql.NullInt64
		packCost    sql.NullInt64
		framePrice  sql.NullInt64
		frameCost   sql.NullInt64
	)

	if err := s.Scan(
		&o.ID, &o.OrderDate, &o.Month, &o.PaintingName, &typeStr, &channelStr,
		&statusStr, &comment, &o.ExtraIncome, &discounted,
		&o.TotalAmount, &o.TotalCost, &o.FinalAmount, &o.Discount, &o.NetIncome,
		&waybill, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
		&itemSize, &productID, &productName, &itemQty, &unitPrice, &unitCost,
		&withFinish, &withPack, &frameTier,
		&finishPrice, &finishCost, &packPrice, &packCost,
		&framePrice, &frameCost,
	); err != nil {
		return nil, nil, err
	}

	o.Type = order.Type(typeStr)
	o.Channel = order.Channel(channelStr)
	o.Status = order.Status(statusStr)
	o.Comment = comment.String
	o.WaybillNumber = waybill.String

	if discounted.Valid {
		o.DiscountedAmount = new(discounted.Int64)
	}

	if !itemQty.Valid {
		return &o, nil, nil
	}

	item := &order.LineItem{
		Size:           itemSize.String,
		ProductName:    productName.String,
		Quantity:       int(itemQty.Int64),
		UnitPrice:      unitPrice.Int64,
		UnitCost:       unitCost.Int64,
		WithFinish:     withFinish.Bool,
		WithPackaging:  withPack.Bool,
		FrameTier:      order.FrameTier(frameTier.String),
		FinishPrice:    finishPrice.Int64,
		FinishCost:     finishCost.Int64,
		PackagingPrice: packPrice.Int64,
		PackagingCost:  packCost.Int64,
		FramePrice:     framePrice.Int64,
		FrameCost:      frameCost.Int64,
	}

	if productID.Valid {
		item.ProductID = &productID.UUID
	}

	return &o, item, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (order_date, month, painting_name, order_type, sales_channel,
			status, comment, extra_income, discounted_amount,
			total_amount, total_cost, final_amount, discount, net_income,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		o.OrderDate, o.Month, o.PaintingName, o.Type, o.Channel,
		o.Status, o.Comment, o.ExtraIncome, o.DiscountedAmount,
		o.TotalAmount, o.TotalCost, o.FinalAmount, o.Discount, o.NetIncome,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	if err := insertItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `, ` + selectItemColumns + `
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = $1 AND o.deleted_at IS NULL
		ORDER BY i.position ASC`

	orders, err := s.queryOrders(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	if len(orders) == 0 {
		return nil, order.ErrNotFound
	}

	return orders[0], nil
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `, ` + selectItemColumns + `
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND o.month = $%d", argIdx)

		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND o.order_type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND o.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Channel != nil {
		query += fmt.Sprintf(" AND o.sales_channel = $%d", argIdx)

		args = append(args, *filter.Channel)
		argIdx++
	}

	if filter.Size != nil {
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM order_items f WHERE f.order_id = o.id AND f.size = $%d)", argIdx)

		args = append(args, *filter.Size)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND o.order_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND o.order_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY o.order_date DESC, o.id ASC, i.position ASC"

	orders, err := s.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return orders, nil
}

// queryOrders runs a joined query and folds the duplicated order rows back
// into one Order per id, preserving row order.
func (s *Store) queryOrders(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*order.Order

	byID := make(map[uuid.UUID]*order.Order)

	for rows.Next() {
		o, item, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		existing, found := byID[o.ID]
		if !found {
			existing = o
			byID[o.ID] = o

			orders = append(orders, o)
		}

		if item != nil {
			existing.Items = append(existing.Items, *item)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE orders
		SET order_date = $1, month = $2, painting_name = $3, order_type = $4,
			sales_channel = $5, status = $6, comment = $7, extra_income = $8,
			discounted_amount = $9, total_amount = $10, total_cost = $11,
			final_amount = $12, discount = $13, net_income = $14, updated_at = NOW()
		WHERE id = $15 AND deleted_at IS NULL
	`

	_, err = tx.ExecContext(ctx, query,
		o.OrderDate, o.Month, o.PaintingName, o.Type,
		o.Channel, o.Status, o.Comment, o.ExtraIncome,
		o.DiscountedAmount, o.TotalAmount, o.TotalCost,
		o.FinalAmount, o.Discount, o.NetIncome, o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", o.ID); err != nil {
		return fmt.Errorf("clearing order items: %w", err)
	}

	if err := insertItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order update: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateWaybill(ctx context.Context, id uuid.UUID, waybillNumber string) error {
	query := `
		UPDATE orders
		SET waybill_number = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := s.db.ExecContext(ctx, query, waybillNumber, id)
	if err != nil {
		return fmt.Errorf("updating waybill: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE orders
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID uuid.UUID, items []order.LineItem) error {
	query := `
		INSERT INTO order_items (order_id, position, size, product_id, product_name,
			quantity, unit_price, unit_cost,
			with_finish, with_packaging, frame_tier,
			finish_price, finish_cost, packaging_price, packaging_cost, frame_price, frame_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for pos, item := range items {
		_, err := tx.ExecContext(ctx, query,
			orderID, pos, item.Size, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.UnitCost,
			item.WithFinish, item.WithPackaging, item.FrameTier,
			item.FinishPrice, item.FinishCost, item.PackagingPrice, item.PackagingCost,
			item.FramePrice, item.FrameCost,
		)
		if err != nil {
			return fmt.Errorf("inserting order item %d: %w", pos, err)
		}
	}

	return nil
}
