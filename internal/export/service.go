// Package export renders order listings as xlsx workbooks for download.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kuvot/artorders/internal/order"
)

const sheetName = "Orders"

var headers = []string{
	"Date", "Month", "Painting", "Type", "Item", "Qty",
	"Revenue", "Cost", "Profit", "Channel", "Status", "Comment",
}

// OrderSource supplies the orders to export. Satisfied by the order service.
type OrderSource interface {
	List(ctx context.Context, filter order.ListFilter) ([]*order.Order, error)
}

type Service struct {
	orders OrderSource
}

func NewService(orders OrderSource) *Service {
	return &Service{orders: orders}
}

// Workbook builds an xlsx workbook with one row per line item, carrying the
// owning order's context on every row. The caller owns closing the file.
func (s *Service) Workbook(ctx context.Context, filter order.ListFilter) (*excelize.File, error) {
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"C8553D"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)

		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}

		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("styling header: %w", err)
		}
	}

	rowNum := 2

	for _, o := range orders {
		for _, item := range o.Items {
			row := []any{
				o.OrderDate.Format(time.DateOnly),
				o.Month,
				o.PaintingName,
				string(o.Type),
				item.Label(),
				item.Quantity,
				amount(item.Revenue()),
				amount(item.Cost()),
				amount(item.Profit()),
				string(o.Channel),
				string(o.Status),
				o.Comment,
			}

			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", rowNum, err)
			}

			rowNum++
		}
	}

	if err := f.SetColWidth(sheetName, "A", "L", 15); err != nil {
		return nil, fmt.Errorf("setting column widths: %w", err)
	}

	return f, nil
}

// Filename derives the download name from the month filter.
func Filename(month string) string {
	if month == "" {
		month = "all"
	}

	return fmt.Sprintf("orders_%s.xlsx", month)
}

// amount converts kopecks to whole currency units for the sheet.
func amount(v int64) float64 {
	return float64(v) / 100
}
