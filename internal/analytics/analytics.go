// Package analytics turns a set of valuated orders into roll-up statistics:
// scalar totals plus revenue and profit grouped by month, order type, sales
// channel and canvas size. Everything here is pure; the inputs are never
// mutated and the same input always yields the same summary.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/kuvot/artorders/internal/order"
)

// Summary is the per-query value object returned to callers. The by-month,
// by-type and by-channel maps accumulate per order (final amount for
// revenue, net income for profit); the by-size maps accumulate per line
// item, so one order can contribute to several size buckets.
type Summary struct {
	TotalRevenue     int64   `json:"total_revenue"`
	TotalCost        int64   `json:"total_cost"`
	TotalProfit      int64   `json:"total_profit"`
	TotalDiscount    int64   `json:"total_discount"`
	TotalExtraIncome int64   `json:"total_extra_income"`
	OrderCount       int     `json:"order_count"`
	AvgCheck         float64 `json:"avg_check"`

	RevenueByMonth   map[string]int64        `json:"revenue_by_month"`
	ProfitByMonth    map[string]int64        `json:"profit_by_month"`
	RevenueByType    map[order.Type]int64    `json:"revenue_by_type"`
	ProfitByType     map[order.Type]int64    `json:"profit_by_type"`
	RevenueByChannel map[order.Channel]int64 `json:"revenue_by_channel"`
	ProfitByChannel  map[order.Channel]int64 `json:"profit_by_channel"`
	RevenueBySize    map[string]int64        `json:"revenue_by_size"`
	ProfitBySize     map[string]int64        `json:"profit_by_size"`

	// sizeOrder remembers first appearance of each size key so that
	// top-N ranking can break ties deterministically.
	sizeOrder []string
}

// Summarize aggregates the given orders, optionally restricted to one month
// label. It does not exclude cancelled orders; that is the caller's call.
func Summarize(orders []*order.Order, monthFilter string) *Summary {
	s := &Summary{
		RevenueByMonth:   make(map[string]int64),
		ProfitByMonth:    make(map[string]int64),
		RevenueByType:    make(map[order.Type]int64),
		ProfitByType:     make(map[order.Type]int64),
		RevenueByChannel: make(map[order.Channel]int64),
		ProfitByChannel:  make(map[order.Channel]int64),
		RevenueBySize:    make(map[string]int64),
		ProfitBySize:     make(map[string]int64),
	}

	for _, o := range orders {
		if monthFilter != "" && o.Month != monthFilter {
			continue
		}

		s.TotalRevenue += o.FinalAmount
		s.TotalCost += o.TotalCost
		s.TotalProfit += o.NetIncome
		s.TotalDiscount += o.Discount
		s.TotalExtraIncome += o.ExtraIncome
		s.OrderCount++

		s.RevenueByMonth[o.Month] += o.FinalAmount
		s.ProfitByMonth[o.Month] += o.NetIncome

		s.RevenueByType[o.Type] += o.FinalAmount
		s.ProfitByType[o.Type] += o.NetIncome

		s.RevenueByChannel[o.Channel] += o.FinalAmount
		s.ProfitByChannel[o.Channel] += o.NetIncome

		for _, item := range o.Items {
			// Product items carry no size and stay out of the size dimension.
			if item.Size == "" {
				continue
			}

			if _, seen := s.RevenueBySize[item.Size]; !seen {
				s.sizeOrder = append(s.sizeOrder, item.Size)
			}

			s.RevenueBySize[item.Size] += item.Revenue()
			s.ProfitBySize[item.Size] += item.Profit()
		}
	}

	if s.OrderCount > 0 {
		s.AvgCheck = float64(s.TotalRevenue) / float64(s.OrderCount)
	}

	return s
}

// SizeRank is one row of a top-N size ranking.
type SizeRank struct {
	Size   string `json:"size"`
	Amount int64  `json:"amount"`
}

// TopSizesByRevenue returns up to n sizes ordered by revenue, descending.
// Ties keep the order in which the sizes first appeared in the input.
func (s *Summary) TopSizesByRevenue(n int) []SizeRank {
	return s.topSizes(s.RevenueBySize, n)
}

// TopSizesByProfit returns up to n sizes ordered by profit, descending.
func (s *Summary) TopSizesByProfit(n int) []SizeRank {
	return s.topSizes(s.ProfitBySize, n)
}

func (s *Summary) topSizes(values map[string]int64, n int) []SizeRank {
	ranked := make([]SizeRank, 0, len(s.sizeOrder))
	for _, size := range s.sizeOrder {
		ranked = append(ranked, SizeRank{Size: size, Amount: values[size]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// Margin is the profit share of revenue as a rounded whole percentage.
// Zero when there is no revenue.
func Margin(revenue, profit int64) int {
	if revenue <= 0 {
		return 0
	}

	return int(math.Round(float64(profit) / float64(revenue) * 100))
}

// DistinctMonths returns the month labels present across the orders,
// deduplicated and in descending chronological order, for filter
// population.
func DistinctMonths(orders []*order.Order) []string {
	seen := make(map[string]struct{})

	var months []string

	for _, o := range orders {
		if o.Month == "" {
			continue
		}

		if _, ok := seen[o.Month]; ok {
			continue
		}

		seen[o.Month] = struct{}{}

		months = append(months, o.Month)
	}

	// YYYY-MM labels sort chronologically as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Daily carries the figures for a single calendar day.
type Daily struct {
	Date       string `json:"date"`
	Revenue    int64  `json:"revenue"`
	Profit     int64  `json:"profit"`
	OrderCount int    `json:"order_count"`
}

// DailyStats sums revenue and profit for orders placed on the given day.
func DailyStats(orders []*order.Order, day time.Time) Daily {
	stats := Daily{Date: day.Format(time.DateOnly)}

	for _, o := range orders {
		if o.OrderDate.Format(time.DateOnly) != stats.Date {
			continue
		}

		stats.Revenue += o.FinalAmount
		stats.Profit += o.NetIncome
		stats.OrderCount++
	}

	return stats
}
