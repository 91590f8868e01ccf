package analytics_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuvot/artorders/internal/analytics"
	analyticsHandler "github.com/kuvot/artorders/internal/http/analytics"
	"github.com/kuvot/artorders/internal/order"
)

// stubOrders is a hand-rolled OrderSource that remembers the last filter.
type stubOrders struct {
	orders     []*order.Order
	lastFilter order.ListFilter
}

func (s *stubOrders) List(_ context.Context, filter order.ListFilter) ([]*order.Order, error) {
	s.lastFilter = filter
	return s.orders, nil
}

func newTestRouter(stub *stubOrders) http.Handler {
	router := chi.NewRouter()
	router.Route("/analytics", analyticsHandler.NewHandler(analytics.NewService(stub)).Routes)

	return router
}

func orderWithSizes(n int) *order.Order {
	o := &order.Order{
		OrderDate:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Month:        "2024-05",
		PaintingName: "Sample",
		Status:       order.StatusPaid,
	}

	for i := 0; i < n; i++ {
		o.Items = append(o.Items, order.LineItem{
			Size:      fmt.Sprintf("%dх%d", 20+i, 30+i),
			Quantity:  1,
			UnitPrice: int64(1000 - i),
			UnitCost:  100,
		})
	}

	val, err := order.Valuate(o)
	if err != nil {
		panic(err)
	}

	val.Apply(o)

	return o
}

func TestHandler_Summary_DefaultTopTen(t *testing.T) {
	router := newTestRouter(&stubOrders{orders: []*order.Order{orderWithSizes(13)}})

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TopByRevenue []analytics.SizeRank `json:"top_sizes_by_revenue"`
		TopByProfit  []analytics.SizeRank `json:"top_sizes_by_profit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.TopByRevenue, 10)
	assert.Len(t, resp.TopByProfit, 10)
}

func TestHandler_Summary_TopOverride(t *testing.T) {
	router := newTestRouter(&stubOrders{orders: []*order.Order{orderWithSizes(13)}})

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary?top=3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TopByRevenue []analytics.SizeRank `json:"top_sizes_by_revenue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.TopByRevenue, 3)
}

func TestHandler_Summary_DateRange(t *testing.T) {
	stub := &stubOrders{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/analytics/summary?start_date=2024-05-01&end_date=2024-05-31", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastFilter.StartDate)
	require.NotNil(t, stub.lastFilter.EndDate)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *stub.lastFilter.StartDate)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), *stub.lastFilter.EndDate)
}

func TestHandler_Summary_BadDateRange(t *testing.T) {
	router := newTestRouter(&stubOrders{})

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary?start_date=05-01-2024", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
