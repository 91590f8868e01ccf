package order_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	orderHandler "github.com/kuvot/artorders/internal/http/order"
	"github.com/kuvot/artorders/internal/order"
)

func newTestRouter(t *testing.T, repo *order.MockRepository) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := order.NewService(repo, order.NewMockCatalogSource(ctrl), order.NewMockProductSource(ctrl))

	router := chi.NewRouter()
	router.Route("/orders", orderHandler.NewHandler(svc).Routes)

	return router
}

func TestHandler_UpdateStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := order.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().UpdateStatus(gomock.Any(), id, order.StatusPaid).Return(order.ErrNotFound)

	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id.String()+"/status",
		strings.NewReader(`{"status":"paid"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := order.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().DeleteOrder(gomock.Any(), id).Return(order.ErrNotFound)

	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := order.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().DeleteOrder(gomock.Any(), id).Return(nil)

	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
