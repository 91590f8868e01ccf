package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kuvot/artorders/internal/catalog"
	catalogHandler "github.com/kuvot/artorders/internal/http/catalog"
)

func newTestRouter(t *testing.T) (http.Handler, *catalog.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)

	router := chi.NewRouter()
	router.Route("/prices", catalogHandler.NewHandler(catalog.NewService(repo)).Routes)

	return router, repo
}

func TestHandler_Create_NegativeAmount(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/prices/",
		strings.NewReader(`{"size":"30х40","sell_price":-65000}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Update_NegativeAmount(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut,
		"/prices/0b7aab4f-fb62-4e06-8233-9bb25c1c2b3f",
		strings.NewReader(`{"size":"30х40","cost_price":-1}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Update_NotFound(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrNotFound)

	req := httptest.NewRequest(http.MethodPut,
		"/prices/0b7aab4f-fb62-4e06-8233-9bb25c1c2b3f",
		strings.NewReader(`{"size":"30х40","sell_price":65000}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
