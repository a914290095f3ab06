package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/pkg/config"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inMemoryServiceService behaves like the real service over an empty store.
type inMemoryServiceService struct {
	services []*model.Service
}

func (m *inMemoryServiceService) Create(ctx context.Context, svc *model.Service) (string, error) {
	svc.ID = model.NewID().String()
	m.services = append(m.services, svc)
	return svc.ID, nil
}

func (m *inMemoryServiceService) List(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	out := []*model.Service{}
	for _, s := range m.services {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func newTestRouter(svc *inMemoryServiceService) *httprouter.Router {
	cfg := &config.Config{
		Log:              logger.Discard(),
		DefaultListLimit: config.DefaultListLimit,
		MaxListLimit:     config.DefaultMaxListLimit,
	}
	router := httprouter.New()
	NewServiceHandler(svc, cfg).RegisterRoutes(router)
	return router
}

func TestCreateThenListByCategory(t *testing.T) {
	router := newTestRouter(&inMemoryServiceService{})

	body := `{"name":"DJ & Sound","price":200.0,"duration_minutes":240,"category":"Entertainment"}`
	req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created model.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Regexp(t, `^[0-9a-f]{24}$`, created.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services?category=Entertainment", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var services []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	require.Len(t, services, 1)
	assert.Equal(t, created.ID, services[0]["id"])
	assert.Equal(t, "DJ & Sound", services[0]["name"])
	assert.Equal(t, 200.0, services[0]["price"])
	assert.Equal(t, 240.0, services[0]["duration_minutes"])
}

func TestList_EmptyIsArray(t *testing.T) {
	router := newTestRouter(&inMemoryServiceService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services?q=nothing", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreate_MalformedBody(t *testing.T) {
	svc := &inMemoryServiceService{}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(`[1,2]`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.services)
}

func TestList_InvalidLimit(t *testing.T) {
	router := newTestRouter(&inMemoryServiceService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services?limit=1.5", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
