package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/pkg/config"
	apperrors "eventhub/pkg/errors"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock service for testing
type mockEventService struct {
	createFunc func(ctx context.Context, event *model.Event) (string, error)
	listFunc   func(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
}

func (m *mockEventService) Create(ctx context.Context, event *model.Event) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, event)
	}
	return "65f1a2b3c4d5e6f708091a2b", nil
}

func (m *mockEventService) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []*model.Event{}, nil
}

func newTestRouter(svc *mockEventService) *httprouter.Router {
	cfg := &config.Config{
		Log:              logger.Discard(),
		DefaultListLimit: config.DefaultListLimit,
		MaxListLimit:     config.DefaultMaxListLimit,
	}
	router := httprouter.New()
	NewEventHandler(svc, cfg).RegisterRoutes(router)
	return router
}

func TestCreate(t *testing.T) {
	var received *model.Event
	router := newTestRouter(&mockEventService{
		createFunc: func(ctx context.Context, event *model.Event) (string, error) {
			received = event
			return "65f1a2b3c4d5e6f708091a2b", nil
		},
	})

	body := `{"title":"Summer Music Fest","date":"2026-07-01","price":25,"featured":true,"tags":["music"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"65f1a2b3c4d5e6f708091a2b"}`, w.Body.String())
	require.NotNil(t, received)
	assert.Equal(t, "Summer Music Fest", received.Title)
	assert.True(t, received.Featured)
	assert.Equal(t, []string{"music"}, received.Tags)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failure",
			body:       `{"description":"no title"}`,
			serviceErr: apperrors.Validation("Validation failed", map[string]any{"title": "title is required"}),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "storage unavailable",
			body:       `{"title":"x"}`,
			serviceErr: apperrors.Unavailable("Database", nil),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			router := newTestRouter(&mockEventService{
				createFunc: func(ctx context.Context, event *model.Event) (string, error) {
					called = true
					return "", tt.serviceErr
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.serviceErr == nil {
				assert.False(t, called, "service must not be called for a malformed body")
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestList_QueryParameters(t *testing.T) {
	var received model.EventFilter
	router := newTestRouter(&mockEventService{
		listFunc: func(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
			received = filter
			return []*model.Event{{ID: "65f1a2b3c4d5e6f708091a2b", Title: "Tech Talks Night", Tags: []string{}}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/events?q=tech&featured=false&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tech", received.Query)
	require.NotNil(t, received.Featured)
	assert.False(t, *received.Featured)
	assert.Equal(t, 5, received.Limit)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "65f1a2b3c4d5e6f708091a2b", events[0]["id"])
	assert.NotContains(t, events[0], "_id")
}

func TestList_Defaults(t *testing.T) {
	var received model.EventFilter
	router := newTestRouter(&mockEventService{
		listFunc: func(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
			received = filter
			return []*model.Event{}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Nil(t, received.Featured)
	assert.Empty(t, received.Query)
	assert.Equal(t, config.DefaultListLimit, received.Limit)
}

func TestList_InvalidParameters(t *testing.T) {
	called := false
	router := newTestRouter(&mockEventService{
		listFunc: func(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
			called = true
			return nil, nil
		},
	})

	for _, query := range []string{"?limit=abc", "?featured=maybe"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	assert.False(t, called)
}
