package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"eventhub/pkg/config"
	apperrors "eventhub/pkg/errors"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockServiceRepository struct {
	services  []*model.Service
	createErr error
	findErr   error
}

func (m *mockServiceRepository) Create(ctx context.Context, svc *model.Service) (model.ID, error) {
	if m.createErr != nil {
		return model.ID{}, m.createErr
	}
	id := model.NewID()
	svc.ID = id.String()
	stored := *svc
	m.services = append(m.services, &stored)
	return id, nil
}

func (m *mockServiceRepository) Find(ctx context.Context, filter model.ServiceFilter) ([]*model.Service, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []*model.Service
	for _, s := range m.services {
		if filter.Query != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func newTestService(repo *mockServiceRepository) ServiceService {
	log := logger.Discard()
	cfg := &config.Config{
		Log:              log,
		DefaultListLimit: config.DefaultListLimit,
		MaxListLimit:     config.DefaultMaxListLimit,
	}
	return NewServiceService(repo, validator.New(log), nil, cfg)
}

func TestCreate_DJAndSoundThenListByCategory(t *testing.T) {
	repo := &mockServiceRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, &model.Service{
		Name:            "DJ & Sound",
		Price:           200.0,
		DurationMinutes: 240,
		Category:        "Entertainment",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{24}$`, id)

	_, err = svc.Create(ctx, &model.Service{Name: "Catering", Category: "Food"})
	require.NoError(t, err)

	services, err := svc.List(ctx, model.ServiceFilter{Category: "Entertainment"})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, id, services[0].ID)
	assert.Equal(t, "DJ & Sound", services[0].Name)
	assert.Equal(t, 240, services[0].DurationMinutes)
}

func TestCreate_ZeroDurationAllowed(t *testing.T) {
	repo := &mockServiceRepository{}
	_, err := newTestService(repo).Create(context.Background(), &model.Service{Name: "Catering"})

	require.NoError(t, err)
	require.Len(t, repo.services, 1)
	assert.Zero(t, repo.services[0].DurationMinutes)
}

func TestCreate_MissingNameSkipsInsert(t *testing.T) {
	repo := &mockServiceRepository{}
	_, err := newTestService(repo).Create(context.Background(), &model.Service{Category: "Food"})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperrors.AsAppError(err).StatusCode())
	assert.Empty(t, repo.services)
}

func TestList_QueryMatchesNameCaseInsensitively(t *testing.T) {
	repo := &mockServiceRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	_, _ = svc.Create(ctx, &model.Service{Name: "DJ & Sound"})
	_, _ = svc.Create(ctx, &model.Service{Name: "Photo Booth"})

	services, err := svc.List(ctx, model.ServiceFilter{Query: "dj"})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "DJ & Sound", services[0].Name)
}

func TestList_EmptyAndUnavailable(t *testing.T) {
	services, err := newTestService(&mockServiceRepository{}).List(context.Background(), model.ServiceFilter{})
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)

	_, err = newTestService(&mockServiceRepository{findErr: storage.ErrUnavailable}).List(context.Background(), model.ServiceFilter{})
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.AsAppError(err).StatusCode())
}

func TestCreate_UnavailableStore(t *testing.T) {
	_, err := newTestService(&mockServiceRepository{createErr: storage.ErrUnavailable}).
		Create(context.Background(), &model.Service{Name: "DJ & Sound"})

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.AsAppError(err).StatusCode())
}
