package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"eventhub/pkg/config"
	apperrors "eventhub/pkg/errors"
	"eventhub/pkg/logger"
	"eventhub/pkg/model"
	"eventhub/pkg/storage"
	"eventhub/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	docs      map[string][]storage.Document
	failAfter int
	inserts   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string][]storage.Document{}, failAfter: -1}
}

func (m *memoryStore) Count(ctx context.Context, collection string) (int64, error) {
	return int64(len(m.docs[collection])), nil
}

func (m *memoryStore) Insert(ctx context.Context, collection string, doc storage.Document) (model.ID, error) {
	if m.failAfter >= 0 && m.inserts >= m.failAfter {
		return model.ID{}, errors.New("write failed")
	}
	m.inserts++
	doc.Stamp(time.Now())
	m.docs[collection] = append(m.docs[collection], doc)
	return model.NewID(), nil
}

func newTestService(store Store) SeedService {
	return NewSeedService(store, nil, &config.Config{Log: logger.Discard()})
}

func TestSeed_IsIdempotent(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleEvents()), first.Events)
	assert.Equal(t, len(sampleServices()), first.Services)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Events: 0, Services: 0}, second)
	assert.Len(t, store.docs[model.EventCollection], first.Events)
}

func TestSeed_SkipsPopulatedCollectionOnly(t *testing.T) {
	store := newMemoryStore()
	store.docs[model.EventCollection] = []storage.Document{&model.Event{Title: "User event"}}

	result, err := newTestService(store).Seed(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.Events)
	assert.Equal(t, len(sampleServices()), result.Services)
}

func TestSeed_PartialSeedIsNotToppedUp(t *testing.T) {
	store := newMemoryStore()
	store.failAfter = 1
	svc := newTestService(store)

	result, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, result.Events)

	store.failAfter = -1
	result, err = svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Events)
	assert.Len(t, store.docs[model.EventCollection], 1)
	assert.Equal(t, len(sampleServices()), result.Services)
}

func TestSeed_UnavailableStorage(t *testing.T) {
	_, err := newTestService(storage.Disabled("events_services", time.Second)).Seed(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.AsAppError(err).StatusCode())
}

func TestSamples_PassValidation(t *testing.T) {
	v := validator.New(logger.Discard())

	featured := 0
	for _, e := range sampleEvents() {
		assert.NoError(t, v.ValidateEvent(e), e.Title)
		if e.Featured {
			featured++
		}
	}
	assert.Equal(t, 1, featured)

	untimed := 0
	for _, s := range sampleServices() {
		assert.NoError(t, v.ValidateService(s), s.Name)
		if s.DurationMinutes == 0 {
			untimed++
		}
	}
	assert.Equal(t, 1, untimed)
}
