package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = string(value.([]byte))
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type item struct {
	Name string `json:"name"`
}

func TestGetOrSetJSON_LoadsOnceThenHits(t *testing.T) {
	store := newMemStore()
	c := New(store)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) ([]item, error) {
		calls++
		return []item{{Name: "a"}, {Name: "b"}}, nil
	}

	got, err := GetOrSetJSON(ctx, c, "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "a"}, {Name: "b"}}, got)

	got, err = GetOrSetJSON(ctx, c, "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "a"}, {Name: "b"}}, got)

	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, store.ttls["k"])
}

func TestGetOrSetJSON_LoaderError(t *testing.T) {
	store := newMemStore()
	c := New(store)
	boom := errors.New("boom")

	_, err := GetOrSetJSON(context.Background(), c, "k", time.Minute, func(context.Context) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.data)
}

func TestKeyAdvertisements(t *testing.T) {
	assert.Equal(t, "eventsapi:v1:ads:shoe:fashion", KeyAdvertisements("shoe", "fashion"))
	assert.Equal(t, "eventsapi:v1:ads:a%3Ab:", KeyAdvertisements("a:b", ""))
}

type downStore struct{ *memStore }

func (d *downStore) Get(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("", errors.New("connection refused"))
}

func TestGetOrSetJSON_StoreDownFallsBackToLoader(t *testing.T) {
	store := &downStore{memStore: newMemStore()}
	c := New(store)

	got, err := GetOrSetJSON(context.Background(), c, "k", time.Minute, func(context.Context) ([]item, error) {
		return []item{{Name: "fresh"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "fresh"}}, got)
}
