package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medloop/doctor-directory/internal/adapters/cache"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
)

type memoryCache struct {
	store  map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	data, ok := c.store[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.store[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

type countingClient struct {
	records []doctorapi.RawDoctor
	err     error
	calls   int
}

func (c *countingClient) FetchRecords(ctx context.Context) ([]doctorapi.RawDoctor, error) {
	c.calls++
	return c.records, c.err
}

func TestCachedRecordSource_SecondFetchServedFromCache(t *testing.T) {
	client := &countingClient{records: []doctorapi.RawDoctor{{ID: "1", Name: "Dr. A"}}}
	store := newMemoryCache()
	source := cache.NewCachedRecordSource(client, store, 600)

	first, err := source.FetchRecords(context.Background())
	require.NoError(t, err)
	second, err := source.FetchRecords(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.Equal(t, 1, client.calls)
}

func TestCachedRecordSource_CacheFailureFallsThroughToNetwork(t *testing.T) {
	client := &countingClient{records: []doctorapi.RawDoctor{{ID: "1"}}}
	store := newMemoryCache()
	store.getErr = errors.New("redis down")
	source := cache.NewCachedRecordSource(client, store, 600)

	records, err := source.FetchRecords(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, client.calls)
}

func TestCachedRecordSource_CorruptPayloadRefetches(t *testing.T) {
	client := &countingClient{records: []doctorapi.RawDoctor{{ID: "1"}}}
	store := newMemoryCache()
	store.store["doctor-directory:records:raw"] = []byte("not json")
	source := cache.NewCachedRecordSource(client, store, 600)

	records, err := source.FetchRecords(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, client.calls)
}

func TestCachedRecordSource_SetFailureIsNotFatal(t *testing.T) {
	client := &countingClient{records: []doctorapi.RawDoctor{{ID: "1"}}}
	store := newMemoryCache()
	store.setErr = errors.New("redis down")
	source := cache.NewCachedRecordSource(client, store, 600)

	records, err := source.FetchRecords(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, store.sets)
}

func TestCachedRecordSource_UpstreamErrorNotCached(t *testing.T) {
	client := &countingClient{err: errors.New("connection refused")}
	store := newMemoryCache()
	source := cache.NewCachedRecordSource(client, store, 600)

	_, err := source.FetchRecords(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, store.sets)
	assert.Empty(t, store.store)
}

func TestCachedRecordSource_NilCacheGoesStraightToNetwork(t *testing.T) {
	client := &countingClient{records: []doctorapi.RawDoctor{{ID: "1"}}}
	source := cache.NewCachedRecordSource(client, nil, 600)

	records, err := source.FetchRecords(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 1)
}
