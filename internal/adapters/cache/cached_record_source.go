package cache

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/medloop/doctor-directory/internal/domain/providers"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
)

const rawRecordsKey = "doctor-directory:records:raw"

// CachedRecordSource wraps a feed client with a cache of the raw payload so
// a server restart within the TTL does not re-hit the upstream. Cache
// failures fall through to the network; only fetch payloads are cached,
// never filter state.
type CachedRecordSource struct {
	client     doctorapi.Client
	cache      providers.CacheProvider
	ttlSeconds int
}

// NewCachedRecordSource creates a caching wrapper around the given client.
func NewCachedRecordSource(client doctorapi.Client, cache providers.CacheProvider, ttlSeconds int) *CachedRecordSource {
	return &CachedRecordSource{
		client:     client,
		cache:      cache,
		ttlSeconds: ttlSeconds,
	}
}

// FetchRecords returns the cached raw payload when available, otherwise
// fetches from the upstream and caches the result.
func (s *CachedRecordSource) FetchRecords(ctx context.Context) ([]doctorapi.RawDoctor, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, rawRecordsKey); err == nil {
			var records []doctorapi.RawDoctor
			decodeErr := json.Unmarshal(data, &records)
			if decodeErr == nil {
				return records, nil
			}
			log.Warn().Err(decodeErr).Msg("cached record payload is corrupt, refetching")
		}
	}

	records, err := s.client.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(records); err == nil {
			if err := s.cache.Set(ctx, rawRecordsKey, data, s.ttlSeconds); err != nil {
				log.Warn().Err(err).Msg("failed to cache record payload")
			}
		}
	}
	return records, nil
}
