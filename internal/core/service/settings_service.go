package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// SettingsService backs the store-settings page. Unlike the list pages
// it caches a single document; saving upserts the pinned record and
// invalidates the entry.
type SettingsService struct {
	client ports.Requester
	cache  ports.CollectionCache
	log    zerolog.Logger
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(client ports.Requester, cache ports.CollectionCache, log zerolog.Logger) *SettingsService {
	return &SettingsService{client: client, cache: cache, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.StoreSettings, error) {
	if payload, ok, err := s.cache.Get(ctx, keySettings); err == nil && ok {
		settings, derr := decodeSettings(payload)
		if derr == nil {
			return settings, nil
		}
		_ = s.cache.Invalidate(ctx, keySettings)
	}

	payload, err := s.client.QueryFetch(ctx, "/store-settings", ports.On401Fail)
	if err != nil {
		return nil, err
	}
	settings, err := decodeSettings(payload)
	if err != nil {
		return nil, fmt.Errorf("decode store settings: %w", err)
	}
	if cerr := s.cache.Set(ctx, keySettings, payload); cerr != nil {
		s.log.Warn().Err(cerr).Msg("settings cache write failed")
	}
	return settings, nil
}

func (s *SettingsService) Save(ctx context.Context, input ports.SettingsInput) (*domain.StoreSettings, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resp, err := s.client.Request(ctx, http.MethodPost, "/store-settings", input)
	if err != nil {
		return nil, err
	}
	drain(resp)

	if err := s.cache.Invalidate(ctx, keySettings); err != nil {
		s.log.Warn().Err(err).Msg("settings cache invalidation failed")
	}
	return s.Get(ctx)
}

// decodeSettings accepts a bare document or a {success, data} envelope.
func decodeSettings(payload []byte) (*domain.StoreSettings, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &domain.StoreSettings{}, nil
	}
	var env struct {
		Data *domain.StoreSettings `json:"data"`
		domain.StoreSettings
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		return env.Data, nil
	}
	out := env.StoreSettings
	return &out, nil
}
