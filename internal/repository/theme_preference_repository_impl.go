package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"turnos-web/internal/domain/entity"
	domainRepo "turnos-web/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisThemePreferenceKeyPrefix namespaces preference keys in Redis
const RedisThemePreferenceKeyPrefix = "theme:preference:"

func themePreferenceKey(clientID string) string {
	return RedisThemePreferenceKeyPrefix + clientID
}

type redisThemePreferenceRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisThemePreferenceRepository(client *redis.Client, ttl time.Duration) domainRepo.ThemePreferenceRepository {
	return &redisThemePreferenceRepository{client: client, ttl: ttl}
}

func (r *redisThemePreferenceRepository) FindByClientID(ctx context.Context, clientID string) (*entity.ThemePreference, error) {
	raw, err := r.client.Get(ctx, themePreferenceKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get theme preference %s: %w", clientID, err)
	}

	var preference entity.ThemePreference
	if err := json.Unmarshal(raw, &preference); err != nil {
		return nil, fmt.Errorf("decode theme preference %s: %w", clientID, err)
	}
	return &preference, nil
}

func (r *redisThemePreferenceRepository) Save(ctx context.Context, preference *entity.ThemePreference) error {
	raw, err := json.Marshal(preference)
	if err != nil {
		return fmt.Errorf("encode theme preference %s: %w", preference.ClientID, err)
	}

	if err := r.client.Set(ctx, themePreferenceKey(preference.ClientID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set theme preference %s: %w", preference.ClientID, err)
	}
	return nil
}

type memoryThemePreferenceRepository struct {
	mu          sync.RWMutex
	preferences map[string]entity.ThemePreference
}

// NewMemoryThemePreferenceRepository keeps preferences in process memory.
// Used when no Redis server is configured; preferences are lost on restart.
func NewMemoryThemePreferenceRepository() domainRepo.ThemePreferenceRepository {
	return &memoryThemePreferenceRepository{preferences: make(map[string]entity.ThemePreference)}
}

func (r *memoryThemePreferenceRepository) FindByClientID(ctx context.Context, clientID string) (*entity.ThemePreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preference, ok := r.preferences[clientID]
	if !ok {
		return nil, nil
	}
	return &preference, nil
}

func (r *memoryThemePreferenceRepository) Save(ctx context.Context, preference *entity.ThemePreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.preferences[preference.ClientID] = *preference
	return nil
}
