package repository

import (
	"context"

	"turnos-web/internal/domain/entity"
)

// ThemePreferenceRepository stores one theme choice per browser client.
// FindByClientID returns (nil, nil) when the client never stored one.
type ThemePreferenceRepository interface {
	FindByClientID(ctx context.Context, clientID string) (*entity.ThemePreference, error)
	Save(ctx context.Context, preference *entity.ThemePreference) error
}
