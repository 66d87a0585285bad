package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"turnos-web/internal/domain/entity"
	"turnos-web/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MockThemePreferenceRepository implements ThemePreferenceRepository
var _ repository.ThemePreferenceRepository = (*MockThemePreferenceRepository)(nil)

type MockThemePreferenceRepository struct {
	FindByClientIDFunc func(ctx context.Context, clientID string) (*entity.ThemePreference, error)
	SaveFunc           func(ctx context.Context, preference *entity.ThemePreference) error

	SaveCallCount int32
}

func (m *MockThemePreferenceRepository) FindByClientID(ctx context.Context, clientID string) (*entity.ThemePreference, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return nil, errors.New("FindByClientIDFunc not implemented in mock")
}

func (m *MockThemePreferenceRepository) Save(ctx context.Context, preference *entity.ThemePreference) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, preference)
	}
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
