package usecase

import (
	"context"
	"errors"
	"time"

	"turnos-web/internal/converter"
	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/domain/entity"
	"turnos-web/internal/domain/repository"
	"turnos-web/internal/ui/theme"

	"github.com/sirupsen/logrus"
)

var ErrClientIDRequired = errors.New("client id is required")

type ThemePreferenceUsecase interface {
	GetTokens(ctx context.Context) theme.Tokens
	GetPreference(ctx context.Context, clientID string) (*dto.ThemePreferenceResponse, error)
	UpdatePreference(ctx context.Context, clientID string, req *dto.UpdateThemePreferenceRequest) (*dto.ThemePreferenceResponse, error)
	ResolveMode(ctx context.Context, clientID string) entity.ThemeMode
}

type themePreferenceUsecase struct {
	log            *logrus.Logger
	preferenceRepo repository.ThemePreferenceRepository
	now            func() time.Time
}

func NewThemePreferenceUsecase(log *logrus.Logger, preferenceRepo repository.ThemePreferenceRepository) ThemePreferenceUsecase {
	return &themePreferenceUsecase{
		log:            log,
		preferenceRepo: preferenceRepo,
		now:            time.Now,
	}
}

func (u *themePreferenceUsecase) GetTokens(ctx context.Context) theme.Tokens {
	return theme.Default()
}

func (u *themePreferenceUsecase) GetPreference(ctx context.Context, clientID string) (*dto.ThemePreferenceResponse, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	preference, err := u.preferenceRepo.FindByClientID(ctx, clientID)
	if err != nil {
		u.log.Warnf("Failed to find theme preference for client %s: %+v", clientID, err)
		return nil, err
	}

	return converter.ThemePreferenceToResponse(preference), nil
}

func (u *themePreferenceUsecase) UpdatePreference(ctx context.Context, clientID string, req *dto.UpdateThemePreferenceRequest) (*dto.ThemePreferenceResponse, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	mode, err := entity.ParseThemeMode(req.Mode)
	if err != nil {
		return nil, err
	}

	preference := &entity.ThemePreference{
		ClientID:  clientID,
		Mode:      mode,
		UpdatedAt: u.now().UTC(),
	}

	if err := u.preferenceRepo.Save(ctx, preference); err != nil {
		u.log.Warnf("Failed to save theme preference for client %s: %+v", clientID, err)
		return nil, err
	}

	u.log.Infof("Theme preference updated: client=%s, mode=%s", clientID, mode)
	return converter.ThemePreferenceToResponse(preference), nil
}

// ResolveMode is the mode components should render with. Lookup failures
// fall back to the default mode; a loading indicator must still render.
func (u *themePreferenceUsecase) ResolveMode(ctx context.Context, clientID string) entity.ThemeMode {
	if clientID == "" {
		return entity.DefaultThemeMode
	}

	preference, err := u.preferenceRepo.FindByClientID(ctx, clientID)
	if err != nil {
		u.log.Warnf("Failed to resolve theme mode for client %s (using default): %+v", clientID, err)
		return entity.DefaultThemeMode
	}
	if preference == nil {
		return entity.DefaultThemeMode
	}
	return preference.Mode
}
