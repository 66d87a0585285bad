package usecase

import (
	"context"
	"testing"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/domain/entity"
	"turnos-web/internal/ui/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComponentUsecase(mode entity.ThemeMode) ComponentUsecase {
	repo := &MockThemePreferenceRepository{
		FindByClientIDFunc: func(ctx context.Context, clientID string) (*entity.ThemePreference, error) {
			return &entity.ThemePreference{ClientID: clientID, Mode: mode}, nil
		},
	}
	return NewComponentUsecase(quietLogger(), "Clínica", NewThemePreferenceUsecase(quietLogger(), repo), nil)
}

func TestRenderHeaderAppliesRequestedState(t *testing.T) {
	uc := newComponentUsecase(entity.ThemeModeLight)

	body, err := uc.RenderHeader(context.Background(), &dto.RenderHeaderRequest{
		Menu:   "open",
		Scroll: 80,
		Hidden: true,
		Active: "/mis-turnos",
	})
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "site-header--scrolled")
	assert.Contains(t, html, "site-header--hidden")
	assert.Contains(t, html, "site-header__nav--open")
	assert.Contains(t, html, "Mostrar menú")
}

func TestRenderSpinnerDarkUsesStoredPreference(t *testing.T) {
	uc := newComponentUsecase(entity.ThemeModeDark)

	body, err := uc.RenderSpinner(context.Background(), "client-1", &dto.RenderSpinnerRequest{Variant: "dark"})
	require.NoError(t, err)

	assert.Contains(t, string(body), "loading-spinner--dark")
	assert.Contains(t, string(body), theme.Default().Dark.Background)
}

func TestRenderSpinnerDarkExplicitModeWins(t *testing.T) {
	uc := newComponentUsecase(entity.ThemeModeDark)

	body, err := uc.RenderSpinner(context.Background(), "client-1", &dto.RenderSpinnerRequest{
		Variant:      "dark",
		Mode:         "light",
		ShowProgress: true,
		Progress:     150,
	})
	require.NoError(t, err)

	assert.Contains(t, string(body), "loading-spinner--light")
	assert.Contains(t, string(body), `aria-valuenow="100"`)
}

func TestRenderSpinnerUnified(t *testing.T) {
	uc := newComponentUsecase(entity.ThemeModeLight)

	body, err := uc.RenderSpinner(context.Background(), "", &dto.RenderSpinnerRequest{
		Variant:    "unified",
		Message:    "Buscando turnos",
		FullScreen: true,
	})
	require.NoError(t, err)

	assert.Contains(t, string(body), "Buscando turnos")
	assert.Contains(t, string(body), "unified-spinner--fullscreen")
}

func TestRenderSpinnerUnknownVariant(t *testing.T) {
	uc := newComponentUsecase(entity.ThemeModeLight)

	_, err := uc.RenderSpinner(context.Background(), "", &dto.RenderSpinnerRequest{Variant: "fancy"})
	assert.ErrorIs(t, err, ErrUnknownSpinnerVariant)
}
