package usecase

import (
	"bytes"
	"context"
	"errors"

	"turnos-web/internal/delivery/dto"
	"turnos-web/internal/domain/entity"
	"turnos-web/internal/ui/component"
	"turnos-web/internal/ui/progress"

	"github.com/sirupsen/logrus"
)

var ErrUnknownSpinnerVariant = errors.New("unknown spinner variant")

const (
	SpinnerVariantDark    = "dark"
	SpinnerVariantUnified = "unified"
)

type ComponentUsecase interface {
	RenderHeader(ctx context.Context, req *dto.RenderHeaderRequest) ([]byte, error)
	RenderSpinner(ctx context.Context, clientID string, req *dto.RenderSpinnerRequest) ([]byte, error)
	ProgressSource() progress.Source
}

type componentUsecase struct {
	log                    *logrus.Logger
	brand                  string
	themePreferenceUsecase ThemePreferenceUsecase
	newProgressSource      func() progress.Source
}

func NewComponentUsecase(
	log *logrus.Logger,
	brand string,
	themePreferenceUsecase ThemePreferenceUsecase,
	newProgressSource func() progress.Source,
) ComponentUsecase {
	if newProgressSource == nil {
		newProgressSource = func() progress.Source { return progress.NewJitterSource() }
	}
	return &componentUsecase{
		log:                    log,
		brand:                  brand,
		themePreferenceUsecase: themePreferenceUsecase,
		newProgressSource:      newProgressSource,
	}
}

// RenderHeader renders the header in the state described by req
func (u *componentUsecase) RenderHeader(ctx context.Context, req *dto.RenderHeaderRequest) ([]byte, error) {
	header := component.NewHeader(u.brand, nil)
	if req.Active != "" {
		header.ClickNavLink(req.Active)
	}
	if req.Menu == string(component.MenuOpen) {
		header.ToggleMenu()
	}
	header.Scroll(req.Scroll)
	if req.Hidden {
		header.ToggleVisibility()
	}

	var buf bytes.Buffer
	if err := header.Render(&buf); err != nil {
		u.log.Errorf("Failed to render header: %+v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSpinner renders one frame of a loading indicator. The dark variant
// takes its theme from req.Mode, or from the client's stored preference.
func (u *componentUsecase) RenderSpinner(ctx context.Context, clientID string, req *dto.RenderSpinnerRequest) ([]byte, error) {
	var buf bytes.Buffer

	switch req.Variant {
	case SpinnerVariantDark:
		mode, err := entity.ParseThemeMode(req.Mode)
		if err != nil {
			mode = u.themePreferenceUsecase.ResolveMode(ctx, clientID)
		}

		spinner := component.NewDarkSpinner(component.DarkSpinnerOptions{
			Message:      req.Message,
			ShowProgress: req.ShowProgress,
			Mode:         mode,
			Source:       u.newProgressSource(),
		})
		spinner.SetProgress(req.Progress)

		if err := spinner.Render(&buf); err != nil {
			u.log.Errorf("Failed to render dark spinner: %+v", err)
			return nil, err
		}
	case SpinnerVariantUnified:
		err := component.RenderUnifiedSpinner(&buf, component.UnifiedSpinnerOptions{
			Message:          req.Message,
			FullScreen:       req.FullScreen,
			Background:       req.Background,
			TextColor:        req.TextColor,
			SpinnerColor:     req.SpinnerColor,
			SpinnerBaseColor: req.SpinnerBaseColor,
		})
		if err != nil {
			u.log.Errorf("Failed to render unified spinner: %+v", err)
			return nil, err
		}
	default:
		return nil, ErrUnknownSpinnerVariant
	}

	return buf.Bytes(), nil
}

// ProgressSource returns a fresh source for one progress stream
func (u *componentUsecase) ProgressSource() progress.Source {
	return u.newProgressSource()
}
