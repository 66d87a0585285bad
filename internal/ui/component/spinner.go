package component

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"turnos-web/internal/domain/entity"
	"turnos-web/internal/ui/progress"
	"turnos-web/internal/ui/theme"
)

const (
	DefaultDarkSpinnerMessage    = "Cargando dashboard..."
	DefaultUnifiedSpinnerMessage = "Cargando..."

	// DotsInterval is the ellipsis animation period
	DotsInterval = 500 * time.Millisecond
)

// DotFrames are the ellipsis states, in order
var DotFrames = [...]string{"", ".", "..", "..."}

type DarkSpinnerOptions struct {
	Message      string
	ShowProgress bool
	Mode         entity.ThemeMode

	// Source feeds the progress bar when ShowProgress is set.
	// Defaults to a progress.JitterSource.
	Source progress.Source

	// DotsInterval overrides the ellipsis period, mostly for tests
	DotsInterval time.Duration
}

// DarkSpinner is the theme-aware loading indicator. The theme mode is passed
// in by the caller instead of being observed from the page.
type DarkSpinner struct {
	mu       sync.Mutex
	opts     DarkSpinnerOptions
	frame    int
	progress int
}

func NewDarkSpinner(opts DarkSpinnerOptions) *DarkSpinner {
	if opts.Message == "" {
		opts.Message = DefaultDarkSpinnerMessage
	}
	if opts.Mode == "" {
		opts.Mode = entity.DefaultThemeMode
	}
	if opts.ShowProgress && opts.Source == nil {
		opts.Source = progress.NewJitterSource()
	}
	if opts.DotsInterval <= 0 {
		opts.DotsInterval = DotsInterval
	}
	return &DarkSpinner{opts: opts}
}

func (s *DarkSpinner) Dots() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DotFrames[s.frame]
}

// AdvanceDots moves the ellipsis to its next frame, wrapping after "..."
func (s *DarkSpinner) AdvanceDots() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = (s.frame + 1) % len(DotFrames)
}

// SetProgress records a progress reading. Lower readings than the current one
// are ignored so the bar never moves backwards.
func (s *DarkSpinner) SetProgress(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v > s.progress {
		s.progress = v
	}
}

// Progress is the rendered percentage, clamped to 0..100
func (s *DarkSpinner) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.Clamp(s.progress)
}

func (s *DarkSpinner) SetMode(mode entity.ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Mode = mode
}

// Run animates the dots and follows the progress source until ctx is done.
// Every timer it starts is released before it returns.
func (s *DarkSpinner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.DotsInterval)
	defer ticker.Stop()

	var updates <-chan int
	if s.opts.ShowProgress {
		updates = s.opts.Source.Updates(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.AdvanceDots()
		case v, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			s.SetProgress(v)
		}
	}
}

type darkSpinnerView struct {
	Mode           entity.ThemeMode
	Message        string
	Dots           string
	ShowProgress   bool
	Progress       int
	ContainerStyle template.CSS
	RingStyle      template.CSS
	TextStyle      template.CSS
	TrackStyle     template.CSS
	BarStyle       template.CSS
}

func (s *DarkSpinner) Render(w io.Writer) error {
	s.mu.Lock()
	opts := s.opts
	dots := DotFrames[s.frame]
	pct := progress.Clamp(s.progress)
	s.mu.Unlock()

	tokens := theme.Default()
	palette := theme.PaletteFor(opts.Mode)

	view := darkSpinnerView{
		Mode:         opts.Mode,
		Message:      opts.Message,
		Dots:         dots,
		ShowProgress: opts.ShowProgress,
		Progress:     pct,
		ContainerStyle: style(
			"background: "+palette.Background,
			"min-height: 100vh",
			"display: flex",
			"flex-direction: column",
			"align-items: center",
			"justify-content: center",
			"gap: "+tokens.Spacing.MD,
		),
		RingStyle: style(
			"border: 4px solid "+palette.SpinnerBase,
			"border-top-color: "+palette.Spinner,
			"border-radius: "+tokens.Radii.Full,
			"width: 48px",
			"height: 48px",
		),
		TextStyle: style(
			"color: "+palette.Text,
			"font-family: "+tokens.Typography.FontFamily,
			"font-size: "+tokens.Typography.Sizes.LG,
		),
		TrackStyle: style(
			"background: "+palette.SpinnerBase,
			"border-radius: "+tokens.Radii.Full,
			"width: 240px",
			"height: 8px",
		),
		BarStyle: style(
			"background: "+tokens.Gradients.Accent,
			"border-radius: "+tokens.Radii.Full,
			fmt.Sprintf("width: %d%%", pct),
			"height: 100%",
		),
	}

	return render(w, "dark_spinner", view)
}

// UnifiedSpinnerOptions configures the plain spinner. Empty fields take the
// design token defaults; color fields that are not hex/rgb/hsl colors are
// replaced by their default as well.
type UnifiedSpinnerOptions struct {
	Message          string
	FullScreen       bool
	Background       string
	TextColor        string
	SpinnerColor     string
	SpinnerBaseColor string
}

func (o UnifiedSpinnerOptions) withDefaults() UnifiedSpinnerOptions {
	colors := theme.Default().Colors
	if o.Message == "" {
		o.Message = DefaultUnifiedSpinnerMessage
	}
	o.Background = cssColor(o.Background, colors.Surface)
	o.TextColor = cssColor(o.TextColor, colors.Text)
	o.SpinnerColor = cssColor(o.SpinnerColor, colors.Primary)
	o.SpinnerBaseColor = cssColor(o.SpinnerBaseColor, colors.Border)
	return o
}

type unifiedSpinnerView struct {
	Message        string
	FullScreen     bool
	ContainerStyle template.CSS
	RingStyle      template.CSS
	TextStyle      template.CSS
}

// RenderUnifiedSpinner writes the plain spinner. It has no timers; the ring
// rotation is a CSS animation.
func RenderUnifiedSpinner(w io.Writer, opts UnifiedSpinnerOptions) error {
	opts = opts.withDefaults()
	tokens := theme.Default()

	container := []string{
		"background: " + opts.Background,
		"display: flex",
		"flex-direction: column",
		"align-items: center",
		"justify-content: center",
		"gap: " + tokens.Spacing.SM,
	}
	if opts.FullScreen {
		container = append(container, "position: fixed", "inset: 0", "z-index: 9999")
	} else {
		container = append(container, "padding: "+tokens.Spacing.XL)
	}

	view := unifiedSpinnerView{
		Message:        opts.Message,
		FullScreen:     opts.FullScreen,
		ContainerStyle: style(container...),
		RingStyle: style(
			"border: 4px solid "+opts.SpinnerBaseColor,
			"border-top-color: "+opts.SpinnerColor,
			"border-radius: "+tokens.Radii.Full,
			"width: 40px",
			"height: 40px",
		),
		TextStyle: style(
			"color: "+opts.TextColor,
			"font-family: "+tokens.Typography.FontFamily,
			"font-size: "+tokens.Typography.Sizes.Base,
		),
	}

	return render(w, "unified_spinner", view)
}
