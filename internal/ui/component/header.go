package component

import (
	"html/template"
	"io"
	"sync"
	"time"

	"turnos-web/internal/ui/theme"
)

const (
	// AutoHideDelay is how long the header stays visible after mount
	AutoHideDelay = 10 * time.Second

	// ScrollThreshold is the scroll offset in pixels past which the header
	// switches to its scrolled variant
	ScrollThreshold = 50
)

type MenuState string

const (
	MenuClosed MenuState = "closed"
	MenuOpen   MenuState = "open"
)

type Visibility string

const (
	Visible Visibility = "visible"
	Hidden  Visibility = "hidden"
)

type HeaderVariant string

const (
	VariantNormal   HeaderVariant = "normal"
	VariantScrolled HeaderVariant = "scrolled"
)

type NavItem struct {
	Label string
	Href  string
}

var DefaultNavItems = []NavItem{
	{Label: "Inicio", Href: "/"},
	{Label: "Tomar turno", Href: "/tomar-turnos"},
	{Label: "Mis turnos", Href: "/mis-turnos"},
	{Label: "Mi perfil", Href: "/perfil"},
}

// HeaderState is a snapshot of the header's transient UI state
type HeaderState struct {
	Menu       MenuState
	Visibility Visibility
	Variant    HeaderVariant
	Active     string
}

// Header is the navigation bar. It is safe for concurrent use; overlapping
// updates resolve last-write-wins.
type Header struct {
	mu    sync.Mutex
	brand string
	items []NavItem
	state HeaderState

	autoHide Timer
	// mountID identifies the mount that armed autoHide
	mountID uint64
	mounted bool
}

func NewHeader(brand string, items []NavItem) *Header {
	if len(items) == 0 {
		items = DefaultNavItems
	}
	return &Header{
		brand: brand,
		items: items,
		state: HeaderState{
			Menu:       MenuClosed,
			Visibility: Visible,
			Variant:    VariantNormal,
			Active:     "/",
		},
	}
}

// Mount arms the auto-hide timer. The timer is armed once per mount and is
// not re-armed by later visibility changes. The returned func unmounts the
// header and releases the timer.
func (h *Header) Mount(clock Clock) (unmount func()) {
	if clock == nil {
		clock = SystemClock
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mounted {
		return func() {}
	}
	h.mounted = true
	h.mountID++
	mountID := h.mountID
	h.autoHide = clock.AfterFunc(AutoHideDelay, func() { h.hideFromTimer(mountID) })

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.stopAutoHide()
			h.mounted = false
		})
	}
}

// hideFromTimer ignores callbacks from an earlier mount whose Stop raced
// with the timer firing.
func (h *Header) hideFromTimer(mountID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.autoHide == nil || mountID != h.mountID {
		return
	}
	h.autoHide = nil
	h.state.Visibility = Hidden
}

// stopAutoHide must be called with mu held
func (h *Header) stopAutoHide() {
	if h.autoHide != nil {
		h.autoHide.Stop()
		h.autoHide = nil
	}
}

// ToggleMenu is the hamburger button
func (h *Header) ToggleMenu() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Menu == MenuOpen {
		h.state.Menu = MenuClosed
	} else {
		h.state.Menu = MenuOpen
	}
}

// ClickNavLink marks href active and closes the menu
func (h *Header) ClickNavLink(href string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Active = href
	h.state.Menu = MenuClosed
}

// Scroll records the page scroll offset
func (h *Header) Scroll(y float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if y > ScrollThreshold {
		h.state.Variant = VariantScrolled
	} else {
		h.state.Variant = VariantNormal
	}
}

// ToggleVisibility is the floating show/hide control. A pending auto-hide is
// cancelled: the visitor's choice wins over the timer.
func (h *Header) ToggleVisibility() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopAutoHide()
	if h.state.Visibility == Visible {
		h.state.Visibility = Hidden
	} else {
		h.state.Visibility = Visible
	}
}

func (h *Header) State() HeaderState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

type headerLink struct {
	NavItem
	Active bool
}

type headerView struct {
	Brand       string
	Items       []headerLink
	Menu        MenuState
	Visibility  Visibility
	MenuOpen    bool
	Hidden      bool
	Scrolled    bool
	Style       template.CSS
	ToggleStyle template.CSS
}

func (h *Header) Render(w io.Writer) error {
	state := h.State()
	tokens := theme.Default()

	links := make([]headerLink, len(h.items))
	for i, item := range h.items {
		links[i] = headerLink{NavItem: item, Active: item.Href == state.Active}
	}

	shadow := tokens.Shadows.SM
	if state.Variant == VariantScrolled {
		shadow = tokens.Shadows.LG
	}

	view := headerView{
		Brand:      h.brand,
		Items:      links,
		Menu:       state.Menu,
		Visibility: state.Visibility,
		MenuOpen:   state.Menu == MenuOpen,
		Hidden:     state.Visibility == Hidden,
		Scrolled:   state.Variant == VariantScrolled,
		Style: style(
			"background: "+tokens.Gradients.Header,
			"color: "+tokens.Colors.White,
			"box-shadow: "+shadow,
			"padding: "+tokens.Spacing.MD+" "+tokens.Spacing.LG,
		),
		ToggleStyle: style(
			"background: "+tokens.Colors.Accent,
			"color: "+tokens.Colors.White,
			"border-radius: "+tokens.Radii.Full,
			"box-shadow: "+tokens.Shadows.MD,
		),
	}

	return render(w, "header", view)
}
