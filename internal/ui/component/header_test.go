package component

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func TestHeaderAutoHidesAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	h := NewHeader("Clínica", nil)
	unmount := h.Mount(clock)
	defer unmount()

	clock.Advance(AutoHideDelay - time.Millisecond)
	assert.Equal(t, Visible, h.State().Visibility)

	clock.Advance(time.Millisecond)
	assert.Equal(t, Hidden, h.State().Visibility)
}

func TestHeaderToggleRestoresAfterAutoHide(t *testing.T) {
	clock := &fakeClock{}
	h := NewHeader("Clínica", nil)
	defer h.Mount(clock)()

	clock.Advance(AutoHideDelay)
	require.Equal(t, Hidden, h.State().Visibility)

	h.ToggleVisibility()
	assert.Equal(t, Visible, h.State().Visibility)

	// the timer is armed once per mount; visibility changes never re-arm it
	clock.Advance(2 * AutoHideDelay)
	assert.Equal(t, Visible, h.State().Visibility)
	assert.Equal(t, 1, clock.armed())
}

func TestHeaderToggleBeforeDelayOverridesTimer(t *testing.T) {
	clock := &fakeClock{}
	h := NewHeader("Clínica", nil)
	defer h.Mount(clock)()

	clock.Advance(3 * time.Second)
	h.ToggleVisibility()
	assert.Equal(t, Hidden, h.State().Visibility)

	h.ToggleVisibility()
	assert.Equal(t, Visible, h.State().Visibility)

	clock.Advance(AutoHideDelay)
	assert.Equal(t, Visible, h.State().Visibility)
}

func TestHeaderUnmountReleasesTimer(t *testing.T) {
	clock := &fakeClock{}
	h := NewHeader("Clínica", nil)
	unmount := h.Mount(clock)

	unmount()
	unmount()
	clock.Advance(AutoHideDelay)

	assert.Equal(t, Visible, h.State().Visibility)
}

func TestHeaderMountTwiceArmsOnce(t *testing.T) {
	clock := &fakeClock{}
	h := NewHeader("Clínica", nil)
	defer h.Mount(clock)()
	h.Mount(clock)

	assert.Equal(t, 1, clock.armed())
}

func TestHeaderMenuTransitions(t *testing.T) {
	h := NewHeader("Clínica", nil)
	assert.Equal(t, MenuClosed, h.State().Menu)

	h.ToggleMenu()
	assert.Equal(t, MenuOpen, h.State().Menu)

	h.ToggleMenu()
	assert.Equal(t, MenuClosed, h.State().Menu)

	h.ToggleMenu()
	h.ClickNavLink("/mis-turnos")
	assert.Equal(t, MenuClosed, h.State().Menu)
	assert.Equal(t, "/mis-turnos", h.State().Active)
}

func TestHeaderScrollVariant(t *testing.T) {
	h := NewHeader("Clínica", nil)

	h.Scroll(50)
	assert.Equal(t, VariantNormal, h.State().Variant)

	h.Scroll(51)
	assert.Equal(t, VariantScrolled, h.State().Variant)

	h.Scroll(0)
	assert.Equal(t, VariantNormal, h.State().Variant)
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Clínica San Martín", nil)
	h.ToggleMenu()
	h.Scroll(120)

	var buf bytes.Buffer
	require.NoError(t, h.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "site-header--scrolled")
	assert.Contains(t, html, "site-header__nav--open")
	assert.Contains(t, html, `aria-expanded="true"`)
	assert.Contains(t, html, `href="/tomar-turnos"`)
	assert.Contains(t, html, "Ocultar menú")
	assert.NotContains(t, html, "site-header--hidden")
}

// lateTimer models a timer whose callback was already dispatched when Stop
// was called.
type lateTimer struct{}

func (lateTimer) Stop() bool { return false }

type lateClock struct {
	callbacks []func()
}

func (c *lateClock) AfterFunc(d time.Duration, f func()) Timer {
	c.callbacks = append(c.callbacks, f)
	return lateTimer{}
}

func TestHeaderIgnoresTimerFromPreviousMount(t *testing.T) {
	clock := &lateClock{}
	h := NewHeader("Clínica", nil)

	unmount := h.Mount(clock)
	unmount()
	remount := h.Mount(clock)
	defer remount()
	require.Len(t, clock.callbacks, 2)

	clock.callbacks[0]()
	assert.Equal(t, Visible, h.State().Visibility)

	clock.callbacks[1]()
	assert.Equal(t, Hidden, h.State().Visibility)
}
