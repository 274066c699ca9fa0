// Package transition animates panels between their open and closed
// states. A [Controller] owns the conflict bookkeeping: starting a
// transition on a panel kills whatever transition is already running on
// it, so a close issued halfway through an open takes over from the
// panel's current scale and alpha instead of snapping.
//
// Curves and durations come from a [preset.Library] under the names
// "window-open" and "window-close"; panels fall back to built-in
// defaults when the library does not define them.
package transition

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/preset"
	"github.com/go-drift/motion/pkg/tween"
)

// Panel is a surface the controller can open and close. The controller
// drives Offset, Scale and Alpha; everything else belongs to the caller.
type Panel struct {
	// Offset is the panel's displacement from its resting position.
	// Open slides it to zero; Close slides it back down.
	Offset  geometry.Vec2
	Scale   float64
	Alpha   float64
	Visible bool

	// OnOpened fires when an open transition runs to completion.
	// Interrupted transitions do not fire it.
	OnOpened func()
	// OnClosed fires when a close transition runs to completion, after
	// Visible has been cleared.
	OnClosed func()
}

// Default presets, overridable through the library passed to
// [NewController].
var (
	defaultOpen  = preset.MustNew("smooth-end", 250*time.Millisecond)
	defaultClose = preset.MustNew("smooth-start", 200*time.Millisecond)
)

// Closed pose: where hidden panels rest so an open has somewhere to
// grow from.
const closedScale = 0.85

var closedOffset = geometry.Vec2{Y: 24}

// Controller opens and closes panels on a scheduler. Each panel is a
// conflict target: at most one transition drives it at a time.
type Controller struct {
	sched   *tween.Scheduler
	reg     *tween.ConflictRegistry
	presets *preset.Library
}

// NewController returns a controller ticking on s, or on the default
// scheduler when s is nil. presets may be nil, in which case the built-in
// defaults apply.
func NewController(s *tween.Scheduler, presets *preset.Library) *Controller {
	if s == nil {
		s = tween.Default()
	}
	return &Controller{
		sched:   s,
		reg:     tween.NewConflictRegistry(),
		presets: presets,
	}
}

// Open transitions p to full scale and opacity. A transition already
// running on p is killed first; the new one picks up from the panel's
// current values. A hidden panel is seeded at the closed pose before it
// starts growing.
func (c *Controller) Open(p *Panel) {
	c.reg.KillAll(p)
	if !p.Visible {
		p.Offset = closedOffset
		p.Scale = closedScale
		p.Alpha = 0
	}
	p.Visible = true

	ps := c.preset("window-open", defaultOpen)
	ps.Apply(c.sched.Vec2(
		func() geometry.Vec2 { return p.Offset },
		func(v geometry.Vec2) { p.Offset = v },
		geometry.Vec2{}, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p)
	ps.Apply(c.sched.Float64(
		func() float64 { return p.Scale },
		func(v float64) { p.Scale = v },
		1, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p)
	ps.Apply(c.sched.Float64(
		func() float64 { return p.Alpha },
		func(v float64) { p.Alpha = v },
		1, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p).OnFinish(func() {
		if p.OnOpened != nil {
			p.OnOpened()
		}
	})
}

// Close transitions p back to the closed pose and hides it on arrival.
// Killing semantics mirror [Controller.Open].
func (c *Controller) Close(p *Panel) {
	c.reg.KillAll(p)

	ps := c.preset("window-close", defaultClose)
	ps.Apply(c.sched.Vec2(
		func() geometry.Vec2 { return p.Offset },
		func(v geometry.Vec2) { p.Offset = v },
		closedOffset, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p)
	ps.Apply(c.sched.Float64(
		func() float64 { return p.Scale },
		func(v float64) { p.Scale = v },
		closedScale, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p)
	ps.Apply(c.sched.Float64(
		func() float64 { return p.Alpha },
		func(v float64) { p.Alpha = v },
		0, time.Duration(ps.Duration),
	)).SetTarget(c.reg, p).OnFinish(func() {
		p.Visible = false
		if p.OnClosed != nil {
			p.OnClosed()
		}
	})
}

// Toggle opens a hidden panel and closes a visible one.
func (c *Controller) Toggle(p *Panel) {
	if p.Visible {
		c.Close(p)
	} else {
		c.Open(p)
	}
}

// IsAnimating reports whether a transition is currently driving p.
func (c *Controller) IsAnimating(p *Panel) bool {
	return c.reg.IsAnimating(p)
}

// preset looks up a named preset. A preset without a positive duration
// would finish its tweens synchronously and swallow the completion hooks,
// so it is reported and replaced with the fallback rather than honored.
func (c *Controller) preset(name string, fallback preset.Preset) preset.Preset {
	ps := c.presets.GetOr(name, fallback)
	if ps.Duration <= 0 {
		errors.Report(errors.Newf("transition", errors.KindConfig,
			"preset %q has no duration, using the built-in default", name))
		return fallback
	}
	return ps
}
