// Package effects provides small reusable animation building blocks:
// alpha fades and a looping color pulse. They are thin layers over
// [tween]; each helper returns or owns ordinary tweens, so callers keep
// the full control surface (kill, pause, conflict targeting).
package effects

import (
	"time"

	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/tween"
)

// FadeIn animates an alpha accessor to fully opaque with a smooth curve.
func FadeIn(s *tween.Scheduler, read func() float64, write func(float64), d time.Duration) *tween.Tween {
	return s.Float64(read, write, 1, d).SetCurve(tween.Smooth)
}

// FadeOut animates an alpha accessor to fully transparent with a smooth
// curve.
func FadeOut(s *tween.Scheduler, read func() float64, write func(float64), d time.Duration) *tween.Tween {
	return s.Float64(read, write, 0, d).SetCurve(tween.Smooth)
}

// ColorPulse oscillates a color between its resting value and a peak,
// once per period, until stopped. The pulse shape rises and falls within
// a single cycle and always passes back through the resting color, so
// stopping between cycles leaves no visible jump.
type ColorPulse struct {
	sched  *tween.Scheduler
	read   func() graphics.Color
	write  func(graphics.Color)
	peak   graphics.Color
	period time.Duration

	base    graphics.Color
	active  bool
	current *tween.Tween
}

// NewColorPulse builds a pulse over the given color accessor. The resting
// color is sampled from read when the pulse starts.
func NewColorPulse(s *tween.Scheduler, read func() graphics.Color, write func(graphics.Color), peak graphics.Color, period time.Duration) *ColorPulse {
	if s == nil {
		s = tween.Default()
	}
	return &ColorPulse{
		sched:  s,
		read:   read,
		write:  write,
		peak:   peak,
		period: period,
	}
}

// Start begins pulsing. Starting an active pulse is a no-op.
func (cp *ColorPulse) Start() {
	if cp.active {
		return
	}
	cp.active = true
	cp.base = cp.read()
	cp.arm()
}

// arm runs one cycle. A linear phase tween drives the pulse; the mountain
// shape is applied per update so the cycle ends back at the resting color
// rather than snapping to the peak.
func (cp *ColorPulse) arm() {
	phase := 0.0
	cp.current = cp.sched.Float64(
		func() float64 { return phase },
		func(v float64) { phase = v },
		1, cp.period,
	).OnUpdate(func(progress float64) {
		cp.write(graphics.LerpColor(cp.base, cp.peak, tween.Mountain(progress)))
	}).OnFinish(func() {
		if cp.active {
			cp.arm()
		}
	})
}

// Stop halts the pulse and restores the resting color. Stopping an
// inactive pulse is a no-op.
func (cp *ColorPulse) Stop() {
	if !cp.active {
		return
	}
	cp.active = false
	if cp.current != nil {
		cp.current.Kill()
		cp.current = nil
	}
	cp.write(cp.base)
}

// Active reports whether the pulse is running.
func (cp *ColorPulse) Active() bool { return cp.active }
