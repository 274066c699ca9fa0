// Package audio crossfades music tracks by driving their gain through
// the animation scheduler. The fader animates a linear fade level per
// track and maps it through a perceptual curve before it reaches the
// output, so a half-finished fade sounds half as loud instead of
// measuring half as loud.
//
// The package does not own playback. A [Track] wraps any [Gain] sink;
// [BeepGain] adapts a beep volume effect so the same fader works against
// a real speaker.
package audio

import (
	"math"
	"time"

	"github.com/go-drift/motion/pkg/tween"
)

// Gain receives a track's output loudness in [0, 1].
type Gain interface {
	SetGain(v float64)
}

// perceptualExponent shapes the linear fade level into perceived
// loudness before it reaches the gain sink. Tuned by ear; leave as-is.
const perceptualExponent = 2.7

// Track is one fadeable source. The fader animates its level; the
// shaped result is pushed to the gain sink on every change.
type Track struct {
	name  string
	gain  Gain
	level float64
}

// NewTrack wraps a gain sink as a fadeable track, starting silent.
func NewTrack(name string, gain Gain) *Track {
	t := &Track{name: name, gain: gain}
	t.setLevel(0)
	return t
}

// Name returns the track's identifier.
func (t *Track) Name() string { return t.name }

// Level returns the current linear fade level in [0, 1].
func (t *Track) Level() float64 { return t.level }

func (t *Track) setLevel(v float64) {
	t.level = v
	t.gain.SetGain(math.Pow(v, perceptualExponent))
}

// Crossfader fades one track out while fading the next in. It is a
// conflict target for its own fades: Play and Stop kill whatever fades
// are still in flight, and the replacement fades resume from each
// track's current level.
type Crossfader struct {
	sched   *tween.Scheduler
	reg     *tween.ConflictRegistry
	fades   *tween.List
	fade    time.Duration
	current *Track
	// live holds every track that is audible or mid-fade, so a rapid
	// switch can fade out tracks whose own fade-out was killed.
	live map[*Track]struct{}
}

// NewCrossfader builds a fader ticking on s, or on the default scheduler
// when s is nil. fade is the duration of each fade leg.
func NewCrossfader(s *tween.Scheduler, fade time.Duration) *Crossfader {
	if s == nil {
		s = tween.Default()
	}
	return &Crossfader{
		sched: s,
		reg:   tween.NewConflictRegistry(),
		fades: tween.NewList(),
		fade:  fade,
		live:  make(map[*Track]struct{}),
	}
}

// Current returns the track the fader is playing or fading toward, or
// nil after Stop.
func (c *Crossfader) Current() *Track { return c.current }

// IsFading reports whether any fade is in flight.
func (c *Crossfader) IsFading() bool { return c.reg.IsAnimating(c) }

// Play crossfades from the current track to next. Calling it with the
// track already current is a no-op. In-flight fades are killed first, so
// rapid track switches never stack: the abandoned track fades out from
// wherever its level happens to be.
func (c *Crossfader) Play(next *Track) {
	if next == c.current {
		return
	}
	c.reg.KillAll(c)
	for t := range c.live {
		if t != next {
			c.fadeTo(t, 0)
		}
	}
	if next != nil {
		c.fadeTo(next, 1)
	}
	c.current = next
}

// PlayAfter schedules Play(next) once delay has passed on the unscaled
// clock, so queued music starts even while game time is frozen. The
// returned tween can be killed to cancel the switch.
func (c *Crossfader) PlayAfter(next *Track, delay time.Duration) *tween.Tween {
	return c.sched.CallAfterDelay(func() { c.Play(next) }, delay, true)
}

// Stop fades everything the fader is playing to silence.
func (c *Crossfader) Stop() {
	c.reg.KillAll(c)
	for t := range c.live {
		c.fadeTo(t, 0)
	}
	c.current = nil
}

// Shutdown kills every fade the fader ever started that is still
// active. Levels stay wherever the fades left them.
func (c *Crossfader) Shutdown() {
	c.fades.KillAll()
}

// Fades run on the unscaled clock: pausing the game should not pause
// the music fade.
func (c *Crossfader) fadeTo(t *Track, target float64) *tween.Tween {
	c.live[t] = struct{}{}
	tw := c.sched.Float64(
		func() float64 { return t.level },
		t.setLevel,
		target, c.fade,
	).SetCurve(tween.Smooth).
		UseUnscaledTime(true).
		SetTarget(c.reg, c).
		LinkToList(c.fades)
	if target == 0 {
		tw.OnFinish(func() { delete(c.live, t) })
	}
	return tw
}
