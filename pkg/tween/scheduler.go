package tween

import (
	"context"
	"time"
)

// Scheduler owns the set of active tweens and advances each one per tick.
//
// The scheduler is cooperative and single-goroutine: every tween's step
// runs to completion before the next tween is stepped, and the active set
// is only ever mutated from the goroutine driving [Scheduler.Tick]. No
// method is safe for concurrent use.
//
// Ticks carry two time deltas: a scaled delta, affected by the scheduler's
// time scale, and an unscaled delta that always advances in real time.
// Each tween picks one per its [Tween.UseUnscaledTime] configuration, so
// animations that must keep moving while game time is slowed or frozen
// (for example a pause-menu fade) opt into the unscaled clock.
//
// Most programs use the process-wide [Default] scheduler; tests construct
// their own with [NewScheduler], or swap the default via [SetDefault] and
// restore it in cleanup.
type Scheduler struct {
	active    []*Tween
	timeScale float64
}

// NewScheduler creates an empty scheduler with time scale 1.
func NewScheduler() *Scheduler {
	return &Scheduler{timeScale: 1}
}

// defaultScheduler is the process-wide instance used by package-level
// constructors.
var defaultScheduler = NewScheduler()

// Default returns the process-wide scheduler.
func Default() *Scheduler { return defaultScheduler }

// SetDefault replaces the process-wide scheduler. Returns the previous
// scheduler so callers can restore it during cleanup. Passing nil installs
// a fresh scheduler.
func SetDefault(s *Scheduler) *Scheduler {
	prev := defaultScheduler
	if s == nil {
		s = NewScheduler()
	}
	defaultScheduler = s
	return prev
}

// ResetDefault installs a fresh process-wide scheduler, abandoning any
// tweens registered with the previous one. Intended for test isolation.
func ResetDefault() {
	defaultScheduler = NewScheduler()
}

// TimeScale returns the multiplier applied to scaled deltas by [Advance].
func (s *Scheduler) TimeScale() float64 { return s.timeScale }

// SetTimeScale sets the multiplier applied to scaled deltas by [Advance].
// Negative values clamp to zero. At zero, scaled tweens freeze while
// unscaled tweens keep running.
func (s *Scheduler) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	s.timeScale = scale
}

// Len returns the number of tweens currently registered.
func (s *Scheduler) Len() int { return len(s.active) }

// Tick advances every registered, unpaused tween by the given deltas and
// fires their callbacks. The active set is snapshotted before iteration:
// tweens created from a callback during this tick first step on the next
// tick, and tweens killed mid-tick are skipped for the remainder of it.
func (s *Scheduler) Tick(scaled, unscaled time.Duration) {
	if len(s.active) == 0 {
		return
	}
	snapshot := make([]*Tween, len(s.active))
	copy(snapshot, s.active)
	for _, t := range snapshot {
		t.step(scaled, unscaled)
	}
}

// Advance is the usual per-frame entry point: it derives the scaled delta
// from dt and the scheduler's time scale, with dt itself as the unscaled
// delta, and ticks once.
func (s *Scheduler) Advance(dt time.Duration) {
	s.Tick(time.Duration(float64(dt)*s.timeScale), dt)
}

// Run drives the scheduler from real time until ctx is done, ticking every
// interval with the elapsed clock time since the previous tick. The clock
// is the package clock, replaceable via [SetClock].
//
// Run calls Advance from its own goroutine, so programs using it must
// confine all tween creation and control to scheduler callbacks.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := Now()
			s.Advance(now.Sub(last))
			last = now
		}
	}
}

// CallAfterDelay invokes fn once after the given delay, without animating
// any value. The returned tween can be paused or killed like any other; a
// killed timer never fires. A non-positive delay invokes fn before
// CallAfterDelay returns.
func (s *Scheduler) CallAfterDelay(fn func(), delay time.Duration, unscaledTime bool) *Tween {
	if delay <= 0 {
		if fn != nil {
			fn()
		}
		t := &Tween{sched: s, state: StateFinished}
		return t
	}
	t := newTween(s, nil, delay)
	t.UseUnscaledTime(unscaledTime)
	if fn != nil {
		t.OnFinish(fn)
	}
	return t
}

// register appends a tween to the active set. Iteration order is
// registration order, though tweens are independent and no semantic
// ordering is guaranteed.
func (s *Scheduler) register(t *Tween) {
	s.active = append(s.active, t)
}

// unregister removes a tween from the active set, preserving order.
func (s *Scheduler) unregister(t *Tween) {
	for i, a := range s.active {
		if a == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}
