package tween

import "time"

// State represents the lifecycle stage of a tween.
//
// The state machine moves forward only:
//
//	           delay elapses          elapsed == duration
//	Pending ─────────────────► Running ─────────────────► Finished
//	    │                         │
//	    └──────── Kill() ─────────┴───────► Killed
//
// Pausing is a sub-state of Pending and Running: a paused tween keeps its
// state but accrues no time until unpaused.
type State int

const (
	// StatePending means the tween is registered but has not begun
	// interpolating; any configured delay is still being consumed.
	StatePending State = iota
	// StateRunning means the tween is actively interpolating.
	StateRunning
	// StateFinished means elapsed time reached the duration naturally.
	StateFinished
	// StateKilled means the tween was cancelled before finishing.
	StateKilled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Tween is a single timed animation of one value from its current state to
// a final value. Create tweens through a [Scheduler]; the scheduler steps
// every registered tween once per tick until it finishes or is killed.
//
// The tween borrows the caller's read and write capabilities but never owns
// the target they close over. The caller owns the target's lifetime and
// must Kill any tween animating a target before destroying it; the engine
// does not guard against writes through a stale accessor.
//
// A Tween is not safe for concurrent use. Create, configure and control it
// from the goroutine that ticks its scheduler.
type Tween struct {
	sched *Scheduler
	value valueAnimator // nil for pure timers (CallAfterDelay)

	duration       time.Duration
	elapsed        time.Duration
	delay          time.Duration
	remainingDelay time.Duration

	curve    Curve
	unscaled bool
	paused   bool
	state    State

	registry *ConflictRegistry
	key      any
	lists    []*List

	onStart    func()
	onUpdate   func(progress float64)
	onFinish   func()
	onComplete func()
	onKill     func()
}

// newTween builds a tween over the given value strategy and registers it
// with the scheduler. A negative duration is clamped to zero; a zero
// duration writes the final value and finishes synchronously, before this
// call returns, skipping delay and curve evaluation entirely.
func newTween(s *Scheduler, v valueAnimator, duration time.Duration) *Tween {
	if duration < 0 {
		duration = 0
	}
	t := &Tween{
		sched:    s,
		value:    v,
		duration: duration,
		curve:    Linear,
		state:    StatePending,
	}
	if duration == 0 {
		if v != nil {
			v.applyFinal()
		}
		t.state = StateFinished
		return t
	}
	s.register(t)
	return t
}

// State returns the tween's current lifecycle state.
func (t *Tween) State() State { return t.state }

// IsActive reports whether the tween has not yet finished or been killed.
func (t *Tween) IsActive() bool {
	return t.state == StatePending || t.state == StateRunning
}

// IsPaused reports whether the tween is currently paused.
func (t *Tween) IsPaused() bool { return t.paused }

// Elapsed returns the time the tween has spent interpolating, always in
// [0, duration]. Delay time is not included.
func (t *Tween) Elapsed() time.Duration { return t.elapsed }

// Duration returns the configured duration.
func (t *Tween) Duration() time.Duration { return t.duration }

// SetCurve sets the easing curve. Valid only before the tween begins
// running; calls after that are ignored. Returns the tween for chaining.
func (t *Tween) SetCurve(c Curve) *Tween {
	if t.state == StatePending && c != nil {
		t.curve = c
	}
	return t
}

// SetDelay sets a wait before interpolation begins, clamped to zero or
// more. Valid only before the tween begins running; calls after that are
// ignored. Returns the tween for chaining.
func (t *Tween) SetDelay(d time.Duration) *Tween {
	if t.state == StatePending {
		if d < 0 {
			d = 0
		}
		t.delay = d
		t.remainingDelay = d
	}
	return t
}

// UseUnscaledTime selects the unscaled scheduler delta, so the tween keeps
// running while the scheduler's time scale is lowered or zeroed. Valid only
// before the tween begins running. Returns the tween for chaining.
func (t *Tween) UseUnscaledTime(unscaled bool) *Tween {
	if t.state == StatePending {
		t.unscaled = unscaled
	}
	return t
}

// OnStart registers a callback fired once, after any delay, before the
// first interpolation step. Returns the tween for chaining.
func (t *Tween) OnStart(fn func()) *Tween {
	if t.IsActive() {
		t.onStart = fn
	}
	return t
}

// OnUpdate registers a callback fired after every interpolation step with
// the normalized progress in [0, 1]. Returns the tween for chaining.
func (t *Tween) OnUpdate(fn func(progress float64)) *Tween {
	if t.IsActive() {
		t.onUpdate = fn
	}
	return t
}

// OnFinish registers a callback fired once when the tween completes
// naturally. It does not fire on Kill. Returns the tween for chaining.
func (t *Tween) OnFinish(fn func()) *Tween {
	if t.IsActive() {
		t.onFinish = fn
	}
	return t
}

// OnComplete registers a callback fired exactly once when the tween ends
// for any reason, natural finish or kill. Returns the tween for chaining.
func (t *Tween) OnComplete(fn func()) *Tween {
	if t.IsActive() {
		t.onComplete = fn
	}
	return t
}

// OnKill registers a callback fired only on explicit cancellation, before
// OnComplete. Returns the tween for chaining.
func (t *Tween) OnKill(fn func()) *Tween {
	if t.IsActive() {
		t.onKill = fn
	}
	return t
}

// Pause freezes time accrual, including during the delay phase. Pausing a
// finished or killed tween has no effect.
func (t *Tween) Pause() {
	if t.IsActive() {
		t.paused = true
	}
}

// Unpause resumes time accrual from the exact point it was frozen.
func (t *Tween) Unpause() {
	if t.IsActive() {
		t.paused = false
	}
}

// Kill cancels the tween synchronously: OnKill fires, then OnComplete, and
// the tween is removed from its scheduler, conflict registry and linked
// lists before Kill returns. Killing an already finished or killed tween is
// a no-op, and repeated kills never re-fire callbacks.
func (t *Tween) Kill() {
	if !t.IsActive() {
		return
	}
	t.state = StateKilled
	if t.onKill != nil {
		t.onKill()
	}
	if t.onComplete != nil {
		t.onComplete()
	}
	t.detach()
	t.release()
}

// SetTarget associates the tween with a conflict-registry key so that later
// animations against the same target can cancel it via
// [ConflictRegistry.KillAll]. The association is removed automatically when
// the tween ends. Returns the tween for chaining.
func (t *Tween) SetTarget(reg *ConflictRegistry, key any) *Tween {
	if !t.IsActive() || reg == nil {
		return t
	}
	if t.registry != nil {
		t.registry.unregister(t.key, t)
	}
	t.registry = reg
	t.key = key
	reg.register(key, t)
	return t
}

// LinkToList adds the tween to a caller-owned [List]. The tween removes
// itself from the list when it ends, naturally or by kill. Returns the
// tween for chaining.
func (t *Tween) LinkToList(l *List) *Tween {
	if !t.IsActive() || l == nil {
		return t
	}
	l.add(t)
	t.lists = append(t.lists, l)
	return t
}

// step advances the tween by one scheduler tick, using the scaled or
// unscaled delta per its configuration. It reports whether the tween
// reached a terminal state.
func (t *Tween) step(scaled, unscaled time.Duration) bool {
	if !t.IsActive() {
		return true
	}
	if t.paused {
		return false
	}

	dt := scaled
	if t.unscaled {
		dt = unscaled
	}
	if dt <= 0 {
		// Frozen time scale or an empty tick: no time passes for this tween.
		return false
	}

	if t.state == StatePending {
		if t.remainingDelay > dt {
			t.remainingDelay -= dt
			return false
		}
		// The remainder of this tick's delta carries into elapsed time.
		dt -= t.remainingDelay
		t.remainingDelay = 0
		t.begin()
		if !t.IsActive() {
			// Killed from OnStart.
			return true
		}
	}

	t.elapsed += dt
	done := t.elapsed >= t.duration
	if done {
		t.elapsed = t.duration
	}
	progress := float64(t.elapsed) / float64(t.duration)

	if t.value != nil {
		if done {
			// The last write is always exactly the final value, never a
			// curve-rounded approximation.
			t.value.applyFinal()
		} else {
			t.value.apply(t.curve(progress))
		}
	}
	if t.onUpdate != nil {
		t.onUpdate(progress)
	}
	if !t.IsActive() {
		// Killed from OnUpdate.
		return true
	}
	if done {
		t.finish()
		return true
	}
	return false
}

// begin transitions from Pending to Running: the start value is captured
// through the read capability now, not at construction, and OnStart fires.
func (t *Tween) begin() {
	t.state = StateRunning
	if t.value != nil {
		t.value.capture()
	}
	if t.onStart != nil {
		t.onStart()
	}
}

// finish completes the tween naturally. The tween leaves the scheduler and
// conflict registry before completion callbacks fire, so a callback that
// inspects IsAnimating sees the post-completion state.
func (t *Tween) finish() {
	t.state = StateFinished
	t.detach()
	if t.onFinish != nil {
		t.onFinish()
	}
	if t.onComplete != nil {
		t.onComplete()
	}
	t.release()
}

// detach removes the tween from its scheduler, conflict registry and
// linked lists.
func (t *Tween) detach() {
	if t.sched != nil {
		t.sched.unregister(t)
	}
	if t.registry != nil {
		t.registry.unregister(t.key, t)
		t.registry = nil
		t.key = nil
	}
	for _, l := range t.lists {
		l.remove(t)
	}
	t.lists = nil
}

// release drops all callbacks so nothing fires after the terminal state.
func (t *Tween) release() {
	t.onStart = nil
	t.onUpdate = nil
	t.onFinish = nil
	t.onComplete = nil
	t.onKill = nil
}
