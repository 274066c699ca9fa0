// Package tween is the core of the motion engine: a generic, time-based
// value animation system driven by an external tick.
//
// # Core components
//
//   - [Scheduler]: owns the set of active tweens and advances each one per
//     tick. An explicit context with a process-wide [Default] instance that
//     can be swapped or reset for test isolation.
//
//   - [Tween]: a single animation of one value toward a final value over a
//     duration, with an easing [Curve], an optional delay, pause/unpause,
//     synchronous [Tween.Kill], and lifecycle callbacks.
//
//   - [Curve]: pure easing functions — [Linear], [Smooth], [SmoothStart],
//     [SmoothEnd], [ExtraSmooth], the overshooting [Elastic], and the
//     there-and-back [Mountain].
//
//   - [ConflictRegistry]: associates active tweens with an opaque target
//     key so a caller can cancel everything in flight against a target
//     before starting a new animation on it.
//
// # Basic usage
//
// Create tweens through a scheduler and tick it once per frame:
//
//	sched := tween.NewScheduler()
//
//	x := 0.0
//	sched.Float64(
//		func() float64 { return x },
//		func(v float64) { x = v },
//		10, time.Second,
//	).SetCurve(tween.SmoothEnd)
//
//	// In the frame loop:
//	sched.Advance(dt)
//
// Vectors and colors animate the same way through [Scheduler.Vec2],
// [Scheduler.Vec3] and [Scheduler.Color], or generically with [Animate].
//
// # Timing model
//
// Time only enters through tick deltas. [Scheduler.Tick] takes a scaled
// and an unscaled delta; [Scheduler.Advance] derives the scaled delta from
// the scheduler's time scale; [Scheduler.Run] feeds real clock time. The
// engine is single-goroutine and cooperative — tweens never run between
// ticks, and cancellation is immediate rather than queued.
package tween
