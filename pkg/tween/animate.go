package tween

import (
	"time"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/graphics"
)

// Value is the closed set of animatable types. The interpolation strategy
// for each is fixed: scalars lerp, vectors move along the start→final line
// (overshoot included), colors lerp per channel with per-step clamping.
type Value interface {
	float64 | geometry.Vec2 | geometry.Vec3 | graphics.Color
}

// Float64 creates a tween that animates a scalar from its current value to
// final over the given duration. The start value is read when the tween
// begins, after any delay, not now.
func (s *Scheduler) Float64(read func() float64, write func(float64), final float64, duration time.Duration) *Tween {
	return newTween(s, &floatValue{read: read, write: write, final: final}, duration)
}

// Vec2 creates a tween that animates a 2D vector toward final.
func (s *Scheduler) Vec2(read func() geometry.Vec2, write func(geometry.Vec2), final geometry.Vec2, duration time.Duration) *Tween {
	return newTween(s, &vec2Value{read: read, write: write, final: final}, duration)
}

// Vec3 creates a tween that animates a 3D vector toward final.
func (s *Scheduler) Vec3(read func() geometry.Vec3, write func(geometry.Vec3), final geometry.Vec3, duration time.Duration) *Tween {
	return newTween(s, &vec3Value{read: read, write: write, final: final}, duration)
}

// Color creates a tween that animates a color toward final, clamping each
// channel to [0, 1] at every step.
func (s *Scheduler) Color(read func() graphics.Color, write func(graphics.Color), final graphics.Color, duration time.Duration) *Tween {
	return newTween(s, &colorValue{read: read, write: write, final: final}, duration)
}

// Animate creates a tween on s for any supported value type. The type
// parameter restricts callers to the closed set at compile time.
func Animate[T Value](s *Scheduler, read func() T, write func(T), final T, duration time.Duration) *Tween {
	switch f := any(final).(type) {
	case float64:
		return s.Float64(any(read).(func() float64), any(write).(func(float64)), f, duration)
	case geometry.Vec2:
		return s.Vec2(any(read).(func() geometry.Vec2), any(write).(func(geometry.Vec2)), f, duration)
	case geometry.Vec3:
		return s.Vec3(any(read).(func() geometry.Vec3), any(write).(func(geometry.Vec3)), f, duration)
	case graphics.Color:
		return s.Color(any(read).(func() graphics.Color), any(write).(func(graphics.Color)), f, duration)
	}
	// Unreachable: the Value constraint covers every case above.
	panic("tween: unsupported value type")
}

// AnimateAny is the dynamically-typed entry point for callers whose value
// kind is only known at runtime. A final value outside the closed set fails
// here, at construction, before any scheduling occurs — never as a silent
// per-step no-op.
func (s *Scheduler) AnimateAny(read func() any, write func(any), final any, duration time.Duration) (*Tween, error) {
	switch f := final.(type) {
	case float64:
		return s.Float64(
			func() float64 { v, _ := read().(float64); return v },
			func(v float64) { write(v) },
			f, duration), nil
	case geometry.Vec2:
		return s.Vec2(
			func() geometry.Vec2 { v, _ := read().(geometry.Vec2); return v },
			func(v geometry.Vec2) { write(v) },
			f, duration), nil
	case geometry.Vec3:
		return s.Vec3(
			func() geometry.Vec3 { v, _ := read().(geometry.Vec3); return v },
			func(v geometry.Vec3) { write(v) },
			f, duration), nil
	case graphics.Color:
		return s.Color(
			func() graphics.Color { v, _ := read().(graphics.Color); return v },
			func(v graphics.Color) { write(v) },
			f, duration), nil
	default:
		return nil, errors.Newf("tween.AnimateAny", errors.KindValue,
			"%w: %T", errors.ErrUnsupportedType, final)
	}
}
