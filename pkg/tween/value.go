package tween

import (
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/graphics"
)

// The engine animates a closed set of value kinds: scalar, 2D vector, 3D
// vector, and color. Each kind carries its own interpolation strategy,
// chosen once at construction rather than re-dispatched per step.
//
// Vectors interpolate along the start→final line, so an overshooting curve
// like [Elastic] travels past the final value on the same axis. Colors
// interpolate per channel with each channel clamped to [0, 1] at every
// step, so the same curve saturates instead of overshooting. The asymmetry
// is deliberate: positions may briefly leave their destination, colors must
// always stay displayable.

// valueAnimator is the per-kind interpolation strategy. The tween borrows
// the caller's read and write capabilities and never owns the underlying
// target.
type valueAnimator interface {
	// capture samples the start value through the read capability. Called
	// once, when the tween leaves its delay phase.
	capture()
	// apply writes the value interpolated by the eased progress.
	apply(eased float64)
	// applyFinal writes exactly the final value, bypassing the curve.
	applyFinal()
}

type floatValue struct {
	read  func() float64
	write func(float64)
	start float64
	final float64
}

func (v *floatValue) capture() { v.start = v.read() }

func (v *floatValue) apply(eased float64) {
	v.write(v.start + (v.final-v.start)*eased)
}

func (v *floatValue) applyFinal() { v.write(v.final) }

type vec2Value struct {
	read  func() geometry.Vec2
	write func(geometry.Vec2)
	start geometry.Vec2
	final geometry.Vec2
}

func (v *vec2Value) capture() { v.start = v.read() }

func (v *vec2Value) apply(eased float64) {
	v.write(geometry.LerpVec2(v.start, v.final, eased))
}

func (v *vec2Value) applyFinal() { v.write(v.final) }

type vec3Value struct {
	read  func() geometry.Vec3
	write func(geometry.Vec3)
	start geometry.Vec3
	final geometry.Vec3
}

func (v *vec3Value) capture() { v.start = v.read() }

func (v *vec3Value) apply(eased float64) {
	v.write(geometry.LerpVec3(v.start, v.final, eased))
}

func (v *vec3Value) applyFinal() { v.write(v.final) }

type colorValue struct {
	read  func() graphics.Color
	write func(graphics.Color)
	start graphics.Color
	final graphics.Color
}

func (v *colorValue) capture() { v.start = v.read() }

func (v *colorValue) apply(eased float64) {
	v.write(graphics.LerpColor(v.start, v.final, eased))
}

func (v *colorValue) applyFinal() { v.write(v.final) }
