package tween

import (
	"fmt"
	"math"

	"github.com/go-drift/motion/pkg/errors"
)

// Easing curves transform linear animation progress into shaped motion.
//
// Each curve is a pure function taking progress t in [0, 1] and returning
// eased progress. Inputs are clamped to [0, 1]; outputs usually stay in
// [0, 1], but [Elastic] deliberately overshoots past 1 before settling and
// [Mountain] returns to 0 at both ends.

// Curve maps normalized progress to eased progress.
type Curve func(t float64) float64

// Linear returns progress unchanged (no easing).
func Linear(t float64) float64 {
	return clampUnit(t)
}

// Smooth eases in and out along a half cosine wave.
func Smooth(t float64) float64 {
	t = clampUnit(t)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// SmoothStart starts slowly and accelerates (cubic ease-in).
func SmoothStart(t float64) float64 {
	t = clampUnit(t)
	return t * t * t
}

// SmoothEnd starts quickly and decelerates (cubic ease-out).
func SmoothEnd(t float64) float64 {
	t = clampUnit(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// ExtraSmooth eases in and out with a cubic on both sides.
func ExtraSmooth(t float64) float64 {
	t = clampUnit(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// Elastic overshoots past the target and settles back. Its output is not
// clamped to [0, 1]: vector tweens briefly travel beyond the final value
// along their line of motion.
func Elastic(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	t = clampUnit(t)
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Mountain rises from 0 to a peak at t = 0.5 and returns to 0. Useful for
// pulse effects that must end where they started.
func Mountain(t float64) float64 {
	t = clampUnit(t)
	return math.Sin(math.Pi * t)
}

// curvesByName maps configuration identifiers to curves.
var curvesByName = map[string]Curve{
	"linear":       Linear,
	"smooth":       Smooth,
	"smooth-start": SmoothStart,
	"smooth-end":   SmoothEnd,
	"extra-smooth": ExtraSmooth,
	"elastic":      Elastic,
	"mountain":     Mountain,
}

// CurveByName resolves a curve identifier used in preset files. An unknown
// name is a construction-time error, never a per-evaluation failure.
func CurveByName(name string) (Curve, error) {
	c, ok := curvesByName[name]
	if !ok {
		return nil, errors.New("tween.CurveByName", errors.KindCurve,
			fmt.Errorf("%w: %q", errors.ErrUnknownCurve, name))
	}
	return c, nil
}

// CurveNames returns the registered curve identifiers in no particular order.
func CurveNames() []string {
	names := make([]string, 0, len(curvesByName))
	for name := range curvesByName {
		names = append(names, name)
	}
	return names
}

// clampUnit clamps a value to the range [0, 1].
func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
