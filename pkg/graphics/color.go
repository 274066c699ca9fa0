// Package graphics provides the color type animated by the motion engine.
package graphics

import "math"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color holds normalized RGBA components. Each channel is valid in
// [0, 1]; interpolation clamps every channel independently, so eased
// motion can never produce an out-of-range color.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// RGB constructs an opaque Color from normalized components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA constructs a Color from normalized components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 constructs an opaque Color from red, green, blue bytes.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / maxByte,
		G: float64(g) / maxByte,
		B: float64(b) / maxByte,
		A: 1,
	}
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / maxByte,
		G: float64(g) / maxByte,
		B: float64(b) / maxByte,
		A: float64(a) / maxByte,
	}
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: Clamp01(c.R),
		G: Clamp01(c.G),
		B: Clamp01(c.B),
		A: Clamp01(c.A),
	}
}

// Bytes returns the color as 8-bit channel values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return byte01(c.R), byte01(c.G), byte01(c.B), byte01(c.A)
}

// Equals reports whether c and o match within a small per-channel tolerance.
func (c Color) Equals(o Color) bool {
	const tol = 0.0001
	return math.Abs(c.R-o.R) < tol &&
		math.Abs(c.G-o.G) < tol &&
		math.Abs(c.B-o.B) < tol &&
		math.Abs(c.A-o.A) < tol
}

// LerpColor interpolates each channel from a toward b by t, clamping every
// channel to [0, 1] independently. Unlike vector interpolation, t outside
// [0, 1] does not overshoot: the clamp bounds each channel at every step.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: Clamp01(a.R + (b.R-a.R)*t),
		G: Clamp01(a.G + (b.G-a.G)*t),
		B: Clamp01(a.B + (b.B-a.B)*t),
		A: Clamp01(a.A + (b.A-a.A)*t),
	}
}

// Clamp01 clamps a value to the range [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// byte01 converts a normalized channel to 0-255 with proper rounding.
func byte01(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * maxByte))
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, A: 1}
	Green       = Color{G: 1, A: 1}
	Blue        = Color{B: 1, A: 1}
)
