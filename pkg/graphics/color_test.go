package graphics

import "testing"

func TestLerpColor(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 0, 1)

	mid := LerpColor(a, b, 0.5)
	if !mid.Equals(Color{R: 0.5, G: 0, B: 0.5, A: 1}) {
		t.Errorf("midpoint = %+v", mid)
	}
}

func TestLerpColor_ClampsOvershoot(t *testing.T) {
	a := RGB(0, 0.5, 1)
	b := RGB(1, 0.5, 0)

	// t beyond 1 would push R above 1 and B below 0; both must clamp.
	got := LerpColor(a, b, 1.2)
	want := Color{R: 1, G: 0.5, B: 0, A: 1}
	if !got.Equals(want) {
		t.Errorf("LerpColor(t=1.2) = %+v, want %+v", got, want)
	}

	// Negative t clamps at the other end.
	got = LerpColor(a, b, -0.2)
	want = Color{R: 0, G: 0.5, B: 1, A: 1}
	if !got.Equals(want) {
		t.Errorf("LerpColor(t=-0.2) = %+v, want %+v", got, want)
	}
}

func TestColor_Bytes(t *testing.T) {
	r, g, b, a := RGB8(255, 128, 0).Bytes()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("round trip = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := White.WithAlpha(0.25)
	if c.A != 0.25 {
		t.Errorf("alpha = %v", c.A)
	}
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("channels changed: %+v", c)
	}
	if got := White.WithAlpha(1.5); got.A != 1 {
		t.Errorf("alpha should clamp to 1, got %v", got.A)
	}
}
