package tween_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/tween"
)

// This example animates a scalar and ticks the scheduler by hand, the way
// a frame loop would.
func ExampleScheduler() {
	sched := tween.NewScheduler()

	x := 0.0
	sched.Float64(
		func() float64 { return x },
		func(v float64) { x = v },
		10, time.Second,
	)

	for range 4 {
		sched.Tick(250*time.Millisecond, 250*time.Millisecond)
		fmt.Printf("x = %.1f\n", x)
	}

	// Output:
	// x = 2.5
	// x = 5.0
	// x = 7.5
	// x = 10.0
}

// This example shows lifecycle callbacks and an easing curve.
func ExampleTween_callbacks() {
	sched := tween.NewScheduler()

	alpha := 1.0
	sched.Float64(
		func() float64 { return alpha },
		func(v float64) { alpha = v },
		0, 400*time.Millisecond,
	).
		SetCurve(tween.SmoothEnd).
		OnStart(func() { fmt.Println("fading out") }).
		OnComplete(func() { fmt.Println("done") })

	sched.Tick(400*time.Millisecond, 400*time.Millisecond)
	fmt.Printf("alpha = %.0f\n", alpha)

	// Output:
	// fading out
	// done
	// alpha = 0
}

// This example cancels in-flight animations on a target before starting a
// new one, the pattern a window controller uses to interrupt an open
// animation with a close.
func ExampleConflictRegistry() {
	sched := tween.NewScheduler()
	reg := tween.NewConflictRegistry()

	scale := 0.0
	openAnimation := func() {
		sched.Float64(
			func() float64 { return scale },
			func(v float64) { scale = v },
			1, time.Second,
		).SetTarget(reg, "window").
			OnKill(func() { fmt.Println("open interrupted") })
	}

	openAnimation()
	sched.Tick(300*time.Millisecond, 300*time.Millisecond)

	// Interrupt: kill the open tween, then animate closed from wherever
	// the interrupted animation left the value.
	reg.KillAll("window")
	sched.Float64(
		func() float64 { return scale },
		func(v float64) { scale = v },
		0, time.Second,
	).SetTarget(reg, "window")

	fmt.Println("animating:", reg.IsAnimating("window"))

	// Output:
	// open interrupted
	// animating: true
}

// This example animates a color; overshooting curves clamp per channel.
func ExampleScheduler_Color() {
	sched := tween.NewScheduler()

	c := graphics.Red
	sched.Color(
		func() graphics.Color { return c },
		func(v graphics.Color) { c = v },
		graphics.Blue, time.Second,
	)

	sched.Tick(500*time.Millisecond, 500*time.Millisecond)
	fmt.Printf("R=%.2f B=%.2f\n", c.R, c.B)

	// Output:
	// R=0.50 B=0.50
}
