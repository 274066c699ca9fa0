package tween

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/graphics"
)

// scalar is a test target with accessor closures over a single float.
type scalar struct {
	value  float64
	writes int
}

func (s *scalar) read() float64 { return s.value }

func (s *scalar) write(v float64) {
	s.value = v
	s.writes++
}

func tick(s *Scheduler, dt time.Duration) {
	s.Tick(dt, dt)
}

func TestFloat64_LinearScenario(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 10, time.Second)

	// After 0.5s of ticks the written value is ~5.
	for range 5 {
		tick(s, 100*time.Millisecond)
	}
	if math.Abs(target.value-5) > 0.001 {
		t.Errorf("value at 0.5s = %v, want ~5", target.value)
	}
	if tw.State() != StateRunning {
		t.Errorf("state = %v, want running", tw.State())
	}

	// After the full second it is exactly 10 and the tween is finished.
	for range 5 {
		tick(s, 100*time.Millisecond)
	}
	if target.value != 10 {
		t.Errorf("final value = %v, want exactly 10", target.value)
	}
	if tw.State() != StateFinished {
		t.Errorf("state = %v, want finished", tw.State())
	}
	if s.Len() != 0 {
		t.Errorf("scheduler still holds %d tweens", s.Len())
	}
}

func TestFloat64_ZeroDurationCompletesSynchronously(t *testing.T) {
	s := NewScheduler()
	target := &scalar{value: 3}

	tw := s.Float64(target.read, target.write, 10, 0)

	if target.value != 10 {
		t.Errorf("value = %v, want 10 before any tick", target.value)
	}
	if target.writes != 1 {
		t.Errorf("writes = %d, want exactly 1", target.writes)
	}
	if tw.State() != StateFinished {
		t.Errorf("state = %v, want finished", tw.State())
	}
	if s.Len() != 0 {
		t.Error("zero-duration tween must never occupy the scheduler")
	}
}

func TestFloat64_NegativeDurationClampsToInstantaneous(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 7, -time.Second)

	if target.value != 7 || tw.State() != StateFinished {
		t.Errorf("value = %v state = %v; negative duration should behave as zero", target.value, tw.State())
	}
}

func TestTween_ElapsedNeverExceedsDuration(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 1, time.Second)

	// Overshooting tick: elapsed must clamp to the duration.
	tick(s, 5*time.Second)
	if tw.Elapsed() != time.Second {
		t.Errorf("elapsed = %v, want clamped to 1s", tw.Elapsed())
	}
	if target.value != 1 {
		t.Errorf("final value = %v, want exactly 1", target.value)
	}
}

func TestTween_FinalWriteIsExact(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	// Elastic ends at exactly 1 analytically, but the final write must not
	// depend on curve evaluation at all.
	s.Float64(target.read, target.write, 0.3, time.Second).SetCurve(Elastic)
	for range 7 {
		tick(s, 150*time.Millisecond)
	}
	if target.value != 0.3 {
		t.Errorf("final value = %v, want exactly 0.3", target.value)
	}
}

func TestTween_StartValueCapturedLazily(t *testing.T) {
	s := NewScheduler()
	target := &scalar{value: 0}

	s.Float64(target.read, target.write, 10, time.Second).SetDelay(500 * time.Millisecond)

	// Mutate the target during the delay; the tween must start from the
	// mutated value, not the value at construction time.
	target.value = 4
	tick(s, 500*time.Millisecond) // consumes the delay exactly
	tick(s, 500*time.Millisecond) // halfway: lerp(4, 10, 0.5) = 7
	if math.Abs(target.value-7) > 0.001 {
		t.Errorf("midpoint = %v, want 7 (start captured after delay)", target.value)
	}
}

func TestTween_DelayOverflowCarriesIntoElapsed(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 10, time.Second).SetDelay(300 * time.Millisecond)

	// One 800ms tick: 300ms consumes the delay, 500ms becomes elapsed.
	tick(s, 800*time.Millisecond)
	if tw.Elapsed() != 500*time.Millisecond {
		t.Errorf("elapsed = %v, want 500ms", tw.Elapsed())
	}
	if math.Abs(target.value-5) > 0.001 {
		t.Errorf("value = %v, want 5", target.value)
	}
}

func TestTween_PauseFreezesTime(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 10, time.Second)

	tick(s, 300*time.Millisecond)
	tw.Pause()
	if !tw.IsPaused() {
		t.Fatal("expected paused")
	}

	// A full second of paused ticks advances nothing.
	for range 10 {
		tick(s, 100*time.Millisecond)
	}
	if tw.Elapsed() != 300*time.Millisecond {
		t.Errorf("elapsed advanced while paused: %v", tw.Elapsed())
	}

	// Resuming continues from the pre-pause point; total active time to
	// completion is unchanged.
	tw.Unpause()
	tick(s, 700*time.Millisecond)
	if tw.State() != StateFinished {
		t.Errorf("state = %v, want finished after exactly 1s of unpaused time", tw.State())
	}
	if target.value != 10 {
		t.Errorf("final value = %v", target.value)
	}
}

func TestTween_PauseDuringDelay(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}
	started := false

	tw := s.Float64(target.read, target.write, 10, time.Second).
		SetDelay(200 * time.Millisecond).
		OnStart(func() { started = true })

	tick(s, 100*time.Millisecond)
	tw.Pause()
	for range 10 {
		tick(s, 100*time.Millisecond)
	}
	if started {
		t.Fatal("delay elapsed while paused")
	}

	tw.Unpause()
	tick(s, 100*time.Millisecond)
	if !started {
		t.Error("expected OnStart after remaining delay elapsed")
	}
}

func TestTween_CallbackOrderOnNaturalFinish(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	var order []string
	s.Float64(target.read, target.write, 1, 100*time.Millisecond).
		OnStart(func() { order = append(order, "start") }).
		OnUpdate(func(p float64) { order = append(order, "update") }).
		OnFinish(func() { order = append(order, "finish") }).
		OnComplete(func() { order = append(order, "complete") }).
		OnKill(func() { order = append(order, "kill") })

	tick(s, 50*time.Millisecond)
	tick(s, 50*time.Millisecond)

	want := []string{"start", "update", "update", "finish", "complete"}
	if len(order) != len(want) {
		t.Fatalf("callback order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("callback order = %v, want %v", order, want)
		}
	}
}

func TestTween_KillIsSynchronousAndIdempotent(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	kills, completes, finishes := 0, 0, 0
	tw := s.Float64(target.read, target.write, 10, time.Second).
		OnKill(func() { kills++ }).
		OnComplete(func() { completes++ }).
		OnFinish(func() { finishes++ })

	tick(s, 100*time.Millisecond)

	tw.Kill()
	if tw.State() != StateKilled {
		t.Fatalf("state = %v, want killed immediately", tw.State())
	}
	if s.Len() != 0 {
		t.Error("killed tween still registered; cleanup must not be deferred")
	}

	// Repeated kills are no-ops.
	tw.Kill()
	tw.Kill()

	if kills != 1 || completes != 1 {
		t.Errorf("kills = %d completes = %d, want exactly 1 each", kills, completes)
	}
	if finishes != 0 {
		t.Errorf("OnFinish fired %d times on kill, want 0", finishes)
	}

	// A killed tween never writes again.
	before := target.writes
	tick(s, time.Second)
	if target.writes != before {
		t.Error("killed tween wrote after death")
	}
}

func TestTween_KillAfterFinishIsNoOp(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	completes := 0
	tw := s.Float64(target.read, target.write, 1, 100*time.Millisecond).
		OnComplete(func() { completes++ })

	tick(s, 200*time.Millisecond)
	tw.Kill()

	if completes != 1 {
		t.Errorf("completes = %d, want 1", completes)
	}
	if tw.State() != StateFinished {
		t.Errorf("state = %v; kill must not demote a finished tween", tw.State())
	}
}

func TestTween_SettersIgnoredAfterStart(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	tw := s.Float64(target.read, target.write, 10, time.Second)
	tick(s, 100*time.Millisecond)

	tw.SetCurve(Elastic).SetDelay(time.Hour).UseUnscaledTime(true)

	tick(s, 400*time.Millisecond)
	// Still linear, still scaled, no new delay: halfway means 5.
	if math.Abs(target.value-5) > 0.001 {
		t.Errorf("value = %v, want 5 (setters must be inert after start)", target.value)
	}
}

func TestVec3_ElasticOvershootIsStraightLine(t *testing.T) {
	s := NewScheduler()
	pos := geometry.Vec3{}

	// A curve pinned at 1.2 isolates the overshoot behavior from timing.
	fixed := Curve(func(float64) float64 { return 1.2 })
	s.Vec3(
		func() geometry.Vec3 { return pos },
		func(v geometry.Vec3) { pos = v },
		geometry.Vec3{X: 10}, time.Second,
	).SetCurve(fixed)

	tick(s, 500*time.Millisecond)
	want := geometry.Vec3{X: 12}
	if !pos.Equals(want) {
		t.Errorf("overshoot position = %+v, want %+v (on-axis)", pos, want)
	}
	if pos.Y != 0 || pos.Z != 0 {
		t.Errorf("overshoot diverged off-axis: %+v", pos)
	}
}

func TestVec2_Midpoint(t *testing.T) {
	s := NewScheduler()
	pos := geometry.Vec2{X: 2, Y: 2}

	s.Vec2(
		func() geometry.Vec2 { return pos },
		func(v geometry.Vec2) { pos = v },
		geometry.Vec2{X: 6, Y: 10}, time.Second,
	)

	tick(s, 500*time.Millisecond)
	if !pos.Equals(geometry.Vec2{X: 4, Y: 6}) {
		t.Errorf("midpoint = %+v", pos)
	}
}

func TestColor_OvershootClampsPerChannel(t *testing.T) {
	s := NewScheduler()
	c := graphics.RGB(0, 0.5, 1)

	fixed := Curve(func(float64) float64 { return 1.2 })
	s.Color(
		func() graphics.Color { return c },
		func(v graphics.Color) { c = v },
		graphics.RGB(1, 0.5, 0), time.Second,
	).SetCurve(fixed)

	tick(s, 500*time.Millisecond)
	// R would reach 1.2 and B -0.2; both clamp, G is unaffected.
	want := graphics.Color{R: 1, G: 0.5, B: 0, A: 1}
	if !c.Equals(want) {
		t.Errorf("color = %+v, want %+v (per-channel clamp)", c, want)
	}
}

func TestList_AutoRemoval(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}
	list := NewList()

	finished := s.Float64(target.read, target.write, 1, 100*time.Millisecond).LinkToList(list)
	killed := s.Float64(target.read, target.write, 2, time.Second).LinkToList(list)

	if list.Len() != 2 {
		t.Fatalf("list length = %d, want 2", list.Len())
	}

	tick(s, 100*time.Millisecond)
	if list.Len() != 1 {
		t.Errorf("list length = %d after natural finish, want 1", list.Len())
	}
	if list.Contains(finished) {
		t.Error("finished tween still linked")
	}

	killed.Kill()
	if list.Len() != 0 {
		t.Errorf("list length = %d after kill, want 0", list.Len())
	}
}

func TestList_KillAll(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}
	list := NewList()

	completes := 0
	for range 3 {
		s.Float64(target.read, target.write, 1, time.Second).
			OnComplete(func() { completes++ }).
			LinkToList(list)
	}

	list.KillAll()
	if completes != 3 {
		t.Errorf("completes = %d, want 3", completes)
	}
	if list.Len() != 0 {
		t.Errorf("list length = %d, want 0", list.Len())
	}
	if s.Len() != 0 {
		t.Errorf("scheduler length = %d, want 0", s.Len())
	}
}

func TestAnimate_Generic(t *testing.T) {
	s := NewScheduler()
	v := 0.0

	Animate(s,
		func() float64 { return v },
		func(nv float64) { v = nv },
		8.0, time.Second,
	)
	tick(s, 250*time.Millisecond)
	if math.Abs(v-2) > 0.001 {
		t.Errorf("value = %v, want 2", v)
	}

	pos := geometry.Vec2{}
	Animate(s,
		func() geometry.Vec2 { return pos },
		func(nv geometry.Vec2) { pos = nv },
		geometry.Vec2{X: 4}, time.Second,
	)
	tick(s, 500*time.Millisecond)
	if !pos.Equals(geometry.Vec2{X: 2}) {
		t.Errorf("pos = %+v", pos)
	}
}

func TestAnimateAny_SupportedAndUnsupported(t *testing.T) {
	s := NewScheduler()
	v := any(0.0)

	tw, err := s.AnimateAny(
		func() any { return v },
		func(nv any) { v = nv },
		10.0, time.Second,
	)
	if err != nil {
		t.Fatalf("float64 should be supported: %v", err)
	}
	tick(s, 500*time.Millisecond)
	if got := v.(float64); math.Abs(got-5) > 0.001 {
		t.Errorf("value = %v, want 5", got)
	}
	tw.Kill()

	// An unsupported kind fails at construction, before scheduling.
	_, err = s.AnimateAny(func() any { return "a" }, func(any) {}, "b", time.Second)
	if err == nil {
		t.Fatal("expected error for unsupported value type")
	}
	if !errors.Is(err, errors.ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("rejected tween must not be scheduled")
	}
}

func TestTween_UnscaledTimeUnderFrozenTimeScale(t *testing.T) {
	s := NewScheduler()
	scaledTarget := &scalar{}
	unscaledTarget := &scalar{}

	s.Float64(scaledTarget.read, scaledTarget.write, 10, time.Second)
	s.Float64(unscaledTarget.read, unscaledTarget.write, 10, time.Second).
		UseUnscaledTime(true)

	s.SetTimeScale(0)
	for range 10 {
		s.Advance(100 * time.Millisecond)
	}

	if scaledTarget.writes != 0 {
		t.Errorf("scaled tween wrote %d times under frozen time", scaledTarget.writes)
	}
	if unscaledTarget.value != 10 {
		t.Errorf("unscaled value = %v, want 10", unscaledTarget.value)
	}
}

func TestScheduler_TimeScaleHalvesProgress(t *testing.T) {
	s := NewScheduler()
	target := &scalar{}

	s.Float64(target.read, target.write, 10, time.Second)
	s.SetTimeScale(0.5)

	s.Advance(time.Second) // scaled delta is 500ms
	if math.Abs(target.value-5) > 0.001 {
		t.Errorf("value = %v, want 5 at half time scale", target.value)
	}
}
