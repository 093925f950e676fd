package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/events"
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/testing/internal/testbed"
)

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTester(t)

	size := tester.Surface().Size()
	if size.Width != DefaultWidth || size.Height != DefaultHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultWidth, DefaultHeight, size.Width, size.Height)
	}
	if tester.Clock() == nil {
		t.Fatal("expected fake clock to be set")
	}
	if tester.Instance() != nil {
		t.Error("expected no instance before Mount")
	}
}

func TestMount_PumpsFirstFrame(t *testing.T) {
	tester := NewTester(t)

	err := tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At:    graphics.RectFromLTWH(0, 0, 60, 40),
		Color: graphics.RGB(255, 0, 0),
	}))
	if err != nil {
		t.Fatal(err)
	}

	if tester.Instance() == nil {
		t.Fatal("expected instance after Mount")
	}
	want := []string{
		"clear #00000000",
		"save",
		"draw_rect [0 0 60 40] fill #ffff0000",
		"restore",
	}
	if diff := cmp.Diff(want, tester.Ops()); diff != "" {
		t.Errorf("first frame ops mismatch (-want +got):\n%s", diff)
	}
}

func TestMount_ReplacesPreviousTree(t *testing.T) {
	tester := NewTester(t)

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 10, 10), Color: graphics.RGB(255, 0, 0),
	}))
	first := tester.Instance()

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 10, 10), Color: graphics.RGB(0, 255, 0),
	}))

	if tester.Instance() == first {
		t.Error("expected a fresh instance after remount")
	}
}

func TestMount_ContextFailure(t *testing.T) {
	tester := NewTester(t)
	boom := errors.New("context lost")
	tester.Surface().FailContext(boom)

	err := tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{}))
	if err == nil {
		t.Fatal("expected Mount to fail when the surface has no context")
	}
	if tester.Instance() != nil {
		t.Error("expected no instance after failed Mount")
	}
}

func TestClick_IncrementsCounter(t *testing.T) {
	tester := NewTester(t)

	var clicks []int
	tester.Mount(core.Of(testbed.Counter, testbed.CounterProps{
		At:      graphics.RectFromLTWH(10, 10, 80, 30),
		OnClick: func(n int) { clicks = append(clicks, n) },
	}))

	tester.Click(50, 25)
	tester.Pump()
	tester.Click(50, 25)
	tester.Pump()

	if diff := cmp.Diff([]int{1, 2}, clicks); diff != "" {
		t.Errorf("click counts mismatch (-want +got):\n%s", diff)
	}

	wantOp := `draw_text "2" (14, 14) left alphabetic fill #ffffffff`
	found := false
	for _, op := range tester.Ops() {
		if op == wantOp {
			found = true
		}
	}
	if !found {
		t.Errorf("expected op %q in last frame, got %v", wantOp, tester.Ops())
	}
}

func TestClick_OutsideRegionIsIgnored(t *testing.T) {
	tester := NewTester(t)

	var clicks []int
	tester.Mount(core.Of(testbed.Counter, testbed.CounterProps{
		At:      graphics.RectFromLTWH(10, 10, 80, 30),
		OnClick: func(n int) { clicks = append(clicks, n) },
	}))

	tester.Click(5, 5)
	tester.Pump()

	if len(clicks) != 0 {
		t.Errorf("expected no clicks outside the region, got %v", clicks)
	}
}

func TestClick_ScaledSurface(t *testing.T) {
	tester := NewTester(t)
	tester.Surface().SetScale(2)

	var clicks []int
	tester.Mount(core.Of(testbed.Counter, testbed.CounterProps{
		At:      graphics.RectFromLTWH(10, 10, 80, 30),
		OnClick: func(n int) { clicks = append(clicks, n) },
	}))

	// Physical (100, 50) is logical (50, 25), inside the region.
	tester.Click(100, 50)
	// Physical (30, 15) is logical (15, 7.5), outside it.
	tester.Click(30, 15)
	tester.Pump()

	if diff := cmp.Diff([]int{1}, clicks); diff != "" {
		t.Errorf("scaled click mismatch (-want +got):\n%s", diff)
	}
}

func TestPressRelease_DeliversInOrder(t *testing.T) {
	tester := NewTester(t)

	var seen []string
	comp := func(rc *core.RenderContext, _ struct{}) core.Children {
		core.UseEvent(rc, events.TypeMouseDown, func(ev events.Event) {
			seen = append(seen, "down")
		}, core.EventOptions{})
		core.UseEvent(rc, events.TypeMouseUp, func(ev events.Event) {
			seen = append(seen, "up")
		}, core.EventOptions{})
		return core.None()
	}
	tester.Mount(core.Of(comp, struct{}{}))

	tester.Press(5, 5)
	tester.Release(5, 5)

	if diff := cmp.Diff([]string{"down", "up"}, seen); diff != "" {
		t.Errorf("press/release order mismatch (-want +got):\n%s", diff)
	}
}

func TestWheel_CarriesDeltas(t *testing.T) {
	tester := NewTester(t)

	var deltas []graphics.Offset
	comp := func(rc *core.RenderContext, _ struct{}) core.Children {
		core.UseEvent(rc, events.TypeWheel, func(ev events.Event) {
			deltas = append(deltas, graphics.Offset{X: ev.DeltaX, Y: ev.DeltaY})
		}, core.EventOptions{})
		return core.None()
	}
	tester.Mount(core.Of(comp, struct{}{}))

	tester.Wheel(10, 10, 0, -3)

	if diff := cmp.Diff([]graphics.Offset{{X: 0, Y: -3}}, deltas); diff != "" {
		t.Errorf("wheel deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveTo_DrivesHoverAndCursor(t *testing.T) {
	tester := NewTester(t)

	comp := func(rc *core.RenderContext, _ struct{}) core.Children {
		shape := graphics.NewPath()
		shape.AddRect(graphics.RectFromLTWH(0, 0, 30, 30))
		core.UseCursor(rc, "pointer", core.EventOptions{Path: shape, IncludeFill: true})
		return core.None()
	}
	tester.Mount(core.Of(comp, struct{}{}))

	tester.MoveTo(10, 10)
	if tester.Cursor() != "pointer" {
		t.Fatalf("expected pointer cursor over the region, got %q", tester.Cursor())
	}

	tester.MoveTo(50, 50)
	if tester.Cursor() != "" {
		t.Errorf("expected default cursor off the region, got %q", tester.Cursor())
	}

	tester.MoveTo(10, 10)
	tester.Leave()
	if tester.Cursor() != "" {
		t.Errorf("expected default cursor after Leave, got %q", tester.Cursor())
	}
}

func TestPointerBeforeMount_IsNoOp(t *testing.T) {
	tester := NewTester(t)
	tester.Click(5, 5)
	tester.Leave()
}

func TestPumpAndSettle_IdleTree(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 10, 10), Color: graphics.RGB(0, 0, 0),
	}))

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle for a static tree, got: %v", err)
	}
}

func TestPumpAndSettle_FiniteAnimation(t *testing.T) {
	tester := NewTester(t)

	ticks := 0
	tester.Mount(core.Of(testbed.Pulse, testbed.PulseProps{Frames: 4, Ticks: &ticks}))

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("expected settle once the animation finishes, got: %v", err)
	}
	if ticks != 4 {
		t.Errorf("expected 4 renders before settling, got %d", ticks)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Pulse, testbed.PulseProps{}))

	err := tester.PumpAndSettle(200 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("expected ErrSettleTimeout for a tree that never settles, got %v", err)
	}
}
