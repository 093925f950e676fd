package core

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
)

type dotProps struct {
	Renders *int
}

func layerDot(rc *RenderContext, props dotProps) Children {
	*props.Renders++
	rc.Canvas().DrawCircle(graphics.Offset{X: 5, Y: 5}, 3, graphics.Fill(graphics.ColorRed))
	return None()
}

type layerCounterProps struct {
	Seen   *[]int
	Setter *Setter[int]
	Notify *bool
}

func layerCounter(rc *RenderContext, props layerCounterProps) Children {
	count, set := UseState(rc, 0)
	*props.Setter = set
	*props.Seen = append(*props.Seen, count)
	if props.Notify != nil && *props.Notify {
		rc.RequestParentRender()
	}
	return None()
}

func TestLayerRendersNestedTreeAndComposes(t *testing.T) {
	s := newFakeSurface(200, 200)
	renders := 0
	_, err := Mount(s, New(func(rc *RenderContext) Children {
		return One(Layer(LayerProps{
			At:   graphics.Offset{X: 30, Y: 40},
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(layerDot, dotProps{Renders: &renders}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()

	if len(s.layers) != 1 {
		t.Fatalf("layers created = %d, want 1", len(s.layers))
	}
	l := s.layers[0]
	if renders != 1 {
		t.Errorf("nested renders = %d, want 1", renders)
	}
	if diff := cmp.Diff([]graphics.Offset{{X: 30, Y: 40}}, l.composes); diff != "" {
		t.Errorf("composes (-want +got):\n%s", diff)
	}

	// The nested content replays into the parent frame at the offset.
	ops := s.rec.List().Strings()
	var hasOffset, hasDot bool
	for _, op := range ops {
		if op == "translate 30 40" {
			hasOffset = true
		}
		if strings.HasPrefix(op, "draw_circle (5, 5)") {
			hasDot = true
		}
	}
	if !hasOffset || !hasDot {
		t.Errorf("composited frame missing layer content:\n%v", ops)
	}
}

func TestLayerComposesCachedOutputWhenUnchanged(t *testing.T) {
	s := newFakeSurface(200, 200)
	renders := 0
	in, err := Mount(s, New(func(rc *RenderContext) Children {
		return One(Layer(LayerProps{
			At:   graphics.Offset{X: 10, Y: 10},
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(layerDot, dotProps{Renders: &renders}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()
	in.RequestRender()
	s.pump()
	in.RequestRender()
	s.pump()

	if renders != 1 {
		t.Errorf("nested renders = %d, want 1 (output should be cached)", renders)
	}
	if got := len(s.layers[0].composes); got != 3 {
		t.Errorf("composes = %d, want one per parent frame", got)
	}
}

func TestLayerResizeReRendersNestedTree(t *testing.T) {
	s := newFakeSurface(200, 200)
	renders := 0
	size := graphics.Size{Width: 50, Height: 50}
	in, err := Mount(s, New(func(rc *RenderContext) Children {
		return One(Layer(LayerProps{
			Size: size,
			Root: Of(layerDot, dotProps{Renders: &renders}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()

	size = graphics.Size{Width: 80, Height: 80}
	in.RequestRender()
	s.pump()

	l := s.layers[0]
	if diff := cmp.Diff([]graphics.Size{{Width: 80, Height: 80}}, l.resizes); diff != "" {
		t.Errorf("resizes (-want +got):\n%s", diff)
	}
	if renders != 2 {
		t.Errorf("nested renders = %d, want 2 after resize", renders)
	}
}

func TestLayerRootChangeReRendersNestedTree(t *testing.T) {
	s := newFakeSurface(200, 200)
	var got string
	text := "a"
	in, err := Mount(s, New(func(rc *RenderContext) Children {
		return One(Layer(LayerProps{
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(labelComp, labelProps{Text: text, Seen: &got}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()
	if got != "a" {
		t.Fatalf("nested render saw %q, want %q", got, "a")
	}

	text = "b"
	in.RequestRender()
	s.pump()
	if got != "b" {
		t.Errorf("nested render saw %q, want %q after props change", got, "b")
	}
}

func TestLayerStateSchedulesNestedInstanceOnly(t *testing.T) {
	s := newFakeSurface(200, 200)
	var seen []int
	var set Setter[int]
	notify := false
	parentRenders := 0
	_, err := Mount(s, New(func(rc *RenderContext) Children {
		parentRenders++
		return One(Layer(LayerProps{
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(layerCounter, layerCounterProps{Seen: &seen, Setter: &set, Notify: &notify}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()
	if parentRenders != 1 || len(seen) != 1 {
		t.Fatalf("after mount: parent %d nested %d, want 1 and 1", parentRenders, len(seen))
	}

	l := s.layers[0]
	set.Set(1)
	if got := s.pending(); got != 0 {
		t.Fatalf("nested state change scheduled the parent: pending = %d", got)
	}
	if got := l.pending(); got != 1 {
		t.Fatalf("nested state change pending on layer = %d, want 1", got)
	}
	l.pump()
	if diff := cmp.Diff([]int{0, 1}, seen); diff != "" {
		t.Errorf("nested values (-want +got):\n%s", diff)
	}
	if parentRenders != 1 {
		t.Errorf("parent re-rendered from a nested state change: %d", parentRenders)
	}
}

func TestRequestParentRenderReachesParent(t *testing.T) {
	s := newFakeSurface(200, 200)
	var seen []int
	var set Setter[int]
	notify := false
	parentRenders := 0
	_, err := Mount(s, New(func(rc *RenderContext) Children {
		parentRenders++
		return One(Layer(LayerProps{
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(layerCounter, layerCounterProps{Seen: &seen, Setter: &set, Notify: &notify}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()

	notify = true
	set.Set(1)
	s.layers[0].pump()
	if got := s.pending(); got != 1 {
		t.Fatalf("RequestParentRender scheduled %d parent frames, want 1", got)
	}
	s.pump()
	if parentRenders != 2 {
		t.Errorf("parent renders = %d, want 2", parentRenders)
	}
	// The parent re-composite alone must not re-render the nested tree.
	if diff := cmp.Diff([]int{0, 1}, seen); diff != "" {
		t.Errorf("nested values (-want +got):\n%s", diff)
	}
}

func TestLayerUnmountDestroysNestedInstance(t *testing.T) {
	s := newFakeSurface(200, 200)
	var log []string
	show := true
	in, err := Mount(s, New(func(rc *RenderContext) Children {
		if !show {
			return None()
		}
		return One(Layer(LayerProps{
			Size: graphics.Size{Width: 50, Height: 50},
			Root: Of(effectComp, effectProps{Name: "nested", Log: &log}),
		}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()
	if diff := cmp.Diff([]string{"nested:mount"}, log); diff != "" {
		t.Fatalf("nested mount (-want +got):\n%s", diff)
	}

	show = false
	in.RequestRender()
	s.pump()
	if diff := cmp.Diff([]string{"nested:mount", "nested:teardown"}, log); diff != "" {
		t.Errorf("nested lifecycle (-want +got):\n%s", diff)
	}
}

func TestLayerCreateFailureIsReportedAndNonFatal(t *testing.T) {
	recorder := &errorRecorder{}
	errors.SetHandler(recorder)
	defer errors.SetHandler(nil)

	s := newFakeSurface(200, 200)
	s.layerErr = stderrors.New("offscreen unavailable")
	rendered := false
	_, err := Mount(s, New(func(rc *RenderContext) Children {
		rendered = true
		return One(Layer(LayerProps{Size: graphics.Size{Width: 50, Height: 50}}))
	}))
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	s.pump()

	if !rendered {
		t.Error("parent did not render")
	}
	if len(recorder.frames) != 0 {
		t.Errorf("layer failure failed the frame: %v", recorder.frames)
	}
	if len(recorder.errs) != 1 {
		t.Fatalf("reported errors = %d, want 1", len(recorder.errs))
	}
	ee := recorder.errs[0]
	if ee.Op != "core.Layer" || ee.Kind != errors.KindRender {
		t.Errorf("error = %v, want core.Layer render failure", ee)
	}
}
