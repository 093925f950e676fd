package graphics

import "testing"

func TestPathBuilders(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10.5, 0)
	p.QuadTo(1, 2, 3, 4)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	wantOps := []PathOp{PathOpMoveTo, PathOpLineTo, PathOpQuadTo, PathOpCubicTo, PathOpClose}
	if len(p.Commands) != len(wantOps) {
		t.Fatalf("len(Commands) = %d, want %d", len(p.Commands), len(wantOps))
	}
	for i, op := range wantOps {
		if p.Commands[i].Op != op {
			t.Errorf("Commands[%d].Op = %s, want %s", i, p.Commands[i].Op, op)
		}
	}

	want := "M 0 0 L 10.5 0 Q 1 2 3 4 C 1 2 3 4 5 6 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathAddRect(t *testing.T) {
	p := NewPath()
	p.AddRect(RectFromLTWH(10, 20, 30, 40))

	if got := p.Bounds(); got != (Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}) {
		t.Errorf("Bounds() = %+v", got)
	}
	if p.Commands[len(p.Commands)-1].Op != PathOpClose {
		t.Error("AddRect did not close the subpath")
	}
}

func TestPathAddCircleBounds(t *testing.T) {
	p := NewPath()
	p.AddCircle(10, 10, 5)

	if got := p.Bounds(); got != (Rect{Left: 5, Top: 5, Right: 15, Bottom: 15}) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	clone := p.Clone()
	p.LineTo(5, 6)
	p.Commands[0].Args[0] = 99

	if got := clone.String(); got != "M 1 2 L 3 4" {
		t.Errorf("clone changed after mutating original: %q", got)
	}
	var nilPath *Path
	if nilPath.Clone() != nil {
		t.Error("Clone of nil path is not nil")
	}
}

func TestPathIsEmpty(t *testing.T) {
	var nilPath *Path
	if !nilPath.IsEmpty() {
		t.Error("nil path should be empty")
	}
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}
	p.MoveTo(0, 0)
	if p.IsEmpty() {
		t.Error("path with commands should not be empty")
	}
	p.Clear()
	if !p.IsEmpty() {
		t.Error("cleared path should be empty")
	}
}
