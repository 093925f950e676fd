package graphics

import (
	"fmt"
	"image"
	"math"
)

// displayOp is one recorded canvas operation. base is the destination
// transform at the start of replay, needed to rebase absolute transforms
// when a list recorded in layer space is composed into a parent.
type displayOp interface {
	execute(dst Canvas, base Matrix)
	String() string
}

type saveOp struct{}

func (saveOp) execute(dst Canvas, _ Matrix) { dst.Save() }
func (saveOp) String() string               { return "save" }

type restoreOp struct{}

func (restoreOp) execute(dst Canvas, _ Matrix) { dst.Restore() }
func (restoreOp) String() string               { return "restore" }

type translateOp struct{ dx, dy float64 }

func (o translateOp) execute(dst Canvas, _ Matrix) { dst.Translate(o.dx, o.dy) }
func (o translateOp) String() string {
	return fmt.Sprintf("translate %g %g", round2(o.dx), round2(o.dy))
}

type scaleOp struct{ sx, sy float64 }

func (o scaleOp) execute(dst Canvas, _ Matrix) { dst.Scale(o.sx, o.sy) }
func (o scaleOp) String() string {
	return fmt.Sprintf("scale %g %g", round2(o.sx), round2(o.sy))
}

type rotateOp struct{ radians float64 }

func (o rotateOp) execute(dst Canvas, _ Matrix) { dst.Rotate(o.radians) }
func (o rotateOp) String() string {
	return fmt.Sprintf("rotate %g", round2(o.radians))
}

type skewOp struct{ sx, sy float64 }

func (o skewOp) execute(dst Canvas, _ Matrix) { dst.Skew(o.sx, o.sy) }
func (o skewOp) String() string {
	return fmt.Sprintf("skew %g %g", round2(o.sx), round2(o.sy))
}

type setTransformOp struct{ m Matrix }

func (o setTransformOp) execute(dst Canvas, base Matrix) { dst.SetTransform(base.Multiply(o.m)) }
func (o setTransformOp) String() string {
	return fmt.Sprintf("set_transform %s", fmtMatrix(o.m))
}

type clipPathOp struct {
	path *Path
	rule FillRule
}

func (o clipPathOp) execute(dst Canvas, _ Matrix) { dst.ClipPath(o.path, o.rule) }
func (o clipPathOp) String() string {
	return fmt.Sprintf("clip_path %s %s", o.rule, o.path)
}

type clipRectOp struct{ rect Rect }

func (o clipRectOp) execute(dst Canvas, _ Matrix) { dst.ClipRect(o.rect) }
func (o clipRectOp) String() string {
	return fmt.Sprintf("clip_rect %s", fmtRect(o.rect))
}

type clearOp struct{ color Color }

func (o clearOp) execute(dst Canvas, _ Matrix) { dst.Clear(o.color) }
func (o clearOp) String() string {
	return fmt.Sprintf("clear %s", o.color)
}

type drawRectOp struct {
	rect  Rect
	paint Paint
}

func (o drawRectOp) execute(dst Canvas, _ Matrix) { dst.DrawRect(o.rect, o.paint) }
func (o drawRectOp) String() string {
	return fmt.Sprintf("draw_rect %s %s", fmtRect(o.rect), o.paint)
}

type drawCircleOp struct {
	center Offset
	radius float64
	paint  Paint
}

func (o drawCircleOp) execute(dst Canvas, _ Matrix) { dst.DrawCircle(o.center, o.radius, o.paint) }
func (o drawCircleOp) String() string {
	return fmt.Sprintf("draw_circle (%g, %g) r=%g %s",
		round2(o.center.X), round2(o.center.Y), round2(o.radius), o.paint)
}

type drawLineOp struct {
	from, to Offset
	paint    Paint
}

func (o drawLineOp) execute(dst Canvas, _ Matrix) { dst.DrawLine(o.from, o.to, o.paint) }
func (o drawLineOp) String() string {
	return fmt.Sprintf("draw_line (%g, %g) (%g, %g) %s",
		round2(o.from.X), round2(o.from.Y), round2(o.to.X), round2(o.to.Y), o.paint)
}

type drawPathOp struct {
	path  *Path
	paint Paint
}

func (o drawPathOp) execute(dst Canvas, _ Matrix) { dst.DrawPath(o.path, o.paint) }
func (o drawPathOp) String() string {
	return fmt.Sprintf("draw_path %s %s", o.path, o.paint)
}

type drawTextOp struct {
	text  string
	at    Offset
	style TextStyle
	paint Paint
}

func (o drawTextOp) execute(dst Canvas, _ Matrix) { dst.DrawText(o.text, o.at, o.style, o.paint) }
func (o drawTextOp) String() string {
	return fmt.Sprintf("draw_text %q (%g, %g) %s %s %s",
		o.text, round2(o.at.X), round2(o.at.Y), o.style.Align, o.style.Baseline, o.paint)
}

type drawImageOp struct {
	img image.Image
	dst Rect
}

func (o drawImageOp) execute(dst Canvas, _ Matrix) { dst.DrawImage(o.img, o.dst) }
func (o drawImageOp) String() string {
	b := o.img.Bounds()
	return fmt.Sprintf("draw_image %dx%d %s", b.Dx(), b.Dy(), fmtRect(o.dst))
}

// recorderState is one saved transform and clip snapshot.
type recorderState struct {
	transform Matrix
	clipDepth int
}

// Recorder is a Canvas that records operations into a DisplayList instead
// of rasterizing them. It tracks the accumulated transform and clip stack
// so registration-time state can be captured during recording.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	size      Size
	ops       []displayOp
	transform Matrix
	saves     []recorderState
	clips     []ClipEntry
}

// NewRecorder creates an empty recorder for a surface of the given size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size, transform: Identity()}
}

// Reset discards all recorded operations and state, keeping the size.
func (c *Recorder) Reset() {
	c.ops = c.ops[:0]
	c.transform = Identity()
	c.saves = c.saves[:0]
	c.clips = c.clips[:0]
}

// List returns the recorded operations as a DisplayList. The list is
// detached: further recording or Reset does not affect it.
func (c *Recorder) List() *DisplayList {
	ops := make([]displayOp, len(c.ops))
	copy(ops, c.ops)
	return &DisplayList{ops: ops, size: c.size}
}

func (c *Recorder) Save() {
	c.saves = append(c.saves, recorderState{transform: c.transform, clipDepth: len(c.clips)})
	c.ops = append(c.ops, saveOp{})
}

func (c *Recorder) Restore() {
	if len(c.saves) == 0 {
		return
	}
	state := c.saves[len(c.saves)-1]
	c.saves = c.saves[:len(c.saves)-1]
	c.transform = state.transform
	c.clips = c.clips[:state.clipDepth]
	c.ops = append(c.ops, restoreOp{})
}

func (c *Recorder) Translate(dx, dy float64) {
	c.transform = c.transform.Multiply(Translation(dx, dy))
	c.ops = append(c.ops, translateOp{dx: dx, dy: dy})
}

func (c *Recorder) Scale(sx, sy float64) {
	c.transform = c.transform.Multiply(Scaling(sx, sy))
	c.ops = append(c.ops, scaleOp{sx: sx, sy: sy})
}

func (c *Recorder) Rotate(radians float64) {
	c.transform = c.transform.Multiply(Rotation(radians))
	c.ops = append(c.ops, rotateOp{radians: radians})
}

func (c *Recorder) Skew(sx, sy float64) {
	c.transform = c.transform.Multiply(Shearing(sx, sy))
	c.ops = append(c.ops, skewOp{sx: sx, sy: sy})
}

func (c *Recorder) Transform() Matrix {
	return c.transform
}

func (c *Recorder) SetTransform(m Matrix) {
	c.transform = m
	c.ops = append(c.ops, setTransformOp{m: m})
}

func (c *Recorder) ClipPath(path *Path, rule FillRule) {
	clone := path.Clone()
	c.clips = append(c.clips, ClipEntry{Path: clone, Rule: rule, Transform: c.transform})
	c.ops = append(c.ops, clipPathOp{path: clone, rule: rule})
}

func (c *Recorder) ClipRect(rect Rect) {
	path := NewPath()
	path.AddRect(rect)
	c.clips = append(c.clips, ClipEntry{Path: path, Rule: FillRuleNonZero, Transform: c.transform})
	c.ops = append(c.ops, clipRectOp{rect: rect})
}

func (c *Recorder) ClipStack() []ClipEntry {
	if len(c.clips) == 0 {
		return nil
	}
	out := make([]ClipEntry, len(c.clips))
	copy(out, c.clips)
	return out
}

func (c *Recorder) Clear(color Color) {
	c.ops = append(c.ops, clearOp{color: color})
}

func (c *Recorder) DrawRect(rect Rect, paint Paint) {
	c.ops = append(c.ops, drawRectOp{rect: rect, paint: paint})
}

func (c *Recorder) DrawCircle(center Offset, radius float64, paint Paint) {
	c.ops = append(c.ops, drawCircleOp{center: center, radius: radius, paint: paint})
}

func (c *Recorder) DrawLine(from, to Offset, paint Paint) {
	c.ops = append(c.ops, drawLineOp{from: from, to: to, paint: paint})
}

func (c *Recorder) DrawPath(path *Path, paint Paint) {
	c.ops = append(c.ops, drawPathOp{path: path.Clone(), paint: paint})
}

func (c *Recorder) DrawText(text string, at Offset, style TextStyle, paint Paint) {
	c.ops = append(c.ops, drawTextOp{text: text, at: at, style: style, paint: paint})
}

func (c *Recorder) DrawImage(img image.Image, dst Rect) {
	c.ops = append(c.ops, drawImageOp{img: img, dst: dst})
}

func (c *Recorder) MeasureText(text string, style TextStyle) TextMetrics {
	return MeasureText(text, style.Face)
}

func (c *Recorder) IsPointInFill(path *Path, pt Offset, rule FillRule) bool {
	local := c.transform.Invert().TransformPoint(pt)
	return PointInFill(path, local, rule)
}

func (c *Recorder) IsPointInStroke(path *Path, pt Offset, width float64) bool {
	local := c.transform.Invert().TransformPoint(pt)
	return PointInStroke(path, local, width)
}

func (c *Recorder) Size() Size {
	return c.size
}

// DisplayList is an immutable sequence of recorded canvas operations that
// can be replayed onto another canvas any number of times.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Size returns the size the list was recorded at.
func (dl *DisplayList) Size() Size {
	return dl.size
}

// Len returns the number of recorded operations.
func (dl *DisplayList) Len() int {
	return len(dl.ops)
}

// Paint replays all recorded operations onto dst. Absolute transforms in
// the list are rebased onto dst's transform at the time of the call, so a
// list recorded in layer space composes correctly under a translated
// destination.
func (dl *DisplayList) Paint(dst Canvas) {
	base := dst.Transform()
	for _, op := range dl.ops {
		op.execute(dst, base)
	}
}

// Strings returns one line per recorded operation, in order. Coordinates
// are rounded to two decimals so dumps stay stable across platforms.
func (dl *DisplayList) Strings() []string {
	out := make([]string, len(dl.ops))
	for i, op := range dl.ops {
		out[i] = op.String()
	}
	return out
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func fmtRect(r Rect) string {
	return fmt.Sprintf("[%g %g %g %g]",
		round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom))
}

func fmtMatrix(m Matrix) string {
	return fmt.Sprintf("[%g %g %g %g %g %g]",
		round2(m.A), round2(m.B), round2(m.C), round2(m.D), round2(m.E), round2(m.F))
}
