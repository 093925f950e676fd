package graphics

import "image"

// ClipEntry records one active clip region together with the transform
// under which it was established.
type ClipEntry struct {
	Path      *Path
	Rule      FillRule
	Transform Matrix
}

// Contains reports whether the given point, expressed in the untransformed
// canvas space, lies inside the clip region.
func (e ClipEntry) Contains(pt Offset) bool {
	local := e.Transform.Invert().TransformPoint(pt)
	return PointInFill(e.Path, local, e.Rule)
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// Skew shears the coordinate system by the given tangents.
	Skew(sx, sy float64)

	// Transform returns the current accumulated transform.
	Transform() Matrix

	// SetTransform replaces the current transform.
	SetTransform(m Matrix)

	// ClipPath restricts future drawing to the path interior under the
	// given fill rule. The clip stays active until the enclosing Restore.
	ClipPath(path *Path, rule FillRule)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipStack returns the active clip regions, outermost first. The
	// returned slice is a snapshot that stays valid after further drawing.
	ClipStack() []ClipEntry

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(from, to Offset, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a string anchored at the given position.
	DrawText(text string, at Offset, style TextStyle, paint Paint)

	// DrawImage draws an image scaled into the destination rectangle.
	DrawImage(img image.Image, dst Rect)

	// MeasureText measures a string with the style's face without drawing.
	MeasureText(text string, style TextStyle) TextMetrics

	// IsPointInFill reports whether the point, expressed in the
	// untransformed canvas space, lies inside the path's fill under the
	// current transform.
	IsPointInFill(path *Path, pt Offset, rule FillRule) bool

	// IsPointInStroke reports whether the point, expressed in the
	// untransformed canvas space, lies on the path's stroke of the given
	// width under the current transform.
	IsPointInStroke(path *Path, pt Offset, width float64) bool

	// Size returns the size of the canvas in logical pixels.
	Size() Size
}
