package graphics

import (
	"fmt"
	"strings"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// FillRule determines how path interiors are calculated for filling
// and for point containment tests.
type FillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	// A point is inside if a ray from it crosses more left-to-right edges
	// than right-to-left edges (or vice versa).
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing, clipping, or hit testing
// arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect, AddCircle, and AddEllipse shorthands. Use with Canvas.DrawPath
// to stroke/fill, Canvas.ClipPath to clip, or PointInFill/PointInStroke
// for containment tests.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// kappa approximates a quarter circle with a cubic bezier.
const kappa = 0.5522847498307936

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddCircle appends a closed circular subpath centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, radius float64) {
	p.AddEllipse(cx, cy, radius, radius)
}

// AddEllipse appends a closed elliptical subpath centered at (cx, cy)
// with the given horizontal and vertical radii.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path. Mutating the original afterwards
// does not affect the copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Bounds returns the control-point bounding box of the path. Curves are
// bounded by their control polygons, so the result is conservative: it may
// be larger than the exact extent but never smaller.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	first := true
	var b Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				b = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			if x < b.Left {
				b.Left = x
			}
			if x > b.Right {
				b.Right = x
			}
			if y < b.Top {
				b.Top = y
			}
			if y > b.Bottom {
				b.Bottom = y
			}
		}
	}
	return b
}

// String returns an SVG-style dump like "M 0 0 L 10 0 Z", useful in
// test failures and op listings.
func (p *Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch cmd.Op {
		case PathOpMoveTo:
			fmt.Fprintf(&sb, "M %g %g", cmd.Args[0], cmd.Args[1])
		case PathOpLineTo:
			fmt.Fprintf(&sb, "L %g %g", cmd.Args[0], cmd.Args[1])
		case PathOpQuadTo:
			fmt.Fprintf(&sb, "Q %g %g %g %g", cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3])
		case PathOpCubicTo:
			fmt.Fprintf(&sb, "C %g %g %g %g %g %g", cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
		case PathOpClose:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}
