package graphics

import "fmt"

// PaintStyle describes whether shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// Paint describes how a shape is drawn.
type Paint struct {
	// Style selects filling or stroking.
	Style PaintStyle
	// Color is the fill or stroke color.
	Color Color
	// StrokeWidth is the stroke thickness in logical pixels.
	// Ignored when Style is PaintStyleFill.
	StrokeWidth float64
	// StrokeCap controls stroke endpoint rendering.
	StrokeCap StrokeCap
	// StrokeJoin controls stroke corner rendering.
	StrokeJoin StrokeJoin
}

// Fill returns a fill paint with the given color.
func Fill(color Color) Paint {
	return Paint{Style: PaintStyleFill, Color: color}
}

// Stroke returns a stroke paint with the given color and width.
func Stroke(color Color, width float64) Paint {
	return Paint{Style: PaintStyleStroke, Color: color, StrokeWidth: width}
}

// String returns a compact representation like "fill #ff112233" or
// "stroke #ff112233 w=2".
func (p Paint) String() string {
	if p.Style == PaintStyleStroke {
		return fmt.Sprintf("%s %s w=%g", p.Style, p.Color, p.StrokeWidth)
	}
	return fmt.Sprintf("%s %s", p.Style, p.Color)
}
