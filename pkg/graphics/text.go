package graphics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextBaseline controls vertical placement of text relative to its anchor.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// String returns a human-readable representation of the baseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return fmt.Sprintf("TextBaseline(%d)", int(b))
	}
}

// TextStyle describes how text is positioned and shaped.
type TextStyle struct {
	// Face is the font face used for shaping and measurement.
	// A nil Face falls back to DefaultFace.
	Face     font.Face
	Align    TextAlign
	Baseline TextBaseline
}

// TextMetrics holds measured text dimensions in logical pixels.
type TextMetrics struct {
	// Width is the advance width of the measured string.
	Width float64
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the line.
	Descent float64
}

// Height returns the total line height.
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// DefaultFace returns the bundled bitmap face used when a style does not
// provide one.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// MeasureText measures the given string with the given face. A nil face
// falls back to DefaultFace.
func MeasureText(text string, face font.Face) TextMetrics {
	if face == nil {
		face = DefaultFace()
	}
	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	return TextMetrics{
		Width:   fixedToFloat(advance),
		Ascent:  fixedToFloat(metrics.Ascent),
		Descent: fixedToFloat(metrics.Descent),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
