// Package testbed provides internal test components for the testing
// framework.
package testbed

import (
	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/graphics"
)

// BadgeProps configure Badge.
type BadgeProps struct {
	At    graphics.Rect
	Color graphics.Color
}

// Badge draws a single filled rectangle.
func Badge(rc *core.RenderContext, p BadgeProps) core.Children {
	rc.Canvas().DrawRect(p.At, graphics.Fill(p.Color))
	return core.None()
}
