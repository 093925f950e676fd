package testbed

import (
	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/graphics"
)

// PulseProps configure Pulse.
type PulseProps struct {
	// Frames is how many renders Pulse runs before settling. Zero or
	// negative keeps animating forever.
	Frames int

	// Ticks, when non-nil, receives the render count.
	Ticks *int
}

// Pulse requests a render from every frame until it has rendered Frames
// times, driving pump and settle behavior in tests.
func Pulse(rc *core.RenderContext, p PulseProps) core.Children {
	ref := core.UseRef(rc, 0)
	ref.Current++
	if p.Ticks != nil {
		*p.Ticks = ref.Current
	}
	if p.Frames <= 0 || ref.Current < p.Frames {
		rc.RequestRender()
	}
	rc.Canvas().DrawCircle(graphics.Offset{X: 10, Y: 10}, float64(ref.Current), graphics.Fill(graphics.RGB(200, 60, 60)))
	return core.None()
}
