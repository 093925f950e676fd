package testbed

import (
	"strconv"

	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/events"
	"github.com/go-easel/easel/pkg/graphics"
)

// CounterProps configure Counter.
type CounterProps struct {
	At      graphics.Rect
	Initial int
	OnClick func(count int)
}

// Counter is a stateful component that draws a labelled box and increments
// its count on click.
func Counter(rc *core.RenderContext, p CounterProps) core.Children {
	count, setCount := core.UseState(rc, p.Initial)

	shape := graphics.NewPath()
	shape.AddRect(p.At)
	core.UseEvent(rc, events.TypeClick, func(events.Event) {
		next := count + 1
		setCount.Set(next)
		if p.OnClick != nil {
			p.OnClick(next)
		}
	}, core.EventOptions{Path: shape, IncludeFill: true})

	canvas := rc.Canvas()
	canvas.DrawRect(p.At, graphics.Fill(graphics.RGB(40, 90, 200)))
	canvas.DrawText(strconv.Itoa(count),
		graphics.Offset{X: p.At.Left + 4, Y: p.At.Top + 4},
		graphics.TextStyle{}, graphics.Fill(graphics.RGB(255, 255, 255)))
	return core.None()
}
