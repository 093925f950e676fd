// Package easel documents the easel component framework.
//
// Easel is a retained-mode component layer over an immediate-mode 2D
// canvas. Components are plain functions that draw and return child
// elements; easel re-runs them on every frame, keeps per-component state
// alive between runs through hooks, and registers hit-test regions so
// pointer events reach the component that drew the shape.
//
// The framework is split into focused packages:
//
//   - core: elements, hooks, the render loop, instances, and layers.
//   - anim: tween-backed animation hooks (UseProgress, UseValue).
//   - graphics: geometry, paths, colors, text, and the recording canvas.
//   - events: the pointer event registry and hit testing.
//   - errors: the error taxonomy and process-wide error handlers.
//   - testing: TestSurface, Tester, fake clock, and snapshot goldens.
//
// # Quick Start
//
// A component draws through the render context and returns its children:
//
//	func Dot(rc *core.RenderContext, p DotProps) core.Children {
//		rc.Canvas().DrawCircle(p.Center, p.Radius, graphics.Fill(p.Color))
//		return core.None()
//	}
//
// Mounting binds an element tree to a surface and starts the frame loop:
//
//	inst, err := core.Mount(surface, core.Of(Dot, DotProps{
//		Center: graphics.Offset{X: 50, Y: 50},
//		Radius: 10,
//		Color:  graphics.RGB(255, 0, 0),
//	}))
//
// The examples in this package show the pieces working together; each
// subpackage documents its own surface in more depth.
package easel
