package core

import (
	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
)

// LayerProps configure a Layer element.
type LayerProps struct {
	// At is where the layer's top-left corner composites in the parent's
	// current coordinate space.
	At graphics.Offset

	// Size is the layer surface's logical size.
	Size graphics.Size

	// Root is the element tree rendered inside the layer.
	Root Element
}

// Layer returns an element that renders Root on its own offscreen surface
// and composites the result into the parent on every parent render. The
// nested tree re-renders synchronously when Size changes or Root stops
// being shallow-equal to the previous render's Root; otherwise the cached
// output composites as-is. State changes inside the nested tree schedule
// frames only on the nested instance; components there call
// RequestParentRender when the parent must pick up the new output.
//
// Root props containing funcs, slices, or maps never compare equal, so
// such layers re-render on every parent frame. Keep layer props to plain
// data for the caching to take effect.
func Layer(props LayerProps) Element {
	return Of(renderLayer, props)
}

// layerState is the bookkeeping kept alive across the layer node's
// renders.
type layerState struct {
	surface  LayerSurface
	nested   *Instance
	lastSize graphics.Size
	lastRoot Element
}

func renderLayer(rc *RenderContext, props LayerProps) Children {
	ref := UseRef[*layerState](rc, nil)

	UseWhenChanged(rc, func() func() {
		return func() {
			if s := ref.Current; s != nil {
				s.nested.Unmount()
				ref.Current = nil
			}
		}
	}, []any{})

	state := ref.Current
	if state == nil {
		surface, err := rc.inst.surface.CreateLayer(props.Size)
		if err != nil {
			errors.Report(&errors.EaselError{
				Op:         "core.Layer",
				Kind:       errors.KindRender,
				Err:        err,
				StackTrace: errors.CaptureStack(),
			})
			return None()
		}
		state = &layerState{
			surface:  surface,
			nested:   newInstance(surface, props.Root, rc.inst),
			lastSize: props.Size,
			lastRoot: props.Root,
		}
		ref.Current = state
		state.nested.renderFrame(rc.now)
	} else {
		rerender := false
		if props.Size != state.lastSize {
			state.surface.Resize(props.Size)
			state.lastSize = props.Size
			rerender = true
		}
		if !sameRoot(state.lastRoot, props.Root) {
			rerender = true
		}
		if rerender {
			state.nested.root = props.Root
			state.lastRoot = props.Root
			state.nested.renderFrame(rc.now)
		}
	}
	state.surface.Compose(rc.canvas, props.At)
	return None()
}

// sameRoot reports whether two root elements have the same component
// identity and shallow-equal props.
func sameRoot(a, b Element) bool {
	return sameIdentity(a, b) && sameValue(a.props, b.props)
}
