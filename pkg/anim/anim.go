// Package anim provides animation hooks for easel components.
//
// Both hooks advance with the render timestamp and request follow-up
// frames themselves, so an animating component re-renders until the tween
// settles and then goes quiet:
//
//	func FadeIn(rc *core.RenderContext, p FadeInProps) core.Children {
//		alpha := anim.UseProgress(rc, 300*time.Millisecond, ease.OutQuad)
//		rc.Canvas().DrawRect(p.At, graphics.Fill(graphics.RGBA(0, 0, 0, alpha)))
//		return core.None()
//	}
//
// Easing functions come from github.com/tanema/gween/ease.
package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-easel/easel/pkg/core"
)

type progressState struct {
	tween *gween.Tween
	last  time.Time
	value float64
	done  bool
}

// UseProgress animates from 0 to 1 over duration, starting when the
// component mounts. It returns the current eased value and keeps the
// instance rendering until the animation finishes. A non-positive duration
// completes immediately. Remounting the component restarts the animation.
func UseProgress(rc *core.RenderContext, duration time.Duration, fn ease.TweenFunc) float64 {
	ref := core.UseRef[*progressState](rc, nil)
	st := ref.Current
	if st == nil {
		st = &progressState{last: rc.Now()}
		if duration <= 0 {
			st.value = 1
			st.done = true
		} else {
			st.tween = gween.New(0, 1, float32(duration.Seconds()), fn)
		}
		ref.Current = st
	}
	if st.done {
		return st.value
	}
	now := rc.Now()
	dt := float32(now.Sub(st.last).Seconds())
	st.last = now
	value, finished := st.tween.Update(dt)
	st.value = float64(value)
	st.done = finished
	if !finished {
		rc.RequestRender()
	}
	return st.value
}

type valueState struct {
	tween  *gween.Tween
	target float64
	last   time.Time
	value  float64
	done   bool
}

// UseValue eases toward target, re-animating from the current value
// whenever target changes. The first render adopts target directly, so
// mounting does not animate. A non-positive duration snaps to new targets.
//
//	x := anim.UseValue(rc, p.X, 200*time.Millisecond, ease.OutCubic)
//
// moves smoothly whenever p.X jumps.
func UseValue(rc *core.RenderContext, target float64, duration time.Duration, fn ease.TweenFunc) float64 {
	ref := core.UseRef[*valueState](rc, nil)
	st := ref.Current
	if st == nil {
		st = &valueState{target: target, value: target, done: true}
		ref.Current = st
	}
	if target != st.target {
		st.target = target
		if duration <= 0 {
			st.tween = nil
			st.value = target
			st.done = true
		} else {
			st.tween = gween.New(float32(st.value), float32(target), float32(duration.Seconds()), fn)
			st.last = rc.Now()
			st.done = false
		}
	}
	if st.done {
		return st.value
	}
	now := rc.Now()
	dt := float32(now.Sub(st.last).Seconds())
	st.last = now
	value, finished := st.tween.Update(dt)
	st.value = float64(value)
	st.done = finished
	if !finished {
		rc.RequestRender()
	}
	return st.value
}
