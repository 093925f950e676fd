package graphics

// PointInFill reports whether pt lies inside the filled region of the path
// under the given fill rule.
//
// Coordinates are in path space: to test a pointer position against a path
// drawn under a transform, map the position through the transform's inverse
// first. Filling implicitly closes every subpath, matching how open paths
// fill on screen.
func PointInFill(p *Path, pt Offset, rule FillRule) bool {
	if p.IsEmpty() {
		return false
	}
	b := p.Bounds()
	if pt.X < b.Left || pt.X > b.Right || pt.Y < b.Top || pt.Y > b.Bottom {
		return false
	}
	winding := 0
	crossings := 0
	for _, sp := range flatten(p) {
		pts := sp.points
		n := len(pts)
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n]
			if (a.Y > pt.Y) == (b.Y > pt.Y) {
				continue
			}
			xCross := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if xCross <= pt.X {
				continue
			}
			crossings++
			if b.Y > a.Y {
				winding++
			} else {
				winding--
			}
		}
	}
	if rule == FillRuleEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// PointInStroke reports whether pt lies on the stroked outline of the path
// for the given stroke width. Coordinates are in path space, as for
// PointInFill. Caps and joins are treated as round.
func PointInStroke(p *Path, pt Offset, width float64) bool {
	if p.IsEmpty() || width <= 0 {
		return false
	}
	half := width / 2
	b := p.Bounds()
	if pt.X < b.Left-half || pt.X > b.Right+half || pt.Y < b.Top-half || pt.Y > b.Bottom+half {
		return false
	}
	r2 := half * half
	for _, sp := range flatten(p) {
		pts := sp.points
		for i := 0; i+1 < len(pts); i++ {
			if distToSegmentSquared(pt, pts[i], pts[i+1]) <= r2 {
				return true
			}
		}
		if sp.closed && len(pts) > 2 {
			if distToSegmentSquared(pt, pts[len(pts)-1], pts[0]) <= r2 {
				return true
			}
		}
	}
	return false
}
