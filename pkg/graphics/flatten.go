package graphics

const (
	// flattenTolerance is the maximum distance in logical pixels between a
	// curve and its polyline approximation.
	flattenTolerance = 0.25

	// maxFlattenDepth caps recursive subdivision of pathological curves.
	maxFlattenDepth = 16
)

// subpath is a flattened run of connected points. closed marks subpaths
// terminated by an explicit Close; stroking draws their closing edge,
// filling closes every subpath implicitly.
type subpath struct {
	points []Offset
	closed bool
}

// flatten converts the path into polyline subpaths. Curves are subdivided
// until they deviate from their chord by at most flattenTolerance.
func flatten(p *Path) []subpath {
	var subs []subpath
	var cur subpath
	var pen, start Offset
	hasPen := false

	flush := func(closed bool) {
		if len(cur.points) > 1 {
			cur.closed = closed
			subs = append(subs, cur)
		}
		cur = subpath{}
	}
	begin := func(at Offset) {
		flush(false)
		pen = at
		start = at
		cur.points = append(cur.points, at)
		hasPen = true
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			begin(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpLineTo:
			to := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			if !hasPen {
				begin(to)
				continue
			}
			cur.points = append(cur.points, to)
			pen = to
		case PathOpQuadTo:
			c := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			to := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			if !hasPen {
				begin(c)
			}
			// Elevate to cubic and reuse one subdivision routine.
			c1 := Offset{X: pen.X + 2.0/3.0*(c.X-pen.X), Y: pen.Y + 2.0/3.0*(c.Y-pen.Y)}
			c2 := Offset{X: to.X + 2.0/3.0*(c.X-to.X), Y: to.Y + 2.0/3.0*(c.Y-to.Y)}
			cur.points = flattenCubic(cur.points, pen, c1, c2, to, 0)
			pen = to
		case PathOpCubicTo:
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			to := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			if !hasPen {
				begin(c1)
			}
			cur.points = flattenCubic(cur.points, pen, c1, c2, to, 0)
			pen = to
		case PathOpClose:
			if hasPen {
				flush(true)
				pen = start
				cur.points = append(cur.points, pen)
			}
		}
	}
	flush(false)
	return subs
}

// flattenCubic appends points approximating the cubic from p0 to p3,
// excluding p0 itself, using de Casteljau midpoint splits.
func flattenCubic(out []Offset, p0, p1, p2, p3 Offset, depth int) []Offset {
	if depth >= maxFlattenDepth || cubicFlat(p0, p1, p2, p3) {
		return append(out, p3)
	}
	m01 := midpoint(p0, p1)
	m12 := midpoint(p1, p2)
	m23 := midpoint(p2, p3)
	m012 := midpoint(m01, m12)
	m123 := midpoint(m12, m23)
	m := midpoint(m012, m123)
	out = flattenCubic(out, p0, m01, m012, m, depth+1)
	return flattenCubic(out, m, m123, m23, p3, depth+1)
}

// cubicFlat reports whether both control points lie within
// flattenTolerance of the chord from p0 to p3.
func cubicFlat(p0, p1, p2, p3 Offset) bool {
	tol2 := flattenTolerance * flattenTolerance
	return distToSegmentSquared(p1, p0, p3) <= tol2 &&
		distToSegmentSquared(p2, p0, p3) <= tol2
}

func midpoint(a, b Offset) Offset {
	return Offset{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// distToSegmentSquared returns the squared distance from q to the segment
// between a and b.
func distToSegmentSquared(q, a, b Offset) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		qx := q.X - a.X
		qy := q.Y - a.Y
		return qx*qx + qy*qy
	}
	t := ((q.X-a.X)*dx + (q.Y-a.Y)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	px := a.X + t*dx - q.X
	py := a.Y + t*dy - q.Y
	return px*px + py*py
}
