package tess

import "github.com/gogpu/pathfill"

// contour is one flattened sub-path: a polyline plus whether the
// sub-path was explicitly closed.
type contour struct {
	points []pathfill.Point
	closed bool
}

// flattenContours walks a path and flattens each sub-path into a
// polyline using the same fixed curve sampling as Fan.
func flattenContours(path *pathfill.Path) []contour {
	var (
		contours []contour
		points   []pathfill.Point
		current  pathfill.Point
		start    pathfill.Point
	)

	flush := func(closed bool) {
		if len(points) >= 2 {
			contours = append(contours, contour{points: points, closed: closed})
		}
		points = nil
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case pathfill.MoveTo:
			flush(false)
			points = append(points, e.Point)
			current = e.Point
			start = e.Point

		case pathfill.LineTo:
			points = append(points, e.Point)
			current = e.Point

		case pathfill.QuadTo:
			q := pathfill.QuadBez{P0: current, P1: e.Control, P2: e.Point}
			for i := 1; i <= quadSteps; i++ {
				points = append(points, q.Eval(float64(i)/quadSteps))
			}
			current = e.Point

		case pathfill.ConicTo:
			c := pathfill.ConicBez{P0: current, P1: e.Control, P2: e.Point, W: e.Weight}
			for i := 1; i <= conicSteps; i++ {
				points = append(points, c.Eval(float64(i)/conicSteps))
			}
			current = e.Point

		case pathfill.CubicTo:
			c := pathfill.CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			for i := 1; i <= cubicSteps; i++ {
				points = append(points, c.Eval(float64(i)/cubicSteps))
			}
			current = e.Point

		case pathfill.Close:
			if current != start {
				points = append(points, start)
			}
			flush(true)
			current = start
		}
	}
	flush(false)

	return contours
}

// Stroke tessellates a path outline into a triangle mesh of the given
// stroke width. Each sub-path is flattened to a polyline whose points
// are offset by half the width along the averaged segment normals,
// producing a two-sided strip. Joins are the implicit bevel of the
// averaged tangent; no caps are added. Left-edge vertices carry U=0,
// right-edge vertices U=1, so a gradient can run across the stroke.
func Stroke(path *pathfill.Path, width float64) Mesh {
	var mesh Mesh
	halfWidth := width / 2
	for _, c := range flattenContours(path) {
		strokeContour(&mesh, c.points, halfWidth, c.closed)
	}
	return mesh
}

// strokeContour extrudes one polyline into the mesh.
func strokeContour(mesh *Mesh, pts []pathfill.Point, halfWidth float64, closed bool) {
	n := len(pts)
	if n < 2 {
		return
	}

	left := make([]Vertex, 0, n)
	right := make([]Vertex, 0, n)

	for i := 0; i < n; i++ {
		p := pts[i]

		// Tangent at interior points averages the adjacent segment
		// directions; open endpoints use their single segment.
		var tangent pathfill.Point
		switch {
		case i == 0 && !closed:
			tangent = pts[1].Sub(p)
		case i == n-1 && !closed:
			tangent = p.Sub(pts[n-2])
		default:
			prev := pts[(i-1+n)%n]
			next := pts[(i+1)%n]
			tangent = p.Sub(prev).Add(next.Sub(p))
		}

		length := tangent.Length()
		if length < 1e-10 {
			left = append(left, VertexFromPoint(p))
			right = append(right, VertexFromPoint(p))
			continue
		}
		normal := pathfill.Pt(-tangent.Y/length, tangent.X/length)

		l := p.Add(normal.Mul(halfWidth))
		r := p.Sub(normal.Mul(halfWidth))
		left = append(left, NewVertex(float32(l.X), float32(l.Y), 0, 0))
		right = append(right, NewVertex(float32(r.X), float32(r.Y), 1, 0))
	}

	leftBase := Index(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, left...)
	rightBase := Index(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, right...)

	for i := Index(0); int(i) < n-1; i++ {
		mesh.AddTriangle(leftBase+i, rightBase+i, leftBase+i+1)
		mesh.AddTriangle(leftBase+i+1, rightBase+i, rightBase+i+1)
	}

	if closed && n > 2 {
		last := Index(n - 1)
		mesh.AddTriangle(leftBase+last, rightBase+last, leftBase)
		mesh.AddTriangle(leftBase, rightBase+last, rightBase)
	}
}
