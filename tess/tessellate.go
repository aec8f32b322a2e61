package tess

import "github.com/gogpu/pathfill"

// Fixed flattening step counts per curve segment. Sampling is uniform
// in parameter space rather than error-bounded: every curve costs the
// same fixed number of triangles regardless of its on-screen size.
const (
	// quadSteps is the number of line samples per quadratic segment.
	quadSteps = 8
	// conicSteps is the number of line samples per conic segment.
	conicSteps = 8
	// cubicSteps is the number of line samples per cubic segment.
	cubicSteps = 12
)

// Fan tessellates a path into the stencil-pass triangle fan mesh.
//
// Vertex 0 is the fan origin, placed at the center of the path bounds.
// The origin position does not affect fill correctness: each boundary
// edge contributes exactly one triangle whose vertex order encodes that
// edge's winding contribution, and triangles from concave or
// self-overlapping geometry cancel in the stencil buffer wherever the
// origin sits, provided the whole mesh shares it. The bounds center
// merely keeps the triangles compact.
//
// MoveTo starts a new sub-contour without connecting to the previous
// one. Line and flattened curve samples each emit the triangle
// (origin, previous, current). Close only forgets the previous vertex;
// it does not emit a triangle back to the sub-contour start, so a
// closed polygon with one MoveTo and k LineTo commands produces exactly
// k triangles. All sub-contours share the origin vertex and land in one
// vertex/index buffer.
//
// An empty path yields a mesh with no triangles.
func Fan(path *pathfill.Path) Mesh {
	var mesh Mesh

	origin := path.Bounds().Center()
	originIdx := mesh.AddVertex(VertexFromPoint(origin))

	var (
		current pathfill.Point
		prev    Index
		hasPrev bool
	)

	emit := func(p pathfill.Point) {
		cur := mesh.AddVertex(VertexFromPoint(p))
		if hasPrev {
			mesh.AddTriangle(originIdx, prev, cur)
		}
		prev = cur
		hasPrev = true
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case pathfill.MoveTo:
			prev = mesh.AddVertex(VertexFromPoint(e.Point))
			hasPrev = true
			current = e.Point

		case pathfill.LineTo:
			emit(e.Point)
			current = e.Point

		case pathfill.QuadTo:
			q := pathfill.QuadBez{P0: current, P1: e.Control, P2: e.Point}
			for i := 1; i <= quadSteps; i++ {
				emit(q.Eval(float64(i) / quadSteps))
			}
			current = e.Point

		case pathfill.ConicTo:
			c := pathfill.ConicBez{P0: current, P1: e.Control, P2: e.Point, W: e.Weight}
			for i := 1; i <= conicSteps; i++ {
				emit(c.Eval(float64(i) / conicSteps))
			}
			current = e.Point

		case pathfill.CubicTo:
			c := pathfill.CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			for i := 1; i <= cubicSteps; i++ {
				emit(c.Eval(float64(i) / cubicSteps))
			}
			current = e.Point

		case pathfill.Close:
			hasPrev = false
		}
	}

	return mesh
}

// Quad builds a rectangle mesh: 4 vertices, 2 triangles, with UVs
// spanning the unit square. Used for the cover pass and for textured
// rectangle fills.
func Quad(r pathfill.Rect) Mesh {
	mesh := WithCapacity(4, 6)

	v0 := mesh.AddVertex(NewVertex(float32(r.Min.X), float32(r.Min.Y), 0, 0))
	v1 := mesh.AddVertex(NewVertex(float32(r.Max.X), float32(r.Min.Y), 1, 0))
	v2 := mesh.AddVertex(NewVertex(float32(r.Max.X), float32(r.Max.Y), 1, 1))
	v3 := mesh.AddVertex(NewVertex(float32(r.Min.X), float32(r.Max.Y), 0, 1))

	mesh.AddTriangle(v0, v1, v2)
	mesh.AddTriangle(v0, v2, v3)

	return mesh
}
