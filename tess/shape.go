package tess

import (
	"math"

	"github.com/gogpu/pathfill"
)

// Convex shape meshes. These fan from the true shape center and need no
// stencil pass: a convex fan has no overlapping triangles, so the mesh
// can be drawn directly with color writes enabled.

// Circle builds a circle mesh as a fan of the given number of edge
// segments around the center vertex. UVs map the circle onto the unit
// square, center at (0.5, 0.5). Fewer than 3 segments are raised to 3.
func Circle(center pathfill.Point, radius float64, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}

	mesh := WithCapacity(segments+1, segments*3)
	centerIdx := mesh.AddVertex(NewVertex(float32(center.X), float32(center.Y), 0.5, 0.5))

	edge := make([]Index, segments)
	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)
		x := center.X + radius*cos
		y := center.Y + radius*sin
		u := 0.5 + 0.5*cos
		v := 0.5 + 0.5*sin
		edge[i] = mesh.AddVertex(NewVertex(float32(x), float32(y), float32(u), float32(v)))
	}

	for i := 0; i < segments; i++ {
		mesh.AddTriangle(centerIdx, edge[i], edge[(i+1)%segments])
	}

	return mesh
}

// RoundedRect builds a rounded rectangle mesh fanned from the rectangle
// center. Each corner arc is approximated by cornerSegments line
// segments (raised to at least 1). The radius is clamped to half the
// smaller dimension; a radius near zero degenerates to Quad.
func RoundedRect(r pathfill.Rect, radius float64, cornerSegments int) Mesh {
	rad := math.Min(radius, math.Min(r.Width(), r.Height())/2)
	if rad < 1e-3 {
		return Quad(r)
	}
	if cornerSegments < 1 {
		cornerSegments = 1
	}

	var mesh Mesh
	center := r.Center()
	centerIdx := mesh.AddVertex(NewVertex(float32(center.X), float32(center.Y), 0.5, 0.5))

	// Arc centers and start angles for the four corners, walked clockwise
	// from top-left so the boundary forms one closed loop.
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.Min.X + rad, r.Min.Y + rad, math.Pi},
		{r.Max.X - rad, r.Min.Y + rad, 1.5 * math.Pi},
		{r.Max.X - rad, r.Max.Y - rad, 0},
		{r.Min.X + rad, r.Max.Y - rad, 0.5 * math.Pi},
	}

	var edge []Index
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			angle := c.start + float64(i)/float64(cornerSegments)*(math.Pi/2)
			x := c.cx + rad*math.Cos(angle)
			y := c.cy + rad*math.Sin(angle)
			u := (x - r.Min.X) / r.Width()
			v := (y - r.Min.Y) / r.Height()
			edge = append(edge, mesh.AddVertex(NewVertex(float32(x), float32(y), float32(u), float32(v))))
		}
	}

	n := len(edge)
	for i := 0; i < n; i++ {
		mesh.AddTriangle(centerIdx, edge[i], edge[(i+1)%n])
	}

	return mesh
}
