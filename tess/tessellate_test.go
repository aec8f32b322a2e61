package tess

import (
	"math"
	"testing"

	"github.com/gogpu/pathfill"
)

// squarePath returns the unit test square: one MoveTo, three LineTo, Close.
func squarePath() *pathfill.Path {
	p := pathfill.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(100, 100)
	p.LineTo(0, 100)
	p.Close()
	return p
}

// circlePath returns a circle built from 4 cubic Beziers.
func circlePath(cx, cy, r float64) *pathfill.Path {
	p := pathfill.NewPath()
	p.Circle(cx, cy, r)
	return p
}

// starPath returns a concave 5-pointed star (10 LineTo).
func starPath() *pathfill.Path {
	const (
		cx, cy  = 100.0, 100.0
		outerR  = 80.0
		innerR  = 30.0
		nPoints = 5
	)
	p := pathfill.NewPath()
	for i := 0; i < nPoints; i++ {
		outerAngle := float64(i)*2*math.Pi/nPoints - math.Pi/2
		ox := cx + outerR*math.Cos(outerAngle)
		oy := cy + outerR*math.Sin(outerAngle)
		if i == 0 {
			p.MoveTo(ox, oy)
		} else {
			p.LineTo(ox, oy)
		}
		innerAngle := outerAngle + math.Pi/nPoints
		p.LineTo(cx+innerR*math.Cos(innerAngle), cy+innerR*math.Sin(innerAngle))
	}
	p.Close()
	return p
}

// donutPath returns two concentric circle contours in one path.
func donutPath() *pathfill.Path {
	p := pathfill.NewPath()
	p.Circle(100, 100, 80)
	p.Circle(100, 100, 30)
	return p
}

func TestFanEmptyPath(t *testing.T) {
	t.Run("no elements", func(t *testing.T) {
		m := Fan(pathfill.NewPath())
		if got := m.TriangleCount(); got != 0 {
			t.Errorf("TriangleCount = %d, want 0", got)
		}
		if !m.IsEmpty() {
			t.Error("mesh should report empty")
		}
	})

	t.Run("lone move", func(t *testing.T) {
		p := pathfill.NewPath()
		p.MoveTo(5, 5)
		m := Fan(p)
		if got := m.TriangleCount(); got != 0 {
			t.Errorf("TriangleCount = %d, want 0", got)
		}
	})
}

func TestFanSquare(t *testing.T) {
	m := Fan(squarePath())

	// One triangle per LineTo after the first boundary vertex; Close
	// does not connect back to the contour start, so the wedge between
	// the last and first vertex has no triangle.
	if got := m.TriangleCount(); got != 3 {
		t.Errorf("TriangleCount = %d, want 3", got)
	}
	if got := len(m.Vertices); got != 5 {
		t.Errorf("vertex count = %d, want 5 (origin + 4 boundary)", got)
	}
}

func TestFanPolygonTriangleLaw(t *testing.T) {
	// A closed polygon from one MoveTo and k LineTo commands yields
	// exactly k triangles and k+2 vertices.
	for _, k := range []int{1, 2, 3, 5, 8, 17} {
		p := pathfill.NewPath()
		p.MoveTo(0, 0)
		for i := 1; i <= k; i++ {
			angle := float64(i) / float64(k+1) * 2 * math.Pi
			p.LineTo(100*math.Cos(angle), 100*math.Sin(angle))
		}
		p.Close()

		m := Fan(p)
		if got := m.TriangleCount(); got != k {
			t.Errorf("k=%d: TriangleCount = %d, want %d", k, got, k)
		}
		if got := len(m.Vertices); got != k+2 {
			t.Errorf("k=%d: vertex count = %d, want %d", k, got, k+2)
		}
	}
}

func TestFanOriginAtBoundsCenter(t *testing.T) {
	p := squarePath()
	m := Fan(p)

	center := p.Bounds().Center()
	origin := m.Vertices[0]
	if origin.Position != [2]float32{float32(center.X), float32(center.Y)} {
		t.Errorf("origin vertex = %v, want bounds center %v", origin.Position, center)
	}

	// Every triangle fans from vertex 0.
	for i := 0; i < len(m.Indices); i += 3 {
		if m.Indices[i] != 0 {
			t.Errorf("triangle %d does not start at the fan origin (index %d)", i/3, m.Indices[i])
		}
	}
}

func TestFanCurveSampleCounts(t *testing.T) {
	tests := []struct {
		name      string
		build     func(p *pathfill.Path)
		triangles int
		vertices  int
	}{
		{
			// 8 samples, each emitting one triangle against the move vertex.
			name:      "quad",
			build:     func(p *pathfill.Path) { p.QuadraticTo(50, 100, 100, 0) },
			triangles: 8,
			vertices:  1 + 1 + 8,
		},
		{
			name:      "conic",
			build:     func(p *pathfill.Path) { p.ConicTo(50, 100, 100, 0, 0.9) },
			triangles: 8,
			vertices:  1 + 1 + 8,
		},
		{
			name:      "cubic",
			build:     func(p *pathfill.Path) { p.CubicTo(0, 100, 100, 100, 100, 0) },
			triangles: 12,
			vertices:  1 + 1 + 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pathfill.NewPath()
			p.MoveTo(0, 0)
			tt.build(p)
			m := Fan(p)
			if got := m.TriangleCount(); got != tt.triangles {
				t.Errorf("TriangleCount = %d, want %d", got, tt.triangles)
			}
			if got := len(m.Vertices); got != tt.vertices {
				t.Errorf("vertex count = %d, want %d", got, tt.vertices)
			}
		})
	}
}

func TestFanCurveEndpoint(t *testing.T) {
	p := pathfill.NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)
	m := Fan(p)

	last := m.Vertices[len(m.Vertices)-1]
	if last.Position != [2]float32{100, 0} {
		t.Errorf("last flattened sample = %v, want curve endpoint (100,0)", last.Position)
	}
}

func TestFanMultiContour(t *testing.T) {
	m := Fan(donutPath())

	// Both contours: 4 cubics x 12 samples each, plus a MoveTo vertex
	// per contour, sharing one fan origin.
	wantVertices := 1 + 2*(1+4*cubicSteps)
	if got := len(m.Vertices); got != wantVertices {
		t.Errorf("vertex count = %d, want %d", got, wantVertices)
	}

	// The second contour's first sample must not connect to the first
	// contour: its MoveTo resets the previous vertex, so per contour
	// exactly one triangle (the first sample after MoveTo) is emitted
	// per sample except none across the gap.
	wantTriangles := 2 * 4 * cubicSteps
	if got := m.TriangleCount(); got != wantTriangles {
		t.Errorf("TriangleCount = %d, want %d", got, wantTriangles)
	}
}

func TestFanStarConcave(t *testing.T) {
	m := Fan(starPath())
	// Move plus 9 LineTo: one triangle per LineTo.
	if got := m.TriangleCount(); got != 9 {
		t.Errorf("TriangleCount = %d, want 9", got)
	}
}

func TestQuadMesh(t *testing.T) {
	r := pathfill.NewRect(pathfill.Pt(10, 20), pathfill.Pt(110, 70))
	m := Quad(r)

	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("got %d vertices / %d indices, want 4 / 6", len(m.Vertices), len(m.Indices))
	}
	if got := m.TriangleCount(); got != 2 {
		t.Errorf("TriangleCount = %d, want 2", got)
	}
	if got := m.Bounds(); got != r {
		t.Errorf("Bounds = %+v, want %+v", got, r)
	}

	// Corner UVs span the unit square.
	uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, want := range uvs {
		if m.Vertices[i].UV != want {
			t.Errorf("vertex %d UV = %v, want %v", i, m.Vertices[i].UV, want)
		}
	}
}
