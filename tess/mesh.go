package tess

import (
	"math"

	"github.com/gogpu/pathfill"
)

// Index is the index type used by mesh triangle lists.
type Index uint32

// Vertex is a single mesh vertex: 2D position plus UV coordinates for
// texturing or gradients. The layout is two float32x2 attributes,
// 16 bytes per vertex.
type Vertex struct {
	// Position is the x, y position.
	Position [2]float32
	// UV is the texture coordinate pair.
	UV [2]float32
}

// NewVertex creates a vertex from position and UV components.
func NewVertex(x, y, u, v float32) Vertex {
	return Vertex{Position: [2]float32{x, y}, UV: [2]float32{u, v}}
}

// VertexFromPoint creates a vertex at the given point with zero UVs.
func VertexFromPoint(p pathfill.Point) Vertex {
	return Vertex{Position: [2]float32{float32(p.X), float32(p.Y)}}
}

// Mesh is an indexed triangle list ready for GPU upload.
//
// Invariants maintained by the mutators: len(Indices) is always a
// multiple of 3, and every index refers to an existing vertex.
// The zero value is an empty, usable mesh.
type Mesh struct {
	// Vertices is the vertex buffer.
	Vertices []Vertex
	// Indices is the triangle list; each consecutive triple is one triangle.
	Indices []Index
}

// WithCapacity creates a mesh with preallocated vertex and index storage.
func WithCapacity(vertices, indices int) Mesh {
	return Mesh{
		Vertices: make([]Vertex, 0, vertices),
		Indices:  make([]Index, 0, indices),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v Vertex) Index {
	idx := Index(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	return idx
}

// AddTriangle appends a triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c Index) {
	m.Indices = append(m.Indices, a, b, c)
}

// Clear empties the mesh, keeping allocated storage for reuse.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// IsEmpty returns true if the mesh has no renderable triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Merge appends another mesh, rebasing its indices onto this vertex buffer.
func (m *Mesh) Merge(other *Mesh) {
	base := Index(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, i+base)
	}
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() pathfill.Rect {
	if len(m.Vertices) == 0 {
		return pathfill.Rect{}
	}
	minX := float64(m.Vertices[0].Position[0])
	minY := float64(m.Vertices[0].Position[1])
	maxX, maxY := minX, minY
	for _, v := range m.Vertices[1:] {
		x := float64(v.Position[0])
		y := float64(v.Position[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return pathfill.Rect{Min: pathfill.Pt(minX, minY), Max: pathfill.Pt(maxX, maxY)}
}
