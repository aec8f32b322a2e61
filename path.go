package pathfill

import "math"

// FillType selects how a path decides which regions are inside.
// The inverse variants select the complement of the filled region;
// they share the winding evaluation of their plain counterparts.
type FillType int

const (
	// FillTypeWinding fills regions with non-zero winding count.
	FillTypeWinding FillType = iota
	// FillTypeEvenOdd fills regions with odd winding count.
	FillTypeEvenOdd
	// FillTypeInverseWinding fills the complement of FillTypeWinding.
	FillTypeInverseWinding
	// FillTypeInverseEvenOdd fills the complement of FillTypeEvenOdd.
	FillTypeInverseEvenOdd
)

// IsInverse returns true for the inverse fill types.
func (ft FillType) IsInverse() bool {
	return ft == FillTypeInverseWinding || ft == FillTypeInverseEvenOdd
}

// String returns the fill type name.
func (ft FillType) String() string {
	switch ft {
	case FillTypeWinding:
		return "Winding"
	case FillTypeEvenOdd:
		return "EvenOdd"
	case FillTypeInverseWinding:
		return "InverseWinding"
	case FillTypeInverseEvenOdd:
		return "InverseEvenOdd"
	default:
		return "Unknown"
	}
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing, starting a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ConicTo draws a conic (rational quadratic) section with the given weight.
type ConicTo struct {
	Control Point
	Point   Point
	Weight  float64
}

func (ConicTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path: an ordered sequence of path elements
// plus a fill type tag. The zero fill type is FillTypeWinding.
//
// Path does not validate coordinates. Non-finite values propagate into
// whatever geometry is derived from the path; rejecting or normalizing
// them is the caller's responsibility.
type Path struct {
	elements []PathElement
	fillType FillType
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// ConicTo draws a conic section with the given weight.
func (p *Path) ConicTo(cx, cy, x, y, weight float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, ConicTo{Control: ctrl, Point: pt, Weight: weight})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path. The fill type is kept.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// FillType returns the path's fill type tag.
func (p *Path) FillType() FillType {
	return p.fillType
}

// SetFillType sets the path's fill type tag.
func (p *Path) SetFillType(ft FillType) {
	p.fillType = ft
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the axis-aligned bounding box over every point stored
// in the path, control points included. This is the conservative
// control-polygon bound, not the tight curve bound: a curve never
// escapes the convex hull of its control points, so the box always
// contains the rendered geometry. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	var bounds Rect
	first := true
	add := func(pt Point) {
		if first {
			bounds = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		bounds.Min.X = math.Min(bounds.Min.X, pt.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, pt.Y)
		bounds.Max.X = math.Max(bounds.Max.X, pt.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case ConicTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return bounds
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.fillType = p.fillType
	result.start = p.start
	result.current = p.current
	return result
}
