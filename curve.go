package pathfill

// Bezier segment types used for curve flattening.
// Evaluation uses the closed Bernstein form rather than de Casteljau:
// the tessellator samples many t values per segment, and the closed
// form avoids intermediate point allocation.

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Point {
	return q.P2
}

// ConicBez represents a conic (rational quadratic Bezier) section with
// control points P0, P1, P2 and weight W applied to the middle point.
// W = 1 degenerates to an ordinary quadratic; W < 1 yields an ellipse
// section, W > 1 a hyperbola. Circular arcs use W = cos(theta/2).
type ConicBez struct {
	P0, P1, P2 Point
	W          float64
}

// Eval evaluates the conic at parameter t in [0, 1] using the rational
// Bernstein form: the weighted middle term is divided out so the result
// lies on the conic section rather than on the parabola.
func (c ConicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	wt := 2 * c.W * mt * t
	denom := mt2 + wt + t2
	return Point{
		X: (mt2*c.P0.X + wt*c.P1.X + t2*c.P2.X) / denom,
		Y: (mt2*c.P0.Y + wt*c.P1.Y + t2*c.P2.Y) / denom,
	}
}

// Start returns the starting point of the conic.
func (c ConicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the conic.
func (c ConicBez) End() Point {
	return c.P2
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	// (1-t)^3 * P0 + 3(1-t)^2 t * P1 + 3(1-t) t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}
