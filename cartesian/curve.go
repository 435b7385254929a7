package cartesian

// Point represents a cartesian X,Y point
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a piecewise-linear curve defined by points with ascending X values.
type Curve struct {
	Points []Point `json:"points"`
}

// At returns the y-value of the curve at the given x, linearly interpolating
// between the surrounding points. Values outside the horizontal span of the
// curve are clamped to the first/last point.
func (c *Curve) At(x float64) float64 {

	if len(c.Points) == 0 {
		return 0
	}
	if x <= c.Points[0].X {
		return c.Points[0].Y
	}
	last := c.Points[len(c.Points)-1]
	if x >= last.X {
		return last.Y
	}

	// Loop over each pair of points in the curve
	for i := 0; i < len(c.Points)-1; i++ {
		p1 := c.Points[i]
		p2 := c.Points[i+1]

		if p1.X <= x && x <= p2.X {
			return linearInterpolation(p1, p2, x)
		}
	}
	return last.Y
}

// linearInterpolation returns the y-value at `x` given two points.
func linearInterpolation(p1, p2 Point, x float64) float64 {
	return p1.Y + (x-p1.X)*((p2.Y-p1.Y)/(p2.X-p1.X))
}
