package geom

// NURBS describes a rational B-spline for sampling.
type NURBS struct {
	Points  []Vec3
	Weights []float64 // one per point; missing or non-positive weights count as 1
	Order   int       // degree+1, clamped to [2, len(Points)]
	Cyclic  bool
	// Endpoint clamps the knot vector so an open curve passes through its
	// first and last control points.
	Endpoint bool
}

// SampleResolution returns the number of segments used to flatten a spline
// with n control points.
func SampleResolution(n int) int {
	return max(n*8, 32)
}

// Sample evaluates the curve at segments+1 evenly spaced parameters across
// its domain. For a cyclic curve the last sample coincides with the first.
func (c NURBS) Sample(segments int) []Vec3 {
	n := len(c.Points)
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []Vec3{c.Points[0]}
	}
	if segments < 1 {
		segments = 1
	}

	order := min(max(c.Order, 2), n)
	degree := order - 1

	ctrl := make([]hvec, 0, n+degree)
	for i, p := range c.Points {
		ctrl = append(ctrl, homogeneous(p, c.weight(i)))
	}
	if c.Cyclic {
		ctrl = append(ctrl, ctrl[:degree]...)
	}

	knots := c.knots(len(ctrl), order)
	lo, hi := knots[degree], knots[len(ctrl)]

	out := make([]Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		u := lo + (hi-lo)*float64(i)/float64(segments)
		out = append(out, deBoor(ctrl, knots, degree, u).point())
	}
	return out
}

func (c NURBS) weight(i int) float64 {
	if i < len(c.Weights) && c.Weights[i] > 0 {
		return c.Weights[i]
	}
	return 1
}

// knots builds a uniform knot vector of length m+order. Open clamped
// vectors repeat the end knots order times.
func (c NURBS) knots(m, order int) []float64 {
	knots := make([]float64, m+order)
	if !c.Endpoint || c.Cyclic {
		for i := range knots {
			knots[i] = float64(i)
		}
		return knots
	}
	last := float64(m - order + 1)
	for i := range knots {
		switch {
		case i < order:
			knots[i] = 0
		case i >= m:
			knots[i] = last
		default:
			knots[i] = float64(i - order + 1)
		}
	}
	return knots
}

// deBoor evaluates the spline at u in [knots[degree], knots[len(ctrl)]].
func deBoor(ctrl []hvec, knots []float64, degree int, u float64) hvec {
	span := degree
	for span < len(ctrl)-1 && u >= knots[span+1] {
		span++
	}

	d := make([]hvec, degree+1)
	for j := range d {
		d[j] = ctrl[j+span-degree]
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			left := knots[j+span-degree]
			denom := knots[j+1+span-r] - left
			alpha := 0.0
			if denom != 0 {
				alpha = (u - left) / denom
			}
			d[j] = d[j-1].lerp(d[j], alpha)
		}
	}
	return d[degree]
}

// hvec is a point in homogeneous coordinates (x*w, y*w, z*w, w).
type hvec struct {
	x, y, z, w float64
}

func homogeneous(p Vec3, w float64) hvec {
	return hvec{p.X * w, p.Y * w, p.Z * w, w}
}

func (h hvec) lerp(o hvec, t float64) hvec {
	return hvec{
		h.x + (o.x-h.x)*t,
		h.y + (o.y-h.y)*t,
		h.z + (o.z-h.z)*t,
		h.w + (o.w-h.w)*t,
	}
}

func (h hvec) point() Vec3 {
	if h.w == 0 {
		return Vec3{h.x, h.y, h.z}
	}
	return Vec3{h.x / h.w, h.y / h.w, h.z / h.w}
}
