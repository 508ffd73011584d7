package earth

import (
	"fmt"
	"sort"
)

// series interpolates tabulated values. A cubic spline with not-a-knot
// boundary conditions is used when the table is long enough, otherwise the
// interpolation degrades to linear.
type series struct {
	x, y []float64

	// Spline segment coefficients, nil for linear interpolation.
	c1, c2, c3, c4 []float64
}

const (
	minPointsLinear = 2
	minPointsSpline = 4
)

func newSeries(x, y []float64) (*series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length but were %d and %d", len(x), len(y))
	}
	if len(x) < minPointsLinear {
		return nil, fmt.Errorf("length of x and y must be at least %d but was %d", minPointsLinear, len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("x-axis must be strictly increasing")
		}
	}
	s := &series{x: x, y: y}
	if len(x) >= minPointsSpline {
		s.fitCubicSpline()
	}
	return s, nil
}

func diff(v []float64) []float64 {
	d := make([]float64, len(v)-1)
	for i := range d {
		d[i] = v[i+1] - v[i]
	}
	return d
}

// solveTridiagonal solves the system with sub-diagonal dl, diagonal d and
// super-diagonal du for the right-hand side b using the Thomas algorithm.
func solveTridiagonal(dl, d, du, b []float64) []float64 {
	n := len(d)
	w := make([]float64, n-1)
	g := make([]float64, n)
	p := make([]float64, n)

	w[0] = du[0] / d[0]
	g[0] = b[0] / d[0]
	for i := 1; i < n-1; i++ {
		w[i] = du[i] / (d[i] - dl[i-1]*w[i-1])
	}
	for i := 1; i < n; i++ {
		g[i] = (b[i] - dl[i-1]*g[i-1]) / (d[i] - dl[i-1]*w[i-1])
	}
	p[n-1] = g[n-1]
	for i := n - 1; i >= 1; i-- {
		p[i-1] = g[i-1] - w[i-1]*p[i]
	}
	return p
}

func (s *series) fitCubicSpline() {
	x, y := s.x, s.y
	n := len(x)

	dx := diff(x)
	nd := len(dx)
	slope := diff(y)
	for i := range slope {
		slope[i] /= dx[i]
	}

	d := make([]float64, 0, n)
	du := make([]float64, 0, n-1)
	dl := make([]float64, 0, n-1)
	b := make([]float64, 0, n)

	// Not-a-knot boundary conditions.
	d = append(d, dx[1])
	du = append(du, x[2]-x[0])
	delta := x[2] - x[0]
	b = append(b, ((dx[0]+2.0*delta)*dx[1]*slope[0]+dx[0]*dx[0]*slope[1])/delta)

	for i := 0; i < nd-1; i++ {
		d = append(d, 2.0*(dx[i]+dx[i+1]))
		du = append(du, dx[i])
		dl = append(dl, dx[i+1])
		b = append(b, 3.0*(dx[i+1]*slope[i]+dx[i]*slope[i+1]))
	}

	d = append(d, dx[nd-2])
	delta = x[n-1] - x[n-3]
	dl = append(dl, delta)
	b = append(b, (dx[nd-1]*dx[nd-1]*slope[nd-2]+(2.0*delta+dx[nd-1])*dx[nd-2]*slope[nd-1])/delta)

	sol := solveTridiagonal(dl, d, du, b)
	t := make([]float64, n-1)
	for i := range t {
		t[i] = (sol[i] + sol[i+1] - 2.0*slope[i]) / dx[i]
	}

	s.c1 = y[:n-1]
	s.c2 = sol[:n-1]
	s.c3 = make([]float64, n-1)
	s.c4 = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		s.c3[i] = (slope[i]-sol[i])/dx[i] - t[i]
		s.c4[i] = t[i] / dx[i]
	}
}

// interpolate evaluates the series at xp. Values outside the tabulated range
// are extrapolated from the first or last segment.
func (s *series) interpolate(xp float64) float64 {
	x, y := s.x, s.y
	var idx int
	switch {
	case xp <= x[0]:
		idx = 0
	case xp >= x[len(x)-1]:
		idx = len(x) - 2
	default:
		idx = sort.SearchFloat64s(x, xp) - 1
		if idx < 0 {
			idx = 0
		}
	}

	if s.c1 == nil {
		x0, x1 := x[idx], x[idx+1]
		y0, y1 := y[idx], y[idx+1]
		return y0 + (y1-y0)*(xp-x0)/(x1-x0)
	}
	dx := xp - x[idx]
	return s.c1[idx] + dx*(s.c2[idx]+dx*(s.c3[idx]+dx*s.c4[idx]))
}

// interpolateClamped evaluates the series at xp, holding values outside the
// tabulated range at the nearest boundary point.
func (s *series) interpolateClamped(xp float64) float64 {
	switch {
	case xp <= s.x[0]:
		return s.y[0]
	case xp >= s.x[len(s.x)-1]:
		return s.y[len(s.y)-1]
	}
	return s.interpolate(xp)
}

func (s *series) first() (float64, float64) { return s.x[0], s.y[0] }
func (s *series) last() (float64, float64) {
	n := len(s.x)
	return s.x[n-1], s.y[n-1]
}
