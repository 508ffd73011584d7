package earth

import (
	"math"
	"testing"

	"github.com/signalsfoundry/astrotime/geom"
)

// centuries converts a Modified Julian Date to Julian centuries since J2000.
func centuries(mjd float64) float64 {
	return (mjd - 51544.5) / daysPerCentury
}

// assertClose checks got against want within an absolute tolerance.
func assertClose(t *testing.T, name string, got, want, atol float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > atol {
		t.Errorf("%s = %.18g, want %.18g (diff %g)", name, got, want, diff)
	}
}

// assertRel checks got against want within a relative tolerance.
func assertRel(t *testing.T, name string, got, want, rtol float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > rtol*math.Abs(want) {
		t.Errorf("%s = %.18g, want %.18g (diff %g)", name, got, want, diff)
	}
}

// assertMat checks every element of got against want within an absolute
// tolerance.
func assertMat(t *testing.T, name string, got, want geom.Mat3, atol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if diff := math.Abs(got[i][j] - want[i][j]); diff > atol {
				t.Errorf("%s[%d][%d] = %.18g, want %.18g (diff %g)", name, i, j, got[i][j], want[i][j], diff)
			}
		}
	}
}

func TestModTwoPi(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{tau, 0},
		{tau + 1, 1},
		{-1, tau - 1},
		{-tau - 1, tau - 1},
	}
	for _, tc := range cases {
		if got := modTwoPi(tc.in); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("modTwoPi(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTwoPi(t *testing.T) {
	cases := []struct {
		angle, center, want float64
	}{
		{0, 0, 0},
		{math.Pi, 0, -math.Pi},
		{-math.Pi, 0, -math.Pi},
		{3 * math.Pi, 0, -math.Pi},
		{math.Pi, math.Pi, math.Pi},
		{tau + 0.5, 0, 0.5},
	}
	for _, tc := range cases {
		if got := normalizeTwoPi(tc.angle, tc.center); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("normalizeTwoPi(%g, %g) = %g, want %g", tc.angle, tc.center, got, tc.want)
		}
	}
}

func TestFract(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.25, 0.25},
		{-1.25, 0.75},
		{0, 0},
	}
	for _, tc := range cases {
		if got := fract(tc.in); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("fract(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestPolynomialHorner(t *testing.T) {
	// 1 + 2t + 3t^2 at t = 2.
	if got := polynomial(2, 1, 2, 3); got != 17 {
		t.Errorf("polynomial(2, 1, 2, 3) = %g, want 17", got)
	}
}
