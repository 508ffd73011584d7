package earth

import (
	"testing"

	"github.com/signalsfoundry/astrotime/geom"
)

// Reference values computed with ERFA (nut80) one Julian millennium before
// J1900, at J2000 and one century after.
func TestNutationIAU1980(t *testing.T) {
	cases := []struct {
		t          float64
		dpsi, deps float64
	}{
		{-67.11964407939767, 6.93404778664026e-6, 4.131255061383108e-5},
		{0, -6.750247617532478e-5, -2.799221238377013e-5},
		{1, 1.584138015187132e-5, 4.158958379918889e-5},
	}
	for _, tc := range cases {
		nut := NutationIAU1980(tc.t)
		assertRel(t, "dpsi", nut.Dpsi, tc.dpsi, 1e-12)
		assertRel(t, "deps", nut.Deps, tc.deps, 1e-12)
	}
}

// Reference values computed with ERFA (nut00b).
func TestNutationIAU2000B(t *testing.T) {
	cases := []struct {
		t          float64
		dpsi, deps float64
	}{
		{-67.11964407939767, 1.795252319583832e-5, 4.024546928325646e-5},
		{0, -6.754261253992235e-5, -2.797092331098565e-5},
		{1, 1.586677813945249e-5, 4.162057618703116e-5},
	}
	for _, tc := range cases {
		nut := NutationIAU2000B(tc.t)
		assertRel(t, "dpsi", nut.Dpsi, tc.dpsi, 1e-11)
		assertRel(t, "deps", nut.Deps, tc.deps, 1e-11)
	}
}

// ERFA's nut06a pairs the IAU 2006 adjustments with the full 2000A series;
// the 2000B series used here agrees to a few nanoradians.
func TestNutationIAU2006B(t *testing.T) {
	nut := NutationIAU2006B(centuries(53736))
	assertClose(t, "dpsi", nut.Dpsi, -9.63091202582031e-6, 5e-9)
	assertClose(t, "deps", nut.Deps, 4.06323849688725e-5, 5e-9)
}

// Reference matrix computed with ERFA (numat).
func TestNutationMatrix(t *testing.T) {
	nut := Nutation{
		Dpsi: -9.630909107115582e-6,
		Deps: 4.063239174001679e-5,
	}
	const epsa = 0.409078976335651

	want := geom.Mat3{
		{0.9999999999536228, 8.83623932023625e-6, 3.830833447458252e-6},
		{-8.83608365701669e-6, 0.9999999991354654, -4.0632408653618574e-5},
		{-3.8311924818333855e-6, 4.063237480216934e-5, 0.9999999991671661},
	}
	assertMat(t, "nutation matrix", nut.Matrix(epsa), want, 1e-12)
}
