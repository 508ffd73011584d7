package earth

import (
	"math"

	"github.com/signalsfoundry/astrotime/geom"
)

// Series coefficients are tabulated in units of 0.1 mas (IAU 1980) and
// 0.1 µas (IAU 2000B).
const (
	radPerPoint1Milliarcsec = radPerArcsec / 1e4
	radPerPoint1Microarcsec = radPerArcsec / 1e7
	radPerMilliarcsec       = radPerArcsec / 1e3
)

// Nutation holds the nutation components in longitude (δψ) and obliquity
// (δε) with respect to the ecliptic of date, in radians.
type Nutation struct {
	Dpsi float64
	Deps float64
}

// Matrix forms the rotation from the mean to the true equator and equinox
// of date for the mean obliquity epsa.
func (n Nutation) Matrix(epsa float64) geom.Mat3 {
	rot1 := geom.RotationX(epsa)
	rot2 := geom.RotationZ(-n.Dpsi)
	rot3 := geom.RotationX(-(n.Deps + epsa))
	return rot3.MulMat(rot2).MulMat(rot1)
}

// NutationIAU1980 evaluates the 106-term IAU 1980 nutation series at t
// Julian centuries TDB since J2000.
func NutationIAU1980(t float64) Nutation {
	args := delaunayIAU1980(t)
	var dpsi, deps float64
	// The series is tabulated by descending magnitude but folded by
	// ascending magnitude to limit floating-point error.
	for i := len(nutationSeries1980) - 1; i >= 0; i-- {
		c := &nutationSeries1980[i]
		arg := c.l*args.l + c.lp*args.lp + c.f*args.f + c.d*args.d + c.om*args.om
		dpsi += (c.sinPsi + c.sinPsiT*t) * math.Sin(arg)
		deps += (c.cosEps + c.cosEpsT*t) * math.Cos(arg)
	}
	return Nutation{
		Dpsi: dpsi * radPerPoint1Milliarcsec,
		Deps: deps * radPerPoint1Milliarcsec,
	}
}

// delaunayIAU1980 returns the Delaunay arguments of the IAU 1980 theory.
// The integer-revolution part of each argument is carried separately to
// preserve precision over long spans.
func delaunayIAU1980(t float64) delaunayArgs {
	norm := func(poly float64, revolutions float64) float64 {
		a := arcsecToRad(poly) + math.Mod(revolutions*t, 1)*tau
		return normalizeTwoPi(a, 0)
	}
	return delaunayArgs{
		l:  norm(polynomial(t, 485866.733, 715922.633, 31.31, 0.064), 1325),
		lp: norm(polynomial(t, 1287099.804, 1292581.224, -0.577, -0.012), 99),
		f:  norm(polynomial(t, 335778.877, 295263.137, -13.257, 0.011), 1342),
		d:  norm(polynomial(t, 1072261.307, 1105601.328, -6.891, 0.019), 1236),
		om: norm(polynomial(t, 450160.280, -482890.539, 7.455, 0.008), -5),
	}
}

// NutationIAU2000B evaluates the 77-term IAU 2000B lunisolar nutation
// series at t Julian centuries TDB since J2000. Fixed offsets stand in
// for the planetary terms of the full 2000A model.
func NutationIAU2000B(t float64) Nutation {
	args := delaunaySimon1994(t)
	var dpsi, deps float64
	for i := len(nutationSeries2000B) - 1; i >= 0; i-- {
		c := &nutationSeries2000B[i]
		arg := math.Mod(c.l*args.l+c.lp*args.lp+c.f*args.f+c.d*args.d+c.om*args.om, tau)
		sin, cos := math.Sincos(arg)
		dpsi += (c.sinPsi+c.sinPsiT*t)*sin + c.cosPsi*cos
		deps += (c.cosEps+c.cosEpsT*t)*cos + c.sinEps*sin
	}
	return Nutation{
		Dpsi: dpsi*radPerPoint1Microarcsec - 0.135*radPerMilliarcsec,
		Deps: deps*radPerPoint1Microarcsec + 0.388*radPerMilliarcsec,
	}
}

// NutationIAU2006B applies the Wallace & Capitaine (2006) adjustments for
// compatibility with IAU 2006 precession to the IAU 2000B series. The
// compact series stays within a few nanoradians of the full IAU
// 2006/2000A model.
func NutationIAU2006B(t float64) Nutation {
	nut := NutationIAU2000B(t)
	j2Correction := -2.7774e-6 * t
	nut.Dpsi += (0.4697e-6 + j2Correction) * nut.Dpsi
	nut.Deps += j2Correction * nut.Deps
	return nut
}
