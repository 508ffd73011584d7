package earth

import "math"

// EarthRotationAngle returns the Earth rotation angle (IAU 2000) at d
// days UT1 since J2000, in radians in [0, 2π).
func EarthRotationAngle(ut1Days float64) float64 {
	f := fract(ut1Days)
	return modTwoPi(tau * (f + 0.7790572732640 + 0.00273781191135448*ut1Days))
}

// Coefficients of the IAU 1982 GMST-UT1 model, seconds of time. The
// leading constant is referred to noon rather than midnight.
const (
	gmst1982A = 24110.54841 - 43200.0
	gmst1982B = 8640184.812866
	gmst1982C = 0.093104
	gmst1982D = -6.2e-6
)

// GMST1982 returns Greenwich mean sidereal time per the IAU 1982 model at
// d days UT1 since J2000, radians in [0, 2π).
func GMST1982(ut1Days float64) float64 {
	t := ut1Days / daysPerCentury
	f := fract(ut1Days) * 86400.0
	seconds := polynomial(t, gmst1982A, gmst1982B, gmst1982C, gmst1982D) + f
	return modTwoPi(seconds / 86400.0 * tau)
}

// GMST2000 returns Greenwich mean sidereal time per the IAU 2000 model.
func GMST2000(ttCenturies, ut1Days float64) float64 {
	return modTwoPi(EarthRotationAngle(ut1Days) + arcsecToRad(polynomial(ttCenturies,
		0.014506, 4612.15739966, 1.39667721, -0.00009344, 0.00001882)))
}

// GMST2006 returns Greenwich mean sidereal time per the IAU 2006 model.
func GMST2006(ttCenturies, ut1Days float64) float64 {
	return modTwoPi(EarthRotationAngle(ut1Days) + arcsecToRad(polynomial(ttCenturies,
		0.014506, 4612.156534, 1.3915817, -0.00000044, -0.000029956, -0.0000000368)))
}

// GAST1994 returns Greenwich apparent sidereal time per the IAU 1994
// model at d days UT1 since J2000.
func GAST1994(ut1Days float64) float64 {
	return modTwoPi(GMST1982(ut1Days) + EquationOfEquinoxes1994(ut1Days/daysPerCentury))
}

// GAST2000B returns Greenwich apparent sidereal time using the IAU 2000
// GMST model and the IAU 2000B nutation series.
func GAST2000B(ttCenturies, ut1Days float64) float64 {
	return modTwoPi(GMST2000(ttCenturies, ut1Days) + EquationOfEquinoxes2000B(ttCenturies))
}

// GAST2006B returns Greenwich apparent sidereal time using the IAU 2006
// GMST model and the IAU 2006-adjusted 2000B nutation series.
func GAST2006B(ttCenturies, ut1Days float64) float64 {
	return modTwoPi(GMST2006(ttCenturies, ut1Days) + EquationOfEquinoxes2006B(ttCenturies))
}

// EquationOfEquinoxes1994 returns the IAU 1994 equation of the equinoxes
// at t Julian centuries TDB since J2000.
func EquationOfEquinoxes1994(t float64) float64 {
	om := modTwoPi(arcsecToRad(polynomial(t, 450160.280, -482890.539, 7.455, 0.008)) +
		fract(-5.0*t)*tau)
	dpsi := NutationIAU1980(t).Dpsi
	obl := MeanObliquityIAU1980(t)
	return math.Cos(obl)*dpsi + arcsecToRad(0.00264*math.Sin(om)+0.000063*math.Sin(2*om))
}

// EquationOfEquinoxes2000 returns the IAU 2000 equation of the equinoxes
// for a given mean obliquity and nutation in longitude.
func EquationOfEquinoxes2000(ttCenturies, epsa, dpsi float64) float64 {
	return math.Cos(epsa)*dpsi + equinoxComplementaryTerms(ttCenturies)
}

// EquationOfEquinoxes2000B evaluates the IAU 2000 equation of the
// equinoxes with the IAU 2000B nutation series.
func EquationOfEquinoxes2000B(ttCenturies float64) float64 {
	_, depspr := PrecessionCorrectionsIAU2000(ttCenturies)
	epsa := MeanObliquityIAU1980(ttCenturies) + depspr
	dpsi := NutationIAU2000B(ttCenturies).Dpsi
	return EquationOfEquinoxes2000(ttCenturies, epsa, dpsi)
}

// EquationOfEquinoxes2006B evaluates the IAU 2000 equation of the
// equinoxes with IAU 2006 obliquity and the adjusted 2000B nutation.
func EquationOfEquinoxes2006B(ttCenturies float64) float64 {
	epsa := MeanObliquityIAU2006(ttCenturies)
	dpsi := NutationIAU2006B(ttCenturies).Dpsi
	return EquationOfEquinoxes2000(ttCenturies, epsa, dpsi)
}

// equinoxComplementaryTerms evaluates the complementary terms of the IAU
// 2000 equation of the equinoxes.
func equinoxComplementaryTerms(t float64) float64 {
	fa := fundamentalArgsIERS03(t)

	fold := func(terms []equinoxTerm) float64 {
		var s float64
		for i := len(terms) - 1; i >= 0; i-- {
			term := &terms[i]
			var a float64
			for j, n := range term.nfa {
				a += float64(n) * fa[j]
			}
			sin, cos := math.Sincos(a)
			s += term.s*sin + term.c*cos
		}
		return s
	}

	s0 := fold(equinoxTermsE0[:])
	s1 := fold(equinoxTermsE1[:])
	return arcsecToRad(s0 + s1*t)
}
