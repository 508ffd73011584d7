// Package earth implements the IERS Earth attitude models: fundamental
// astronomical arguments, nutation, precession, sidereal angles, the
// celestial and terrestrial intermediate origins, polar motion, and Earth
// orientation data providers.
//
// Model functions take Julian centuries (or days) since J2000 as plain
// float64 values. Each model names the time scale its argument is
// expected in; the sub-second differences between TT and TDB are far
// below the accuracy of the series, so callers may pass either where a
// model asks for TDB.
package earth

import "math"

const (
	tau             = 2 * math.Pi
	arcsecPerCircle = 360 * 60 * 60
	radPerArcsec    = tau / arcsecPerCircle

	daysPerCentury = 36525.0
)

// arcsecToRad converts arcseconds to radians.
func arcsecToRad(v float64) float64 { return v * radPerArcsec }

// arcsecToRadTwoPi converts arcseconds to radians, modulo one circle.
// The remainder keeps the sign of the input.
func arcsecToRadTwoPi(v float64) float64 { return arcsecToRad(math.Mod(v, arcsecPerCircle)) }

// modTwoPi normalizes an angle to [0, 2π).
func modTwoPi(a float64) float64 {
	w := math.Mod(a, tau)
	if w < 0 {
		w += tau
	}
	return w
}

// normalizeTwoPi normalizes an angle to [center-π, center+π).
func normalizeTwoPi(a, center float64) float64 {
	return a - tau*math.Floor((a+math.Pi-center)/tau)
}

// fract returns the non-negative fractional part of v.
func fract(v float64) float64 {
	f := math.Mod(v, 1)
	if f < 0 {
		f++
	}
	return f
}

// polynomial evaluates a polynomial with coefficients given in ascending
// order of degree. Horner steps go through FMA: the fundamental arguments
// reach ~1e9 arcsec, where the ulp lost by a rounded multiply-add survives
// the mod-2pi reduction.
func polynomial(t float64, coeffs ...float64) float64 {
	var acc float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = math.FMA(acc, t, coeffs[i])
	}
	return acc
}
