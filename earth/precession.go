package earth

import (
	"math"

	"github.com/signalsfoundry/astrotime/geom"
)

// Angular offsets of the ICRS pole and origin from the J2000 mean equator
// and equinox (IAU 2000 frame bias).
const (
	dPsiBias = -0.041775 * radPerArcsec
	dEpsBias = -0.0068192 * radPerArcsec
	dRA0     = -0.0146 * radPerArcsec

	// Obliquity of the ecliptic at J2000 per the IAU 1980 model.
	eps0 = 84381.448 * radPerArcsec
)

// FrameBias returns the fixed rotation from the ICRS to the J2000 mean
// equator and equinox.
func FrameBias() geom.Mat3 {
	return geom.RotationX(-dEpsBias).
		MulMat(geom.RotationY(math.Sin(eps0) * dPsiBias)).
		MulMat(geom.RotationZ(dRA0))
}

// BiasPrecessionIAU1976 returns the rotation from the ICRS to the mean
// equator and equinox of date per the IAU 1976 precession model, at t
// Julian centuries TT since J2000.
func BiasPrecessionIAU1976(t float64) geom.Mat3 {
	const w = 2306.2181
	zeta := arcsecToRad((w + (0.30188+0.017998*t)*t) * t)
	z := arcsecToRad((w + (1.09468+0.018203*t)*t) * t)
	theta := arcsecToRad((2004.3109 + (-0.42665-0.041833*t)*t) * t)

	rp := geom.RotationZ(-z).
		MulMat(geom.RotationY(theta)).
		MulMat(geom.RotationZ(-zeta))
	return rp.MulMat(FrameBias())
}

// BiasPrecessionIAU2000 returns the rotation from the ICRS to the mean
// equator and equinox of date using the Lieske et al. (1977) angles with
// the IAU 2000 precession-rate corrections, at t Julian centuries TT
// since J2000.
func BiasPrecessionIAU2000(t float64) geom.Mat3 {
	dpsipr, depspr := PrecessionCorrectionsIAU2000(t)
	psia := arcsecToRad(polynomial(t, 0, 5038.7784, -1.07259, -0.001147)) + dpsipr
	oma := eps0 + arcsecToRad(polynomial(t, 0, 0, 0.05127, -0.007726)) + depspr
	chia := arcsecToRad(polynomial(t, 0, 10.5526, -2.38064, -0.001125))

	rp := geom.RotationZ(chia).
		MulMat(geom.RotationX(-oma)).
		MulMat(geom.RotationZ(-psia)).
		MulMat(geom.RotationX(eps0))
	return rp.MulMat(FrameBias())
}

// BiasPrecessionIAU2006 returns the rotation from the ICRS to the mean
// equator and equinox of date using the IAU 2006 Fukushima-Williams
// angles, at t Julian centuries TT since J2000. The frame bias is folded
// into the angles.
func BiasPrecessionIAU2006(t float64) geom.Mat3 {
	gamb := arcsecToRad(polynomial(t,
		-0.052928, 10.556378, 0.4932044, -0.00031238, -0.000002788, 0.0000000260))
	phib := arcsecToRad(polynomial(t,
		84381.412819, -46.811016, 0.0511268, 0.00053289, -0.000000440, -0.0000000176))
	psib := arcsecToRad(polynomial(t,
		-0.041775, 5038.481484, 1.5584175, -0.00018522, -0.000026452, -0.0000000148))
	epsa := MeanObliquityIAU2006(t)

	return geom.RotationX(-epsa).
		MulMat(geom.RotationZ(-psib)).
		MulMat(geom.RotationX(phib)).
		MulMat(geom.RotationZ(gamb))
}

// PrecessionCorrectionsIAU2000 returns the IAU 2000 precession-rate
// corrections to the IAU 1976 model in longitude and obliquity, radians,
// at t Julian centuries TT since J2000.
func PrecessionCorrectionsIAU2000(t float64) (dpsipr, depspr float64) {
	const (
		precor = -0.29965 * radPerArcsec
		oblcor = -0.02524 * radPerArcsec
	)
	return t * precor, t * oblcor
}
