package earth

import (
	"math"

	"github.com/signalsfoundry/astrotime/geom"
)

// CIPCoords are the (X, Y) coordinates of the Celestial Intermediate Pole
// in the ICRS, radians.
type CIPCoords struct {
	X, Y float64
}

// CIPFromMatrix extracts the CIP coordinates from a
// bias-precession-nutation matrix.
func CIPFromMatrix(npb geom.Mat3) CIPCoords {
	return CIPCoords{X: npb[2][0], Y: npb[2][1]}
}

// CelestialToIntermediate forms the celestial-to-intermediate matrix for
// the CIP coordinates and the CIO locator s.
func (c CIPCoords) CelestialToIntermediate(s float64) geom.Mat3 {
	r2 := c.X*c.X + c.Y*c.Y
	var e float64
	if r2 > 0 {
		e = math.Atan2(c.Y, c.X)
	}
	d := math.Atan(math.Sqrt(r2 / (1 - r2)))

	return geom.RotationZ(-(e + s)).
		MulMat(geom.RotationY(d)).
		MulMat(geom.RotationZ(e))
}

// CIOLocator computes the Celestial Intermediate Origin locator s (IAU
// 2006) at t Julian centuries TDB since J2000, given the CIP coordinates.
func CIOLocator(t float64, cip CIPCoords) float64 {
	fa := fundamentalArgsIERS03(t)
	evaluated := [6]float64{
		evaluateCIOOrder(&fa, cioPolyCoeffs[0], cioZeroOrder[:]),
		evaluateCIOOrder(&fa, cioPolyCoeffs[1], cioFirstOrder[:]),
		evaluateCIOOrder(&fa, cioPolyCoeffs[2], cioSecondOrder[:]),
		evaluateCIOOrder(&fa, cioPolyCoeffs[3], cioThirdOrder[:]),
		evaluateCIOOrder(&fa, cioPolyCoeffs[4], cioFourthOrder[:]),
		cioPolyCoeffs[5],
	}
	s := arcsecToRad(polynomial(t, evaluated[:]...))
	return s - cip.X*cip.Y/2
}

func evaluateCIOOrder(fa *[8]float64, polyCoeff float64, terms []cioTerm) float64 {
	acc := polyCoeff
	for i := len(terms) - 1; i >= 0; i-- {
		term := &terms[i]
		var a float64
		for j, coeff := range term.coeffs {
			a += coeff * fa[j]
		}
		sin, cos := math.Sincos(a)
		acc += term.sin*sin + term.cos*cos
	}
	return acc
}

// TIOLocator approximates the Terrestrial Intermediate Origin locator s'
// (IAU 2000) at t Julian centuries TT since J2000. The locator is
// dominated by secular drift.
func TIOLocator(t float64) float64 {
	const secularDrift = -47e-6 // arcseconds per century
	return arcsecToRad(secularDrift * t)
}
