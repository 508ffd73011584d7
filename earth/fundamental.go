package earth

import "math"

// delaunayArgs bundles the five Delaunay arguments of the lunisolar
// nutation theories, in radians: the mean anomalies of the Moon and Sun,
// the Moon's mean argument of latitude, the mean elongation of the Moon
// from the Sun, and the mean longitude of the Moon's ascending node.
type delaunayArgs struct {
	l, lp, f, d, om float64
}

// delaunayIERS03 returns the Delaunay arguments per IERS Conventions
// (2003) at t Julian centuries TDB since J2000.
func delaunayIERS03(t float64) delaunayArgs {
	return delaunayArgs{
		l:  arcsecToRadTwoPi(polynomial(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470)),
		lp: arcsecToRadTwoPi(polynomial(t, 1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149)),
		f:  arcsecToRadTwoPi(polynomial(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417)),
		d:  arcsecToRadTwoPi(polynomial(t, 1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169)),
		om: arcsecToRadTwoPi(polynomial(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939)),
	}
}

// delaunaySimon1994 returns the two-term Simon et al. (1994) truncation of
// the Delaunay arguments used by the IAU 2000B nutation model.
func delaunaySimon1994(t float64) delaunayArgs {
	return delaunayArgs{
		l:  arcsecToRadTwoPi(polynomial(t, 485868.249036, 1717915923.2178)),
		lp: arcsecToRadTwoPi(polynomial(t, 1287104.79305, 129596581.0481)),
		f:  arcsecToRadTwoPi(polynomial(t, 335779.526232, 1739527262.8478)),
		d:  arcsecToRadTwoPi(polynomial(t, 1072260.70369, 1602961601.2090)),
		om: arcsecToRadTwoPi(polynomial(t, 450160.398036, -6962890.5431)),
	}
}

// Mean heliocentric longitudes of Venus and Earth per IERS Conventions
// (2003), radians.
func venusLongitudeIERS03(t float64) float64 {
	return math.Mod(3.176146697+1021.3285546211*t, tau)
}

func earthLongitudeIERS03(t float64) float64 {
	return math.Mod(1.753470314+628.3075849991*t, tau)
}

// generalPrecessionIERS03 returns the general accumulated precession in
// longitude, radians.
func generalPrecessionIERS03(t float64) float64 {
	return polynomial(t, 0, 0.024381750, 0.00000538691)
}

// fundamentalArgsIERS03 returns the eight-argument vector l, l', F, D, Ω,
// LVe, LE, pA shared by the CIO locator series and the complementary
// terms of the equation of the equinoxes. The ordering is significant.
func fundamentalArgsIERS03(t float64) [8]float64 {
	args := delaunayIERS03(t)
	return [8]float64{
		args.l, args.lp, args.f, args.d, args.om,
		venusLongitudeIERS03(t),
		earthLongitudeIERS03(t),
		generalPrecessionIERS03(t),
	}
}
