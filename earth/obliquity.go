package earth

// MeanObliquityIAU1980 returns the mean obliquity of the ecliptic per the
// IAU 1980 precession model at t Julian centuries TT since J2000, in
// radians.
func MeanObliquityIAU1980(t float64) float64 {
	return arcsecToRad(polynomial(t, 84381.448, -46.8150, -0.00059, 0.001813))
}

// MeanObliquityIAU2006 returns the mean obliquity of the ecliptic per the
// IAU 2006 precession model at t Julian centuries TT since J2000, in
// radians.
func MeanObliquityIAU2006(t float64) float64 {
	return arcsecToRad(polynomial(t,
		84381.406, -46.836769, -0.0001831, 0.00200340, -0.000000576, -0.0000000434))
}
