package earth

// Series for the CIO locator s, tabulated per order of the development in
// time. Each term carries multipliers of the eight fundamental arguments
// (l, l', F, D, Ω, LVe, LE, pA) and sine/cosine coefficients in
// arcseconds.
type cioTerm struct {
	coeffs   [8]float64
	sin, cos float64
}

// Polynomial part of the development, arcseconds per power of t.
var cioPolyCoeffs = [6]float64{
	94.00e-6,
	3808.65e-6,
	-122.68e-6,
	-72574.11e-6,
	27.98e-6,
	15.62e-6,
}

var cioZeroOrder = [33]cioTerm{
	{[8]float64{0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, -2640.73e-6, 0.39e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0}, -63.53e-6, 0.02e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 3.0, 0.0, 0.0, 0.0}, -11.75e-6, -0.01e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 1.0, 0.0, 0.0, 0.0}, -11.21e-6, -0.01e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, 4.57e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 3.0, 0.0, 0.0, 0.0}, -2.02e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 1.0, 0.0, 0.0, 0.0}, -1.98e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 3.0, 0.0, 0.0, 0.0}, 1.72e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 1.41e-6, 0.01e-6},
	{[8]float64{0.0, 1.0, 0.0, 0.0, -1.0, 0.0, 0.0, 0.0}, 1.26e-6, 0.01e-6},
	{[8]float64{1.0, 0.0, 0.0, 0.0, -1.0, 0.0, 0.0, 0.0}, 0.63e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 0.63e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, 2.0, -2.0, 3.0, 0.0, 0.0, 0.0}, -0.46e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, 2.0, -2.0, 1.0, 0.0, 0.0, 0.0}, -0.45e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 4.0, -4.0, 4.0, 0.0, 0.0, 0.0}, -0.36e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 1.0, -1.0, 1.0, -8.0, 12.0, 0.0}, 0.24e-6, 0.12e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 0.0, 0.0, 0.0, 0.0}, -0.32e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}, -0.28e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 2.0, 0.0, 3.0, 0.0, 0.0, 0.0}, -0.27e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 2.0, 0.0, 1.0, 0.0, 0.0, 0.0}, -0.26e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 0.0, 0.0, 0.0, 0.0}, 0.21e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, -2.0, 2.0, -3.0, 0.0, 0.0, 0.0}, -0.19e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, -2.0, 2.0, -1.0, 0.0, 0.0, 0.0}, -0.18e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 0.0, 8.0,-13.0, -1.0}, 0.10e-6, -0.05e-6},
	{[8]float64{0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0, 0.0}, -0.15e-6, 0.00e-6},
	{[8]float64{2.0, 0.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0}, 0.14e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, 0.14e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, -2.0, 1.0, 0.0, 0.0, 0.0}, -0.14e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, -2.0, -1.0, 0.0, 0.0, 0.0}, -0.14e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 4.0, -2.0, 4.0, 0.0, 0.0, 0.0}, -0.13e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 4.0, 0.0, 0.0, 0.0}, 0.11e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, -2.0, 0.0, -3.0, 0.0, 0.0, 0.0}, -0.11e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0}, -0.11e-6, 0.00e-6},
}

var cioFirstOrder = [3]cioTerm{
	{[8]float64{0.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0}, -0.07e-6, 3.57e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 1.73e-6, -0.03e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 3.0, 0.0, 0.0, 0.0}, 0.00e-6, 0.48e-6},
}

var cioSecondOrder = [25]cioTerm{
	{[8]float64{0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 743.52e-6, -0.17e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, 56.91e-6, 0.06e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}, 9.84e-6, -0.01e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0}, -8.85e-6, 0.01e-6},
	{[8]float64{0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, -6.38e-6, -0.05e-6},
	{[8]float64{1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, -3.07e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, 2.23e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 1.67e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}, 1.30e-6, 0.00e-6},
	{[8]float64{0.0, 1.0, -2.0, 2.0, -2.0, 0.0, 0.0, 0.0}, 0.93e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, -2.0, 0.0, 0.0, 0.0, 0.0}, 0.68e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 1.0, 0.0, 0.0, 0.0}, -0.55e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, -2.0, 0.0, -2.0, 0.0, 0.0, 0.0}, 0.53e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0, 0.0}, -0.27e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, -0.27e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, -2.0, -2.0, -2.0, 0.0, 0.0, 0.0}, -0.26e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 0.0, 0.0, -1.0, 0.0, 0.0, 0.0}, -0.25e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 2.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 0.22e-6, 0.00e-6},
	{[8]float64{2.0, 0.0, 0.0, -2.0, 0.0, 0.0, 0.0, 0.0}, -0.21e-6, 0.00e-6},
	{[8]float64{2.0, 0.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0}, 0.20e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 2.0, 2.0, 0.0, 0.0, 0.0}, 0.17e-6, 0.00e-6},
	{[8]float64{2.0, 0.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}, 0.13e-6, 0.00e-6},
	{[8]float64{2.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, -0.13e-6, 0.00e-6},
	{[8]float64{1.0, 0.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, -0.12e-6, 0.00e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 0.0, 0.0, 0.0, 0.0}, -0.11e-6, 0.00e-6},
}

var cioThirdOrder = [4]cioTerm{
	{[8]float64{0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, 0.30e-6, -23.42e-6},
	{[8]float64{0.0, 0.0, 2.0, -2.0, 2.0, 0.0, 0.0, 0.0}, -0.03e-6, -1.46e-6},
	{[8]float64{0.0, 0.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}, -0.01e-6, -0.25e-6},
	{[8]float64{0.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0}, 0.00e-6, 0.23e-6},
}

var cioFourthOrder = [1]cioTerm{
	{[8]float64{0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0}, -0.26e-6, -0.01e-6},
}
