package earth

// The IAU 1980 nutation series: multipliers of the Delaunay arguments and
// the longitude/obliquity coefficients in units of 0.1 mas, transcribed
// from the IAU SOFA NUT80 tabulation.
type nutation1980Coeff struct {
	l, lp, f, d, om float64
	sinPsi, sinPsiT float64
	cosEps, cosEpsT float64
}

var nutationSeries1980 = [106]nutation1980Coeff{
	{0.0, 0.0, 0.0, 0.0, 1.0, -171996.0, -174.2, 92025.0, 8.9},
	{0.0, 0.0, 0.0, 0.0, 2.0, 2062.0, 0.2, -895.0, 0.5},
	{-2.0, 0.0, 2.0, 0.0, 1.0, 46.0, 0.0, -24.0, 0.0},
	{2.0, 0.0, -2.0, 0.0, 0.0, 11.0, 0.0, 0.0, 0.0},
	{-2.0, 0.0, 2.0, 0.0, 2.0, -3.0, 0.0, 1.0, 0.0},
	{1.0, -1.0, 0.0, -1.0, 0.0, -3.0, 0.0, 0.0, 0.0},
	{0.0, -2.0, 2.0, -2.0, 1.0, -2.0, 0.0, 1.0, 0.0},
	{2.0, 0.0, -2.0, 0.0, 1.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 2.0, -2.0, 2.0, -13187.0, -1.6, 5736.0, -3.1},
	{0.0, 1.0, 0.0, 0.0, 0.0, 1426.0, -3.4, 54.0, -0.1},
	{0.0, 1.0, 2.0, -2.0, 2.0, -517.0, 1.2, 224.0, -0.6},
	{0.0, -1.0, 2.0, -2.0, 2.0, 217.0, -0.5, -95.0, 0.3},
	{0.0, 0.0, 2.0, -2.0, 1.0, 129.0, 0.1, -70.0, 0.0},
	{2.0, 0.0, 0.0, -2.0, 0.0, 48.0, 0.0, 1.0, 0.0},
	{0.0, 0.0, 2.0, -2.0, 0.0, -22.0, 0.0, 0.0, 0.0},
	{0.0, 2.0, 0.0, 0.0, 0.0, 17.0, -0.1, 0.0, 0.0},
	{0.0, 1.0, 0.0, 0.0, 1.0, -15.0, 0.0, 9.0, 0.0},
	{0.0, 2.0, 2.0, -2.0, 2.0, -16.0, 0.1, 7.0, 0.0},
	{0.0, -1.0, 0.0, 0.0, 1.0, -12.0, 0.0, 6.0, 0.0},
	{-2.0, 0.0, 0.0, 2.0, 1.0, -6.0, 0.0, 3.0, 0.0},
	{0.0, -1.0, 2.0, -2.0, 1.0, -5.0, 0.0, 3.0, 0.0},
	{2.0, 0.0, 0.0, -2.0, 1.0, 4.0, 0.0, -2.0, 0.0},
	{0.0, 1.0, 2.0, -2.0, 1.0, 4.0, 0.0, -2.0, 0.0},
	{1.0, 0.0, 0.0, -1.0, 0.0, -4.0, 0.0, 0.0, 0.0},
	{2.0, 1.0, 0.0, -2.0, 0.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, -2.0, 2.0, 1.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, -2.0, 2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 0.0, 0.0, 2.0, 1.0, 0.0, 0.0, 0.0},
	{-1.0, 0.0, 0.0, 1.0, 1.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 2.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 2.0, 0.0, 2.0, -2274.0, -0.2, 977.0, -0.5},
	{1.0, 0.0, 0.0, 0.0, 0.0, 712.0, 0.1, -7.0, 0.0},
	{0.0, 0.0, 2.0, 0.0, 1.0, -386.0, -0.4, 200.0, 0.0},
	{1.0, 0.0, 2.0, 0.0, 2.0, -301.0, 0.0, 129.0, -0.1},
	{1.0, 0.0, 0.0, -2.0, 0.0, -158.0, 0.0, -1.0, 0.0},
	{-1.0, 0.0, 2.0, 0.0, 2.0, 123.0, 0.0, -53.0, 0.0},
	{0.0, 0.0, 0.0, 2.0, 0.0, 63.0, 0.0, -2.0, 0.0},
	{1.0, 0.0, 0.0, 0.0, 1.0, 63.0, 0.1, -33.0, 0.0},
	{-1.0, 0.0, 0.0, 0.0, 1.0, -58.0, -0.1, 32.0, 0.0},
	{-1.0, 0.0, 2.0, 2.0, 2.0, -59.0, 0.0, 26.0, 0.0},
	{1.0, 0.0, 2.0, 0.0, 1.0, -51.0, 0.0, 27.0, 0.0},
	{0.0, 0.0, 2.0, 2.0, 2.0, -38.0, 0.0, 16.0, 0.0},
	{2.0, 0.0, 0.0, 0.0, 0.0, 29.0, 0.0, -1.0, 0.0},
	{1.0, 0.0, 2.0, -2.0, 2.0, 29.0, 0.0, -12.0, 0.0},
	{2.0, 0.0, 2.0, 0.0, 2.0, -31.0, 0.0, 13.0, 0.0},
	{0.0, 0.0, 2.0, 0.0, 0.0, 26.0, 0.0, -1.0, 0.0},
	{-1.0, 0.0, 2.0, 0.0, 1.0, 21.0, 0.0, -10.0, 0.0},
	{-1.0, 0.0, 0.0, 2.0, 1.0, 16.0, 0.0, -8.0, 0.0},
	{1.0, 0.0, 0.0, -2.0, 1.0, -13.0, 0.0, 7.0, 0.0},
	{-1.0, 0.0, 2.0, 2.0, 1.0, -10.0, 0.0, 5.0, 0.0},
	{1.0, 1.0, 0.0, -2.0, 0.0, -7.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 2.0, 0.0, 2.0, 7.0, 0.0, -3.0, 0.0},
	{0.0, -1.0, 2.0, 0.0, 2.0, -7.0, 0.0, 3.0, 0.0},
	{1.0, 0.0, 2.0, 2.0, 2.0, -8.0, 0.0, 3.0, 0.0},
	{1.0, 0.0, 0.0, 2.0, 0.0, 6.0, 0.0, 0.0, 0.0},
	{2.0, 0.0, 2.0, -2.0, 2.0, 6.0, 0.0, -3.0, 0.0},
	{0.0, 0.0, 0.0, 2.0, 1.0, -6.0, 0.0, 3.0, 0.0},
	{0.0, 0.0, 2.0, 2.0, 1.0, -7.0, 0.0, 3.0, 0.0},
	{1.0, 0.0, 2.0, -2.0, 1.0, 6.0, 0.0, -3.0, 0.0},
	{0.0, 0.0, 0.0, -2.0, 1.0, -5.0, 0.0, 3.0, 0.0},
	{1.0, -1.0, 0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 0.0},
	{2.0, 0.0, 2.0, 0.0, 1.0, -5.0, 0.0, 3.0, 0.0},
	{0.0, 1.0, 0.0, -2.0, 0.0, -4.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, -2.0, 0.0, 0.0, 4.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 0.0, 1.0, 0.0, -4.0, 0.0, 0.0, 0.0},
	{1.0, 1.0, 0.0, 0.0, 0.0, -3.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, 2.0, 0.0, 0.0, 3.0, 0.0, 0.0, 0.0},
	{1.0, -1.0, 2.0, 0.0, 2.0, -3.0, 0.0, 1.0, 0.0},
	{-1.0, -1.0, 2.0, 2.0, 2.0, -3.0, 0.0, 1.0, 0.0},
	{-2.0, 0.0, 0.0, 0.0, 1.0, -2.0, 0.0, 1.0, 0.0},
	{3.0, 0.0, 2.0, 0.0, 2.0, -3.0, 0.0, 1.0, 0.0},
	{0.0, -1.0, 2.0, 2.0, 2.0, -3.0, 0.0, 1.0, 0.0},
	{1.0, 1.0, 2.0, 0.0, 2.0, 2.0, 0.0, -1.0, 0.0},
	{-1.0, 0.0, 2.0, -2.0, 1.0, -2.0, 0.0, 1.0, 0.0},
	{2.0, 0.0, 0.0, 0.0, 1.0, 2.0, 0.0, -1.0, 0.0},
	{1.0, 0.0, 0.0, 0.0, 2.0, -2.0, 0.0, 1.0, 0.0},
	{3.0, 0.0, 0.0, 0.0, 0.0, 2.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 2.0, 1.0, 2.0, 2.0, 0.0, -1.0, 0.0},
	{-1.0, 0.0, 0.0, 0.0, 2.0, 1.0, 0.0, -1.0, 0.0},
	{1.0, 0.0, 0.0, -4.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{-2.0, 0.0, 2.0, 2.0, 2.0, 1.0, 0.0, -1.0, 0.0},
	{-1.0, 0.0, 2.0, 4.0, 2.0, -2.0, 0.0, 1.0, 0.0},
	{2.0, 0.0, 0.0, -4.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{1.0, 1.0, 2.0, -2.0, 2.0, 1.0, 0.0, -1.0, 0.0},
	{1.0, 0.0, 2.0, 2.0, 1.0, -1.0, 0.0, 1.0, 0.0},
	{-2.0, 0.0, 2.0, 4.0, 2.0, -1.0, 0.0, 1.0, 0.0},
	{-1.0, 0.0, 4.0, 0.0, 2.0, 1.0, 0.0, 0.0, 0.0},
	{1.0, -1.0, 0.0, -2.0, 0.0, 1.0, 0.0, 0.0, 0.0},
	{2.0, 0.0, 2.0, -2.0, 1.0, 1.0, 0.0, -1.0, 0.0},
	{2.0, 0.0, 2.0, 2.0, 2.0, -1.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, 0.0, 2.0, 1.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 4.0, -2.0, 2.0, 1.0, 0.0, 0.0, 0.0},
	{3.0, 0.0, 2.0, -2.0, 2.0, 1.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, 2.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 2.0, 0.0, 1.0, 1.0, 0.0, 0.0, 0.0},
	{-1.0, -1.0, 0.0, 2.0, 1.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, -2.0, 0.0, 1.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 2.0, -1.0, 2.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 0.0, 2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, -2.0, -2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, -1.0, 2.0, 0.0, 1.0, -1.0, 0.0, 0.0, 0.0},
	{1.0, 1.0, 0.0, -2.0, 1.0, -1.0, 0.0, 0.0, 0.0},
	{1.0, 0.0, -2.0, 2.0, 0.0, -1.0, 0.0, 0.0, 0.0},
	{2.0, 0.0, 0.0, 2.0, 0.0, 1.0, 0.0, 0.0, 0.0},
	{0.0, 0.0, 2.0, 4.0, 2.0, -1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0},
}
