package earth

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/astrotime/geom"
)

// Convention selects a coherent set of IERS Earth attitude models.
type Convention int

const (
	// IERS1996: IAU 1976 precession, IAU 1980 nutation, IAU 1982/1994
	// sidereal angles, classical polar motion.
	IERS1996 Convention = iota
	// IERS2003: IAU 2000 precession corrections, IAU 2000B nutation,
	// IAU 2000 sidereal angles, polar motion with the TIO locator.
	IERS2003
	// IERS2010: IAU 2006 precession, IAU 2000B nutation with the IAU
	// 2006 adjustments, IAU 2006 sidereal angles.
	IERS2010
)

func (c Convention) String() string {
	switch c {
	case IERS1996:
		return "IERS1996"
	case IERS2003:
		return "IERS2003"
	case IERS2010:
		return "IERS2010"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// Corrections are observed celestial pole offsets: dX, dY for the 2003
// and 2010 conventions, dψ, dε for 1996. Radians.
type Corrections struct {
	X, Y float64
}

// IsZero reports whether both corrections are exactly zero.
func (c Corrections) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// MeanObliquity returns the mean obliquity of the ecliptic for the
// convention at t Julian centuries TT since J2000.
func (c Convention) MeanObliquity(ttCenturies float64) float64 {
	if c == IERS2010 {
		return MeanObliquityIAU2006(ttCenturies)
	}
	return MeanObliquityIAU1980(ttCenturies)
}

// Nutation returns the nutation components for the convention at t Julian
// centuries TDB since J2000.
func (c Convention) Nutation(tdbCenturies float64) Nutation {
	switch c {
	case IERS1996:
		return NutationIAU1980(tdbCenturies)
	case IERS2010:
		return NutationIAU2006B(tdbCenturies)
	}
	return NutationIAU2000B(tdbCenturies)
}

// BiasPrecession returns the rotation from the ICRS to the mean equator
// and equinox of date for the convention.
func (c Convention) BiasPrecession(ttCenturies float64) geom.Mat3 {
	switch c {
	case IERS1996:
		return BiasPrecessionIAU1976(ttCenturies)
	case IERS2010:
		return BiasPrecessionIAU2006(ttCenturies)
	}
	return BiasPrecessionIAU2000(ttCenturies)
}

// eclipticCorrections rotates equatorial pole offsets (dX, dY) into
// corrections to nutation in longitude and obliquity. The 1996 convention
// publishes its corrections with respect to the ecliptic already.
func (c Convention) eclipticCorrections(corr Corrections, nut Nutation, epsa float64, rpb geom.Mat3) Corrections {
	if c == IERS1996 {
		return corr
	}
	rbpn := nut.Matrix(epsa).MulMat(rpb)
	v := rbpn.MulVec(geom.Vec3{X: corr.X, Y: corr.Y})
	return Corrections{X: v.X / math.Sin(epsa), Y: v.Y}
}

// NutationMatrix returns the rotation from the mean to the true equator
// and equinox of date, applying any celestial pole offsets.
func (c Convention) NutationMatrix(tdbCenturies float64, corr Corrections) geom.Mat3 {
	epsa := c.MeanObliquity(tdbCenturies)
	nut := c.Nutation(tdbCenturies)
	if !corr.IsZero() {
		rpb := c.BiasPrecession(tdbCenturies)
		ecl := c.eclipticCorrections(corr, nut, epsa, rpb)
		nut.Dpsi += ecl.X
		nut.Deps += ecl.Y
	}
	return nut.Matrix(epsa)
}

// NPB returns the full bias-precession-nutation matrix for the
// convention at t Julian centuries TT since J2000.
func (c Convention) NPB(ttCenturies float64, corr Corrections) geom.Mat3 {
	return c.NutationMatrix(ttCenturies, corr).MulMat(c.BiasPrecession(ttCenturies))
}

// CIP derives the coordinates of the Celestial Intermediate Pole from the
// bias-precession-nutation matrix.
func (c Convention) CIP(ttCenturies float64, corr Corrections) CIPCoords {
	return CIPFromMatrix(c.NPB(ttCenturies, corr))
}

// GMST returns Greenwich mean sidereal time for the convention.
func (c Convention) GMST(ttCenturies, ut1Days float64) float64 {
	switch c {
	case IERS1996:
		return GMST1982(ut1Days)
	case IERS2010:
		return GMST2006(ttCenturies, ut1Days)
	}
	return GMST2000(ttCenturies, ut1Days)
}

// GAST returns Greenwich apparent sidereal time for the convention,
// applying any celestial pole offsets.
func (c Convention) GAST(ttCenturies, ut1Days float64, corr Corrections) float64 {
	if corr.IsZero() {
		switch c {
		case IERS1996:
			return GAST1994(ut1Days)
		case IERS2010:
			return GAST2006B(ttCenturies, ut1Days)
		}
		return GAST2000B(ttCenturies, ut1Days)
	}

	gmst := c.GMST(ttCenturies, ut1Days)
	rpb := c.BiasPrecession(ttCenturies)
	epsa := c.MeanObliquity(ttCenturies)
	nut := c.Nutation(ttCenturies)
	ecl := c.eclipticCorrections(corr, nut, epsa, rpb)
	nut.Dpsi += ecl.X
	nut.Deps += ecl.Y

	if c == IERS1996 {
		ee := EquationOfEquinoxes1994(ttCenturies)
		return modTwoPi(gmst + ee + math.Cos(epsa)*ecl.X)
	}
	ee := EquationOfEquinoxes2000(ttCenturies, epsa, nut.Dpsi)
	return modTwoPi(gmst + ee)
}

// PolarMotion returns the polar motion rotation for the convention. A
// zero pole yields the identity.
func (c Convention) PolarMotion(ttCenturies float64, pole PoleCoords) geom.Mat3 {
	if pole.IsZero() {
		return geom.Identity()
	}
	if c == IERS1996 {
		return pole.Matrix()
	}
	return pole.MatrixIAU2000(TIOLocator(ttCenturies))
}
