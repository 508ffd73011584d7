package earth

import "github.com/signalsfoundry/astrotime/geom"

// PoleCoords are the coordinates of the Celestial Intermediate Pole in
// the ITRS, radians.
type PoleCoords struct {
	Xp, Yp float64
}

// IsZero reports whether both pole coordinates are exactly zero.
func (p PoleCoords) IsZero() bool {
	return p.Xp == 0 && p.Yp == 0
}

// Matrix forms the classical polar motion rotation from the ITRS to the
// terrestrial intermediate frame.
func (p PoleCoords) Matrix() geom.Mat3 {
	return geom.RotationY(-p.Xp).MulMat(geom.RotationX(-p.Yp))
}

// MatrixIAU2000 forms the IAU 2000 polar motion rotation, which appends
// the TIO locator rotation sp.
func (p PoleCoords) MatrixIAU2000(sp float64) geom.Mat3 {
	return p.Matrix().MulMat(geom.RotationZ(sp))
}
