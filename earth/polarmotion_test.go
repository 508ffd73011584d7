package earth

import (
	"testing"

	"github.com/signalsfoundry/astrotime/geom"
)

// Reference matrix computed with ERFA (pom00).
func TestPolarMotionMatrixIAU2000(t *testing.T) {
	pole := PoleCoords{Xp: 2.55060238e-7, Yp: 1.860359247e-6}
	const sp = -1.3671745807288915e-11

	want := geom.Mat3{
		{0.9999999999999675, -1.367174580728847e-11, 2.550602379999972e-7},
		{1.4146249479570297e-11, 0.9999999999982695, -1.8603592469988663e-6},
		{-2.5506023797412153e-7, 1.860359247002414e-6, 0.999999999998237},
	}
	assertMat(t, "polar motion", pole.MatrixIAU2000(sp), want, 1e-12)
}

func TestPoleCoordsIsZero(t *testing.T) {
	if !(PoleCoords{}).IsZero() {
		t.Error("zero pole should report IsZero")
	}
	if (PoleCoords{Xp: 1e-9}).IsZero() {
		t.Error("non-zero pole should not report IsZero")
	}
}
