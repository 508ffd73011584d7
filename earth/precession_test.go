package earth

import (
	"testing"

	"github.com/signalsfoundry/astrotime/geom"
)

// Epoch of the ERFA precession matrix fixtures: TT Julian date
// 2400000.5 + 50123.9999.
const precessionFixtureT = (50123.9999 - 51544.5) / daysPerCentury

// Reference matrix computed with ERFA (bp00).
func TestFrameBias(t *testing.T) {
	want := geom.Mat3{
		{0.9999999999999942, -7.078279744199197e-8, 8.056217146976134e-8},
		{7.078279477857338e-8, 0.999999999999997, 3.3060414542221364e-8},
		{-8.056217380986972e-8, -3.3060408839805523e-8, 0.9999999999999962},
	}
	assertMat(t, "frame bias", FrameBias(), want, 1e-14)
}

// ERFA's pmat76 excludes the frame bias, so the reference matrix is composed
// with it here.
func TestBiasPrecessionIAU1976(t *testing.T) {
	erfa := geom.Mat3{
		{0.9999995504328351, 8.696632209480961e-4, 3.7791534749598884e-4},
		{-8.696632209485112e-4, 0.9999996218428561, -1.6432847761118864e-7},
		{-3.779153474950335e-4, -1.643306746147367e-7, 0.999999928589979},
	}
	want := erfa.MulMat(FrameBias())
	assertMat(t, "IAU 1976", BiasPrecessionIAU1976(precessionFixtureT), want, 1e-12)
}

// Reference matrix computed with ERFA (pmat00).
func TestBiasPrecessionIAU2000(t *testing.T) {
	want := geom.Mat3{
		{0.9999995505175088, 8.695405883617885e-4, 3.779734722239007e-4},
		{-8.695405990410864e-4, 0.9999996219494925, -1.360775820404982e-7},
		{-3.779734476558185e-4, -1.925857585832024e-7, 0.9999999285680153},
	}
	assertMat(t, "IAU 2000", BiasPrecessionIAU2000(precessionFixtureT), want, 1e-12)
}

// Reference matrix computed with ERFA (pmat06).
func TestBiasPrecessionIAU2006(t *testing.T) {
	want := geom.Mat3{
		{0.9999995505176007, 8.695404617348209e-4, 3.779735201865589e-4},
		{-8.695404723772031e-4, 0.9999996219496027, -1.3617524970802702e-7},
		{-3.7797349570340897e-4, -1.924880847894457e-7, 0.9999999285679972},
	}
	assertMat(t, "IAU 2006", BiasPrecessionIAU2006(precessionFixtureT), want, 1e-12)
}

// Reference values computed with ERFA (pr00) at MJD 53736 TT.
func TestPrecessionCorrectionsIAU2000(t *testing.T) {
	dpsipr, depspr := PrecessionCorrectionsIAU2000(centuries(53736))
	assertClose(t, "dpsipr", dpsipr, -8.716465172668348e-8, 1e-22)
	assertClose(t, "depspr", depspr, -7.342018386722813e-9, 1e-22)
}
