package frames

import (
	"errors"
	"math"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/geom"
	"github.com/signalsfoundry/astrotime/timescale"
)

// rotationRateEarth is the nominal Earth rotation rate. Radians per second.
const rotationRateEarth = 7.2921150e-5

// Provider supplies Earth orientation data to the frame chains: the UT1-TAI
// offset, polar motion and celestial pole offsets. *earth.EOPProvider
// satisfies it.
//
// A nil Provider is accepted for transforms that do not need Earth
// orientation data: pole coordinates and corrections default to zero, while
// legs that need UT1 fail with timescale.ErrMissingProvider.
type Provider interface {
	timescale.UT1Provider
	PolarMotion(tai timescale.Time) (earth.PoleCoords, error)
	Corrections(tai timescale.Time, c earth.Convention) (earth.Corrections, error)
}

// chain evaluates elementary rotations at a fixed instant. Extrapolation
// warnings from the EOP provider are collected so a transform can return a
// best-effort rotation together with the first warning instead of aborting.
type chain struct {
	t    timescale.Time
	p    Provider
	warn error
}

// note swallows EOP extrapolation warnings, recording the first one, and
// passes every other error through.
func (c *chain) note(err error) error {
	if err == nil {
		return nil
	}
	var ext *earth.ExtrapolatedEOPError
	if errors.As(err, &ext) {
		if c.warn == nil {
			c.warn = err
		}
		return nil
	}
	return err
}

func (c *chain) ttCenturies() (float64, error) {
	tt, err := c.t.ToWithProvider(timescale.TT, c.p)
	if err := c.note(err); err != nil {
		return 0, err
	}
	return tt.CenturiesSinceJ2000(), nil
}

func (c *chain) tdbCenturies() (float64, error) {
	tdb, err := c.t.ToWithProvider(timescale.TDB, c.p)
	if err := c.note(err); err != nil {
		return 0, err
	}
	return tdb.CenturiesSinceJ2000(), nil
}

func (c *chain) tdbSeconds() (float64, error) {
	tdb, err := c.t.ToWithProvider(timescale.TDB, c.p)
	if err := c.note(err); err != nil {
		return 0, err
	}
	return tdb.SecondsSinceJ2000(), nil
}

func (c *chain) ut1Days() (float64, error) {
	ut1, err := c.t.ToWithProvider(timescale.UT1, c.p)
	if err := c.note(err); err != nil {
		return 0, err
	}
	return ut1.DaysSinceJ2000(), nil
}

func (c *chain) corrections(conv earth.Convention) (earth.Corrections, error) {
	if c.p == nil {
		return earth.Corrections{}, nil
	}
	tai, err := c.t.ToWithProvider(timescale.TAI, c.p)
	if err := c.note(err); err != nil {
		return earth.Corrections{}, err
	}
	corr, err := c.p.Corrections(tai, conv)
	if err := c.note(err); err != nil {
		return earth.Corrections{}, err
	}
	return corr, nil
}

func (c *chain) poleCoords() (earth.PoleCoords, error) {
	if c.p == nil {
		return earth.PoleCoords{}, nil
	}
	tai, err := c.t.ToWithProvider(timescale.TAI, c.p)
	if err := c.note(err); err != nil {
		return earth.PoleCoords{}, err
	}
	pole, err := c.p.PolarMotion(tai)
	if err := c.note(err); err != nil {
		return earth.PoleCoords{}, err
	}
	return pole, nil
}

func (c *chain) icrfToMOD(conv earth.Convention) (Rotation, error) {
	tt, err := c.ttCenturies()
	if err != nil {
		return Rotation{}, err
	}
	return NewRotation(conv.BiasPrecession(tt)), nil
}

func (c *chain) modToTOD(conv earth.Convention) (Rotation, error) {
	tdb, err := c.tdbCenturies()
	if err != nil {
		return Rotation{}, err
	}
	corr, err := c.corrections(conv)
	if err != nil {
		return Rotation{}, err
	}
	return NewRotation(conv.NutationMatrix(tdb, corr)), nil
}

func (c *chain) todToPEF(conv earth.Convention) (Rotation, error) {
	tt, err := c.ttCenturies()
	if err != nil {
		return Rotation{}, err
	}
	ut1, err := c.ut1Days()
	if err != nil {
		return Rotation{}, err
	}
	corr, err := c.corrections(conv)
	if err != nil {
		return Rotation{}, err
	}
	gast := conv.GAST(tt, ut1, corr)
	return NewRotation(geom.RotationZ(gast)).
		WithAngularVelocity(geom.Vec3{Z: rotationRateEarth}), nil
}

func (c *chain) pefToITRF(conv earth.Convention) (Rotation, error) {
	tt, err := c.ttCenturies()
	if err != nil {
		return Rotation{}, err
	}
	pole, err := c.poleCoords()
	if err != nil {
		return Rotation{}, err
	}
	return NewRotation(conv.PolarMotion(tt, pole)), nil
}

// pefToTEME removes the equation of the equinoxes, which TEME defines with
// the IAU 1994 model regardless of the PEF variant.
func (c *chain) pefToTEME() (Rotation, error) {
	tdb, err := c.tdbCenturies()
	if err != nil {
		return Rotation{}, err
	}
	eoe := earth.EquationOfEquinoxes1994(tdb)
	return NewRotation(geom.RotationZ(-eoe)), nil
}

func (c *chain) icrfToCIRF() (Rotation, error) {
	tdb, err := c.tdbCenturies()
	if err != nil {
		return Rotation{}, err
	}
	cip := earth.IERS2010.CIP(tdb, earth.Corrections{})
	s := earth.CIOLocator(tdb, cip)

	// Observed celestial pole offsets refine the CIP after the locator is
	// evaluated; their effect on s itself is negligible.
	corr, err := c.corrections(earth.IERS2010)
	if err != nil {
		return Rotation{}, err
	}
	cip.X += corr.X
	cip.Y += corr.Y

	return NewRotation(cip.CelestialToIntermediate(s)), nil
}

func (c *chain) cirfToTIRF() (Rotation, error) {
	ut1, err := c.ut1Days()
	if err != nil {
		return Rotation{}, err
	}
	era := earth.EarthRotationAngle(ut1)
	return NewRotation(geom.RotationZ(era)).
		WithAngularVelocity(geom.Vec3{Z: rotationRateEarth}), nil
}

func (c *chain) tirfToITRF() (Rotation, error) {
	tt, err := c.ttCenturies()
	if err != nil {
		return Rotation{}, err
	}
	pole, err := c.poleCoords()
	if err != nil {
		return Rotation{}, err
	}
	return NewRotation(earth.IERS2010.PolarMotion(tt, pole)), nil
}

func (c *chain) icrfToIAU(body Body) (Rotation, error) {
	t, err := c.tdbSeconds()
	if err != nil {
		return Rotation{}, err
	}
	ra, dec, w := body.RotationalElements(t)
	raRate, decRate, wRate := body.RotationalElementRates(t)

	m1 := geom.RotationZ(ra + math.Pi/2)
	m2 := geom.RotationX(math.Pi/2 - dec)
	m3 := geom.RotationZ(math.Mod(w, 2*math.Pi))
	m := m3.MulMat(m2).MulMat(m1)
	return NewRotation(m).
		WithAngularVelocity(geom.Vec3{X: raRate, Y: -decRate, Z: wRate}), nil
}

// icrfTo composes the rotation from the ICRF to the given frame.
func (c *chain) icrfTo(f Frame) (Rotation, error) {
	switch f.kind {
	case kindICRF:
		return IdentityRotation(), nil
	case kindMOD:
		return c.icrfToMOD(f.convention)
	case kindTOD:
		mod, err := c.icrfToMOD(f.convention)
		if err != nil {
			return Rotation{}, err
		}
		tod, err := c.modToTOD(f.convention)
		if err != nil {
			return Rotation{}, err
		}
		return mod.Compose(tod), nil
	case kindPEF:
		tod, err := c.icrfTo(TOD(f.convention))
		if err != nil {
			return Rotation{}, err
		}
		pef, err := c.todToPEF(f.convention)
		if err != nil {
			return Rotation{}, err
		}
		return tod.Compose(pef), nil
	case kindTEME:
		pef, err := c.icrfTo(PEF(earth.IERS1996))
		if err != nil {
			return Rotation{}, err
		}
		teme, err := c.pefToTEME()
		if err != nil {
			return Rotation{}, err
		}
		return pef.Compose(teme), nil
	case kindCIRF:
		return c.icrfToCIRF()
	case kindTIRF:
		cirf, err := c.icrfToCIRF()
		if err != nil {
			return Rotation{}, err
		}
		tirf, err := c.cirfToTIRF()
		if err != nil {
			return Rotation{}, err
		}
		return cirf.Compose(tirf), nil
	case kindITRF:
		tirf, err := c.icrfTo(TIRF)
		if err != nil {
			return Rotation{}, err
		}
		itrf, err := c.tirfToITRF()
		if err != nil {
			return Rotation{}, err
		}
		return tirf.Compose(itrf), nil
	case kindIAU:
		return c.icrfToIAU(f.body)
	}
	return Rotation{}, &UnknownFrameError{Name: f.Name()}
}

// Transform returns the rotation taking positions and velocities from one
// frame to another at the given time. All transforms are composed through
// the ICRF.
//
// If the EOP provider reports that the instant lies outside its data, the
// returned rotation is the best-effort extrapolated result and the
// provider's error is passed through so callers can decide whether to
// accept it.
func Transform(from, to Frame, t timescale.Time, p Provider) (Rotation, error) {
	if from == to {
		return IdentityRotation(), nil
	}
	c := &chain{t: t, p: p}

	var r Rotation
	switch {
	case from == ICRF:
		out, err := c.icrfTo(to)
		if err != nil {
			return Rotation{}, err
		}
		r = out
	case to == ICRF:
		out, err := c.icrfTo(from)
		if err != nil {
			return Rotation{}, err
		}
		r = out.Transpose()
	default:
		outA, err := c.icrfTo(from)
		if err != nil {
			return Rotation{}, err
		}
		outB, err := c.icrfTo(to)
		if err != nil {
			return Rotation{}, err
		}
		r = outA.Transpose().Compose(outB)
	}
	return r, c.warn
}
