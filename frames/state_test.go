package frames

import (
	"errors"
	"testing"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/geom"
	"github.com/signalsfoundry/astrotime/timescale"
)

// bodyFixedEpoch is 2024-07-05T09:09:18.173 UTC. The reference states below
// are tagged with the raw epoch seconds on the TDB scale.
func bodyFixedEpoch(t *testing.T) timescale.Time {
	t.Helper()
	utc, err := timescale.NewUTC(2024, 7, 5, 9, 9, 18.173)
	if err != nil {
		t.Fatalf("NewUTC returned error: %v", err)
	}
	tai, err := utc.ToTAI(timescale.BuiltinLeapSeconds{})
	if err != nil {
		t.Fatalf("ToTAI returned error: %v", err)
	}
	return tai.WithScale(timescale.TDB)
}

func TestStateToBodyFixedEarth(t *testing.T) {
	s := NewState(bodyFixedEpoch(t), Earth, ICRF,
		geom.Vec3{X: -5530.01774359, Y: -3487.0895338, Z: -1850.03476185},
		geom.Vec3{X: 1.29534407, Y: -5.02456882, Z: 5.6391936},
	)
	out, err := s.ToFrame(IAU(Earth), nil)
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	if out.Frame != IAU(Earth) {
		t.Errorf("Frame = %v, want IAU_EARTH", out.Frame)
	}
	assertVecRel(t, "pos", out.Position,
		geom.Vec3{X: -5740.259426667957, Y: 3121.1360727954725, Z: -1863.1826563318027}, 1e-8)
	assertVecRel(t, "vel", out.Velocity,
		geom.Vec3{X: -3.53237875783652, Y: -3.152377656863808, Z: 5.642296713889555}, 1e-5)
}

func TestStateToBodyFixedMoon(t *testing.T) {
	s := NewState(bodyFixedEpoch(t), Earth, ICRF,
		geom.Vec3{X: -5530.01774359, Y: -3487.0895338, Z: -1850.03476185},
		geom.Vec3{X: 1.29534407, Y: -5.02456882, Z: 5.6391936},
	)
	out, err := s.ToFrame(IAU(Moon), nil)
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	assertVecRel(t, "pos", out.Position,
		geom.Vec3{X: 3777.805761337502, Y: -5633.8126664396805, Z: -389.6880165980424}, 1e-8)
	assertVecRel(t, "vel", out.Velocity,
		geom.Vec3{X: 2.5769017110275083, Y: 1.2501068740060324, Z: 7.100615382464156}, 1e-5)
}

func TestStateToBodyFixedJupiter(t *testing.T) {
	epoch := timescale.New(timescale.TDB, 0, timescale.Subsecond(0))
	s := NewState(epoch, Jupiter, ICRF,
		geom.Vec3{X: 6068.27927, Y: -1692.84394, Z: -2516.61918},
		geom.Vec3{X: -0.660415582, Y: 5.495938726, Z: -5.303093233},
	)
	out, err := s.ToFrame(IAU(Jupiter), nil)
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	assertVecRel(t, "pos", out.Position,
		geom.Vec3{X: 3922.220687351738, Y: 5289.381014412637, Z: -1631.4837924820245}, 1e-8)
	assertVecRel(t, "vel", out.Velocity,
		geom.Vec3{X: -1.852284168309543, Y: -0.8227941105651749, Z: -7.14175174489828}, 1e-8)

	back, err := out.ToFrame(ICRF, nil)
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	assertVecRel(t, "round trip pos", back.Position, s.Position, 1e-8)
	assertVecRel(t, "round trip vel", back.Velocity, s.Velocity, 1e-8)
}

func TestStateEarthFixedRoundTrip(t *testing.T) {
	s := NewState(fixtureEpoch(t), Earth, ICRF,
		geom.Vec3{X: 6068.279, Y: -1692.844, Z: -2516.619},
		geom.Vec3{X: -0.6604, Y: 5.4959, Z: -5.3031},
	)
	fixed, err := s.ToFrame(ITRF, fixtureEOP{})
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	back, err := fixed.ToFrame(ICRF, fixtureEOP{})
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	assertVecRel(t, "pos", back.Position, s.Position, 1e-10)
	assertVecRel(t, "vel", back.Velocity, s.Velocity, 1e-8)
}

// A point at rest in the ICRF moves at roughly the Earth rotation rate times
// its axis distance when expressed in an Earth-fixed frame.
func TestStateTransportTerm(t *testing.T) {
	s := NewState(fixtureEpoch(t), Earth, ICRF, geom.Vec3{X: 7000}, geom.Vec3{})
	out, err := s.ToFrame(ITRF, fixtureEOP{})
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	if out.Velocity.Norm() < 0.4 {
		t.Errorf("|v| = %g km/s, expected a transport term near 0.51", out.Velocity.Norm())
	}
}

// Frame transforms rotate the coordinates but never move the state to a
// different origin body.
func TestStateOriginPreserved(t *testing.T) {
	s := NewState(fixtureEpoch(t), Earth, ICRF, geom.Vec3{X: 7000}, geom.Vec3{Y: 7.5})
	out, err := s.ToFrame(ITRF, fixtureEOP{})
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	if out.Origin != Earth {
		t.Errorf("Origin = %v, want Earth", out.Origin)
	}

	j := NewState(s.Time, Jupiter, ICRF, s.Position, s.Velocity)
	out, err = j.ToFrame(IAU(Jupiter), nil)
	if err != nil {
		t.Fatalf("ToFrame returned error: %v", err)
	}
	if out.Origin != Jupiter {
		t.Errorf("Origin = %v, want Jupiter", out.Origin)
	}
}

func TestStateToFrameMissingProvider(t *testing.T) {
	s := NewState(fixtureEpoch(t), Earth, ICRF, geom.Vec3{X: 7000}, geom.Vec3{})
	if _, err := s.ToFrame(ITRF, nil); !errors.Is(err, timescale.ErrMissingProvider) {
		t.Errorf("ToFrame error = %v, want %v", err, timescale.ErrMissingProvider)
	}
}

func TestStateToFrameExtrapolationWarning(t *testing.T) {
	s := NewState(fixtureEpoch(t), Earth, ICRF, geom.Vec3{X: 7000}, geom.Vec3{})
	out, err := s.ToFrame(TIRF, extrapolatingEOP{})
	var extErr *earth.ExtrapolatedEOPError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected ExtrapolatedEOPError, got %v", err)
	}
	if out.Position.Norm() == 0 {
		t.Error("expected a best-effort transformed state")
	}
}

func TestTransformStates(t *testing.T) {
	epoch := fixtureEpoch(t)
	states := []State{
		NewState(epoch, Earth, ICRF, geom.Vec3{X: 7000}, geom.Vec3{Y: 7.5}),
		NewState(epoch, Earth, TOD(earth.IERS1996), geom.Vec3{Y: 7000}, geom.Vec3{Z: 7.5}),
	}
	out, err := TransformStates(states, TEME, fixtureEOP{})
	if err != nil {
		t.Fatalf("TransformStates returned error: %v", err)
	}
	if len(out) != len(states) {
		t.Fatalf("len = %d, want %d", len(out), len(states))
	}
	for i, s := range states {
		want, err := s.ToFrame(TEME, fixtureEOP{})
		if err != nil {
			t.Fatalf("ToFrame returned error: %v", err)
		}
		assertVecClose(t, "pos", out[i].Position, want.Position, 0)
		assertVecClose(t, "vel", out[i].Velocity, want.Velocity, 0)
	}
}
