package frames

import (
	"errors"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/geom"
	"github.com/signalsfoundry/astrotime/timescale"
)

// State is an instantaneous position and velocity relative to an origin
// body, expressed in a reference frame. Positions are in kilometers,
// velocities in kilometers per second.
type State struct {
	Time     timescale.Time
	Origin   Body
	Frame    Frame
	Position geom.Vec3
	Velocity geom.Vec3
}

// NewState returns a state around origin at the given epoch expressed in the
// given frame.
func NewState(t timescale.Time, origin Body, f Frame, pos, vel geom.Vec3) State {
	return State{Time: t, Origin: origin, Frame: f, Position: pos, Velocity: vel}
}

// ToFrame transforms the state into the target frame at its own epoch. The
// origin body is unchanged; changing origins needs an ephemeris. Rotating
// target frames add the transport term to the velocity. An EOP extrapolation
// warning is passed through together with the best-effort transformed state.
func (s State) ToFrame(target Frame, p Provider) (State, error) {
	rot, err := Transform(s.Frame, target, s.Time, p)
	if err != nil {
		var ext *earth.ExtrapolatedEOPError
		if !errors.As(err, &ext) {
			return State{}, err
		}
	}
	pos, vel := rot.RotateState(s.Position, s.Velocity)
	return State{Time: s.Time, Origin: s.Origin, Frame: target, Position: pos, Velocity: vel}, err
}

// TransformStates transforms every state into the target frame. If the EOP
// provider reports extrapolation for some epochs, the transformed states are
// still returned together with the first warning.
func TransformStates(states []State, target Frame, p Provider) ([]State, error) {
	out := make([]State, len(states))
	var warn error
	for i, s := range states {
		t, err := s.ToFrame(target, p)
		if err != nil {
			var ext *earth.ExtrapolatedEOPError
			if !errors.As(err, &ext) {
				return nil, err
			}
			if warn == nil {
				warn = err
			}
		}
		out[i] = t
	}
	return out, warn
}
