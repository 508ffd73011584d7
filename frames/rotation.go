// Package frames transforms position and velocity vectors between inertial,
// Earth-fixed and planetary body-fixed reference frames. All transforms are
// composed through the ICRF, which acts as the hub of the frame graph.
package frames

import "github.com/signalsfoundry/astrotime/geom"

// Rotation is a time-dependent frame rotation: the rotation matrix together
// with its time derivative. Applying it to a state rotates the position and
// picks up the transport term on the velocity.
type Rotation struct {
	m  geom.Mat3
	dm geom.Mat3
}

// NewRotation returns a pure rotation with a zero derivative.
func NewRotation(m geom.Mat3) Rotation {
	return Rotation{m: m}
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation {
	return Rotation{m: geom.Identity()}
}

// WithDerivative returns the rotation with an explicit matrix derivative.
func (r Rotation) WithDerivative(dm geom.Mat3) Rotation {
	r.dm = dm
	return r
}

// WithAngularVelocity returns the rotation with the derivative implied by a
// constant angular velocity v of the target frame, dm = -S(v) m.
func (r Rotation) WithAngularVelocity(v geom.Vec3) Rotation {
	r.dm = rotationMatrixDerivative(r.m, v)
	return r
}

func rotationMatrixDerivative(m geom.Mat3, v geom.Vec3) geom.Mat3 {
	s := geom.Mat3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{v.Y, v.X, 0},
	}
	return s.MulMat(m).Scale(-1)
}

// PositionMatrix returns the rotation matrix.
func (r Rotation) PositionMatrix() geom.Mat3 { return r.m }

// VelocityMatrix returns the time derivative of the rotation matrix.
func (r Rotation) VelocityMatrix() geom.Mat3 { return r.dm }

// Compose chains two rotations: first r, then other. The derivative follows
// the product rule.
func (r Rotation) Compose(other Rotation) Rotation {
	return Rotation{
		m:  other.m.MulMat(r.m),
		dm: other.dm.MulMat(r.m).Add(other.m.MulMat(r.dm)),
	}
}

// Transpose returns the inverse rotation.
func (r Rotation) Transpose() Rotation {
	return Rotation{m: r.m.Transpose(), dm: r.dm.Transpose()}
}

// RotatePosition rotates a position vector into the target frame.
func (r Rotation) RotatePosition(pos geom.Vec3) geom.Vec3 {
	return r.m.MulVec(pos)
}

// RotateVelocity rotates a velocity vector into the target frame, including
// the transport term from the frame's own motion.
func (r Rotation) RotateVelocity(pos, vel geom.Vec3) geom.Vec3 {
	return r.dm.MulVec(pos).Add(r.m.MulVec(vel))
}

// RotateState rotates a position/velocity pair into the target frame.
func (r Rotation) RotateState(pos, vel geom.Vec3) (geom.Vec3, geom.Vec3) {
	return r.RotatePosition(pos), r.RotateVelocity(pos, vel)
}
