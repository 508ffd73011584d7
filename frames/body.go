package frames

import (
	"fmt"
	"math"
	"strings"
)

// Body identifies a solar system body with IAU-defined rotational elements.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Moon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var bodyNames = [...]string{
	"Sun", "Mercury", "Venus", "Earth", "Moon",
	"Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// UnknownBodyError is returned when a body name cannot be resolved.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return fmt.Sprintf("no body with name %q is known", e.Name)
}

// ParseBody resolves a case-insensitive body name.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(name, n) {
			return Body(i), nil
		}
	}
	if strings.EqualFold(name, "luna") {
		return Moon, nil
	}
	return 0, &UnknownBodyError{Name: name}
}

const (
	secondsPerJulianCentury = 3155760000.0
	secondsPerDay           = 86400.0
)

func deg(d float64) float64 { return d * math.Pi / 180 }

// elementKind selects the trigonometric flavor of a rotational element:
// right ascension and prime meridian series use sines, declination uses
// cosines, and the prime meridian polynomial runs on days instead of
// centuries.
type elementKind int

const (
	rightAscension elementKind = iota
	declination
	primeMeridian
)

func (k elementKind) dt() float64 {
	if k == primeMeridian {
		return secondsPerDay
	}
	return secondsPerJulianCentury
}

func (k elementKind) sincos(v float64) float64 {
	if k == declination {
		return math.Cos(v)
	}
	return math.Sin(v)
}

func (k elementKind) sincosDot(v float64) float64 {
	if k == declination {
		return math.Sin(v)
	}
	return math.Cos(v)
}

func (k elementKind) sign() float64 {
	if k == declination {
		return -1
	}
	return 1
}

// trigAngle is a nutation-precession angle θ0 + θ1·T with T in Julian
// centuries TDB. Radians.
type trigAngle struct {
	theta0, theta1 float64
}

// rotationalElement is one angle of an IAU rotation model: a low-order
// polynomial plus a trigonometric nutation-precession series over the parent
// system's angles. All coefficients are in radians.
type rotationalElement struct {
	kind       elementKind
	c0, c1, c2 float64
	trig       []float64
}

func (e rotationalElement) trigTerm(angles []trigAngle, t float64) float64 {
	sum := 0.0
	for i, c := range e.trig {
		if c == 0 {
			continue
		}
		a := angles[i]
		sum += c * e.kind.sincos(a.theta0+a.theta1*t/secondsPerJulianCentury)
	}
	return sum
}

func (e rotationalElement) trigTermDot(angles []trigAngle, t float64) float64 {
	sum := 0.0
	for i, c := range e.trig {
		if c == 0 {
			continue
		}
		a := angles[i]
		sum += c * a.theta1 / secondsPerJulianCentury *
			e.kind.sincosDot(a.theta0+a.theta1*t/secondsPerJulianCentury)
	}
	return sum
}

// angle evaluates the element at t TDB seconds since J2000. Radians.
func (e rotationalElement) angle(angles []trigAngle, t float64) float64 {
	dt := e.kind.dt()
	return e.c0 + e.c1*t/dt + e.c2*t*t/(dt*dt) + e.trigTerm(angles, t)
}

// rate evaluates the time derivative of the element. Radians per second.
func (e rotationalElement) rate(angles []trigAngle, t float64) float64 {
	dt := e.kind.dt()
	return e.c1/dt + 2*e.c2*t/(dt*dt) + e.kind.sign()*e.trigTermDot(angles, t)
}

type bodyElements struct {
	ra, dec, w rotationalElement
	angles     []trigAngle
}

// RotationalElements returns the right ascension and declination of the
// body's north pole and the prime meridian angle at t TDB seconds since
// J2000. Radians.
func (b Body) RotationalElements(t float64) (ra, dec, w float64) {
	e := bodyElementTable[b]
	return e.ra.angle(e.angles, t), e.dec.angle(e.angles, t), e.w.angle(e.angles, t)
}

// RotationalElementRates returns the time derivatives of the rotational
// elements. Radians per second.
func (b Body) RotationalElementRates(t float64) (raRate, decRate, wRate float64) {
	e := bodyElementTable[b]
	return e.ra.rate(e.angles, t), e.dec.rate(e.angles, t), e.w.rate(e.angles, t)
}

// Nutation-precession angles per planetary system, from the IAU WGCCRE
// report. θ0 in degrees, θ1 in degrees per Julian century.
func nutPrecAngles(pairs ...float64) []trigAngle {
	angles := make([]trigAngle, len(pairs)/2)
	for i := range angles {
		angles[i] = trigAngle{theta0: deg(pairs[2*i]), theta1: deg(pairs[2*i+1])}
	}
	return angles
}

var (
	mercuryAngles = nutPrecAngles(
		174.7910857, 149472.53587500003,
		349.5821714, 298945.07175000006,
		164.3732571, 448417.60762500006,
		339.1643429, 597890.1435000001,
		153.9554286, 747362.679375,
	)
	earthAngles = nutPrecAngles(
		125.045, -1935.5364525,
		250.089, -3871.072905,
		260.008, 475263.3328725,
		176.625, 487269.629985,
		357.529, 35999.0509575,
		311.589, 964468.49931,
		134.963, 477198.869325,
		276.617, 12006.300765,
		34.226, 63863.5132425,
		15.134, -5806.6093575,
		119.743, 131.84064,
		239.961, 6003.1503825,
		25.053, 473327.79642,
	)
	marsAngles = nutPrecAngles(
		190.72646643, 15917.10818695,
		21.4689247, 31834.27934054,
		332.86082793, 19139.89694742,
		394.93256437, 38280.79631835,
		189.6327156, 41215158.1842005,
		121.46893664, 660.22803474,
		231.05028581, 660.9912354,
		251.37314025, 1320.50145245,
		217.98635955, 38279.9612555,
		196.19729402, 19139.83628608,
		198.991226, 19139.4819985,
		226.292679, 38280.8511281,
		249.663391, 57420.7251593,
		266.18351, 76560.636795,
		79.398797, 0.5042615,
		122.433576, 19139.9407476,
		43.058401, 38280.8753272,
		57.663379, 57420.7517205,
		79.476401, 76560.6495004,
		166.325722, 0.5042615,
		129.071773, 19140.0328244,
		36.352167, 38281.0473591,
		56.668646, 57420.929536,
		67.364003, 76560.2552215,
		104.79268, 95700.4387578,
		95.391654, 0.5042615,
	)
	jupiterAngles = nutPrecAngles(
		73.32, 91472.9,
		24.62, 45137.2,
		283.9, 4850.7,
		355.8, 1191.3,
		119.9, 262.1,
		229.8, 64.3,
		352.25, 2382.6,
		113.35, 6070,
		146.64, 182945.8,
		49.24, 90274.4,
		99.360714, 4850.4046,
		175.895369, 1191.9605,
		300.323162, 262.5475,
		114.012305, 6070.2476,
		49.511251, 64.3,
	)
	neptuneAngles = nutPrecAngles(
		357.85, 52.316,
		323.92, 62606.6,
		220.51, 55064.2,
		354.27, 46564.5,
		75.31, 26109.4,
		35.36, 14325.4,
		142.61, 2824.6,
		177.85, 52.316,
	)
)

// element builds a rotational element from IAU report values: c0 in degrees,
// c1 and c2 in degrees per Julian century (per day for the prime meridian),
// trig coefficients in degrees aligned with the system's angle table.
func element(kind elementKind, c0, c1, c2 float64, trig ...float64) rotationalElement {
	var rad []float64
	if len(trig) > 0 {
		rad = make([]float64, len(trig))
		for i, c := range trig {
			rad[i] = deg(c)
		}
	}
	return rotationalElement{kind: kind, c0: deg(c0), c1: deg(c1), c2: deg(c2), trig: rad}
}

var bodyElementTable = map[Body]bodyElements{
	Sun: {
		ra:  element(rightAscension, 286.13, 0, 0),
		dec: element(declination, 63.87, 0, 0),
		w:   element(primeMeridian, 84.176, 14.1844, 0),
	},
	Mercury: {
		ra:  element(rightAscension, 281.0103, -0.0328, 0),
		dec: element(declination, 61.4155, -0.0049, 0),
		w: element(primeMeridian, 329.5988, 6.1385108, 0,
			0.01067257, -0.00112309, -0.0001104, -0.00002539, -0.00000571),
		angles: mercuryAngles,
	},
	Venus: {
		ra:  element(rightAscension, 272.76, 0, 0),
		dec: element(declination, 67.16, 0, 0),
		w:   element(primeMeridian, 160.20, -1.4813688, 0),
	},
	Earth: {
		ra:  element(rightAscension, 0, -0.641, 0),
		dec: element(declination, 90, -0.557, 0),
		w:   element(primeMeridian, 190.147, 360.9856235, 0),
	},
	Moon: {
		ra: element(rightAscension, 269.9949, 0.0031, 0,
			-3.8787, -0.1204, 0.0700, -0.0172, 0, 0.0072, 0,
			0, 0, -0.0052, 0, 0, 0.0043),
		dec: element(declination, 66.5392, 0.0130, 0,
			1.5419, 0.0239, -0.0278, 0.0068, 0, -0.0029, 0.0009,
			0, 0, 0.0008, 0, 0, -0.0009),
		w: element(primeMeridian, 38.3213, 13.17635815, -1.4e-12,
			3.5610, 0.1208, -0.0642, 0.0158, 0.0252, -0.0066, -0.0047,
			-0.0046, 0.0028, 0.0052, 0.0040, 0.0019, -0.0044),
		angles: earthAngles,
	},
	Mars: {
		ra: element(rightAscension, 317.269202, -0.10927547, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0.000068, 0.000238, 0.000052, 0.000009, 0.419057),
		dec: element(declination, 54.432516, -0.05827105, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0.000051, 0.000141, 0.000031, 0.000005, 1.591274),
		w: element(primeMeridian, 176.049863, 350.891982443297, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0.000145, 0.000157, 0.00004, 0.000001, 0.000001, 0.584542),
		angles: marsAngles,
	},
	Jupiter: {
		ra: element(rightAscension, 268.056595, -0.006499, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0.000117, 0.000938, 0.001432, 0.00003, 0.00215),
		dec: element(declination, 64.495303, 0.002413, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0.00005, 0.000404, 0.000617, -0.000013, 0.000926),
		w:      element(primeMeridian, 284.95, 870.536, 0),
		angles: jupiterAngles,
	},
	Saturn: {
		ra:  element(rightAscension, 40.589, -0.036, 0),
		dec: element(declination, 83.537, -0.004, 0),
		w:   element(primeMeridian, 38.90, 810.7939024, 0),
	},
	Uranus: {
		ra:  element(rightAscension, 257.311, 0, 0),
		dec: element(declination, -15.175, 0, 0),
		w:   element(primeMeridian, 203.81, -501.1600928, 0),
	},
	Neptune: {
		ra:     element(rightAscension, 299.36, 0, 0, 0.70),
		dec:    element(declination, 43.46, 0, 0, -0.51),
		w:      element(primeMeridian, 249.978, 541.1397757, 0, -0.48),
		angles: neptuneAngles,
	},
	Pluto: {
		ra:  element(rightAscension, 132.993, 0, 0),
		dec: element(declination, -6.163, 0, 0),
		w:   element(primeMeridian, 302.695, 56.3625225, 0),
	},
}
