package frames

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/astrotime/earth"
)

type frameKind int

const (
	kindICRF frameKind = iota
	kindMOD
	kindTOD
	kindTEME
	kindPEF
	kindCIRF
	kindTIRF
	kindITRF
	kindIAU
)

// Frame identifies a reference frame. The zero value is the ICRF. Frames are
// comparable; two frames are the same frame exactly when they compare equal.
//
// The equinox-based frames MOD, TOD and PEF carry the IERS convention that
// defines their precession and nutation models, so e.g. the 1980 and 2000B
// true-of-date frames are distinct frames.
type Frame struct {
	kind       frameKind
	convention earth.Convention
	body       Body
}

// ICRF is the International Celestial Reference Frame, the hub all
// transformations are composed through.
var ICRF = Frame{kind: kindICRF}

// CIRF is the Celestial Intermediate Reference Frame (IERS 2010).
var CIRF = Frame{kind: kindCIRF}

// TIRF is the Terrestrial Intermediate Reference Frame (IERS 2010).
var TIRF = Frame{kind: kindTIRF}

// ITRF is the International Terrestrial Reference Frame.
var ITRF = Frame{kind: kindITRF}

// TEME is the true-equator, mean-equinox frame used by SGP4 ephemerides.
var TEME = Frame{kind: kindTEME}

// MOD returns the mean-of-date frame for the given IERS convention.
func MOD(c earth.Convention) Frame {
	return Frame{kind: kindMOD, convention: c}
}

// TOD returns the true-of-date frame for the given IERS convention.
func TOD(c earth.Convention) Frame {
	return Frame{kind: kindTOD, convention: c}
}

// PEF returns the pseudo-Earth-fixed frame for the given IERS convention.
func PEF(c earth.Convention) Frame {
	return Frame{kind: kindPEF, convention: c}
}

// IAU returns the IAU body-fixed frame for a solar system body.
func IAU(body Body) Frame {
	return Frame{kind: kindIAU, body: body}
}

// Name returns the full descriptive name of the frame.
func (f Frame) Name() string {
	switch f.kind {
	case kindICRF:
		return "International Celestial Reference Frame"
	case kindMOD:
		return "Mean Equator and Equinox of Date"
	case kindTOD:
		return "True Equator and Equinox of Date"
	case kindTEME:
		return "True Equator Mean Equinox"
	case kindPEF:
		return "Pseudo-Earth-Fixed Reference Frame"
	case kindCIRF:
		return "Celestial Intermediate Reference Frame"
	case kindTIRF:
		return "Terrestrial Intermediate Reference Frame"
	case kindITRF:
		return "International Terrestrial Reference Frame"
	case kindIAU:
		body := f.body.String()
		if f.body == Sun || f.body == Moon {
			return fmt.Sprintf("IAU Body-Fixed Reference Frame for the %s", body)
		}
		return fmt.Sprintf("IAU Body-Fixed Reference Frame for %s", body)
	}
	return fmt.Sprintf("Frame(%d)", int(f.kind))
}

// Abbreviation returns the short frame identifier, e.g. "ICRF" or
// "IAU_MARS". The equinox-based frames include their convention where more
// than one variant exists.
func (f Frame) Abbreviation() string {
	switch f.kind {
	case kindICRF:
		return "ICRF"
	case kindMOD:
		return "MOD"
	case kindTOD:
		return "TOD"
	case kindTEME:
		return "TEME"
	case kindPEF:
		return "PEF"
	case kindCIRF:
		return "CIRF"
	case kindTIRF:
		return "TIRF"
	case kindITRF:
		return "ITRF"
	case kindIAU:
		return "IAU_" + strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(f.body.String()))
	}
	return fmt.Sprintf("Frame(%d)", int(f.kind))
}

func (f Frame) String() string { return f.Abbreviation() }

// IsRotating reports whether the frame rotates with a body, so that
// velocity transformations pick up a transport term.
func (f Frame) IsRotating() bool {
	switch f.kind {
	case kindPEF, kindTIRF, kindITRF, kindIAU:
		return true
	}
	return false
}

// Body returns the body a body-fixed IAU frame rotates with and whether the
// frame is such a frame.
func (f Frame) Body() (Body, bool) {
	return f.body, f.kind == kindIAU
}

// UnknownFrameError is returned when a frame name cannot be resolved.
type UnknownFrameError struct {
	Name string
}

func (e *UnknownFrameError) Error() string {
	return fmt.Sprintf("no frame with name %q is known", e.Name)
}

// Parse resolves a frame from its abbreviation. IAU body-fixed frames use
// the "IAU_" prefix followed by the body name, e.g. "IAU_MARS". The bare
// equinox-based names resolve to the classical IERS 1996 variants.
func Parse(s string) (Frame, error) {
	switch strings.ToLower(s) {
	case "icrf":
		return ICRF, nil
	case "cirf":
		return CIRF, nil
	case "tirf":
		return TIRF, nil
	case "itrf":
		return ITRF, nil
	case "teme":
		return TEME, nil
	case "mod":
		return MOD(earth.IERS1996), nil
	case "tod":
		return TOD(earth.IERS1996), nil
	case "pef":
		return PEF(earth.IERS1996), nil
	}
	if f, ok := parseIAUFrame(s); ok {
		return f, nil
	}
	return Frame{}, &UnknownFrameError{Name: s}
}

func parseIAUFrame(s string) (Frame, bool) {
	prefix, origin, ok := strings.Cut(s, "_")
	if !ok || !strings.EqualFold(prefix, "iau") {
		return Frame{}, false
	}
	body, err := ParseBody(origin)
	if err != nil {
		return Frame{}, false
	}
	return IAU(body), true
}
