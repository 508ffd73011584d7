package timescale

import "fmt"

// Scale identifies a continuous astronomical time scale.
type Scale uint8

const (
	// TAI is International Atomic Time.
	TAI Scale = iota
	// TT is Terrestrial Time.
	TT
	// TCG is Geocentric Coordinate Time.
	TCG
	// TDB is Barycentric Dynamical Time.
	TDB
	// TCB is Barycentric Coordinate Time.
	TCB
	// UT1 is Universal Time, tied to the Earth's rotation.
	UT1
)

var scaleNames = [...]string{"TAI", "TT", "TCG", "TDB", "TCB", "UT1"}

func (s Scale) String() string {
	if int(s) < len(scaleNames) {
		return scaleNames[s]
	}
	return fmt.Sprintf("Scale(%d)", uint8(s))
}

// ParseScale returns the Scale named by the standard abbreviation, e.g. "TDB".
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if n == name {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown time scale %q", ErrInvalidFormat, name)
}
