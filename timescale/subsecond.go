package timescale

import (
	"fmt"
	"math"
)

// Subsecond is a fraction of a second in the range [0.0, 1.0) with
// femtosecond resolution. The zero value is a valid zero fraction.
//
// Constructors of Delta, Time and TimeOfDay maintain the range invariant;
// values built directly from a float64 are the caller's responsibility.
type Subsecond float64

// NewSubsecond validates that f is in the range [0.0, 1.0).
func NewSubsecond(f float64) (Subsecond, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: subsecond was %v", ErrNonFinite, f)
	}
	if f < 0.0 || f >= 1.0 {
		return 0, fmt.Errorf("%w: subsecond must be in the range [0.0, 1.0) but was %g", ErrInvalidCalendarField, f)
	}
	return Subsecond(f), nil
}

// Millisecond returns the number of whole milliseconds in the subsecond.
func (s Subsecond) Millisecond() int64 {
	return int64(math.Trunc(float64(s) * 1e3))
}

// Microsecond returns the number of microseconds since the last millisecond.
func (s Subsecond) Microsecond() int64 {
	return int64(math.Trunc(float64(s)*1e6)) % 1000
}

// Nanosecond returns the number of nanoseconds since the last microsecond.
func (s Subsecond) Nanosecond() int64 {
	return int64(math.Trunc(float64(s)*1e9)) % 1000
}

// Picosecond returns the number of picoseconds since the last nanosecond.
func (s Subsecond) Picosecond() int64 {
	return int64(math.Trunc(float64(s)*1e12)) % 1000
}

// Femtosecond returns the number of femtoseconds since the last picosecond.
func (s Subsecond) Femtosecond() int64 {
	return int64(math.Trunc(float64(s)*1e15)) % 1000
}

// Equal reports whether two subseconds differ by less than one femtosecond.
func (s Subsecond) Equal(other Subsecond) bool {
	return s == other || math.Abs(float64(s)-float64(other)) < 1e-15
}
