package timescale

import (
	"fmt"
	"math"
)

// Delta is a signed, continuous time difference with femtosecond resolution.
//
// The sign of the delta is carried by the Seconds field. The Subsecond field
// is always the positive fraction since the last whole second, so -0.25 s is
// represented as {Seconds: -1, Subsecond: 0.75}.
type Delta struct {
	Seconds   int64
	Subsecond Subsecond
}

// NewDelta builds a Delta from whole seconds and a subsecond fraction.
func NewDelta(seconds int64, subsecond Subsecond) Delta {
	return Delta{Seconds: seconds, Subsecond: subsecond}
}

// DeltaFromSeconds builds a Delta from an integral number of seconds.
func DeltaFromSeconds(seconds int64) Delta {
	return Delta{Seconds: seconds}
}

// DeltaFromDecimalSeconds builds a Delta from a floating-point number of
// seconds. Resolution falls as the magnitude of the input grows; use NewDelta
// when precision guarantees are required.
func DeltaFromDecimalSeconds(value float64) (Delta, error) {
	if math.IsNaN(value) {
		return Delta{}, fmt.Errorf("%w: NaN is unrepresentable as a Delta", ErrNonFinite)
	}
	if value >= float64(math.MaxInt64) || value <= float64(math.MinInt64) {
		return Delta{}, fmt.Errorf("%w: %g s does not fit the range of a Delta", ErrNonFinite, value)
	}
	whole, frac := math.Modf(value)
	if math.Signbit(value) {
		if frac == 0 {
			return Delta{Seconds: int64(whole)}, nil
		}
		return Delta{Seconds: int64(whole) - 1, Subsecond: Subsecond(1.0 + frac)}, nil
	}
	return Delta{Seconds: int64(whole), Subsecond: Subsecond(frac)}, nil
}

// DeltaFromMinutes builds a Delta from a floating-point number of minutes.
func DeltaFromMinutes(value float64) (Delta, error) {
	return DeltaFromDecimalSeconds(value * float64(SecondsPerMinute))
}

// DeltaFromHours builds a Delta from a floating-point number of hours.
func DeltaFromHours(value float64) (Delta, error) {
	return DeltaFromDecimalSeconds(value * float64(SecondsPerHour))
}

// DeltaFromDays builds a Delta from a floating-point number of days.
func DeltaFromDays(value float64) (Delta, error) {
	return DeltaFromDecimalSeconds(value * float64(SecondsPerDay))
}

// DeltaFromJulianYears builds a Delta from a floating-point number of Julian
// years.
func DeltaFromJulianYears(value float64) (Delta, error) {
	return DeltaFromDecimalSeconds(value * float64(SecondsPerJulianYear))
}

// DeltaFromJulianCenturies builds a Delta from a floating-point number of
// Julian centuries.
func DeltaFromJulianCenturies(value float64) (Delta, error) {
	return DeltaFromDecimalSeconds(value * float64(SecondsPerJulianCentury))
}

// DecimalSeconds expresses the Delta as a floating-point number of seconds,
// with potential loss of precision.
func (d Delta) DecimalSeconds() float64 {
	return float64(d.Subsecond) + float64(d.Seconds)
}

// IsNegative reports whether the Delta is less than zero.
func (d Delta) IsNegative() bool { return d.Seconds < 0 }

// IsZero reports whether the Delta is exactly zero.
func (d Delta) IsZero() bool { return d.Seconds == 0 && d.Subsecond == 0 }

// IsPositive reports whether the Delta is greater than zero.
func (d Delta) IsPositive() bool {
	return d.Seconds > 0 || d.Seconds == 0 && d.Subsecond > 0
}

// Neg returns the negated Delta, preserving the normalized representation.
func (d Delta) Neg() Delta {
	if d.Subsecond == 0 {
		return Delta{Seconds: -d.Seconds}
	}
	return Delta{Seconds: -d.Seconds - 1, Subsecond: 1.0 - d.Subsecond}
}

// Add returns d + other.
func (d Delta) Add(other Delta) Delta {
	if other.IsNegative() {
		return d.Sub(other.Neg())
	}
	seconds := d.Seconds + other.Seconds
	subsecond := float64(d.Subsecond) + float64(other.Subsecond)
	if subsecond >= 1.0 {
		subsecond -= 1.0
		seconds++
	}
	return Delta{Seconds: seconds, Subsecond: Subsecond(subsecond)}
}

// Sub returns d - other.
func (d Delta) Sub(other Delta) Delta {
	if other.IsNegative() {
		return d.Add(other.Neg())
	}
	seconds := d.Seconds - other.Seconds
	subsecond := float64(d.Subsecond) - float64(other.Subsecond)
	// The epsilon guard keeps rounding noise from borrowing a whole second.
	if math.Abs(subsecond) > 2.220446049250313e-16 && subsecond < 0.0 {
		subsecond += 1.0
		seconds--
	}
	return Delta{Seconds: seconds, Subsecond: Subsecond(subsecond)}
}

// Scale multiplies the Delta by factor, with possible loss of precision.
func (d Delta) Scale(factor float64) (Delta, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Delta{}, fmt.Errorf("%w: scale factor was %v", ErrNonFinite, factor)
	}
	sign := 1
	if d.IsNegative() {
		d = d.Neg()
		if math.Signbit(factor) {
			factor = math.Abs(factor)
		} else {
			sign = -sign
		}
	} else if d.IsPositive() && math.Signbit(factor) {
		sign = -sign
		factor = math.Abs(factor)
	}

	scaledSeconds := float64(d.Seconds) * factor
	scaledSubsecond := math.FMA(float64(d.Subsecond), factor, scaledSeconds-math.Trunc(scaledSeconds))
	if scaledSubsecond >= 1.0 {
		scaledSeconds += math.Trunc(scaledSubsecond)
		scaledSubsecond -= math.Trunc(scaledSubsecond)
	}
	if scaledSeconds >= float64(math.MaxInt64) || scaledSeconds <= float64(math.MinInt64) {
		return Delta{}, fmt.Errorf("%w: scaled delta %g s does not fit the range of a Delta", ErrNonFinite, scaledSeconds)
	}

	result := Delta{Seconds: int64(math.Trunc(scaledSeconds)), Subsecond: Subsecond(scaledSubsecond)}
	if sign < 0 {
		result = result.Neg()
	}
	return result, nil
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than
// other.
func (d Delta) Compare(other Delta) int {
	switch {
	case d.Seconds < other.Seconds:
		return -1
	case d.Seconds > other.Seconds:
		return 1
	case d.Subsecond < other.Subsecond:
		return -1
	case d.Subsecond > other.Subsecond:
		return 1
	default:
		return 0
	}
}

// JulianDate expresses the Delta relative to epoch in the requested unit.
func (d Delta) JulianDate(epoch Epoch, unit Unit) float64 {
	seconds := float64(d.Seconds+epochOffsetSeconds(epoch)) + float64(d.Subsecond)
	return inUnit(seconds, unit)
}

func (d Delta) String() string {
	return fmt.Sprintf("%g s", d.DecimalSeconds())
}
