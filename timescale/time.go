package timescale

import (
	"fmt"
	"math"
	"strings"
)

// Time is an instant in a continuous time scale, held as a count of seconds
// relative to J2000 (2000-01-01T12:00:00) in that scale.
//
// Time supports femtosecond resolution, but be aware that many algorithms
// operating on Times are not accurate to this level of precision.
type Time struct {
	scale     Scale
	seconds   int64
	subsecond Subsecond
}

// New builds a Time in the given scale from the count of seconds since J2000,
// subdivided into integral seconds and a subsecond fraction.
func New(scale Scale, seconds int64, subsecond Subsecond) Time {
	return Time{scale: scale, seconds: seconds, subsecond: subsecond}
}

// FromDelta builds a Time in the given scale from a Delta relative to J2000.
func FromDelta(scale Scale, delta Delta) Time {
	return Time{scale: scale, seconds: delta.Seconds, subsecond: delta.Subsecond}
}

// J2000 returns the J2000 epoch in the given scale.
func J2000(scale Scale) Time {
	return Time{scale: scale}
}

// FromEpoch returns the given standard epoch as a Time in the given scale.
func FromEpoch(scale Scale, epoch Epoch) Time {
	return Time{scale: scale, seconds: -epochOffsetSeconds(epoch)}
}

// FromDateAndTime builds a Time from a calendar date and a time of day.
// Leap seconds cannot be represented in continuous scales, so a time of day
// with second 60 is rejected.
func FromDateAndTime(scale Scale, date Date, tod TimeOfDay) (Time, error) {
	if tod.Second() == 60 {
		return Time{}, ErrLeapSecondOutsideUTC
	}
	seconds := date.J2000DayNumber()*SecondsPerDay - SecondsPerHalfDay + tod.SecondOfDay()
	return Time{scale: scale, seconds: seconds, subsecond: tod.Subsecond()}, nil
}

// FromCalendar builds a Time from calendar and clock fields.
func FromCalendar(scale Scale, year int64, month, day, hour, minute int, seconds float64) (Time, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return Time{}, err
	}
	tod, err := TimeOfDayFromHMS(hour, minute, seconds)
	if err != nil {
		return Time{}, err
	}
	return FromDateAndTime(scale, date, tod)
}

// FromISO parses an ISO 8601 timestamp of the form
// "YYYY-MM-DDTHH:MM:SS.fff" with an optional trailing scale abbreviation,
// which must match the requested scale if present.
func FromISO(scale Scale, iso string) (Time, error) {
	datePart, timeAndScale, ok := strings.Cut(iso, "T")
	if !ok {
		return Time{}, fmt.Errorf("%w: invalid ISO timestamp %q", ErrInvalidFormat, iso)
	}
	timePart, abbrev := splitTimeAndScale(timeAndScale)
	if abbrev != "" && abbrev != scale.String() {
		return Time{}, fmt.Errorf("%w: invalid ISO timestamp %q", ErrInvalidFormat, iso)
	}
	date, err := DateFromISO(datePart)
	if err != nil {
		return Time{}, err
	}
	tod, err := TimeOfDayFromISO(timePart)
	if err != nil {
		return Time{}, err
	}
	return FromDateAndTime(scale, date, tod)
}

// Parse parses an ISO 8601 timestamp with a mandatory scale suffix, e.g.
// "2000-01-01T12:00:00.000 TDB".
func Parse(iso string) (Time, error) {
	_, timeAndScale, ok := strings.Cut(iso, "T")
	if !ok {
		return Time{}, fmt.Errorf("%w: invalid ISO timestamp %q", ErrInvalidFormat, iso)
	}
	_, abbrev := splitTimeAndScale(timeAndScale)
	if abbrev == "" {
		return Time{}, fmt.Errorf("%w: timestamp %q has no time scale suffix", ErrInvalidFormat, iso)
	}
	scale, err := ParseScale(abbrev)
	if err != nil {
		return Time{}, err
	}
	return FromISO(scale, iso)
}

func splitTimeAndScale(s string) (timePart, abbrev string) {
	fields := strings.Fields(s)
	if len(fields) == 2 {
		return fields[0], fields[1]
	}
	return s, ""
}

// FromJulianDate builds a Time from a Julian date relative to the given
// epoch, expressed in days.
func FromJulianDate(scale Scale, julianDate float64, epoch Epoch) (Time, error) {
	seconds := julianDate * float64(SecondsPerDay)
	if !(seconds >= float64(math.MinInt64) && seconds <= float64(math.MaxInt64)) {
		return Time{}, fmt.Errorf("%w: Julian date %v days is out of range", ErrNonFinite, julianDate)
	}
	whole, frac := math.Modf(seconds)
	if frac < 0 {
		whole--
		frac += 1.0
	}
	return Time{
		scale:     scale,
		seconds:   int64(whole) - epochOffsetSeconds(epoch),
		subsecond: Subsecond(frac),
	}, nil
}

// FromTwoPartJulianDate builds a Time from a two-part Julian date, preserving
// precision by summing the integral and fractional parts separately. The sum
// jd1+jd2 is interpreted as days since the Julian epoch.
func FromTwoPartJulianDate(scale Scale, jd1, jd2 float64) (Time, error) {
	seconds1 := jd1 * float64(SecondsPerDay)
	seconds2 := jd2 * float64(SecondsPerDay)
	seconds := math.Trunc(seconds1) + math.Trunc(seconds2) - float64(secondsBetweenJDAndJ2000)
	if !(seconds >= float64(math.MinInt64) && seconds <= float64(math.MaxInt64)) {
		return Time{}, fmt.Errorf("%w: Julian date (%v, %v) days is out of range", ErrNonFinite, jd1, jd2)
	}
	whole := int64(seconds)
	f1 := seconds1 - math.Trunc(seconds1)
	f2 := seconds2 - math.Trunc(seconds2)
	if f1 < f2 {
		f1, f2 = f2, f1
	}
	f := f1 + f2
	if f >= 1.0 {
		whole++
		f -= 1.0
	}
	if f < 0.0 {
		whole--
		f += 1.0
	}
	return Time{scale: scale, seconds: whole, subsecond: Subsecond(f)}, nil
}

// Scale returns the time scale of the instant.
func (t Time) Scale() Scale { return t.scale }

// Seconds returns the number of whole seconds since J2000.
func (t Time) Seconds() int64 { return t.seconds }

// Subsecond returns the fraction of a second since the last whole second.
func (t Time) Subsecond() Subsecond { return t.subsecond }

// ToDelta returns the instant as a Delta relative to J2000.
func (t Time) ToDelta() Delta {
	return Delta{Seconds: t.seconds, Subsecond: t.subsecond}
}

// WithScale relabels the instant with a different scale without applying any
// transformation.
func (t Time) WithScale(scale Scale) Time {
	t.scale = scale
	return t
}

// withScaleAndDelta relabels the instant with a different scale and shifts it
// by delta. No transformation beyond the shift takes place.
func (t Time) withScaleAndDelta(scale Scale, delta Delta) Time {
	return FromDelta(scale, t.ToDelta().Add(delta))
}

// AddDelta returns the instant shifted forward by delta.
func (t Time) AddDelta(delta Delta) Time {
	return FromDelta(t.scale, t.ToDelta().Add(delta))
}

// SubDelta returns the instant shifted backward by delta.
func (t Time) SubDelta(delta Delta) Time {
	return FromDelta(t.scale, t.ToDelta().Sub(delta))
}

// Sub returns the difference t - other. Both instants must be in the same
// scale.
func (t Time) Sub(other Time) (Delta, error) {
	if t.scale != other.scale {
		return Delta{}, fmt.Errorf("%w: cannot subtract %s instant from %s instant", ErrScaleMismatch, other.scale, t.scale)
	}
	return t.ToDelta().Sub(other.ToDelta()), nil
}

// Compare returns -1, 0 or 1 as t is before, equal to or after other. Both
// instants must be in the same scale.
func (t Time) Compare(other Time) (int, error) {
	if t.scale != other.scale {
		return 0, fmt.Errorf("%w: cannot compare %s instant with %s instant", ErrScaleMismatch, t.scale, other.scale)
	}
	return t.ToDelta().Compare(other.ToDelta()), nil
}

// CloseTo reports whether two instants in the same scale agree within the
// given relative and absolute tolerances in seconds.
func (t Time) CloseTo(other Time, relTol, absTol float64) (bool, error) {
	if t.scale != other.scale {
		return false, fmt.Errorf("%w: cannot compare %s instant with %s instant", ErrScaleMismatch, t.scale, other.scale)
	}
	a := t.ToDelta().DecimalSeconds()
	b := other.ToDelta().DecimalSeconds()
	return math.Abs(a-b) <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol), nil
}

// JulianDate expresses the instant relative to epoch in the requested unit.
func (t Time) JulianDate(epoch Epoch, unit Unit) float64 {
	return t.ToDelta().JulianDate(epoch, unit)
}

// SecondsSinceJ2000 returns the instant as decimal seconds since J2000.
func (t Time) SecondsSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitSeconds)
}

// DaysSinceJ2000 returns the instant as decimal days since J2000.
func (t Time) DaysSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitDays)
}

// CenturiesSinceJ2000 returns the instant as Julian centuries since J2000.
func (t Time) CenturiesSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitCenturies)
}

// TwoPartJulianDate splits the instant into an integral-day and
// fractional-day part of the Julian date.
func (t Time) TwoPartJulianDate() (jd1, jd2 float64) {
	seconds := t.seconds + secondsBetweenJDAndJ2000
	days := seconds / SecondsPerDay
	rem := seconds % SecondsPerDay
	return float64(days), (float64(rem) + float64(t.subsecond)) / float64(SecondsPerDay)
}

// Date returns the calendar date of the instant.
func (t Time) Date() Date {
	return DateFromSecondsSinceJ2000(t.seconds)
}

// TimeOfDay returns the civil time of day of the instant.
func (t Time) TimeOfDay() TimeOfDay {
	return TimeOfDayFromSecondsSinceJ2000(t.seconds).WithSubsecond(t.subsecond)
}

func (t Time) String() string {
	return t.Format(3)
}

// Format renders the instant as an ISO 8601 timestamp with the scale
// abbreviation appended and the given subsecond precision.
func (t Time) Format(precision int) string {
	return fmt.Sprintf("%sT%s %s", t.Date(), t.TimeOfDay().Format(precision), t.scale)
}
