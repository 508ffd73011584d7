package timescale

import (
	"fmt"
	"strings"
)

// UTC is a Coordinated Universal Time datetime. UTC is discontinuous and is
// therefore kept out of the Time type; it exists for input and output, with
// ToTAI and UTCFromTAI bridging to the continuous scales.
//
// UTC is not defined before 1960-01-01.
type UTC struct {
	date Date
	time TimeOfDay
}

// NewUTC builds a UTC datetime from calendar and clock fields. Second 60 is
// only accepted on dates that carry an announced leap second.
func NewUTC(year int64, month, day, hour, minute int, seconds float64) (UTC, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return UTC{}, err
	}
	tod, err := TimeOfDayFromHMS(hour, minute, seconds)
	if err != nil {
		return UTC{}, err
	}
	return UTCFromDateAndTime(date, tod)
}

// UTCFromDateAndTime validates the pairing of a date and a time of day as a
// UTC datetime.
func UTCFromDateAndTime(date Date, tod TimeOfDay) (UTC, error) {
	if date.Year() < 1960 {
		return UTC{}, ErrUTCUndefined
	}
	if tod.Second() == 60 && !(BuiltinLeapSeconds{}).IsLeapSecondDate(date) {
		return UTC{}, fmt.Errorf("%w: %s", ErrNonLeapSecondDate, date)
	}
	return UTC{date: date, time: tod}, nil
}

// UTCFromISO parses an ISO 8601 UTC timestamp. A trailing "Z" or a
// whitespace-separated "UTC" suffix is accepted and optional.
func UTCFromISO(iso string) (UTC, error) {
	s := iso
	if stripped, ok := strings.CutSuffix(s, "Z"); ok {
		s = stripped
	} else if stripped, ok := strings.CutSuffix(s, " UTC"); ok {
		s = stripped
	}
	datePart, timePart, ok := strings.Cut(strings.TrimSpace(s), "T")
	if !ok {
		return UTC{}, fmt.Errorf("%w: invalid ISO UTC timestamp %q", ErrInvalidFormat, iso)
	}
	date, err := DateFromISO(datePart)
	if err != nil {
		return UTC{}, err
	}
	tod, err := TimeOfDayFromISO(timePart)
	if err != nil {
		return UTC{}, err
	}
	return UTCFromDateAndTime(date, tod)
}

func (u UTC) Date() Date           { return u.date }
func (u UTC) TimeOfDay() TimeOfDay { return u.time }
func (u UTC) Year() int64          { return u.date.Year() }
func (u UTC) Month() int           { return u.date.Month() }
func (u UTC) Day() int             { return u.date.Day() }
func (u UTC) Hour() int            { return u.time.Hour() }
func (u UTC) Minute() int          { return u.time.Minute() }
func (u UTC) Second() int          { return u.time.Second() }
func (u UTC) Subsecond() Subsecond { return u.time.Subsecond() }

// ToDelta returns the datetime as a pseudo-delta relative to J2000, counting
// the datetime's fields as if UTC were continuous. A leap second spills over
// into the next day.
func (u UTC) ToDelta() Delta {
	seconds := u.date.J2000DayNumber()*SecondsPerDay - SecondsPerHalfDay + u.time.SecondOfDay()
	return Delta{Seconds: seconds, Subsecond: u.time.Subsecond()}
}

// ToTAI converts the datetime to a TAI instant using the given leap-second
// provider.
func (u UTC) ToTAI(provider LeapSecondProvider) (Time, error) {
	offset, ok := provider.DeltaUTCTAI(u)
	if !ok {
		offset, ok = deltaUTCTAI1960(u)
		if !ok {
			return Time{}, ErrUTCUndefined
		}
	}
	return FromDelta(TAI, u.ToDelta().Sub(offset)), nil
}

// UTCFromTAI converts a TAI instant to a UTC datetime using the given
// leap-second provider.
func UTCFromTAI(tai Time, provider LeapSecondProvider) (UTC, error) {
	if tai.Scale() != TAI {
		return UTC{}, fmt.Errorf("%w: expected a TAI instant but got %s", ErrScaleMismatch, tai.Scale())
	}
	offset, ok := provider.DeltaTAIUTC(tai)
	if !ok {
		offset, ok = deltaTAIUTC1960(tai)
		if !ok {
			return UTC{}, ErrUTCUndefined
		}
	}
	base := tai.ToDelta().Sub(offset)
	utc := UTC{
		date: DateFromSecondsSinceJ2000(base.Seconds),
		time: TimeOfDayFromSecondsSinceJ2000(base.Seconds).WithSubsecond(base.Subsecond),
	}
	if provider.IsLeapSecond(tai) {
		utc.time.second = 60
	}
	return utc, nil
}

// AddDelta shifts the datetime by delta, routing through TAI so that leap
// seconds are accounted for.
func (u UTC) AddDelta(delta Delta, provider LeapSecondProvider) (UTC, error) {
	tai, err := u.ToTAI(provider)
	if err != nil {
		return UTC{}, err
	}
	return UTCFromTAI(tai.AddDelta(delta), provider)
}

func (u UTC) String() string {
	return u.Format(3)
}

// Format renders the datetime as an ISO 8601 timestamp with the given
// subsecond precision and a "UTC" suffix.
func (u UTC) Format(precision int) string {
	return fmt.Sprintf("%sT%s UTC", u.date, u.time.Format(precision))
}
