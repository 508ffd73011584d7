package timescale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeISORegexp = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(\.\d+)?$`)

// TimeOfDay is a human-readable time of day. Second 60 is permitted so that
// leap seconds can be represented, but only UTC accepts it.
type TimeOfDay struct {
	hour      uint8
	minute    uint8
	second    uint8
	subsecond Subsecond
}

// NewTimeOfDay validates the hour, minute and second components. A second of
// 60 is accepted here; leap-second placement is validated by UTC.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour must be in the range [0, 24) but was %d", ErrInvalidCalendarField, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute must be in the range [0, 60) but was %d", ErrInvalidCalendarField, minute)
	}
	if second < 0 || second > 60 {
		return TimeOfDay{}, fmt.Errorf("%w: second must be in the range [0, 61) but was %d", ErrInvalidCalendarField, second)
	}
	return TimeOfDay{hour: uint8(hour), minute: uint8(minute), second: uint8(second)}, nil
}

// TimeOfDayFromHMS builds a TimeOfDay from hour, minute and decimal seconds.
func TimeOfDayFromHMS(hour, minute int, seconds float64) (TimeOfDay, error) {
	if !(seconds >= 0.0 && seconds < 61.0) {
		return TimeOfDay{}, fmt.Errorf("%w: seconds must be in the range [0.0, 61.0) but was %g", ErrInvalidCalendarField, seconds)
	}
	whole := int(seconds)
	tod, err := NewTimeOfDay(hour, minute, whole)
	if err != nil {
		return TimeOfDay{}, err
	}
	tod.subsecond = Subsecond(seconds - float64(whole))
	return tod, nil
}

// TimeOfDayFromISO parses a time of the form HH:MM:SS with an optional
// fractional second part.
func TimeOfDayFromISO(iso string) (TimeOfDay, error) {
	m := timeISORegexp.FindStringSubmatch(iso)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid ISO time %q", ErrInvalidFormat, iso)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	tod, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return TimeOfDay{}, err
	}
	if m[4] != "" {
		subsecond, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: invalid ISO time %q", ErrInvalidFormat, iso)
		}
		tod.subsecond = Subsecond(subsecond)
	}
	return tod, nil
}

// TimeOfDayFromSecondOfDay builds a TimeOfDay from the integral second of the
// day. 86400 yields 23:59:60, the leap-second slot.
func TimeOfDayFromSecondOfDay(secondOfDay int64) (TimeOfDay, error) {
	if secondOfDay < 0 || secondOfDay > SecondsPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: second of day must be in the range [0, 86401) but was %d", ErrInvalidCalendarField, secondOfDay)
	}
	if secondOfDay == SecondsPerDay {
		return NewTimeOfDay(23, 59, 60)
	}
	return NewTimeOfDay(int(secondOfDay/3600), int(secondOfDay%3600/60), int(secondOfDay%60))
}

// TimeOfDayFromSecondsSinceJ2000 builds the time of day of the given second
// count relative to J2000. It is not leap-second aware.
func TimeOfDayFromSecondsSinceJ2000(seconds int64) TimeOfDay {
	secondOfDay := (seconds + SecondsPerHalfDay) % SecondsPerDay
	if secondOfDay < 0 {
		secondOfDay += SecondsPerDay
	}
	tod, _ := TimeOfDayFromSecondOfDay(secondOfDay)
	return tod
}

// WithSubsecond returns a copy with the subsecond component replaced.
func (t TimeOfDay) WithSubsecond(subsecond Subsecond) TimeOfDay {
	t.subsecond = subsecond
	return t
}

func (t TimeOfDay) Hour() int             { return int(t.hour) }
func (t TimeOfDay) Minute() int           { return int(t.minute) }
func (t TimeOfDay) Second() int           { return int(t.second) }
func (t TimeOfDay) Subsecond() Subsecond  { return t.subsecond }
func (t TimeOfDay) DecimalSeconds() float64 {
	return float64(t.second) + float64(t.subsecond)
}

// SecondOfDay returns the number of integral seconds since the start of the
// day.
func (t TimeOfDay) SecondOfDay() int64 {
	return int64(t.hour)*SecondsPerHour + int64(t.minute)*SecondsPerMinute + int64(t.second)
}

func (t TimeOfDay) String() string {
	return t.Format(3)
}

// Format renders the time of day with the given subsecond precision. A
// subsecond that rounds up to a whole second at the requested precision
// carries into the seconds field, so the end of a day can render as
// 24:00:00.
func (t TimeOfDay) Format(precision int) string {
	frac := strconv.FormatFloat(float64(t.subsecond), 'f', precision, 64)
	hour, minute, second := int(t.hour), int(t.minute), int(t.second)
	if frac[0] == '1' {
		frac = frac[1:]
		second++
		if second > 59 {
			second = 0
			minute++
			if minute > 59 {
				minute = 0
				hour++
			}
		}
	} else {
		frac = strings.TrimPrefix(frac, "0")
	}
	return fmt.Sprintf("%02d:%02d:%02d%s", hour, minute, second, frac)
}
