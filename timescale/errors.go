// Package timescale provides continuous astronomical time scales with
// femtosecond resolution, calendar date handling, and transformations between
// TAI, TT, TCG, TDB, TCB and UT1, plus a leap-second aware UTC type for I/O.
package timescale

import "errors"

// Sentinel errors returned by constructors and conversions. Callers should
// match them with errors.Is.
var (
	// ErrNonFinite is returned when a NaN or infinite floating-point value is
	// passed where a finite number is required.
	ErrNonFinite = errors.New("value is not a finite number")

	// ErrInvalidCalendarField is returned when a calendar or clock field is
	// out of range, e.g. month 13 or hour 24.
	ErrInvalidCalendarField = errors.New("invalid calendar field")

	// ErrInvalidFormat is returned when a string cannot be parsed as an ISO
	// 8601 timestamp or as a time scale name.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrScaleMismatch is returned when two instants in different time scales
	// are compared or subtracted.
	ErrScaleMismatch = errors.New("time scales do not match")

	// ErrMissingProvider is returned when a conversion to or from UT1 is
	// requested without a UT1 provider.
	ErrMissingProvider = errors.New("conversion requires a UT1 provider")

	// ErrUTCUndefined is returned for UTC datetimes before 1960-01-01, when
	// UTC is defined from.
	ErrUTCUndefined = errors.New("UTC is not defined for dates before 1960-01-01")

	// ErrNonLeapSecondDate is returned when a 61st second is requested on a
	// date that has no leap second.
	ErrNonLeapSecondDate = errors.New("no leap second on this date")

	// ErrLeapSecondOutsideUTC is returned when a leap second is used to
	// construct an instant in a continuous time scale.
	ErrLeapSecondOutsideUTC = errors.New("leap seconds do not exist in continuous time scales; use UTC instead")
)
