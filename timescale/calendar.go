package timescale

import (
	"fmt"
	"regexp"
)

// Calendar identifies the calendar a Date belongs to. Dates before 1 AD use
// the proleptic Julian calendar, dates up to the 1582 Gregorian reform use
// the Julian calendar, and later dates use the Gregorian calendar.
type Calendar uint8

const (
	ProlepticJulian Calendar = iota
	Julian
	Gregorian
)

func (c Calendar) String() string {
	switch c {
	case ProlepticJulian:
		return "proleptic Julian"
	case Julian:
		return "Julian"
	default:
		return "Gregorian"
	}
}

const (
	lastProlepticJulianDayJ2000 int64 = -730122
	lastJulianDayJ2000          int64 = -152384
)

var dateISORegexp = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})$`)

// Date is a calendar date. The calendar is inferred from the fields at
// construction time.
type Date struct {
	calendar Calendar
	year     int64
	month    uint8
	day      uint8
}

// NewDate validates year, month and day and infers the calendar.
func NewDate(year int64, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: invalid date %d-%02d-%02d", ErrInvalidCalendarField, year, month, day)
	}
	cal := calendarFor(year, uint8(month), uint8(day))
	check := DateFromDaysSinceJ2000(j2000DayNumber(cal, year, uint8(month), uint8(day)))
	if check.year != year || int(check.month) != month || int(check.day) != day {
		return Date{}, fmt.Errorf("%w: invalid date %d-%02d-%02d", ErrInvalidCalendarField, year, month, day)
	}
	return Date{calendar: cal, year: year, month: uint8(month), day: uint8(day)}, nil
}

// DateFromISO parses a date of the form YYYY-MM-DD.
func DateFromISO(iso string) (Date, error) {
	m := dateISORegexp.FindStringSubmatch(iso)
	if m == nil {
		return Date{}, fmt.Errorf("%w: invalid ISO date %q", ErrInvalidFormat, iso)
	}
	var year int64
	var month, day int
	if _, err := fmt.Sscanf(m[1], "%d", &year); err != nil {
		return Date{}, fmt.Errorf("%w: invalid ISO date %q", ErrInvalidFormat, iso)
	}
	fmt.Sscanf(m[2], "%d", &month)
	fmt.Sscanf(m[3], "%d", &day)
	return NewDate(year, month, day)
}

// DateFromDaysSinceJ2000 builds the Date a signed number of whole days after
// 2000-01-01.
func DateFromDaysSinceJ2000(days int64) Date {
	var cal Calendar
	switch {
	case days < lastJulianDayJ2000 && days > lastProlepticJulianDayJ2000:
		cal = Julian
	case days <= lastProlepticJulianDayJ2000:
		cal = ProlepticJulian
	default:
		cal = Gregorian
	}

	year := findYear(cal, days)
	leap := isLeapYear(cal, year)
	dayOfYear := int(days - lastDayOfYearJ2000(cal, year-1))
	month := findMonth(dayOfYear, leap)
	day := dayOfYear - previousMonthEndDay(month, leap)
	return Date{calendar: cal, year: year, month: uint8(month), day: uint8(day)}
}

// DateFromSecondsSinceJ2000 builds the Date containing the given second count
// relative to J2000 (2000-01-01T12:00:00).
func DateFromSecondsSinceJ2000(seconds int64) Date {
	seconds += SecondsPerHalfDay
	time := seconds % SecondsPerDay
	if time < 0 {
		time += SecondsPerDay
	}
	return DateFromDaysSinceJ2000((seconds - time) / SecondsPerDay)
}

// DateFromDayOfYear builds a Date from a year and a one-based day number
// within that year.
func DateFromDayOfYear(year int64, dayOfYear int) (Date, error) {
	cal := calendarFor(year, 1, 1)
	leap := isLeapYear(cal, year)
	if !leap && dayOfYear > 365 {
		return Date{}, fmt.Errorf("%w: day of year cannot be %d for a non-leap year", ErrInvalidCalendarField, dayOfYear)
	}
	if dayOfYear < 1 || dayOfYear > 366 {
		return Date{}, fmt.Errorf("%w: day of year must be in the range [1, 366] but was %d", ErrInvalidCalendarField, dayOfYear)
	}
	month := findMonth(dayOfYear, leap)
	day := dayOfYear - previousMonthEndDay(month, leap)
	return Date{calendar: cal, year: year, month: uint8(month), day: uint8(day)}, nil
}

func (d Date) Calendar() Calendar { return d.calendar }
func (d Date) Year() int64        { return d.year }
func (d Date) Month() int         { return int(d.month) }
func (d Date) Day() int           { return int(d.day) }

// DayOfYear returns the one-based day number within the year.
func (d Date) DayOfYear() int {
	return previousMonthEndDay(int(d.month), isLeapYear(d.calendar, d.year)) + int(d.day)
}

// J2000DayNumber returns the day number of the date relative to 2000-01-01.
func (d Date) J2000DayNumber() int64 {
	return j2000DayNumber(d.calendar, d.year, d.month, d.day)
}

// SecondsSinceJ2000 returns the number of seconds between J2000 and midnight
// at the start of the date.
func (d Date) SecondsSinceJ2000() int64 {
	return d.J2000DayNumber()*SecondsPerDay - SecondsPerHalfDay
}

// JulianDate expresses midnight of the date relative to epoch in the
// requested unit.
func (d Date) JulianDate(epoch Epoch, unit Unit) float64 {
	seconds := d.SecondsSinceJ2000() + epochOffsetSeconds(epoch)
	return inUnit(float64(seconds), unit)
}

// Compare returns -1, 0 or 1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		if d.year < other.year {
			return -1
		}
		return 1
	case d.month != other.month:
		if d.month < other.month {
			return -1
		}
		return 1
	case d.day != other.day:
		if d.day < other.day {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func findYear(cal Calendar, j2000day int64) int64 {
	switch cal {
	case ProlepticJulian:
		return -((-4*j2000day - 2920488) / 1461)
	case Julian:
		return -((-4*j2000day - 2921948) / 1461)
	default:
		year := (400*j2000day + 292194288) / 146097
		if j2000day <= lastDayOfYearJ2000(Gregorian, year-1) {
			return year - 1
		}
		return year
	}
}

func lastDayOfYearJ2000(cal Calendar, year int64) int64 {
	switch cal {
	case ProlepticJulian:
		return 365*year + (year+1)/4 - 730123
	case Julian:
		return 365*year + year/4 - 730122
	default:
		return 365*year + year/4 - year/100 + year/400 - 730120
	}
}

func isLeapYear(cal Calendar, year int64) bool {
	if cal == Gregorian {
		return year%4 == 0 && (year%400 == 0 || year%100 != 0)
	}
	return year%4 == 0
}

var (
	previousMonthEndDayLeap    = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	previousMonthEndDayCommon  = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

func previousMonthEndDay(month int, leap bool) int {
	if leap {
		return previousMonthEndDayLeap[month-1]
	}
	return previousMonthEndDayCommon[month-1]
}

func findMonth(dayOfYear int, leap bool) int {
	if dayOfYear < 32 {
		return 1
	}
	offset := 323
	if leap {
		offset = 313
	}
	return (10*dayOfYear + offset) / 306
}

func calendarFor(year int64, month, day uint8) Calendar {
	if year < 1 {
		return ProlepticJulian
	}
	if year < 1583 {
		if year < 1582 || month < 10 || (month < 11 && day < 5) {
			return Julian
		}
	}
	return Gregorian
}

func j2000DayNumber(cal Calendar, year int64, month, day uint8) int64 {
	d1 := lastDayOfYearJ2000(cal, year-1)
	d2 := previousMonthEndDay(int(month), isLeapYear(cal, year)) + int(day)
	return d1 + int64(d2)
}
