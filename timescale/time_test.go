package timescale

import (
	"errors"
	"math"
	"testing"
)

func TestTimeFromCalendar(t *testing.T) {
	j2000, err := FromCalendar(TAI, 2000, 1, 1, 12, 0, 0.0)
	if err != nil {
		t.Fatalf("FromCalendar returned error: %v", err)
	}
	if j2000 != J2000(TAI) {
		t.Errorf("FromCalendar(2000-01-01T12:00:00) = %+v, want J2000", j2000)
	}

	if _, err := FromCalendar(TAI, 2000, 13, 1, 0, 0, 0.0); !errors.Is(err, ErrInvalidCalendarField) {
		t.Errorf("month 13 error = %v, want %v", err, ErrInvalidCalendarField)
	}
	if _, err := FromCalendar(TAI, 2016, 12, 31, 23, 59, 60.0); !errors.Is(err, ErrLeapSecondOutsideUTC) {
		t.Errorf("leap second error = %v, want %v", err, ErrLeapSecondOutsideUTC)
	}
}

func TestTimeString(t *testing.T) {
	tests := []struct {
		time Time
		want string
	}{
		{J2000(TAI), "2000-01-01T12:00:00.000 TAI"},
		{New(TDB, 43200, 0), "2000-01-02T00:00:00.000 TDB"},
		{New(TT, -43201, 0), "1999-12-31T23:59:59.000 TT"},
		{New(UT1, 0, 0.123), "2000-01-01T12:00:00.123 UT1"},
	}
	for _, tc := range tests {
		if got := tc.time.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestTimeParse(t *testing.T) {
	parsed, err := Parse("2024-12-30T10:27:13.145 TDB")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed.Scale() != TDB {
		t.Errorf("Scale() = %v, want TDB", parsed.Scale())
	}
	if got := parsed.String(); got != "2024-12-30T10:27:13.145 TDB" {
		t.Errorf("round trip = %q", got)
	}

	if _, err := Parse("2024-12-30T10:27:13.145"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing scale suffix error = %v, want %v", err, ErrInvalidFormat)
	}
	if _, err := Parse("2024-12-30T10:27:13.145 XYZ"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("unknown scale error = %v, want %v", err, ErrInvalidFormat)
	}
	if _, err := FromISO(TAI, "2024-12-30T10:27:13.145 TDB"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("mismatched scale error = %v, want %v", err, ErrInvalidFormat)
	}
	if _, err := FromISO(TAI, "2024-12-30 10:27:13"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing T separator error = %v, want %v", err, ErrInvalidFormat)
	}
	bare, err := FromISO(TT, "2000-01-01T12:00:00")
	if err != nil {
		t.Fatalf("FromISO without suffix returned error: %v", err)
	}
	if bare != J2000(TT) {
		t.Errorf("FromISO(\"2000-01-01T12:00:00\") = %+v, want J2000 TT", bare)
	}
}

func TestTimeJulianDates(t *testing.T) {
	half, err := FromJulianDate(TAI, 0.5, EpochJ2000)
	if err != nil {
		t.Fatalf("FromJulianDate returned error: %v", err)
	}
	if half.Seconds() != 43200 || half.Subsecond() != 0 {
		t.Errorf("FromJulianDate(0.5 days past J2000) = %+v", half)
	}

	if got := J2000(TT).JulianDate(EpochJD, UnitDays); got != 2451545.0 {
		t.Errorf("JD of J2000 = %v, want 2451545.0", got)
	}
	if got := New(TT, SecondsPerJulianCentury, 0).CenturiesSinceJ2000(); got != 1.0 {
		t.Errorf("CenturiesSinceJ2000 = %v, want 1.0", got)
	}

	if _, err := FromJulianDate(TAI, math.Inf(1), EpochJ2000); !errors.Is(err, ErrNonFinite) {
		t.Errorf("infinite Julian date error = %v, want %v", err, ErrNonFinite)
	}
}

func TestTimeTwoPartJulianDate(t *testing.T) {
	time, err := FromTwoPartJulianDate(TAI, 2451545.0, 0.5)
	if err != nil {
		t.Fatalf("FromTwoPartJulianDate returned error: %v", err)
	}
	if time.Seconds() != 43200 || time.Subsecond() != 0 {
		t.Errorf("FromTwoPartJulianDate(2451545.0, 0.5) = %+v, want 43200 s past J2000", time)
	}

	jd1, jd2 := time.TwoPartJulianDate()
	if jd1 != 2451545.0 || jd2 != 0.5 {
		t.Errorf("TwoPartJulianDate() = (%v, %v), want (2451545.0, 0.5)", jd1, jd2)
	}

	// Fractions that sum past a whole day must carry into the day count.
	carry, err := FromTwoPartJulianDate(TAI, 2451545.75, 0.75)
	if err != nil {
		t.Fatalf("FromTwoPartJulianDate returned error: %v", err)
	}
	if got := carry.DaysSinceJ2000(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("FromTwoPartJulianDate(2451545.75, 0.75) = %v days past J2000, want 1.5", got)
	}
}

func TestTimeArithmetic(t *testing.T) {
	base := J2000(TAI)
	shifted := base.AddDelta(Delta{Seconds: 10, Subsecond: 0.25})
	if shifted.Seconds() != 10 || !shifted.Subsecond().Equal(0.25) {
		t.Errorf("AddDelta = %+v", shifted)
	}
	back := shifted.SubDelta(Delta{Seconds: 10, Subsecond: 0.25})
	if back.Seconds() != 0 || !back.Subsecond().Equal(0) {
		t.Errorf("SubDelta round trip = %+v", back)
	}

	diff, err := shifted.Sub(base)
	if err != nil {
		t.Fatalf("Sub returned error: %v", err)
	}
	if diff.Seconds != 10 || !diff.Subsecond.Equal(0.25) {
		t.Errorf("Sub = %+v, want 10.25 s", diff)
	}

	if _, err := shifted.Sub(J2000(TT)); !errors.Is(err, ErrScaleMismatch) {
		t.Errorf("cross-scale Sub error = %v, want %v", err, ErrScaleMismatch)
	}
	if _, err := shifted.Compare(J2000(TT)); !errors.Is(err, ErrScaleMismatch) {
		t.Errorf("cross-scale Compare error = %v, want %v", err, ErrScaleMismatch)
	}

	cmp, err := shifted.Compare(base)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if cmp != 1 {
		t.Errorf("Compare = %d, want 1", cmp)
	}
}

func TestTimeCloseTo(t *testing.T) {
	a := New(TAI, 1000, 0)
	b := New(TAI, 1000, 1e-13)
	ok, err := a.CloseTo(b, 0, 1e-9)
	if err != nil {
		t.Fatalf("CloseTo returned error: %v", err)
	}
	if !ok {
		t.Error("instants 1e-13 s apart not close within 1e-9 s")
	}
	ok, err = a.CloseTo(New(TAI, 1001, 0), 0, 1e-9)
	if err != nil {
		t.Fatalf("CloseTo returned error: %v", err)
	}
	if ok {
		t.Error("instants 1 s apart reported close within 1e-9 s")
	}
	if _, err := a.CloseTo(J2000(TT), 0, 1e-9); !errors.Is(err, ErrScaleMismatch) {
		t.Errorf("cross-scale CloseTo error = %v, want %v", err, ErrScaleMismatch)
	}
}

func TestTimeFromEpoch(t *testing.T) {
	mjd := FromEpoch(TAI, EpochMJD)
	if got := mjd.JulianDate(EpochMJD, UnitDays); got != 0.0 {
		t.Errorf("MJD of the MJD epoch = %v, want 0.0", got)
	}
	if got := mjd.Date().String(); got != "1858-11-17" {
		t.Errorf("date of the MJD epoch = %s, want 1858-11-17", got)
	}
}

func TestTimeDateAndTimeOfDay(t *testing.T) {
	noon := J2000(TDB)
	if got := noon.Date().String(); got != "2000-01-01" {
		t.Errorf("Date() = %s, want 2000-01-01", got)
	}
	tod := noon.TimeOfDay()
	if tod.Hour() != 12 || tod.Minute() != 0 || tod.Second() != 0 {
		t.Errorf("TimeOfDay() = %s, want 12:00:00", tod)
	}
}

func TestParseScale(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Scale
	}{
		{"TAI", TAI}, {"TT", TT}, {"TCG", TCG}, {"TDB", TDB}, {"TCB", TCB}, {"UT1", UT1},
	} {
		got, err := ParseScale(tc.in)
		if err != nil {
			t.Fatalf("ParseScale(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseScale(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
	if _, err := ParseScale("GPS"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseScale(\"GPS\") error = %v, want %v", err, ErrInvalidFormat)
	}
}
