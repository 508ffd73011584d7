package timescale

import (
	"errors"
	"math"
	"testing"
)

func TestDeltaFromDecimalSeconds(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    Delta
		wantErr error
	}{
		{name: "zero", value: 0.0, want: Delta{}},
		{name: "positive", value: 0.25, want: Delta{Seconds: 0, Subsecond: 0.25}},
		{name: "positive with whole part", value: 12.75, want: Delta{Seconds: 12, Subsecond: 0.75}},
		// Negative deltas carry the sign in the seconds field only.
		{name: "negative", value: -0.25, want: Delta{Seconds: -1, Subsecond: 0.75}},
		{name: "negative whole", value: -3.0, want: Delta{Seconds: -3}},
		{name: "NaN", value: math.NaN(), wantErr: ErrNonFinite},
		{name: "infinity", value: math.Inf(1), wantErr: ErrNonFinite},
		{name: "out of range", value: 1e300, wantErr: ErrNonFinite},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeltaFromDecimalSeconds(tc.value)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("DeltaFromDecimalSeconds(%g) error = %v, want %v", tc.value, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeltaFromDecimalSeconds(%g) returned error: %v", tc.value, err)
			}
			if got.Seconds != tc.want.Seconds || !got.Subsecond.Equal(tc.want.Subsecond) {
				t.Errorf("DeltaFromDecimalSeconds(%g) = %+v, want %+v", tc.value, got, tc.want)
			}
		})
	}
}

func TestDeltaNeg(t *testing.T) {
	tests := []struct {
		in, want Delta
	}{
		{Delta{}, Delta{}},
		{Delta{Seconds: 1}, Delta{Seconds: -1}},
		{Delta{Seconds: 0, Subsecond: 0.25}, Delta{Seconds: -1, Subsecond: 0.75}},
		{Delta{Seconds: -1, Subsecond: 0.75}, Delta{Seconds: 0, Subsecond: 0.25}},
	}
	for _, tc := range tests {
		if got := tc.in.Neg(); got != tc.want {
			t.Errorf("%+v.Neg() = %+v, want %+v", tc.in, got, tc.want)
		}
		if got := tc.in.Neg().Neg(); got != tc.in {
			t.Errorf("%+v.Neg().Neg() = %+v, want the original", tc.in, got)
		}
	}
}

func TestDeltaAddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Delta
		sum     Delta
		diff    Delta
	}{
		{
			name: "no carry",
			a:    Delta{Seconds: 1, Subsecond: 0.25},
			b:    Delta{Seconds: 2, Subsecond: 0.25},
			sum:  Delta{Seconds: 3, Subsecond: 0.5},
			diff: Delta{Seconds: -1, Subsecond: 0.0},
		},
		{
			name: "subsecond carry",
			a:    Delta{Seconds: 1, Subsecond: 0.75},
			b:    Delta{Seconds: 0, Subsecond: 0.5},
			sum:  Delta{Seconds: 2, Subsecond: 0.25},
			diff: Delta{Seconds: 1, Subsecond: 0.25},
		},
		{
			name: "negative operand",
			a:    Delta{Seconds: 1, Subsecond: 0.25},
			b:    Delta{Seconds: -1, Subsecond: 0.75}, // -0.25 s
			sum:  Delta{Seconds: 1, Subsecond: 0.0},
			diff: Delta{Seconds: 1, Subsecond: 0.5},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got.Seconds != tc.sum.Seconds || !got.Subsecond.Equal(tc.sum.Subsecond) {
				t.Errorf("%+v.Add(%+v) = %+v, want %+v", tc.a, tc.b, got, tc.sum)
			}
			if got := tc.a.Sub(tc.b); math.Abs(got.DecimalSeconds()-tc.diff.DecimalSeconds()) > 1e-15 {
				t.Errorf("%+v.Sub(%+v) = %+v, want %+v", tc.a, tc.b, got, tc.diff)
			}
			roundTrip := tc.a.Add(tc.b).Sub(tc.b)
			if math.Abs(roundTrip.DecimalSeconds()-tc.a.DecimalSeconds()) > 1e-15 {
				t.Errorf("add/sub round trip of %+v drifted to %+v", tc.a, roundTrip)
			}
		})
	}
}

func TestDeltaScale(t *testing.T) {
	tests := []struct {
		name   string
		in     Delta
		factor float64
		want   Delta
	}{
		{name: "identity", in: Delta{Seconds: 10, Subsecond: 0.5}, factor: 1.0, want: Delta{Seconds: 10, Subsecond: 0.5}},
		{name: "double", in: Delta{Seconds: 10, Subsecond: 0.25}, factor: 2.0, want: Delta{Seconds: 20, Subsecond: 0.5}},
		{name: "negate", in: Delta{Seconds: 10, Subsecond: 0.5}, factor: -1.0, want: Delta{Seconds: -11, Subsecond: 0.5}},
		{name: "negative times negative", in: Delta{Seconds: -11, Subsecond: 0.5}, factor: -1.0, want: Delta{Seconds: 10, Subsecond: 0.5}},
		{name: "zero factor", in: Delta{Seconds: 10, Subsecond: 0.5}, factor: 0.0, want: Delta{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Scale(tc.factor)
			if err != nil {
				t.Fatalf("%+v.Scale(%g) returned error: %v", tc.in, tc.factor, err)
			}
			if got.Seconds != tc.want.Seconds || !got.Subsecond.Equal(tc.want.Subsecond) {
				t.Errorf("%+v.Scale(%g) = %+v, want %+v", tc.in, tc.factor, got, tc.want)
			}
		})
	}

	if _, err := (Delta{Seconds: 1}).Scale(math.NaN()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Scale(NaN) error = %v, want %v", err, ErrNonFinite)
	}
	if _, err := (Delta{Seconds: math.MaxInt64 / 2}).Scale(1e10); !errors.Is(err, ErrNonFinite) {
		t.Errorf("overflowing Scale error = %v, want %v", err, ErrNonFinite)
	}
}

func TestDeltaCompare(t *testing.T) {
	a := Delta{Seconds: 1, Subsecond: 0.25}
	b := Delta{Seconds: 1, Subsecond: 0.5}
	c := Delta{Seconds: 2}
	if got := a.Compare(b); got != -1 {
		t.Errorf("a.Compare(b) = %d, want -1", got)
	}
	if got := c.Compare(a); got != 1 {
		t.Errorf("c.Compare(a) = %d, want 1", got)
	}
	if got := a.Compare(a); got != 0 {
		t.Errorf("a.Compare(a) = %d, want 0", got)
	}
}

func TestDeltaJulianDate(t *testing.T) {
	zero := Delta{}
	tests := []struct {
		name  string
		epoch Epoch
		unit  Unit
		want  float64
	}{
		{name: "JD of J2000", epoch: EpochJD, unit: UnitDays, want: 2451545.0},
		{name: "MJD of J2000", epoch: EpochMJD, unit: UnitDays, want: 51544.5},
		{name: "J1950 days", epoch: EpochJ1950, unit: UnitDays, want: 18262.5},
		{name: "J2000 centuries", epoch: EpochJ2000, unit: UnitCenturies, want: 0.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := zero.JulianDate(tc.epoch, tc.unit); got != tc.want {
				t.Errorf("JulianDate(%v, %v) = %v, want %v", tc.epoch, tc.unit, got, tc.want)
			}
		})
	}
}

func TestDeltaFromUnits(t *testing.T) {
	day, err := DeltaFromDays(1.0)
	if err != nil {
		t.Fatalf("DeltaFromDays(1) returned error: %v", err)
	}
	if day.Seconds != 86400 || day.Subsecond != 0 {
		t.Errorf("DeltaFromDays(1) = %+v, want exactly 86400 s", day)
	}
	century, err := DeltaFromJulianCenturies(1.0)
	if err != nil {
		t.Fatalf("DeltaFromJulianCenturies(1) returned error: %v", err)
	}
	if century.Seconds != 3155760000 {
		t.Errorf("DeltaFromJulianCenturies(1) = %+v, want 3155760000 s", century)
	}
}

func TestDeltaSigns(t *testing.T) {
	neg := Delta{Seconds: -1, Subsecond: 0.75}
	if !neg.IsNegative() || neg.IsZero() || neg.IsPositive() {
		t.Errorf("sign predicates wrong for %+v", neg)
	}
	if !(Delta{}).IsZero() {
		t.Error("zero Delta not reported as zero")
	}
	pos := Delta{Subsecond: 0.1}
	if !pos.IsPositive() || pos.IsNegative() {
		t.Errorf("sign predicates wrong for %+v", pos)
	}
}
