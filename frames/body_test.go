package frames

import (
	"errors"
	"testing"
)

// Reference values from the IAU/IAG 2009 rotational elements for Jupiter
// evaluated at J2000 TDB.
func TestJupiterRotationalElements(t *testing.T) {
	ra, dec, w := Jupiter.RotationalElements(0)
	assertRel(t, "ra", ra, 4.678480799964803, 1e-8)
	assertRel(t, "dec", dec, 1.1256642372977634, 1e-8)
	assertRel(t, "w", w, 4.973315703557842, 1e-8)

	raRate, decRate, wRate := Jupiter.RotationalElementRates(0)
	assertRel(t, "ra rate", raRate, -1.3266588500099516e-13, 1e-8)
	assertRel(t, "dec rate", decRate, 3.004482367136341e-15, 1e-8)
	assertRel(t, "w rate", wRate, 0.00017585323445765458, 1e-8)
}

// The Sun has no trigonometric terms, so its prime meridian rate is the
// constant linear coefficient.
func TestSunRotationRateIsConstant(t *testing.T) {
	_, _, rate0 := Sun.RotationalElementRates(0)
	_, _, rate1 := Sun.RotationalElementRates(1e9)
	if rate0 != rate1 {
		t.Errorf("Sun W rate varies: %g vs %g", rate0, rate1)
	}
	assertRel(t, "w rate", rate0, deg(14.1844)/secondsPerDay, 1e-12)
}

func TestParseBody(t *testing.T) {
	cases := []struct {
		name string
		want Body
	}{
		{"Earth", Earth},
		{"earth", Earth},
		{"MOON", Moon},
		{"luna", Moon},
		{"Jupiter", Jupiter},
		{"sun", Sun},
	}
	for _, tc := range cases {
		got, err := ParseBody(tc.name)
		if err != nil {
			t.Errorf("ParseBody(%q) returned error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseBody(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseBodyUnknown(t *testing.T) {
	for _, name := range []string{"Rupert", "Sycorax", ""} {
		_, err := ParseBody(name)
		var unknown *UnknownBodyError
		if !errors.As(err, &unknown) {
			t.Errorf("ParseBody(%q) error = %v, want UnknownBodyError", name, err)
			continue
		}
		if unknown.Name != name {
			t.Errorf("UnknownBodyError.Name = %q, want %q", unknown.Name, name)
		}
	}
}

func TestBodyString(t *testing.T) {
	if got := Moon.String(); got != "Moon" {
		t.Errorf("Moon.String() = %q", got)
	}
	if got := Neptune.String(); got != "Neptune" {
		t.Errorf("Neptune.String() = %q", got)
	}
}
