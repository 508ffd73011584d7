package timescale

import (
	"fmt"
	"math"
)

// UT1Provider supplies the difference between UT1 and TAI, typically derived
// from IERS Earth orientation data.
type UT1Provider interface {
	// DeltaUT1TAI returns UT1-TAI at the given TAI instant. Implementations
	// may return a best-effort Delta together with a non-nil error when the
	// instant lies outside the underlying data.
	DeltaUT1TAI(tai Time) (Delta, error)

	// DeltaTAIUT1 returns TAI-UT1 at the given UT1 instant, subject to the
	// same best-effort contract as DeltaUT1TAI.
	DeltaTAIUT1(ut1 Time) (Delta, error)
}

// DeltaTAITT is the constant offset TT-TAI.
var DeltaTAITT = Delta{Seconds: 32, Subsecond: 0.184}

const (
	// j77TT is J2000 TT seconds of 1977 January 1.0 TAI expressed in TT.
	j77TT = -7.25803167816e8

	// lg is the rate of change of TCG with respect to TT.
	lg    = 6.969290134e-10
	invLG = lg / (1.0 - lg)

	// tt0 is 1977 January 1.0 TAI in TT seconds since J2000.
	tt0 = float64(-secondsBetweenJ1977AndJ2000) + 32.184

	// lb is the rate of change of TDB with respect to TCB.
	lb    = 1.550519768e-8
	invLB = lb / (1.0 - lb)

	// tdb0 is the constant term of the TDB-TT formula of Fairhead &
	// Bretagnon (1990).
	tdb0  = -6.55e-5
	tcb77 = tdb0 + lb*tt0

	// Coefficients of the sinusoidal TDB-TT model.
	tdbK  = 1.657e-3
	tdbEB = 1.671e-2
	tdbM0 = 6.239996
	tdbM1 = 1.99096871e-7
)

func mustDelta(raw float64, from, to Scale) Delta {
	d, err := DeltaFromDecimalSeconds(raw)
	if err != nil {
		panic(fmt.Sprintf("calculated %s to %s offset %v could not be represented as a Delta: %v", from, to, raw, err))
	}
	return d
}

func taiToTT(t Time) Time { return t.withScaleAndDelta(TT, DeltaTAITT) }
func ttToTAI(t Time) Time { return t.withScaleAndDelta(TAI, DeltaTAITT.Neg()) }

func ttToTCG(t Time) Time {
	tt := t.ToDelta().DecimalSeconds()
	return t.withScaleAndDelta(TCG, mustDelta(invLG*(tt-j77TT), TT, TCG))
}

func tcgToTT(t Time) Time {
	tcg := t.ToDelta().DecimalSeconds()
	return t.withScaleAndDelta(TT, mustDelta(-lg*(tcg-j77TT), TCG, TT))
}

func tdbToTCB(t Time) Time {
	tdb := t.ToDelta().DecimalSeconds()
	return t.withScaleAndDelta(TCB, mustDelta(-tcb77/(1.0-lb)+invLB*tdb, TDB, TCB))
}

func tcbToTDB(t Time) Time {
	tcb := t.ToDelta().DecimalSeconds()
	return t.withScaleAndDelta(TDB, mustDelta(tcb77-lb*tcb, TCB, TDB))
}

func ttToTDB(t Time) Time {
	tt := t.ToDelta().DecimalSeconds()
	g := tdbM0 + tdbM1*tt
	return t.withScaleAndDelta(TDB, mustDelta(tdbK*math.Sin(g+tdbEB*math.Sin(g)), TT, TDB))
}

// tdbToTT inverts the sinusoidal TDB-TT model. Two iterations recover TT to
// femtosecond level.
func tdbToTT(t Time) Time {
	tdb := t.ToDelta().DecimalSeconds()
	tt := tdb
	var raw float64
	for i := 0; i < 2; i++ {
		g := tdbM0 + tdbM1*tt
		raw = -tdbK * math.Sin(g+tdbEB*math.Sin(g))
		tt = tdb + raw
	}
	return t.withScaleAndDelta(TT, mustDelta(raw, TDB, TT))
}

// toTT converts any continuous scale except UT1 to TT.
func toTT(t Time) Time {
	switch t.scale {
	case TT:
		return t
	case TAI:
		return taiToTT(t)
	case TCG:
		return tcgToTT(t)
	case TDB:
		return tdbToTT(t)
	case TCB:
		return tdbToTT(tcbToTDB(t))
	default:
		panic(fmt.Sprintf("cannot reach TT from %s without a provider", t.scale))
	}
}

// To converts the instant to the target scale. Conversions involving UT1
// require a provider; use ToWithProvider instead.
func (t Time) To(target Scale) (Time, error) {
	if t.scale == UT1 || target == UT1 {
		if t.scale == target {
			return t, nil
		}
		return Time{}, fmt.Errorf("%w: %s to %s", ErrMissingProvider, t.scale, target)
	}
	return convert(t, target, nil)
}

// ToWithProvider converts the instant to the target scale, consulting the
// UT1 provider for legs involving UT1.
//
// If the provider signals that the instant lies outside its data, the
// returned Time is the best-effort extrapolated result and the provider's
// error is passed through so that callers can decide whether to accept it.
func (t Time) ToWithProvider(target Scale, provider UT1Provider) (Time, error) {
	if (t.scale == UT1 || target == UT1) && t.scale != target && provider == nil {
		return Time{}, fmt.Errorf("%w: %s to %s", ErrMissingProvider, t.scale, target)
	}
	return convert(t, target, provider)
}

func convert(t Time, target Scale, provider UT1Provider) (Time, error) {
	if t.scale == target {
		return t, nil
	}

	// UT1 legs bracket the continuous-scale conversions via TAI.
	if t.scale == UT1 {
		offset, err := provider.DeltaTAIUT1(t)
		tai := t.withScaleAndDelta(TAI, offset)
		if err != nil {
			// Best effort: finish the conversion but surface the error.
			out, convErr := convert(tai, target, provider)
			if convErr != nil {
				return Time{}, convErr
			}
			return out, err
		}
		return convert(tai, target, provider)
	}
	if target == UT1 {
		tai, err := convert(t, TAI, provider)
		if err != nil {
			return Time{}, err
		}
		offset, err := provider.DeltaUT1TAI(tai)
		return tai.withScaleAndDelta(UT1, offset), err
	}

	switch target {
	case TAI:
		return ttToTAI(toTT(t)), nil
	case TT:
		return toTT(t), nil
	case TCG:
		return ttToTCG(toTT(t)), nil
	case TDB:
		if t.scale == TCB {
			return tcbToTDB(t), nil
		}
		return ttToTDB(toTT(t)), nil
	case TCB:
		if t.scale == TDB {
			return tdbToTCB(t), nil
		}
		return tdbToTCB(ttToTDB(toTT(t))), nil
	default:
		return Time{}, fmt.Errorf("%w: unknown target scale %s", ErrInvalidFormat, target)
	}
}
