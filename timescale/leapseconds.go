package timescale

import "sort"

// LeapSecondProvider answers leap-second queries for UTC-TAI conversions.
type LeapSecondProvider interface {
	// DeltaTAIUTC returns TAI-UTC at the given TAI instant. The second return
	// value is false when the instant predates the UTC era.
	DeltaTAIUTC(tai Time) (Delta, bool)

	// DeltaUTCTAI returns UTC-TAI at the given UTC datetime. The second
	// return value is false when the datetime predates the UTC era.
	DeltaUTCTAI(utc UTC) (Delta, bool)

	// IsLeapSecondDate reports whether a leap second is inserted at the end
	// of the given date.
	IsLeapSecondDate(date Date) bool

	// IsLeapSecond reports whether the given TAI instant falls inside an
	// inserted leap second.
	IsLeapSecond(tai Time) bool
}

// Leap second introduction epochs as seconds since J2000, keyed once by the
// UTC datetime of the introduction and once by the corresponding TAI instant.
var (
	leapSecondEpochsUTC = [28]int64{
		-883656000, -867931200, -852033600, -820497600,
		-788961600, -757425600, -725803200, -694267200,
		-662731200, -631195200, -583934400, -552398400,
		-520862400, -457704000, -378734400, -315576000,
		-284040000, -236779200, -205243200, -173707200,
		-126273600, -79012800, -31579200, 189345600,
		284040000, 394372800, 488980800, 536500800,
	}

	leapSecondEpochsTAI = [28]int64{
		-883655991, -867931190, -852033589, -820497588,
		-788961587, -757425586, -725803185, -694267184,
		-662731183, -631195182, -583934381, -552398380,
		-520862379, -457703978, -378734377, -315575976,
		-284039975, -236779174, -205243173, -173707172,
		-126273571, -79012770, -31579169, 189345632,
		284040033, 394372834, 488980835, 536500836,
	}

	leapSeconds = [28]int64{
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
		24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37,
	}
)

// BuiltinLeapSeconds serves the leap seconds announced by the IERS up to and
// including 2016-12-31, hard-coded so that no data files are needed. Between
// 1960 and 1972 UTC ran on a rubber-second model; the rate and offset tables
// for that era are included.
type BuiltinLeapSeconds struct{}

var _ LeapSecondProvider = BuiltinLeapSeconds{}

func findLeapSecond(epochs *[28]int64, seconds int64) (int64, bool) {
	if seconds < epochs[0] {
		return 0, false
	}
	idx := sort.Search(len(epochs), func(i int) bool { return epochs[i] > seconds }) - 1
	return leapSeconds[idx], true
}

// DeltaTAIUTC returns TAI-UTC at the given TAI instant, or false before 1972.
func (BuiltinLeapSeconds) DeltaTAIUTC(tai Time) (Delta, bool) {
	ls, ok := findLeapSecond(&leapSecondEpochsTAI, tai.seconds)
	if !ok {
		return Delta{}, false
	}
	return DeltaFromSeconds(ls), true
}

// DeltaUTCTAI returns UTC-TAI at the given UTC datetime, or false before
// 1972. During an inserted leap second the previous offset still applies.
func (BuiltinLeapSeconds) DeltaUTCTAI(utc UTC) (Delta, bool) {
	ls, ok := findLeapSecond(&leapSecondEpochsUTC, utc.ToDelta().Seconds)
	if !ok {
		return Delta{}, false
	}
	if utc.Second() == 60 {
		ls--
	}
	return DeltaFromSeconds(-ls), true
}

// IsLeapSecondDate reports whether a leap second is inserted at the end of
// the given date.
func (BuiltinLeapSeconds) IsLeapSecondDate(date Date) bool {
	day := date.J2000DayNumber()
	idx := sort.Search(len(leapSecondEpochsUTC), func(i int) bool {
		return leapSecondEpochsUTC[i]/SecondsPerDay >= day
	})
	return idx < len(leapSecondEpochsUTC) && leapSecondEpochsUTC[idx]/SecondsPerDay == day
}

// IsLeapSecond reports whether the given TAI instant falls inside an inserted
// leap second.
func (BuiltinLeapSeconds) IsLeapSecond(tai Time) bool {
	idx := sort.Search(len(leapSecondEpochsTAI), func(i int) bool {
		return leapSecondEpochsTAI[i] >= tai.seconds
	})
	return idx < len(leapSecondEpochsTAI) && leapSecondEpochsTAI[idx] == tai.seconds
}

// Rubber-second UTC model used between 1960 and 1972: piecewise-linear
// TAI-UTC with rates in seconds of TAI per UTC day, keyed by MJD.
var (
	utc1960Epochs = [14]int64{
		36934, 37300, 37512, 37665, 38334, 38395, 38486,
		38639, 38761, 38820, 38942, 39004, 39126, 39887,
	}
	utc1960Offsets = [14]float64{
		1.417818, 1.422818, 1.372818, 1.845858, 1.945858, 3.240130, 3.340130,
		3.440130, 3.540130, 3.640130, 3.740130, 3.840130, 4.313170, 4.213170,
	}
	utc1960DriftEpochs = [14]int64{
		37300, 37300, 37300, 37665, 37665, 38761, 38761,
		38761, 38761, 38761, 38761, 38761, 39126, 39126,
	}
	utc1960DriftRates = [14]float64{
		0.0012960, 0.0012960, 0.0012960, 0.0011232, 0.0011232, 0.0012960, 0.0012960,
		0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0025920, 0.0025920,
	}
)

func utc1960Position(mjd float64) (int, bool) {
	day := int64(mjd)
	if day < utc1960Epochs[0] {
		return 0, false
	}
	return sort.Search(len(utc1960Epochs), func(i int) bool { return utc1960Epochs[i] > day }) - 1, true
}

// deltaUTCTAI1960 returns UTC-TAI for a UTC datetime in the rubber-second
// era, or false before 1960.
func deltaUTCTAI1960(utc UTC) (Delta, bool) {
	mjd := utc.ToDelta().JulianDate(EpochMJD, UnitDays)
	pos, ok := utc1960Position(mjd)
	if !ok {
		return Delta{}, false
	}
	raw := utc1960Offsets[pos] + (mjd-float64(utc1960DriftEpochs[pos]))*utc1960DriftRates[pos]
	d, err := DeltaFromDecimalSeconds(-raw)
	if err != nil {
		return Delta{}, false
	}
	return d, true
}

// deltaTAIUTC1960 returns TAI-UTC for a TAI instant in the rubber-second era,
// or false before 1960. The drift rate is restated per TAI day so that the
// relation inverts deltaUTCTAI1960.
func deltaTAIUTC1960(tai Time) (Delta, bool) {
	mjd := tai.JulianDate(EpochMJD, UnitDays)
	pos, ok := utc1960Position(mjd)
	if !ok {
		return Delta{}, false
	}
	rateUTC := utc1960DriftRates[pos] / float64(SecondsPerDay)
	rateTAI := rateUTC / (1.0 + rateUTC) * float64(SecondsPerDay)
	dt := mjd - float64(utc1960DriftEpochs[pos]) - utc1960Offsets[pos]/float64(SecondsPerDay)
	raw := utc1960Offsets[pos] + dt*rateTAI
	d, err := DeltaFromDecimalSeconds(raw)
	if err != nil {
		return Delta{}, false
	}
	return d, true
}
