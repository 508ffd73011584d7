package timescale

// Integral second counts relating the standard Julian epochs to J2000.
const (
	SecondsPerDay           int64 = 86400
	SecondsPerHalfDay       int64 = 43200
	SecondsPerHour          int64 = 3600
	SecondsPerMinute        int64 = 60
	SecondsPerJulianYear    int64 = 31557600
	SecondsPerJulianCentury int64 = 3155760000

	secondsBetweenJDAndJ2000    int64 = 211813488000
	secondsBetweenMJDAndJ2000   int64 = 4453444800
	secondsBetweenJ1950AndJ2000 int64 = 1577880000
	secondsBetweenJ1977AndJ2000 int64 = 725803200
)

// Epoch selects the reference epoch of a Julian date.
type Epoch uint8

const (
	// EpochJD is the Julian epoch, 4713 BC January 1 12:00.
	EpochJD Epoch = iota
	// EpochMJD is the modified Julian epoch, 1858 November 17 00:00.
	EpochMJD
	// EpochJ1950 is 1950 January 1 00:00.
	EpochJ1950
	// EpochJ2000 is 2000 January 1 12:00.
	EpochJ2000
)

// Unit selects the unit in which a Julian date is expressed.
type Unit uint8

const (
	UnitSeconds Unit = iota
	UnitDays
	UnitCenturies
)

func epochOffsetSeconds(epoch Epoch) int64 {
	switch epoch {
	case EpochJD:
		return secondsBetweenJDAndJ2000
	case EpochMJD:
		return secondsBetweenMJDAndJ2000
	case EpochJ1950:
		return secondsBetweenJ1950AndJ2000
	default:
		return 0
	}
}

func inUnit(seconds float64, unit Unit) float64 {
	switch unit {
	case UnitDays:
		return seconds / float64(SecondsPerDay)
	case UnitCenturies:
		return seconds / float64(SecondsPerJulianCentury)
	default:
		return seconds
	}
}
