package earth

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signalsfoundry/astrotime/internal/logging"
	"github.com/signalsfoundry/astrotime/timescale"
)

// secondsBetweenMJDAndJ2000 separates the Modified Julian Date epoch
// (1858-11-17T00:00) from J2000 (2000-01-01T12:00).
const secondsBetweenMJDAndJ2000 = 4453444800.0

// ExtrapolatedEOPError reports that a requested instant lies outside the
// loaded Earth orientation data. The carried values are best-effort, held at
// the nearest table boundary; callers decide whether to accept them.
type ExtrapolatedEOPError struct {
	Values       []float64
	MinMJD       float64
	MaxMJD       float64
	RequestedMJD float64
}

func (e *ExtrapolatedEOPError) Error() string {
	return fmt.Sprintf("extrapolated EOP value: MJD %.3f is outside the data range [%.3f, %.3f]",
		e.RequestedMJD, e.MinMJD, e.MaxMJD)
}

// EOPProvider serves Earth orientation parameters interpolated from an IERS
// finals2000A.all.csv table: UT1-TAI offsets, polar motion, and IAU 2000
// celestial pole offsets. It implements timescale.UT1Provider.
type EOPProvider struct {
	deltaUT1TAI *series // seconds, indexed by TAI seconds since J2000
	xPole       *series // arcseconds, indexed by UTC pseudo-seconds
	yPole       *series
	dX          *series // milliarcseconds, indexed by UTC pseudo-seconds
	dY          *series
}

var _ timescale.UT1Provider = (*EOPProvider)(nil)

// EOPRow is one day of Earth orientation data in the units of the finals
// table: UT1-TAI in seconds, polar motion in arcseconds, celestial pole
// offsets in milliarcseconds. Nil fields were not published for the day,
// which happens in the prediction tail of the file.
type EOPRow struct {
	MJD    float64
	UT1TAI *float64
	XPole  *float64
	YPole  *float64
	DX     *float64
	DY     *float64
}

// ParseFinalsCSV reads a semicolon-delimited IERS finals2000A CSV stream.
// Rows whose observed columns are not yet populated (the prediction tail)
// are dropped from the affected series.
func ParseFinalsCSV(r io.Reader) (*EOPProvider, error) {
	rows, err := ParseFinalsRows(r)
	if err != nil {
		return nil, err
	}
	return NewEOPProvider(rows)
}

// ParseFinalsRows reads a finals2000A CSV stream into normalized rows. The
// published UT1-UTC offsets are converted to UT1-TAI using the built-in leap
// second table.
func ParseFinalsRows(r io.Reader) ([]EOPRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading finals CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"MJD", "Year", "Month", "Day", "x_pole", "y_pole", "UT1-UTC", "dX", "dY"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("finals CSV is missing column %q", name)
		}
	}

	var (
		ls   timescale.BuiltinLeapSeconds
		rows []EOPRow
	)

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading finals CSV row %d: %w", row, err)
		}

		field := func(name string) string { return record[col[name]] }
		mjd, err := strconv.ParseFloat(field("MJD"), 64)
		if err != nil {
			return nil, fmt.Errorf("finals CSV row %d: invalid MJD: %w", row, err)
		}
		out := EOPRow{MJD: mjd}

		if raw := field("UT1-UTC"); raw != "" {
			dut1utc, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid UT1-UTC: %w", row, err)
			}
			year, err := strconv.ParseInt(field("Year"), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid year: %w", row, err)
			}
			month, err := strconv.Atoi(field("Month"))
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid month: %w", row, err)
			}
			day, err := strconv.Atoi(field("Day"))
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid day: %w", row, err)
			}
			utc, err := timescale.NewUTC(year, month, day, 0, 0, 0)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: %w", row, err)
			}
			utcTAI, ok := ls.DeltaUTCTAI(utc)
			if !ok {
				return nil, fmt.Errorf("finals CSV row %d: no leap second data for %s", row, utc)
			}
			ut1TAI := dut1utc + utcTAI.DecimalSeconds()
			out.UT1TAI = &ut1TAI
		}

		if rawX, rawY := field("x_pole"), field("y_pole"); rawX != "" && rawY != "" {
			x, err := strconv.ParseFloat(rawX, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid x_pole: %w", row, err)
			}
			y, err := strconv.ParseFloat(rawY, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid y_pole: %w", row, err)
			}
			out.XPole, out.YPole = &x, &y
		}

		if rawX, rawY := field("dX"), field("dY"); rawX != "" && rawY != "" {
			x, err := strconv.ParseFloat(rawX, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid dX: %w", row, err)
			}
			y, err := strconv.ParseFloat(rawY, 64)
			if err != nil {
				return nil, fmt.Errorf("finals CSV row %d: invalid dY: %w", row, err)
			}
			out.DX, out.DY = &x, &y
		}

		rows = append(rows, out)
	}

	return rows, nil
}

// NewEOPProvider builds the interpolation series from normalized rows.
func NewEOPProvider(rows []EOPRow) (*EOPProvider, error) {
	var (
		tUT1, ut1TAI  []float64
		tPole, xp, yp []float64
		tNP, dx, dy   []float64
	)
	for _, row := range rows {
		j2000 := row.MJD*float64(timescale.SecondsPerDay) - secondsBetweenMJDAndJ2000
		if row.UT1TAI != nil {
			tUT1 = append(tUT1, j2000)
			ut1TAI = append(ut1TAI, *row.UT1TAI)
		}
		if row.XPole != nil && row.YPole != nil {
			tPole = append(tPole, j2000)
			xp = append(xp, *row.XPole)
			yp = append(yp, *row.YPole)
		}
		if row.DX != nil && row.DY != nil {
			tNP = append(tNP, j2000)
			dx = append(dx, *row.DX)
			dy = append(dy, *row.DY)
		}
	}

	p := &EOPProvider{}
	var err error
	if p.deltaUT1TAI, err = newSeries(tUT1, ut1TAI); err != nil {
		return nil, fmt.Errorf("building UT1-TAI series: %w", err)
	}
	if p.xPole, err = newSeries(tPole, xp); err != nil {
		return nil, fmt.Errorf("building polar motion series: %w", err)
	}
	if p.yPole, err = newSeries(tPole, yp); err != nil {
		return nil, fmt.Errorf("building polar motion series: %w", err)
	}
	if p.dX, err = newSeries(tNP, dx); err != nil {
		return nil, fmt.Errorf("building celestial pole offset series: %w", err)
	}
	if p.dY, err = newSeries(tNP, dy); err != nil {
		return nil, fmt.Errorf("building celestial pole offset series: %w", err)
	}
	return p, nil
}

// LoadFinalsCSV parses the finals2000A CSV file at path.
func LoadFinalsCSV(path string, log logging.Logger) (*EOPProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening finals CSV: %w", err)
	}
	defer f.Close()

	p, err := ParseFinalsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	minMJD, maxMJD := p.SpanMJD()
	log.Info(context.Background(), "loaded Earth orientation data",
		logging.String("path", path),
		logging.Int("rows", len(p.deltaUT1TAI.x)),
		logging.Any("min_mjd", minMJD),
		logging.Any("max_mjd", maxMJD),
	)
	return p, nil
}

// SpanMJD returns the Modified Julian Date range covered by the UT1-TAI
// series.
func (p *EOPProvider) SpanMJD() (min, max float64) {
	first, _ := p.deltaUT1TAI.first()
	last, _ := p.deltaUT1TAI.last()
	return mjdFromSeconds(first), mjdFromSeconds(last)
}

func mjdFromSeconds(seconds float64) float64 {
	return (seconds + secondsBetweenMJDAndJ2000) / float64(timescale.SecondsPerDay)
}

func (p *EOPProvider) extrapolated(s *series, seconds float64, values ...float64) error {
	min, _ := s.first()
	max, _ := s.last()
	return &ExtrapolatedEOPError{
		Values:       values,
		MinMJD:       mjdFromSeconds(min),
		MaxMJD:       mjdFromSeconds(max),
		RequestedMJD: mjdFromSeconds(seconds),
	}
}

// DeltaUT1TAI returns UT1-TAI at the given TAI instant. Outside the data
// range the value is held at the nearest table boundary and returned together
// with an ExtrapolatedEOPError.
func (p *EOPProvider) DeltaUT1TAI(tai timescale.Time) (timescale.Delta, error) {
	seconds := tai.ToDelta().DecimalSeconds()
	val := p.deltaUT1TAI.interpolateClamped(seconds)
	d, err := timescale.DeltaFromDecimalSeconds(val)
	if err != nil {
		return timescale.Delta{}, err
	}
	if min, _ := p.deltaUT1TAI.first(); seconds < min {
		return d, p.extrapolated(p.deltaUT1TAI, seconds, val)
	}
	if max, _ := p.deltaUT1TAI.last(); seconds > max {
		return d, p.extrapolated(p.deltaUT1TAI, seconds, val)
	}
	return d, nil
}

// DeltaTAIUT1 returns TAI-UT1 at the given UT1 instant. The table is indexed
// by TAI, so the UT1 offset serves as an initial guess which two further
// interpolation passes refine.
func (p *EOPProvider) DeltaTAIUT1(ut1 timescale.Time) (timescale.Delta, error) {
	seconds := ut1.ToDelta().DecimalSeconds()
	val := p.deltaUT1TAI.interpolateClamped(seconds)
	for i := 0; i < 2; i++ {
		val = p.deltaUT1TAI.interpolateClamped(seconds - val)
	}
	d, err := timescale.DeltaFromDecimalSeconds(-val)
	if err != nil {
		return timescale.Delta{}, err
	}
	if min, _ := p.deltaUT1TAI.first(); seconds < min {
		return d, p.extrapolated(p.deltaUT1TAI, seconds, -val)
	}
	if max, _ := p.deltaUT1TAI.last(); seconds > max {
		return d, p.extrapolated(p.deltaUT1TAI, seconds, -val)
	}
	return d, nil
}

// PolarMotion returns the interpolated pole coordinates at the given TAI
// instant, in radians.
func (p *EOPProvider) PolarMotion(tai timescale.Time) (PoleCoords, error) {
	seconds, err := utcSeconds(tai)
	if err != nil {
		return PoleCoords{}, err
	}
	pole := PoleCoords{
		Xp: p.xPole.interpolateClamped(seconds) * radPerArcsec,
		Yp: p.yPole.interpolateClamped(seconds) * radPerArcsec,
	}
	if min, _ := p.xPole.first(); seconds < min {
		return pole, p.extrapolated(p.xPole, seconds, pole.Xp, pole.Yp)
	}
	if max, _ := p.xPole.last(); seconds > max {
		return pole, p.extrapolated(p.xPole, seconds, pole.Xp, pole.Yp)
	}
	return pole, nil
}

// CipOffsets returns the interpolated IAU 2000 celestial pole offsets dX, dY
// at the given TAI instant, in radians.
func (p *EOPProvider) CipOffsets(tai timescale.Time) (Corrections, error) {
	seconds, err := utcSeconds(tai)
	if err != nil {
		return Corrections{}, err
	}
	corr := Corrections{
		X: p.dX.interpolateClamped(seconds) * radPerMilliarcsec,
		Y: p.dY.interpolateClamped(seconds) * radPerMilliarcsec,
	}
	if min, _ := p.dX.first(); seconds < min {
		return corr, p.extrapolated(p.dX, seconds, corr.X, corr.Y)
	}
	if max, _ := p.dX.last(); seconds > max {
		return corr, p.extrapolated(p.dX, seconds, corr.X, corr.Y)
	}
	return corr, nil
}

// Corrections returns the celestial pole offsets appropriate for a
// convention. The finals2000A table carries offsets with respect to the
// IAU 2000 precession-nutation only, so the IERS 1996 convention gets zero
// corrections.
func (p *EOPProvider) Corrections(tai timescale.Time, c Convention) (Corrections, error) {
	if c == IERS1996 {
		return Corrections{}, nil
	}
	return p.CipOffsets(tai)
}

// utcSeconds converts a TAI instant to pseudo-seconds since J2000 on the UTC
// clock, the axis of the dated EOP series.
func utcSeconds(tai timescale.Time) (float64, error) {
	utc, err := timescale.UTCFromTAI(tai, timescale.BuiltinLeapSeconds{})
	if err != nil {
		return 0, err
	}
	return utc.ToDelta().DecimalSeconds(), nil
}
