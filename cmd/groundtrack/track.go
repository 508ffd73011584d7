package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/frames"
	"github.com/signalsfoundry/astrotime/geom"
	"github.com/signalsfoundry/astrotime/internal/eopstore"
	"github.com/signalsfoundry/astrotime/internal/logging"
	"github.com/signalsfoundry/astrotime/timescale"
)

const (
	defaultDuration = 90 * time.Minute
	defaultStep     = time.Minute

	// IERS conventional mean equatorial radius, km.
	earthRadiusKm = 6378.1366
)

// trackPoint is one propagated state rotated into the target frame.
type trackPoint struct {
	Epoch    string     `json:"epoch"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	// Geocentric coordinates, only filled for Earth-fixed frames.
	LatDeg *float64 `json:"lat_deg,omitempty"`
	LonDeg *float64 `json:"lon_deg,omitempty"`
	AltKm  *float64 `json:"alt_km,omitempty"`
}

func runGroundtrack(cmd *cobra.Command, args []string) error {
	log := logging.NewFromEnv()
	ctx := context.Background()

	line1, line2, err := readTLE(viper.GetString("tle"))
	if err != nil {
		return err
	}

	start := time.Now().UTC()
	if raw := viper.GetString("start"); raw != "" {
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("parsing start: %w", err)
		}
		start = start.UTC()
	}
	duration := viper.GetDuration("duration")
	if duration <= 0 {
		duration = defaultDuration
	}
	step := viper.GetDuration("step")
	if step <= 0 {
		step = defaultStep
	}

	target, err := frames.Parse(viper.GetString("frame"))
	if err != nil {
		return err
	}

	provider, cleanup, err := openEOP(ctx, viper.GetString("eop-cache"), viper.GetString("finals-csv"), log)
	if err != nil {
		return err
	}
	defer cleanup()

	states, err := propagate(line1, line2, start, duration, step)
	if err != nil {
		return err
	}

	out, err := frames.TransformStates(states, target, provider)
	if err != nil {
		var ext *earth.ExtrapolatedEOPError
		if !errors.As(err, &ext) {
			return err
		}
		// Extrapolated EOP values still produce usable states.
		log.Warn(ctx, "Earth orientation data extrapolated", logging.String("error", err.Error()))
	}

	points := make([]trackPoint, len(out))
	for i, s := range out {
		points[i] = newTrackPoint(s)
	}
	return writePoints(os.Stdout, viper.GetString("format"), points)
}

// readTLE loads a two- or three-line element set, skipping a leading name line.
func readTLE(path string) (line1, line2 string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading TLE: %w", err)
	}
	return parseTLE(string(data))
}

func parseTLE(data string) (line1, line2 string, err error) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r ")
		switch {
		case strings.HasPrefix(line, "1 "):
			line1 = line
		case strings.HasPrefix(line, "2 "):
			line2 = line
		}
	}
	if line1 == "" || line2 == "" {
		return "", "", fmt.Errorf("TLE needs lines starting with \"1 \" and \"2 \"")
	}
	return line1, line2, nil
}

// propagate runs SGP4 over the window and tags each state with a TEME frame
// at the corresponding TAI epoch.
func propagate(line1, line2 string, start time.Time, duration, step time.Duration) ([]frames.State, error) {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	var states []frames.State
	for offset := time.Duration(0); offset <= duration; offset += step {
		at := start.Add(offset)
		year, month, day := at.Date()
		hour, minute, sec := at.Clock()
		seconds := float64(sec) + float64(at.Nanosecond())/1e9

		pos, vel := satellite.Propagate(sat, year, int(month), day, hour, minute, sec)

		utc, err := timescale.NewUTC(int64(year), int(month), day, hour, minute, seconds)
		if err != nil {
			return nil, fmt.Errorf("epoch %s: %w", at.Format(time.RFC3339), err)
		}
		tai, err := utc.ToTAI(timescale.BuiltinLeapSeconds{})
		if err != nil {
			return nil, fmt.Errorf("epoch %s: %w", at.Format(time.RFC3339), err)
		}

		states = append(states, frames.NewState(tai, frames.Earth, frames.TEME,
			geom.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
			geom.Vec3{X: vel.X, Y: vel.Y, Z: vel.Z},
		))
	}
	return states, nil
}

func newTrackPoint(s frames.State) trackPoint {
	p := trackPoint{
		Epoch:    s.Time.Format(3),
		Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
		Velocity: [3]float64{s.Velocity.X, s.Velocity.Y, s.Velocity.Z},
	}
	if s.Frame.IsRotating() && s.Frame != frames.TEME {
		lat, lon, alt := geocentric(s.Position)
		p.LatDeg, p.LonDeg, p.AltKm = &lat, &lon, &alt
	}
	return p
}

// geocentric returns spherical latitude and longitude in degrees and the
// height above the mean equatorial radius in kilometres.
func geocentric(v geom.Vec3) (latDeg, lonDeg, altKm float64) {
	r := v.Norm()
	latDeg = math.Asin(v.Z/r) * 180 / math.Pi
	lonDeg = math.Atan2(v.Y, v.X) * 180 / math.Pi
	altKm = r - earthRadiusKm
	return latDeg, lonDeg, altKm
}

func writePoints(w io.Writer, format string, points []trackPoint) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		for _, p := range points {
			if err := enc.Encode(p); err != nil {
				return err
			}
		}
		return nil
	case "csv", "":
		cw := csv.NewWriter(w)
		header := []string{"epoch", "x_km", "y_km", "z_km", "vx_kms", "vy_kms", "vz_kms", "lat_deg", "lon_deg", "alt_km"}
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, p := range points {
			rec := []string{
				p.Epoch,
				formatFloat(p.Position[0]), formatFloat(p.Position[1]), formatFloat(p.Position[2]),
				formatFloat(p.Velocity[0]), formatFloat(p.Velocity[1]), formatFloat(p.Velocity[2]),
				formatOptional(p.LatDeg), formatOptional(p.LonDeg), formatOptional(p.AltKm),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 9, 64) }

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

// openEOP loads Earth orientation data when a cache or CSV path is given.
// The cleanup function closes the cache database.
func openEOP(ctx context.Context, cachePath, csvPath string, log logging.Logger) (frames.Provider, func(), error) {
	noop := func() {}
	if cachePath == "" && csvPath == "" {
		return nil, noop, nil
	}
	if cachePath == "" {
		cachePath = "eop.db"
	}

	store, err := eopstore.Open(cachePath)
	if err != nil {
		return nil, noop, err
	}
	p, _, err := eopstore.LoadOrRefresh(ctx, store, csvPath, log)
	if err != nil {
		store.Close()
		return nil, noop, err
	}
	return p, func() { store.Close() }, nil
}
