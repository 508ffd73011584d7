package eopstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/internal/logging"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "eop.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func f(v float64) *float64 { return &v }

func testRows() []earth.EOPRow {
	return []earth.EOPRow{
		{MJD: 58849, UT1TAI: f(-37.1772), XPole: f(0.076577), YPole: f(0.282336), DX: f(0.112), DY: f(-0.215)},
		{MJD: 58850, UT1TAI: f(-37.1774), XPole: f(0.076227), YPole: f(0.282376), DX: f(0.109), DY: f(-0.212)},
		{MJD: 58851, UT1TAI: f(-37.1777), XPole: f(0.075877), YPole: f(0.282416)},
	}
}

func TestReplaceAndRows(t *testing.T) {
	s := testStore(t)

	if err := s.Replace(testRows()); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	rows, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].MJD != 58849 || *rows[0].UT1TAI != -37.1772 {
		t.Errorf("first row = %+v", rows[0])
	}
	// The prediction-tail row keeps its missing celestial pole offsets.
	if rows[2].DX != nil || rows[2].DY != nil {
		t.Errorf("expected nil celestial pole offsets, got %+v", rows[2])
	}
}

func TestReplaceSwapsTable(t *testing.T) {
	s := testStore(t)

	if err := s.Replace(testRows()); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if err := s.Replace(testRows()[:1]); err != nil {
		t.Fatalf("second Replace returned error: %v", err)
	}
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestProviderFromCache(t *testing.T) {
	s := testStore(t)
	if err := s.Replace(testRows()); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	p, err := s.Provider()
	if err != nil {
		t.Fatalf("Provider returned error: %v", err)
	}
	minMJD, maxMJD := p.SpanMJD()
	if minMJD != 58849 || maxMJD != 58851 {
		t.Errorf("SpanMJD = (%g, %g), want (58849, 58851)", minMJD, maxMJD)
	}
}

func TestLoadOrRefresh(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "finals.csv")
	data := "MJD;Year;Month;Day;x_pole;y_pole;UT1-UTC;dX;dY\n" +
		"58849;2020;1;1;0.076577;0.282336;-0.1772;0.112;-0.215\n" +
		"58850;2020;1;2;0.076227;0.282376;-0.1774;0.109;-0.212\n"
	if err := os.WriteFile(csv, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	s := testStore(t)
	ctx := context.Background()

	p, refreshed, err := LoadOrRefresh(ctx, s, csv, logging.Noop())
	if err != nil {
		t.Fatalf("LoadOrRefresh returned error: %v", err)
	}
	if !refreshed {
		t.Error("expected a refresh on the first load")
	}
	if minMJD, _ := p.SpanMJD(); minMJD != 58849 {
		t.Errorf("min MJD = %g, want 58849", minMJD)
	}

	// The second load is served from the cache even without the CSV.
	if err := os.Remove(csv); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	p, refreshed, err = LoadOrRefresh(ctx, s, csv, logging.Noop())
	if err != nil {
		t.Fatalf("second LoadOrRefresh returned error: %v", err)
	}
	if refreshed {
		t.Error("expected the second load to come from the cache")
	}
	if _, maxMJD := p.SpanMJD(); maxMJD != 58850 {
		t.Errorf("max MJD = %g, want 58850", maxMJD)
	}
}
