package main

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/frames"
	"github.com/signalsfoundry/astrotime/internal/logging"
	"github.com/signalsfoundry/astrotime/internal/observability"
	"github.com/signalsfoundry/astrotime/timescale"
)

const arcsecRad = math.Pi / (180.0 * 3600.0)

// stubEOP serves fixed Earth orientation values for handler tests.
type stubEOP struct{}

func (stubEOP) DeltaUT1TAI(timescale.Time) (timescale.Delta, error) {
	return timescale.DeltaFromDecimalSeconds(-36.5)
}

func (stubEOP) DeltaTAIUT1(timescale.Time) (timescale.Delta, error) {
	return timescale.DeltaFromDecimalSeconds(36.5)
}

func (stubEOP) PolarMotion(timescale.Time) (earth.PoleCoords, error) {
	return earth.PoleCoords{Xp: 0.0349282 * arcsecRad, Yp: 0.4833163 * arcsecRad}, nil
}

func (stubEOP) Corrections(timescale.Time, earth.Convention) (earth.Corrections, error) {
	return earth.Corrections{}, nil
}

func testServer(t *testing.T, p frames.Provider) http.Handler {
	t.Helper()
	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector returned error: %v", err)
	}
	return newServer(logging.Noop(), collector, p).routes()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleConvertTTToTAI(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/convert", convertRequest{
		Epoch: "2000-01-01T12:00:00.000 TT",
		To:    "TAI",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := "2000-01-01T11:59:27.816000000 TAI"
	if resp.Epoch != want {
		t.Errorf("epoch = %q, want %q", resp.Epoch, want)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning: %q", resp.Warning)
	}
}

func TestHandleConvertUTCInput(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/convert", convertRequest{
		Epoch: "2024-07-05T09:09:18.173Z",
		To:    "TAI",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := "2024-07-05T09:09:55.173000000 TAI"
	if resp.Epoch != want {
		t.Errorf("epoch = %q, want %q", resp.Epoch, want)
	}
}

func TestHandleConvertToUTC(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/convert", convertRequest{
		Epoch: "2024-07-05T09:09:55.173 TAI",
		To:    "utc",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := "2024-07-05T09:09:18.173000000 UTC"
	if resp.Epoch != want {
		t.Errorf("epoch = %q, want %q", resp.Epoch, want)
	}
}

func TestHandleConvertToUT1(t *testing.T) {
	h := testServer(t, stubEOP{})
	rec := postJSON(t, h, "/v1/convert", convertRequest{
		Epoch: "2024-07-05T09:09:55.173 TAI",
		To:    "UT1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := "2024-07-05T09:09:18.673000000 UT1"
	if resp.Epoch != want {
		t.Errorf("epoch = %q, want %q", resp.Epoch, want)
	}
}

func TestHandleConvertUT1MissingProvider(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/convert", convertRequest{
		Epoch: "2024-07-05T09:09:55.173 TAI",
		To:    "UT1",
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleConvertBadRequests(t *testing.T) {
	h := testServer(t, nil)
	tests := []struct {
		name string
		req  convertRequest
	}{
		{"unknown scale", convertRequest{Epoch: "2000-01-01T12:00:00.000 TT", To: "GPS"}},
		{"missing scale suffix", convertRequest{Epoch: "2000-01-01T12:00:00.000", To: "TAI"}},
		{"garbage epoch", convertRequest{Epoch: "not a time", To: "TAI"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h, "/v1/convert", tc.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleConvertMethodNotAllowed(t *testing.T) {
	h := testServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/convert", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleTransformIdentity(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch:    "2020-01-01T12:00:00.000 TDB",
		From:     "ICRF",
		To:       "ICRF",
		Position: [3]float64{6068.27927, -1692.84394, -2516.61918},
		Velocity: [3]float64{-0.660415582, 5.495938726, -5.303093233},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp transformResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if resp.Frame != "ICRF" {
		t.Errorf("frame = %q, want ICRF", resp.Frame)
	}
	if resp.Origin != "Earth" {
		t.Errorf("origin = %q, want Earth", resp.Origin)
	}
	if resp.Position != [3]float64{6068.27927, -1692.84394, -2516.61918} {
		t.Errorf("position = %v", resp.Position)
	}
}

func TestHandleTransformEarthFixed(t *testing.T) {
	h := testServer(t, stubEOP{})
	pos := [3]float64{6068.27927, -1692.84394, -2516.61918}
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch:    "2020-01-01T12:00:00.000 TDB",
		From:     "ICRF",
		To:       "ITRF",
		Position: pos,
		Velocity: [3]float64{-0.660415582, 5.495938726, -5.303093233},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp transformResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	// The rotation preserves the radius.
	norm := func(v [3]float64) float64 {
		return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	}
	want := norm(pos)
	got := norm(resp.Position)
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("|position| = %.12f, want %.12f", got, want)
	}
	if resp.Position == pos {
		t.Error("expected a rotated position")
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning: %q", resp.Warning)
	}
}

func TestHandleTransformUnknownFrame(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch: "2020-01-01T12:00:00.000 TDB",
		From:  "ICRF",
		To:    "J2000",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestHandleTransformMissingProvider(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch:    "2020-01-01T12:00:00.000 TDB",
		From:     "ICRF",
		To:       "ITRF",
		Position: [3]float64{7000, 0, 0},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandleTransformBodyFixedWithoutProvider(t *testing.T) {
	// Body-fixed frames for other bodies need no Earth orientation data.
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch:    "2020-01-01T12:00:00.000 TDB",
		Origin:   "jupiter",
		From:     "ICRF",
		To:       "IAU_JUPITER",
		Position: [3]float64{6068.27927, -1692.84394, -2516.61918},
		Velocity: [3]float64{-0.660415582, 5.495938726, -5.303093233},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp transformResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if resp.Origin != "Jupiter" {
		t.Errorf("origin = %q, want Jupiter", resp.Origin)
	}
}

func TestHandleTransformUnknownOrigin(t *testing.T) {
	h := testServer(t, nil)
	rec := postJSON(t, h, "/v1/transform", transformRequest{
		Epoch:  "2020-01-01T12:00:00.000 TDB",
		Origin: "rupert",
		From:   "ICRF",
		To:     "ICRF",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHealthz(t *testing.T) {
	h := testServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
