package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/frames"
	"github.com/signalsfoundry/astrotime/geom"
	"github.com/signalsfoundry/astrotime/internal/logging"
	"github.com/signalsfoundry/astrotime/internal/observability"
	"github.com/signalsfoundry/astrotime/timescale"
)

// server exposes time scale conversions and frame transforms over HTTP/JSON.
type server struct {
	log      logging.Logger
	metrics  *observability.Collector
	provider frames.Provider
	tracer   trace.Tracer
}

func newServer(log logging.Logger, metrics *observability.Collector, provider frames.Provider) *server {
	return &server{
		log:      log,
		metrics:  metrics,
		provider: provider,
		tracer:   otel.Tracer("frameserver"),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/v1/convert", s.metrics.Middleware("/v1/convert", http.HandlerFunc(s.handleConvert)))
	mux.Handle("/v1/transform", s.metrics.Middleware("/v1/transform", http.HandlerFunc(s.handleTransform)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

type convertRequest struct {
	Epoch string `json:"epoch"`
	To    string `json:"to"`
}

type convertResponse struct {
	Epoch   string `json:"epoch"`
	Warning string `json:"warning,omitempty"`
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, span := s.tracer.Start(r.Context(), "convert")
	defer span.End()
	ctx, log := logging.WithRequestLogger(ctx, s.log)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("to", req.To))

	t, err := parseEpoch(req.Epoch)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var resp convertResponse
	if strings.EqualFold(req.To, "UTC") {
		tai, err := t.ToWithProvider(timescale.TAI, s.provider)
		if warn := s.recordConversion(t.Scale().String(), "UTC", err); warn != nil {
			if !isExtrapolation(warn) {
				s.writeError(w, statusForError(warn), warn)
				return
			}
			resp.Warning = warn.Error()
		}
		utc, err := timescale.UTCFromTAI(tai, timescale.BuiltinLeapSeconds{})
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		resp.Epoch = utc.Format(9)
	} else {
		target, err := timescale.ParseScale(strings.ToUpper(req.To))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		out, err := t.ToWithProvider(target, s.provider)
		if warn := s.recordConversion(t.Scale().String(), target.String(), err); warn != nil {
			if !isExtrapolation(warn) {
				s.writeError(w, statusForError(warn), warn)
				return
			}
			resp.Warning = warn.Error()
		}
		resp.Epoch = out.Format(9)
	}

	log.Debug(ctx, "converted epoch",
		logging.String("from", req.Epoch), logging.String("to", resp.Epoch))
	s.writeJSON(w, http.StatusOK, resp)
}

// recordConversion counts the conversion and filters extrapolation warnings
// back to the caller.
func (s *server) recordConversion(from, to string, err error) error {
	s.metrics.ObserveConversion(from, to, err)
	return err
}

type transformRequest struct {
	Epoch    string     `json:"epoch"`
	Origin   string     `json:"origin,omitempty"` // origin body, default earth
	From     string     `json:"from"`
	To       string     `json:"to"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}

type transformResponse struct {
	Epoch    string     `json:"epoch"`
	Origin   string     `json:"origin"`
	Frame    string     `json:"frame"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Warning  string     `json:"warning,omitempty"`
}

func (s *server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, span := s.tracer.Start(r.Context(), "transform")
	defer span.End()
	ctx, log := logging.WithRequestLogger(ctx, s.log)

	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(
		attribute.String("from", req.From),
		attribute.String("to", req.To),
	)

	t, err := parseEpoch(req.Epoch)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	from, err := frames.Parse(req.From)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := frames.Parse(req.To)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	origin := frames.Earth
	if req.Origin != "" {
		origin, err = frames.ParseBody(req.Origin)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	state := frames.NewState(t, origin, from,
		geom.Vec3{X: req.Position[0], Y: req.Position[1], Z: req.Position[2]},
		geom.Vec3{X: req.Velocity[0], Y: req.Velocity[1], Z: req.Velocity[2]},
	)

	start := time.Now()
	out, err := state.ToFrame(to, s.provider)
	s.metrics.ObserveTransform(from.String(), to.String(), err, time.Since(start))

	resp := transformResponse{
		Epoch:    t.Format(9),
		Origin:   out.Origin.String(),
		Frame:    to.String(),
		Position: [3]float64{out.Position.X, out.Position.Y, out.Position.Z},
		Velocity: [3]float64{out.Velocity.X, out.Velocity.Y, out.Velocity.Z},
	}
	if err != nil {
		if !isExtrapolation(err) {
			s.writeError(w, statusForError(err), err)
			return
		}
		resp.Warning = err.Error()
	}

	log.Debug(ctx, "transformed state",
		logging.String("from", from.String()), logging.String("to", to.String()))
	s.writeJSON(w, http.StatusOK, resp)
}

// parseEpoch accepts an ISO timestamp with either a time scale suffix
// ("... TDB") or a UTC marker ("Z" or "... UTC"). UTC epochs are converted
// to TAI.
func parseEpoch(s string) (timescale.Time, error) {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, " UTC") {
		utc, err := timescale.UTCFromISO(s)
		if err != nil {
			return timescale.Time{}, err
		}
		return utc.ToTAI(timescale.BuiltinLeapSeconds{})
	}
	return timescale.Parse(s)
}

func isExtrapolation(err error) bool {
	var ext *earth.ExtrapolatedEOPError
	return errors.As(err, &ext)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, timescale.ErrMissingProvider):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func (s *server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn(context.Background(), "failed to encode response", logging.String("error", err.Error()))
	}
}

func (s *server) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}
