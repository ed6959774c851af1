// Package status exposes runtime observability for the scene loop:
// Prometheus collectors fed by frame reports and OpenTelemetry tracing setup.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/orrery/engine"
)

// Metrics bundles the frame collectors
// Implements engine.FrameObserver
type Metrics struct {
	gatherer prometheus.Gatherer

	Frames        prometheus.Counter
	FrameDuration prometheus.Histogram
	WorldYaw      prometheus.Gauge
	PlasmaPoints  prometheus.Counter
	Triangles     prometheus.Gauge
}

// NewMetrics registers the frame collectors against reg, defaulting to the
// global registry when nil. Registering twice on one registry reuses the
// existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_frames_total",
		Help: "Frames rendered and presented.",
	}), "orrery_frames_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orrery_frame_duration_seconds",
		Help:    "Time from event poll to present completion.",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.02, 0.033, 0.05, 0.1, 0.25},
	}), "orrery_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	yaw, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_world_yaw_degrees",
		Help: "Accumulated world rotation about the vertical axis.",
	}), "orrery_world_yaw_degrees")
	if err != nil {
		return nil, err
	}

	plasma, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_plasma_points_total",
		Help: "Plasma halo points drawn.",
	}), "orrery_plasma_points_total")
	if err != nil {
		return nil, err
	}

	triangles, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_frame_triangles",
		Help: "Triangles submitted in the last frame.",
	}), "orrery_frame_triangles")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:      gatherer,
		Frames:        frames,
		FrameDuration: duration,
		WorldYaw:      yaw,
		PlasmaPoints:  plasma,
		Triangles:     triangles,
	}, nil
}

// ObserveFrame records one presented frame
func (m *Metrics) ObserveFrame(r engine.FrameReport) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.FrameDuration.Observe(r.Duration.Seconds())
	m.WorldYaw.Set(r.WorldYaw)
	m.PlasmaPoints.Add(float64(r.Stats.Points))
	m.Triangles.Set(float64(r.Stats.Triangles))
}

// Handler exposes the /metrics endpoint for the backing registry
func (m *Metrics) Handler() http.Handler {
	gatherer := m.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Serve listens on addr until ctx ends
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
