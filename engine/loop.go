package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/orrery/render"
)

const tracerName = "github.com/lixenwraith/orrery/engine"

// FrameReport summarizes one presented frame
type FrameReport struct {
	Index    uint64
	Duration time.Duration
	WorldYaw float64
	Stats    render.Stats
}

// FrameObserver receives a report after every presented frame
type FrameObserver interface {
	ObserveFrame(r FrameReport)
}

// Options wires the loop's collaborators; Events and Presenter are required
type Options struct {
	Events    EventSource
	Presenter Presenter
	Pacer     Pacer
	Clock     Clock
	Observer  FrameObserver
	Tracer    trace.Tracer
	Logger    *slog.Logger
}

// Loop is the single-threaded frame loop
type Loop struct {
	scene     *Scene
	gfx       Graphics
	events    EventSource
	presenter Presenter
	pacer     Pacer
	clock     Clock
	observer  FrameObserver
	tracer    trace.Tracer
	log       *slog.Logger

	state  State
	frames uint64
}

// NewLoop creates a loop in the Running state
func NewLoop(scene *Scene, gfx Graphics, opts Options) (*Loop, error) {
	if scene == nil || gfx == nil {
		return nil, errors.New("loop needs a scene and graphics")
	}
	if opts.Events == nil || opts.Presenter == nil {
		return nil, errors.New("loop needs an event source and a presenter")
	}

	l := &Loop{
		scene:     scene,
		gfx:       gfx,
		events:    opts.Events,
		presenter: opts.Presenter,
		pacer:     opts.Pacer,
		clock:     opts.Clock,
		observer:  opts.Observer,
		tracer:    opts.Tracer,
		log:       opts.Logger,
	}
	if l.pacer == nil {
		l.pacer = NewRatePacer(DefaultConfig().FramePeriod())
	}
	if l.clock == nil {
		l.clock = SystemClock{}
	}
	if l.tracer == nil {
		l.tracer = otel.Tracer(tracerName)
	}
	if l.log == nil {
		l.log = slog.New(slog.DiscardHandler)
	}
	return l, nil
}

// State returns the current lifecycle state
func (l *Loop) State() State { return l.state }

// Frames returns the number of presented frames
func (l *Loop) Frames() uint64 { return l.frames }

// Scene returns the scene being animated
func (l *Loop) Scene() *Scene { return l.scene }

func (l *Loop) terminate(reason string) {
	if l.state == StateTerminated {
		return
	}
	l.state = StateTerminated
	l.log.Info("scene loop terminated", "reason", reason, "frames", l.frames)
}

// Step runs one iteration: drain events, then, if still running, clear,
// render, advance and present. It never waits; pacing belongs to Run or to
// the backend driving Step.
func (l *Loop) Step(ctx context.Context) error {
	if l.state == StateTerminated {
		return nil
	}
	start := l.clock.Now()

	// The whole batch is drained even after a quit
	for _, ev := range l.events.Poll() {
		switch ev.Kind {
		case EventQuit:
			l.terminate("quit event")
		case EventResize:
			if l.state == StateRunning {
				l.gfx.Framebuffer().Resize(ev.Width, ev.Height)
				l.log.Debug("framebuffer resized", "width", ev.Width, "height", ev.Height)
			}
		}
	}
	if l.state == StateTerminated {
		return nil
	}

	_, span := l.tracer.Start(ctx, "frame", trace.WithAttributes(
		attribute.Int64("frame.index", int64(l.frames)),
	))
	defer span.End()

	l.gfx.Clear()
	l.scene.Render(l.gfx)

	if err := l.presenter.Present(l.gfx.Framebuffer()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "present failed")
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}

	report := FrameReport{
		Index:    l.frames,
		Duration: l.clock.Now().Sub(start),
		WorldYaw: l.scene.Camera.Yaw,
		Stats:    l.gfx.Stats(),
	}
	l.frames++

	span.SetAttributes(
		attribute.Int("frame.triangles", report.Stats.Triangles),
		attribute.Int("frame.points", report.Stats.Points),
	)
	if l.observer != nil {
		l.observer.ObserveFrame(report)
	}
	return nil
}

// Run steps and paces frames until a quit event or ctx ends
// Both are clean exits; a presenter error is returned
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("scene loop started", "planets", len(l.scene.Planets))

	for l.state == StateRunning {
		if ctx.Err() != nil {
			l.terminate("context done")
			return nil
		}

		if err := l.Step(ctx); err != nil {
			l.terminate("present failed")
			return err
		}
		if l.state != StateRunning {
			break
		}

		if err := l.pacer.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				l.terminate("context done")
				return nil
			}
			l.terminate("pacer failed")
			return fmt.Errorf("frame pacing: %w", err)
		}
	}
	return nil
}
