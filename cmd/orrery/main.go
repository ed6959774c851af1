package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/logging"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/terminal"
	"github.com/lixenwraith/orrery/window"
)

var (
	backendFlag   = flag.String("backend", "terminal", "Render backend: terminal, window")
	seedFlag      = flag.Int64("seed", 0, "Random seed for starting angles and plasma; 0 uses the clock")
	fpsFlag       = flag.Int("fps", parameter.FrameRate, "Target frames per second")
	logLevelFlag  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormatFlag = flag.String("log-format", "text", "Log format: text, json")
	logFileFlag   = flag.String("log-file", "", "Log file; terminal backend discards logs when empty")
	metricsFlag   = flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9090")
	traceFlag     = flag.String("trace", "", "Write per-frame trace spans to this file")
)

func main() {
	// Panic Recovery: terminal must be usable before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			if *backendFlag == "terminal" {
				terminal.EmergencyReset(os.Stdout)
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := engine.Config{FrameRate: *fpsFlag, Seed: *seedFlag}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if *backendFlag != "terminal" && *backendFlag != "window" {
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}

	// Terminal backend owns stdout; window backend may log to stderr
	var sink io.Writer
	if *backendFlag == "window" {
		sink = os.Stderr
	}
	log, closer, err := logging.New(logging.Config{
		Level:  *logLevelFlag,
		Format: *logFormatFlag,
		Path:   *logFileFlag,
		Writer: sink,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := status.InitTracing(ctx, status.TracingConfig{
		Enabled:     *traceFlag != "",
		ServiceName: "orrery",
		Path:        *traceFlag,
	}, log)
	if err != nil {
		return err
	}
	defer status.ShutdownWithTimeout(context.Background(), shutdown, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics, err := status.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if *metricsFlag != "" {
		go func() {
			if err := metrics.Serve(ctx, *metricsFlag, log); err != nil {
				log.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	seed := cfg.ResolveSeed(engine.SystemClock{})
	log.Info("building scene", "seed", seed, "backend", *backendFlag, "fps", cfg.FrameRate)
	scene, err := engine.NewScene(engine.NewRand(seed))
	if err != nil {
		return err
	}

	switch *backendFlag {
	case "window":
		return runWindow(ctx, cfg, scene, metrics, log)
	default:
		return runTerminal(ctx, cfg, scene, metrics, log)
	}
}

func runTerminal(ctx context.Context, cfg engine.Config, scene *engine.Scene, obs engine.FrameObserver, log *slog.Logger) error {
	scr, err := terminal.Open()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer scr.Fini()

	w, h := scr.PixelSize()
	gfx := render.NewContext(render.NewFramebuffer(w, h))

	loop, err := engine.NewLoop(scene, gfx, engine.Options{
		Events:    scr,
		Presenter: scr,
		Pacer:     engine.NewRatePacer(cfg.FramePeriod()),
		Observer:  obs,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	return loop.Run(ctx)
}

func runWindow(ctx context.Context, cfg engine.Config, scene *engine.Scene, obs engine.FrameObserver, log *slog.Logger) error {
	win := window.New(window.Config{
		Title:     parameter.WindowTitle,
		Width:     parameter.ScreenWidth,
		Height:    parameter.ScreenHeight,
		FrameRate: cfg.FrameRate,
	}, log)
	gfx := render.NewContext(render.NewFramebuffer(parameter.ScreenWidth, parameter.ScreenHeight))

	// Ebiten paces Update at the configured TPS
	loop, err := engine.NewLoop(scene, gfx, engine.Options{
		Events:    win.Events(),
		Presenter: win,
		Observer:  obs,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	if err := win.Run(ctx, loop); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
