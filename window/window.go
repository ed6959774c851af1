// Package window presents frames in a desktop window through ebiten.
// Ebiten owns the main loop; each Update runs one engine step.
package window

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
)

// Config sets up the window
type Config struct {
	Title     string
	Width     int
	Height    int
	FrameRate int
}

// Window implements engine.Presenter and feeds an engine.EventQueue
type Window struct {
	cfg   Config
	queue *engine.EventQueue
	log   *slog.Logger

	pix    []byte
	width  int
	height int
	img    *ebiten.Image

	layoutW, layoutH int
}

// New creates a window; call Run to open it
func New(cfg Config, log *slog.Logger) *Window {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Window{
		cfg:     cfg,
		queue:   engine.NewEventQueue(),
		log:     log,
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}
}

// Events returns the queue the loop should poll
func (w *Window) Events() *engine.EventQueue {
	return w.queue
}

// Present copies the finished frame for the next Draw
func (w *Window) Present(fb *render.Framebuffer) error {
	w.pix = fb.RGBA(w.pix)
	w.width, w.height = fb.Width, fb.Height
	return nil
}

// Run opens the window and drives loop until it terminates or the window
// closes. It blocks on the calling goroutine, which must be the main one.
func (w *Window) Run(ctx context.Context, loop *engine.Loop) error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.cfg.FrameRate)

	g := &game{w: w, loop: loop, ctx: ctx}
	w.log.Info("window opened", "width", w.cfg.Width, "height", w.cfg.Height)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	w    *Window
	loop *engine.Loop
	ctx  context.Context
}

func (g *game) Update() error {
	q := g.w.queue
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		g.ctx.Err() != nil {
		q.Push(engine.Event{Kind: engine.EventQuit})
	}

	if err := g.loop.Step(g.ctx); err != nil {
		return err
	}
	if g.loop.State() == engine.StateTerminated {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.pix == nil {
		return
	}
	if w.img == nil || w.img.Bounds().Dx() != w.width || w.img.Bounds().Dy() != w.height {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(w.width, w.height)
	}
	w.img.WritePixels(w.pix)
	screen.DrawImage(w.img, nil)
}

// Layout tracks the window size; a change resizes the framebuffer on the
// next step
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.w
	if outsideWidth != w.layoutW || outsideHeight != w.layoutH {
		w.layoutW, w.layoutH = outsideWidth, outsideHeight
		w.queue.Push(engine.Event{Kind: engine.EventResize, Width: outsideWidth, Height: outsideHeight})
	}
	return w.layoutW, w.layoutH
}
