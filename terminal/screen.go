package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
)

// HalfBlock is drawn in every cell; fg is the top pixel, bg the bottom
const HalfBlock = '▀'

const eventBuffer = 64

// ErrNotInitialized is returned by Present before Init or after Fini
var ErrNotInitialized = errors.New("terminal screen not initialized")

// Screen adapts a tcell.Screen to engine.EventSource and engine.Presenter
type Screen struct {
	screen tcell.Screen

	events chan tcell.Event
	stop   chan struct{}
	closed bool

	mu     sync.Mutex
	active bool
	fini   sync.Once
}

// Open creates a Screen on the controlling terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	return New(s), nil
}

// New wraps an existing tcell screen, such as a simulation screen
func New(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		stop:   make(chan struct{}),
	}
}

// Init enters full-screen mode and starts the input pump
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.screen.Clear()

	s.mu.Lock()
	s.active = true
	s.mu.Unlock()

	go s.pump()
	return nil
}

// pump forwards tcell events until the screen is finalized
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}

// Fini restores the terminal; safe to call more than once
func (s *Screen) Fini() {
	s.fini.Do(func() {
		s.mu.Lock()
		wasActive := s.active
		s.active = false
		s.mu.Unlock()

		close(s.stop)
		if wasActive {
			s.screen.Fini()
		}
	})
}

// PixelSize returns the framebuffer size matching the cell grid
func (s *Screen) PixelSize() (width, height int) {
	cols, rows := s.screen.Size()
	return cols, rows * 2
}

// Poll drains pending input without blocking
// q, Esc, Ctrl-C and a closed event stream all request quit
func (s *Screen) Poll() []engine.Event {
	var out []engine.Event
	for {
		if s.closed {
			return append(out, engine.Event{Kind: engine.EventQuit})
		}
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				continue
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return engine.Event{Kind: engine.EventQuit}, true
		case tcell.KeyRune:
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				return engine.Event{Kind: engine.EventQuit}, true
			}
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return engine.Event{Kind: engine.EventResize, Width: cols, Height: rows * 2}, true
	}
	return engine.Event{}, false
}

// Present draws fb as half-block cells and shows the result
func (s *Screen) Present(fb *render.Framebuffer) error {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	if !active {
		return ErrNotInitialized
	}

	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := fb.At(x, 2*y)
			bottom := fb.At(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(toColor(top)).
				Background(toColor(bottom))
			s.screen.SetContent(x, y, HalfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
