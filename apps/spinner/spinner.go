package spinner

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldonut/donut"
	"github.com/framegrace/texeldonut/internal/animation"
	"github.com/framegrace/texeldonut/texel"
)

// shades holds one xterm grayscale color per ramp glyph, dimmest first.
var shades = [len(donut.Ramp)]tcell.Color{
	tcell.PaletteColor(236), // .
	tcell.PaletteColor(238), // ,
	tcell.PaletteColor(240), // -
	tcell.PaletteColor(242), // ~
	tcell.PaletteColor(244), // :
	tcell.PaletteColor(246), // ;
	tcell.PaletteColor(248), // =
	tcell.PaletteColor(249), // !
	tcell.PaletteColor(250), // *
	tcell.PaletteColor(251), // #
	tcell.PaletteColor(253), // $
	tcell.PaletteColor(255), // @
}

// ShadeStyle returns the style used to draw a ramp glyph.
func ShadeStyle(glyph byte) tcell.Style {
	idx := strings.IndexByte(donut.Ramp, glyph)
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(shades[idx])
}

// spinnerApp animates the torus inside a pane.
type spinnerApp struct {
	width, height int
	spin          animation.Spin
	frame         *donut.Frame
	mu            sync.RWMutex
	stop          chan struct{}
	stopOnce      sync.Once
	refreshChan   chan<- bool
	buf           [][]texel.Cell
}

// New creates the spinning torus app.
func New() texel.App {
	a := &spinnerApp{
		frame: donut.NewFrame(),
		stop:  make(chan struct{}),
	}
	a.frame.Draw(a.spin.A, a.spin.B)
	return a
}

// HandleKey ignores input; the torus is not interactive.
func (a *spinnerApp) HandleKey(ev *tcell.EventKey) {}

func (a *spinnerApp) SetRefreshNotifier(refreshChan chan<- bool) {
	a.refreshChan = refreshChan
}

// Run advances the rotation once per frame delay until Stop is called.
func (a *spinnerApp) Run() error {
	ticker := time.NewTicker(animation.FrameDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.step()
			if a.refreshChan != nil {
				select {
				case a.refreshChan <- true:
				default:
				}
			}
		case <-a.stop:
			return nil
		}
	}
}

func (a *spinnerApp) step() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.spin.Advance()
	a.frame.Draw(a.spin.A, a.spin.B)
}

// Stop signals the Run loop to terminate.
func (a *spinnerApp) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

func (a *spinnerApp) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = cols, rows
	a.buf = nil
}

// Render centers the current frame in the pane, clipping whatever does not fit.
func (a *spinnerApp) Render() [][]texel.Cell {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.width <= 0 || a.height <= 0 {
		return [][]texel.Cell{}
	}
	if a.buf == nil {
		a.buf = texel.NewBuffer(a.width, a.height)
	} else {
		texel.ClearBuffer(a.buf)
	}

	x0 := (a.width - donut.Width) / 2
	y0 := (a.height - donut.Height) / 2
	for gy := 0; gy < donut.Height; gy++ {
		y := y0 + gy
		if y < 0 || y >= a.height {
			continue
		}
		for gx, g := range a.frame.Row(gy) {
			x := x0 + gx
			if x < 0 || x >= a.width || g == donut.Blank {
				continue
			}
			a.buf[y][x] = texel.Cell{Ch: rune(g), Style: ShadeStyle(g)}
		}
	}
	return a.buf
}

func (a *spinnerApp) GetTitle() string {
	return "Donut"
}
