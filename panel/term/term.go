// Package term previews a monochrome panel in a terminal.
//
// Each character cell shows two pixel rows with the Unicode half blocks
// '▀', '▄' and '█', so a 128×64 panel needs a 128×32 terminal.
package term

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/flavioheleno/toaster/image1bit"
	"github.com/gdamore/tcell/v2"
)

// Style is used for every cell.
var Style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Dev is a display.Drawer rendering to a tcell screen.
type Dev struct {
	screen tcell.Screen
	rect   image.Rectangle
	frame  *image1bit.VerticalLSB

	quitOnce sync.Once
	quit     chan struct{}
	halted   bool
}

// New returns a w×h panel drawing on screen. The screen must be initialized,
// Close finalizes it.
func New(screen tcell.Screen, w, h int) (*Dev, error) {
	if w <= 0 || h <= 0 || h%8 != 0 {
		return nil, fmt.Errorf("term: invalid size %dx%d", w, h)
	}
	r := image.Rect(0, 0, w, h)
	screen.SetStyle(Style)
	screen.HideCursor()
	screen.Clear()
	return &Dev{
		screen: screen,
		rect:   r,
		frame:  image1bit.NewVerticalLSB(r),
		quit:   make(chan struct{}),
	}, nil
}

// Open initializes the terminal and returns a w×h panel on it.
func Open(w, h int) (*Dev, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return OpenScreen(screen, w, h)
}

// OpenScreen initializes screen and returns a w×h panel on it. The screen is
// finalized if the panel cannot be created.
func OpenScreen(screen tcell.Screen, w, h int) (*Dev, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	d, err := New(screen, w, h)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("term.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("term: halted")
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && dst == d.rect && img.Rect == d.rect && sp == d.rect.Min {
		copy(d.frame.Pix, img.Pix)
	} else {
		draw.Draw(d.frame, dst, src, sp, draw.Src)
	}
	d.render()
	return nil
}

func (d *Dev) render() {
	w, h := d.rect.Dx(), d.rect.Dy()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			d.screen.SetContent(x, y/2, block(d.frame.BitAt(x, y), d.frame.BitAt(x, y+1)), nil, Style)
		}
	}
	d.screen.Show()
}

// block returns the cell for a pair of stacked pixels.
func block(t, b image1bit.Bit) rune {
	top, bottom := bool(t), bool(b)
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// Quit returns a channel closed when Escape, Ctrl-C or 'q' is pressed.
func (d *Dev) Quit() <-chan struct{} {
	d.quitOnce.Do(func() {
		go d.poll()
	})
	return d.quit
}

func (d *Dev) poll() {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(d.quit)
				return
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Halt implements conn.Resource. It blanks the screen.
func (d *Dev) Halt() error {
	d.halted = true
	d.screen.Clear()
	d.screen.Show()
	return nil
}

// Close restores the terminal.
func (d *Dev) Close() error {
	d.halted = true
	d.screen.Fini()
	return nil
}
