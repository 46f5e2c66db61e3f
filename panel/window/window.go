// Package window previews a monochrome panel in a desktop window.
//
// ebiten must own the main goroutine, so Run starts the caller's function on
// a worker goroutine and the window shows the latest frame it drew.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/flavioheleno/toaster/image1bit"
)

var (
	// Lit is the color of an On pixel, a pale OLED blue.
	Lit = color.RGBA{R: 0xB0, G: 0xE0, B: 0xFF, A: 0xFF}
	// Dark is the color of an Off pixel.
	Dark = color.RGBA{R: 0x08, G: 0x08, B: 0x10, A: 0xFF}
)

// Dev is a display.Drawer whose frames are shown by Run.
type Dev struct {
	rect  image.Rectangle
	frame *image1bit.VerticalLSB

	mu     sync.Mutex
	pix    []byte // RGBA, guarded by mu
	dirty  bool
	halted bool
}

// New returns a w×h panel. h must be a multiple of 8.
func New(w, h int) *Dev {
	r := image.Rect(0, 0, w, h)
	d := &Dev{
		rect:  r,
		frame: image1bit.NewVerticalLSB(r),
		pix:   make([]byte, 4*w*h),
	}
	d.render()
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("window.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
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
	d.mu.Lock()
	halted := d.halted
	d.mu.Unlock()
	if halted {
		return errors.New("window: halted")
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && dst == d.rect && img.Rect == d.rect && sp == d.rect.Min {
		copy(d.frame.Pix, img.Pix)
	} else {
		draw.Draw(d.frame, dst, src, sp, draw.Src)
	}
	d.render()
	return nil
}

// render converts the frame to RGBA for the window.
func (d *Dev) render() {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, h := d.rect.Dx(), d.rect.Dy()
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Dark
			if d.frame.BitAt(d.rect.Min.X+x, d.rect.Min.Y+y) {
				c = Lit
			}
			d.pix[i+0] = c.R
			d.pix[i+1] = c.G
			d.pix[i+2] = c.B
			d.pix[i+3] = c.A
			i += 4
		}
	}
	d.dirty = true
}

// snapshot copies the RGBA pixels into buf if they changed since the last
// call, and reports whether it did.
func (d *Dev) snapshot(buf []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.dirty {
		return false
	}
	copy(buf, d.pix)
	d.dirty = false
	return true
}

// Halt implements conn.Resource. Later Draw calls fail.
func (d *Dev) Halt() error {
	d.mu.Lock()
	d.halted = true
	d.mu.Unlock()
	return nil
}
