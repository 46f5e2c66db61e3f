// Package surface is a monochrome framebuffer in front of a display.Drawer.
//
// Drawing happens in memory and Present pushes the whole frame in one Draw
// call. The ssd1306 driver then sends only the pages that changed.
//
// A Framebuffer is also a tinygo.org/x/drivers.Displayer, so the tinyfont
// package can write text on it.
package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/toaster/image1bit"
	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is the font used by Print.
var Font tinyfont.Fonter = &tinyfont.Picopixel

// LineHeight is the distance between two baselines of Font, in pixels.
const LineHeight = 7

var ink = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Framebuffer composites 1-bit images before sending them to a display.
//
// It is not safe for concurrent use.
type Framebuffer struct {
	d   display.Drawer
	buf *image1bit.VerticalLSB
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// New returns a cleared framebuffer with the bounds of d.
//
// The height of d must be a multiple of 8.
func New(d display.Drawer) *Framebuffer {
	return &Framebuffer{
		d:   d,
		buf: image1bit.NewVerticalLSB(d.Bounds()),
	}
}

// Bounds returns the framebuffer bounds.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.buf.Rect
}

// Image returns the back buffer. It is overwritten by the next drawing call.
func (f *Framebuffer) Image() *image1bit.VerticalLSB {
	return f.buf
}

// Clear turns every pixel of the back buffer Off.
func (f *Framebuffer) Clear() {
	f.buf.Clear()
}

// DrawBitmap paints c through every opaque pixel of b, with the top-left
// corner of b at (x, y). Pixels outside the display are dropped.
//
// Painting Off erases to the background.
func (f *Framebuffer) DrawBitmap(x, y int, b image.Image, c image1bit.Bit) {
	mb := b.Bounds()
	r := mb.Sub(mb.Min).Add(image.Point{X: x, Y: y})
	draw.DrawMask(f.buf, r, &image.Uniform{C: c}, image.Point{}, b, mb.Min, draw.Over)
}

// Present sends the back buffer to the display. The buffer is kept.
func (f *Framebuffer) Present() error {
	return f.d.Draw(f.buf.Rect, f.buf, f.buf.Rect.Min)
}

// Print writes text with Font. (x, y) is the left end of the baseline.
func (f *Framebuffer) Print(x, y int, text string) {
	tinyfont.WriteLine(f, Font, int16(x), int16(y), text, ink)
}

// TextWidth returns the width of text in Font, in pixels.
func TextWidth(text string) int {
	_, w := tinyfont.LineWidth(Font, text)
	return int(w)
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.buf.Rect.Dx()), int16(f.buf.Rect.Dy())
}

// SetPixel implements drivers.Displayer. Coordinates are relative to the
// top-left corner of the display.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	p := f.buf.Rect.Min
	f.buf.Set(p.X+int(x), p.Y+int(y), c)
}

// Display implements drivers.Displayer, it is Present.
func (f *Framebuffer) Display() error {
	return f.Present()
}
