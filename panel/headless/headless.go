// Package headless is a panel without a display.
//
// It keeps the last frame in memory and folds every frame into a running
// xxhash digest. Two runs that drew the same frames end with the same Sum64,
// which makes it useful for tests and benchmarks without hardware.
package headless

import (
	"errors"
	"fmt"
	"hash"
	"image"
	"image/color"
	"image/draw"

	"github.com/cespare/xxhash"
	"github.com/flavioheleno/toaster/image1bit"
)

// Dev is a headless display.Drawer.
type Dev struct {
	rect   image.Rectangle
	frame  *image1bit.VerticalLSB
	digest hash.Hash64
	last   uint64
	frames int
	halted bool
}

// New returns a w×h headless panel. h must be a multiple of 8.
func New(w, h int) *Dev {
	r := image.Rect(0, 0, w, h)
	return &Dev{
		rect:   r,
		frame:  image1bit.NewVerticalLSB(r),
		digest: xxhash.New(),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("headless.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer. Every call counts as one frame.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("headless: halted")
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && dst == d.rect && img.Rect == d.rect && sp == d.rect.Min {
		copy(d.frame.Pix, img.Pix)
	} else {
		draw.Draw(d.frame, dst, src, sp, draw.Src)
	}
	d.last = xxhash.Sum64(d.frame.Pix)
	d.digest.Write(d.frame.Pix)
	d.frames++
	return nil
}

// Halt implements conn.Resource. Later Draw calls fail.
func (d *Dev) Halt() error {
	d.halted = true
	return nil
}

// Frames returns the number of frames drawn.
func (d *Dev) Frames() int {
	return d.frames
}

// Last returns the xxhash of the last frame, 0 before the first one.
func (d *Dev) Last() uint64 {
	return d.last
}

// Sum64 returns the digest of every frame drawn so far, in order.
func (d *Dev) Sum64() uint64 {
	return d.digest.Sum64()
}

// Frame returns the last frame. It is overwritten by the next Draw.
func (d *Dev) Frame() *image1bit.VerticalLSB {
	return d.frame
}
