// Package sprites holds the flying toaster bitmaps.
//
// There are Count image/mask pairs of Size×Size pixels. Indices 0 to 3 are
// the toaster wing frames, ToastIndex is the slice of toast. The mask covers
// every pixel the sprite hides, the image only its ink, so drawing the mask
// in the background color and then the image in the foreground color gives an
// opaque sprite on a one bit display.
package sprites

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// Size is the width and height of every bitmap, in pixels.
	Size = 32
	// Count is the number of image/mask pairs.
	Count = 5
	// ToasterFrames is the number of wing frames a toaster cycles through.
	ToasterFrames = 4
	// ToastIndex is the index of the toast bitmap pair.
	ToastIndex = 4
)

// Bitmap is a Size×Size bit mask. Bit 31 of each row is the leftmost pixel.
//
// It implements image.Image with an alpha color model so it can be used as
// the mask of draw.DrawMask.
type Bitmap [Size]uint32

// ColorModel returns color.AlphaModel.
func (b *Bitmap) ColorModel() color.Model {
	return color.AlphaModel
}

// Bounds returns the bitmap bounds, anchored at the origin.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

// At returns opaque for set pixels and transparent otherwise.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Bit(x, y) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

// Bit reports whether the pixel at (x, y) is set. Out of range is unset.
func (b *Bitmap) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= Size || y >= Size {
		return false
	}
	return b[y]&(1<<(Size-1-x)) != 0
}

// Frame is an image/mask pair.
type Frame struct {
	Image Bitmap
	Mask  Bitmap
}

var frames [Count]Frame

func init() {
	for i := range art {
		f, err := parse(art[i][:])
		if err != nil {
			panic(fmt.Sprintf("sprites: frame %d: %v", i, err))
		}
		frames[i] = f
	}
}

// Image returns the image bitmap of frame i.
func Image(i int) *Bitmap {
	return &frames[i].Image
}

// Mask returns the mask bitmap of frame i.
func Mask(i int) *Bitmap {
	return &frames[i].Mask
}

// Frames returns a copy of every frame.
func Frames() [Count]Frame {
	return frames
}

// parse builds a Frame from text rows.
func parse(rows []string) (Frame, error) {
	var f Frame
	if len(rows) != Size {
		return f, fmt.Errorf("got %d rows, want %d", len(rows), Size)
	}
	for y, row := range rows {
		if len(row) != Size {
			return f, fmt.Errorf("row %d is %d wide, want %d", y, len(row), Size)
		}
		for x := 0; x < Size; x++ {
			bit := uint32(1) << (Size - 1 - x)
			switch row[x] {
			case '#':
				f.Image[y] |= bit
				f.Mask[y] |= bit
			case '.':
				f.Mask[y] |= bit
			case ' ':
			default:
				return f, fmt.Errorf("row %d: unexpected %q at column %d", y, row[x], x)
			}
		}
	}
	return f, nil
}
