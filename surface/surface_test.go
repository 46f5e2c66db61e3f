package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/flavioheleno/toaster/image1bit"
	"github.com/flavioheleno/toaster/sprites"
	"periph.io/x/conn/v3/display"
)

// recorder is a display.Drawer keeping a copy of every frame.
type recorder struct {
	rect   image.Rectangle
	frames [][]byte
	err    error
}

var _ display.Drawer = (*recorder)(nil)

func (r *recorder) String() string          { return "recorder" }
func (r *recorder) Halt() error             { return nil }
func (r *recorder) ColorModel() color.Model { return image1bit.BitModel }
func (r *recorder) Bounds() image.Rectangle { return r.rect }

func (r *recorder) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if r.err != nil {
		return r.err
	}
	img := src.(*image1bit.VerticalLSB)
	r.frames = append(r.frames, append([]byte(nil), img.Pix...))
	return nil
}

func newFB(w, h int) (*Framebuffer, *recorder) {
	r := &recorder{rect: image.Rect(0, 0, w, h)}
	return New(r), r
}

// square returns an alpha mask of size n with every pixel opaque.
func square(n int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, n, n))
	for i := range m.Pix {
		m.Pix[i] = 0xFF
	}
	return m
}

func TestNew(t *testing.T) {
	fb, _ := newFB(128, 32)
	if got := fb.Bounds(); got != image.Rect(0, 0, 128, 32) {
		t.Errorf("Bounds() = %v", got)
	}
	if x, y := fb.Size(); x != 128 || y != 32 {
		t.Errorf("Size() = %d, %d", x, y)
	}
	for _, b := range fb.Image().Pix {
		if b != 0 {
			t.Fatal("new framebuffer is not clear")
		}
	}
}

func TestDrawBitmap(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		on   []image.Point
		off  []image.Point
	}{
		{
			name: "inside",
			x:    10, y: 5,
			on:  []image.Point{{10, 5}, {13, 8}},
			off: []image.Point{{9, 5}, {14, 5}, {10, 9}},
		},
		{
			name: "clipped top left",
			x:    -2, y: -3,
			on:  []image.Point{{0, 0}, {1, 0}},
			off: []image.Point{{2, 0}, {0, 1}},
		},
		{
			name: "clipped bottom right",
			x:    126, y: 62,
			on:  []image.Point{{126, 62}, {127, 63}},
			off: []image.Point{{125, 63}},
		},
		{
			name: "outside",
			x:    200, y: 200,
			off: []image.Point{{127, 63}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, _ := newFB(128, 64)
			fb.DrawBitmap(tt.x, tt.y, square(4), image1bit.On)
			for _, p := range tt.on {
				if !fb.Image().BitAt(p.X, p.Y) {
					t.Errorf("pixel %v is Off", p)
				}
			}
			for _, p := range tt.off {
				if fb.Image().BitAt(p.X, p.Y) {
					t.Errorf("pixel %v is On", p)
				}
			}
		})
	}
}

func TestDrawBitmapTransparent(t *testing.T) {
	fb, _ := newFB(128, 64)
	fb.DrawBitmap(0, 0, square(8), image1bit.On)

	// A mask with a single opaque pixel only touches that pixel.
	m := image.NewAlpha(image.Rect(0, 0, 8, 8))
	m.SetAlpha(3, 4, color.Alpha{A: 0xFF})
	fb.DrawBitmap(0, 0, m, image1bit.Off)

	img := fb.Image()
	if img.BitAt(3, 4) {
		t.Error("masked pixel was not erased")
	}
	if !img.BitAt(2, 4) || !img.BitAt(3, 3) {
		t.Error("transparent pixels were modified")
	}
}

func TestDrawBitmapOffsetBounds(t *testing.T) {
	fb, _ := newFB(128, 64)
	// The mask origin is not at (0, 0), its top-left corner still lands on (x, y).
	m := image.NewAlpha(image.Rect(5, 5, 7, 7))
	m.SetAlpha(5, 5, color.Alpha{A: 0xFF})
	fb.DrawBitmap(20, 30, m, image1bit.On)
	if !fb.Image().BitAt(20, 30) {
		t.Error("pixel (20, 30) is Off")
	}
	if fb.Image().BitAt(21, 31) {
		t.Error("pixel (21, 31) is On")
	}
}

func TestDrawSprite(t *testing.T) {
	fb, _ := newFB(128, 64)
	// Fill the screen so the mask has something to erase.
	fb.DrawBitmap(0, 0, square(64), image1bit.On)

	fb.DrawBitmap(16, 8, sprites.Mask(sprites.ToastIndex), image1bit.Off)
	fb.DrawBitmap(16, 8, sprites.Image(sprites.ToastIndex), image1bit.On)

	mask := sprites.Mask(sprites.ToastIndex)
	ink := sprites.Image(sprites.ToastIndex)
	for y := 0; y < sprites.Size; y++ {
		for x := 0; x < sprites.Size; x++ {
			var want image1bit.Bit
			switch {
			case ink.Bit(x, y):
				want = image1bit.On
			case mask.Bit(x, y):
				want = image1bit.Off
			default:
				// Transparent: the filled square is left of x=64.
				want = image1bit.Bit(16+x < 64)
			}
			if got := fb.Image().BitAt(16+x, 8+y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", 16+x, 8+y, got, want)
			}
		}
	}
}

func TestClear(t *testing.T) {
	fb, _ := newFB(128, 64)
	fb.DrawBitmap(0, 0, square(16), image1bit.On)
	fb.Clear()
	for _, b := range fb.Image().Pix {
		if b != 0 {
			t.Fatal("Clear() left pixels On")
		}
	}
}

func TestPresent(t *testing.T) {
	fb, r := newFB(128, 64)
	fb.DrawBitmap(0, 0, square(1), image1bit.On)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if err := fb.Display(); err != nil {
		t.Fatalf("Display() = %v", err)
	}
	if len(r.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(r.frames))
	}
	if r.frames[0][0] != 0x01 {
		t.Errorf("frame[0][0] = %#x, want 0x01", r.frames[0][0])
	}
	// The back buffer survives a Present.
	if !fb.Image().BitAt(0, 0) {
		t.Error("Present() cleared the buffer")
	}
}

func TestPresentError(t *testing.T) {
	want := errors.New("bus down")
	fb, r := newFB(128, 64)
	r.err = want
	if err := fb.Present(); !errors.Is(err, want) {
		t.Errorf("Present() = %v, want %v", err, want)
	}
}

func TestSetPixel(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want image1bit.Bit
	}{
		{"white", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, image1bit.On},
		{"black", color.RGBA{A: 0xFF}, image1bit.Off},
		{"dark gray", color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}, image1bit.Off},
		{"light gray", color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}, image1bit.On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, _ := newFB(128, 64)
			fb.SetPixel(5, 9, tt.c)
			if got := fb.Image().BitAt(5, 9); got != tt.want {
				t.Errorf("BitAt(5, 9) = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("out of range", func(t *testing.T) {
		fb, _ := newFB(128, 64)
		fb.SetPixel(-1, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		fb.SetPixel(128, 64, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		for _, b := range fb.Image().Pix {
			if b != 0 {
				t.Fatal("out of range SetPixel changed the buffer")
			}
		}
	})
}

func TestPrint(t *testing.T) {
	fb, _ := newFB(128, 64)
	fb.Print(0, LineHeight, "Mmmm Toast!")

	lit := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if fb.Image().BitAt(x, y) {
				lit++
				if y > LineHeight+1 {
					t.Fatalf("pixel (%d, %d) below the baseline", x, y)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("Print() drew nothing")
	}
}

func TestTextWidth(t *testing.T) {
	short, long := TextWidth("M"), TextWidth("Mmmm Toast!")
	if short <= 0 {
		t.Errorf("TextWidth(M) = %d", short)
	}
	if long <= short {
		t.Errorf("TextWidth(Mmmm Toast!) = %d, not wider than %d", long, short)
	}
	if long > 128 {
		t.Errorf("TextWidth(Mmmm Toast!) = %d, wider than the display", long)
	}
}
