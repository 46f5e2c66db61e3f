package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off", Off, 0x0000},
		{"on", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitString(t *testing.T) {
	if On.String() != "On" || Off.String() != "Off" {
		t.Errorf("String() = %q/%q", On.String(), Off.String())
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.Gray{Y: 0x40}, Off},
		{"light gray", color.Gray{Y: 0xC0}, On},
		{"pure blue is dark", color.RGBA{0, 0, 0xFF, 0xFF}, Off},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.input).(Bit); got != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"128x64", image.Rect(0, 0, 128, 64), false, 128, 1024},
		{"128x32", image.Rect(0, 0, 128, 32), false, 128, 512},
		{"8x8", image.Rect(0, 0, 8, 8), false, 8, 8},
		{"odd width", image.Rect(0, 0, 3, 8), false, 3, 3},
		{"offset rect", image.Rect(10, 16, 14, 32), false, 4, 8},
		{"height not multiple of 8 panics", image.Rect(0, 0, 8, 12), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewVerticalLSB(tt.rect)
			if tt.wantPanic {
				return
			}
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestVerticalLSBPacking(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 8))

	img.SetBit(0, 0, On)
	img.SetBit(0, 2, On)
	img.SetBit(1, 1, On)
	img.SetBit(1, 7, On)

	if img.Pix[0] != 0x05 {
		t.Errorf("Pix[0] = 0x%02X, want 0x05", img.Pix[0])
	}
	if img.Pix[1] != 0x82 {
		t.Errorf("Pix[1] = 0x%02X, want 0x82", img.Pix[1])
	}
}

func TestVerticalLSBSetGet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 16))

	for y := 0; y < 16; y++ {
		for x := 0; x < 4; x++ {
			img.SetBit(x, y, Bit((x+y)%3 == 0))
		}
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 4; x++ {
			if got, want := img.BitAt(x, y), Bit((x+y)%3 == 0); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	img.SetBit(0, 0, Off)
	if img.BitAt(0, 0) != Off {
		t.Error("SetBit(0, 0, Off) did not clear the pixel")
	}
}

func TestVerticalLSBSetColor(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 8))

	img.Set(0, 0, color.White)
	if img.BitAt(0, 0) != On {
		t.Error("Set(0, 0, White) did not light the pixel")
	}
	c, ok := img.At(0, 0).(Bit)
	if !ok || c != On {
		t.Errorf("At(0, 0) = %v (%T), want On", img.At(0, 0), img.At(0, 0))
	}

	img.Set(0, 0, color.Black)
	if img.BitAt(0, 0) != Off {
		t.Error("Set(0, 0, Black) did not clear the pixel")
	}
}

func TestVerticalLSBOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))

	img.SetBit(-1, 0, On)
	img.SetBit(0, -1, On)
	img.SetBit(4, 0, On)
	img.SetBit(0, 8, On)

	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
	if img.BitAt(-1, 0) != Off || img.BitAt(0, 8) != Off {
		t.Error("out-of-bounds reads should be Off")
	}
}

func TestVerticalLSBOffsetRect(t *testing.T) {
	img := NewVerticalLSB(image.Rect(100, 48, 104, 64))

	img.SetBit(100, 57, On)
	if img.BitAt(100, 57) != On {
		t.Error("SetBit(100, 57, On) then BitAt(100, 57) != On")
	}
	// Row 57 is the second row of the second page.
	if img.Pix[img.Stride] != 0x02 {
		t.Errorf("Pix[%d] = 0x%02X, want 0x02", img.Stride, img.Pix[img.Stride])
	}
}

func TestVerticalLSBPixOffset(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{3, 1, 3, 0x02},
		{0, 8, 8, 0x01},
		{7, 15, 15, 0x80},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}

func TestVerticalLSBClear(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: On}, image.Point{}, draw.Src)
	for i, b := range img.Pix {
		if b != 0xFF {
			t.Fatalf("Pix[%d] = 0x%02X after filling On, want 0xFF", i, b)
		}
	}

	img.Clear()
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after Clear, want 0", i, b)
		}
	}
}

func TestVerticalLSBColorModel(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	if img.ColorModel() != BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
}
