// Package image1bit provides a 1-bit monochrome image format for SSD1306 class display controllers.
//
// The SSD1306 and SH1106 controllers organize their RAM in pages of 8 rows.
// Each byte holds a vertical strip of 8 pixels, with the least significant bit
// on top. Bytes of a page are laid out left to right, pages top to bottom.
//
// Memory layout example for a 2x8 image:
//
//	        x=0  x=1
//	y=0      1    0      Pix[0] = 0b00000101 (0x05)
//	y=1      0    1      Pix[1] = 0b10000010 (0x82)
//	y=2      1    0
//	y=3..6   0    0
//	y=7      0    1
//
// This package provides:
//
// - Bit: a color type that is either On or Off
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image (and draw.Image) in controller page layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), &image.Uniform{C: image1bit.Off}, image.Point{}, draw.Src)
package image1bit
