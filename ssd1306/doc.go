// Package ssd1306 controls a monochrome OLED display via a SSD1306 or SH1106
// controller, over SPI or I²C.
//
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome, one byte per 8 vertical pixels (a "page")
// - Typical resolutions: 128×64, 128×32, 96×16, 64×48
// - Hardware horizontal scrolling (SSD1306 only)
// - Adjustable contrast (0-255)
// - Display inversion
// - SH1106 has a 132-column RAM, smaller panels are centered automatically
//
// # Hardware Connection
//
// SPI (4-wire) boards:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK/D0      → SPI Clock (SCLK)
//	MOSI/D1     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//
// I²C boards only need GND, VCC, SCL and SDA. The address is usually 0x3C, or
// 0x3D when SA0 is pulled high.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"github.com/flavioheleno/toaster/image1bit"
//		"github.com/flavioheleno/toaster/ssd1306"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, ssd1306.DefaultAddr, &ssd1306.DefaultOpts)
//		defer dev.Halt()
//
//		img := image1bit.NewVerticalLSB(dev.Bounds())
//		for x := 0; x < 128; x++ {
//			img.SetBit(x, x/2, image1bit.On)
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Differential Updates
//
// Draw only sends the smallest window of pages and columns that changed
// since the previous frame. This matters on I²C, where a full 128×64 frame
// takes about 100ms at the default 100kHz bus speed. Write always sends the
// whole frame.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// https://cdn.velleman.eu/downloads/29/infosheets/sh1106_datasheet.pdf
package ssd1306
