// Package ssd1306 controls a monochrome OLED display driven by a SSD1306 or
// SH1106 controller, via SPI or I²C.
//
// Common display resolutions are 128x64 and 128x32.
//
// See the examples for how to use this package.
package ssd1306

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/toaster/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller identifies the display controller chip.
type Controller int

const (
	// SSD1306 has a 128 column RAM and supports horizontal addressing.
	SSD1306 Controller = iota
	// SH1106 has a 132 column RAM and only supports page addressing.
	SH1106
)

func (c Controller) String() string {
	switch c {
	case SSD1306:
		return "SSD1306"
	case SH1106:
		return "SH1106"
	default:
		return fmt.Sprintf("Controller(%d)", int(c))
	}
}

// ramColumns returns the width of the controller display RAM.
func (c Controller) ramColumns() int {
	if c == SH1106 {
		return 132
	}
	return 128
}

// DefaultAddr is the usual I²C address of the display (SA0 low).
const DefaultAddr = 0x3C

// Opts is the configuration for the display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤ the controller RAM width)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	// Rotation and mirroring
	Rotated       bool // 180° rotation
	Sequential    bool // Sequential COM pin configuration, usually set on 128x32 panels
	SwapTopBottom bool // Swap top/bottom display halves

	// Controller selects the chip variant (default: SSD1306)
	Controller Controller

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// DefaultOpts is the configuration of the common 128x64 SSD1306 panel.
var DefaultOpts = Opts{W: 128, H: 64}

// Dev is the device handle for the display.
//
// It implements display.Drawer.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI or I²C connection
	dc  gpio.PinOut // Data/Command pin, nil on I²C
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	controller   Controller
	rect         image.Rectangle
	columnOffset int // For centering on the controller RAM

	// Pixel buffers, in page layout
	buffer []byte                 // Last frame sent to the display
	next   *image1bit.VerticalLSB // For lazy double buffering

	// State
	halted bool
}

// NewSPI creates a new device connected via 4-wire SPI.
//
// The SPI port is configured for 8MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: dc pin is required on SPI")
	}
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}

	// The datasheet allows a 100ns clock cycle (10MHz), keep some margin.
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return newDev(c, dc, opts)
}

// NewI2C creates a new device connected via I²C at address addr.
//
// addr can be 0 to use DefaultAddr. opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	opts, err := validate(opts)
	if err != nil {
		return nil, err
	}
	if addr == 0 {
		addr = DefaultAddr
	}
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

// validate applies defaults and checks the geometry against the controller.
func validate(opts *Opts) (*Opts, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.Controller != SSD1306 && opts.Controller != SH1106 {
		return nil, fmt.Errorf("ssd1306: unknown controller %v", opts.Controller)
	}
	if cols := opts.Controller.ramColumns(); opts.W <= 0 || opts.W > cols {
		return nil, fmt.Errorf("ssd1306: width must be between 1 and %d", cols)
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}
	return opts, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		controller:   opts.Controller,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		columnOffset: (opts.Controller.ramColumns() - opts.W) / 2,
		buffer:       make([]byte, opts.W*opts.H/8),
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := d.sendCommands(initCommands(opts)); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.clearRAM(); err != nil {
		return err
	}

	// Turn display ON
	return d.sendCommand(0xAF)
}

// initCommands builds the initialization command sequence, display left off.
func initCommands(opts *Opts) []byte {
	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40, // Start line
	}

	// Power: SSD1306 has a charge pump, SH1106 a DC-DC converter
	if opts.Controller == SH1106 {
		cmds = append(cmds, 0xAD, 0x8B)
	} else {
		cmds = append(cmds,
			0x8D, 0x14, // Charge pump ON
			0x20, 0x00, // Horizontal addressing mode
		)
	}

	// Remap settings: adjust for rotation and mirroring
	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap, comScan = 0xA0, 0xC0
	}
	comPins := byte(0x12)
	if opts.Sequential {
		comPins = 0x02
	}
	if opts.SwapTopBottom {
		comPins |= 0x20
	}

	cmds = append(cmds,
		segRemap,      // Segment remap
		comScan,       // COM output scan direction
		0xDA, comPins, // COM pins hardware configuration
		0x81, 0xCF, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume to RAM content
		0xA6, // Normal display mode
	)
	if opts.Controller == SSD1306 {
		cmds = append(cmds, 0x2E) // Deactivate scroll
	}
	return cmds
}

// clearRAM clears all pixels in the display RAM.
func (d *Dev) clearRAM() error {
	zeros := make([]byte, len(d.buffer))
	return d.writeFullFrame(zeros)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if d.dc == nil {
		// I²C control byte: Co=0, D/C#=0
		return d.c.Tx(append([]byte{0x00}, cmds...), nil)
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc == nil {
		// I²C control byte: Co=0, D/C#=1
		return d.c.Tx(append([]byte{0x40}, data...), nil)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect writes pixel data to the columns [x, x+width) of pages
// [page, page+pages). pixels holds width bytes per page.
func (d *Dev) writeRect(x, width, page, pages int, pixels []byte) error {
	col := x + d.columnOffset

	if d.controller == SH1106 {
		// Page addressing only: one window per page
		for p := 0; p < pages; p++ {
			commands := []byte{
				0xB0 | byte(page+p), // Page address
				byte(col & 0x0F),    // Lower column address
				0x10 | byte(col>>4), // Higher column address
			}
			if err := d.sendCommands(commands); err != nil {
				return err
			}
			if err := d.sendData(pixels[p*width : (p+1)*width]); err != nil {
				return err
			}
		}
		return nil
	}

	// Set addressing window
	commands := []byte{
		0x21, byte(col), byte(col + width - 1), // Column address
		0x22, byte(page), byte(page + pages - 1), // Page address
	}

	if err := d.sendCommands(commands); err != nil {
		return err
	}

	// Send pixel data
	return d.sendData(pixels)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in VerticalLSB format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	d.remember(pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: if source is already VerticalLSB at full size
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
			minCol, maxCol, minPage, maxPage := d.calculateDiff(srcImg.Pix)
			if minCol > maxCol {
				return nil
			}
			if err := d.writeRect(minCol, maxCol-minCol+1, minPage, maxPage-minPage+1,
				d.extractRegion(srcImg.Pix, minCol, maxCol, minPage, maxPage)); err != nil {
				return err
			}
			d.remember(srcImg.Pix)
			return nil
		}
	}

	// Slow path: render to buffer with differential updates
	// Lazy-initialize double buffer
	if d.next == nil {
		d.next = image1bit.NewVerticalLSB(d.rect)
		copy(d.next.Pix, d.buffer)
	}

	// Draw source into our buffer
	draw.Draw(d.next, dst, src, sp, draw.Src)

	// Calculate minimal bounding box of changed pixels
	minCol, maxCol, minPage, maxPage := d.calculateDiff(d.next.Pix)
	if minCol > maxCol {
		// No changes
		return nil
	}

	// Extract changed region
	changedData := d.extractRegion(d.next.Pix, minCol, maxCol, minPage, maxPage)

	// Write to display
	if err := d.writeRect(minCol, maxCol-minCol+1, minPage, maxPage-minPage+1, changedData); err != nil {
		return err
	}

	// Update stored buffer
	copy(d.buffer, d.next.Pix)

	return nil
}

// remember records pixels as the content of the display RAM.
func (d *Dev) remember(pixels []byte) {
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.next.Pix, pixels)
	}
}

// calculateDiff compares the last sent frame with pix to find the minimal
// changed region. Returns (minCol, maxCol, minPage, maxPage) or (1, 0, 0, 0)
// if no changes.
func (d *Dev) calculateDiff(pix []byte) (minCol, maxCol, minPage, maxPage int) {
	width := d.rect.Dx()
	pages := d.rect.Dy() / 8

	minPage = pages
	maxPage = -1
	minCol = width
	maxCol = -1

	// Scan page by page to find differences
	for p := 0; p < pages; p++ {
		start := p * width
		end := start + width

		if bytes.Equal(d.buffer[start:end], pix[start:end]) {
			continue
		}
		if p < minPage {
			minPage = p
		}
		if p > maxPage {
			maxPage = p
		}

		// Scan columns within this page for precise boundaries
		for x := 0; x < width; x++ {
			if d.buffer[start+x] != pix[start+x] {
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}

	if maxCol < 0 {
		return 1, 0, 0, 0
	}
	return
}

// extractRegion extracts the pixel data for a rectangular region of pix.
func (d *Dev) extractRegion(pix []byte, minCol, maxCol, minPage, maxPage int) []byte {
	width := maxCol - minCol + 1
	stride := d.rect.Dx()

	result := make([]byte, 0, width*(maxPage-minPage+1))
	for p := minPage; p <= maxPage; p++ {
		start := p*stride + minCol
		result = append(result, pix[start:start+width]...)
	}

	return result
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, d.rect.Dx(), 0, d.rect.Dy()/8, pixels)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors (lit becomes dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %dx%d}", d.controller, d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll step interval.
type ScrollSpeed byte

const (
	// Scroll step intervals (in display frames)
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling on the display.
// startPage and endPage specify the scroll region in pages of 8 rows.
// If right is true, scrolls right; otherwise scrolls left.
//
// Only the SSD1306 supports hardware scrolling.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if d.controller != SSD1306 {
		return fmt.Errorf("ssd1306: scrolling not supported by %s", d.controller)
	}
	if pages := d.rect.Dy() / 8; int(startPage) >= pages || int(endPage) >= pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	// Select scroll direction command
	scrollCmd := byte(0x26) // Left
	if right {
		scrollCmd = 0x27 // Right
	}

	return d.sendCommands([]byte{
		0x2E, // Stop any running scroll before reconfiguring
		scrollCmd,
		0x00,        // Dummy byte (always 0x00)
		startPage,   // Start page
		byte(speed), // Scroll step interval
		endPage,     // End page
		0x00, 0xFF,  // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops scrolling. The RAM content must be rewritten afterwards.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if d.controller != SSD1306 {
		return nil
	}
	return d.sendCommand(0x2E) // Deactivate scroll
}
