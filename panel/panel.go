// Package panel lists the displays the demo can run on and opens them.
//
// The OLED types keep the numbering of the ArduiPi OLED library, so -oled 3
// still means an Adafruit 128x64 on I²C. Host previews come after them.
package panel

import (
	"errors"
	"fmt"
	"io"

	"github.com/flavioheleno/toaster/panel/headless"
	"github.com/flavioheleno/toaster/panel/term"
	"github.com/flavioheleno/toaster/ssd1306"
	"github.com/gdamore/tcell/v2"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
)

// Kind is how a panel is reached.
type Kind int

const (
	SPI Kind = iota
	I2C
	Term
	Window
	Headless
)

func (k Kind) String() string {
	switch k {
	case SPI:
		return "SPI"
	case I2C:
		return "I2C"
	case Term:
		return "terminal"
	case Window:
		return "window"
	case Headless:
		return "headless"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type describes one kind of panel.
type Type struct {
	Name       string
	Kind       Kind
	Width      int
	Height     int
	Controller ssd1306.Controller

	unsupported bool
}

func (t Type) String() string {
	return t.Name
}

// Opts returns the driver options for an OLED type.
func (t Type) Opts() ssd1306.Opts {
	return ssd1306.Opts{
		W:          t.Width,
		H:          t.Height,
		Sequential: t.Height == 32,
		Controller: t.Controller,
	}
}

// Types lists every panel, indexed by the -oled number.
var Types = []Type{
	{Name: "Adafruit SPI 128x32", Kind: SPI, Width: 128, Height: 32},
	{Name: "Adafruit I2C 128x32", Kind: I2C, Width: 128, Height: 32},
	{Name: "Adafruit SPI 128x64", Kind: SPI, Width: 128, Height: 64},
	{Name: "Adafruit I2C 128x64", Kind: I2C, Width: 128, Height: 64},
	{Name: "Seeed I2C 128x64", Kind: I2C, Width: 128, Height: 64},
	{Name: "Seeed I2C 96x96", Kind: I2C, Width: 96, Height: 96, unsupported: true},
	{Name: "SH1106 I2C 128x64", Kind: I2C, Width: 128, Height: 64, Controller: ssd1306.SH1106},
	{Name: "Terminal 128x64", Kind: Term, Width: 128, Height: 64},
	{Name: "Window 128x64", Kind: Window, Width: 128, Height: 64},
	{Name: "Headless 128x64", Kind: Headless, Width: 128, Height: 64},
}

// Default is the index of the type used when none or an invalid one is given.
const Default = 3

var (
	// ErrUnknownType is wrapped by the warning of Lookup.
	ErrUnknownType = errors.New("panel: unknown type")
	// ErrUnsupported is returned by Open for a listed type without a driver.
	ErrUnsupported = errors.New("panel: type not supported")
	// ErrWindow is returned by Open for a window panel, use window.Run.
	ErrWindow = errors.New("panel: window panels must be opened with window.Run")
)

// Lookup returns the type at index i.
//
// An index out of range is not fatal: Lookup returns the default type along
// with an error wrapping ErrUnknownType, to be reported as a warning.
func Lookup(i int) (Type, error) {
	if i < 0 || i >= len(Types) {
		return Types[Default], fmt.Errorf("%w: %d is not in 0 to %d, using %d (%s)",
			ErrUnknownType, i, len(Types)-1, Default, Types[Default])
	}
	return Types[i], nil
}

// Bus names the host resources an OLED is connected to.
//
// Empty port names select the first port registered with periph.
type Bus struct {
	SPI  string // SPI port
	I2C  string // I²C bus
	Addr uint16 // I²C address (default: ssd1306.DefaultAddr)
	DC   string // Data/Command pin, SPI only
	RST  string // Reset pin (optional)
}

// DefaultBus is the wiring of the ArduiPi boards: DC on GPIO24 (P1-18) and
// reset on GPIO25 (P1-22).
var DefaultBus = Bus{DC: "GPIO24", RST: "GPIO25"}

// newScreen creates the screen of terminal panels.
var newScreen = tcell.NewScreen

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open initializes the panel of type t.
//
// The returned closer halts the display and releases its bus. periph must
// already be initialized with host.Init for OLED types.
func Open(t Type, b Bus) (display.Drawer, io.Closer, error) {
	if t.unsupported {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	switch t.Kind {
	case SPI:
		return openSPI(t, b)
	case I2C:
		return openI2C(t, b)
	case Term:
		screen, err := newScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("panel: %w", err)
		}
		d, err := term.OpenScreen(screen, t.Width, t.Height)
		if err != nil {
			return nil, nil, err
		}
		return d, closerFunc(func() error {
			return errors.Join(d.Halt(), d.Close())
		}), nil
	case Headless:
		d := headless.New(t.Width, t.Height)
		return d, closerFunc(d.Halt), nil
	case Window:
		return nil, nil, ErrWindow
	default:
		return nil, nil, fmt.Errorf("panel: invalid kind %s", t.Kind)
	}
}

func openSPI(t Type, b Bus) (display.Drawer, io.Closer, error) {
	dc := gpioreg.ByName(b.DC)
	if dc == nil {
		return nil, nil, fmt.Errorf("panel: DC pin %q not found", b.DC)
	}
	rst, err := resetPin(b.RST)
	if err != nil {
		return nil, nil, err
	}
	p, err := spireg.Open(b.SPI)
	if err != nil {
		return nil, nil, fmt.Errorf("panel: %w", err)
	}
	opts := t.Opts()
	opts.RST = rst
	dev, err := ssd1306.NewSPI(p, dc, &opts)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	return dev, closerFunc(func() error {
		return errors.Join(dev.Halt(), p.Close())
	}), nil
}

func openI2C(t Type, b Bus) (display.Drawer, io.Closer, error) {
	rst, err := resetPin(b.RST)
	if err != nil {
		return nil, nil, err
	}
	bus, err := i2creg.Open(b.I2C)
	if err != nil {
		return nil, nil, fmt.Errorf("panel: %w", err)
	}
	opts := t.Opts()
	opts.RST = rst
	dev, err := ssd1306.NewI2C(bus, b.Addr, &opts)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return dev, closerFunc(func() error {
		return errors.Join(dev.Halt(), bus.Close())
	}), nil
}

// resetPin returns the named pin, or nil when name is empty.
func resetPin(name string) (gpio.PinIO, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("panel: RST pin %q not found", name)
	}
	return p, nil
}
