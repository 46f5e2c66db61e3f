package toaster

import (
	"cmp"
	"context"
	"fmt"
	"image"
	"slices"

	"github.com/flavioheleno/toaster/image1bit"
	"github.com/flavioheleno/toaster/sprites"
)

const (
	// Scale is the sub-pixel factor of sprite positions.
	Scale = 16
	// SpriteSize is the width and height of a sprite, in pixels.
	SpriteSize = sprites.Size
	// MinDepth is the smallest depth a sprite can have.
	MinDepth = 10
	// DepthSpan is the number of distinct depths, depths are in
	// [MinDepth, MinDepth+DepthSpan).
	DepthSpan = 16
	// DefaultFlyers is the number of sprites when Config.Flyers is zero.
	DefaultFlyers = 5
)

// Kind is the sprite variant.
type Kind int

const (
	// Toaster flaps its wings, cycling through sprites.ToasterFrames images.
	Toaster Kind = iota
	// Toast is a single static image.
	Toast
)

func (k Kind) String() string {
	switch k {
	case Toaster:
		return "Toaster"
	case Toast:
		return "Toast"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sprite is one flyer.
type Sprite struct {
	X, Y  int  // Top-left position, times Scale
	Depth int  // Stacking order and speed, in sub-pixels per tick
	Kind  Kind // Toaster or Toast
	Frame int  // Wing frame, only meaningful for a Toaster
}

// Pos returns the pixel position of the sprite.
func (s Sprite) Pos() image.Point {
	return image.Point{X: s.X / Scale, Y: s.Y / Scale}
}

// bitmap returns the index of the bitmap pair to draw.
func (s Sprite) bitmap() int {
	if s.Kind == Toast {
		return sprites.ToastIndex
	}
	return s.Frame
}

// Rand is the random source of the simulator. *math/rand/v2.Rand implements it.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Surface is where sprites are composited.
type Surface interface {
	// Clear erases the drawing buffer.
	Clear()
	// DrawBitmap paints c through the set pixels of b, with b's origin at (x, y).
	DrawBitmap(x, y int, b image.Image, c image1bit.Bit)
	// Present pushes the drawing buffer to the display.
	Present() error
}

// Config is the simulator configuration. Zero values select the defaults.
type Config struct {
	Width  int // Display width in pixels (default: 128)
	Height int // Display height in pixels (default: 64)
	Flyers int // Number of sprites (default: 5)
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 128
	}
	if c.Height <= 0 {
		c.Height = 64
	}
	if c.Flyers <= 0 {
		c.Flyers = DefaultFlyers
	}
	return c
}

// Simulator animates the sprites. It is not safe for concurrent use.
type Simulator struct {
	cfg     Config
	rnd     Rand
	surface Surface
	flyers  []Sprite
}

// New returns a simulator with randomized sprites, sorted by depth.
//
// Sprites may start partially off screen, above or left of the display.
func New(cfg Config, rnd Rand, s Surface) *Simulator {
	sim := &Simulator{
		cfg:     cfg.withDefaults(),
		rnd:     rnd,
		surface: s,
	}
	sim.flyers = make([]Sprite, sim.cfg.Flyers)
	for i := range sim.flyers {
		f := &sim.flyers[i]
		f.X = (rnd.IntN(sim.cfg.Width+SpriteSize) - SpriteSize) * Scale
		f.Y = (rnd.IntN(sim.cfg.Height+SpriteSize) - SpriteSize) * Scale
		sim.randomKind(f)
		f.Depth = MinDepth + rnd.IntN(DepthSpan)
	}
	sim.sort()
	return sim
}

// Config returns the effective configuration.
func (sim *Simulator) Config() Config {
	return sim.cfg
}

// Sprites returns a copy of the sprites in drawing order.
func (sim *Simulator) Sprites() []Sprite {
	return slices.Clone(sim.flyers)
}

// Tick draws every sprite, advances the animation, then presents the frame
// and clears the surface for the next one.
//
// The only error is the one returned by the surface Present.
func (sim *Simulator) Tick() error {
	resort := false
	for i := range sim.flyers {
		f := &sim.flyers[i]

		n := f.bitmap()
		if f.Kind == Toaster {
			f.Frame = (f.Frame + 1) % sprites.ToasterFrames
		}
		p := f.Pos()
		sim.surface.DrawBitmap(p.X, p.Y, sprites.Mask(n), image1bit.Off)
		sim.surface.DrawBitmap(p.X, p.Y, sprites.Image(n), image1bit.On)

		// Deeper is closer: faster, and drawn later so on top.
		f.X -= f.Depth * 2
		f.Y += f.Depth
		if sim.offScreen(f) {
			sim.recycle(f)
			resort = true
		}
	}
	if resort {
		sim.sort()
	}

	if err := sim.surface.Present(); err != nil {
		return err
	}
	sim.surface.Clear()
	return nil
}

// Run calls Tick n times. It stops early when ctx is done or Tick fails.
func (sim *Simulator) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sim.Tick(); err != nil {
			return fmt.Errorf("toaster: tick %d: %w", i, err)
		}
	}
	return nil
}

// offScreen reports whether f left the display through the bottom or left edge.
func (sim *Simulator) offScreen(f *Sprite) bool {
	return f.Y >= sim.cfg.Height*Scale || f.X <= -SpriteSize*Scale
}

// recycle respawns f on the top edge (5 in 7) or the right edge (2 in 7).
func (sim *Simulator) recycle(f *Sprite) {
	if sim.rnd.IntN(7) < 5 {
		f.X = sim.rnd.IntN(sim.cfg.Width+SpriteSize) * Scale
		f.Y = -SpriteSize * Scale
	} else {
		f.X = sim.cfg.Width * Scale
		f.Y = sim.rnd.IntN(sim.cfg.Height) * Scale
	}
	sim.randomKind(f)
	f.Depth = MinDepth + sim.rnd.IntN(DepthSpan)
}

// randomKind makes f a toaster with a random frame (2 in 3) or a toast.
func (sim *Simulator) randomKind(f *Sprite) {
	if sim.rnd.IntN(3) != 0 {
		f.Kind = Toaster
		f.Frame = sim.rnd.IntN(sprites.ToasterFrames)
		return
	}
	f.Kind = Toast
	f.Frame = 0
}

// sort orders sprites by ascending depth. Equal depths keep their order so a
// sprite keeps its own wing cycle.
func (sim *Simulator) sort() {
	slices.SortStableFunc(sim.flyers, func(a, b Sprite) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
}
