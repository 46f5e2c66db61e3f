// Package demo plays the flying toasters program on a surface: a splash
// line, a toaster flying in, the animation itself and a closing line.
package demo

import (
	"context"
	"image"
	"math/rand/v2"
	"time"

	"github.com/flavioheleno/toaster"
	"github.com/flavioheleno/toaster/image1bit"
	"github.com/flavioheleno/toaster/sprites"
	"github.com/flavioheleno/toaster/surface"
)

// Text is shown before and after the animation.
const Text = "Mmmm Toast!"

const (
	// DefaultSplash is how long the splash text stays on screen.
	DefaultSplash = 2 * time.Second
	// DefaultTicks is the length of the animation, in frames.
	DefaultTicks = 1000
)

// Surface is what the demo draws on. *surface.Framebuffer implements it.
type Surface interface {
	toaster.Surface
	// Print writes text with its baseline starting at (x, y).
	Print(x, y int, text string)
	Bounds() image.Rectangle
}

// Options configures Run. Zero values select the defaults.
type Options struct {
	Splash time.Duration // Splash duration, negative to skip the wait (default: 2s)
	Hold   time.Duration // Time the closing text stays before Run returns
	Ticks  int           // Animation frames (default: 1000)
	Flyers int           // Number of sprites (default: toaster.DefaultFlyers)
	Seed   uint64        // Random seed (default: time based)

	// Logf, when set, reports the progress of the demo.
	Logf func(format string, v ...any)
}

// WithDefaults returns o with the zero values replaced. The seed is drawn
// from the clock once, so the result can be logged and replayed.
func (o Options) WithDefaults() Options {
	if o.Splash == 0 {
		o.Splash = DefaultSplash
	}
	if o.Ticks <= 0 {
		o.Ticks = DefaultTicks
	}
	if o.Flyers <= 0 {
		o.Flyers = toaster.DefaultFlyers
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Logf == nil {
		o.Logf = func(string, ...any) {}
	}
	return o
}

// Run plays the whole demo on s. It returns early with ctx.Err() when ctx is
// done, or with the first Present error.
func Run(ctx context.Context, s Surface, opts Options) error {
	opts = opts.WithDefaults()
	b := s.Bounds()

	opts.Logf("splash for %v", opts.Splash)
	if err := splash(ctx, s, opts.Splash); err != nil {
		return err
	}

	opts.Logf("seed %d", opts.Seed)
	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	sim := toaster.New(toaster.Config{Width: b.Dx(), Height: b.Dy(), Flyers: opts.Flyers}, rnd, s)

	opts.Logf("intro")
	if err := Intro(ctx, s); err != nil {
		return err
	}

	opts.Logf("%d ticks", opts.Ticks)
	start := time.Now()
	if err := sim.Run(ctx, opts.Ticks); err != nil {
		return err
	}
	if d := time.Since(start); d > 0 {
		opts.Logf("%.1f frames/s", float64(opts.Ticks)/d.Seconds())
	}

	s.Print(0, surface.LineHeight, Text)
	if err := s.Present(); err != nil {
		return err
	}
	return sleep(ctx, opts.Hold)
}

func splash(ctx context.Context, s Surface, d time.Duration) error {
	s.Clear()
	s.Print(0, surface.LineHeight, Text)
	if err := s.Present(); err != nil {
		return err
	}
	if err := sleep(ctx, d); err != nil {
		return err
	}
	s.Clear()
	return nil
}

// Intro flies a single toaster from the right towards the left edge, one
// frame every 2 pixels, sliding down one row per frame.
//
// It only erases the toaster ink, the surface is otherwise left as is.
func Intro(ctx context.Context, s toaster.Surface) error {
	y := 0
	for x := 60; x > 2; x -= 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := x % sprites.ToasterFrames
		s.DrawBitmap(x, y, sprites.Mask(f), image1bit.Off)
		s.DrawBitmap(x, y, sprites.Image(f), image1bit.On)
		if err := s.Present(); err != nil {
			return err
		}
		s.DrawBitmap(x, y, sprites.Image(f), image1bit.Off)

		y++
		if y > 30 {
			y = 0
		}
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
