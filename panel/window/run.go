//go:build cgo

package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type game struct {
	d    *Dev
	done <-chan struct{}
	img  *ebiten.Image
	buf  []byte
}

func (g *game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.d.rect.Dx(), g.d.rect.Dy())
		g.buf = make([]byte, len(g.d.pix))
		g.d.mu.Lock()
		g.d.dirty = true
		g.d.mu.Unlock()
	}
	if g.d.snapshot(g.buf) {
		g.img.WritePixels(g.buf)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.d.rect.Dx(), g.d.rect.Dy()
}

// Run opens a window for a w×h panel zoomed by scale and calls fn with it on
// another goroutine. It blocks until fn returns or the window is closed,
// which cancels the context given to fn.
//
// Run must be called from the main goroutine.
func Run(w, h, scale int, title string, fn func(ctx context.Context, d *Dev) error) error {
	if scale < 1 {
		scale = 1
	}
	d := New(w, h)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	var fnErr error
	go func() {
		defer close(done)
		fnErr = fn(ctx, d)
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&game{d: d, done: done})

	cancel()
	<-done
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return fnErr
}
