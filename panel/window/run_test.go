//go:build cgo

package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGame(t *testing.T) {
	done := make(chan struct{})
	g := &game{d: New(128, 64), done: done}

	if w, h := g.Layout(640, 480); w != 128 || h != 64 {
		t.Errorf("Layout() = %d, %d, want 128, 64", w, h)
	}
	if err := g.Update(); err != nil {
		t.Errorf("Update() = %v, want nil while running", err)
	}
	close(done)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}
