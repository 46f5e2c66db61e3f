// Package toaster animates flying toasters on a small monochrome display.
//
// It is a port of the classic flying toasters screen saver to the 128×64 and
// 128×32 OLED panels found on single-board computer hats.
//
// # Animation
//
// A Simulator owns a fixed set of sprites (5 by default). Each sprite has a
// sub-pixel position (pixels times Scale), a depth and a kind:
//
// - Toaster: flaps its wings, cycling through 4 frames
// - Toast: a single static image
//
// Every Tick draws the sprites in depth order, mask first in Off then image in
// On, so deeper sprites are drawn on top. A sprite moves left by twice its
// depth and down by its depth, in sub-pixels, so deeper sprites also move
// faster. When a sprite leaves through the bottom or the left edge it is
// respawned above the display or right of it, with a new kind and depth.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"context"
//		"math/rand/v2"
//
//		"github.com/flavioheleno/toaster"
//		"github.com/flavioheleno/toaster/panel/headless"
//		"github.com/flavioheleno/toaster/surface"
//	)
//
//	func main() {
//		drawer := headless.New(128, 64)
//		fb := surface.New(drawer)
//
//		rnd := rand.New(rand.NewPCG(1, 2))
//		sim := toaster.New(toaster.Config{Width: 128, Height: 64}, rnd, fb)
//		sim.Run(context.Background(), 1000)
//	}
//
// # Determinism
//
// The simulator draws every random number from the Rand it is given, in a
// fixed order. The same seed always produces the same sequence of draw calls,
// which makes it possible to test without a display.
//
// # Display Size
//
// Spawn positions and the off-screen test derive from Config.Width and
// Config.Height. With the default 128×64 geometry sprites start within
// x∈[-32, 128) and y∈[-32, 64), respawn at y=-32 with x∈[0, 160), or at
// x=128 with y∈[0, 64).
package toaster
