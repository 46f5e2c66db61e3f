//go:build !cgo

package window

import (
	"context"
	"errors"
)

// Run needs ebiten, which needs cgo on most hosts.
func Run(w, h, scale int, title string, fn func(ctx context.Context, d *Dev) error) error {
	return errors.New("window: requires cgo (build with CGO_ENABLED=1)")
}
