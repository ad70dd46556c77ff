//go:build !cgo

package present

import (
	"context"
	"errors"
)

// RunWindow is not available in binaries built without cgo.
// Use [RunHeadless] instead.
func RunWindow(ctx context.Context, cfg Config, scene Scene) error {
	return errors.New("window support requires cgo, use headless mode")
}
