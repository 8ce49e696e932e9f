package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tatianab/road-of-life/internal/input"
	"go.uber.org/zap"
)

// Options configures the game window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(eng input.Controller, log *zap.Logger, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)

	err := ebiten.RunGame(NewGame(eng, log, opts.Width, opts.Height))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
