// Package layout places the windowed adapter's buttons and text in pixels.
// It has no graphics dependency so it can be tested headless.
package layout

import (
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/input"
)

const (
	ButtonWidth  = 300
	ButtonHeight = 50
	ButtonGap    = 20

	ChoiceHeight = 80
	ChoiceStride = 90

	// BottomInset is the distance from the bottom edge to the continue button.
	BottomInset = 200
)

// Buttons lays out the controls of v on a w x h screen.
func Buttons(v engine.View, w, h int) input.Layout {
	controls := input.Controls(v)
	var out input.Layout
	for i, b := range controls {
		b.Rect = place(v.Screen, i, w, h)
		out.Buttons = append(out.Buttons, b)
	}
	return out
}

func place(screen engine.Screen, i, w, h int) input.Rect {
	centered := func(y int) input.Rect {
		return input.Rect{X: w/2 - ButtonWidth/2, Y: y, W: ButtonWidth, H: ButtonHeight}
	}
	stacked := func(y int) input.Rect {
		return centered(y + i*(ButtonHeight+ButtonGap))
	}

	switch screen {
	case engine.ScreenMenu:
		return stacked(h / 2)
	case engine.ScreenSceneIntro:
		return centered(h/2 + ButtonHeight)
	case engine.ScreenAwaitingChoice:
		return input.Rect{X: w / 4, Y: h/2 + i*ChoiceStride, W: w / 2, H: ChoiceHeight}
	case engine.ScreenVictory, engine.ScreenGameOver:
		return stacked(h - BottomInset)
	default:
		return centered(h - BottomInset)
	}
}
