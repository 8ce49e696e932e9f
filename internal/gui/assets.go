package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tatianab/road-of-life/internal/models"
	"go.uber.org/zap"
)

// MenuBackground is the handle used for the menu and terminal screens.
const MenuBackground models.AssetHandle = "menu"

// backdrops are top and bottom gradient colours per background handle.
var backdrops = map[models.AssetHandle][2]color.RGBA{
	MenuBackground:  {{20, 24, 40, 255}, {60, 70, 100, 255}},
	"base_camp":     {{40, 44, 52, 255}, {110, 100, 80, 255}},
	"ice_crack":     {{70, 100, 140, 255}, {200, 220, 235, 255}},
	"air_raid":      {{30, 20, 20, 255}, {120, 60, 40, 255}},
	"hungry_city":   {{45, 45, 50, 255}, {90, 85, 80, 255}},
	"evacuation":    {{50, 70, 100, 255}, {170, 190, 210, 255}},
	"thaw":          {{60, 80, 90, 255}, {120, 140, 130, 255}},
	"flotilla":      {{20, 50, 80, 255}, {40, 110, 140, 255}},
	"second_winter": {{60, 75, 110, 255}, {210, 215, 225, 255}},
	"iskra":         {{70, 30, 30, 255}, {200, 120, 60, 255}},
	"liberation":    {{40, 60, 90, 255}, {230, 190, 110, 255}},
}

var fallbackBackdrop = [2]color.RGBA{{25, 25, 30, 255}, {25, 25, 30, 255}}

// assets resolves background handles to images, generating and caching them on
// first use. Unknown handles get a plain fallback and a single warning.
type assets struct {
	log    *zap.Logger
	width  int
	height int
	cache  map[models.AssetHandle]*ebiten.Image
	warned map[models.AssetHandle]bool
}

func newAssets(log *zap.Logger, width, height int) *assets {
	return &assets{
		log:    log,
		width:  width,
		height: height,
		cache:  make(map[models.AssetHandle]*ebiten.Image),
		warned: make(map[models.AssetHandle]bool),
	}
}

func (a *assets) background(ref models.AssetHandle) *ebiten.Image {
	if img, ok := a.cache[ref]; ok {
		return img
	}
	colors, ok := backdrops[ref]
	if !ok {
		if !a.warned[ref] {
			a.log.Warn("unknown background, using fallback", zap.String("ref", string(ref)))
			a.warned[ref] = true
		}
		colors = fallbackBackdrop
	}
	img := ebiten.NewImageFromImage(gradient(a.width, a.height, colors[0], colors[1]))
	a.cache[ref] = img
	return img
}

func gradient(w, h int, top, bottom color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(1, h-1))
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
