package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/gui/layout"
	"github.com/tatianab/road-of-life/internal/input"
	"github.com/tatianab/road-of-life/internal/models"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	bodyScale  = 1.5
	titleScale = 3
	barWidth   = 200
	barHeight  = 14

	// scoreInset puts the victory total just above the buttons.
	scoreInset = layout.BottomInset + 50
)

var (
	colorText     = color.RGBA{235, 235, 235, 255}
	colorDim      = color.RGBA{170, 170, 170, 255}
	colorTitle    = color.RGBA{255, 165, 0, 255}
	colorPanel    = color.RGBA{0, 0, 0, 160}
	colorButton   = color.RGBA{95, 95, 135, 230}
	colorButtonHi = color.RGBA{125, 125, 175, 240}
	colorBarEmpty = color.RGBA{50, 50, 50, 255}
	colorFood     = color.RGBA{215, 175, 95, 255}
	colorVictory  = color.RGBA{95, 215, 95, 255}
	colorGameOver = color.RGBA{255, 95, 95, 255}
)

var keyBindings = []struct {
	key ebiten.Key
	in  input.Key
}{
	{ebiten.KeyEnter, input.KeyConfirm},
	{ebiten.KeyNumpadEnter, input.KeyConfirm},
	{ebiten.KeySpace, input.KeyConfirm},
	{ebiten.KeyDigit1, input.KeyChoice1},
	{ebiten.KeyDigit2, input.KeyChoice2},
	{ebiten.KeyDigit3, input.KeyChoice3},
	{ebiten.KeyR, input.KeyRestart},
	{ebiten.KeyEscape, input.KeyQuit},
	{ebiten.KeyQ, input.KeyQuit},
}

// Game is the Ebitengine game struct. It owns rendering and input; all game
// state lives in the engine.
type Game struct {
	eng    input.Controller
	log    *zap.Logger
	queue  *input.Queue
	assets *assets
	face   *text.GoXFace
	pixel  *ebiten.Image
	view   engine.View
	width  int
	height int
}

func NewGame(eng input.Controller, log *zap.Logger, width, height int) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		eng:    eng,
		log:    log,
		queue:  input.NewQueue(input.DefaultQueueSize),
		assets: newAssets(log, width, height),
		face:   text.NewGoXFace(basicfont.Face7x13),
		pixel:  pixel,
		view:   eng.View(),
		width:  width,
		height: height,
	}
}

// Update polls input into the queue, then drains it, one transition per event.
func (g *Game) Update() error {
	g.poll()
	for {
		ev, ok := g.queue.Dequeue()
		if !ok {
			return nil
		}
		v, quit, err := input.Dispatch(ev, layout.Buttons(g.view, g.width, g.height), g.eng)
		if quit {
			g.log.Info("quit requested")
			return ebiten.Termination
		}
		if err != nil {
			g.log.Debug("input ignored", zap.Stringer("screen", g.view.Screen), zap.Error(err))
		}
		g.view = v
	}
}

func (g *Game) poll() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.enqueue(input.Click(x, y))
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.enqueue(input.Press(b.in))
		}
	}
}

func (g *Game) enqueue(ev input.Event) {
	if !g.queue.Enqueue(ev) {
		g.log.Debug("input queue full, event dropped")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Draw(screen *ebiten.Image) {
	v := g.view
	bg := MenuBackground
	if v.Scene != nil {
		bg = v.Scene.Background
	}
	screen.DrawImage(g.assets.background(bg), nil)

	switch v.Screen {
	case engine.ScreenMenu:
		g.drawCentered(screen, v.Title, g.height/4, titleScale, colorTitle)
		g.drawCentered(screen, v.Subtitle, g.height/4+60, bodyScale*1.3, colorText)
	case engine.ScreenSceneIntro:
		g.drawHUD(screen)
		g.drawCentered(screen, v.Scene.Title, g.height/4, titleScale*0.8, colorTitle)
		g.drawCentered(screen, v.Scene.Date.String(), g.height/4+50, bodyScale*1.3, colorText)
		g.drawCentered(screen, statusLine(v.Stats), g.height/4+100, bodyScale, colorDim)
	case engine.ScreenAwaitingChoice:
		g.drawHUD(screen)
		g.drawPanel(screen, v.Scene.Title, v.Scene.Text)
	case engine.ScreenResult:
		g.drawHUD(screen)
		g.drawPanel(screen, v.Scene.Title, v.ResultText)
	case engine.ScreenHistory:
		g.drawHUD(screen)
		g.drawPanel(screen, "HISTORICAL FACT", v.Fact)
	case engine.ScreenVictory:
		s, sc := v.Stats, v.Score
		g.drawCentered(screen, "VICTORY!", g.height/8, titleScale, colorVictory)
		g.drawLines(screen, g.width/4, g.height/8+60, bodyScale, colorText, []string{
			"You survived the siege and completed your mission on the Road of Life.",
			"",
			fmt.Sprintf("Food delivered: %d kg", s.TotalDelivered),
			fmt.Sprintf("People evacuated: %d", s.Evacuated),
			fmt.Sprintf("Health: %d%%   Morale: %d%%", s.Health, s.Morale),
			"",
			fmt.Sprintf("Survival %d   Food %d   Evacuation %d", sc.Survival, sc.Food, sc.Evacuation),
		})
		g.drawCentered(screen, fmt.Sprintf("Total score: %d", sc.Total), g.height-scoreInset, bodyScale*1.5, colorTitle)
	case engine.ScreenGameOver:
		g.drawCentered(screen, "GAME OVER", g.height/4, titleScale, colorGameOver)
		g.drawCentered(screen, v.Reason.Message(), g.height/4+70, bodyScale, colorText)
		g.drawCentered(screen, statusLine(v.Stats), g.height/4+110, bodyScale, colorDim)
	}

	g.drawButtons(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	v := g.view
	s := v.Stats
	g.fillRect(screen, 0, 0, g.width, 70, colorPanel)
	g.drawBar(screen, 20, 12, "Food", s.Food, models.MaxFood, colorFood)
	g.drawBar(screen, 20, 30, "Health", s.Health, models.MaxHealth, healthColor(s.Health))
	g.drawBar(screen, 20, 48, "Morale", s.Morale, models.MaxMorale, moraleColor(s.Morale))

	stage := fmt.Sprintf("Stage %d/%d", min(v.SceneIndex+1, v.SceneCount), v.SceneCount)
	g.drawText(screen, stage, float64(g.width-220), 12, bodyScale, colorText)
	g.drawText(screen, fmt.Sprintf("Delivered: %d kg", s.TotalDelivered), float64(g.width-220), 30, 1, colorDim)
	g.drawText(screen, fmt.Sprintf("Evacuated: %d", s.Evacuated), float64(g.width-220), 48, 1, colorDim)
}

func (g *Game) drawBar(screen *ebiten.Image, x, y int, label string, value, maxValue int, fill color.Color) {
	g.drawText(screen, label, float64(x), float64(y), 1, colorText)
	bx := x + 70
	g.fillRect(screen, bx, y, barWidth, barHeight, colorBarEmpty)
	g.fillRect(screen, bx, y, barWidth*value/maxValue, barHeight, fill)
	g.drawText(screen, fmt.Sprintf("%d/%d", value, maxValue), float64(bx+barWidth+10), float64(y), 1, colorDim)
}

// drawPanel draws a titled, wrapped text block above the buttons.
func (g *Game) drawPanel(screen *ebiten.Image, title, body string) {
	x, y := g.width/8, 100
	w := g.width * 3 / 4
	g.fillRect(screen, x-20, y-20, w+40, g.height/2-y, colorPanel)
	g.drawText(screen, title, float64(x), float64(y), bodyScale*1.5, colorTitle)
	lines := layout.Wrap(body, float64(w), func(s string) float64 {
		return text.Advance(s, g.face) * bodyScale
	})
	g.drawLines(screen, x, y+40, bodyScale, colorText, lines)
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	for _, b := range layout.Buttons(g.view, g.width, g.height).Buttons {
		r := b.Rect
		fill := colorButton
		if r.Contains(mx, my) {
			fill = colorButtonHi
		}
		g.fillRect(screen, r.X, r.Y, r.W, r.H, fill)

		label := b.Label
		if b.Action == input.ActionChoose {
			label = fmt.Sprintf("%d. %s", b.Choice+1, b.Label)
		}
		lines := layout.Wrap(label, float64(r.W-20), func(s string) float64 {
			return text.Advance(s, g.face) * bodyScale
		})
		ty := r.Y + r.H/2 - len(lines)*int(lineHeight*bodyScale)/2
		g.drawLines(screen, r.X+10, ty, bodyScale, colorText, lines)
	}
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.pixel, &op)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawLines(screen *ebiten.Image, x, y int, scale float64, clr color.Color, lines []string) {
	step := lineHeight * scale
	for i, line := range lines {
		g.drawText(screen, line, float64(x), float64(y)+float64(i)*step, scale, clr)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, scale float64, clr color.Color) {
	w := text.Advance(s, g.face) * scale
	g.drawText(screen, s, (float64(g.width)-w)/2, float64(y), scale, clr)
}

func healthColor(h int) color.Color {
	switch {
	case h > 50:
		return color.RGBA{95, 215, 95, 255}
	case h > 25:
		return color.RGBA{255, 215, 95, 255}
	default:
		return color.RGBA{255, 95, 95, 255}
	}
}

func moraleColor(m int) color.Color {
	switch {
	case m > 60:
		return color.RGBA{95, 175, 255, 255}
	case m > 30:
		return color.RGBA{255, 175, 95, 255}
	default:
		return color.RGBA{175, 95, 175, 255}
	}
}

func statusLine(s models.StatBlock) string {
	return fmt.Sprintf("Health: %d%% | Morale: %d%% | Delivered: %d kg | Evacuated: %d",
		s.Health, s.Morale, s.TotalDelivered, s.Evacuated)
}
