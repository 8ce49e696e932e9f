package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tatianab/road-of-life/internal/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidChoiceIndex = errors.New("choice index out of range")
	ErrInvalidTransition  = errors.New("action not allowed on this screen")
)

const (
	healthWarning = "Your health is critically low!"
	moraleWarning = "Your morale has hit bottom!"
)

// DefaultStart is the stat block a new game begins with.
var DefaultStart = models.StatBlock{Food: 0, Health: 85, Morale: 80}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSource sets the source used for risk-based consequences.
func WithSource(src Source) Option {
	return func(e *Engine) { e.rng = src }
}

// WithFactSource sets the source used to pick history facts.
func WithFactSource(src Source) Option {
	return func(e *Engine) { e.factRng = src }
}

func WithStartingStats(s models.StatBlock) Option {
	return func(e *Engine) { e.start = s }
}

// WithFactEvery shows a history fact after every n completed scenes. 0 disables them.
func WithFactEvery(n int) Option {
	return func(e *Engine) { e.factEvery = n }
}

// Engine drives one game session through the catalog. It is not safe for
// concurrent use; the presentation loop owns it.
type Engine struct {
	catalog   *models.Catalog
	log       *zap.Logger
	rng       Source
	factRng   Source
	facts     *factPool
	start     models.StatBlock
	factEvery int

	session uuid.UUID
	screen  Screen
	index   int
	stats   models.StatBlock
	result  string
	fact    string
	reason  GameOverReason
}

// NewEngine validates the catalog and returns an engine sitting on the menu.
func NewEngine(catalog *models.Catalog, opts ...Option) (*Engine, error) {
	if catalog == nil {
		return nil, models.ErrEmptyCatalog
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		catalog:   catalog,
		log:       zap.NewNop(),
		rng:       NewSeededSource(0, "consequence"),
		factRng:   NewSeededSource(0, "facts"),
		start:     DefaultStart,
		factEvery: 2,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.factEvery < 0 {
		return nil, fmt.Errorf("fact interval must not be negative, got %d", e.factEvery)
	}
	if e.factEvery > 0 && len(catalog.Facts) == 0 {
		return nil, fmt.Errorf("%w: history facts enabled but the pool is empty", models.ErrInvalidCatalog)
	}
	e.facts = newFactPool(catalog.Facts, e.factRng)
	e.Reset()
	return e, nil
}

// Catalog returns the immutable story the engine plays.
func (e *Engine) Catalog() *models.Catalog { return e.catalog }

// Reset discards the session state and returns to the menu. The catalog is kept.
func (e *Engine) Reset() {
	e.screen = ScreenMenu
	e.index = 0
	e.stats = e.start
	e.result = ""
	e.fact = ""
	e.reason = ReasonNone
	e.facts.reset()
}

// Start begins a new game from the menu.
func (e *Engine) Start() (View, error) {
	if e.screen != ScreenMenu {
		return e.View(), fmt.Errorf("start from %s: %w", e.screen, ErrInvalidTransition)
	}
	e.Reset()
	e.session = uuid.New()
	e.log.Info("game started",
		zap.String("session", e.session.String()),
		zap.Int("scenes", len(e.catalog.Scenes)),
		zap.Any("stats", e.stats),
	)
	e.transition(ScreenSceneIntro)
	return e.View(), nil
}

// SelectChoice resolves the chosen option of the current scene.
func (e *Engine) SelectChoice(choice int) (View, error) {
	if e.screen != ScreenAwaitingChoice {
		return e.View(), fmt.Errorf("select on %s: %w", e.screen, ErrInvalidTransition)
	}
	choices := e.catalog.Scenes[e.index].Choices
	if choice < 0 || choice >= len(choices) {
		return e.View(), fmt.Errorf("choice %d of %d: %w", choice, len(choices), ErrInvalidChoiceIndex)
	}

	res := choices[choice].Consequence.Resolve(e.stats, e.rng.Float64)
	e.stats = res.Stats
	e.result = res.Text
	if e.stats.Health < models.CriticalFloor {
		e.result += "\n\n" + healthWarning
	}
	if e.stats.Morale < models.CriticalFloor {
		e.result += "\n\n" + moraleWarning
	}

	e.log.Info("choice resolved",
		zap.String("session", e.session.String()),
		zap.Int("scene", e.index),
		zap.Int("choice", choice),
		zap.String("branch", string(res.Branch)),
		zap.Any("stats", e.stats),
	)
	e.transition(ScreenResult)
	return e.View(), nil
}

// Advance moves past the current intro, result or history screen.
func (e *Engine) Advance() (View, error) {
	switch e.screen {
	case ScreenSceneIntro:
		e.transition(ScreenAwaitingChoice)
	case ScreenResult:
		if reason := failure(e.stats); reason != ReasonNone {
			e.reason = reason
			e.log.Info("game over",
				zap.String("session", e.session.String()),
				zap.Stringer("reason", reason),
				zap.Int("scene", e.index),
			)
			e.transition(ScreenGameOver)
			break
		}
		e.index++
		e.result = ""
		switch {
		case e.index >= len(e.catalog.Scenes):
			e.log.Info("victory",
				zap.String("session", e.session.String()),
				zap.Int("score", ComputeScore(e.stats).Total),
			)
			e.transition(ScreenVictory)
		case e.factEvery > 0 && e.index%e.factEvery == 0:
			fact, _ := e.facts.draw()
			e.fact = fact.Text
			e.transition(ScreenHistory)
		default:
			e.transition(ScreenSceneIntro)
		}
	case ScreenHistory:
		e.fact = ""
		e.transition(ScreenSceneIntro)
	default:
		return e.View(), fmt.Errorf("advance from %s: %w", e.screen, ErrInvalidTransition)
	}
	return e.View(), nil
}

// Restart returns to the menu from a finished game.
func (e *Engine) Restart() (View, error) {
	if !e.screen.Terminal() {
		return e.View(), fmt.Errorf("restart from %s: %w", e.screen, ErrInvalidTransition)
	}
	e.log.Debug("restart", zap.String("session", e.session.String()))
	e.Reset()
	return e.View(), nil
}

// View projects the current state for rendering.
func (e *Engine) View() View {
	v := View{
		Screen:     e.screen,
		Title:      e.catalog.Title,
		Subtitle:   e.catalog.Subtitle,
		SceneIndex: e.index,
		SceneCount: len(e.catalog.Scenes),
		Stats:      e.stats,
	}
	switch e.screen {
	case ScreenSceneIntro, ScreenAwaitingChoice, ScreenResult:
		scene := e.catalog.Scenes[e.index]
		sv := &SceneView{
			Title:      scene.Title,
			Text:       scene.Text,
			Date:       scene.Date,
			Background: scene.Background,
		}
		if e.screen == ScreenAwaitingChoice {
			sv.Choices = make([]string, len(scene.Choices))
			for i, c := range scene.Choices {
				sv.Choices[i] = c.Text
			}
		}
		v.Scene = sv
		v.ResultText = e.result
	case ScreenHistory:
		v.Fact = e.fact
	case ScreenVictory:
		v.Score = ComputeScore(e.stats)
	case ScreenGameOver:
		v.Reason = e.reason
	}
	return v
}

func (e *Engine) transition(to Screen) {
	e.log.Debug("transition",
		zap.String("session", e.session.String()),
		zap.Stringer("from", e.screen),
		zap.Stringer("to", to),
		zap.Int("scene", e.index),
	)
	e.screen = to
}

// failure checks the game over predicates in priority order.
func failure(s models.StatBlock) GameOverReason {
	switch {
	case s.Food <= 0:
		return ReasonCargoLost
	case s.Health <= 0:
		return ReasonHealthCollapsed
	case s.Morale <= 0:
		return ReasonWillLost
	default:
		return ReasonNone
	}
}
