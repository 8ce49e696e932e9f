package engine

import "github.com/tatianab/road-of-life/internal/models"

// Screen is the kind of screen the presentation layer should show.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSceneIntro
	ScreenAwaitingChoice
	ScreenResult
	ScreenHistory
	ScreenVictory
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenSceneIntro:
		return "scene_intro"
	case ScreenAwaitingChoice:
		return "awaiting_choice"
	case ScreenResult:
		return "result"
	case ScreenHistory:
		return "history"
	case ScreenVictory:
		return "victory"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether only restart (or quitting) is legal.
func (s Screen) Terminal() bool {
	return s == ScreenVictory || s == ScreenGameOver
}

// GameOverReason says which failure predicate ended the game.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonCargoLost
	ReasonHealthCollapsed
	ReasonWillLost
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonCargoLost:
		return "cargo lost"
	case ReasonHealthCollapsed:
		return "health collapsed"
	case ReasonWillLost:
		return "will to continue lost"
	default:
		return "none"
	}
}

// Message is the player-facing explanation shown on the game over screen.
func (r GameOverReason) Message() string {
	switch r {
	case ReasonCargoLost:
		return "The cargo is lost. The city will not get its bread..."
	case ReasonHealthCollapsed:
		return "Your health has deteriorated too far..."
	case ReasonWillLost:
		return "You have lost the will to go on..."
	default:
		return ""
	}
}

// SceneView is the read-only projection of the active scene.
type SceneView struct {
	Title      string
	Text       string
	Date       models.CalendarDate
	Background models.AssetHandle
	// Choices is only filled while a choice is awaited.
	Choices []string
}

// View is everything a presentation layer needs to draw the current state.
type View struct {
	Screen     Screen
	Title      string
	Subtitle   string
	SceneIndex int
	SceneCount int
	Scene      *SceneView
	ResultText string
	Fact       string
	Stats      models.StatBlock
	Reason     GameOverReason
	Score      Score
}
