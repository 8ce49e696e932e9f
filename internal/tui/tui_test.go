package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/input"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	catalog, err := engine.DefaultCatalog()
	require.NoError(t, err)
	eng, err := engine.NewEngine(catalog, engine.WithSource(engine.NewFixedSource(0)))
	require.NoError(t, err)

	m := NewModel(eng, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func press(t *testing.T, m model, msg tea.KeyMsg) model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveTheGame(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "ROAD OF LIFE")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, engine.ScreenSceneIntro, m.view.Screen)
	assert.Contains(t, m.View(), "12 September 1941")
	assert.Contains(t, m.View(), "Stage 1/10")

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, engine.ScreenAwaitingChoice, m.view.Screen)
	assert.Contains(t, m.View(), "[1] Maximum load")

	m = press(t, m, runes("2"))
	require.Equal(t, engine.ScreenResult, m.view.Screen)
	assert.Equal(t, 150, m.view.Stats.Food)
	assert.Contains(t, m.View(), "medium cargo")
}

func TestRestartKeyOnlyOnTerminalScreens(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("r"))
	assert.Equal(t, engine.ScreenSceneIntro, m.view.Screen)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMouseClickHitsChoice(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, engine.ScreenAwaitingChoice, m.view.Screen)

	_, layout := m.compose()
	require.Len(t, layout.Buttons, 3)
	third := layout.Buttons[2]
	assert.Equal(t, input.ActionChoose, third.Action)
	assert.Equal(t, layout.Buttons[1].Rect.Y+1, third.Rect.Y)

	next, _ := m.Update(tea.MouseMsg{X: third.Rect.X, Y: third.Rect.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = next.(model)
	require.Equal(t, engine.ScreenResult, m.view.Screen)
	assert.Equal(t, 50, m.view.Stats.Food)
}

func TestLayoutMatchesRenderedRows(t *testing.T) {
	m := newTestModel(t)
	s, layout := m.compose()
	lines := strings.Split(s, "\n")
	for _, b := range layout.Buttons {
		require.Less(t, b.Rect.Y, len(lines))
		assert.Contains(t, lines[b.Rect.Y], b.Label)
	}
}

func TestStatColours(t *testing.T) {
	assert.Equal(t, healthColor(51), healthColor(100))
	assert.NotEqual(t, healthColor(50), healthColor(51))
	assert.NotEqual(t, healthColor(25), healthColor(26))
	assert.NotEqual(t, moraleColor(60), moraleColor(61))
	assert.NotEqual(t, moraleColor(30), moraleColor(31))
}
