package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/models"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 5}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{39, 24, true},
		{40, 20, false},
		{10, 25, false},
		{9, 22, false},
		{25, 19, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
	assert.False(t, Rect{W: 0, H: 10}.Contains(0, 0))
}

func TestLayoutHitReturnsFirstMatch(t *testing.T) {
	l := Layout{Buttons: []Button{
		{Rect: Rect{X: 0, Y: 0, W: 10, H: 10}, Action: ActionChoose, Choice: 0},
		{Rect: Rect{X: 5, Y: 5, W: 10, H: 10}, Action: ActionChoose, Choice: 1},
	}}

	b, ok := l.Hit(7, 7)
	require.True(t, ok)
	assert.Equal(t, 0, b.Choice)

	b, ok = l.Hit(12, 12)
	require.True(t, ok)
	assert.Equal(t, 1, b.Choice)

	_, ok = l.Hit(50, 50)
	assert.False(t, ok)
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(2)
	assert.True(t, q.Enqueue(Press(KeyConfirm)))
	assert.True(t, q.Enqueue(Click(1, 2)))
	assert.False(t, q.Enqueue(Press(KeyQuit)))
	assert.Equal(t, 2, q.Len())

	ev, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, Press(KeyConfirm), ev)
	ev, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, Click(1, 2), ev)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestQueueDefaults(t *testing.T) {
	q := NewQueue(0)
	for i := 0; i < DefaultQueueSize; i++ {
		require.True(t, q.Enqueue(Press(KeyConfirm)))
	}
	assert.False(t, q.Enqueue(Press(KeyConfirm)))

	var nilQueue *Queue
	assert.False(t, nilQueue.Enqueue(Press(KeyConfirm)))
	_, ok := nilQueue.Dequeue()
	assert.False(t, ok)
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	catalog := &models.Catalog{
		Scenes: []models.Scene{{
			Title: "Only",
			Choices: []models.Choice{
				{Text: "a", Consequence: models.Consequence{Simple: &models.Simple{Text: "A", Modifier: models.Modifier{Food: 10}}}},
				{Text: "b", Consequence: models.Consequence{Simple: &models.Simple{Text: "B", Modifier: models.Modifier{Food: 20}}}},
			},
		}},
	}
	e, err := engine.NewEngine(catalog, engine.WithFactEvery(0))
	require.NoError(t, err)
	return e
}

func TestDispatchKeysFollowScreen(t *testing.T) {
	e := newEngine(t)
	var none Layout

	v, quit, err := Dispatch(Press(KeyChoice1), none, e)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, engine.ScreenMenu, v.Screen, "choice keys do nothing on the menu")

	v, _, err = Dispatch(Press(KeyConfirm), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenSceneIntro, v.Screen)

	v, _, err = Dispatch(Press(KeyConfirm), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenAwaitingChoice, v.Screen)

	v, _, err = Dispatch(Press(KeyConfirm), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenAwaitingChoice, v.Screen, "confirm cannot skip a choice")

	v, _, err = Dispatch(Press(KeyChoice3), none, e)
	assert.ErrorIs(t, err, engine.ErrInvalidChoiceIndex)
	assert.Equal(t, engine.ScreenAwaitingChoice, v.Screen)

	v, _, err = Dispatch(Press(KeyChoice2), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenResult, v.Screen)
	assert.Equal(t, 20, v.Stats.Food)

	v, _, err = Dispatch(Press(KeyRestart), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenResult, v.Screen, "restart is ignored mid-game")

	v, _, err = Dispatch(Press(KeyConfirm), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenVictory, v.Screen)

	v, _, err = Dispatch(Press(KeyRestart), none, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenMenu, v.Screen)
}

func TestDispatchClicks(t *testing.T) {
	e := newEngine(t)
	_, _ = e.Start()
	_, _ = e.Advance()

	layout := Layout{Buttons: []Button{
		{Rect: Rect{X: 0, Y: 0, W: 100, H: 10}, Action: ActionChoose, Choice: 0},
		{Rect: Rect{X: 0, Y: 10, W: 100, H: 10}, Action: ActionChoose, Choice: 1},
	}}

	v, _, err := Dispatch(Click(50, 30), layout, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenAwaitingChoice, v.Screen, "a miss changes nothing")

	v, _, err = Dispatch(Click(50, 5), layout, e)
	require.NoError(t, err)
	assert.Equal(t, engine.ScreenResult, v.Screen)
	assert.Equal(t, 10, v.Stats.Food)
}

func TestDispatchQuit(t *testing.T) {
	e := newEngine(t)
	layout := Layout{Buttons: []Button{{Rect: Rect{W: 10, H: 10}, Action: ActionQuit}}}

	v, quit, err := Dispatch(Press(KeyQuit), Layout{}, e)
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, engine.ScreenMenu, v.Screen)

	_, quit, err = Dispatch(Click(1, 1), layout, e)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestControlsPerScreen(t *testing.T) {
	e := newEngine(t)

	labels := func(bs []Button) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = b.Label
		}
		return out
	}

	assert.Equal(t, []string{"Start", "Quit"}, labels(Controls(e.View())))
	v, _ := e.Start()
	assert.Equal(t, []string{"Begin"}, labels(Controls(v)))
	v, _ = e.Advance()
	bs := Controls(v)
	assert.Equal(t, []string{"a", "b"}, labels(bs))
	assert.Equal(t, ActionChoose, bs[1].Action)
	assert.Equal(t, 1, bs[1].Choice)
	v, _ = e.SelectChoice(0)
	assert.Equal(t, []string{"Continue"}, labels(Controls(v)))
	v, _ = e.Advance()
	assert.Equal(t, []string{"Play again", "Quit"}, labels(Controls(v)))
}
