package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/road-of-life/internal/models"
)

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := NewSeededSource(42, "consequence")
	b := NewSeededSource(42, "consequence")
	other := NewSeededSource(42, "facts")

	same := true
	for i := 0; i < 16; i++ {
		x, y, z := a.Float64(), b.Float64(), other.Float64()
		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
		if x != z {
			same = false
		}
	}
	assert.False(t, same, "salted streams should differ")
}

func TestFixedSourceRepeatsLast(t *testing.T) {
	s := NewFixedSource(0.1, 0.7)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.7, s.Float64())
	assert.Equal(t, 0.7, s.Float64())
	assert.Equal(t, 3, s.Draws())

	assert.Zero(t, NewFixedSource().Float64())
}

func TestFactPoolNoRepeatUntilExhausted(t *testing.T) {
	facts := []models.HistoryFact{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
	pool := newFactPool(facts, NewSeededSource(7, "facts"))

	for round := 0; round < 3; round++ {
		seen := map[string]bool{}
		for range facts {
			f, ok := pool.draw()
			require.True(t, ok)
			assert.False(t, seen[f.Text], "round %d repeated %q", round, f.Text)
			seen[f.Text] = true
		}
		assert.Len(t, seen, len(facts))
	}
}

func TestFactPoolResetRefills(t *testing.T) {
	facts := []models.HistoryFact{{Text: "a"}, {Text: "b"}}
	pool := newFactPool(facts, NewFixedSource(0))

	f, _ := pool.draw()
	assert.Equal(t, "a", f.Text)
	pool.reset()
	f, _ = pool.draw()
	assert.Equal(t, "a", f.Text)
	f, _ = pool.draw()
	assert.Equal(t, "b", f.Text)
}

func TestFactPoolEmpty(t *testing.T) {
	pool := newFactPool(nil, NewFixedSource())
	_, ok := pool.draw()
	assert.False(t, ok)
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name  string
		stats models.StatBlock
		want  Score
	}{
		{
			name:  "capped components",
			stats: models.StatBlock{Health: 90, Morale: 90, TotalDelivered: 5000, Evacuated: 40},
			want:  Score{Survival: 100, Food: 100, Evacuation: 100, Total: 100},
		},
		{
			name:  "integer division",
			stats: models.StatBlock{Health: 10, Morale: 20, TotalDelivered: 550, Evacuated: 5},
			want:  Score{Survival: 30, Food: 27, Evacuation: 50, Total: 35},
		},
		{
			name: "zero",
			want: Score{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeScore(tt.stats))
		})
	}
}
