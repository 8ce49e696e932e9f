package models

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Bounds for the clamped statistics.
const (
	MaxFood   = 250
	MaxHealth = 100
	MaxMorale = 100

	// CriticalFloor is the level below which health and morale warnings fire.
	CriticalFloor = 20
)

// StatBlock is the player's numeric state for one game session.
type StatBlock struct {
	Food           int `yaml:"food"`
	Health         int `yaml:"health"`
	Morale         int `yaml:"morale"`
	TotalDelivered int `yaml:"total_delivered"`
	Evacuated      int `yaml:"evacuated"`
}

// Modifier is a signed delta applied to a StatBlock.
type Modifier struct {
	Food      int `yaml:"food"`
	Health    int `yaml:"health"`
	Morale    int `yaml:"morale"`
	Delivered int `yaml:"delivered"`
	Evacuated int `yaml:"evacuated"`
}

// Apply returns s with m applied. Bounded fields are clamped, counters are added as is.
func (m Modifier) Apply(s StatBlock) StatBlock {
	s.Food = clamp(s.Food+m.Food, 0, MaxFood)
	s.Health = clamp(s.Health+m.Health, 0, MaxHealth)
	s.Morale = clamp(s.Morale+m.Morale, 0, MaxMorale)
	s.TotalDelivered += m.Delivered
	s.Evacuated += m.Evacuated
	return s
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Simple is a deterministic outcome.
type Simple struct {
	Text     string   `yaml:"text"`
	Modifier Modifier `yaml:"modifier"`
}

// RiskBased picks Success with probability SuccessProbability, Failure otherwise.
// A draw strictly below SuccessProbability is a success.
type RiskBased struct {
	SuccessProbability float64 `yaml:"success_probability"`
	Success            Simple  `yaml:"success"`
	Failure            Simple  `yaml:"failure"`
}

// Consequence is a tagged union: exactly one of Simple or RiskBased is set.
type Consequence struct {
	Simple    *Simple    `yaml:"simple,omitempty"`
	RiskBased *RiskBased `yaml:"risk_based,omitempty"`
}

// Branch names which outcome a resolution took.
type Branch string

const (
	BranchSimple  Branch = "simple"
	BranchSuccess Branch = "success"
	BranchFailure Branch = "failure"
)

// Resolution is the result of resolving a Consequence.
type Resolution struct {
	Text   string
	Stats  StatBlock
	Branch Branch
}

// Resolve applies the consequence to stats. draw is called at most once, and only
// for risk-based consequences; it must return a value in [0,1).
func (c Consequence) Resolve(stats StatBlock, draw func() float64) Resolution {
	switch {
	case c.Simple != nil:
		return Resolution{Text: c.Simple.Text, Stats: c.Simple.Modifier.Apply(stats), Branch: BranchSimple}
	case c.RiskBased != nil:
		r := c.RiskBased
		if draw() < r.SuccessProbability {
			return Resolution{Text: r.Success.Text, Stats: r.Success.Modifier.Apply(stats), Branch: BranchSuccess}
		}
		return Resolution{Text: r.Failure.Text, Stats: r.Failure.Modifier.Apply(stats), Branch: BranchFailure}
	default:
		return Resolution{Stats: stats, Branch: BranchSimple}
	}
}

// Choice is one option offered by a scene.
type Choice struct {
	Text        string      `yaml:"text"`
	Consequence Consequence `yaml:"consequence"`
}

// CalendarDate is a day in the story's timeline.
type CalendarDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate returns the CalendarDate for the given day.
func NewDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse(dateLayout, value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q: %w", value.Line, value.Value, err)
	}
	d.Time = t
	return nil
}

// String renders the date the way the story screens show it.
func (d CalendarDate) String() string {
	return d.Format("2 January 2006")
}

// AssetHandle is an opaque reference resolved by the presentation layer.
type AssetHandle string

// Scene represents one story beat.
type Scene struct {
	Title      string       `yaml:"title"`
	Text       string       `yaml:"text"`
	Date       CalendarDate `yaml:"date"`
	Background AssetHandle  `yaml:"background"`
	Choices    []Choice     `yaml:"choices"`
}

// HistoryFact is flavor text shown between scenes.
type HistoryFact struct {
	Text string `yaml:"text"`
}

// Catalog is the authored story: scenes in order plus the history fact pool.
type Catalog struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Scenes   []Scene       `yaml:"scenes"`
	Facts    []HistoryFact `yaml:"facts"`
}
