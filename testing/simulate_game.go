package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"
	"github.com/tatianab/road-of-life/internal/app"
	"github.com/tatianab/road-of-life/internal/config"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/models"
)

const (
	games    = 1000
	maxSteps = 200
)

type outcome struct {
	screen engine.Screen
	reason engine.GameOverReason
	score  engine.Score
	stats  models.StatBlock
	scene  int
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	catalog, err := app.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1941
	}
	policy := engine.NewSeededSource(seed, "policy")

	// 1. Play every game with a uniformly random choice policy
	fmt.Printf("--- Playing %d games of %q (seed %d) ---\n", games, catalog.Title, seed)
	var results []outcome
	for i := 0; i < games; i++ {
		eng, err := engine.NewEngine(catalog,
			engine.WithSource(engine.NewSeededSource(seed+int64(i), "consequence")),
			engine.WithFactSource(engine.NewSeededSource(seed+int64(i), "facts")),
			engine.WithStartingStats(models.StatBlock{Health: cfg.StartHealth, Morale: cfg.StartMorale}),
			engine.WithFactEvery(cfg.FactEvery),
		)
		if err != nil {
			log.Fatalf("Failed to create engine: %v", err)
		}
		res, err := play(eng, policy)
		if err != nil {
			log.Fatalf("Game %d: %v", i, err)
		}
		results = append(results, res)
	}

	// 2. Report
	report(results, len(catalog.Scenes))
}

func play(eng *engine.Engine, policy engine.Source) (outcome, error) {
	v, err := eng.Start()
	if err != nil {
		return outcome{}, err
	}
	for step := 0; !v.Screen.Terminal(); step++ {
		if step >= maxSteps {
			return outcome{}, fmt.Errorf("no terminal screen after %d steps", maxSteps)
		}
		if v.Screen == engine.ScreenAwaitingChoice {
			n := len(v.Scene.Choices)
			v, err = eng.SelectChoice(min(int(policy.Float64()*float64(n)), n-1))
		} else {
			v, err = eng.Advance()
		}
		if err != nil {
			return outcome{}, err
		}
	}
	return outcome{screen: v.Screen, reason: v.Reason, score: v.Score, stats: v.Stats, scene: v.SceneIndex}, nil
}

func report(results []outcome, scenes int) {
	var wins, scoreSum, deliveredSum, evacuatedSum int
	reasons := map[string]int{}
	endedAt := make([]int, scenes)
	for _, r := range results {
		deliveredSum += r.stats.TotalDelivered
		evacuatedSum += r.stats.Evacuated
		if r.screen == engine.ScreenVictory {
			wins++
			scoreSum += r.score.Total
			continue
		}
		reasons[r.reason.String()]++
		endedAt[r.scene]++
	}

	n := len(results)
	fmt.Printf("Victories: %d/%d (%.1f%%)\n", wins, n, 100*float64(wins)/float64(n))
	if wins > 0 {
		fmt.Printf("Mean victory score: %.1f\n", float64(scoreSum)/float64(wins))
	}
	fmt.Printf("Mean delivered: %.1f kg, mean evacuated: %.2f\n",
		float64(deliveredSum)/float64(n), float64(evacuatedSum)/float64(n))

	fmt.Println("\nGame over reasons:")
	keys := make([]string, 0, len(reasons))
	for k := range reasons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, reasons[k])
	}

	fmt.Println("\nGame overs by scene:")
	for i, c := range endedAt {
		if c > 0 {
			fmt.Printf("  %2d %d\n", i+1, c)
		}
	}
}
