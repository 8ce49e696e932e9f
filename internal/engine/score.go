package engine

import "github.com/tatianab/road-of-life/internal/models"

// Score is the victory summary computed from the final stats.
type Score struct {
	Survival   int
	Food       int
	Evacuation int
	Total      int
}

func ComputeScore(s models.StatBlock) Score {
	sc := Score{
		Survival:   min(100, s.Health+s.Morale),
		Food:       min(100, s.TotalDelivered/20),
		Evacuation: min(100, s.Evacuated*10),
	}
	sc.Total = (sc.Survival + sc.Food + sc.Evacuation) / 3
	return sc
}
