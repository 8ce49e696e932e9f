package engine

import (
	_ "embed"

	"github.com/tatianab/road-of-life/internal/models"
)

//go:embed story/road_of_life.yaml
var roadOfLife []byte

// DefaultCatalog parses the embedded Road of Life story.
func DefaultCatalog() (*models.Catalog, error) {
	return models.ParseCatalog(roadOfLife)
}
