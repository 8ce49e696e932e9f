package tui

import (
	"github.com/joho/godotenv"
	"github.com/tatianab/road-of-life/internal/app"
	"github.com/tatianab/road-of-life/internal/config"
)

// Start reads the configuration (and an optional .env file) and plays the game
// in the terminal.
func Start() error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return Run(a.Engine, a.Log)
}
