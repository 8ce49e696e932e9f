package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tatianab/road-of-life/internal/app"
	"github.com/tatianab/road-of-life/internal/config"
	"github.com/tatianab/road-of-life/internal/gui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Printf("Error creating game: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	err = gui.Run(a.Engine, a.Log, gui.Options{
		Title:      a.Engine.Catalog().Title,
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		Fullscreen: cfg.Fullscreen,
	})
	if err != nil {
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
}
