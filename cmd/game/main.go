package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tatianab/road-of-life/internal/app"
	"github.com/tatianab/road-of-life/internal/config"
	"github.com/tatianab/road-of-life/internal/tui"
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
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := tui.Run(a.Engine, a.Log); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
