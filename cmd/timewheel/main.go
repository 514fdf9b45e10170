package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/ui"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, ui.ErrCanceled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(cfg)
	return app.Execute()
}
