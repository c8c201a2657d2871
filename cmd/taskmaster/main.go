package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskmaster/app"
	"taskmaster/config"
	"taskmaster/logging"
	"taskmaster/store"
	"taskmaster/tui"
)

func main() {
	root, rootErr := store.ResolveRoot()
	paths := store.PathsFor(root)

	cfg := config.Default()
	var cfgErr error
	if rootErr == nil {
		cfg, cfgErr = config.LoadOrCreate(paths.Config)
	} else {
		paths = store.Paths{}
	}

	logger, closeLog := logging.Open(logging.Options{
		Level:   cfg.LogLevel,
		LogPath: paths.Log,
		Prefix:  "tasks",
	})
	defer closeLog()

	if rootErr != nil {
		logger.Error("Could not resolve home directory", "err", rootErr)
	}
	if cfgErr != nil {
		logger.Error("Failed to load config, using defaults", "path", paths.Config, "err", cfgErr)
	}

	gateway := store.NewGateway(paths.Root, logger)
	svc := app.NewService(gateway.Load(), gateway)

	program := tea.NewProgram(tui.NewModel(svc, cfg.Keys, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("error running program: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
