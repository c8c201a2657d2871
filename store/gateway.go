package store

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"taskmaster/model"
)

// Gateway loads and saves the application state under a fixed directory.
// Failures are logged and never returned: saving degrades to "nothing
// happened" and loading to "starting fresh".
type Gateway struct {
	paths  Paths
	hasDir bool
	logger *log.Logger
}

// NewGateway creates a gateway rooted at root. An empty root means the home
// directory could not be resolved; every operation then only logs.
func NewGateway(root string, logger *log.Logger) *Gateway {
	g := &Gateway{logger: logger, hasDir: root != ""}
	if g.hasDir {
		g.paths = PathsFor(root)
	}
	return g
}

// Paths returns the file layout of the gateway.
func (g *Gateway) Paths() Paths {
	return g.paths
}

// Save writes state in the current schema.
func (g *Gateway) Save(state model.List) {
	if !g.hasDir {
		g.logger.Error("Could not resolve home directory to save lists.")
		return
	}
	if err := Save(g.paths.Data, state); err != nil {
		g.logger.Error("Failed to write lists", "path", g.paths.Data, "err", err)
		return
	}
	g.logger.Debug("lists saved", "path", g.paths.Data, "lists", len(state.Lists))
}

// Load returns the persisted state, migrating a legacy file when no current
// file exists, and an empty state when nothing usable is found.
func (g *Gateway) Load() model.List {
	if !g.hasDir {
		g.logger.Error("Could not resolve home directory to load lists.")
		return model.NewList()
	}

	data, err := os.ReadFile(g.paths.Data)
	switch {
	case err == nil:
		state, err := decodeState(data)
		if err != nil {
			g.logger.Error("Failed to parse lists file", "path", g.paths.Data, "err", err)
			if moved, qerr := quarantine(g.paths.Data); qerr != nil {
				g.logger.Error("Failed to move unreadable lists file", "path", g.paths.Data, "err", qerr)
			} else {
				g.logger.Warn("unreadable lists file moved aside", "path", moved)
			}
			return model.NewList()
		}
		return state
	case !errors.Is(err, os.ErrNotExist):
		g.logger.Error("Failed to read lists file", "path", g.paths.Data, "err", err)
		return model.NewList()
	}

	if state, ok := g.migrate(); ok {
		return state
	}

	g.logger.Info("no saved lists, starting empty", "path", g.paths.Data)
	if err := ensureDir(g.paths.Data); err != nil {
		g.logger.Error("Failed to prepare data directory", "path", g.paths.Root, "err", err)
	}
	return model.NewList()
}

func (g *Gateway) migrate() (model.List, bool) {
	state, err := LoadLegacy(g.paths.Legacy)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			g.logger.Error("Failed to migrate legacy list", "path", g.paths.Legacy, "err", err)
		}
		return model.List{}, false
	}
	g.logger.Info("migrated legacy list", "from", g.paths.Legacy, "to", g.paths.Data, "title", state.Lists[0].Title)
	g.Save(state)
	return state, true
}
