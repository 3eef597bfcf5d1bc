// Package app is the composition root for easel: it loads configuration and
// preferences, builds the API client and selection state (restoring any
// persisted selections), and launches the UI.
package app

import (
	"context"
	"fmt"

	"easel/internal/artic"
	"easel/internal/config"
	"easel/internal/prefs"
	"easel/internal/selection"
	"easel/internal/state"
	"easel/internal/store"
	"easel/internal/ui"
)

// Options configure the easel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/easel/prefs.toml
	PageLimit  int    // rows per page; zero uses config
}

// Run boots the easel TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	limit := cfg.PageLimit
	if opts.PageLimit > 0 {
		limit = opts.PageLimit
	}

	client, err := artic.NewClient(cfg.APIURL, limit)
	if err != nil {
		return fmt.Errorf("init artworks client: %w", err)
	}

	// Selection state outlives the session through the store adapter. An
	// absent, expired, or corrupt record simply starts empty.
	selStore := store.New(cfg.DataDir, cfg.SelectionTTL)
	sel := selection.NewState(selStore)
	if rec, ok := selStore.Load(); ok {
		sel.Restore(rec)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Selection: sel,
		Cache:     state.NewCache(0),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
