package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields easel needs to talk to the artworks API and to
// persist selection state.
type Config struct {
	APIURL       string
	PageLimit    int
	DataDir      string
	SelectionTTL time.Duration
}

const (
	defaultConfigPath = "~/.config/easel/config.toml"
	defaultDataDir    = "~/.local/share/easel"
	defaultAPIURL     = "https://api.artic.edu"
	defaultPageLimit  = 25
	maxPageLimit      = 100
	defaultTTLHours   = 24
)

// Load locates and parses the easel config, falling back to defaults when
// missing. A missing file is not an error; easel works without configuration.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIURL:       defaultAPIURL,
		PageLimit:    defaultPageLimit,
		DataDir:      defaultDataDir,
		SelectionTTL: defaultTTLHours * time.Hour,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL            string `toml:"api_url"`
		PageLimit         int    `toml:"page_limit"`
		DataDir           string `toml:"data_dir"`
		SelectionTTLHours int    `toml:"selection_ttl_hours"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.APIURL); url != "" {
		cfg.APIURL = url
	}
	if raw.PageLimit >= 1 && raw.PageLimit <= maxPageLimit {
		cfg.PageLimit = raw.PageLimit
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = dir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)
	if raw.SelectionTTLHours > 0 {
		cfg.SelectionTTL = time.Duration(raw.SelectionTTLHours) * time.Hour
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
