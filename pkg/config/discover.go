package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Search order: dotfiles in the working directory first, then the XDG
// config directory. The first candidate that exists wins; a candidate that
// exists but fails to parse is an error, not a skip.
var (
	dotfileNames = []string{
		".fixbrackets.yaml",
		".fixbrackets.yml",
		".fixbrackets.toml",
		".fixbrackets.hcl",
		".fixbrackets.json",
	}
	xdgNames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.hcl",
		"config.json",
	}
)

// 🎯 Discover searches dir and the XDG config directory for a config file
// and loads the first one found. Returns nil without error when no config
// file exists anywhere.
func Discover(ctx context.Context, dir string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	candidates := make([]string, 0, len(dotfileNames)+len(xdgNames))
	for _, name := range dotfileNames {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, name := range xdgNames {
		candidates = append(candidates, filepath.Join(xdg.ConfigHome, "fixbrackets", name))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Errorf("checking config candidate %s: %w", candidate, err)
		}
		logger.Debug().Str("path", candidate).Msg("config file found")
		return Load(ctx, candidate)
	}

	logger.Debug().Msg("no config file found")
	return nil, nil
}
