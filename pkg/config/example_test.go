package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephenwhippuk/expvm1/pkg/config"
)

func ExampleLoad_yaml() {
	ctx := context.Background()
	// Create a temporary YAML config file
	configYAML := `
replacements:
  - old: LEGACY_ORG
    new: ORG
ignore:
  - "vendor/**"
backup: true
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, ".fixbrackets.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load and validate the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	// Print some config details
	fmt.Println(cfg)
	fmt.Printf("First replacement: %s -> %s\n", cfg.Replacements[0].Old, cfg.Replacements[0].New)

	// Output:
	// 1 replacement(s), 1 ignore pattern(s), backup=true
	// First replacement: LEGACY_ORG -> ORG
}

func ExampleLoad_toml() {
	ctx := context.Background()
	// Create a temporary TOML config file
	configTOML := `backup = false
ignore = ["dist/**", "vendor/**"]

[[replacements]]
old = "SCRATCH"
new = "TMP"
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, ".fixbrackets.toml")
	if err := os.WriteFile(configPath, []byte(configTOML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load and validate the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	// Print some config details
	fmt.Println(cfg)
	fmt.Printf("First ignore pattern: %s\n", cfg.Ignore[0])

	// Output:
	// 1 replacement(s), 2 ignore pattern(s), backup=false
	// First ignore pattern: dist/**
}

func ExampleLoad_hcl() {
	ctx := context.Background()
	// Create a temporary HCL config file
	configHCL := `replacement {
  old = "LEGACY_ORG"
  new = "ORG"
}

replacement {
  old = "SCRATCH"
  new = "TMP"
}

backup = true
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, ".fixbrackets.hcl")
	if err := os.WriteFile(configPath, []byte(configHCL), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load and validate the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	// Print some config details
	fmt.Println(cfg)
	fmt.Printf("Second replacement: %s -> %s\n", cfg.Replacements[1].Old, cfg.Replacements[1].New)

	// Output:
	// 2 replacement(s), 0 ignore pattern(s), backup=true
	// Second replacement: SCRATCH -> TMP
}

func ExampleConfig_Validate() {
	cfg := &config.Config{
		Replacements: []config.Replacement{{Old: "", New: "ORG"}},
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
	}

	// Output:
	// Invalid config: replacement 0: old is required
}
