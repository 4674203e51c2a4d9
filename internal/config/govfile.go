package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

// GovFileName is the name of the profile file
const GovFileName = "govctl.toml"

// findGovFile returns the first govctl.toml found in the given directories
func findGovFile(dirs ...string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, GovFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadGovFile loads and parses govctl.toml. The .env files next to it are
// loaded first so profile values can reference them.
// Returns (nil, nil) when path is empty.
func loadGovFile(path string) (*config.GovFileConfig, error) {
	if path == "" {
		return nil, nil
	}

	dir := filepath.Dir(path)
	for _, envFile := range []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	var cfg config.GovFileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GovFileName, err)
	}

	for name, profile := range cfg.Profile {
		profile.APIURL = os.ExpandEnv(profile.APIURL)
		profile.Token = os.ExpandEnv(profile.Token)
		profile.Organization = os.ExpandEnv(profile.Organization)
		profile.Timeout = os.ExpandEnv(profile.Timeout)
		cfg.Profile[name] = profile
	}

	return &cfg, nil
}
