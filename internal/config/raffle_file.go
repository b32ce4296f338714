package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// ConfigFileName is the project file searched for from the working directory up
const ConfigFileName = "raffle.toml"

// loadEnvFiles loads .env files so ${VAR} references can be expanded.
// Variables already present in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadRaffleFile parses raffle.toml without expanding env references.
// A missing file yields the built-in localhost profile.
func loadRaffleFile(projectRoot string) (*config.RaffleFileConfig, string, error) {
	path := filepath.Join(projectRoot, ConfigFileName)

	cfg := &config.RaffleFileConfig{}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, "", fmt.Errorf("failed to stat %s: %w", ConfigFileName, err)
		}
		path = ""
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}
	for name, network := range config.DefaultNetworks() {
		if _, ok := cfg.Networks[name]; !ok {
			cfg.Networks[name] = network
		}
	}

	return cfg, path, nil
}
