package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RuntimeConfig is re-exported so callers only need this package
type RuntimeConfig = config.RuntimeConfig

// DataDirName is the per-project state directory
const DataDirName = ".raffle"

// flagKeys maps global flag names onto viper keys
var flagKeys = map[string]string{
	"network":         "network",
	"address":         "address",
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"output":          "output",
	"timeout":         "timeout",
	"no-journal":      "no_journal",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	file, path, err := loadRaffleFile(projectRoot)
	if err != nil {
		return nil, err
	}

	output := strings.ToLower(v.GetString("output"))
	switch output {
	case "", "text":
		output = "text"
	case "json", "yaml":
	default:
		return nil, &domain.ConfigError{Field: "output", Err: fmt.Errorf("unsupported format %q (want text, json or yaml)", output)}
	}

	journal := file.Journal == nil || *file.Journal
	if v.GetBool("no_journal") {
		journal = false
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		ConfigFile:     path,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Output:         output,
		Timeout:        v.GetDuration("timeout"),
		Journal:        journal,
		RaffleFile:     file,
		Contract: config.ContractConfig{
			Artifact:    os.ExpandEnv(file.Contract.Artifact),
			PoapAddress: strings.TrimSpace(os.ExpandEnv(file.Contract.PoapAddress)),
		},
	}
	if cfg.Contract.Artifact != "" && !filepath.IsAbs(cfg.Contract.Artifact) {
		cfg.Contract.Artifact = filepath.Join(projectRoot, cfg.Contract.Artifact)
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = file.DefaultNetwork
	}
	if networkName == "" {
		networkName = config.DefaultNetworkName
	}

	network, err := NewNetworkResolver(file).Resolve(networkName)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	// --address and the local config win over the profile
	cfg.RaffleAddress = strings.TrimSpace(v.GetString("address"))
	if cfg.RaffleAddress == "" {
		cfg.RaffleAddress = network.RaffleAddress
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find raffle.toml.
// Falls back to the working directory so the built-in localhost profile
// remains usable outside a project.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Local overrides written by `raffle config set`
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("RAFFLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", "text")
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return
			}
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
