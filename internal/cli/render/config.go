package render

import (
	"fmt"
	"io"

	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Network:   %s\n", result.Network)
	if result.RaffleAddress != "" {
		fmt.Fprintf(r.out, "Address:   %s\n", result.RaffleAddress)
	} else {
		fmt.Fprintf(r.out, "Address:   %s\n", "(not set)")
	}

	if result.ProjectConfig != "" {
		fmt.Fprintf(r.out, "\n📦 Project config: %s\n", relativePath(result.ProjectConfig))
	} else {
		fmt.Fprintf(r.out, "\n📦 No raffle.toml found, using the built-in localhost profile\n")
	}

	if !result.Exists {
		fmt.Fprintf(r.out, "📁 No local overrides (%s)\n", relativePath(result.ConfigPath))
		return nil
	}
	fmt.Fprintf(r.out, "📁 Local overrides: %s\n", relativePath(result.ConfigPath))
	if result.Config.Network != "" {
		fmt.Fprintf(r.out, "   network = %s\n", result.Config.Network)
	}
	if result.Config.Address != "" {
		fmt.Fprintf(r.out, "   address = %s\n", result.Config.Address)
	}
	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (falls back to default_network)\n")
	case config.ConfigKeyAddress:
		fmt.Fprintf(r.out, "✅ Removed address from config (falls back to the network profile)\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}
