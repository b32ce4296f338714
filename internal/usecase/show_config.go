package usecase

import (
	"context"

	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// ShowConfigResult contains the saved overrides and the effective context
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool

	// Effective values after flags, env and raffle.toml are applied
	Network       string
	RaffleAddress string
	ProjectConfig string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigRepository) *ShowConfig {
	return &ShowConfig{
		config: cfg,
		store:  store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := &ShowConfigResult{
		Config:        local,
		ConfigPath:    uc.store.GetPath(),
		Exists:        exists,
		RaffleAddress: uc.config.RaffleAddress,
		ProjectConfig: uc.config.ConfigFile,
	}
	if uc.config.Network != nil {
		result.Network = uc.config.Network.Name
	}
	return result, nil
}
