//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/poap-raffle/raffle-cli/internal/adapters"
	"github.com/poap-raffle/raffle-cli/internal/config"
	"github.com/poap-raffle/raffle-cli/internal/logging"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployRaffle,
		usecase.NewCreateRaffle,
		usecase.NewPickAndMint,
		usecase.NewShowRaffle,
		usecase.NewGetWinners,
		usecase.NewGetNFTImage,
		usecase.NewShowContractInfo,
		usecase.NewListRaffles,
		usecase.NewGetBalance,
		usecase.NewGetChainTime,
		usecase.NewListNetworks,
		usecase.NewListHistory,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
