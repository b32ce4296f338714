package app

import (
	"log/slog"

	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.RaffleSelector

	// Deployer
	DeployRaffle *usecase.DeployRaffle

	// Raffle client
	CreateRaffle     *usecase.CreateRaffle
	PickAndMint      *usecase.PickAndMint
	ShowRaffle       *usecase.ShowRaffle
	GetWinners       *usecase.GetWinners
	GetNFTImage      *usecase.GetNFTImage
	ShowContractInfo *usecase.ShowContractInfo
	ListRaffles      *usecase.ListRaffles

	// Chain introspection
	GetBalance   *usecase.GetBalance
	GetChainTime *usecase.GetChainTime

	// Management
	ListNetworks *usecase.ListNetworks
	ListHistory  *usecase.ListHistory
	ShowConfig   *usecase.ShowConfig
	SetConfig    *usecase.SetConfig
	RemoveConfig *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.RaffleSelector,
	deployRaffle *usecase.DeployRaffle,
	createRaffle *usecase.CreateRaffle,
	pickAndMint *usecase.PickAndMint,
	showRaffle *usecase.ShowRaffle,
	getWinners *usecase.GetWinners,
	getNFTImage *usecase.GetNFTImage,
	showContractInfo *usecase.ShowContractInfo,
	listRaffles *usecase.ListRaffles,
	getBalance *usecase.GetBalance,
	getChainTime *usecase.GetChainTime,
	listNetworks *usecase.ListNetworks,
	listHistory *usecase.ListHistory,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		Selector:         selector,
		DeployRaffle:     deployRaffle,
		CreateRaffle:     createRaffle,
		PickAndMint:      pickAndMint,
		ShowRaffle:       showRaffle,
		GetWinners:       getWinners,
		GetNFTImage:      getNFTImage,
		ShowContractInfo: showContractInfo,
		ListRaffles:      listRaffles,
		GetBalance:       getBalance,
		GetChainTime:     getChainTime,
		ListNetworks:     listNetworks,
		ListHistory:      listHistory,
		ShowConfig:       showConfig,
		SetConfig:        setConfig,
		RemoveConfig:     removeConfig,
	}, nil
}
