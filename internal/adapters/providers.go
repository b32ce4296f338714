package adapters

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"
	internalconfig "github.com/poap-raffle/raffle-cli/internal/adapters/config"
	"github.com/poap-raffle/raffle-cli/internal/adapters/ethereum"
	"github.com/poap-raffle/raffle-cli/internal/adapters/fs"
	"github.com/poap-raffle/raffle-cli/internal/adapters/interactive"
	"github.com/poap-raffle/raffle-cli/internal/adapters/journal"
	"github.com/poap-raffle/raffle-cli/internal/adapters/network"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// EthereumSet provides the RPC client, signer and contract bindings
var EthereumSet = wire.NewSet(
	ethereum.NewClient,
	wire.Bind(new(ethereum.Backend), new(*ethclient.Client)),

	ethereum.NewSigner,
	wire.Bind(new(usecase.Signer), new(*ethereum.Signer)),

	ethereum.NewArtifactLoader,
	wire.Bind(new(usecase.ArtifactLoader), new(*ethereum.ArtifactLoader)),

	ethereum.NewRaffleContract,
	wire.Bind(new(usecase.RaffleContract), new(*ethereum.RaffleContract)),

	ethereum.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*ethereum.Deployer)),

	ethereum.NewChainReader,
	wire.Bind(new(usecase.ChainReader), new(*ethereum.ChainReader)),

	ethereum.NewChainIDProber,
	wire.Bind(new(usecase.ChainIDProber), new(*ethereum.ChainIDProber)),
)

// JournalSet provides the local transaction journal
var JournalSet = wire.NewSet(
	journal.Provide,
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.RaffleSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// NetworkSet provides explorer links for known chains
var NetworkSet = wire.NewSet(
	network.NewExplorers,
	wire.Bind(new(usecase.ExplorerLinker), new(*network.Explorers)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	EthereumSet,
	JournalSet,
	FSSet,
	InteractiveSet,
	ConfigSet,
	NetworkSet,
)
