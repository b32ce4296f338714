package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// RaffleContract reads and writes a deployed POAPRaffle contract
type RaffleContract interface {
	Address() (common.Address, error)

	// SimulateCreateRaffle runs createRaffle as a static call and returns the
	// raffle number the contract would assign
	SimulateCreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*big.Int, error)
	CreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*domain.TxReceipt, error)

	SimulatePickAndMint(ctx context.Context, raffleNum *big.Int) error
	PickAndMint(ctx context.Context, raffleNum *big.Int) (*domain.TxReceipt, error)

	// Raffle returns the raffles(n) record as-is, including the zeroed record
	// for unknown numbers
	Raffle(ctx context.Context, raffleNum *big.Int) (*domain.Raffle, error)
	Winners(ctx context.Context, raffleNum *big.Int) ([]common.Address, error)
	// Participants returns ok=false when the contract ABI has no participants getter
	Participants(ctx context.Context, raffleNum *big.Int) (participants []common.Address, ok bool, err error)
	NFTImage(ctx context.Context, raffleNum *big.Int) (string, error)
	Name(ctx context.Context) (string, error)
	LastRaffleCount(ctx context.Context) (*big.Int, error)
}

// ContractDeployer submits contract creation transactions
type ContractDeployer interface {
	Deploy(ctx context.Context, artifact *domain.Artifact, poap common.Address) (*domain.DeployResult, error)
}

// ArtifactLoader reads compiled contract artifacts
type ArtifactLoader interface {
	Load(ctx context.Context, path string) (*domain.Artifact, error)
}

// ChainReader answers chain introspection queries
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	LatestBlock(ctx context.Context) (*domain.BlockInfo, error)
}

// Signer exposes the configured transaction signer
type Signer interface {
	Address() (common.Address, error)
}

// ChainIDProber dials an arbitrary RPC endpoint to read its chain id
type ChainIDProber interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Journal records writes made against the chain
type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// RaffleSelector handles interactive selection of raffles
type RaffleSelector interface {
	// SelectRaffle returns the chosen raffle. A single candidate is returned
	// without prompting unless confirm is set.
	SelectRaffle(ctx context.Context, raffles []*domain.Raffle, prompt string, confirm bool) (*domain.Raffle, error)
}

// ExplorerLinker builds block explorer URLs for known chains
type ExplorerLinker interface {
	TxURL(chainID uint64, hash common.Hash) string
	AddressURL(chainID uint64, address common.Address) string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Stage names reported to the progress sink
const (
	StageValidating = "Validating"
	StageSimulating = "Simulating"
	StageSubmitting = "Submitting"
	StageReading    = "Reading"
	StageCompleted  = "Completed"
)
