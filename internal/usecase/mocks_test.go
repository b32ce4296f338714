package usecase_test

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockRaffleContract is a mock implementation of RaffleContract
type MockRaffleContract struct {
	mock.Mock
}

func (m *MockRaffleContract) Address() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockRaffleContract) SimulateCreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*big.Int, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockRaffleContract) CreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*domain.TxReceipt, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxReceipt), args.Error(1)
}

func (m *MockRaffleContract) SimulatePickAndMint(ctx context.Context, raffleNum *big.Int) error {
	args := m.Called(ctx, raffleNum)
	return args.Error(0)
}

func (m *MockRaffleContract) PickAndMint(ctx context.Context, raffleNum *big.Int) (*domain.TxReceipt, error) {
	args := m.Called(ctx, raffleNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxReceipt), args.Error(1)
}

func (m *MockRaffleContract) Raffle(ctx context.Context, raffleNum *big.Int) (*domain.Raffle, error) {
	args := m.Called(ctx, raffleNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Raffle), args.Error(1)
}

func (m *MockRaffleContract) Winners(ctx context.Context, raffleNum *big.Int) ([]common.Address, error) {
	args := m.Called(ctx, raffleNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockRaffleContract) Participants(ctx context.Context, raffleNum *big.Int) ([]common.Address, bool, error) {
	args := m.Called(ctx, raffleNum)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]common.Address), args.Bool(1), args.Error(2)
}

func (m *MockRaffleContract) NFTImage(ctx context.Context, raffleNum *big.Int) (string, error) {
	args := m.Called(ctx, raffleNum)
	return args.String(0), args.Error(1)
}

func (m *MockRaffleContract) Name(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockRaffleContract) LastRaffleCount(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) Address() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

// MockChainReader is a mock implementation of ChainReader
type MockChainReader struct {
	mock.Mock
}

func (m *MockChainReader) ChainID(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockChainReader) LatestBlock(ctx context.Context) (*domain.BlockInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlockInfo), args.Error(1)
}

// MockJournal is a mock implementation of Journal
type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) Record(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournal) List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

// MockDeployer is a mock implementation of ContractDeployer
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(ctx context.Context, artifact *domain.Artifact, poap common.Address) (*domain.DeployResult, error) {
	args := m.Called(ctx, artifact, poap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployResult), args.Error(1)
}

// MockArtifactLoader is a mock implementation of ArtifactLoader
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) Load(ctx context.Context, path string) (*domain.Artifact, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockProber is a mock implementation of ChainIDProber
type MockProber struct {
	mock.Mock
}

func (m *MockProber) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// memoryConfigStore keeps local config in memory
type memoryConfigStore struct {
	config *config.LocalConfig
	saved  int
}

func (s *memoryConfigStore) Exists() bool { return s.config != nil }

func (s *memoryConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if s.config == nil {
		return config.DefaultLocalConfig(), nil
	}
	c := *s.config
	return &c, nil
}

func (s *memoryConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	c := *cfg
	s.config = &c
	s.saved++
	return nil
}

func (s *memoryConfigStore) GetPath() string { return "/project/.raffle/config.local.json" }

// noLinks returns no explorer links
type noLinks struct{}

func (noLinks) TxURL(uint64, common.Hash) string         { return "" }
func (noLinks) AddressURL(uint64, common.Address) string { return "" }

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}
