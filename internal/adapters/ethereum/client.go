package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// Backend is the part of ethclient.Client the adapters depend on
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

var _ Backend = (*ethclient.Client)(nil)

// NewClient connects to the selected network's RPC endpoint. HTTP endpoints
// are connected lazily so no request is made until the first call.
func NewClient(cfg *config.RuntimeConfig) (*ethclient.Client, func(), error) {
	if cfg.Network == nil {
		return nil, nil, &domain.ConfigError{Field: "network", Err: domain.ErrNetworkNotFound}
	}

	field := "networks." + cfg.Network.Name + ".url"
	u, err := url.Parse(cfg.Network.RPCURL)
	if err != nil {
		return nil, nil, &domain.ConfigError{Field: field, Err: err}
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	case "":
		// IPC path
	default:
		return nil, nil, &domain.ConfigError{Field: field, Err: fmt.Errorf("unsupported RPC scheme %q", u.Scheme)}
	}

	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, nil, &domain.TransportError{Op: "dial " + cfg.Network.Name, Err: err}
	}

	return client, client.Close, nil
}

// ChainIDProber reads chain ids from arbitrary endpoints
type ChainIDProber struct {
	timeout time.Duration
}

// NewChainIDProber creates a prober with a per-endpoint timeout
func NewChainIDProber() *ChainIDProber {
	return &ChainIDProber{timeout: 5 * time.Second}
}

// ProbeChainID dials rpcURL and returns its chain id
func (p *ChainIDProber) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, &domain.TransportError{Op: "dial", Err: err}
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, &domain.TransportError{Op: "eth_chainId", Err: err}
	}

	return chainID.Uint64(), nil
}
