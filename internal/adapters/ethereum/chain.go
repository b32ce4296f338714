package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// ChainReader answers chain introspection queries
type ChainReader struct {
	backend Backend
	signer  *Signer
}

// NewChainReader creates a new chain reader
func NewChainReader(backend Backend, signer *Signer) *ChainReader {
	return &ChainReader{backend: backend, signer: signer}
}

// ChainID returns the connected chain id
func (c *ChainReader) ChainID(ctx context.Context) (*big.Int, error) {
	return c.signer.ChainID(ctx)
}

// Balance returns the latest balance of account in wei
func (c *ChainReader) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, &domain.TransportError{Op: "eth_getBalance", Err: err}
	}
	return balance, nil
}

// LatestBlock returns the latest block number and its on-chain timestamp
func (c *ChainReader) LatestBlock(ctx context.Context) (*domain.BlockInfo, error) {
	number, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return nil, &domain.TransportError{Op: "eth_blockNumber", Err: err}
	}

	header, err := c.backend.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return nil, &domain.TransportError{Op: "eth_getBlockByNumber", Err: err}
	}

	return &domain.BlockInfo{
		Number:    number,
		Timestamp: time.Unix(int64(header.Time), 0),
	}, nil
}

var (
	_ usecase.ChainReader = (*ChainReader)(nil)
	_ usecase.Signer      = (*Signer)(nil)
)
