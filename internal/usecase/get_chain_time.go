package usecase

import (
	"context"
	"time"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// GetChainTimeResult compares the latest block time with the local clock
type GetChainTimeResult struct {
	Network string
	Block   domain.BlockInfo
	Local   time.Time
	// Drift is local minus on-chain time
	Drift time.Duration
}

// GetChainTime is a use case for reading the latest block number and timestamp
type GetChainTime struct {
	config *config.RuntimeConfig
	chain  ChainReader
	now    func() time.Time
}

// NewGetChainTime creates a new GetChainTime use case
func NewGetChainTime(cfg *config.RuntimeConfig, chain ChainReader) *GetChainTime {
	return &GetChainTime{config: cfg, chain: chain, now: time.Now}
}

// Run executes the use case
func (uc *GetChainTime) Run(ctx context.Context) (*GetChainTimeResult, error) {
	block, err := uc.chain.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	local := uc.now().Truncate(time.Second)
	return &GetChainTimeResult{
		Network: uc.config.Network.Name,
		Block:   *block,
		Local:   local,
		Drift:   local.Sub(block.Timestamp),
	}, nil
}
