package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// ShowContractInfoResult contains contract-level values
type ShowContractInfoResult struct {
	Network     string
	ChainID     uint64
	Info        domain.ContractInfo
	ExplorerURL string
}

// ShowContractInfo is a use case for reading name() and lastRaffleCount()
type ShowContractInfo struct {
	config   *config.RuntimeConfig
	contract RaffleContract
	chain    ChainReader
	links    ExplorerLinker
}

// NewShowContractInfo creates a new ShowContractInfo use case
func NewShowContractInfo(cfg *config.RuntimeConfig, contract RaffleContract, chain ChainReader, links ExplorerLinker) *ShowContractInfo {
	return &ShowContractInfo{
		config:   cfg,
		contract: contract,
		chain:    chain,
		links:    links,
	}
}

// Run executes the use case
func (uc *ShowContractInfo) Run(ctx context.Context) (*ShowContractInfoResult, error) {
	address, err := uc.contract.Address()
	if err != nil {
		return nil, err
	}

	name, err := uc.contract.Name(ctx)
	if err != nil {
		return nil, err
	}

	count, err := uc.contract.LastRaffleCount(ctx)
	if err != nil {
		return nil, err
	}

	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowContractInfoResult{
		Network: uc.config.Network.Name,
		ChainID: chainID.Uint64(),
		Info: domain.ContractInfo{
			Address:         address,
			Name:            name,
			LastRaffleCount: new(big.Int).Set(count),
		},
		ExplorerURL: uc.links.AddressURL(chainID.Uint64(), common.Address(address)),
	}, nil
}
