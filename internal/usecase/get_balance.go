package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// GetBalanceParams contains parameters for reading a balance
type GetBalanceParams struct {
	// Address defaults to the profile's account, then the signer
	Address string
}

// GetBalanceResult contains the balance and where the address came from
type GetBalanceResult struct {
	Network string
	Balance domain.Balance
	Source  string // "argument", "account" or "signer"
}

// GetBalance is a use case for reading an account balance
type GetBalance struct {
	config *config.RuntimeConfig
	chain  ChainReader
	signer Signer
}

// NewGetBalance creates a new GetBalance use case
func NewGetBalance(cfg *config.RuntimeConfig, chain ChainReader, signer Signer) *GetBalance {
	return &GetBalance{config: cfg, chain: chain, signer: signer}
}

// Run executes the use case
func (uc *GetBalance) Run(ctx context.Context, params GetBalanceParams) (*GetBalanceResult, error) {
	account, source, err := uc.resolveAccount(params.Address)
	if err != nil {
		return nil, err
	}

	wei, err := uc.chain.Balance(ctx, account)
	if err != nil {
		return nil, err
	}

	return &GetBalanceResult{
		Network: uc.config.Network.Name,
		Balance: domain.Balance{Address: account, Wei: wei},
		Source:  source,
	}, nil
}

func (uc *GetBalance) resolveAccount(arg string) (common.Address, string, error) {
	if arg != "" {
		addr, err := parseAddress("address", arg)
		return addr, "argument", err
	}
	if uc.config.Network.Account != "" {
		addr, err := parseAddress("networks."+uc.config.Network.Name+".account", uc.config.Network.Account)
		return addr, "account", err
	}
	addr, err := uc.signer.Address()
	return addr, "signer", err
}
