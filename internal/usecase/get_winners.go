package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// GetWinnersParams contains parameters for reading winners
type GetWinnersParams struct {
	RaffleNum string
}

// GetWinnersResult contains the winners of a raffle
type GetWinnersResult struct {
	RaffleNum *big.Int
	Winners   []common.Address
}

// GetWinners is a use case for reading getWinners(n)
type GetWinners struct {
	contract RaffleContract
}

// NewGetWinners creates a new GetWinners use case
func NewGetWinners(contract RaffleContract) *GetWinners {
	return &GetWinners{contract: contract}
}

// Run executes the use case
func (uc *GetWinners) Run(ctx context.Context, params GetWinnersParams) (*GetWinnersResult, error) {
	raffleNum, err := parseRaffleNum(params.RaffleNum)
	if err != nil {
		return nil, err
	}

	winners, err := uc.contract.Winners(ctx, raffleNum)
	if err != nil {
		return nil, err
	}

	return &GetWinnersResult{RaffleNum: raffleNum, Winners: winners}, nil
}
