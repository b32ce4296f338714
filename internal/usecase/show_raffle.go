package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/poap-raffle/raffle-cli/internal/domain"
)

// ShowRaffleParams contains parameters for showing a raffle
type ShowRaffleParams struct {
	RaffleNum string
}

// ShowRaffleResult contains the raffle record and what could be read around it
type ShowRaffleResult struct {
	Raffle              *domain.Raffle
	ParticipantsVisible bool // false when the contract has no participants getter
}

// ShowRaffle is a use case for reading raffles(n) plus winners
type ShowRaffle struct {
	contract RaffleContract
}

// NewShowRaffle creates a new ShowRaffle use case
func NewShowRaffle(contract RaffleContract) *ShowRaffle {
	return &ShowRaffle{contract: contract}
}

// Run executes the use case
func (uc *ShowRaffle) Run(ctx context.Context, params ShowRaffleParams) (*ShowRaffleResult, error) {
	raffleNum, err := parseRaffleNum(params.RaffleNum)
	if err != nil {
		return nil, err
	}

	raffle, err := readRaffle(ctx, uc.contract, raffleNum)
	if err != nil {
		return nil, err
	}

	participants, visible, err := uc.contract.Participants(ctx, raffleNum)
	if err != nil {
		return nil, err
	}
	raffle.Participants = participants

	winners, err := uc.contract.Winners(ctx, raffleNum)
	if err != nil {
		return nil, err
	}
	raffle.Winners = winners

	return &ShowRaffleResult{
		Raffle:              raffle,
		ParticipantsVisible: visible,
	}, nil
}

// readRaffle reads raffles(n) and maps the zeroed record to ErrRaffleNotFound
func readRaffle(ctx context.Context, contract RaffleContract, raffleNum *big.Int) (*domain.Raffle, error) {
	raffle, err := contract.Raffle(ctx, raffleNum)
	if err != nil {
		return nil, err
	}
	if !raffle.Exists() {
		return nil, fmt.Errorf("%w: #%s", domain.ErrRaffleNotFound, raffleNum)
	}
	return raffle, nil
}
