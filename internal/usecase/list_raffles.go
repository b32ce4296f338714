package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/poap-raffle/raffle-cli/internal/domain"
)

const listPrealloc = 64

// ListRafflesParams contains parameters for listing raffles
type ListRafflesParams struct {
	// Limit keeps only the newest raffles; 0 lists all of them
	Limit int
}

// ListRafflesResult contains raffles ordered by number
type ListRafflesResult struct {
	Raffles []*domain.Raffle
	Total   *big.Int
}

// ListRaffles is a use case for reading every raffle up to lastRaffleCount
type ListRaffles struct {
	contract RaffleContract
	progress ProgressSink
}

// NewListRaffles creates a new ListRaffles use case
func NewListRaffles(contract RaffleContract, progress ProgressSink) *ListRaffles {
	return &ListRaffles{contract: contract, progress: progress}
}

// Run executes the use case
func (uc *ListRaffles) Run(ctx context.Context, params ListRafflesParams) (*ListRafflesResult, error) {
	total, err := uc.contract.LastRaffleCount(ctx)
	if err != nil {
		return nil, err
	}
	if total.Sign() < 0 || !total.IsInt64() {
		return nil, fmt.Errorf("lastRaffleCount %s is out of range", total)
	}

	first := big.NewInt(1)
	if params.Limit > 0 {
		from := new(big.Int).Sub(total, big.NewInt(int64(params.Limit-1)))
		if from.Cmp(first) > 0 {
			first = from
		}
	}

	count := 0
	if total.Cmp(first) >= 0 {
		count = int(new(big.Int).Sub(total, first).Int64()) + 1
	}

	raffles := make([]*domain.Raffle, 0, min(count, listPrealloc))
	for i := 0; i < count; i++ {
		num := new(big.Int).Add(first, big.NewInt(int64(i)))
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageReading,
			Current: i + 1,
			Total:   count,
			Message: fmt.Sprintf("raffle #%s", num),
			Spinner: true,
		})

		raffle, err := uc.contract.Raffle(ctx, num)
		if err != nil {
			uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
			return nil, err
		}
		if raffle.Exists() {
			raffles = append(raffles, raffle)
		}
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	return &ListRafflesResult{Raffles: raffles, Total: total}, nil
}
