package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// PickAndMintParams contains parameters for resolving a raffle
type PickAndMintParams struct {
	RaffleNum string
}

// PickAndMintResult contains the result of resolving a raffle
type PickAndMintResult struct {
	Contract    common.Address
	RaffleNum   *big.Int
	Tx          *domain.TxReceipt
	Winners     []common.Address
	NFTImage    string
	ChainID     uint64
	ExplorerURL string
	Warnings    []string
}

// PickAndMint is a use case for selecting winners and minting
type PickAndMint struct {
	config   *config.RuntimeConfig
	contract RaffleContract
	signer   Signer
	chain    ChainReader
	journal  Journal
	links    ExplorerLinker
	progress ProgressSink
	log      *slog.Logger
}

// NewPickAndMint creates a new PickAndMint use case
func NewPickAndMint(
	cfg *config.RuntimeConfig,
	contract RaffleContract,
	signer Signer,
	chain ChainReader,
	journal Journal,
	links ExplorerLinker,
	progress ProgressSink,
	log *slog.Logger,
) *PickAndMint {
	return &PickAndMint{
		config:   cfg,
		contract: contract,
		signer:   signer,
		chain:    chain,
		journal:  journal,
		links:    links,
		progress: progress,
		log:      log,
	}
}

// Run executes the use case. Rejections from the contract (not expired,
// already resolved, unknown raffle) are returned as they come.
func (uc *PickAndMint) Run(ctx context.Context, params PickAndMintParams) (*PickAndMintResult, error) {
	raffleNum, err := parseRaffleNum(params.RaffleNum)
	if err != nil {
		return nil, err
	}

	from, err := uc.signer.Address()
	if err != nil {
		return nil, err
	}

	address, err := uc.contract.Address()
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSimulating, Message: fmt.Sprintf("pickAndMint #%s static call", raffleNum), Spinner: true})
	if err := uc.contract.SimulatePickAndMint(ctx, raffleNum); err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("pickAndMint dry run: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: fmt.Sprintf("pickAndMint #%s", raffleNum), Spinner: true})
	receipt, err := uc.contract.PickAndMint(ctx, raffleNum)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	result := &PickAndMintResult{
		Contract:  address,
		RaffleNum: raffleNum,
		Tx:        receipt,
	}

	if receipt != nil {
		if chainID, idErr := uc.chain.ChainID(ctx); idErr == nil {
			result.ChainID = chainID.Uint64()
			result.ExplorerURL = uc.links.TxURL(result.ChainID, receipt.Hash)
		}
		if jErr := uc.journal.Record(ctx, &domain.JournalEntry{
			Kind:        domain.JournalPickAndMint,
			Network:     uc.config.Network.Name,
			ChainID:     result.ChainID,
			Contract:    address.Hex(),
			RaffleNum:   raffleNum.String(),
			TxHash:      receipt.Hash.Hex(),
			From:        from.Hex(),
			Status:      receiptStatus(receipt),
			GasUsed:     receipt.GasUsed,
			BlockNumber: receipt.BlockNumber,
		}); jErr != nil {
			uc.log.Warn("failed to journal pickAndMint", "error", jErr)
			result.Warnings = append(result.Warnings, fmt.Sprintf("journal: %v", jErr))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("pickAndMint: %w", err)
	}

	if winners, err := uc.contract.Winners(ctx, raffleNum); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not read winners: %v", err))
	} else {
		result.Winners = winners
	}
	if image, err := uc.contract.NFTImage(ctx, raffleNum); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not read NFT image: %v", err))
	} else {
		result.NFTImage = image
	}

	return result, nil
}
