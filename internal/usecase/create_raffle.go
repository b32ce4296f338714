package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/samber/lo"
)

// DefaultRaffleDuration is how long a raffle stays open when neither an
// expiry nor a duration is given
const DefaultRaffleDuration = 10 * time.Second

// CreateRaffleParams contains parameters for creating a raffle
type CreateRaffleParams struct {
	EventNum     string `validate:"required,number"`
	WinnersNum   string `validate:"required,number"`
	Expiry       string `validate:"omitempty,number"` // unix seconds; wins over Duration
	Duration     time.Duration
	Participants []string `validate:"min=1,dive,eth_addr"`
	TokenURI     string
}

// CreateRaffleResult contains the result of creating a raffle
type CreateRaffleResult struct {
	Contract    common.Address
	Predicted   *big.Int
	Spec        *domain.RaffleSpec
	Tx          *domain.TxReceipt
	Raffle      *domain.Raffle // read back after mining, nil if the read failed
	ChainID     uint64
	ExplorerURL string
	Warnings    []string
}

// CreateRaffle is a use case for creating a raffle: dry-run, submit, read back
type CreateRaffle struct {
	config   *config.RuntimeConfig
	contract RaffleContract
	signer   Signer
	chain    ChainReader
	journal  Journal
	links    ExplorerLinker
	progress ProgressSink
	log      *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewCreateRaffle creates a new CreateRaffle use case
func NewCreateRaffle(
	cfg *config.RuntimeConfig,
	contract RaffleContract,
	signer Signer,
	chain ChainReader,
	journal Journal,
	links ExplorerLinker,
	progress ProgressSink,
	log *slog.Logger,
) *CreateRaffle {
	return &CreateRaffle{
		config:   cfg,
		contract: contract,
		signer:   signer,
		chain:    chain,
		journal:  journal,
		links:    links,
		progress: progress,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Run executes the use case
func (uc *CreateRaffle) Run(ctx context.Context, params CreateRaffleParams) (*CreateRaffleResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageValidating, Message: "checking raffle parameters"})

	spec, err := uc.buildSpec(params)
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

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSimulating, Message: "createRaffle static call", Spinner: true})
	predicted, err := uc.contract.SimulateCreateRaffle(ctx, spec)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("createRaffle dry run: %w", err)
	}
	uc.log.Debug("predicted raffle number", "raffleNum", predicted)

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("createRaffle #%s", predicted),
		Spinner: true,
	})
	receipt, err := uc.contract.CreateRaffle(ctx, spec)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	result := &CreateRaffleResult{
		Contract:  address,
		Predicted: predicted,
		Spec:      spec,
		Tx:        receipt,
	}

	if receipt != nil {
		if chainID, idErr := uc.chain.ChainID(ctx); idErr == nil {
			result.ChainID = chainID.Uint64()
			result.ExplorerURL = uc.links.TxURL(result.ChainID, receipt.Hash)
		}
		uc.record(ctx, result, from, receipt)
	}
	if err != nil {
		return nil, fmt.Errorf("createRaffle: %w", err)
	}

	raffle, err := uc.contract.Raffle(ctx, predicted)
	switch {
	case err != nil:
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not read raffle #%s back: %v", predicted, err))
	case raffle.RaffleNum.Cmp(predicted) != 0:
		result.Warnings = append(result.Warnings, fmt.Sprintf("raffle #%s reads back as #%s; another raffle may have been created concurrently", predicted, raffle.RaffleNum))
		result.Raffle = raffle
	default:
		raffle.Participants = spec.Participants
		result.Raffle = raffle
	}

	return result, nil
}

// buildSpec validates params and converts them to contract argument types.
// These checks catch obvious mistakes early; the contract still enforces its own rules.
func (uc *CreateRaffle) buildSpec(params CreateRaffleParams) (*domain.RaffleSpec, error) {
	params.Participants = lo.Map(params.Participants, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})

	if err := uc.validate.Struct(params); err != nil {
		return nil, invalidParams(err)
	}

	eventNum, err := parseUint256("eventNum", params.EventNum)
	if err != nil {
		return nil, err
	}
	winnersNum, err := parseUint256("winnersNum", params.WinnersNum)
	if err != nil {
		return nil, err
	}

	participants := lo.Map(params.Participants, func(p string, _ int) common.Address {
		return common.HexToAddress(p)
	})
	if dups := lo.FindDuplicates(participants); len(dups) > 0 {
		return nil, fmt.Errorf("%w: duplicate participants: %s", domain.ErrInvalidRaffleParams,
			strings.Join(lo.Map(dups, func(a common.Address, _ int) string { return a.Hex() }), ", "))
	}
	if winnersNum.Sign() == 0 || winnersNum.Cmp(big.NewInt(int64(len(participants)))) > 0 {
		return nil, fmt.Errorf("%w: winnersNum must be between 1 and %d (participants), got %s",
			domain.ErrInvalidRaffleParams, len(participants), winnersNum)
	}

	now := uc.now()
	var expiry *big.Int
	if params.Expiry != "" {
		expiry, err = parseUint256("expiry", params.Expiry)
		if err != nil {
			return nil, err
		}
	} else {
		duration := params.Duration
		if duration == 0 {
			duration = DefaultRaffleDuration
		}
		expiry = big.NewInt(now.Add(duration).Unix())
	}
	if expiry.Cmp(big.NewInt(now.Unix())) <= 0 {
		return nil, fmt.Errorf("%w: expiry %s is not in the future (now %d)", domain.ErrInvalidRaffleParams, expiry, now.Unix())
	}

	return &domain.RaffleSpec{
		EventNum:     eventNum,
		WinnersNum:   winnersNum,
		Expiry:       expiry,
		Participants: participants,
		TokenURI:     params.TokenURI,
	}, nil
}

func (uc *CreateRaffle) record(ctx context.Context, result *CreateRaffleResult, from common.Address, receipt *domain.TxReceipt) {
	err := uc.journal.Record(ctx, &domain.JournalEntry{
		Kind:        domain.JournalCreate,
		Network:     uc.config.Network.Name,
		ChainID:     result.ChainID,
		Contract:    result.Contract.Hex(),
		RaffleNum:   result.Predicted.String(),
		TxHash:      receipt.Hash.Hex(),
		From:        from.Hex(),
		Status:      receiptStatus(receipt),
		GasUsed:     receipt.GasUsed,
		BlockNumber: receipt.BlockNumber,
	})
	if err != nil {
		uc.log.Warn("failed to journal createRaffle", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("journal: %v", err))
	}
}

// invalidParams turns validator errors into a readable ErrInvalidRaffleParams
func invalidParams(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRaffleParams, err)
	}

	msgs := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "number":
			return fmt.Sprintf("%s must be a non-negative integer, got %q", fe.Field(), fe.Value())
		case "min":
			return fmt.Sprintf("%s needs at least %s entry", fe.Field(), fe.Param())
		case "eth_addr":
			return fmt.Sprintf("%s is not a valid address: %q", fe.Namespace(), fe.Value())
		default:
			return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
		}
	})
	return fmt.Errorf("%w: %s", domain.ErrInvalidRaffleParams, strings.Join(msgs, "; "))
}
