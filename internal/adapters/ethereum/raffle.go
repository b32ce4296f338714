package ethereum

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// RaffleContract binds the POAPRaffle contract at the configured address
type RaffleContract struct {
	cfg     *config.RuntimeConfig
	backend Backend
	signer  *Signer
	loader  *ArtifactLoader
	log     *slog.Logger

	once     sync.Once
	address  common.Address
	abi      abi.ABI
	fields   [len(rafflesFields)]int
	contract *bind.BoundContract
	initErr  error
}

// NewRaffleContract creates a new raffle contract adapter
func NewRaffleContract(cfg *config.RuntimeConfig, backend Backend, signer *Signer, loader *ArtifactLoader, log *slog.Logger) *RaffleContract {
	return &RaffleContract{
		cfg:     cfg,
		backend: backend,
		signer:  signer,
		loader:  loader,
		log:     log.With("component", "raffle"),
	}
}

func (r *RaffleContract) bound(ctx context.Context) (*bind.BoundContract, error) {
	r.once.Do(func() {
		if r.cfg.RaffleAddress == "" {
			r.initErr = &domain.ConfigError{Field: "raffle_address", Err: domain.ErrNoRaffleAddress}
			return
		}
		if !common.IsHexAddress(r.cfg.RaffleAddress) {
			r.initErr = &domain.ConfigError{
				Field: "raffle_address",
				Err:   fmt.Errorf("%w: %q", domain.ErrInvalidAddress, r.cfg.RaffleAddress),
			}
			return
		}
		r.address = common.HexToAddress(r.cfg.RaffleAddress)

		if r.cfg.Contract.Artifact != "" {
			artifact, err := r.loader.Load(ctx, r.cfg.Contract.Artifact)
			if err != nil {
				r.initErr = err
				return
			}
			fields, err := checkRaffleABI(&artifact.ABI)
			if err != nil {
				r.initErr = &domain.ConfigError{Field: "contract.artifact", Err: err}
				return
			}
			r.abi = artifact.ABI
			r.fields = fields
		} else {
			parsed, err := BuiltinRaffleABI()
			if err != nil {
				r.initErr = err
				return
			}
			r.abi = parsed
			r.fields, r.initErr = rafflesLayout(parsed.Methods[MethodRaffles])
			if r.initErr != nil {
				return
			}
		}

		r.contract = bind.NewBoundContract(r.address, r.abi, r.backend, r.backend, r.backend)
	})
	return r.contract, r.initErr
}

// Address returns the configured contract address
func (r *RaffleContract) Address() (common.Address, error) {
	if _, err := r.bound(context.Background()); err != nil {
		return common.Address{}, err
	}
	return r.address, nil
}

func (r *RaffleContract) call(ctx context.Context, opts *bind.CallOpts, method string, args ...interface{}) ([]interface{}, error) {
	contract, err := r.bound(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &bind.CallOpts{}
	}
	opts.Context = ctx

	var out []interface{}
	if err := contract.Call(opts, &out, method, args...); err != nil {
		return nil, wrapCallError(method, err)
	}
	return out, nil
}

// simulate runs a write method as a static call from the signer's account
func (r *RaffleContract) simulate(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if _, err := r.bound(ctx); err != nil {
		return nil, err
	}
	from, err := r.signer.Address()
	if err != nil {
		return nil, err
	}
	r.log.Debug("static call", "method", method, "from", from)
	return r.call(ctx, &bind.CallOpts{From: from}, method, args...)
}

// transact submits a write and blocks until it is mined. A mined receipt with
// a failed status is returned together with the error.
func (r *RaffleContract) transact(ctx context.Context, method string, args ...interface{}) (*domain.TxReceipt, error) {
	contract, err := r.bound(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := r.signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return nil, wrapCallError(method, err)
	}
	r.log.Debug("transaction sent", "method", method, "tx", tx.Hash(), "nonce", tx.Nonce(), "gas", tx.Gas())

	return waitReceipt(ctx, r.backend, method, opts.From, tx)
}

func waitReceipt(ctx context.Context, backend Backend, method string, from common.Address, tx *types.Transaction) (*domain.TxReceipt, error) {
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, &domain.TransportError{Op: "wait " + method, Err: fmt.Errorf("tx %s: %w", tx.Hash().Hex(), err)}
	}

	result := toReceipt(receipt, from)
	if receipt.Status != types.ReceiptStatusSuccessful {
		return result, &domain.RevertError{Method: method, Reason: fmt.Sprintf("tx %s failed in block %d", tx.Hash().Hex(), result.BlockNumber)}
	}
	return result, nil
}

func toReceipt(receipt *types.Receipt, from common.Address) *domain.TxReceipt {
	result := &domain.TxReceipt{
		Hash:    receipt.TxHash,
		From:    from,
		GasUsed: receipt.GasUsed,
		Status:  receipt.Status,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result
}

func specArgs(spec *domain.RaffleSpec) []interface{} {
	return []interface{}{spec.EventNum, spec.WinnersNum, spec.Expiry, spec.Participants, spec.TokenURI}
}

// SimulateCreateRaffle predicts the raffle number createRaffle would assign
func (r *RaffleContract) SimulateCreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*big.Int, error) {
	out, err := r.simulate(ctx, MethodCreateRaffle, specArgs(spec)...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// CreateRaffle submits createRaffle and waits for it to be mined
func (r *RaffleContract) CreateRaffle(ctx context.Context, spec *domain.RaffleSpec) (*domain.TxReceipt, error) {
	return r.transact(ctx, MethodCreateRaffle, specArgs(spec)...)
}

// SimulatePickAndMint dry-runs pickAndMint
func (r *RaffleContract) SimulatePickAndMint(ctx context.Context, raffleNum *big.Int) error {
	_, err := r.simulate(ctx, MethodPickAndMint, raffleNum)
	return err
}

// PickAndMint submits pickAndMint and waits for it to be mined
func (r *RaffleContract) PickAndMint(ctx context.Context, raffleNum *big.Int) (*domain.TxReceipt, error) {
	return r.transact(ctx, MethodPickAndMint, raffleNum)
}

// Raffle reads the raffles(n) public mapping
func (r *RaffleContract) Raffle(ctx context.Context, raffleNum *big.Int) (*domain.Raffle, error) {
	out, err := r.call(ctx, nil, MethodRaffles, raffleNum)
	if err != nil {
		return nil, err
	}
	if len(out) != len(r.fields) {
		return nil, fmt.Errorf("%s: unexpected output length %d", MethodRaffles, len(out))
	}

	field := func(i int) interface{} { return out[r.fields[i]] }
	return &domain.Raffle{
		RaffleNum:  *abi.ConvertType(field(0), new(*big.Int)).(**big.Int),
		EventNum:   *abi.ConvertType(field(1), new(*big.Int)).(**big.Int),
		WinnersNum: *abi.ConvertType(field(2), new(*big.Int)).(**big.Int),
		Expiry:     *abi.ConvertType(field(3), new(*big.Int)).(**big.Int),
		TokenURI:   *abi.ConvertType(field(4), new(string)).(*string),
	}, nil
}

// Winners reads getWinners(n)
func (r *RaffleContract) Winners(ctx context.Context, raffleNum *big.Int) ([]common.Address, error) {
	out, err := r.call(ctx, nil, MethodGetWinners, raffleNum)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// Participants reads getParticipants(n) when the contract exposes it
func (r *RaffleContract) Participants(ctx context.Context, raffleNum *big.Int) ([]common.Address, bool, error) {
	if _, err := r.bound(ctx); err != nil {
		return nil, false, err
	}
	if _, ok := r.abi.Methods[MethodGetParticipants]; !ok {
		return nil, false, nil
	}

	out, err := r.call(ctx, nil, MethodGetParticipants, raffleNum)
	if err != nil {
		return nil, true, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), true, nil
}

// NFTImage reads getNFTImage(n)
func (r *RaffleContract) NFTImage(ctx context.Context, raffleNum *big.Int) (string, error) {
	out, err := r.call(ctx, nil, MethodGetNFTImage, raffleNum)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Name reads name()
func (r *RaffleContract) Name(ctx context.Context) (string, error) {
	out, err := r.call(ctx, nil, MethodName)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// LastRaffleCount reads lastRaffleCount()
func (r *RaffleContract) LastRaffleCount(ctx context.Context) (*big.Int, error) {
	out, err := r.call(ctx, nil, MethodLastRaffleCount)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

var _ usecase.RaffleContract = (*RaffleContract)(nil)
