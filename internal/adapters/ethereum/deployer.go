package ethereum

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

const methodConstructor = "constructor"

// Deployer submits contract creation transactions
type Deployer struct {
	backend Backend
	signer  *Signer
	log     *slog.Logger
}

// NewDeployer creates a new deployer
func NewDeployer(backend Backend, signer *Signer, log *slog.Logger) *Deployer {
	return &Deployer{
		backend: backend,
		signer:  signer,
		log:     log.With("component", "deployer"),
	}
}

// Deploy creates the contract with the POAP address as its constructor argument
func (d *Deployer) Deploy(ctx context.Context, artifact *domain.Artifact, poap common.Address) (*domain.DeployResult, error) {
	opts, err := d.signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, d.backend, poap)
	if err != nil {
		return nil, wrapCallError(methodConstructor, err)
	}
	d.log.Debug("deployment sent", "tx", tx.Hash(), "address", address, "gas", tx.Gas())

	receipt, err := waitReceipt(ctx, d.backend, methodConstructor, opts.From, tx)
	if err != nil {
		return nil, err
	}

	return &domain.DeployResult{
		Address: address,
		Tx:      *receipt,
	}, nil
}

var _ usecase.ContractDeployer = (*Deployer)(nil)
