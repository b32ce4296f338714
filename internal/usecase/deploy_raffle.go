package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// DeployRaffleParams contains parameters for deploying the raffle contract
type DeployRaffleParams struct {
	PoapAddress string // constructor argument; falls back to contract.poap_address
	Artifact    string // falls back to contract.artifact
}

// DeployRaffleResult contains the result of a deployment
type DeployRaffleResult struct {
	Network     string
	ChainID     uint64
	Artifact    string
	PoapAddress common.Address
	Address     common.Address
	Tx          domain.TxReceipt
	ExplorerURL string
	Warnings    []string
}

// DeployRaffle is a use case for deploying the POAPRaffle contract
type DeployRaffle struct {
	config   *config.RuntimeConfig
	loader   ArtifactLoader
	signer   Signer
	deployer ContractDeployer
	chain    ChainReader
	journal  Journal
	links    ExplorerLinker
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployRaffle creates a new DeployRaffle use case
func NewDeployRaffle(
	cfg *config.RuntimeConfig,
	loader ArtifactLoader,
	signer Signer,
	deployer ContractDeployer,
	chain ChainReader,
	journal Journal,
	links ExplorerLinker,
	progress ProgressSink,
	log *slog.Logger,
) *DeployRaffle {
	return &DeployRaffle{
		config:   cfg,
		loader:   loader,
		signer:   signer,
		deployer: deployer,
		chain:    chain,
		journal:  journal,
		links:    links,
		progress: progress,
		log:      log,
	}
}

// Run executes the use case. Every local check runs before the first RPC so a
// bad constructor argument never reaches the chain.
func (uc *DeployRaffle) Run(ctx context.Context, params DeployRaffleParams) (*DeployRaffleResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageValidating, Message: "checking constructor argument"})

	poapValue := params.PoapAddress
	if poapValue == "" {
		poapValue = uc.config.Contract.PoapAddress
	}
	if poapValue == "" {
		poapValue = config.DefaultPoapAddress
	}
	poap, err := parseAddress("poap", poapValue)
	if err != nil {
		return nil, err
	}

	artifactPath := params.Artifact
	if artifactPath == "" {
		artifactPath = uc.config.Contract.Artifact
	}
	artifact, err := uc.loader.Load(ctx, artifactPath)
	if err != nil {
		return nil, err
	}
	if err := checkConstructor(artifact); err != nil {
		return nil, &domain.ConfigError{Field: "contract.artifact", Err: err}
	}

	from, err := uc.signer.Address()
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("deploying %s to %s", artifact.Name, uc.config.Network.Name),
		Spinner: true,
	})

	deployed, err := uc.deployer.Deploy(ctx, artifact, poap)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("deployment failed: %w", err)
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	result := &DeployRaffleResult{
		Network:     uc.config.Network.Name,
		Artifact:    artifact.Name,
		PoapAddress: poap,
		Address:     deployed.Address,
		Tx:          deployed.Tx,
	}

	if chainID, err := uc.chain.ChainID(ctx); err == nil {
		result.ChainID = chainID.Uint64()
		result.ExplorerURL = uc.links.AddressURL(result.ChainID, deployed.Address)
	}

	if err := uc.journal.Record(ctx, &domain.JournalEntry{
		Kind:        domain.JournalDeploy,
		Network:     result.Network,
		ChainID:     result.ChainID,
		Contract:    deployed.Address.Hex(),
		TxHash:      deployed.Tx.Hash.Hex(),
		From:        from.Hex(),
		Status:      receiptStatus(&deployed.Tx),
		GasUsed:     deployed.Tx.GasUsed,
		BlockNumber: deployed.Tx.BlockNumber,
	}); err != nil {
		uc.log.Warn("failed to journal deployment", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("journal: %v", err))
	}

	uc.log.Debug("raffle deployed", "address", deployed.Address, "tx", deployed.Tx.Hash, "gasUsed", deployed.Tx.GasUsed)
	return result, nil
}

// checkConstructor makes sure the artifact deploys with a single address argument
func checkConstructor(artifact *domain.Artifact) error {
	if len(artifact.Bytecode) == 0 {
		return fmt.Errorf("%s has no creation bytecode", artifact.Name)
	}
	inputs := artifact.ABI.Constructor.Inputs
	if len(inputs) != 1 || inputs[0].Type.String() != "address" {
		return fmt.Errorf("%s constructor must take a single address, has %d inputs", artifact.Name, len(inputs))
	}
	return nil
}
