package render

import (
	"fmt"
	"io"

	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// DeployRenderer renders deployment results
type DeployRenderer struct {
	out    io.Writer
	format string
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, format string) *DeployRenderer {
	return &DeployRenderer{out: out, format: format}
}

// RenderDeploy renders a deployed contract
func (r *DeployRenderer) RenderDeploy(result *usecase.DeployRaffleResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"network":     result.Network,
		"chainId":     result.ChainID,
		"contract":    result.Artifact,
		"address":     result.Address.Hex(),
		"poapAddress": result.PoapAddress.Hex(),
		"tx":          newTxView(&result.Tx, ""),
		"explorer":    result.ExplorerURL,
		"warnings":    result.Warnings,
	}); ok {
		return err
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s to %s", result.Artifact, result.Network)))
	fmt.Fprintln(r.out)
	field(r.out, "Address", formatAddress(result.Address))
	field(r.out, "POAP", formatAddress(result.PoapAddress))
	if result.ChainID != 0 {
		field(r.out, "Chain ID", fmt.Sprintf("%d", result.ChainID))
	}
	txFields(r.out, &result.Tx)
	link(r.out, result.ExplorerURL)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Set it as the default with: %s\n", numberStyle.Sprintf("raffle config set address %s", result.Address.Hex()))
	warnings(r.out, result.Warnings)
	return nil
}
