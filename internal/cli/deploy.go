package cli

import (
	"github.com/poap-raffle/raffle-cli/internal/cli/render"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var poap string
	var artifact string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the POAPRaffle contract",
		Long: `Deploy the POAPRaffle contract from its compiled artifact.

The constructor takes the POAP contract address, taken from --poap, then
contract.poap_address in raffle.toml, then the xDAI POAP contract.

Examples:
  raffle deploy --network gnosis
  raffle deploy --poap 0x22c1f6050e56d2876009903609a2cc3fef83b415
  raffle deploy --artifact out/POAPRaffle.sol/POAPRaffle.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployRaffle.Run(cmd.Context(), usecase.DeployRaffleParams{
				PoapAddress: poap,
				Artifact:    artifact,
			})
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.Output)
			return renderer.RenderDeploy(result)
		},
	}

	cmd.Flags().StringVar(&poap, "poap", "", "POAP contract address passed to the constructor")
	cmd.Flags().StringVar(&artifact, "artifact", "", "Path to the compiled Hardhat or Foundry artifact")

	return cmd
}
