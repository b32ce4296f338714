package cli

import (
	"github.com/poap-raffle/raffle-cli/internal/cli/render"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the network profiles from raffle.toml (plus the built-in localhost).

With --probe each RPC endpoint is asked for its chain id, which is compared
with the configured chain_id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.Output).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query each endpoint for its chain id")

	return cmd
}
