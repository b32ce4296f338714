package cli

import (
	"github.com/poap-raffle/raffle-cli/internal/cli/render"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewChainCmd creates the chain command group
func NewChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Query the selected network",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "balance [address]",
		Short: "Print the balance of an address",
		Long: `Print the balance of an address in wei and ether.

Without an address the network profile's account is used, then the address
of the configured private key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.GetBalanceParams{}
			if len(args) == 1 {
				params.Address = args[0]
			}

			result, err := app.GetBalance.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewChainRenderer(cmd.OutOrStdout(), app.Config.Output).RenderBalance(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "time",
		Short: "Print the latest block number and timestamp",
		Long: `Print the latest block number and timestamp, and how far the local clock
is from chain time. Raffle expiry is judged by block timestamps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.GetChainTime.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewChainRenderer(cmd.OutOrStdout(), app.Config.Output).RenderChainTime(result)
		},
	})

	return cmd
}
