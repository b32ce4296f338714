package cli

import (
	"fmt"

	"github.com/poap-raffle/raffle-cli/internal/cli/render"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var historyKinds = []domain.JournalKind{domain.JournalDeploy, domain.JournalCreate, domain.JournalPickAndMint}

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var (
		all   bool
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions sent from this project",
		Long: `List the local journal of deploy, createRaffle and pickAndMint transactions
kept in .raffle/journal.db. Entries are shown newest first for the current
network (see --network) unless --all is given.

Examples:
  raffle history
  raffle history --kind pickAndMint --limit 5
  raffle history --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && !validKind(kind) {
				return fmt.Errorf("unknown kind %q (valid: deploy, createRaffle, pickAndMint)", kind)
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListHistory.Run(cmd.Context(), usecase.ListHistoryParams{
				AllNetworks: all,
				Kind:        kind,
				Limit:       limit,
			})
			if err != nil {
				return err
			}

			return render.NewHistoryRenderer(cmd.OutOrStdout(), app.Config.Output).RenderHistory(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Entries for every network")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only entries of this kind (deploy, createRaffle, pickAndMint)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of entries")

	return cmd
}

func validKind(kind string) bool {
	return lo.Contains(historyKinds, domain.JournalKind(kind))
}
