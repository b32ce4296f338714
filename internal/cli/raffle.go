package cli

import (
	"fmt"
	"time"

	"github.com/poap-raffle/raffle-cli/internal/app"
	"github.com/poap-raffle/raffle-cli/internal/cli/render"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRaffleCmd creates the raffle command group
func NewRaffleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raffle",
		Short: "Create, resolve and inspect raffles",
		Long: `Drive a deployed POAPRaffle contract.

The contract address comes from --address, the local config
(raffle config set address ...) or the network profile's raffle_address.`,
	}

	cmd.AddCommand(newRaffleCreateCmd())
	cmd.AddCommand(newRafflePickCmd())
	cmd.AddCommand(newRaffleShowCmd())
	cmd.AddCommand(newRaffleWinnersCmd())
	cmd.AddCommand(newRaffleImageCmd())
	cmd.AddCommand(newRaffleInfoCmd())
	cmd.AddCommand(newRaffleListCmd())

	return cmd
}

func newRaffleCreateCmd() *cobra.Command {
	var (
		eventNum     string
		winnersNum   string
		expiry       string
		duration     time.Duration
		participants []string
		tokenURI     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a raffle (dry run, then submit)",
		Long: `Create a raffle with createRaffle. The call is simulated first to learn the
raffle number; nothing is sent if the simulation reverts.

Participants come from --participant (repeatable or comma separated), else
from PARTICIPANTS, else from PARTICIPANT1..N / participant1..N.

The raffle expires at --expiry (unix seconds) or after --duration
(default 10s).

Examples:
  raffle raffle create --event 1234 --winners 2 -p 0xabc... -p 0xdef...
  raffle raffle create --event 1234 --winners 1 --duration 1h --token-uri ipfs://...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CreateRaffle.Run(cmd.Context(), usecase.CreateRaffleParams{
				EventNum:     eventNum,
				WinnersNum:   winnersNum,
				Expiry:       expiry,
				Duration:     duration,
				Participants: participantsFromEnv(participants),
				TokenURI:     tokenURI,
			})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderCreate(result)
		},
	}

	cmd.Flags().StringVarP(&eventNum, "event", "e", "", "POAP event number")
	cmd.Flags().StringVarP(&winnersNum, "winners", "w", "", "Number of winners to draw")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry as unix seconds (overrides --duration)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Time until expiry (default 10s)")
	cmd.Flags().StringSliceVarP(&participants, "participant", "p", nil, "Participant address (repeatable)")
	cmd.Flags().StringVarP(&tokenURI, "token-uri", "u", "", "Token URI of the NFT minted to winners")
	_ = cmd.MarkFlagRequired("event")
	_ = cmd.MarkFlagRequired("winners")

	return cmd
}

func newRafflePickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [raffleNum]",
		Short: "Pick winners and mint (dry run, then submit)",
		Long: `Resolve an expired raffle with pickAndMint. The call is simulated first;
a raffle that has not expired or already has winners is rejected before
anything is sent.

Without a raffle number an interactive picker lists expired raffles among
the newest 50 and asks for confirmation even when only one qualifies.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			raffleNum, err := raffleArg(cmd, app, args, "Select a raffle to resolve", true, func(r *domain.Raffle) bool {
				return r.Expired(time.Now())
			})
			if err != nil {
				return err
			}

			result, err := app.PickAndMint.Run(cmd.Context(), usecase.PickAndMintParams{RaffleNum: raffleNum})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderPick(result)
		},
	}
}

func newRaffleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [raffleNum]",
		Short: "Show a raffle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			raffleNum, err := raffleArg(cmd, app, args, "Select a raffle", false, nil)
			if err != nil {
				return err
			}

			result, err := app.ShowRaffle.Run(cmd.Context(), usecase.ShowRaffleParams{RaffleNum: raffleNum})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderRaffle(result)
		},
	}
}

func newRaffleWinnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winners [raffleNum]",
		Short: "Print the winners of a raffle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			raffleNum, err := raffleArg(cmd, app, args, "Select a raffle", false, nil)
			if err != nil {
				return err
			}

			result, err := app.GetWinners.Run(cmd.Context(), usecase.GetWinnersParams{RaffleNum: raffleNum})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderWinners(result)
		},
	}
}

func newRaffleImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image [raffleNum]",
		Short: "Print the NFT image of a raffle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			raffleNum, err := raffleArg(cmd, app, args, "Select a raffle", false, nil)
			if err != nil {
				return err
			}

			result, err := app.GetNFTImage.Run(cmd.Context(), usecase.GetNFTImageParams{RaffleNum: raffleNum})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderImage(result)
		},
	}
}

func newRaffleInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the contract name and raffle count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowContractInfo.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderInfo(result)
		},
	}
}

func newRaffleListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List raffles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListRaffles.Run(cmd.Context(), usecase.ListRafflesParams{Limit: limit})
			if err != nil {
				return err
			}

			return render.NewRaffleRenderer(cmd.OutOrStdout(), app.Config.Output).RenderList(result)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Only list the newest N raffles")

	return cmd
}

// pickerWindow is how many of the newest raffles the interactive picker reads
const pickerWindow = 50

// raffleArg returns the raffle number argument, or asks for one interactively.
// With confirm set the picker is shown even for a single candidate.
func raffleArg(cmd *cobra.Command, application *app.App, args []string, prompt string, confirm bool, keep func(*domain.Raffle) bool) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if application.Config.NonInteractive || application.Config.Output != render.FormatText {
		return "", fmt.Errorf("raffle number required in non-interactive mode")
	}

	listed, err := application.ListRaffles.Run(cmd.Context(), usecase.ListRafflesParams{Limit: pickerWindow})
	if err != nil {
		return "", err
	}

	candidates := listed.Raffles
	if keep != nil {
		candidates = make([]*domain.Raffle, 0, len(listed.Raffles))
		for _, r := range listed.Raffles {
			if keep(r) {
				candidates = append(candidates, r)
			}
		}
	}

	selected, err := application.Selector.SelectRaffle(cmd.Context(), candidates, prompt, confirm)
	if err != nil {
		return "", err
	}
	return selected.RaffleNum.String(), nil
}
