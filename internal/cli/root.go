package cli

import (
	"context"
	"fmt"

	"github.com/poap-raffle/raffle-cli/internal/adapters/progress"
	"github.com/poap-raffle/raffle-cli/internal/app"
	"github.com/poap-raffle/raffle-cli/internal/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// sessionKey is the context key for per-invocation cleanup
	sessionKey contextKey = "session"
)

// session collects what has to be released once the command finishes
type session struct {
	closers []func()
}

func (s *session) add(fn func()) {
	if fn != nil {
		s.closers = append(s.closers, fn)
	}
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// skipsApp lists commands that run without building the app
var skipsApp = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "raffle",
		Short: "Deploy and operate POAP raffle contracts",
		Long: `raffle deploys the POAPRaffle contract and drives it from the command line:
create raffles, pick winners after expiry and read raffle state back.

Network profiles live in raffle.toml; secrets are referenced as ${VAR} and
loaded from the environment, .env or .env.local.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with the command's flags bound
			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewNopSink()
			if v.GetString("output") == "text" && !v.GetBool("non_interactive") {
				sink = progress.NewSpinnerSink()
			}

			appInstance, cleanup, err := app.InitApp(v, sink)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, _ := ctx.Value(sessionKey).(*session)
			if s != nil {
				s.add(cleanup)
			}

			ctx = context.WithValue(ctx, appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				if s != nil {
					s.add(cancel)
				}
			}
			cmd.SetContext(ctx)

			appInstance.Log.Debug("app initialized",
				"network", appInstance.Config.Network.Name,
				"rpc", appInstance.Config.Network.RPCURL,
				"raffle", appInstance.Config.RaffleAddress,
				"projectRoot", appInstance.Config.ProjectRoot,
			)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network profile from raffle.toml (default: default_network or localhost)")
	rootCmd.PersistentFlags().StringP("address", "a", "", "Raffle contract address (overrides the network profile)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this long (0 waits indefinitely)")
	rootCmd.PersistentFlags().Bool("no-journal", false, "Do not record transactions in .raffle/journal.db")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	raffleCmd := NewRaffleCmd()
	raffleCmd.GroupID = "main"
	rootCmd.AddCommand(raffleCmd)

	chainCmd := NewChainCmd()
	chainCmd.GroupID = "main"
	rootCmd.AddCommand(chainCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	historyCmd := NewHistoryCmd()
	historyCmd.GroupID = "management"
	rootCmd.AddCommand(historyCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command and releases the RPC client, journal and
// timeout afterwards
func Execute(ctx context.Context) error {
	s := &session{}
	defer s.close()

	rootCmd := NewRootCmd()
	return rootCmd.ExecuteContext(context.WithValue(ctx, sessionKey, s))
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
