package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/poap-raffle/raffle-cli/internal/cli"
	"github.com/poap-raffle/raffle-cli/internal/config"
)

// Set with -ldflags "-X main.version=..."
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	if version != "" {
		config.SetBuildFlags(version, commit, date)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
