package config

import (
	"math/big"
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	ConfigFile  string // path to raffle.toml, empty when running on defaults

	// Context settings
	Network       *Network // always resolved, defaults to localhost
	RaffleAddress string   // --address flag, local config or network profile

	// Execution settings
	Debug          bool
	NonInteractive bool
	Output         string // text, json or yaml
	Timeout        time.Duration
	Journal        bool

	// Resolved configurations
	Contract   ContractConfig
	RaffleFile *RaffleFileConfig
}

// Network represents a resolved network profile
type Network struct {
	Name          string
	RPCURL        string
	GasPrice      *big.Int // nil lets the node suggest a price
	GasLimit      uint64   // 0 lets the node estimate
	PrivateKey    string   //nolint:gosec // expanded from an env var reference
	KeySource     string   // raw value before env expansion, safe to display
	RaffleAddress string
	Account       string
}
