package render

import (
	"fmt"
	"io"
	"time"

	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// ChainRenderer renders chain introspection results
type ChainRenderer struct {
	out    io.Writer
	format string
}

// NewChainRenderer creates a new chain renderer
func NewChainRenderer(out io.Writer, format string) *ChainRenderer {
	return &ChainRenderer{out: out, format: format}
}

// RenderBalance renders an account balance
func (r *ChainRenderer) RenderBalance(result *usecase.GetBalanceResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"network": result.Network,
		"address": result.Balance.Address.Hex(),
		"wei":     bigString(result.Balance.Wei),
		"ether":   result.Balance.Ether(),
		"source":  result.Source,
	}); ok {
		return err
	}

	field(r.out, "Address", fmt.Sprintf("%s %s", formatAddress(result.Balance.Address), labelStyle.Sprintf("(%s)", result.Source)))
	field(r.out, "Network", result.Network)
	field(r.out, "Balance", fmt.Sprintf("%s %s", numberStyle.Sprint(result.Balance.Ether()), labelStyle.Sprintf("(%s wei)", bigString(result.Balance.Wei))))
	return nil
}

// RenderChainTime renders the latest block and clock drift
func (r *ChainRenderer) RenderChainTime(result *usecase.GetChainTimeResult) error {
	if ok, err := structured(r.out, r.format, map[string]interface{}{
		"network":        result.Network,
		"blockNumber":    result.Block.Number,
		"blockTimestamp": result.Block.Timestamp.Unix(),
		"localTimestamp": result.Local.Unix(),
		"driftSeconds":   int64(result.Drift / time.Second),
	}); ok {
		return err
	}

	field(r.out, "Network", result.Network)
	field(r.out, "Block", numberStyle.Sprintf("%d", result.Block.Number))
	field(r.out, "Chain time", fmt.Sprintf("%d %s", result.Block.Timestamp.Unix(), labelStyle.Sprint(result.Block.Timestamp.UTC().Format(time.RFC3339))))
	field(r.out, "Local time", fmt.Sprintf("%d %s", result.Local.Unix(), labelStyle.Sprint(result.Local.UTC().Format(time.RFC3339))))

	drift := result.Drift.String()
	if result.Drift > time.Minute || result.Drift < -time.Minute {
		drift = pendingStyle.Sprint(drift)
	}
	field(r.out, "Drift", drift)
	return nil
}
