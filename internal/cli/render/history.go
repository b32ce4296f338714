package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// HistoryRenderer renders journal entries
type HistoryRenderer struct {
	out    io.Writer
	format string
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer, format string) *HistoryRenderer {
	return &HistoryRenderer{out: out, format: format}
}

type entryView struct {
	ID          string    `json:"id" yaml:"id"`
	Kind        string    `json:"kind" yaml:"kind"`
	Network     string    `json:"network" yaml:"network"`
	ChainID     uint64    `json:"chainId" yaml:"chainId"`
	Contract    string    `json:"contract" yaml:"contract"`
	RaffleNum   string    `json:"raffleNum,omitempty" yaml:"raffleNum,omitempty"`
	TxHash      string    `json:"txHash" yaml:"txHash"`
	From        string    `json:"from" yaml:"from"`
	Status      string    `json:"status" yaml:"status"`
	GasUsed     uint64    `json:"gasUsed" yaml:"gasUsed"`
	BlockNumber uint64    `json:"blockNumber" yaml:"blockNumber"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// RenderHistory renders journal entries newest first
func (r *HistoryRenderer) RenderHistory(result *usecase.ListHistoryResult) error {
	views := make([]entryView, len(result.Entries))
	for i, e := range result.Entries {
		views[i] = entryView{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Network:     e.Network,
			ChainID:     e.ChainID,
			Contract:    e.Contract,
			RaffleNum:   e.RaffleNum,
			TxHash:      e.TxHash,
			From:        e.From,
			Status:      e.Status,
			GasUsed:     e.GasUsed,
			BlockNumber: e.BlockNumber,
			CreatedAt:   e.CreatedAt,
		}
	}
	if ok, err := structured(r.out, r.format, views); ok {
		return err
	}

	if !result.Enabled {
		fmt.Fprintln(r.out, FormatWarning("The journal is disabled (journal = false or --no-journal)"))
		return nil
	}
	if len(views) == 0 {
		fmt.Fprintln(r.out, "No journal entries found")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"When", "Operation", "Network", "Raffle", "Contract", "Tx", "Status"})
	for _, v := range views {
		raffle := v.RaffleNum
		if raffle != "" {
			raffle = "#" + raffle
		}
		t.AppendRow(table.Row{
			labelStyle.Sprint(v.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			kindLabel(domain.JournalKind(v.Kind)),
			v.Network,
			raffle,
			shortHex(v.Contract),
			shortHex(v.TxHash),
			statusText(v.Status),
		})
	}
	t.Render()
	return nil
}

func kindLabel(kind domain.JournalKind) string {
	switch kind {
	case domain.JournalDeploy:
		return Title("deploy")
	case domain.JournalCreate:
		return Title("create raffle")
	case domain.JournalPickAndMint:
		return Title("pick and mint")
	default:
		return string(kind)
	}
}

// shortHex abbreviates a hex string as 0x1234…abcd
func shortHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}
