package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/poap-raffle/raffle-cli/internal/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format string
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format string) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

type networkView struct {
	Name          string `json:"name" yaml:"name"`
	Current       bool   `json:"current" yaml:"current"`
	RPCURL        string `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
	ChainID       uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	RaffleAddress string `json:"raffleAddress,omitempty" yaml:"raffleAddress,omitempty"`
	Signer        string `json:"signer,omitempty" yaml:"signer,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RenderNetworksList renders the configured networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	views := make([]networkView, 0, len(result.Networks))
	for _, n := range result.Networks {
		v := networkView{Name: n.Name, Current: n.Current, ChainID: n.ChainID}
		if n.Network != nil {
			v.RPCURL = n.Network.RPCURL
			v.RaffleAddress = n.Network.RaffleAddress
			v.Signer = config.DescribeSecret(n.Network.KeySource, n.Network.PrivateKey)
		}
		if n.Error != nil {
			v.Error = n.Error.Error()
		}
		views = append(views, v)
	}

	if ok, err := structured(r.out, r.format, views); ok {
		return err
	}

	if len(views) == 0 {
		fmt.Fprintln(r.out, "No networks configured in raffle.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "Network", "RPC", "Chain ID", "Raffle", "Signer"})
	for _, v := range views {
		marker := " "
		if v.Current {
			marker = okStyle.Sprint("*")
		}
		chainID := labelStyle.Sprint("-")
		if v.ChainID != 0 {
			chainID = fmt.Sprintf("%d", v.ChainID)
		}
		if v.Error != "" {
			t.AppendRow(table.Row{marker, v.Name, failedStyle.Sprintf("❌ %s", v.Error), "", "", ""})
			continue
		}
		raffle := labelStyle.Sprint("(not set)")
		if v.RaffleAddress != "" {
			raffle = v.RaffleAddress
		}
		t.AppendRow(table.Row{marker, v.Name, v.RPCURL, chainID, raffle, v.Signer})
	}
	t.Render()
	return nil
}
