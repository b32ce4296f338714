package usecase

import (
	"context"
	"time"

	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// probeTimeout bounds each chain id probe
const probeTimeout = 5 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe dials each RPC endpoint to read its chain id
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	Network *config.Network // nil when the profile failed to resolve
	ChainID uint64
	Current bool
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
	prober   ChainIDProber
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, prober ChainIDProber) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
		prober:   prober,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	current := ""
	if uc.config.Network != nil {
		current = uc.config.Network.Name
	}

	networkNames := uc.resolver.GetNetworks(ctx)
	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:    name,
			Current: name == current,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.Network = info

		if params.Probe {
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			status.ChainID, status.Error = uc.prober.ProbeChainID(probeCtx, info.RPCURL)
			cancel()
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  current,
	}, nil
}
