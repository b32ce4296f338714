package config

import (
	"context"

	"github.com/poap-raffle/raffle-cli/internal/config"
	domainconfig "github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// NetworkResolverAdapter adapts config.NetworkResolver to the usecase.NetworkResolver interface
type NetworkResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewNetworkResolverAdapter builds a resolver over the loaded raffle.toml profiles
func NewNetworkResolverAdapter(cfg *domainconfig.RuntimeConfig) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		resolver: config.NewNetworkResolver(cfg.RaffleFile),
	}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	return a.resolver.Names()
}

// ResolveNetwork resolves a network name to its expanded profile
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domainconfig.Network, error) {
	return a.resolver.Resolve(networkName)
}

var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
