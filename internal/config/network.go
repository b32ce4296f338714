package config

import (
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// NetworkResolver resolves network names to profiles from raffle.toml
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(file *config.RaffleFileConfig) *NetworkResolver {
	networks := make(map[string]config.NetworkConfig)
	if file != nil {
		for name, network := range file.Networks {
			networks[name] = network
		}
	}
	return &NetworkResolver{networks: networks}
}

// Resolve resolves a network name to its expanded profile
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	raw, exists := r.networks[networkName]
	if !exists {
		// Case-insensitive fallback
		for name, network := range r.networks {
			if strings.EqualFold(name, networkName) {
				raw, exists = network, true
				networkName = name
				break
			}
		}
	}
	if !exists {
		return nil, &domain.ConfigError{
			Field: "network",
			Err:   fmt.Errorf("%w: '%s' has no [networks.%s] profile in %s", domain.ErrNetworkNotFound, networkName, networkName, ConfigFileName),
		}
	}

	rpcURL := os.ExpandEnv(raw.URL)
	if rpcURL == "" {
		return nil, &domain.ConfigError{
			Field: "networks." + networkName + ".url",
			Err:   fmt.Errorf("empty RPC URL (raw value %q)", raw.URL),
		}
	}

	privateKey, keySource := expandRef(raw.PrivateKey, config.DefaultPrivateKeyRef)
	account, _ := expandRef(raw.Account, config.DefaultAccountRef)

	network := &config.Network{
		Name:          networkName,
		RPCURL:        rpcURL,
		GasLimit:      raw.GasLimit,
		PrivateKey:    privateKey,
		KeySource:     keySource,
		RaffleAddress: strings.TrimSpace(os.ExpandEnv(raw.RaffleAddress)),
		Account:       account,
	}
	if raw.GasPrice > 0 {
		network.GasPrice = new(big.Int).SetUint64(raw.GasPrice)
	}

	return network, nil
}

// expandRef expands a profile value, or the built-in reference when the
// profile leaves it empty. The built-in reference also accepts its lowercase
// spelling (dev_pk, dev); the uppercase variable wins when both are set.
func expandRef(value, fallback string) (string, string) {
	if value != "" {
		return strings.TrimSpace(os.ExpandEnv(value)), value
	}
	if expanded := strings.TrimSpace(os.ExpandEnv(fallback)); expanded != "" {
		return expanded, fallback
	}
	lower := strings.ToLower(fallback)
	if expanded := strings.TrimSpace(os.ExpandEnv(lower)); expanded != "" {
		return expanded, lower
	}
	return "", fallback
}

// Names returns all configured network names in sorted order
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
