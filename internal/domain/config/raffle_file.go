package config

// RaffleFileConfig represents the raffle.toml project file
type RaffleFileConfig struct {
	DefaultNetwork string                   `toml:"default_network"`
	Journal        *bool                    `toml:"journal,omitempty"`
	Contract       ContractConfig           `toml:"contract"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// ContractConfig points at the POAPRaffle build output and constructor input
type ContractConfig struct {
	Artifact    string `toml:"artifact,omitempty"`
	PoapAddress string `toml:"poap_address,omitempty"`
}

// NetworkConfig is one named network profile
type NetworkConfig struct {
	URL           string `toml:"url"`
	GasPrice      uint64 `toml:"gas_price,omitempty"`
	GasLimit      uint64 `toml:"gas_limit,omitempty"`
	PrivateKey    string `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	RaffleAddress string `toml:"raffle_address,omitempty"`
	Account       string `toml:"account,omitempty"`
}

const (
	// DefaultNetworkName is used when neither flags nor raffle.toml pick a network
	DefaultNetworkName = "localhost"
	// DefaultPrivateKeyRef is the signer source when a profile doesn't set one
	DefaultPrivateKeyRef = "${DEV_PK}"
	// DefaultAccountRef is the account queried by `chain balance` without args
	DefaultAccountRef = "${DEV}"
	// DefaultPoapAddress is the POAP token contract on gnosis
	DefaultPoapAddress = "0x22c1f6050e56d2876009903609a2cc3fef83b415"
)

// DefaultNetworks returns the profiles available without a raffle.toml.
// A raffle.toml profile with the same name replaces the built-in one.
func DefaultNetworks() map[string]NetworkConfig {
	return map[string]NetworkConfig{
		DefaultNetworkName: {URL: "http://127.0.0.1:8545"},
		"gnosis": {
			URL:      "https://rpc.gnosischain.com",
			GasPrice: 1_000_000_000,
			GasLimit: 1_000_000,
		},
		"chiado": {
			URL:      "https://rpc.chiadochain.net",
			GasPrice: 1_000_000_000,
		},
	}
}
