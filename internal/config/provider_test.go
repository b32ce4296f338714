package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRaffleToml = `
default_network = "gnosis"

[contract]
artifact = "artifacts/POAPRaffle.json"
poap_address = "${POAP_ADDRESS}"

[networks.gnosis]
url = "https://rpc.gnosischain.com"
gas_price = 2000000000
gas_limit = 3000000
private_key = "${GNOSIS_PK}"
raffle_address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

[networks.sepolia]
url = "${SEPOLIA_RPC_URL}"
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	}
	return dir
}

func newTestViper(projectRoot string) *viper.Viper {
	v := viper.New()
	v.Set("project_root", projectRoot)
	return v
}

func TestProvider_Defaults(t *testing.T) {
	t.Setenv("DEV_PK", "")
	t.Setenv("dev_pk", "")
	dir := writeProject(t, "")

	cfg, err := Provider(newTestViper(dir))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, DataDirName), cfg.DataDir)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, "localhost", cfg.Network.Name)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Network.RPCURL)
	assert.Equal(t, "${DEV_PK}", cfg.Network.KeySource)
	assert.Empty(t, cfg.Network.PrivateKey)
	assert.Nil(t, cfg.Network.GasPrice)
	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.Journal)
}

func TestProvider_RaffleFile(t *testing.T) {
	t.Setenv("GNOSIS_PK", "0x1234")
	t.Setenv("POAP_ADDRESS", "0x22C1f6050E56d2876009903609a2cC3fEf83B415")
	dir := writeProject(t, testRaffleToml)

	cfg, err := Provider(newTestViper(dir))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.ConfigFile)
	assert.Equal(t, "gnosis", cfg.Network.Name)
	assert.Equal(t, "0x1234", cfg.Network.PrivateKey)
	assert.Equal(t, "${GNOSIS_PK}", cfg.Network.KeySource)
	assert.Equal(t, int64(2000000000), cfg.Network.GasPrice.Int64())
	assert.Equal(t, uint64(3000000), cfg.Network.GasLimit)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.RaffleAddress)
	assert.Equal(t, filepath.Join(dir, "artifacts/POAPRaffle.json"), cfg.Contract.Artifact)
	assert.Equal(t, "0x22C1f6050E56d2876009903609a2cC3fEf83B415", cfg.Contract.PoapAddress)

	// built-in profiles are merged in
	assert.Contains(t, cfg.RaffleFile.Networks, "localhost")
	assert.Contains(t, cfg.RaffleFile.Networks, "chiado")
}

func TestProvider_BuiltinNetworks(t *testing.T) {
	t.Setenv("DEV_PK", "")
	t.Setenv("dev_pk", "0xabc")
	dir := writeProject(t, "")

	v := newTestViper(dir)
	v.Set("network", "gnosis")
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "gnosis", cfg.Network.Name)
	assert.Equal(t, "https://rpc.gnosischain.com", cfg.Network.RPCURL)
	assert.Equal(t, int64(1_000_000_000), cfg.Network.GasPrice.Int64())
	assert.Equal(t, uint64(1_000_000), cfg.Network.GasLimit)
	assert.Equal(t, "0xabc", cfg.Network.PrivateKey)

	v = newTestViper(dir)
	v.Set("network", "chiado")
	cfg, err = Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "https://rpc.chiadochain.net", cfg.Network.RPCURL)
	assert.Equal(t, int64(1_000_000_000), cfg.Network.GasPrice.Int64())
	assert.Zero(t, cfg.Network.GasLimit)
}

func TestProvider_Overrides(t *testing.T) {
	dir := writeProject(t, testRaffleToml)

	v := newTestViper(dir)
	v.Set("network", "localhost")
	v.Set("address", "0x0000000000000000000000000000000000000001")
	v.Set("output", "JSON")
	v.Set("timeout", 30*time.Second)
	v.Set("no_journal", true)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Network.Name)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", cfg.RaffleAddress)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Journal)
}

func TestProvider_Errors(t *testing.T) {
	t.Run("unknown network", func(t *testing.T) {
		dir := writeProject(t, testRaffleToml)
		v := newTestViper(dir)
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
		assert.True(t, errors.Is(err, domain.ErrNetworkNotFound))
	})

	t.Run("bad output format", func(t *testing.T) {
		dir := writeProject(t, "")
		v := newTestViper(dir)
		v.Set("output", "xml")

		_, err := Provider(v)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := writeProject(t, "default_network = ")

		_, err := Provider(newTestViper(dir))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse raffle.toml")
	})

	t.Run("profile with empty url", func(t *testing.T) {
		t.Setenv("SEPOLIA_RPC_URL", "")
		dir := writeProject(t, testRaffleToml)
		v := newTestViper(dir)
		v.Set("network", "sepolia")

		_, err := Provider(v)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})
}

func TestNetworkResolver(t *testing.T) {
	t.Setenv("DEV", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	resolver := NewNetworkResolver(nil)
	assert.Empty(t, resolver.Names())

	dir := writeProject(t, testRaffleToml)
	file, _, err := loadRaffleFile(dir)
	require.NoError(t, err)

	resolver = NewNetworkResolver(file)
	assert.Equal(t, []string{"chiado", "gnosis", "localhost", "sepolia"}, resolver.Names())

	network, err := resolver.Resolve("LOCALHOST")
	require.NoError(t, err)
	assert.Equal(t, "localhost", network.Name)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", network.Account)
}

func TestNetworkResolver_LowercaseDefaults(t *testing.T) {
	file := &config.RaffleFileConfig{Networks: config.DefaultNetworks()}
	resolver := NewNetworkResolver(file)

	t.Run("lowercase only", func(t *testing.T) {
		t.Setenv("DEV_PK", "")
		t.Setenv("DEV", "")
		t.Setenv("dev_pk", " 0xlower ")
		t.Setenv("dev", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

		network, err := resolver.Resolve("localhost")
		require.NoError(t, err)
		assert.Equal(t, "0xlower", network.PrivateKey)
		assert.Equal(t, "${dev_pk}", network.KeySource)
		assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", network.Account)
	})

	t.Run("uppercase wins", func(t *testing.T) {
		t.Setenv("DEV_PK", "0xupper")
		t.Setenv("dev_pk", "0xlower")

		network, err := resolver.Resolve("localhost")
		require.NoError(t, err)
		assert.Equal(t, "0xupper", network.PrivateKey)
		assert.Equal(t, "${DEV_PK}", network.KeySource)
	})

	t.Run("neither set", func(t *testing.T) {
		t.Setenv("DEV_PK", "")
		t.Setenv("dev_pk", "")

		network, err := resolver.Resolve("localhost")
		require.NoError(t, err)
		assert.Empty(t, network.PrivateKey)
		assert.Equal(t, "${DEV_PK}", network.KeySource)
	})

	t.Run("explicit profile key has no fallback", func(t *testing.T) {
		t.Setenv("GNOSIS_PK", "")
		t.Setenv("gnosis_pk", "0xlower")
		explicit := NewNetworkResolver(&config.RaffleFileConfig{Networks: map[string]config.NetworkConfig{
			"gnosis": {URL: "https://rpc.gnosischain.com", PrivateKey: "${GNOSIS_PK}"},
		}})

		network, err := explicit.Resolve("gnosis")
		require.NoError(t, err)
		assert.Empty(t, network.PrivateKey)
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir := writeProject(t, testRaffleToml)
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	resolvedDir, _ := filepath.EvalSymlinks(dir)
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	assert.Equal(t, resolvedDir, resolvedRoot)
}
