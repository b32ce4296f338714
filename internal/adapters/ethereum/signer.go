package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// Signer holds the network profile's private key. The key is parsed on first
// use so read-only commands work without one.
type Signer struct {
	network *config.Network
	backend Backend
	log     *slog.Logger

	keyOnce sync.Once
	key     *ecdsa.PrivateKey
	keyErr  error

	mu      sync.Mutex
	chainID *big.Int
}

// NewSigner creates a signer for the selected network
func NewSigner(cfg *config.RuntimeConfig, backend Backend, log *slog.Logger) *Signer {
	return &Signer{
		network: cfg.Network,
		backend: backend,
		log:     log.With("component", "signer"),
	}
}

func (s *Signer) privateKey() (*ecdsa.PrivateKey, error) {
	s.keyOnce.Do(func() {
		field := "networks." + s.network.Name + ".private_key"
		raw := strings.TrimPrefix(strings.TrimSpace(s.network.PrivateKey), "0x")
		if raw == "" {
			s.keyErr = &domain.ConfigError{
				Field: field,
				Err:   fmt.Errorf("%w: %s resolved to an empty value", domain.ErrMissingPrivateKey, s.network.KeySource),
			}
			return
		}

		key, err := crypto.HexToECDSA(raw)
		if err != nil {
			// never echo the key material
			s.keyErr = &domain.ConfigError{Field: field, Err: domain.ErrInvalidPrivateKey}
			return
		}
		s.key = key
	})
	return s.key, s.keyErr
}

// Address returns the signer's account address
func (s *Signer) Address() (common.Address, error) {
	key, err := s.privateKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// ChainID returns the chain id of the connected network, fetched once
func (s *Signer) ChainID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID != nil {
		return s.chainID, nil
	}

	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return nil, &domain.TransportError{Op: "eth_chainId", Err: err}
	}
	s.chainID = chainID
	return chainID, nil
}

// TransactOpts builds signing options with the profile's gas settings.
// The key is checked before any RPC is made.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	key, err := s.privateKey()
	if err != nil {
		return nil, err
	}

	chainID, err := s.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	if s.network.GasPrice != nil {
		opts.GasPrice = new(big.Int).Set(s.network.GasPrice)
	}
	if s.network.GasLimit > 0 {
		opts.GasLimit = s.network.GasLimit
	}

	s.log.Debug("transact opts", "from", opts.From, "chainId", chainID, "gasPrice", opts.GasPrice, "gasLimit", opts.GasLimit)
	return opts, nil
}
