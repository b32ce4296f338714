package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems. These are always detected
// before any network call is made.
var (
	// ErrMissingPrivateKey is returned when a command needs a signer but the
	// network profile has no private key (usually an unset env var)
	ErrMissingPrivateKey = errors.New("missing signer private key")

	// ErrInvalidPrivateKey is returned when the configured key cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid signer private key")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkNotFound is returned when the selected network has no profile
	ErrNetworkNotFound = errors.New("network not found")

	// ErrNoRaffleAddress is returned when no raffle contract address is configured
	ErrNoRaffleAddress = errors.New("raffle contract address not configured")

	// ErrInvalidRaffleParams is returned when createRaffle arguments fail local checks
	ErrInvalidRaffleParams = errors.New("invalid raffle parameters")

	// ErrArtifactNotFound is returned when the contract artifact can't be read
	ErrArtifactNotFound = errors.New("contract artifact not found")
)

// Remote-side errors
var (
	// ErrRaffleNotFound is returned when raffles(n) yields the zeroed record
	ErrRaffleNotFound = errors.New("raffle not found")

	// ErrTxReverted is returned when a mined transaction has a failed receipt
	ErrTxReverted = errors.New("transaction reverted")

	// ErrNoContractCode is returned when the configured address holds no code
	ErrNoContractCode = errors.New("no contract code at address")

	// ErrInsufficientFunds is returned when the signer can't pay for gas
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ConfigError wraps a configuration problem with the offending setting
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransportError is an RPC failure: endpoint unreachable, timed out or
// returned a non-revert error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RevertError is a remote rejection by the contract
type RevertError struct {
	Method string
	Reason string
	Data   []byte
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s reverted", e.Method)
	}
	return fmt.Sprintf("%s reverted: %s", e.Method, e.Reason)
}

// Is lets errors.Is(err, ErrTxReverted) match both dry-run and mined reverts.
func (e *RevertError) Is(target error) bool {
	return target == ErrTxReverted
}

// IsConfigError reports whether err belongs to the configuration class
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsTransportError reports whether err belongs to the network/transport class
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsRevert reports whether err is a remote rejection
func IsRevert(err error) bool {
	var rErr *RevertError
	return errors.As(err, &rErr) || errors.Is(err, ErrTxReverted)
}
