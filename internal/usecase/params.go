package usecase

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/domain"
)

// parseUint256 parses a non-negative decimal integer
func parseUint256(field, value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer, got %q", domain.ErrInvalidRaffleParams, field, value)
	}
	if n.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %s overflows uint256", domain.ErrInvalidRaffleParams, field)
	}
	return n, nil
}

// parseRaffleNum parses a raffle number argument, which must be positive
func parseRaffleNum(value string) (*big.Int, error) {
	n, err := parseUint256("raffle number", value)
	if err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		return nil, fmt.Errorf("%w: raffle numbers start at 1", domain.ErrInvalidRaffleParams)
	}
	return n, nil
}

// parseAddress parses a hex address, rejecting malformed and zero values
func parseAddress(field, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, &domain.ConfigError{Field: field, Err: fmt.Errorf("%w: %q", domain.ErrInvalidAddress, value)}
	}
	addr := common.HexToAddress(value)
	if addr == (common.Address{}) {
		return common.Address{}, &domain.ConfigError{Field: field, Err: fmt.Errorf("%w: zero address", domain.ErrInvalidAddress)}
	}
	return addr, nil
}

func receiptStatus(receipt *domain.TxReceipt) string {
	if receipt.Succeeded() {
		return "success"
	}
	return "failed"
}
