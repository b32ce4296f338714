package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// TxReceipt summarises a mined transaction
type TxReceipt struct {
	Hash        common.Hash
	From        common.Address
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64
}

// Succeeded reports whether the receipt status is 1
func (r *TxReceipt) Succeeded() bool {
	return r != nil && r.Status == 1
}

// Artifact is a compiled contract as produced by Hardhat or Foundry
type Artifact struct {
	Name     string
	Path     string
	ABI      abi.ABI
	Bytecode []byte
}

// DeployResult is the outcome of a contract creation transaction
type DeployResult struct {
	Address common.Address
	Tx      TxReceipt
}

// BlockInfo is a block number with its timestamp
type BlockInfo struct {
	Number    uint64
	Timestamp time.Time
}

// Balance is an account balance in wei at the latest block
type Balance struct {
	Address common.Address
	Wei     *big.Int
}

// Ether returns the balance as a decimal ether string
func (b *Balance) Ether() string {
	if b.Wei == nil {
		return "0"
	}
	f := new(big.Float).SetInt(b.Wei)
	f.Quo(f, big.NewFloat(1e18))
	return f.Text('f', 6)
}
