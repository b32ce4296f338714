// Package fakechain is an in-memory EVM backend that models the POAPRaffle
// contract closely enough to drive the go-ethereum bind helpers in tests.
package fakechain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Well-known anvil development account
const (
	DevKeyHex  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	DevAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// DefaultChainID is the anvil chain id
const DefaultChainID = 31337

var gasPrice = big.NewInt(1_000_000_000)

// Chain is a single-node fake chain with instant mining
type Chain struct {
	mu sync.Mutex

	chainID   *big.Int
	now       time.Time
	block     uint64
	balances  map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	contracts map[common.Address]*raffleContract
	receipts  map[common.Hash]*types.Receipt
	sent      []*types.Transaction

	// Fail makes every RPC return this error when set
	Fail error
	// RevertOnMine makes the next mined transaction fail with status 0
	RevertOnMine bool
}

// New creates a chain funded with the dev account
func New() *Chain {
	c := &Chain{
		chainID:   big.NewInt(DefaultChainID),
		now:       time.Now().Truncate(time.Second),
		block:     1,
		balances:  make(map[common.Address]*big.Int),
		nonces:    make(map[common.Address]uint64),
		contracts: make(map[common.Address]*raffleContract),
		receipts:  make(map[common.Hash]*types.Receipt),
	}
	c.Fund(common.HexToAddress(DevAddress), new(big.Int).Mul(big.NewInt(10_000), big.NewInt(1e18)))
	return c
}

// DevKey returns the private key of the dev account
func DevKey() *ecdsa.PrivateKey {
	key, err := crypto.HexToECDSA(DevKeyHex)
	if err != nil {
		panic(err)
	}
	return key
}

// Fund sets the balance of an account
func (c *Chain) Fund(account common.Address, wei *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[account] = new(big.Int).Set(wei)
}

// Now returns the timestamp of the next block
func (c *Chain) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the chain clock forward
func (c *Chain) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SentTransactions returns the number of transactions accepted so far
func (c *Chain) SentTransactions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

// InstallRaffle places a raffle contract at a fresh address without a transaction
func (c *Chain) InstallRaffle(owner, poap common.Address) common.Address {
	c.mu.Lock()
	defer c.mu.Unlock()

	address := crypto.CreateAddress(owner, uint64(len(c.contracts))+1_000_000)
	c.contracts[address] = newRaffleContract(owner, poap)
	return address
}

// Poap returns the constructor argument a contract was created with
func (c *Chain) Poap(contract common.Address) (common.Address, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rc, ok := c.contracts[contract]
	if !ok {
		return common.Address{}, false
	}
	return rc.poap, true
}

// ChainID implements ethclient.Client.ChainID
func (c *Chain) ChainID(ctx context.Context) (*big.Int, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.chainID), nil
}

// BlockNumber implements ethclient.Client.BlockNumber
func (c *Chain) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.fail(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.block, nil
}

// BalanceAt implements ethclient.Client.BalanceAt
func (c *Chain) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return new(big.Int).Set(c.balanceOf(account)), nil
}

// HeaderByNumber returns a pre-London header so bind builds legacy transactions
func (c *Chain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.block
	if number != nil {
		if number.Uint64() > c.block {
			return nil, ethereum.NotFound
		}
		n = number.Uint64()
	}
	return &types.Header{
		Number:   new(big.Int).SetUint64(n),
		Time:     uint64(c.now.Unix()),
		GasLimit: 30_000_000,
	}, nil
}

// CodeAt implements bind.ContractCaller
func (c *Chain) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.contracts[contract]; ok {
		return []byte{0x60, 0x80, 0x60, 0x40}, nil
	}
	return nil, nil
}

// PendingCodeAt implements bind.ContractTransactor
func (c *Chain) PendingCodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	return c.CodeAt(ctx, contract, nil)
}

// PendingNonceAt implements bind.ContractTransactor
func (c *Chain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if err := c.fail(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonces[account], nil
}

// SuggestGasPrice implements bind.ContractTransactor
func (c *Chain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(gasPrice), nil
}

// SuggestGasTipCap implements bind.ContractTransactor
func (c *Chain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return c.SuggestGasPrice(ctx)
}

// CallContract executes a read-only call against the current state
func (c *Chain) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.To == nil {
		return nil, errors.New("call without recipient")
	}
	rc, ok := c.contracts[*msg.To]
	if !ok {
		return nil, nil
	}
	return rc.execute(msg.From, msg.Data, c.now, c.block, false)
}

// PendingCallContract implements bind.PendingContractCaller
func (c *Chain) PendingCallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	return c.CallContract(ctx, msg, nil)
}

// EstimateGas runs the call without committing and returns a fixed estimate
func (c *Chain) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if err := c.fail(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.To == nil {
		if _, err := constructorArg(msg.Data); err != nil {
			return 0, err
		}
		return 1_500_000, nil
	}
	rc, ok := c.contracts[*msg.To]
	if !ok {
		return 21_000, nil
	}
	if _, err := rc.execute(msg.From, msg.Data, c.now, c.block, false); err != nil {
		return 0, err
	}
	return 150_000, nil
}

// SendTransaction validates, executes and mines tx in its own block
func (c *Chain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.fail(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if tx.ChainId().Cmp(c.chainID) != 0 {
		return fmt.Errorf("invalid chain id: have %s want %s", tx.ChainId(), c.chainID)
	}
	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if nonce := c.nonces[from]; tx.Nonce() != nonce {
		return fmt.Errorf("nonce mismatch: have %d want %d", tx.Nonce(), nonce)
	}

	cost := new(big.Int).Mul(new(big.Int).SetUint64(tx.Gas()), tx.GasPrice())
	cost.Add(cost, tx.Value())
	balance := c.balanceOf(from)
	if balance.Cmp(cost) < 0 {
		return fmt.Errorf("insufficient funds for gas * price + value: address %s have %s want %s", from.Hex(), balance, cost)
	}

	c.nonces[from]++
	c.block++
	c.sent = append(c.sent, tx)

	receipt := &types.Receipt{
		Type:        tx.Type(),
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(c.block),
		GasUsed:     tx.Gas() / 2,
	}

	switch {
	case c.RevertOnMine:
		c.RevertOnMine = false
		receipt.Status = types.ReceiptStatusFailed
	case tx.To() == nil:
		poap, err := constructorArg(tx.Data())
		if err != nil {
			receipt.Status = types.ReceiptStatusFailed
			break
		}
		address := crypto.CreateAddress(from, tx.Nonce())
		c.contracts[address] = newRaffleContract(from, poap)
		receipt.ContractAddress = address
	default:
		if rc, ok := c.contracts[*tx.To()]; ok {
			if _, err := rc.execute(from, tx.Data(), c.now, c.block, true); err != nil {
				receipt.Status = types.ReceiptStatusFailed
			}
		}
	}

	fee := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), tx.GasPrice())
	c.balances[from] = new(big.Int).Sub(balance, fee)
	c.receipts[tx.Hash()] = receipt
	return nil
}

// TransactionReceipt implements bind.DeployBackend
func (c *Chain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if err := c.fail(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	receipt, ok := c.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// FilterLogs implements bind.ContractFilterer; the fake emits no logs
func (c *Chain) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

// SubscribeFilterLogs implements bind.ContractFilterer
func (c *Chain) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (c *Chain) fail() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Fail
}

func (c *Chain) balanceOf(account common.Address) *big.Int {
	if b, ok := c.balances[account]; ok {
		return b
	}
	return new(big.Int)
}

// SetFail sets or clears the injected RPC failure
func (c *Chain) SetFail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Fail = err
}
