package network

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// Explorer is a block explorer for a known chain
type Explorer struct {
	ChainID uint64
	Name    string
	URL     string
}

// Explorers links transactions and addresses for well-known chains
type Explorers struct {
	byChainID map[uint64]Explorer
}

// NewExplorers creates the well-known explorer table
func NewExplorers() *Explorers {
	known := []Explorer{
		{ChainID: 1, Name: "mainnet", URL: "https://etherscan.io"},
		{ChainID: 11155111, Name: "sepolia", URL: "https://sepolia.etherscan.io"},
		{ChainID: 10, Name: "optimism", URL: "https://optimistic.etherscan.io"},
		{ChainID: 42161, Name: "arbitrum", URL: "https://arbiscan.io"},
		{ChainID: 137, Name: "polygon", URL: "https://polygonscan.com"},
		{ChainID: 8453, Name: "base", URL: "https://basescan.org"},
		{ChainID: 100, Name: "gnosis", URL: "https://gnosisscan.io"},
		{ChainID: 10200, Name: "chiado", URL: "https://gnosis-chiado.blockscout.com"},
		{ChainID: 42220, Name: "celo", URL: "https://celoscan.io"},
	}

	e := &Explorers{byChainID: make(map[uint64]Explorer, len(known))}
	for _, explorer := range known {
		e.byChainID[explorer.ChainID] = explorer
	}
	return e
}

// Lookup returns the explorer for a chain id
func (e *Explorers) Lookup(chainID uint64) (Explorer, bool) {
	explorer, ok := e.byChainID[chainID]
	return explorer, ok
}

// TxURL returns the explorer link for a transaction, or "" for unknown chains
func (e *Explorers) TxURL(chainID uint64, hash common.Hash) string {
	explorer, ok := e.Lookup(chainID)
	if !ok {
		return ""
	}
	return strings.TrimSuffix(explorer.URL, "/") + "/tx/" + hash.Hex()
}

// AddressURL returns the explorer link for an address, or "" for unknown chains
func (e *Explorers) AddressURL(chainID uint64, address common.Address) string {
	explorer, ok := e.Lookup(chainID)
	if !ok {
		return ""
	}
	return strings.TrimSuffix(explorer.URL, "/") + "/address/" + address.Hex()
}

var _ usecase.ExplorerLinker = (*Explorers)(nil)
