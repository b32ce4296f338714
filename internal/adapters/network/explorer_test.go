package network

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestExplorers(t *testing.T) {
	e := NewExplorers()
	hash := common.HexToHash("0x01")
	addr := common.HexToAddress("0x22c1f6050e56d2876009903609a2cc3fef83b415")

	assert.Equal(t, "https://gnosisscan.io/tx/"+hash.Hex(), e.TxURL(100, hash))
	assert.Equal(t, "https://etherscan.io/address/"+addr.Hex(), e.AddressURL(1, addr))
	assert.Empty(t, e.TxURL(31337, hash))
	assert.Empty(t, e.AddressURL(31337, addr))

	explorer, ok := e.Lookup(100)
	assert.True(t, ok)
	assert.Equal(t, "gnosis", explorer.Name)
}
