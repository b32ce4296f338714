package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RaffleSpec holds the createRaffle arguments in their on-chain types
type RaffleSpec struct {
	EventNum     *big.Int
	WinnersNum   *big.Int
	Expiry       *big.Int
	Participants []common.Address
	TokenURI     string
}

// Raffle is the client view of a raffle record held by the contract.
// Participants, Winners and NFTImage are filled in by separate reads and may be empty.
type Raffle struct {
	RaffleNum    *big.Int
	EventNum     *big.Int
	WinnersNum   *big.Int
	Expiry       *big.Int
	TokenURI     string
	Participants []common.Address
	Winners      []common.Address
	NFTImage     string
}

// Exists reports whether the record is a real raffle rather than the
// zeroed struct a public mapping returns for unknown keys.
func (r *Raffle) Exists() bool {
	return r != nil && r.RaffleNum != nil && r.RaffleNum.Sign() != 0
}

// ExpiryTime converts the expiry to a time when it fits in an int64
func (r *Raffle) ExpiryTime() (time.Time, bool) {
	if r.Expiry == nil || !r.Expiry.IsInt64() {
		return time.Time{}, false
	}
	return time.Unix(r.Expiry.Int64(), 0), true
}

// Expired reports whether winner selection is permitted at the given time
func (r *Raffle) Expired(at time.Time) bool {
	return r.Expiry != nil && r.Expiry.Cmp(big.NewInt(at.Unix())) <= 0
}

// Resolved reports whether winners have been drawn
func (r *Raffle) Resolved() bool {
	return len(r.Winners) > 0
}

// ContractInfo holds the contract-level read values
type ContractInfo struct {
	Address         common.Address
	Name            string
	LastRaffleCount *big.Int
}
