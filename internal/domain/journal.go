package domain

import "time"

// JournalKind identifies what kind of write a journal entry records
type JournalKind string

const (
	JournalDeploy      JournalKind = "deploy"
	JournalCreate      JournalKind = "createRaffle"
	JournalPickAndMint JournalKind = "pickAndMint"
)

// JournalEntry is one locally recorded write against the chain
type JournalEntry struct {
	ID          string
	Kind        JournalKind
	Network     string
	ChainID     uint64
	Contract    string
	RaffleNum   string
	TxHash      string
	From        string
	Status      string
	GasUsed     uint64
	BlockNumber uint64
	CreatedAt   time.Time
}

// JournalFilter narrows a journal listing
type JournalFilter struct {
	Network string
	Kind    JournalKind
	Limit   int
}
