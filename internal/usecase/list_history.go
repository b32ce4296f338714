package usecase

import (
	"context"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
)

// ListHistoryParams contains parameters for listing journal entries
type ListHistoryParams struct {
	Network     string
	AllNetworks bool
	Kind        string
	Limit       int
}

// ListHistoryResult contains journal entries newest first
type ListHistoryResult struct {
	Entries []*domain.JournalEntry
	Enabled bool
}

// ListHistory is a use case for reading the local transaction journal
type ListHistory struct {
	config  *config.RuntimeConfig
	journal Journal
}

// NewListHistory creates a new ListHistory use case
func NewListHistory(cfg *config.RuntimeConfig, journal Journal) *ListHistory {
	return &ListHistory{config: cfg, journal: journal}
}

// Run executes the use case
func (uc *ListHistory) Run(ctx context.Context, params ListHistoryParams) (*ListHistoryResult, error) {
	if !uc.config.Journal {
		return &ListHistoryResult{Enabled: false}, nil
	}

	filter := domain.JournalFilter{
		Network: params.Network,
		Kind:    domain.JournalKind(params.Kind),
		Limit:   params.Limit,
	}
	if filter.Network == "" && !params.AllNetworks && uc.config.Network != nil {
		filter.Network = uc.config.Network.Name
	}

	entries, err := uc.journal.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListHistoryResult{Entries: entries, Enabled: true}, nil
}
