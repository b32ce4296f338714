package journal

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/poap-raffle/raffle-cli/internal/domain"
	"github.com/poap-raffle/raffle-cli/internal/domain/config"
	"github.com/poap-raffle/raffle-cli/internal/usecase"
)

// Nop discards writes and lists nothing
type Nop struct{}

func (Nop) Record(context.Context, *domain.JournalEntry) error { return nil }

func (Nop) List(context.Context, domain.JournalFilter) ([]*domain.JournalEntry, error) {
	return nil, nil
}

// Provide returns the SQLite journal, or Nop when the journal is disabled
func Provide(cfg *config.RuntimeConfig, log *slog.Logger) (usecase.Journal, func()) {
	if !cfg.Journal {
		return Nop{}, func() {}
	}

	store := NewStore(filepath.Join(cfg.DataDir, FileName), log)
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn("failed to close journal", "error", err)
		}
	}
}

var (
	_ usecase.Journal = (*Store)(nil)
	_ usecase.Journal = Nop{}
)
