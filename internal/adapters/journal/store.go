package journal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poap-raffle/raffle-cli/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FileName is the journal database inside the data dir
const FileName = "journal.db"

// entryModel is the journal_entries row
type entryModel struct {
	ID          string `gorm:"primaryKey"`
	Kind        string `gorm:"index"`
	Network     string `gorm:"index"`
	ChainID     uint64
	Contract    string
	RaffleNum   string
	TxHash      string `gorm:"index"`
	Sender      string
	Status      string
	GasUsed     uint64
	BlockNumber uint64
	CreatedAt   time.Time `gorm:"index"`
}

func (entryModel) TableName() string {
	return "journal_entries"
}

// Store is a SQLite-backed journal. The database is opened on first use so
// read-only commands never create it.
type Store struct {
	path string
	log  *slog.Logger

	once sync.Once
	db   *gorm.DB
	err  error
}

// NewStore creates a journal stored at path
func NewStore(path string, log *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With("component", "journal"),
	}
}

func (s *Store) open() (*gorm.DB, error) {
	s.once.Do(func() {
		if s.path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
				s.err = fmt.Errorf("failed to create journal directory: %w", err)
				return
			}
		}

		// Only log errors and slow queries
		gormLogger := logger.New(
			log.New(os.Stderr, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Error,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)

		db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{Logger: gormLogger})
		if err != nil {
			s.err = fmt.Errorf("failed to open journal: %w", err)
			return
		}
		if err := db.AutoMigrate(&entryModel{}); err != nil {
			s.err = fmt.Errorf("failed to migrate journal: %w", err)
			return
		}
		s.db = db
		s.log.Debug("journal opened", "path", s.path)
	})
	return s.db, s.err
}

// Record appends an entry, assigning an id and timestamp when missing
func (s *Store) Record(ctx context.Context, entry *domain.JournalEntry) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	row := toModel(entry)
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Kind, err)
	}
	return nil
}

// List returns entries newest first
func (s *Store) List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Model(&entryModel{}).Order("created_at desc")
	if filter.Network != "" {
		query = query.Where("network = ?", filter.Network)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []entryModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, fromModel(&rows[i]))
	}
	return entries, nil
}

// Close releases the database handle if it was opened
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toModel(e *domain.JournalEntry) entryModel {
	return entryModel{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Network:     e.Network,
		ChainID:     e.ChainID,
		Contract:    e.Contract,
		RaffleNum:   e.RaffleNum,
		TxHash:      e.TxHash,
		Sender:      e.From,
		Status:      e.Status,
		GasUsed:     e.GasUsed,
		BlockNumber: e.BlockNumber,
		CreatedAt:   e.CreatedAt,
	}
}

func fromModel(m *entryModel) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:          m.ID,
		Kind:        domain.JournalKind(m.Kind),
		Network:     m.Network,
		ChainID:     m.ChainID,
		Contract:    m.Contract,
		RaffleNum:   m.RaffleNum,
		TxHash:      m.TxHash,
		From:        m.Sender,
		Status:      m.Status,
		GasUsed:     m.GasUsed,
		BlockNumber: m.BlockNumber,
		CreatedAt:   m.CreatedAt,
	}
}
