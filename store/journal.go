package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"pos-terminal/models"
)

// StockTarget is the stock level an item must have once a checkout is applied.
type StockTarget struct {
	ItemID int `json:"item_id"`
	Stock  int `json:"stock"`
}

// JournalEntry is everything a checkout writes, recorded before any data file
// is touched. Replaying it is idempotent: stock is stored as absolute values
// and ledger rows are only appended when missing.
type JournalEntry struct {
	ID        uuid.UUID              `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Receipt   models.Receipt         `json:"receipt"`
	Details   []models.ReceiptDetail `json:"details"`
	Stock     []StockTarget          `json:"stock"`
}

func NewJournalEntry(receipt models.Receipt, details []models.ReceiptDetail, stock []StockTarget, now time.Time) JournalEntry {
	return JournalEntry{
		ID:        uuid.New(),
		CreatedAt: now,
		Receipt:   receipt,
		Details:   details,
		Stock:     stock,
	}
}

// Journal holds at most one pending checkout.
type Journal struct {
	Path string
}

func NewJournal(path string) *Journal {
	return &Journal{Path: path}
}

func (j *Journal) Write(entry JournalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(j.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := renameio.WriteFile(j.Path, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Pending returns the unapplied entry, or nil when there is none.
func (j *Journal) Pending() (*JournalEntry, error) {
	data, err := os.ReadFile(j.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var entry JournalEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	return &entry, nil
}

// Clear marks the pending entry as applied.
func (j *Journal) Clear() error {
	if err := os.Remove(j.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear journal: %w", err)
	}
	return nil
}
