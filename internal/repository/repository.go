package repository

import (
	"context"
	"errors"
	"fmt"
	"ledgerhook/internal/db"
)

var ErrEntryNotFound error = errors.New("ledger entry not found")

// LedgerRepository stores and reads ledger entries for both ledgers over a
// single storage backend.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

// MigrateTables creates both ledger tables if they do not exist yet.
func (r *LedgerRepository) MigrateTables() error {
	for _, ledger := range []Ledger{LedgerSubscription, LedgerRedemption} {
		if err := r.db.MigrateTable(ledger.Table(), &LedgerEntry{}); err != nil {
			return fmt.Errorf("migrate %s table: %w", ledger, err)
		}
	}

	return nil
}

// CreateEntry persists one entry into the target ledger and returns it with
// the store-assigned timestamps populated.
func (r *LedgerRepository) CreateEntry(ctx context.Context, ledger Ledger, entry LedgerEntry) (LedgerEntry, error) {
	if err := r.db.InsertInto(ctx, ledger.Table(), &entry); err != nil {
		return LedgerEntry{}, fmt.Errorf("insert %s entry: %w", ledger, err)
	}

	return entry, nil
}

// GetAllEntries returns every entry of a ledger in store default order.
func (r *LedgerRepository) GetAllEntries(ctx context.Context, ledger Ledger) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	if err := r.db.GetAllFrom(ctx, ledger.Table(), &entries); err != nil {
		return nil, fmt.Errorf("get %s entries: %w", ledger, err)
	}

	return entries, nil
}

// GetEntryByTxHash returns the first entry matching the given transaction
// hash, or ErrEntryNotFound.
func (r *LedgerRepository) GetEntryByTxHash(ctx context.Context, ledger Ledger, txHash string) (LedgerEntry, error) {
	var entry LedgerEntry
	err := r.db.GetOneFrom(ctx, ledger.Table(), "tx_hash", txHash, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return LedgerEntry{}, ErrEntryNotFound
		}
		return LedgerEntry{}, fmt.Errorf("get %s entry by tx_hash: %w", ledger, err)
	}

	return entry, nil
}

// Close releases the underlying store connection.
func (r *LedgerRepository) Close() error {
	return r.db.Close()
}
