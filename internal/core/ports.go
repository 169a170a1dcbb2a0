package core

import (
	"context"
	"ledgerhook/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateEntry(ctx context.Context, ledger repository.Ledger, entry repository.LedgerEntry) (repository.LedgerEntry, error)
	GetAllEntries(ctx context.Context, ledger repository.Ledger) ([]repository.LedgerEntry, error)
	GetEntryByTxHash(ctx context.Context, ledger repository.Ledger, txHash string) (repository.LedgerEntry, error)
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	PublishEntryRecorded(ctx context.Context, event EntryRecordedEvent) error
}
