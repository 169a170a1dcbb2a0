package core

import (
	"context"
	"errors"
	"fmt"
	"ledgerhook/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder is the ingestion pipeline for indexer webhooks: it authenticates
// the caller, normalizes the envelope and records the event in the target
// ledger. It also serves reads over the stored entries.
type Recorder struct {
	logs      *zap.SugaredLogger
	repo      Repository
	verifier  *SecretVerifier
	publisher EventPublisher
}

func NewRecorder(logger *zap.SugaredLogger, repo Repository, verifier *SecretVerifier, publisher EventPublisher) *Recorder {
	return &Recorder{
		logs:      logger,
		repo:      repo,
		verifier:  verifier,
		publisher: publisher,
	}
}

// IngestSubscription records one subscription event delivered by the
// indexer. The secret is checked before the envelope is touched.
func (r *Recorder) IngestSubscription(ctx context.Context, msg WebhookMessage, secret string) (EntryRecord, error) {
	return r.ingest(ctx, repository.LedgerSubscription, msg, secret)
}

// IngestRedemption records one redemption event. Identical to subscription
// ingestion except for the target ledger.
func (r *Recorder) IngestRedemption(ctx context.Context, msg WebhookMessage, secret string) (EntryRecord, error) {
	return r.ingest(ctx, repository.LedgerRedemption, msg, secret)
}

func (r *Recorder) ingest(ctx context.Context, ledger repository.Ledger, msg WebhookMessage, secret string) (EntryRecord, error) {
	if err := r.verifier.Check(secret); err != nil {
		return EntryRecord{}, err
	}

	event, err := Normalize(msg)
	if err != nil {
		return EntryRecord{}, err
	}

	// The id is assigned here, once, before the first persistence attempt.
	id, err := uuid.NewV7()
	if err != nil {
		return EntryRecord{}, fmt.Errorf("generate entry id: %w", err)
	}

	// No deduplication on txHash: the indexer delivers at least once, and a
	// redelivered event creates a second entry with its own id.
	created, err := r.repo.CreateEntry(ctx, ledger, repository.LedgerEntry{
		ID:     id.String(),
		TxHash: event.TxHash,
		User:   event.User,
		Amount: event.Amount,
	})
	if err != nil {
		return EntryRecord{}, fmt.Errorf("create %s entry: %w", ledger, err)
	}

	r.logs.Infow("ledger entry recorded",
		"ledger", ledger,
		"id", created.ID,
		"txHash", created.TxHash,
		"amount", created.Amount)

	if pubErr := r.publisher.PublishEntryRecorded(ctx, EntryRecordedEvent{
		Ledger:     string(ledger),
		ID:         created.ID,
		TxHash:     created.TxHash,
		User:       created.User,
		Amount:     created.Amount,
		RecordedAt: created.CreatedAt,
	}); pubErr != nil {
		r.logs.Errorw("failed to publish entry recorded event",
			"error", pubErr,
			"ledger", ledger,
			"id", created.ID)
	}

	return entryToRecord(created), nil
}

// GetSubscriptions lists every stored subscription entry in store order.
func (r *Recorder) GetSubscriptions(ctx context.Context) ([]EntryRecord, error) {
	return r.list(ctx, repository.LedgerSubscription)
}

// GetRedemptions lists every stored redemption entry in store order.
func (r *Recorder) GetRedemptions(ctx context.Context) ([]EntryRecord, error) {
	return r.list(ctx, repository.LedgerRedemption)
}

// FindSubscriptionByTxHash returns the first subscription entry matching
// the hash. The hash is normalized internally so callers may pass any of
// the accepted forms.
func (r *Recorder) FindSubscriptionByTxHash(ctx context.Context, txHash string) (EntryRecord, error) {
	return r.find(ctx, repository.LedgerSubscription, txHash)
}

// FindRedemptionByTxHash returns the first redemption entry matching the hash.
func (r *Recorder) FindRedemptionByTxHash(ctx context.Context, txHash string) (EntryRecord, error) {
	return r.find(ctx, repository.LedgerRedemption, txHash)
}

func (r *Recorder) list(ctx context.Context, ledger repository.Ledger) ([]EntryRecord, error) {
	entries, err := r.repo.GetAllEntries(ctx, ledger)
	if err != nil {
		return nil, fmt.Errorf("get %s entries: %w", ledger, err)
	}

	records := make([]EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = entryToRecord(entry)
	}

	return records, nil
}

func (r *Recorder) find(ctx context.Context, ledger repository.Ledger, txHash string) (EntryRecord, error) {
	entry, err := r.repo.GetEntryByTxHash(ctx, ledger, NormalizeHex(txHash))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("get %s entry by tx hash: %w", ledger, err)
	}

	return entryToRecord(entry), nil
}

func entryToRecord(entry repository.LedgerEntry) EntryRecord {
	return EntryRecord{
		ID:        entry.ID,
		TxHash:    entry.TxHash,
		User:      entry.User,
		Amount:    entry.Amount,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
