package core

import "time"

// WebhookMessage is the decoded indexer envelope reduced to the fields the
// ingestion pipeline consumes. Every other field the indexer sends is
// ignored.
type WebhookMessage struct {
	Op  string
	New *EntityState
}

// EntityState carries the new-entity fields as delivered. Amount holds the
// raw JSON token because the indexer sends it either as a number or as a
// decimal string depending on the entity.
type EntityState struct {
	TransactionHash string
	User            string
	Amount          string
}

// NormalizedEvent is the strict triple produced by the payload normalizer.
type NormalizedEvent struct {
	TxHash string
	User   string
	Amount string
}

// EntryRecord is the ledger entry as returned to callers, with the amount
// rendered as a decimal string.
type EntryRecord struct {
	ID        string    `json:"id"`
	TxHash    string    `json:"txHash"`
	User      string    `json:"user"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryRecordedEvent is handed to the event publisher after an entry has
// been persisted.
type EntryRecordedEvent struct {
	Ledger     string    `json:"ledger"`
	ID         string    `json:"id"`
	TxHash     string    `json:"tx_hash"`
	User       string    `json:"user"`
	Amount     string    `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}
