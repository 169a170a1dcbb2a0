package repository

import "time"

// Ledger selects which of the two structurally identical ledger tables an
// operation targets.
type Ledger string

const (
	LedgerSubscription Ledger = "subscription"
	LedgerRedemption   Ledger = "redemption"
)

func (l Ledger) Table() string {
	return string(l) + "_entries"
}

// LedgerEntry is one recorded indexer event. Entries are written once and
// never updated or deleted. Amount is kept as a decimal string because
// on-chain amounts exceed the float64 safe-integer range.
type LedgerEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TxHash    string    `gorm:"size:100;index;not null" json:"txHash"`
	User      string    `gorm:"size:100;not null" json:"user"`
	Amount    string    `gorm:"size:100;not null" json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
