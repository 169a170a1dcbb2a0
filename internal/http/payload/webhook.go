package payload

import (
	"encoding/json"
	"ledgerhook/internal/core"

	"github.com/jellydator/validation"
)

// WebhookRequest mirrors the indexer delivery envelope. Only op and
// data.new matter downstream; the named optional fields document what the
// indexer currently sends, and anything it adds later is ignored on decode.
type WebhookRequest struct {
	Op          string       `json:"op"`
	Data        *WebhookData `json:"data"`
	DataSource  string       `json:"data_source"`
	Entity      string       `json:"entity"`
	WebhookName string       `json:"webhook_name"`
	WebhookID   string       `json:"webhook_id"`
	ID          string       `json:"id"`
}

// WebhookData holds the entity state transition. Old is null for INSERT
// operations and is ignored either way.
type WebhookData struct {
	New *EntityState    `json:"new"`
	Old json.RawMessage `json:"old"`
}

// EntityState keeps Amount as the raw JSON token: the indexer sends it as
// a number for some entities and a decimal string for others.
type EntityState struct {
	TransactionHash string          `json:"transaction_hash"`
	User            string          `json:"user"`
	Amount          json.RawMessage `json:"amount"`
}

func (wr WebhookRequest) Validate() error {
	return validation.ValidateStruct(&wr,
		validation.Field(&wr.Op, validation.Required),
	)
}

func (wr WebhookRequest) ToMessage() core.WebhookMessage {
	msg := core.WebhookMessage{
		Op: wr.Op,
	}

	if wr.Data != nil && wr.Data.New != nil {
		msg.New = &core.EntityState{
			TransactionHash: wr.Data.New.TransactionHash,
			User:            wr.Data.New.User,
			Amount:          string(wr.Data.New.Amount),
		}
	}

	return msg
}
