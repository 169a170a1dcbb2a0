package events

import (
	"context"
	"ledgerhook/internal/core"
)

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishEntryRecorded(ctx context.Context, event core.EntryRecordedEvent) error {
	return nil
}
