package handler

import (
	"context"
	"ledgerhook/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	IngestSubscription(ctx context.Context, msg core.WebhookMessage, secret string) (core.EntryRecord, error)
	IngestRedemption(ctx context.Context, msg core.WebhookMessage, secret string) (core.EntryRecord, error)
	GetSubscriptions(ctx context.Context) ([]core.EntryRecord, error)
	GetRedemptions(ctx context.Context) ([]core.EntryRecord, error)
	FindSubscriptionByTxHash(ctx context.Context, txHash string) (core.EntryRecord, error)
	FindRedemptionByTxHash(ctx context.Context, txHash string) (core.EntryRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
