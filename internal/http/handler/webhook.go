package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ledgerhook/internal/core"
	"ledgerhook/internal/http/handler/middleware"
	"ledgerhook/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	IngestSubscription  = "POST /webhook/subscription"
	IngestRedemption    = "POST /webhook/redemption"
	GetSubscriptions    = "GET /webhook/subscriptions"
	GetRedemptions      = "GET /webhook/redemptions"
	GetSubscriptionByTx = "GET /webhook/subscription/{txHash}"
	GetRedemptionByTx   = "GET /webhook/redemption/{txHash}"
)

// SecretHeader carries the shared secret set by the indexer on every delivery.
const SecretHeader = "goldsky-webhook-secret"

type WebhookHandler struct {
	logs    *zap.SugaredLogger
	decoder RequestDecoder
	service LedgerService
}

func NewWebhookHandler(logger *zap.SugaredLogger, decoder RequestDecoder, service LedgerService) *WebhookHandler {
	return &WebhookHandler{
		logs:    logger,
		decoder: decoder,
		service: service,
	}
}

func (h *WebhookHandler) HandleIngestSubscription(w http.ResponseWriter, r *http.Request) {
	h.handleIngest(w, r, IngestSubscription, h.service.IngestSubscription)
}

func (h *WebhookHandler) HandleIngestRedemption(w http.ResponseWriter, r *http.Request) {
	h.handleIngest(w, r, IngestRedemption, h.service.IngestRedemption)
}

func (h *WebhookHandler) HandleGetSubscriptions(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, GetSubscriptions, h.service.GetSubscriptions)
}

func (h *WebhookHandler) HandleGetRedemptions(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, GetRedemptions, h.service.GetRedemptions)
}

func (h *WebhookHandler) HandleGetSubscriptionByTxHash(w http.ResponseWriter, r *http.Request) {
	h.handleFind(w, r, GetSubscriptionByTx, h.service.FindSubscriptionByTxHash)
}

func (h *WebhookHandler) HandleGetRedemptionByTxHash(w http.ResponseWriter, r *http.Request) {
	h.handleFind(w, r, GetRedemptionByTx, h.service.FindRedemptionByTxHash)
}

func (h *WebhookHandler) handleIngest(w http.ResponseWriter, r *http.Request, route string, ingest func(context.Context, core.WebhookMessage, string) (core.EntryRecord, error)) {
	requestId := requestIDFrom(r)

	var req payload.WebhookRequest
	if err := h.decoder.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Error: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	record, err := ingest(r.Context(), req.ToMessage(), r.Header.Get(SecretHeader))
	if err != nil {
		h.respond(w, Response{
			Error: err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("webhook ingestion failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("webhook event recorded",
		"id", record.ID,
		"txHash", record.TxHash,
		"handler", route,
		"request_id", requestId)

	h.respond(w, Response{
		Success: true,
		Data:    record,
	}, http.StatusCreated, requestId)
}

func (h *WebhookHandler) handleList(w http.ResponseWriter, r *http.Request, route string, list func(context.Context) ([]core.EntryRecord, error)) {
	requestId := requestIDFrom(r)

	records, err := list(r.Context())
	if err != nil {
		h.respond(w, Response{
			Error: err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list ledger entries",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	if records == nil {
		records = []core.EntryRecord{}
	}

	h.respond(w, Response{
		Success: true,
		Data:    records,
	}, http.StatusOK, requestId)
}

func (h *WebhookHandler) handleFind(w http.ResponseWriter, r *http.Request, route string, find func(context.Context, string) (core.EntryRecord, error)) {
	requestId := requestIDFrom(r)

	txHash := r.PathValue("txHash")
	if txHash == "" {
		h.respond(w, Response{
			Error: "txHash parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing txHash parameter", "handler", route, "request_id", requestId)
		return
	}

	record, err := find(r.Context(), txHash)
	if err != nil {
		h.respond(w, Response{
			Error: err.Error(),
		}, statusFor(err), requestId)
		h.logs.Errorw("failed to find ledger entry",
			"error", err,
			"txHash", txHash,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Data:    record,
	}, http.StatusOK, requestId)
}

// statusFor distinguishes "fix credentials" from "retry with different
// payload" so the indexer can tell them apart.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrSecretNotConfigured), errors.Is(err, core.ErrInvalidSecret):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrMissingPayload), errors.Is(err, core.ErrMissingFields), errors.Is(err, core.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrEntryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func requestIDFrom(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *WebhookHandler) respond(w http.ResponseWriter, resp Response, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
