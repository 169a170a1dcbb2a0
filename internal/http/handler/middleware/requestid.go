package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

// RequestIDKey is the context key under which the per-request id is stored.
const RequestIDKey ctxKey = "request_id"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID attaches a request id to the context and echoes it back in the
// X-Request-ID header. Caller supplied ids are kept.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		w.Header().Set("X-Request-ID", requestId)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
