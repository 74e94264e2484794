package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"
	"pix-bank/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// reservationTTL bounds how long a crashed request can hold its key.
const reservationTTL = 30 * time.Second

// cachedResponse is what gets stored for a completed request.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyRecorder tees the handler's output so it can be cached afterwards.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated Idempotency-Key
// instead of executing the handler again. Only 2xx responses are stored;
// failed attempts release the key so the client can retry. Requests without
// the header, and cache outages, pass straight through.
func Idempotency(cache ports.IdempotencyCache, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		idemKey := c.GetHeader(HeaderIdempotencyKey)
		if idemKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(idemKey) > 255 {
			response.Abort(c, apperror.Validation("Idempotency-Key too long"))
			return
		}

		ctx := c.Request.Context()
		key := c.Request.Method + ":" + c.Request.URL.Path + ":" + idemKey

		cached, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency lookup failed, processing request")
			c.Next()
			return
		}
		if replay(c, cached, log) {
			return
		}

		reserved, err := cache.Reserve(ctx, key, reservationTTL)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency reserve failed, processing request")
			c.Next()
			return
		}
		if !reserved {
			response.Abort(c, apperror.ErrIdempotencyInFlight())
			return
		}

		// Another request may have completed between the lookup and the
		// reservation. The reservation is held until the replay is written;
		// an unreadable entry is overwritten by this request's outcome.
		if cached, err := cache.Get(ctx, key); err == nil && replay(c, cached, log) {
			if err := cache.Release(context.WithoutCancel(ctx), key); err != nil {
				log.Warn().Err(err).Str("key", idemKey).Msg("idempotency release failed")
			}
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// The outcome must be recorded even if the client went away.
		ctx = context.WithoutCancel(ctx)
		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := cache.Release(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", idemKey).Msg("idempotency release failed")
			}
			return
		}

		payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
		if err != nil {
			log.Warn().Err(err).Msg("idempotency encode failed")
			_ = cache.Release(ctx, key)
			return
		}
		if err := cache.Set(ctx, key, payload, ttl); err != nil {
			log.Warn().Err(err).Str("key", idemKey).Msg("idempotency store failed")
		}
	}
}

// replay writes a stored response and aborts the chain. It reports false
// when there is nothing usable to replay.
func replay(c *gin.Context, cached []byte, log zerolog.Logger) bool {
	if cached == nil {
		return false
	}
	var prev cachedResponse
	if err := json.Unmarshal(cached, &prev); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable idempotency entry")
		return false
	}
	c.Header(HeaderReplayed, "true")
	c.Data(prev.Status, "application/json; charset=utf-8", prev.Body)
	c.Abort()
	return true
}
