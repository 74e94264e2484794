package ports

import (
	"context"
	"io"
	"time"

	"pix-bank/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// AuditJournal receives every audit entry committed by the repositories.
// Implementations must not block the caller.
type AuditJournal interface {
	Record(ctx context.Context, rec domain.JournalRecord)
}

// JournalReader reads back persisted audit records for inspection. The
// ledger itself never consults it.
type JournalReader interface {
	Entries(ctx context.Context, ownerPix string, limit int) ([]domain.JournalRecord, error)
}

// IdempotencyCache stores responses of already-processed requests and guards
// keys that are still being processed.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RateLimitResult is the outcome of one rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key inside fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// StatementRenderer writes a printable statement for one account.
type StatementRenderer interface {
	Render(w io.Writer, account *domain.AccountWallet, wallet *domain.InvestmentWallet) error
}
