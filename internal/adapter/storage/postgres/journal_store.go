package postgres

import (
	"context"
	"fmt"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
)

const journalTable = "audit_entries"

// journalSchema creates the append-only mirror of the ledger's audit entries.
const journalSchema = `CREATE TABLE IF NOT EXISTS audit_entries (
	id             UUID PRIMARY KEY,
	target_service TEXT        NOT NULL,
	owner_pix      TEXT        NOT NULL,
	description    TEXT        NOT NULL,
	balance_after  BIGINT      NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_entries_owner_idx ON audit_entries (owner_pix, created_at DESC)`

// JournalStore implements ports.JournalStore. Rows are only ever inserted;
// the ledger never rebuilds state from them.
type JournalStore struct {
	pool Pool
}

// NewJournalStore creates a new JournalStore.
func NewJournalStore(pool Pool) *JournalStore {
	return &JournalStore{pool: pool}
}

var _ ports.JournalStore = (*JournalStore)(nil)

// EnsureSchema creates the journal table when missing.
func (s *JournalStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, journalSchema); err != nil {
		return fmt.Errorf("create journal schema: %w", err)
	}
	return nil
}

// Append inserts one record. Re-appending the same entry id is a no-op.
func (s *JournalStore) Append(ctx context.Context, rec domain.JournalRecord) error {
	query := `INSERT INTO audit_entries (id, target_service, owner_pix, description, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	_, err := s.pool.Exec(ctx, query,
		rec.ID, string(rec.TargetService), rec.OwnerPix,
		rec.Description, rec.BalanceAfter, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByOwner returns up to limit records for ownerPix, newest first.
func (s *JournalStore) ListByOwner(ctx context.Context, ownerPix string, limit int) ([]domain.JournalRecord, error) {
	query := `SELECT id, target_service, owner_pix, description, balance_after, created_at
		FROM audit_entries WHERE owner_pix = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := s.pool.Query(ctx, query, ownerPix, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []domain.JournalRecord
	for rows.Next() {
		var (
			rec     domain.JournalRecord
			service string
		)
		if err := rows.Scan(&rec.ID, &service, &rec.OwnerPix, &rec.Description, &rec.BalanceAfter, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry row: %w", err)
		}
		rec.TargetService = domain.BankService(service)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entry rows: %w", err)
	}
	return out, nil
}
