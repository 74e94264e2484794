package integration

import (
	"context"
	"slices"
	"sync"

	"pix-bank/internal/core/domain"
)

// inMemoryJournalStore is a thread-safe ports.JournalStore used in place of
// PostgreSQL.
type inMemoryJournalStore struct {
	mu      sync.Mutex
	records []domain.JournalRecord
}

func newInMemoryJournalStore() *inMemoryJournalStore {
	return &inMemoryJournalStore{}
}

func (s *inMemoryJournalStore) Append(_ context.Context, rec domain.JournalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == rec.ID {
			return nil
		}
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *inMemoryJournalStore) ListByOwner(_ context.Context, ownerPix string, limit int) ([]domain.JournalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.JournalRecord
	for _, r := range s.records {
		if r.OwnerPix == ownerPix {
			out = append(out, r)
		}
	}
	// Appends arrive from concurrent writers; order like the SQL store does.
	slices.SortStableFunc(out, func(a, b domain.JournalRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *inMemoryJournalStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
