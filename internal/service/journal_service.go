package service

import (
	"context"
	"sync"
	"time"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"

	"github.com/rs/zerolog"
)

// defaultAppendRetries are the pauses between attempts to persist a record.
var defaultAppendRetries = []time.Duration{
	100 * time.Millisecond,
	500 * time.Millisecond,
	2 * time.Second,
}

// JournalService implements ports.AuditJournal. Every record is logged and,
// when a store is configured, persisted in the background.
type JournalService struct {
	store   ports.JournalStore
	retries []time.Duration
	wg      sync.WaitGroup
	log     zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// NewJournalService creates a journal. If store is nil, records are only
// written to the logger.
func NewJournalService(store ports.JournalStore, log zerolog.Logger) *JournalService {
	return &JournalService{
		store:   store,
		retries: defaultAppendRetries,
		log:     log,
	}
}

var _ ports.AuditJournal = (*JournalService)(nil)

// Record publishes rec asynchronously (fire-and-forget).
func (s *JournalService) Record(ctx context.Context, rec domain.JournalRecord) {
	s.log.Info().
		Str("entry_id", rec.ID.String()).
		Str("service", string(rec.TargetService)).
		Str("owner_pix", rec.OwnerPix).
		Int64("balance_after", rec.BalanceAfter).
		Str("description", rec.Description).
		Msg("audit")

	if s.store == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Warn().Str("entry_id", rec.ID.String()).Msg("journal: closed, record not persisted")
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.persist(context.WithoutCancel(ctx), rec)
	}()
}

func (s *JournalService) persist(ctx context.Context, rec domain.JournalRecord) {
	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(s.retries[attempt-1])
		}

		err := s.store.Append(ctx, rec)
		if err == nil {
			return
		}
		s.log.Warn().Err(err).
			Str("entry_id", rec.ID.String()).
			Int("attempt", attempt+1).
			Msg("journal: failed to persist audit record")
	}

	s.log.Error().Str("entry_id", rec.ID.String()).Msg("journal: all retry attempts exhausted")
}

// Entries returns up to limit persisted records for ownerPix, newest first.
func (s *JournalService) Entries(ctx context.Context, ownerPix string, limit int) ([]domain.JournalRecord, error) {
	if s.store == nil {
		return nil, apperror.ErrJournalUnavailable()
	}

	recs, err := s.store.ListByOwner(ctx, ownerPix, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return recs, nil
}

// Close stops accepting writes and waits for in-flight ones like Wait.
// Records published afterwards are only logged.
func (s *JournalService) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Wait(ctx)
}

// Wait blocks until in-flight writes finish or ctx is done. It must not run
// concurrently with Record; use Close when shutting down.
func (s *JournalService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
