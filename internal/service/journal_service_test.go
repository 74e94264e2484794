package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports/mocks"
	"pix-bank/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testRecord() domain.JournalRecord {
	return domain.JournalRecord{
		AuditEntry:   domain.NewAuditEntry(domain.ServiceAccount, "Withdrawal of R$30,00"),
		OwnerPix:     "a@x.com",
		BalanceAfter: 7000,
	}
}

func waitFor(t *testing.T, svc *JournalService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx), "journal writes not finished in time")
}

func TestJournalService_Record_PersistsToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	svc := NewJournalService(store, newTestLogger())

	rec := testRecord()
	store.EXPECT().Append(gomock.Any(), rec).Return(nil)

	svc.Record(context.Background(), rec)
	waitFor(t, svc)
}

func TestJournalService_Record_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	svc := NewJournalService(store, newTestLogger())
	svc.retries = []time.Duration{time.Millisecond, time.Millisecond}

	rec := testRecord()
	gomock.InOrder(
		store.EXPECT().Append(gomock.Any(), rec).Return(errors.New("connection reset")),
		store.EXPECT().Append(gomock.Any(), rec).Return(nil),
	)

	svc.Record(context.Background(), rec)
	waitFor(t, svc)
}

func TestJournalService_Record_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	var buf bytes.Buffer
	svc := NewJournalService(store, zerolog.New(&buf))
	svc.retries = []time.Duration{time.Millisecond}

	store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("down")).Times(2)

	svc.Record(context.Background(), testRecord())
	waitFor(t, svc)
	assert.Contains(t, buf.String(), "all retry attempts exhausted")
}

func TestJournalService_Record_SurvivesCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	svc := NewJournalService(store, newTestLogger())

	store.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.JournalRecord) error {
			return ctx.Err()
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Record(ctx, testRecord())
	cancel()
	waitFor(t, svc)
}

func TestJournalService_Record_NilStore(t *testing.T) {
	var buf bytes.Buffer
	svc := NewJournalService(nil, zerolog.New(&buf))

	svc.Record(context.Background(), testRecord())
	waitFor(t, svc)

	assert.Contains(t, buf.String(), `"owner_pix":"a@x.com"`)
	assert.Contains(t, buf.String(), `"message":"audit"`)
}

func TestJournalService_CloseRejectsLateRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	var buf bytes.Buffer
	svc := NewJournalService(store, zerolog.New(&buf))

	rec := testRecord()
	store.EXPECT().Append(gomock.Any(), rec).Return(nil)
	svc.Record(context.Background(), rec)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Close(ctx))

	// No Append expectation: the store must not be called again.
	svc.Record(context.Background(), testRecord())
	require.NoError(t, svc.Wait(ctx))
	assert.Contains(t, buf.String(), "journal: closed, record not persisted")
}

func TestJournalService_Entries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	svc := NewJournalService(store, newTestLogger())

	want := []domain.JournalRecord{testRecord()}
	store.EXPECT().ListByOwner(gomock.Any(), "a@x.com", 20).Return(want, nil)
	store.EXPECT().ListByOwner(gomock.Any(), "b@x.com", 20).Return(nil, errors.New("timeout"))

	got, err := svc.Entries(context.Background(), "a@x.com", 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Entries(context.Background(), "b@x.com", 20)
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}

func TestJournalService_EntriesWithoutStore(t *testing.T) {
	svc := NewJournalService(nil, newTestLogger())

	_, err := svc.Entries(context.Background(), "a@x.com", 20)
	assert.Equal(t, "SYS_002", apperror.CodeOf(err))
}
