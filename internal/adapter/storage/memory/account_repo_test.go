package memory

import (
	"context"
	"errors"
	"math"
	"sync"
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

// journalSpy collects published records in memory.
type journalSpy struct {
	mu   sync.Mutex
	recs []domain.JournalRecord
}

func (j *journalSpy) Record(_ context.Context, rec domain.JournalRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.recs = append(j.recs, rec)
}

func (j *journalSpy) records() []domain.JournalRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]domain.JournalRecord(nil), j.recs...)
}

func newAccountRepo(t *testing.T) (*AccountRepo, *journalSpy) {
	t.Helper()
	spy := &journalSpy{}
	return NewAccountRepo(spy, zerolog.Nop()), spy
}

func mustCreate(t *testing.T, r *AccountRepo, balance int64, keys ...string) *domain.AccountWallet {
	t.Helper()
	a, err := r.Create(context.Background(), keys, balance, "opening deposit")
	require.NoError(t, err)
	return a
}

func balanceOf(t *testing.T, r *AccountRepo, pix string) int64 {
	t.Helper()
	a, err := r.FindByPix(context.Background(), pix)
	require.NoError(t, err)
	return a.Balance()
}

func TestAccountRepo_Create(t *testing.T) {
	r, spy := newAccountRepo(t)
	ctx := context.Background()

	a, err := r.Create(ctx, []string{"a@x.com", "+5511988887777"}, 10000, "welcome")
	require.NoError(t, err)

	assert.Equal(t, int64(10000), a.Balance())
	assert.Equal(t, []string{"a@x.com", "+5511988887777"}, a.PixKeys())
	require.Len(t, a.AuditTrail(), 1)
	assert.Equal(t, "welcome", a.AuditTrail()[0].Description)

	byAlias, err := r.FindByPix(ctx, "+5511988887777")
	require.NoError(t, err)
	assert.Equal(t, a.PixKeys(), byAlias.PixKeys())

	recs := spy.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "a@x.com", recs[0].OwnerPix)
	assert.Equal(t, int64(10000), recs[0].BalanceAfter)
}

func TestAccountRepo_CreateRejects(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		deposit int64
		wantErr error
	}{
		{"key owned by another account", []string{"new", "taken"}, 100, apperror.DuplicatePixKey},
		{"repeat inside input", []string{"x", "x"}, 100, apperror.DuplicatePixKey},
		{"no keys", nil, 100, apperror.InvalidPixKey},
		{"zero deposit", []string{"y"}, 0, apperror.InvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, spy := newAccountRepo(t)
			mustCreate(t, r, 500, "taken")

			_, err := r.Create(context.Background(), tt.keys, tt.deposit, "")
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			all, err := r.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, 1, "no account should be registered")
			for _, k := range tt.keys {
				if k == "taken" {
					continue
				}
				_, err := r.FindByPix(context.Background(), k)
				assert.True(t, errors.Is(err, apperror.AccountNotFound))
			}
			assert.Len(t, spy.records(), 1)
		})
	}
}

func TestAccountRepo_FindByPixNotFound(t *testing.T) {
	r, _ := newAccountRepo(t)

	_, err := r.FindByPix(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperror.AccountNotFound))
}

func TestAccountRepo_Deposit(t *testing.T) {
	r, _ := newAccountRepo(t)
	mustCreate(t, r, 1000, "alice")

	balance, err := r.Deposit(context.Background(), "alice", 250, "salary")
	require.NoError(t, err)
	assert.Equal(t, int64(1250), balance)

	_, err = r.Deposit(context.Background(), "bob", 250, "salary")
	assert.True(t, errors.Is(err, apperror.AccountNotFound))

	_, err = r.Deposit(context.Background(), "alice", 0, "nothing")
	assert.True(t, errors.Is(err, apperror.InvalidAmount))
	assert.Equal(t, int64(1250), balanceOf(t, r, "alice"))
}

func TestAccountRepo_WithdrawScenario(t *testing.T) {
	r, _ := newAccountRepo(t)
	ctx := context.Background()
	mustCreate(t, r, 10000, "a@x.com")

	got, err := r.Withdraw(ctx, "a@x.com", 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), got)
	assert.Equal(t, int64(7000), balanceOf(t, r, "a@x.com"))

	_, err = r.Withdraw(ctx, "a@x.com", 8000)
	assert.True(t, errors.Is(err, apperror.InsufficientFunds))
	assert.Equal(t, int64(7000), balanceOf(t, r, "a@x.com"))

	a, err := r.FindByPix(ctx, "a@x.com")
	require.NoError(t, err)
	trail := a.AuditTrail()
	require.Len(t, trail, 2)
	assert.Equal(t, "Withdrawal of R$30,00", trail[1].Description)
}

func TestAccountRepo_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("moves money and audits both sides", func(t *testing.T) {
		r, spy := newAccountRepo(t)
		mustCreate(t, r, 5000, "alice")
		mustCreate(t, r, 1000, "bob")

		require.NoError(t, r.Transfer(ctx, "alice", "bob", 1500, "rent"))

		alice, _ := r.FindByPix(ctx, "alice")
		bob, _ := r.FindByPix(ctx, "bob")
		assert.Equal(t, int64(3500), alice.Balance())
		assert.Equal(t, int64(2500), bob.Balance())
		assert.Equal(t, "PIX transfer of R$15,00 sent to bob: rent", alice.AuditTrail()[1].Description)
		assert.Equal(t, "PIX transfer of R$15,00 received from alice: rent", bob.AuditTrail()[1].Description)

		recs := spy.records()
		require.Len(t, recs, 4)
		assert.Equal(t, "alice", recs[2].OwnerPix)
		assert.Equal(t, "bob", recs[3].OwnerPix)
	})

	tests := []struct {
		name    string
		source  string
		target  string
		amount  int64
		wantErr error
	}{
		{"missing source", "ghost", "bob", 100, apperror.AccountNotFound},
		{"missing target", "alice", "ghost", 100, apperror.AccountNotFound},
		{"insufficient funds", "alice", "bob", 5001, apperror.InsufficientFunds},
		{"non-positive amount", "alice", "bob", 0, apperror.InvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, spy := newAccountRepo(t)
			mustCreate(t, r, 5000, "alice")
			mustCreate(t, r, 1000, "bob")

			err := r.Transfer(ctx, tt.source, tt.target, tt.amount, "")
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			assert.Equal(t, int64(5000), balanceOf(t, r, "alice"))
			assert.Equal(t, int64(1000), balanceOf(t, r, "bob"))
			alice, _ := r.FindByPix(ctx, "alice")
			assert.Len(t, alice.AuditTrail(), 1)
			assert.Len(t, spy.records(), 2)
		})
	}

	t.Run("to the same account nets zero", func(t *testing.T) {
		r, _ := newAccountRepo(t)
		mustCreate(t, r, 5000, "alice", "alice-alt")

		require.NoError(t, r.Transfer(ctx, "alice", "alice-alt", 2000, ""))

		alice, _ := r.FindByPix(ctx, "alice")
		assert.Equal(t, int64(5000), alice.Balance())
		assert.Len(t, alice.AuditTrail(), 3)
	})
}

func TestAccountRepo_DepositOverflow(t *testing.T) {
	r, spy := newAccountRepo(t)
	mustCreate(t, r, 100, "a")

	_, err := r.Deposit(context.Background(), "a", math.MaxInt64, "too much")
	assert.True(t, errors.Is(err, apperror.BalanceOverflow))
	assert.Equal(t, int64(100), balanceOf(t, r, "a"))
	assert.Len(t, spy.records(), 1)
}

func TestAccountRepo_TransferOverflowAppliesNeitherLeg(t *testing.T) {
	r, spy := newAccountRepo(t)
	ctx := context.Background()
	mustCreate(t, r, 100, "alice")
	mustCreate(t, r, math.MaxInt64-50, "bob")

	err := r.Transfer(ctx, "alice", "bob", 100, "")
	assert.True(t, errors.Is(err, apperror.BalanceOverflow))
	assert.Equal(t, int64(100), balanceOf(t, r, "alice"))
	assert.Equal(t, int64(math.MaxInt64-50), balanceOf(t, r, "bob"))
	assert.Len(t, spy.records(), 2)

	require.NoError(t, r.Transfer(ctx, "alice", "bob", 50, ""))
	assert.Equal(t, int64(math.MaxInt64), balanceOf(t, r, "bob"))
}

func TestAccountRepo_ListInsertionOrderAndIsolation(t *testing.T) {
	r, _ := newAccountRepo(t)
	ctx := context.Background()
	mustCreate(t, r, 100, "c")
	mustCreate(t, r, 200, "a")
	mustCreate(t, r, 300, "b")

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].PrimaryPix())
	assert.Equal(t, "a", all[1].PrimaryPix())
	assert.Equal(t, "b", all[2].PrimaryPix())

	require.NoError(t, all[0].Credit(999, "local only"))
	assert.Equal(t, int64(100), balanceOf(t, r, "c"))
}

func TestAccountRepo_History(t *testing.T) {
	r, _ := newAccountRepo(t)
	ctx := context.Background()
	mustCreate(t, r, 1000, "alice")
	_, err := r.Deposit(ctx, "alice", 10, "a")
	require.NoError(t, err)
	_, err = r.Withdraw(ctx, "alice", 5)
	require.NoError(t, err)

	groups, err := r.History(ctx, "alice")
	require.NoError(t, err)

	var n int
	for _, g := range groups {
		n += len(g.Entries)
		for _, e := range g.Entries {
			assert.Equal(t, g.At, e.CreatedAt.Truncate(time.Second))
		}
	}
	assert.Equal(t, 3, n)

	_, err = r.History(ctx, "ghost")
	assert.True(t, errors.Is(err, apperror.AccountNotFound))
}

func TestAccountRepo_CanceledContext(t *testing.T) {
	r, _ := newAccountRepo(t)
	mustCreate(t, r, 1000, "alice")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Deposit(ctx, "alice", 10, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1000), balanceOf(t, r, "alice"))
}

func TestAccountRepo_JournalMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockAuditJournal(ctrl)
	r := NewAccountRepo(journal, zerolog.Nop())

	journal.EXPECT().Record(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, rec domain.JournalRecord) {
			assert.Equal(t, "alice", rec.OwnerPix)
			assert.Equal(t, domain.ServiceAccount, rec.TargetService)
		},
	).Times(2)

	mustCreate(t, r, 1000, "alice")
	_, err := r.Withdraw(context.Background(), "alice", 100)
	require.NoError(t, err)

	// Failed operations publish nothing.
	_, err = r.Withdraw(context.Background(), "alice", 100000)
	require.Error(t, err)
}

func TestAccountRepo_ConcurrentTransfersConserveTotal(t *testing.T) {
	r := NewAccountRepo(nil, zerolog.Nop())
	ctx := context.Background()
	keys := []string{"k0", "k1", "k2", "k3"}
	for _, k := range keys {
		mustCreate(t, r, 10000, k)
	}

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := keys[i%len(keys)]
			dst := keys[(i+1)%len(keys)]
			// Insufficient-funds failures are expected under contention.
			_ = r.Transfer(ctx, src, dst, int64(100+i), "")
		}(i)
	}
	wg.Wait()

	all, err := r.List(ctx)
	require.NoError(t, err)
	var total int64
	for _, a := range all {
		assert.GreaterOrEqual(t, a.Balance(), int64(0))
		total += a.Balance()
	}
	assert.Equal(t, int64(40000), total)
}
