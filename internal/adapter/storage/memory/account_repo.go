package memory

import (
	"context"
	"sync"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountRepo implements ports.AccountRepository on top of process memory.
// All account state is guarded by mu; the investment repository takes mu
// through update/view and never the other way around.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts []*domain.AccountWallet
	byPix    map[string]*domain.AccountWallet
	journal  ports.AuditJournal
	log      zerolog.Logger
}

// NewAccountRepo creates an empty repository. journal may be nil.
func NewAccountRepo(journal ports.AuditJournal, log zerolog.Logger) *AccountRepo {
	return &AccountRepo{
		byPix:   make(map[string]*domain.AccountWallet),
		journal: journal,
		log:     log,
	}
}

var _ ports.AccountRepository = (*AccountRepo)(nil)

// Create registers a new account funded with initialDeposit.
func (r *AccountRepo) Create(ctx context.Context, pixKeys []string, initialDeposit int64, description string) (*domain.AccountWallet, error) {
	var snap *domain.AccountWallet
	err := r.update(ctx, func() ([]domain.JournalRecord, error) {
		account, err := domain.NewAccountWallet(pixKeys, initialDeposit, description)
		if err != nil {
			return nil, err
		}
		for _, k := range pixKeys {
			if _, taken := r.byPix[k]; taken {
				return nil, apperror.ErrDuplicatePixKey(k)
			}
		}

		r.accounts = append(r.accounts, account)
		for _, k := range pixKeys {
			r.byPix[k] = account
		}
		snap = account.Snapshot()
		return records(account), nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Strs("pix_keys", pixKeys).
		Int64("balance", snap.Balance()).
		Msg("account created")
	return snap, nil
}

// FindByPix returns a snapshot of the account owning pix.
func (r *AccountRepo) FindByPix(ctx context.Context, pix string) (*domain.AccountWallet, error) {
	var snap *domain.AccountWallet
	err := r.view(ctx, func() error {
		account, err := r.lookup(pix)
		if err != nil {
			return err
		}
		snap = account.Snapshot()
		return nil
	})
	return snap, err
}

// Deposit credits the account and returns its new balance.
func (r *AccountRepo) Deposit(ctx context.Context, pix string, amount int64, description string) (int64, error) {
	var balance int64
	err := r.update(ctx, func() ([]domain.JournalRecord, error) {
		account, err := r.lookup(pix)
		if err != nil {
			return nil, err
		}
		if err := account.Credit(amount, description); err != nil {
			return nil, err
		}
		balance = account.Balance()
		return records(account), nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Debug().
		Str("pix", pix).
		Int64("amount", amount).
		Int64("balance", balance).
		Msg("deposit applied")
	return balance, nil
}

// Withdraw debits the account and returns the amount withdrawn.
func (r *AccountRepo) Withdraw(ctx context.Context, pix string, amount int64) (int64, error) {
	var withdrawn int64
	err := r.update(ctx, func() ([]domain.JournalRecord, error) {
		account, err := r.lookup(pix)
		if err != nil {
			return nil, err
		}
		withdrawn, err = account.Debit(amount, domain.DescribeWithdrawal(amount))
		if err != nil {
			return nil, err
		}
		return records(account), nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Debug().
		Str("pix", pix).
		Int64("amount", withdrawn).
		Msg("withdrawal applied")
	return withdrawn, nil
}

// Transfer moves amount between two accounts. Both accounts are resolved and
// the source balance is checked before either side changes.
func (r *AccountRepo) Transfer(ctx context.Context, sourcePix, targetPix string, amount int64, description string) error {
	err := r.update(ctx, func() ([]domain.JournalRecord, error) {
		source, err := r.lookup(sourcePix)
		if err != nil {
			return nil, err
		}
		target, err := r.lookup(targetPix)
		if err != nil {
			return nil, err
		}
		if err := source.CanDebit(amount); err != nil {
			return nil, err
		}
		if source != target {
			if err := target.CanCredit(amount); err != nil {
				return nil, err
			}
		}

		if _, err := source.Debit(amount, domain.DescribeTransferSent(amount, targetPix, description)); err != nil {
			return nil, err
		}
		sent, _ := source.LatestRecord()
		if err := target.Credit(amount, domain.DescribeTransferReceived(amount, sourcePix, description)); err != nil {
			return nil, err
		}
		received, _ := target.LatestRecord()
		return []domain.JournalRecord{sent, received}, nil
	})
	if err != nil {
		return err
	}

	r.log.Info().
		Str("source_pix", sourcePix).
		Str("target_pix", targetPix).
		Int64("amount", amount).
		Msg("transfer processed successfully")
	return nil
}

// List returns snapshots of every account in registration order.
func (r *AccountRepo) List(ctx context.Context) ([]*domain.AccountWallet, error) {
	var out []*domain.AccountWallet
	err := r.view(ctx, func() error {
		out = make([]*domain.AccountWallet, 0, len(r.accounts))
		for _, a := range r.accounts {
			out = append(out, a.Snapshot())
		}
		return nil
	})
	return out, err
}

// History groups the account's audit trail by second.
func (r *AccountRepo) History(ctx context.Context, pix string) ([]domain.HistoryGroup, error) {
	var groups []domain.HistoryGroup
	err := r.view(ctx, func() error {
		account, err := r.lookup(pix)
		if err != nil {
			return err
		}
		groups = domain.GroupBySecond(account.AuditTrail())
		return nil
	})
	return groups, err
}

// lookup must be called with mu held.
func (r *AccountRepo) lookup(pix string) (*domain.AccountWallet, error) {
	account, ok := r.byPix[pix]
	if !ok {
		return nil, apperror.ErrAccountNotFound(pix)
	}
	return account, nil
}

// update runs fn under the write lock and publishes the returned records
// once the lock is released. Nothing is published when fn fails.
func (r *AccountRepo) update(ctx context.Context, fn func() ([]domain.JournalRecord, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	recs, err := fn()
	r.mu.Unlock()
	if err != nil {
		return err
	}

	r.publish(ctx, recs)
	return nil
}

// view runs fn under the read lock.
func (r *AccountRepo) view(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn()
}

func (r *AccountRepo) publish(ctx context.Context, recs []domain.JournalRecord) {
	if r.journal == nil {
		return
	}
	for _, rec := range recs {
		r.journal.Record(ctx, rec)
	}
}

type recorder interface {
	LatestRecord() (domain.JournalRecord, bool)
}

// records collects the latest entry of each wallet.
func records(wallets ...recorder) []domain.JournalRecord {
	out := make([]domain.JournalRecord, 0, len(wallets))
	for _, w := range wallets {
		if rec, ok := w.LatestRecord(); ok {
			out = append(out, rec)
		}
	}
	return out
}
