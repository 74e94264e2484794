package memory

import (
	"context"
	"slices"
	"sync"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"

	"github.com/rs/zerolog"
)

// InvestmentRepo implements ports.InvestmentRepository. Wallet balances are
// guarded by mu; every operation that also touches an account takes mu first
// and then the account repository's lock.
type InvestmentRepo struct {
	mu          sync.RWMutex
	lastID      int64
	investments []domain.Investment
	wallets     []*domain.InvestmentWallet
	accounts    *AccountRepo
	log         zerolog.Logger
}

// NewInvestmentRepo creates an empty repository linked to accounts. Audit
// records are published through the account repository's journal.
func NewInvestmentRepo(accounts *AccountRepo, log zerolog.Logger) *InvestmentRepo {
	return &InvestmentRepo{
		accounts: accounts,
		log:      log,
	}
}

var _ ports.InvestmentRepository = (*InvestmentRepo)(nil)

// CreateInvestment registers a new investment type with the next sequential id.
func (r *InvestmentRepo) CreateInvestment(ctx context.Context, taxRate, minFunds int64, name string) (domain.Investment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Investment{}, err
	}
	if taxRate <= 0 || minFunds <= 0 {
		return domain.Investment{}, apperror.ErrInvalidAmount()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	inv := domain.Investment{
		ID:           r.lastID,
		TaxRate:      taxRate,
		InitialFunds: minFunds,
		Name:         name,
	}
	r.investments = append(r.investments, inv)

	r.log.Info().
		Int64("investment_id", inv.ID).
		Int64("tax_rate", taxRate).
		Int64("initial_funds", minFunds).
		Str("name", name).
		Msg("investment created")
	return inv, nil
}

// FindByID returns the investment with the given id.
func (r *InvestmentRepo) FindByID(ctx context.Context, id int64) (domain.Investment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Investment{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.investment(id)
}

// OpenWallet funds a new investment wallet from the account owning pix.
func (r *InvestmentRepo) OpenWallet(ctx context.Context, pix string, investmentID int64) (*domain.InvestmentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var snap *domain.InvestmentWallet
	err := r.accounts.update(ctx, func() ([]domain.JournalRecord, error) {
		account, err := r.accounts.lookup(pix)
		if err != nil {
			return nil, err
		}
		if r.backedBy(account) {
			return nil, apperror.ErrAccountAlreadyHasWallet(pix)
		}
		inv, err := r.investment(investmentID)
		if err != nil {
			return nil, err
		}

		w, err := domain.OpenInvestmentWallet(account, inv)
		if err != nil {
			return nil, err
		}
		r.wallets = append(r.wallets, w)
		snap = w.Snapshot()
		return records(account, w), nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Str("pix", pix).
		Int64("investment_id", investmentID).
		Int64("amount", snap.Balance()).
		Msg("investment wallet opened")
	return snap, nil
}

// FindWalletByAccountPix returns the wallet linked to the account owning pix.
func (r *InvestmentRepo) FindWalletByAccountPix(ctx context.Context, pix string) (*domain.InvestmentWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var snap *domain.InvestmentWallet
	err := r.accounts.view(ctx, func() error {
		w, err := r.walletByPix(pix)
		if err != nil {
			return err
		}
		snap = w.Snapshot()
		return nil
	})
	return snap, err
}

// ApplyFunds moves amount from the linked account into the wallet. The
// account is debited first; if that fails the wallet is untouched.
func (r *InvestmentRepo) ApplyFunds(ctx context.Context, pix string, amount int64, description string) (*domain.InvestmentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var snap *domain.InvestmentWallet
	err := r.accounts.update(ctx, func() ([]domain.JournalRecord, error) {
		w, err := r.walletByPix(pix)
		if err != nil {
			return nil, err
		}
		if description == "" {
			description = domain.DescribeContribution(amount)
		}

		account := w.Account()
		if err := w.CanCredit(amount); err != nil {
			return nil, err
		}
		if _, err := account.Debit(amount, description); err != nil {
			return nil, err
		}
		if err := w.Credit(amount, domain.DescribeContribution(amount)); err != nil {
			return nil, err
		}
		snap = w.Snapshot()
		return records(account, w), nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Str("pix", pix).
		Int64("amount", amount).
		Int64("balance", snap.Balance()).
		Msg("investment contribution applied")
	return snap, nil
}

// Redeem moves amount from the wallet back to the linked account. A wallet
// left with a zero balance is closed and removed.
func (r *InvestmentRepo) Redeem(ctx context.Context, pix string, amount int64, description string) (*domain.InvestmentWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		snap   *domain.InvestmentWallet
		closed bool
	)
	err := r.accounts.update(ctx, func() ([]domain.JournalRecord, error) {
		w, err := r.walletByPix(pix)
		if err != nil {
			return nil, err
		}
		if err := w.CanDebit(amount); err != nil {
			return nil, err
		}
		account := w.Account()
		if err := account.CanCredit(amount); err != nil {
			return nil, err
		}
		if description == "" {
			description = domain.DescribeRedemption(amount)
		}

		if _, err := w.Debit(amount, domain.DescribeRedemption(amount)); err != nil {
			return nil, err
		}
		if err := account.Credit(amount, description); err != nil {
			return nil, err
		}

		if w.Balance() == 0 {
			r.wallets = slices.DeleteFunc(r.wallets, func(x *domain.InvestmentWallet) bool { return x == w })
			closed = true
		}
		snap = w.Snapshot()
		return records(w, account), nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Str("pix", pix).
		Int64("amount", amount).
		Int64("balance", snap.Balance()).
		Bool("closed", closed).
		Msg("investment redeemed")
	return snap, nil
}

// AccrueYield credits one period of yield to every open wallet.
func (r *InvestmentRepo) AccrueYield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	var (
		recs  []domain.JournalRecord
		total int64
	)
	for _, w := range r.wallets {
		y := w.ApplyYield()
		if y == 0 {
			continue
		}
		total += y
		if rec, ok := w.LatestRecord(); ok {
			recs = append(recs, rec)
		}
	}
	count := len(r.wallets)
	r.mu.Unlock()

	r.accounts.publish(ctx, recs)

	r.log.Info().
		Int("wallets", count).
		Int("credited", len(recs)).
		Int64("total", total).
		Msg("yield accrued")
	return nil
}

// List returns every investment type in creation order.
func (r *InvestmentRepo) List(ctx context.Context) ([]domain.Investment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.investments), nil
}

// ListWallets returns snapshots of every open wallet in opening order.
func (r *InvestmentRepo) ListWallets(ctx context.Context) ([]*domain.InvestmentWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.InvestmentWallet
	err := r.accounts.view(ctx, func() error {
		out = make([]*domain.InvestmentWallet, 0, len(r.wallets))
		for _, w := range r.wallets {
			out = append(out, w.Snapshot())
		}
		return nil
	})
	return out, err
}

// investment must be called with mu held.
func (r *InvestmentRepo) investment(id int64) (domain.Investment, error) {
	for _, inv := range r.investments {
		if inv.ID == id {
			return inv, nil
		}
	}
	return domain.Investment{}, apperror.ErrInvestmentNotFound(id)
}

// walletByPix must be called with mu held.
func (r *InvestmentRepo) walletByPix(pix string) (*domain.InvestmentWallet, error) {
	for _, w := range r.wallets {
		if w.Account().HasPix(pix) {
			return w, nil
		}
	}
	return nil, apperror.ErrWalletNotFound(pix)
}

// backedBy must be called with mu held.
func (r *InvestmentRepo) backedBy(account *domain.AccountWallet) bool {
	for _, w := range r.wallets {
		if w.BackedBy(account) {
			return true
		}
	}
	return false
}
