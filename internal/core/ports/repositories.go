package ports

import (
	"context"

	"pix-bank/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// AccountRepository owns every account wallet. Returned wallets are
// snapshots; mutating them does not change repository state.
type AccountRepository interface {
	Create(ctx context.Context, pixKeys []string, initialDeposit int64, description string) (*domain.AccountWallet, error)
	FindByPix(ctx context.Context, pix string) (*domain.AccountWallet, error)
	// Deposit returns the balance after the credit.
	Deposit(ctx context.Context, pix string, amount int64, description string) (int64, error)
	// Withdraw returns the amount withdrawn.
	Withdraw(ctx context.Context, pix string, amount int64) (int64, error)
	Transfer(ctx context.Context, sourcePix, targetPix string, amount int64, description string) error
	List(ctx context.Context) ([]*domain.AccountWallet, error)
	History(ctx context.Context, pix string) ([]domain.HistoryGroup, error)
}

// InvestmentRepository owns investment definitions and investment wallets.
// At most one wallet is backed by any given account.
type InvestmentRepository interface {
	CreateInvestment(ctx context.Context, taxRate, minFunds int64, name string) (domain.Investment, error)
	FindByID(ctx context.Context, id int64) (domain.Investment, error)
	OpenWallet(ctx context.Context, pix string, investmentID int64) (*domain.InvestmentWallet, error)
	FindWalletByAccountPix(ctx context.Context, pix string) (*domain.InvestmentWallet, error)
	ApplyFunds(ctx context.Context, pix string, amount int64, description string) (*domain.InvestmentWallet, error)
	// Redeem closes the wallet when its balance reaches zero. The returned
	// snapshot then has a zero balance.
	Redeem(ctx context.Context, pix string, amount int64, description string) (*domain.InvestmentWallet, error)
	AccrueYield(ctx context.Context) error
	List(ctx context.Context) ([]domain.Investment, error)
	ListWallets(ctx context.Context) ([]*domain.InvestmentWallet, error)
}

// JournalStore persists published audit records outside the process.
type JournalStore interface {
	Append(ctx context.Context, rec domain.JournalRecord) error
	ListByOwner(ctx context.Context, ownerPix string, limit int) ([]domain.JournalRecord, error)
}
