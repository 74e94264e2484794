package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Investment is an immutable product definition shared by many wallets.
type Investment struct {
	ID           int64  `json:"id"`
	TaxRate      int64  `json:"tax_rate"`
	InitialFunds int64  `json:"initial_funds"`
	Name         string `json:"name"`
}

// YieldOn returns floor(balance * TaxRate / 100) in cents. The product is
// computed with arbitrary precision so large balances cannot overflow.
func (i Investment) YieldOn(balance int64) int64 {
	if balance <= 0 || i.TaxRate <= 0 {
		return 0
	}
	return decimal.NewFromInt(balance).
		Mul(decimal.NewFromInt(i.TaxRate)).
		Div(hundred).
		Floor().
		IntPart()
}

// InvestmentWallet is a position in one Investment, funded from and redeemed
// into the account it is linked to. The account is referenced, not owned.
type InvestmentWallet struct {
	ledger
	investment Investment
	account    *AccountWallet
}

// OpenInvestmentWallet debits the investment's initial funds from account and
// seeds a new wallet with that amount. On failure account is left untouched.
func OpenInvestmentWallet(account *AccountWallet, investment Investment) (*InvestmentWallet, error) {
	amount, err := account.Debit(investment.InitialFunds, DescribeInvestmentOpening(investment))
	if err != nil {
		return nil, err
	}

	w := &InvestmentWallet{
		ledger:     newLedger(ServiceInvestment),
		investment: investment,
		account:    account,
	}
	// amount is positive here, Credit cannot fail.
	_ = w.Credit(amount, DescribeInitialInvestment(amount))
	return w, nil
}

func (w *InvestmentWallet) Investment() Investment { return w.investment }

// Account returns the linked account wallet.
func (w *InvestmentWallet) Account() *AccountWallet { return w.account }

// BackedBy reports whether the wallet is linked to exactly this account.
func (w *InvestmentWallet) BackedBy(account *AccountWallet) bool {
	return w.account == account
}

// ApplyYield credits one period of yield and returns the amount credited.
// A zero yield, or one the balance cannot hold, leaves the wallet untouched.
func (w *InvestmentWallet) ApplyYield() int64 {
	y := w.investment.YieldOn(w.balance)
	if y == 0 || w.CanCredit(y) != nil {
		return 0
	}
	_ = w.Credit(y, DescribeYield(y, w.investment.TaxRate))
	return y
}

// Snapshot returns a deep copy, including a copy of the linked account.
func (w *InvestmentWallet) Snapshot() *InvestmentWallet {
	return &InvestmentWallet{
		ledger:     w.ledger.clone(),
		investment: w.investment,
		account:    w.account.Snapshot(),
	}
}

// LatestRecord returns the most recent entry keyed by the linked account's
// primary PIX key.
func (w *InvestmentWallet) LatestRecord() (JournalRecord, bool) {
	return w.record(w.account.PrimaryPix())
}
