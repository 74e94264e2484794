package domain

import (
	"math"

	"pix-bank/pkg/apperror"
)

// Wallet is the capability shared by account and investment wallets: a
// non-negative balance in cents plus an append-only audit trail.
type Wallet interface {
	Service() BankService
	Balance() int64
	AuditTrail() []AuditEntry
	Credit(amount int64, description string) error
	Debit(amount int64, description string) (int64, error)
}

var (
	_ Wallet = (*AccountWallet)(nil)
	_ Wallet = (*InvestmentWallet)(nil)
)

// ledger is the balance and trail embedded by both wallet variants.
type ledger struct {
	service BankService
	balance int64
	trail   []AuditEntry
}

func newLedger(service BankService) ledger {
	return ledger{service: service}
}

func (l *ledger) Service() BankService { return l.service }

func (l *ledger) Balance() int64 { return l.balance }

// AuditTrail returns a copy of the trail in chronological order.
func (l *ledger) AuditTrail() []AuditEntry {
	out := make([]AuditEntry, len(l.trail))
	copy(out, l.trail)
	return out
}

// Credit adds amount to the balance and appends one audit entry. The
// balance is checked for overflow before anything changes.
func (l *ledger) Credit(amount int64, description string) error {
	if err := l.CanCredit(amount); err != nil {
		return err
	}
	l.balance += amount
	l.trail = append(l.trail, NewAuditEntry(l.service, description))
	return nil
}

// Debit removes amount from the balance and appends one audit entry. The
// balance is checked before anything changes.
func (l *ledger) Debit(amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if amount > l.balance {
		return 0, apperror.ErrInsufficientFunds()
	}
	l.balance -= amount
	l.trail = append(l.trail, NewAuditEntry(l.service, description))
	return amount, nil
}

// CanCredit reports whether a credit of amount would be accepted.
func (l *ledger) CanCredit(amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if amount > math.MaxInt64-l.balance {
		return apperror.ErrBalanceOverflow()
	}
	return nil
}

// CanDebit reports whether a debit of amount would be accepted.
func (l *ledger) CanDebit(amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if amount > l.balance {
		return apperror.ErrInsufficientFunds()
	}
	return nil
}

// LastEntry returns the most recent audit entry, if any.
func (l *ledger) LastEntry() (AuditEntry, bool) {
	if len(l.trail) == 0 {
		return AuditEntry{}, false
	}
	return l.trail[len(l.trail)-1], true
}

func (l *ledger) clone() ledger {
	return ledger{
		service: l.service,
		balance: l.balance,
		trail:   l.AuditTrail(),
	}
}

func (l *ledger) record(ownerPix string) (JournalRecord, bool) {
	e, ok := l.LastEntry()
	if !ok {
		return JournalRecord{}, false
	}
	return JournalRecord{AuditEntry: e, OwnerPix: ownerPix, BalanceAfter: l.balance}, true
}
