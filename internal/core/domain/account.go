package domain

import (
	"strings"

	"pix-bank/pkg/apperror"
)

// AccountWallet is a bank account addressed by one or more PIX keys. The key
// set is fixed at creation.
type AccountWallet struct {
	ledger
	pixKeys []string
}

// NewAccountWallet builds an account whose first audit entry is the initial
// deposit. Keys must be non-blank and free of repeats.
func NewAccountWallet(pixKeys []string, initialDeposit int64, description string) (*AccountWallet, error) {
	if len(pixKeys) == 0 {
		return nil, apperror.ErrInvalidPixKey("At least one pix key is required")
	}
	seen := make(map[string]struct{}, len(pixKeys))
	for _, k := range pixKeys {
		if strings.TrimSpace(k) == "" {
			return nil, apperror.ErrInvalidPixKey("Pix keys must not be blank")
		}
		if _, dup := seen[k]; dup {
			return nil, apperror.ErrDuplicatePixKey(k)
		}
		seen[k] = struct{}{}
	}

	a := &AccountWallet{
		ledger:  newLedger(ServiceAccount),
		pixKeys: append([]string(nil), pixKeys...),
	}
	if err := a.Credit(initialDeposit, description); err != nil {
		return nil, err
	}
	return a, nil
}

// PixKeys returns a copy of the account's keys in registration order.
func (a *AccountWallet) PixKeys() []string {
	return append([]string(nil), a.pixKeys...)
}

// PrimaryPix is the first key the account was registered with.
func (a *AccountWallet) PrimaryPix() string {
	return a.pixKeys[0]
}

func (a *AccountWallet) HasPix(key string) bool {
	for _, k := range a.pixKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy detached from the live account.
func (a *AccountWallet) Snapshot() *AccountWallet {
	return &AccountWallet{
		ledger:  a.ledger.clone(),
		pixKeys: a.PixKeys(),
	}
}

// LatestRecord returns the most recent entry as a journal record keyed by the
// primary PIX key.
func (a *AccountWallet) LatestRecord() (JournalRecord, bool) {
	return a.record(a.PrimaryPix())
}
