package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankService tags the wallet kind an audit entry was written for.
type BankService string

const (
	ServiceAccount    BankService = "ACCOUNT"
	ServiceInvestment BankService = "INVESTMENT"
)

// clock is swapped in tests to produce deterministic timestamps.
var clock = time.Now

// AuditEntry records one balance-affecting event. Entries are values and are
// never mutated after creation.
type AuditEntry struct {
	ID            uuid.UUID   `json:"id"`
	TargetService BankService `json:"target_service"`
	Description   string      `json:"description"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewAuditEntry stamps a fresh entry with a random id and the current time.
func NewAuditEntry(service BankService, description string) AuditEntry {
	return AuditEntry{
		ID:            uuid.New(),
		TargetService: service,
		Description:   description,
		CreatedAt:     clock(),
	}
}

// JournalRecord is an audit entry published outside the ledger together with
// the wallet it was written to.
type JournalRecord struct {
	AuditEntry
	OwnerPix     string `json:"owner_pix"`
	BalanceAfter int64  `json:"balance_after"`
}
