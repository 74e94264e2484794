package dto

import (
	"time"

	"pix-bank/internal/core/domain"
)

// PIX keys are opaque identifiers and are never sanitized; pix_key already
// rejects whitespace and control characters.

// CreateAccountRequest is the request body for opening an account.
type CreateAccountRequest struct {
	PixKeys        []string `json:"pix_keys" binding:"required,min=1,dive,pix_key" sanitize:"-"`
	InitialDeposit int64    `json:"initial_deposit" binding:"required,gt=0"`
	Description    string   `json:"description,omitempty" binding:"max=200"`
}

// DepositRequest is the request body for crediting an account.
type DepositRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty" binding:"max=200"`
}

// WithdrawRequest is the request body for debiting an account.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// TransferRequest is the request body for a PIX transfer between accounts.
type TransferRequest struct {
	SourcePix   string `json:"source_pix" binding:"required,pix_key" sanitize:"-"`
	TargetPix   string `json:"target_pix" binding:"required,pix_key" sanitize:"-"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty" binding:"max=200"`
}

// CreateInvestmentRequest defines a new investment product.
type CreateInvestmentRequest struct {
	TaxRate      int64  `json:"tax_rate" binding:"required,gt=0"`
	InitialFunds int64  `json:"initial_funds" binding:"required,gt=0"`
	Name         string `json:"name" binding:"required,min=1,max=100"`
}

// OpenWalletRequest opens an investment wallet backed by an account.
type OpenWalletRequest struct {
	Pix          string `json:"pix" binding:"required,pix_key" sanitize:"-"`
	InvestmentID int64  `json:"investment_id" binding:"required,gt=0"`
}

// MovementRequest is the body for applying to or redeeming from a wallet.
type MovementRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty" binding:"max=200"`
}

// AuditEntryResponse is one line of a wallet's audit trail.
type AuditEntryResponse struct {
	ID            string `json:"id"`
	TargetService string `json:"target_service"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
}

// AccountResponse is the public view of an account wallet.
type AccountResponse struct {
	PixKeys        []string             `json:"pix_keys"`
	Balance        int64                `json:"balance"`
	BalanceDisplay string               `json:"balance_display"`
	AuditTrail     []AuditEntryResponse `json:"audit_trail"`
}

// InvestmentResponse is the public view of an investment product.
type InvestmentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TaxRate      int64  `json:"tax_rate"`
	InitialFunds int64  `json:"initial_funds"`
}

// InvestmentWalletResponse is the public view of an investment wallet.
type InvestmentWalletResponse struct {
	AccountPix     string               `json:"account_pix"`
	Investment     InvestmentResponse   `json:"investment"`
	Balance        int64                `json:"balance"`
	BalanceDisplay string               `json:"balance_display"`
	AuditTrail     []AuditEntryResponse `json:"audit_trail"`
}

// BalanceResponse reports the outcome of a single movement.
type BalanceResponse struct {
	Pix     string `json:"pix"`
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
}

// TransferResponse reports a completed transfer.
type TransferResponse struct {
	SourcePix string `json:"source_pix"`
	TargetPix string `json:"target_pix"`
	Amount    int64  `json:"amount"`
}

// HistoryGroupResponse is one second's worth of audit entries.
type HistoryGroupResponse struct {
	At      string               `json:"at"`
	Entries []AuditEntryResponse `json:"entries"`
}

// JournalEntryResponse is one persisted audit record.
type JournalEntryResponse struct {
	AuditEntryResponse
	OwnerPix     string `json:"owner_pix"`
	BalanceAfter int64  `json:"balance_after"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func NewAuditEntryResponse(e domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:            e.ID.String(),
		TargetService: string(e.TargetService),
		Description:   e.Description,
		CreatedAt:     formatTime(e.CreatedAt),
	}
}

func newTrail(trail []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(trail))
	for _, e := range trail {
		out = append(out, NewAuditEntryResponse(e))
	}
	return out
}

func NewAccountResponse(a *domain.AccountWallet) AccountResponse {
	return AccountResponse{
		PixKeys:        a.PixKeys(),
		Balance:        a.Balance(),
		BalanceDisplay: domain.FormatBRL(a.Balance()),
		AuditTrail:     newTrail(a.AuditTrail()),
	}
}

func NewAccountListResponse(accounts []*domain.AccountWallet) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}

func NewInvestmentResponse(inv domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:           inv.ID,
		Name:         inv.Name,
		TaxRate:      inv.TaxRate,
		InitialFunds: inv.InitialFunds,
	}
}

func NewInvestmentListResponse(invs []domain.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, NewInvestmentResponse(inv))
	}
	return out
}

func NewInvestmentWalletResponse(w *domain.InvestmentWallet) InvestmentWalletResponse {
	resp := InvestmentWalletResponse{
		Investment:     NewInvestmentResponse(w.Investment()),
		Balance:        w.Balance(),
		BalanceDisplay: domain.FormatBRL(w.Balance()),
		AuditTrail:     newTrail(w.AuditTrail()),
	}
	if acc := w.Account(); acc != nil {
		resp.AccountPix = acc.PrimaryPix()
	}
	return resp
}

func NewInvestmentWalletListResponse(wallets []*domain.InvestmentWallet) []InvestmentWalletResponse {
	out := make([]InvestmentWalletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, NewInvestmentWalletResponse(w))
	}
	return out
}

func NewHistoryResponse(groups []domain.HistoryGroup) []HistoryGroupResponse {
	out := make([]HistoryGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, HistoryGroupResponse{
			At:      g.At.UTC().Format(time.RFC3339),
			Entries: newTrail(g.Entries),
		})
	}
	return out
}

func NewJournalResponse(recs []domain.JournalRecord) []JournalEntryResponse {
	out := make([]JournalEntryResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, JournalEntryResponse{
			AuditEntryResponse: NewAuditEntryResponse(r.AuditEntry),
			OwnerPix:           r.OwnerPix,
			BalanceAfter:       r.BalanceAfter,
		})
	}
	return out
}
