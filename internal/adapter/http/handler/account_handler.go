package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"pix-bank/internal/adapter/http/dto"
	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"
	"pix-bank/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountHandler handles account, transfer and statement endpoints.
type AccountHandler struct {
	accounts    ports.AccountRepository
	investments ports.InvestmentRepository
	renderer    ports.StatementRenderer
	journal     ports.JournalReader
	pageSize    int
	log         zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler. renderer and journal may
// be nil, which disables the statement and journal endpoints.
func NewAccountHandler(
	accounts ports.AccountRepository,
	investments ports.InvestmentRepository,
	renderer ports.StatementRenderer,
	journal ports.JournalReader,
	pageSize int,
	log zerolog.Logger,
) *AccountHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &AccountHandler{
		accounts:    accounts,
		investments: investments,
		renderer:    renderer,
		journal:     journal,
		pageSize:    pageSize,
		log:         log,
	}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	description := req.Description
	if description == "" {
		description = domain.DescribeOpeningDeposit(req.InitialDeposit)
	}

	account, err := h.accounts.Create(c.Request.Context(), req.PixKeys, req.InitialDeposit, description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAccountResponse(account))
}

// Get handles GET /api/v1/accounts/:pix.
func (h *AccountHandler) Get(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	account, err := h.accounts.FindByPix(c.Request.Context(), pix)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountResponse(account))
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccountListResponse(accounts))
}

// Deposit handles POST /api/v1/accounts/:pix/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	description := req.Description
	if description == "" {
		description = domain.DescribeDeposit(req.Amount)
	}

	balance, err := h.accounts.Deposit(c.Request.Context(), pix, req.Amount, description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Pix: pix, Amount: req.Amount, Balance: balance})
}

// Withdraw handles POST /api/v1/accounts/:pix/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ctx := c.Request.Context()
	withdrawn, err := h.accounts.Withdraw(ctx, pix, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The balance is informational; a concurrent movement may already have
	// changed it.
	resp := dto.BalanceResponse{Pix: pix, Amount: withdrawn}
	if account, err := h.accounts.FindByPix(ctx, pix); err == nil {
		resp.Balance = account.Balance()
	}
	response.OK(c, resp)
}

// Transfer handles POST /api/v1/transfers.
func (h *AccountHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.accounts.Transfer(c.Request.Context(), req.SourcePix, req.TargetPix, req.Amount, req.Description); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.TransferResponse{
		SourcePix: req.SourcePix,
		TargetPix: req.TargetPix,
		Amount:    req.Amount,
	})
}

// History handles GET /api/v1/accounts/:pix/history.
func (h *AccountHandler) History(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	groups, err := h.accounts.History(c.Request.Context(), pix)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewHistoryResponse(groups))
}

// Statement handles GET /api/v1/accounts/:pix/statement.pdf.
func (h *AccountHandler) Statement(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	if h.renderer == nil {
		response.Error(c, apperror.New("SYS_003", "Statement rendering is disabled", http.StatusNotImplemented))
		return
	}

	ctx := c.Request.Context()
	account, err := h.accounts.FindByPix(ctx, pix)
	if err != nil {
		response.Error(c, err)
		return
	}

	var wallet *domain.InvestmentWallet
	if h.investments != nil {
		wallet, err = h.investments.FindWalletByAccountPix(ctx, pix)
		if err != nil && !errors.Is(err, apperror.WalletNotFound) {
			response.Error(c, err)
			return
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, account, wallet); err != nil {
		h.log.Error().Err(err).Str("pix", pix).Msg("statement rendering failed")
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Journal handles GET /api/v1/accounts/:pix/journal?limit=N.
func (h *AccountHandler) Journal(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	if h.journal == nil {
		response.Error(c, apperror.ErrJournalUnavailable())
		return
	}

	limit := h.pageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	// Records are keyed by the account's primary key, whichever key the
	// caller used.
	ctx := c.Request.Context()
	account, err := h.accounts.FindByPix(ctx, pix)
	if err != nil {
		response.Error(c, err)
		return
	}

	recs, err := h.journal.Entries(ctx, account.PrimaryPix(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewJournalResponse(recs))
}

// pixParam reads and validates the :pix path parameter, writing the error
// response itself when the key is unusable.
func pixParam(c *gin.Context) (string, bool) {
	pix := c.Param("pix")
	if !dto.IsValidPixKey(pix) {
		response.Error(c, apperror.ErrInvalidPixKey("Invalid pix key in path"))
		return "", false
	}
	return pix, true
}
