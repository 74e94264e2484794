package handler

import (
	"context"

	"pix-bank/internal/adapter/http/dto"
	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"
	"pix-bank/pkg/apperror"
	"pix-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// InvestmentHandler handles investment products and investment wallets.
type InvestmentHandler struct {
	investments ports.InvestmentRepository
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investments ports.InvestmentRepository) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

// CreateInvestment handles POST /api/v1/investments.
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	inv, err := h.investments.CreateInvestment(c.Request.Context(), req.TaxRate, req.InitialFunds, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewInvestmentResponse(inv))
}

// ListInvestments handles GET /api/v1/investments.
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	invs, err := h.investments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvestmentListResponse(invs))
}

// OpenWallet handles POST /api/v1/investment-wallets.
func (h *InvestmentHandler) OpenWallet(c *gin.Context) {
	var req dto.OpenWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.investments.OpenWallet(c.Request.Context(), req.Pix, req.InvestmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewInvestmentWalletResponse(wallet))
}

// GetWallet handles GET /api/v1/investment-wallets/:pix.
func (h *InvestmentHandler) GetWallet(c *gin.Context) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	wallet, err := h.investments.FindWalletByAccountPix(c.Request.Context(), pix)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvestmentWalletResponse(wallet))
}

// ListWallets handles GET /api/v1/investment-wallets.
func (h *InvestmentHandler) ListWallets(c *gin.Context) {
	wallets, err := h.investments.ListWallets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvestmentWalletListResponse(wallets))
}

// Apply handles POST /api/v1/investment-wallets/:pix/apply.
func (h *InvestmentHandler) Apply(c *gin.Context) {
	h.move(c, h.investments.ApplyFunds)
}

// Redeem handles POST /api/v1/investment-wallets/:pix/redeem. Redeeming the
// whole balance closes the wallet; the response then shows a zero balance.
func (h *InvestmentHandler) Redeem(c *gin.Context) {
	h.move(c, h.investments.Redeem)
}

// AccrueYield handles POST /api/v1/investment-wallets/yield.
func (h *InvestmentHandler) AccrueYield(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.investments.AccrueYield(ctx); err != nil {
		response.Error(c, err)
		return
	}
	wallets, err := h.investments.ListWallets(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvestmentWalletListResponse(wallets))
}

type walletMovement func(ctx context.Context, pix string, amount int64, description string) (*domain.InvestmentWallet, error)

func (h *InvestmentHandler) move(c *gin.Context, op walletMovement) {
	pix, ok := pixParam(c)
	if !ok {
		return
	}
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := op(c.Request.Context(), pix, req.Amount, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewInvestmentWalletResponse(wallet))
}
