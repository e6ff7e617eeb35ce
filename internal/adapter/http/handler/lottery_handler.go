package handler

import (
	"solana-lottery/internal/adapter/http/dto"
	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
)

// LotteryHandler serves the public read endpoints and CSRF tokens.
type LotteryHandler struct {
	ledger ports.LedgerService
	vips   ports.VipService
	csrf   ports.CSRFService
}

// NewLotteryHandler creates a new LotteryHandler.
func NewLotteryHandler(ledger ports.LedgerService, vips ports.VipService, csrf ports.CSRFService) *LotteryHandler {
	return &LotteryHandler{ledger: ledger, vips: vips, csrf: csrf}
}

// CSRFToken handles GET /csrf-token.
func (h *LotteryHandler) CSRFToken(c *gin.Context) {
	token, err := h.csrf.Issue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CSRFTokenResponse{CSRFToken: token})
}

// Pot handles GET /lottery-pot.
func (h *LotteryHandler) Pot(c *gin.Context) {
	lamports, err := h.ledger.Pot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PotResponse{
		Pot:         domain.LamportsToSOL(lamports),
		PotLamports: lamports,
	})
}

// Participants handles GET /participants.
func (h *LotteryHandler) Participants(c *gin.Context) {
	addrs, err := h.ledger.Participants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if addrs == nil {
		addrs = []string{}
	}
	response.OK(c, dto.ParticipantsResponse{Participants: addrs})
}

// LatestWinner handles GET /latest-winner.
func (h *LotteryHandler) LatestWinner(c *gin.Context) {
	w, err := h.ledger.LatestWinner(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if w == nil {
		response.OK(c, dto.LatestWinnerResponse{})
		return
	}

	amount := domain.LamportsToSOL(w.Amount)
	response.OK(c, dto.LatestWinnerResponse{
		Winner:          &w.WalletAddress,
		Amount:          &amount,
		AmountLamports:  w.Amount,
		DrawnAt:         &w.DrawnAt,
		PayoutSignature: w.PayoutSignature,
		Confirmed:       &w.Confirmed,
	})
}

// DepositCount handles GET /deposit-count?walletAddress=.
func (h *LotteryHandler) DepositCount(c *gin.Context) {
	var q dto.WalletQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(dto.BindingMessage(err)))
		return
	}

	allowance, err := h.ledger.DepositCount(c.Request.Context(), q.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DepositCountResponse{
		Count: allowance.Count,
		Limit: allowance.Limit,
		IsVip: allowance.IsVip,
	})
}

// CheckVip handles GET /check-vip?walletAddress=.
func (h *LotteryHandler) CheckVip(c *gin.Context) {
	var q dto.WalletQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(dto.BindingMessage(err)))
		return
	}

	ent, active, err := h.vips.Status(c.Request.Context(), q.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.VipStatusResponse{IsVip: active}
	if active {
		resp.ExpiresAt = &ent.ExpiresAt
	}
	response.OK(c, resp)
}
