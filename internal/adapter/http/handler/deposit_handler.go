package handler

import (
	"solana-lottery/internal/adapter/http/dto"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles the two-step deposit flow.
type DepositHandler struct {
	deposits ports.DepositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(deposits ports.DepositService) *DepositHandler {
	return &DepositHandler{deposits: deposits}
}

// Prepare handles POST /prepare-deposit.
func (h *DepositHandler) Prepare(c *gin.Context) {
	var req dto.WalletRequest
	if !bindJSON(c, &req) {
		return
	}

	prepared, err := h.deposits.Prepare(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PreparedTransactionResponse{
		Nonce:        prepared.Nonce,
		SerializedTx: prepared.SerializedTx,
	})
}

// Submit handles POST /submit-deposit.
func (h *DepositHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if !bindJSON(c, &req) {
		return
	}

	deposit, err := h.deposits.Submit(c.Request.Context(), ports.SubmitRequest{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Nonce:         req.Nonce,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SubmitDepositResponse{
		Message:   "Deposit verified, you are in the next draw",
		Signature: deposit.Signature,
	})
}

// bindJSON binds and trims a request body, writing a VAL_001 response on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, apperror.Validation(dto.BindingMessage(err)))
		return false
	}
	dto.TrimStruct(dst)
	return true
}
