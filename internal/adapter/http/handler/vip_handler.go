package handler

import (
	"solana-lottery/internal/adapter/http/dto"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
)

// VipHandler handles VIP purchase.
type VipHandler struct {
	vips ports.VipService
}

// NewVipHandler creates a new VipHandler.
func NewVipHandler(vips ports.VipService) *VipHandler {
	return &VipHandler{vips: vips}
}

// Prepare handles POST /prepare-vip.
func (h *VipHandler) Prepare(c *gin.Context) {
	var req dto.WalletRequest
	if !bindJSON(c, &req) {
		return
	}

	prepared, err := h.vips.Prepare(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PreparedTransactionResponse{
		Nonce:        prepared.Nonce,
		SerializedTx: prepared.SerializedTx,
	})
}

// Submit handles POST /submit-vip.
func (h *VipHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if !bindJSON(c, &req) {
		return
	}

	ent, err := h.vips.Activate(c.Request.Context(), ports.SubmitRequest{
		WalletAddress: req.WalletAddress,
		Signature:     req.Signature,
		Nonce:         req.Nonce,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SubmitVipResponse{
		Message:   "VIP activated",
		ExpiresAt: ent.ExpiresAt,
	})
}
