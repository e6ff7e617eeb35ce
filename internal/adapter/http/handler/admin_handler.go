package handler

import (
	"solana-lottery/internal/adapter/http/dto"
	"solana-lottery/internal/adapter/http/middleware"
	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	auth  ports.OperatorAuthService
	draws ports.DrawService
	log   zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth ports.OperatorAuthService, draws ports.DrawService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{auth: auth, draws: draws, log: log}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiry, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiry.Unix(),
	})
}

// Draw handles POST /admin/draw. It runs one cycle synchronously.
func (h *AdminHandler) Draw(c *gin.Context) {
	h.log.Info().
		Str("operator", c.GetString(middleware.CtxOperator)).
		Str("request_id", c.GetString(response.RequestIDKey)).
		Msg("manual draw triggered")

	result, err := h.draws.Run(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, drawResponse(result))
}

func drawResponse(r *domain.DrawResult) dto.DrawResponse {
	resp := dto.DrawResponse{Message: r.Message()}
	if r.Winner != nil {
		amount := domain.LamportsToSOL(r.Winner.Amount)
		resp.Signature = r.Winner.PayoutSignature
		resp.Winner = r.Winner.WalletAddress
		resp.Amount = &amount
		resp.Confirmed = &r.Winner.Confirmed
	}
	return resp
}
