package handler

import (
	"bitcoind-gateway/internal/adapter/http/dto"
	"bitcoind-gateway/internal/core/ports"
	"bitcoind-gateway/pkg/apperror"
	"bitcoind-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Register handles POST /api/register.
func (h *WalletHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.Register(c.Request.Context(), ports.RegisterRequest{
		WalletName: req.WalletName,
		Passphrase: req.Passphrase,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RegisterResponse{WalletID: result.Address})
}

// GetBalance handles GET /balance/:wallet_name.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	walletName := c.Param("wallet_name")

	result, err := h.walletSvc.Balance(c.Request.Context(), walletName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Status:  "success",
		Wallet:  result.WalletName,
		Balance: result.BalanceBTC,
	})
}

// Send handles POST /api/send.
func (h *WalletHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.Send(c.Request.Context(), ports.SendRequest{
		Address: req.Address,
		Amount:  req.Amount,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SendResponse{
		Status:        "success",
		TransactionID: result.TxID,
	})
}
