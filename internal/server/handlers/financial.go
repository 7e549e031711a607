package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/finance"
)

// FinancialHandler handles ledger HTTP endpoints.
type FinancialHandler struct {
	svc    *finance.Service
	logger *zap.Logger
}

// NewFinancialHandler constructs the HTTP handler adapter.
func NewFinancialHandler(svc *finance.Service, logger *zap.Logger) *FinancialHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinancialHandler{svc: svc, logger: logger}
}

type createTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=in out"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type transactionResponse struct {
	ID          int64   `json:"id"`
	Kind        string  `json:"kind"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

func toTransactionResponse(tx models.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        tx.Date.Format(models.DueDateLayout),
	}
}

// Overview returns the ledger newest first plus the derived totals.
func (h *FinancialHandler) Overview(c *gin.Context) {
	transactions := h.svc.Transactions()

	out := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, toTransactionResponse(tx))
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": out,
		"summary":      h.svc.Summary(),
	})
}

// CreateTransaction records a new financial movement.
func (h *FinancialHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid transaction payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.svc.Record(models.TransactionKind(req.Kind), req.Category, req.Description, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown transaction category"})
		case errors.Is(err, finance.ErrInvalidKind), errors.Is(err, finance.ErrNegativeAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction"})
		default:
			h.logger.Error("failed recording transaction", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": toTransactionResponse(tx)})
}
