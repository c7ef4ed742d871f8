package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portssvc "github.com/mugishaeric/finance_tracker_app/internal/core/ports/services"
	"github.com/mugishaeric/finance_tracker_app/internal/dto"
	"github.com/mugishaeric/finance_tracker_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transaction, err := req.ToDomain()
	if err != nil {
		logger.Warn("Invalid amount in createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.transactionService.CreateTransaction(c.Request.Context(), transaction)
	if err != nil {
		h.writeCreateError(c, logger, err)
		return
	}

	created, err := h.transactionService.GetTransactionByIDOrFail(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to load created transaction", slog.String("error", err.Error()), slog.String("transaction_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created transaction"})
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", id.String()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// writeCreateError maps transaction creation failures onto HTTP statuses.
// An insufficient-funds rejection is distinguishable from a bad account
// reference because the creation error keeps its cause.
func (h *transactionHandler) writeCreateError(c *gin.Context, logger *slog.Logger, err error) {
	var refErr *apperrors.InvalidAccountRefError
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		logger.Warn("Transaction rejected for insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &refErr):
		logger.Warn("Transaction references an invalid account", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
	}
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := domain.EntityID(c.Param("id"))

	transaction, err := h.transactionService.GetTransactionByIDOrFail(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID.String()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}
