package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/budget-api/account-ledger-service/internal/application/service"
	"github.com/budget-api/account-ledger-service/internal/domain/entity"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/logger"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// TransactionHandler handles HTTP requests for account transactions
type TransactionHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service *service.LedgerService, log logger.Logger) *TransactionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TransactionHandler{
		service: service,
		logger:  log,
	}
}

// AddTransaction handles appending a transaction to an account.
// The account is looked up before anything else, so an unknown user yields
// 404 even when the body is also invalid.
func (h *TransactionHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := mux.Vars(r)["user"]

	h.logger.Info("Handling add transaction request", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
	})

	if _, err := h.service.GetAccount(r.Context(), user); err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			h.logger.Warn("Account not found", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
			})
			sendErrorResponse(w, h.logger, "User does not exist", http.StatusNotFound, requestID)
			return
		}

		h.logger.Error("Error retrieving account", map[string]interface{}{
			"request_id": requestID,
			"user":       user,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		return
	}

	var req AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body", http.StatusBadRequest, requestID)
		return
	}

	// Mandatory parameters. A zero amount counts as missing, same as an
	// absent field.
	rawAmount, amount, present, numeric := coerceAmount(req.Amount)
	if req.Date == "" || req.Object == "" || !present {
		h.logger.Warn("Missing transaction parameters", map[string]interface{}{
			"request_id": requestID,
			"user":       user,
			"date":       req.Date,
			"object":     req.Object,
		})
		sendErrorResponse(w, h.logger, "Missing parameters", http.StatusBadRequest, requestID)
		return
	}

	if !numeric {
		h.logger.Warn("Invalid amount", map[string]interface{}{
			"request_id": requestID,
			"user":       user,
			"amount":     string(req.Amount),
		})
		sendErrorResponse(w, h.logger, "Amount must be a number", http.StatusBadRequest, requestID)
		return
	}

	tx, err := h.service.AddTransaction(r.Context(), user, req.Date, req.Object, rawAmount, amount)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTransactionExists):
			h.logger.Warn("Duplicate transaction", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
			})
			sendErrorResponse(w, h.logger, "Transaction already exists", http.StatusConflict, requestID)
		case errors.Is(err, entity.ErrAccountNotFound):
			sendErrorResponse(w, h.logger, "User does not exist", http.StatusNotFound, requestID)
		default:
			h.logger.Error("Error adding transaction", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		}
		return
	}

	h.logger.Info("Transaction added successfully", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
		"id":         tx.ID,
		"amount":     tx.Amount,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}

// RemoveTransaction handles removing a transaction from an account by id
func (h *TransactionHandler) RemoveTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)
	user := vars["user"]
	id := vars["id"]

	h.logger.Info("Handling remove transaction request", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
		"id":         id,
	})

	if err := h.service.RemoveTransaction(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, entity.ErrAccountNotFound):
			sendErrorResponse(w, h.logger, "User does not exist", http.StatusNotFound, requestID)
		case errors.Is(err, entity.ErrTransactionNotFound):
			h.logger.Warn("Transaction not found", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
				"id":         id,
			})
			sendErrorResponse(w, h.logger, "Transaction does not exist", http.StatusNotFound, requestID)
		default:
			h.logger.Error("Error removing transaction", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
				"id":         id,
				"error":      err.Error(),
			})
			sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		}
		return
	}

	h.logger.Info("Transaction removed successfully", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
		"id":         id,
	})

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers the transaction handler routes
func (h *TransactionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/accounts/{user}/transactions", h.AddTransaction).Methods("POST")
	router.HandleFunc("/accounts/{user}/transactions/{id}", h.RemoveTransaction).Methods("DELETE")

	h.logger.Info("Transaction routes registered", map[string]interface{}{
		"routes": []string{
			"POST /accounts/{user}/transactions",
			"DELETE /accounts/{user}/transactions/{id}",
		},
	})
}
