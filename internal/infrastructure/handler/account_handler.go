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

// Service banner returned by the API root.
const (
	serviceDescription = "Bank API"
	serviceVersion     = "1.0.0"
)

// AccountHandler handles HTTP requests for accounts
type AccountHandler struct {
	service *service.LedgerService
	logger  logger.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service *service.LedgerService, log logger.Logger) *AccountHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &AccountHandler{
		service: service,
		logger:  log,
	}
}

// Banner returns the plain-text service banner
func (h *AccountHandler) Banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serviceDescription + " v" + serviceVersion))
}

// CreateAccount handles the creation of a new account
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	h.logger.Info("Handling create account request", map[string]interface{}{
		"request_id": requestID,
		"method":     r.Method,
		"path":       r.URL.Path,
	})

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body", http.StatusBadRequest, requestID)
		return
	}

	// Mandatory parameters
	if req.User == "" || req.Currency == "" {
		h.logger.Warn("Missing account parameters", map[string]interface{}{
			"request_id": requestID,
			"user":       req.User,
			"currency":   req.Currency,
		})
		sendErrorResponse(w, h.logger, "Missing parameters", http.StatusBadRequest, requestID)
		return
	}

	// Duplicate check comes before balance validation, so an existing user
	// yields 409 even when the balance is also bad. The repository's atomic
	// create still guards against a concurrent winner.
	if _, err := h.service.GetAccount(r.Context(), req.User); err == nil {
		h.logger.Warn("Duplicate user", map[string]interface{}{
			"request_id": requestID,
			"user":       req.User,
		})
		sendErrorResponse(w, h.logger, "User already exists", http.StatusConflict, requestID)
		return
	} else if !errors.Is(err, entity.ErrAccountNotFound) {
		h.logger.Error("Error checking account", map[string]interface{}{
			"request_id": requestID,
			"user":       req.User,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		return
	}

	balance, ok := coerceBalance(req.Balance)
	if !ok {
		h.logger.Warn("Invalid balance", map[string]interface{}{
			"request_id": requestID,
			"balance":    string(req.Balance),
		})
		sendErrorResponse(w, h.logger, "Balance must be a number", http.StatusBadRequest, requestID)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.User, req.Currency, req.Description, balance)
	if err != nil {
		if errors.Is(err, entity.ErrAccountExists) {
			h.logger.Warn("Duplicate user", map[string]interface{}{
				"request_id": requestID,
				"user":       req.User,
			})
			sendErrorResponse(w, h.logger, "User already exists", http.StatusConflict, requestID)
			return
		}

		h.logger.Error("Error creating account", map[string]interface{}{
			"request_id": requestID,
			"user":       req.User,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Account created successfully", map[string]interface{}{
		"request_id": requestID,
		"user":       account.User,
		"id":         account.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}

// GetAccount handles retrieving an account with its transactions
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := mux.Vars(r)["user"]

	h.logger.Info("Handling get account request", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
	})

	account, err := h.service.GetAccount(r.Context(), user)
	if err != nil {
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

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// DeleteAccount handles removing an account and its transactions
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user := mux.Vars(r)["user"]

	h.logger.Info("Handling delete account request", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
	})

	if err := h.service.DeleteAccount(r.Context(), user); err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			h.logger.Warn("Account not found", map[string]interface{}{
				"request_id": requestID,
				"user":       user,
			})
			sendErrorResponse(w, h.logger, "User does not exist", http.StatusNotFound, requestID)
			return
		}

		h.logger.Error("Error deleting account", map[string]interface{}{
			"request_id": requestID,
			"user":       user,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Internal server error", http.StatusInternalServerError, requestID)
		return
	}

	h.logger.Info("Account deleted successfully", map[string]interface{}{
		"request_id": requestID,
		"user":       user,
	})

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers the account handler routes
func (h *AccountHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Banner).Methods("GET")
	router.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	router.HandleFunc("/accounts/{user}", h.GetAccount).Methods("GET")
	router.HandleFunc("/accounts/{user}", h.DeleteAccount).Methods("DELETE")

	h.logger.Info("Account routes registered", map[string]interface{}{
		"routes": []string{
			"GET /",
			"POST /accounts",
			"GET /accounts/{user}",
			"DELETE /accounts/{user}",
		},
	})
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
