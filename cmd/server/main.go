package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budget-api/account-ledger-service/internal/application/service"
	"github.com/budget-api/account-ledger-service/internal/config"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/db"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/handler"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/logger"
	"github.com/budget-api/account-ledger-service/internal/infrastructure/middleware"
	"github.com/dgraph-io/badger/v3"
	"github.com/gorilla/mux"
)

func main() {
	cfg := config.MustLoad()

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	log.Info("Starting account ledger service", map[string]interface{}{
		"port":              cfg.Port,
		"data_dir":          cfg.DataDir,
		"reverse_on_delete": cfg.ReverseOnDelete,
	})

	// Setup BadgerDB
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatal("Failed to create database directory", map[string]interface{}{
			"data_dir": cfg.DataDir,
			"error":    err.Error(),
		})
	}

	badgerOpts := badger.DefaultOptions(cfg.DataDir)
	badgerOpts.Logger = nil // Disable Badger's default logger

	badgerDB, err := badger.Open(badgerOpts)
	if err != nil {
		log.Fatal("Failed to open database", map[string]interface{}{
			"data_dir": cfg.DataDir,
			"error":    err.Error(),
		})
	}

	defer func() {
		if err := badgerDB.Close(); err != nil {
			log.Error("Error closing BadgerDB", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Initialize repository, service, and handlers
	accountRepo := db.NewBadgerAccountRepository(badgerDB)
	ledgerService := service.NewLedgerService(accountRepo, cfg.ReverseOnDelete)

	accountHandler := handler.NewAccountHandler(ledgerService, log)
	txHandler := handler.NewTransactionHandler(ledgerService, log)

	// Setup router. All routes live under the /api prefix.
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	accountHandler.RegisterRoutes(api)
	txHandler.RegisterRoutes(api)

	chain := middleware.RequestIDMiddleware(
		middleware.LoggingMiddleware(log)(
			middleware.CORSMiddleware(router)))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: chain,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"addr": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	<-sigChan
	log.Info("Got signal to shutdown server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Stopping server error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
