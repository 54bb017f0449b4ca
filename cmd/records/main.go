package main

import (
	"context"
	"fmt"
	"os"

	"college_records/internal/app"
	"college_records/internal/infra/config"
	"college_records/internal/infra/console"
	"college_records/internal/infra/logger"
	"college_records/internal/infra/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithField("environment", cfg.Environment).Info("Configuration loaded")

	// Initialize Stores
	stores := memory.NewStores()
	mainLogger.Debug("In-memory stores initialized")

	// Initialize Services
	accountService := app.NewAccountService(stores.Students, stores.Teachers, logger.Component("account_service"))
	adminService := app.NewAdminService(stores.Students, logger.Component("admin_service"))

	session := console.New(os.Stdin, os.Stdout, accountService, adminService, logger.Component("console"))
	if err := session.Run(context.Background()); err != nil {
		mainLogger.WithError(err).Fatal("Console session failed")
	}

	mainLogger.Info("Application shut down gracefully")
}
