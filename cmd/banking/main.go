package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	cardUseCase "github.com/amirhossein-jamali/simple-banking/internal/domain/usecase/card"
	transferUseCase "github.com/amirhossein-jamali/simple-banking/internal/domain/usecase/transfer"

	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/console"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line
	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Invalid arguments: %v\n", err)
		return 2
	}

	// Load configuration
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the card database and make sure the schema exists
	dbManager := database.NewManager(database.NewConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		fmt.Fprintln(os.Stderr, "Unable to open the card database.")
		return 1
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		fmt.Fprintln(os.Stderr, "Unable to prepare the card database.")
		return 1
	}

	// Initialize use cases
	issuer, err := cardUseCase.NewIssuer(cfg.Issuance.IssuerPrefix, nil)
	if err != nil {
		appLogger.Error("Invalid issuer configuration", map[string]any{
			"error": err.Error(),
		})
		return 1
	}

	cardRepo := repository.NewCardRepository(dbManager.DB(), appLogger)
	accounts := cardUseCase.NewCardUseCase(cardRepo, issuer, cfg.Issuance.MaxAttempts, appLogger)
	transfers := transferUseCase.NewTransferService(dbManager.CreateUnitOfWork(), appLogger)

	appLogger.Info("Card database ready", map[string]any{
		"driver": cfg.Database.Driver,
		"path":   cfg.Database.Path,
		"env":    cfg.Environment,
	})

	controller := console.NewController(
		accounts,
		transfers,
		appLogger,
		tp,
		cfg.Database.QueryTimeout,
		os.Stdin,
		os.Stdout,
	)
	if err := controller.Run(ctx); err != nil {
		return 1
	}

	return 0
}
