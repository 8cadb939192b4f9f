package database

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/database/migration"
	"gorm.io/gorm"
)

// Manager manages the database connection
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	migrationMgr *migration.Manager
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying transient failures, and verifies it with a ping
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"path":   m.config.Path,
		"host":   m.config.Host,
		"name":   m.config.Database,
	})

	dial, err := dialector(m.config)
	if err != nil {
		return nil, err
	}

	var gormDB *gorm.DB
	err = RetryOnTransientError(ctx, RetryConfigFrom(m.config), func() error {
		var openErr error
		gormDB, openErr = gorm.Open(dial, &gorm.Config{
			Logger:         NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc:        m.timeProvider.Now,
			TranslateError: true,
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := gormDB.DB()
		if openErr != nil {
			return openErr
		}
		pingCtx, cancel := m.WithTimeout(ctx)
		defer cancel()
		return sqlDB.PingContext(pingCtx)
	}, m.errorMapper.Classifier(), m.timeProvider, m.logger)
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{
			"driver": m.config.Driver,
			"error":  err.Error(),
		})
		return nil, m.errorMapper.MapError(err, "connect")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	m.db = gormDB
	m.migrationMgr = migration.NewManager(gormDB, m.logger, m.timeProvider)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	return m.db, nil
}

// Migrate creates the schema on the connected database
func (m *Manager) Migrate(ctx context.Context) error {
	migrationMgr := m.MigrationManager()
	if migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	if err := migrationMgr.MigrateAll(ctx); err != nil {
		return m.errorMapper.MapError(err, "migrate")
	}
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, RetryConfigFrom(m.config))
}

// MigrationManager returns the migration manager, nil until Connect succeeds
func (m *Manager) MigrationManager() *migration.Manager {
	return m.migrationMgr
}
