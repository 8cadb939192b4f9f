package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against a temporary SQLite file
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh SQLite file in a temporary directory
// and migrates it. The connection is closed when the test ends.
func NewTestDBManager(t testing.TB, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig(filepath.Join(t.TempDir(), "card.s3db"))
	config.LogLevel = "silent"
	config.RetryAttempts = 1
	config.RetryDelay = 10 * time.Millisecond

	manager := NewManager(config, logger, timeProvider)

	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// CreateTestCard inserts a card row directly
func (m *TestDBManager) CreateTestCard(t testing.TB, number, pin string, balance int64) {
	t.Helper()

	card := model.Card{
		Number:  number,
		PIN:     pin,
		Balance: balance,
	}
	if err := m.Manager.DB().Create(&card).Error; err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
}

// CardBalance reads the stored balance of a card
func (m *TestDBManager) CardBalance(t testing.TB, number string) int64 {
	t.Helper()

	var card model.Card
	if err := m.Manager.DB().Where("number = ?", number).First(&card).Error; err != nil {
		t.Fatalf("Failed to read test card %s: %v", number, err)
	}
	return card.Balance
}

// CountCards returns the number of stored cards
func (m *TestDBManager) CountCards(t testing.TB) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Model(&model.Card{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count test cards: %v", err)
	}
	return count
}
