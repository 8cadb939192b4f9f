package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment" validate:"required,oneof=development production test"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Issuance    IssuanceConfig `mapstructure:"issuance"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	Path            string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string        `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port            int           `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username        string        `mapstructure:"username" validate:"required_if=Driver postgres"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database" validate:"required_if=Driver postgres"`
	SSLMode         string        `mapstructure:"sslMode" validate:"omitempty,oneof=disable require verify-ca verify-full prefer"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns" validate:"min=1"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	BusyTimeout     time.Duration `mapstructure:"busyTimeout"`     // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts" validate:"min=1,max=20"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // milliseconds
	LogLevel        string        `mapstructure:"logLevel" validate:"omitempty,oneof=silent error warn info"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"required,oneof=json console"`
	Output     string `mapstructure:"output" validate:"required"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// IssuanceConfig contains card issuance settings
type IssuanceConfig struct {
	IssuerPrefix string `mapstructure:"issuerPrefix" validate:"required,numeric,min=1,max=14"`
	MaxAttempts  int    `mapstructure:"maxAttempts" validate:"min=1,max=100"`
}
