package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "BANK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from .env, the optional environment yaml,
// BANK_* variables and the command line, in increasing order of precedence
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is normal for a console tool
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	if flags != nil {
		if flag := flags.Lookup(FileNameFlag); flag != nil {
			if err := v.BindPFlag("database.path", flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", FileNameFlag, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the struct tags of the configuration
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadDotEnvFile loads the first .env file found on DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for every key so AutomaticEnv can override them
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", DefaultFileName)
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 1)    // single operator, one writer
	v.SetDefault("database.maxIdleConns", 1)
	v.SetDefault("database.connMaxLifetime", 0) // minutes, 0 keeps connections open
	v.SetDefault("database.queryTimeout", 5)    // seconds
	v.SetDefault("database.busyTimeout", 5000)  // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 100) // milliseconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.callerInfo", false)

	v.SetDefault("issuance.issuerPrefix", "400000")
	v.SetDefault("issuance.maxAttempts", 5)
}

// getEnvironment determines the environment to use based on BANK_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides binds the short variable names documented in .env.example
// next to the automatic BANK_<SECTION>_<KEY> names. Bound variables rank below
// command-line flags.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"BANK_DB_DRIVER":   "database.driver",
		"BANK_DB_PATH":     "database.path",
		"BANK_DB_HOST":     "database.host",
		"BANK_DB_PORT":     "database.port",
		"BANK_DB_USERNAME": "database.username",
		"BANK_DB_PASSWORD": "database.password",
		"BANK_DB_NAME":     "database.database",
		"BANK_DB_SSL_MODE": "database.sslMode",
		"BANK_LOG_LEVEL":   "logger.level",
		"BANK_LOG_OUTPUT":  "logger.output",
	}

	for env, key := range overrides {
		automatic := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, env, automatic)
	}
}

// processDurations converts duration fields from their raw configured units
func processDurations(config *Config) {
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.BusyTimeout = time.Duration(config.Database.BusyTimeout) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Millisecond
}
