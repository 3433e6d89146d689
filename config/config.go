package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"propTracker/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Account
	AccountID     string  // Key for the persisted state, typically the trader's email
	InitialEquity float64 // Starting equity for a fresh account

	// Risk Settings
	RiskPerTrade           float64 // Percent of equity risked per trade
	DailyLossLimit         float64 // Percent of the day's starting equity
	ConsecutiveLossesLimit int     // Losing streak length that halves risk sizing

	// Database
	DBPath string

	// Logging
	LogLevel   logger.LogLevel
	LogBackend string // "std" or "zap"

	// Price Feed (optional; unrealized P&L marks are skipped without it)
	BinanceAPIKey    string
	BinanceSecretKey string
	IsTestnet        bool
	PriceRefresh     time.Duration

	// Daily Rollover
	RolloverSpec string // Cron spec for the trading-day boundary
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Account
	cfg.AccountID = getEnv("ACCOUNT_ID", "")
	if cfg.AccountID == "" {
		errs = append(errs, "ACCOUNT_ID must be set")
	}

	cfg.InitialEquity, err = getEnvAsFloatRequired("INITIAL_EQUITY", 100000)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid INITIAL_EQUITY: %v", err))
	} else if cfg.InitialEquity <= 0 {
		errs = append(errs, "INITIAL_EQUITY must be positive")
	}

	// Risk Settings
	cfg.RiskPerTrade, err = getEnvAsFloatRequired("RISK_PER_TRADE", 1.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid RISK_PER_TRADE: %v", err))
	} else if cfg.RiskPerTrade <= 0 || cfg.RiskPerTrade > 100 {
		errs = append(errs, "RISK_PER_TRADE must be between 0 and 100")
	}

	cfg.DailyLossLimit, err = getEnvAsFloatRequired("DAILY_LOSS_LIMIT", 5.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid DAILY_LOSS_LIMIT: %v", err))
	} else if cfg.DailyLossLimit <= 0 || cfg.DailyLossLimit > 100 {
		errs = append(errs, "DAILY_LOSS_LIMIT must be between 0 and 100")
	}

	cfg.ConsecutiveLossesLimit, err = getEnvAsIntRequired("CONSECUTIVE_LOSSES_LIMIT", 3)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CONSECUTIVE_LOSSES_LIMIT: %v", err))
	} else if cfg.ConsecutiveLossesLimit <= 0 {
		errs = append(errs, "CONSECUTIVE_LOSSES_LIMIT must be positive")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/prop_tracker.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))
	cfg.LogBackend = strings.ToLower(getEnv("LOG_BACKEND", "std"))
	if cfg.LogBackend != "std" && cfg.LogBackend != "zap" {
		errs = append(errs, "LOG_BACKEND must be 'std' or 'zap'")
	}

	// Price Feed
	cfg.BinanceAPIKey = getEnv("BINANCE_API_KEY", "")
	cfg.BinanceSecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", true) // Default to testnet for safety

	priceRefreshSeconds := getEnvAsInt("PRICE_REFRESH_SECONDS", 30)
	if priceRefreshSeconds <= 0 {
		errs = append(errs, "PRICE_REFRESH_SECONDS must be positive")
	}
	cfg.PriceRefresh = time.Duration(priceRefreshSeconds) * time.Second

	// Daily Rollover
	cfg.RolloverSpec = getEnv("ROLLOVER_SPEC", "@midnight")

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
