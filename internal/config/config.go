package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"os"
	"strings"
)

const defaultPromoCodes = "EAu9099,ASDWW001,POkl8890"

type Config struct {
	Database DatabaseConfig
	Checkout CheckoutConfig
	Log      LogConfig
}

// DatabaseConfig with an empty URL selects the in-memory order store.
type DatabaseConfig struct {
	URL string
}

type CheckoutConfig struct {
	TaxRate    decimal.Decimal
	Currency   currency.Unit
	PromoCodes []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.12"))
	if err != nil {
		return nil, fmt.Errorf("TAX_RATE is not a number: %w", err)
	}

	cur, err := currency.ParseISO(getEnv("CURRENCY", "PHP"))
	if err != nil {
		return nil, fmt.Errorf("CURRENCY is not an ISO 4217 code: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Checkout: CheckoutConfig{
			TaxRate:    taxRate,
			Currency:   cur,
			PromoCodes: splitList(getEnv("PROMO_CODES", defaultPromoCodes)),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Checkout.TaxRate.IsNegative() {
		return fmt.Errorf("TAX_RATE must not be negative")
	}
	if c.Checkout.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("TAX_RATE must be a fraction, got %s", c.Checkout.TaxRate)
	}
	if c.Log.Level == "" {
		return fmt.Errorf("LOG_LEVEL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
