package config_test

import (
	"github.com/nikolayk812/foodorder-demo/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "TAX_RATE", "CURRENCY", "PROMO_CODES", "LOG_LEVEL"} {
		unset(t, key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Database.URL)
	assert.True(t, decimal.RequireFromString("0.12").Equal(cfg.Checkout.TaxRate))
	assert.Equal(t, "PHP", cfg.Checkout.Currency.String())
	assert.Equal(t, []string{"EAu9099", "ASDWW001", "POkl8890"}, cfg.Checkout.PromoCodes)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/orders")
	t.Setenv("TAX_RATE", "0.075")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("PROMO_CODES", " A1 , ,B2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/orders", cfg.Database.URL)
	assert.True(t, decimal.RequireFromString("0.075").Equal(cfg.Checkout.TaxRate))
	assert.Equal(t, currency.USD, cfg.Checkout.Currency)
	assert.Equal(t, []string{"A1", "B2"}, cfg.Checkout.PromoCodes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{
			name:    "tax rate not a number",
			key:     "TAX_RATE",
			value:   "twelve",
			wantErr: "TAX_RATE is not a number",
		},
		{
			name:    "negative tax rate",
			key:     "TAX_RATE",
			value:   "-0.1",
			wantErr: "invalid configuration: TAX_RATE must not be negative",
		},
		{
			name:    "tax rate given as percent",
			key:     "TAX_RATE",
			value:   "12",
			wantErr: "invalid configuration: TAX_RATE must be a fraction, got 12",
		},
		{
			name:    "unknown currency",
			key:     "CURRENCY",
			value:   "XYZW",
			wantErr: "CURRENCY is not an ISO 4217 code",
		},
		{
			name:    "empty log level",
			key:     "LOG_LEVEL",
			value:   "",
			wantErr: "invalid configuration: LOG_LEVEL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// unset removes key for the duration of the test.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
