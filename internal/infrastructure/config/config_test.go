package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GO_ENV", "STORAGE_DRIVER", "CORS_ALLOWED_ORIGINS", "PAYMENT_GATEWAY_MOCK", "QUOTES_TABLE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "quotes", cfg.QuotesTable)
	assert.True(t, cfg.AllowAllOrigins())
	assert.False(t, cfg.PaymentGatewayMock)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg := FromEnv()

	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
	assert.True(t, cfg.PaymentGatewayMock)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{StorageDriver: StorageMemory}},
		{name: "unknown driver", cfg: Config{StorageDriver: "postgres"}, wantErr: true},
		{name: "dynamodb without tables", cfg: Config{StorageDriver: StorageDynamoDB}, wantErr: true},
		{name: "production without token", cfg: Config{StorageDriver: StorageMemory, GoEnv: "production"}, wantErr: true},
		{name: "production with mock gateway", cfg: Config{StorageDriver: StorageMemory, GoEnv: "production", PaymentGatewayMock: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
