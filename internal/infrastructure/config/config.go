package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	Port               string
	GoEnv              string
	LogLevel           string
	StorageDriver      string
	QuotesTable        string
	SettlementsTable   string
	SeedFile           string
	CORSAllowedOrigins []string
	MercadoPagoToken   string
	PaymentGatewayMock bool
}

// Load reads .env.<GO_ENV> (falling back to .env) and then the process
// environment.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using system environment variables")
		}
	} else {
		logrus.WithField("file", envFile).Info("loaded configuration")
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		GoEnv:              getEnv("GO_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		QuotesTable:        getEnv("QUOTES_TABLE", "quotes"),
		SettlementsTable:   getEnv("SETTLEMENTS_TABLE", "settlements"),
		SeedFile:           getEnv("SEED_FILE", ""),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MercadoPagoToken:   getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		PaymentGatewayMock: getBool("PAYMENT_GATEWAY_MOCK", false),
	}
}

// Validate checks the combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StorageDynamoDB, c.StorageDriver)
	}
	if c.StorageDriver == StorageDynamoDB && (c.QuotesTable == "" || c.SettlementsTable == "") {
		return fmt.Errorf("QUOTES_TABLE and SETTLEMENTS_TABLE are required with the dynamodb driver")
	}
	if c.IsProduction() && !c.PaymentGatewayMock && c.MercadoPagoToken == "" {
		return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN is required in production unless PAYMENT_GATEWAY_MOCK is set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0 || (len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
