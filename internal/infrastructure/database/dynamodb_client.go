package database

import (
	"context"
	"fmt"
	"os"

	"quote_desk/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings describes how to reach DynamoDB. Endpoint is only set for
// DynamoDB Local.
type DynamoDBSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// DynamoDBSettingsFromEnv reads:
//   - AWS_REGION (default: us-east-1)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default "local" with an endpoint)
func DynamoDBSettingsFromEnv() DynamoDBSettings {
	s := DynamoDBSettings{
		Region:          getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if s.Endpoint != "" {
		if s.AccessKeyID == "" {
			s.AccessKeyID = "local"
		}
		if s.SecretAccessKey == "" {
			s.SecretAccessKey = "local"
		}
	}
	return s
}

func (s DynamoDBSettings) loadOptions() []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.Region)}
	if s.AccessKeyID != "" && s.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, ""),
		))
	}
	return opts
}

// NewDynamoDBClient builds a client from s.
func NewDynamoDBClient(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, s.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	})
	logger.For("database", "NewDynamoDBClient").
		WithField("region", s.Region).
		WithField("endpoint", s.Endpoint).
		Info("dynamodb client ready")
	return client, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
