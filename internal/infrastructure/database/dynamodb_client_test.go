package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynamoDBSettingsFromEnv_LocalEndpointGetsDummyCredentials(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	s := DynamoDBSettingsFromEnv()

	assert.Equal(t, "us-east-1", s.Region)
	assert.Equal(t, "local", s.AccessKeyID)
	assert.Equal(t, "local", s.SecretAccessKey)
	assert.Len(t, s.loadOptions(), 2)
}

func TestDynamoDBSettingsFromEnv_DefaultChain(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	s := DynamoDBSettingsFromEnv()

	assert.Equal(t, "sa-east-1", s.Region)
	assert.Empty(t, s.AccessKeyID)
	assert.Len(t, s.loadOptions(), 1)
}
