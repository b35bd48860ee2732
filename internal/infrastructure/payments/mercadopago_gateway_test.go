package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_RequiresTokenOutsideMockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	g, err := NewMercadoPagoGateway("", false)

	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_MockApprovesAndEchoes(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":215,"external_reference":"st-1"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "st-1", body["external_reference"])
	assert.Equal(t, "accredited", body["status_detail"])
}

func TestMercadoPagoGateway_MockEnabledByEnv(t *testing.T) {
	t.Setenv("MERCADOPAGO_MOCK", "yes")

	g, err := NewMercadoPagoGateway("", false)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway

	_, _, _, err := g.CreatePayment(context.Background(), nil)

	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
