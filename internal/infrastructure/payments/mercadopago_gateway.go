package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const module = "payments"

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway returns a gateway backed by the Mercado Pago SDK, or a
// mock that approves every payment when mock is set (or PAYMENT_GATEWAY_MOCK /
// MERCADOPAGO_MOCK is truthy).
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	log := logger.For(module, "NewMercadoPagoGateway")
	if mock || isPaymentGatewayMockEnabled() {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.LogError(module, "NewMercadoPagoGateway", nil, err)
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	log := logger.For(module, "CreatePayment").WithField("payload_len", len(requestPayload))

	if g != nil && g.mockMode {
		return mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Warn("gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.LogError(module, "CreatePayment", nil, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode provider response: %w", err)
	}
	log.WithField("provider_payment_id", resp.ID).WithField("provider_status", resp.Status).Info("payment created")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment echoes the request back as an approved payment.
func mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	logger.For(module, "CreatePayment").WithField("provider_payment_id", id).Info("mock payment approved")
	return id, "approved", b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
