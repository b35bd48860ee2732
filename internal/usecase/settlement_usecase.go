package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/validation"
	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSettlementNotFound             = errors.New("settlement not found")
	ErrInvalidSettlementID            = errors.New("invalid settlement id")
	ErrSettlementAlreadyExists        = errors.New("settlement already exists for quote")
	ErrInvalidSettlementStatus        = errors.New("invalid settlement status")
	ErrInvalidCharge                  = errors.New("invalid additional charge")
	ErrSettlementNotCompleted         = errors.New("settlement not completed")
	ErrSettlementAlreadyPaid          = errors.New("settlement already paid")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISettlementUseCase reconciles delivered services against an approved quote
// and collects the settled amount.
//
// Rules:
//   - one settlement per quote
//   - total = sum of line totals (actual price when set) + additional charges
//   - payment is collected once, for completed settlements only
type ISettlementUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string) (entities.Settlement, error)
	GetByID(ctx context.Context, id string) (entities.Settlement, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Settlement, error)
	List(ctx context.Context) ([]entities.Settlement, error)
	Update(ctx context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error)
	AddCharge(ctx context.Context, id, description string, amount float64) (entities.Settlement, error)
	CollectPayment(ctx context.Context, id string, payload json.RawMessage) (entities.Settlement, error)
}

type SettlementUseCase struct {
	repo      interfaces.ISettlementRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(repo interfaces.ISettlementRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *SettlementUseCase {
	return &SettlementUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *SettlementUseCase) CreateFromQuote(ctx context.Context, quoteID string) (entities.Settlement, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Settlement{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if q.ID == "" {
		return entities.Settlement{}, ErrQuoteNotFound
	}

	if existing, err := u.repo.GetByQuoteID(ctx, quoteID); err != nil {
		return entities.Settlement{}, err
	} else if existing.ID != "" {
		return entities.Settlement{}, ErrSettlementAlreadyExists
	}

	now := time.Now().UTC()
	s := entities.Settlement{
		ID:                uuid.NewString(),
		QuoteID:           q.ID,
		CustomerID:        q.CustomerID,
		Services:          make([]entities.SettlementService, 0, len(q.Services)),
		AdditionalCharges: []entities.AdditionalCharge{},
		Status:            entities.SettlementStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, line := range q.Services {
		s.Services = append(s.Services, entities.NewSettlementService(line))
	}
	if err := validation.Settlement(s); err != nil {
		return entities.Settlement{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.Settlement{}, ErrSettlementAlreadyExists
	}
	if err != nil {
		return entities.Settlement{}, err
	}
	return created, nil
}

func (u *SettlementUseCase) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Settlement{}, ErrInvalidSettlementID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Settlement{}, err
	}
	if s.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return s, nil
}

func (u *SettlementUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.Settlement, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Settlement{}, ErrInvalidQuoteID
	}

	s, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if s.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return s, nil
}

func (u *SettlementUseCase) List(ctx context.Context) ([]entities.Settlement, error) {
	return u.repo.List(ctx)
}

func (u *SettlementUseCase) Update(ctx context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Settlement{}, ErrInvalidSettlementID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Settlement{}, ErrInvalidSettlementStatus
	}
	return u.update(ctx, id, patch)
}

func (u *SettlementUseCase) AddCharge(ctx context.Context, id, description string, amount float64) (entities.Settlement, error) {
	description = strings.TrimSpace(description)
	if description == "" || amount < 0 {
		return entities.Settlement{}, ErrInvalidCharge
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Settlement{}, ErrInvalidSettlementID
	}

	charge := entities.AdditionalCharge{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
	}
	updated, err := u.repo.Mutate(ctx, id, func(s *entities.Settlement) error {
		s.AdditionalCharges = append(append([]entities.AdditionalCharge{}, s.AdditionalCharges...), charge)
		return nil
	})
	if err != nil {
		return entities.Settlement{}, err
	}
	if updated.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return updated, nil
}

func (u *SettlementUseCase) update(ctx context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error) {
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Settlement{}, err
	}
	if updated.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return updated, nil
}

// CollectPayment charges the settlement total through the payment gateway
// and stores the provider response on the settlement.
//
// The payload is a Mercado Pago payment request. transaction_amount is always
// overwritten with the settlement total; external_reference and description
// default to the settlement id.
func (u *SettlementUseCase) CollectPayment(ctx context.Context, id string, payload json.RawMessage) (entities.Settlement, error) {
	log := logger.For("settlement", "CollectPayment").WithField("raw_settlement_id", id).WithField("payload_len", len(payload))
	log.Info("collect payment start")

	if u.gateway == nil {
		return entities.Settlement{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Settlement{}, err
	}
	log = log.WithField("settlement_id", s.ID)
	if s.Status != entities.SettlementStatusCompleted {
		log.WithField("status", s.Status).Warn("settlement not completed")
		return entities.Settlement{}, ErrSettlementNotCompleted
	}
	if s.Payment != nil && s.Payment.Status == "approved" {
		return entities.Settlement{}, ErrSettlementAlreadyPaid
	}

	req := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil || req == nil {
			log.Warn("payload is not a JSON object")
			return entities.Settlement{}, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = s.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Settlement %s", s.ID)
	}
	normalizeSandboxPayerFromUserID(req)
	ensurePayerDefaults(req)
	req["transaction_amount"] = s.Total

	body, err := json.Marshal(req)
	if err != nil {
		return entities.Settlement{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		logger.LogError("settlement", "CollectPayment", map[string]any{"settlement_id": s.ID}, err)
		return entities.Settlement{}, classifyGatewayError(err)
	}
	log.WithField("provider_payment_id", providerID).WithField("provider_status", providerStatus).Info("payment gateway success")

	payment := &entities.SettlementPayment{
		ID:               providerID,
		Status:           providerStatus,
		Date:             time.Now().UTC(),
		ProviderResponse: providerResp,
	}
	return u.update(ctx, s.ID, entities.SettlementPatch{Payment: payment})
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, on sandbox tokens, a test payer
// email when the request names no payer at all.
func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox payer user id
// for its email, which is what the sandbox accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
