package response

import (
	"encoding/json"
	"time"

	"quote_desk/internal/domain/entities"
)

type SettlementPaymentResponse struct {
	PaymentID   string         `json:"payment_id"`
	Status      string         `json:"status"`
	PaymentDate time.Time      `json:"payment_date"`
	ProviderRaw string         `json:"provider_raw,omitempty"`
	Provider    map[string]any `json:"provider,omitempty"`
}

type SettlementResponse struct {
	ID                string                       `json:"id"`
	SettlementID      string                       `json:"settlement_id"`
	QuoteID           string                       `json:"quote_id"`
	CustomerID        string                       `json:"customer_id"`
	Services          []entities.SettlementService `json:"services"`
	AdditionalCharges []entities.AdditionalCharge  `json:"additional_charges"`
	Total             float64                      `json:"total"`
	Status            string                       `json:"status"`
	Payment           *SettlementPaymentResponse   `json:"payment,omitempty"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

func FromSettlement(s entities.Settlement) SettlementResponse {
	res := SettlementResponse{
		ID:                s.ID,
		SettlementID:      s.ID,
		QuoteID:           s.QuoteID,
		CustomerID:        s.CustomerID,
		Services:          s.Services,
		AdditionalCharges: s.AdditionalCharges,
		Total:             s.Total,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if res.Services == nil {
		res.Services = []entities.SettlementService{}
	}
	if res.AdditionalCharges == nil {
		res.AdditionalCharges = []entities.AdditionalCharge{}
	}
	if s.Payment != nil {
		res.Payment = fromSettlementPayment(*s.Payment)
	}
	return res
}

func fromSettlementPayment(p entities.SettlementPayment) *SettlementPaymentResponse {
	res := &SettlementPaymentResponse{
		PaymentID:   p.ID,
		Status:      p.Status,
		PaymentDate: p.Date,
	}
	if len(p.ProviderResponse) > 0 {
		res.ProviderRaw = string(p.ProviderResponse)
		var parsed map[string]any
		if err := json.Unmarshal(p.ProviderResponse, &parsed); err == nil {
			res.Provider = parsed
		}
	}
	return res
}

func FromSettlements(ss []entities.Settlement) []SettlementResponse {
	out := make([]SettlementResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSettlement(s))
	}
	return out
}
