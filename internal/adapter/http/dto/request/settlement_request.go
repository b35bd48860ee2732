package request

import "quote_desk/internal/domain/entities"

type SettlementCreateRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

type SettlementServiceRequest struct {
	ServiceID   string   `json:"service_id"`
	Quantity    int      `json:"quantity"`
	Price       float64  `json:"price"`
	Date        string   `json:"date"`
	ActualPrice *float64 `json:"actual_price"`
	Notes       string   `json:"notes"`
}

type SettlementUpdateRequest struct {
	Status            *string                     `json:"status"`
	Services          *[]SettlementServiceRequest `json:"services"`
	AdditionalCharges *[]entities.AdditionalCharge `json:"additional_charges"`
}

// ToPatch converts the request. Services and charges, when present, replace
// the whole list.
func (r SettlementUpdateRequest) ToPatch() (entities.SettlementPatch, error) {
	var p entities.SettlementPatch
	if r.Status != nil {
		st := entities.SettlementStatus(*r.Status)
		p.Status = &st
	}
	if r.Services != nil {
		p.Services = make([]entities.SettlementService, 0, len(*r.Services))
		for _, s := range *r.Services {
			date, err := ParseDate(s.Date)
			if err != nil {
				return entities.SettlementPatch{}, err
			}
			p.Services = append(p.Services, entities.SettlementService{
				ServiceID:   s.ServiceID,
				Quantity:    s.Quantity,
				Price:       s.Price,
				Date:        date,
				ActualPrice: s.ActualPrice,
				Notes:       s.Notes,
			})
		}
	}
	if r.AdditionalCharges != nil {
		p.AdditionalCharges = *r.AdditionalCharges
	}
	return p, nil
}

type AddChargeRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
}
