package entities

import "time"

// Service is a priced catalog entry (a hotel night, a transfer, a tour).
//
// Domain notes:
//   - Identity is ID.
//   - (Name, Category) is only used to match overrides inside service sheets;
//     it is not unique across the system.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	BasePrice   float64   `json:"base_price" validate:"gt=0"`
	Description string    `json:"description,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
	SheetID     string    `json:"sheet_id,omitempty"`
}

type ServicePatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Location    *string  `json:"location"`
	BasePrice   *float64 `json:"base_price"`
	Description *string  `json:"description"`
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.BasePrice != nil {
		s.BasePrice = *p.BasePrice
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
}
