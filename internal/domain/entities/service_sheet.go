package entities

import "time"

// ServiceSheet is a named catalog of services.
//
// Domain notes:
//   - Exactly one sheet is the default (IsDefault=true) and it has no CustomerID.
//   - Any other sheet overrides the default catalog for one customer.
//   - Services keep their order; the order is visible in resolved catalogs.
type ServiceSheet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	IsDefault   bool      `json:"is_default"`
	CustomerID  *string   `json:"customer_id,omitempty"`
	Services    []Service `json:"services" validate:"dive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy reports whether the sheet is a non-default sheet of customerID.
func (s ServiceSheet) OwnedBy(customerID string) bool {
	return !s.IsDefault && s.CustomerID != nil && *s.CustomerID == customerID
}

// ServiceSheetPatch updates a sheet. IsDefault cannot be patched.
type ServiceSheetPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	CustomerID  *string   `json:"customer_id"`
	Services    []Service `json:"services"`
}

func (p ServiceSheetPatch) Apply(s *ServiceSheet) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.CustomerID != nil {
		id := *p.CustomerID
		s.CustomerID = &id
	}
	if p.Services != nil {
		s.Services = p.Services
	}
}
