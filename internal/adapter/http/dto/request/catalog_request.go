package request

import (
	"strings"

	"quote_desk/internal/domain/entities"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CategoryRequest) ToEntity() entities.Category {
	return entities.Category{Name: strings.TrimSpace(r.Name), Description: r.Description}
}

type CustomerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CustomPricing bool   `json:"custom_pricing"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		CustomPricing: r.CustomPricing,
	}
}

type ServiceRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	BasePrice   float64 `json:"base_price"`
	Description string  `json:"description"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		Location:    strings.TrimSpace(r.Location),
		BasePrice:   r.BasePrice,
		Description: r.Description,
	}
}

// ServiceSheetRequest creates a sheet. A sheet with a customer_id overrides
// the default catalog for that customer.
type ServiceSheetRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsDefault   bool             `json:"is_default"`
	CustomerID  *string          `json:"customer_id"`
	Services    []ServiceRequest `json:"services"`
}

func (r ServiceSheetRequest) ToEntity() entities.ServiceSheet {
	s := entities.ServiceSheet{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		IsDefault:   r.IsDefault,
		Services:    make([]entities.Service, 0, len(r.Services)),
	}
	if r.CustomerID != nil {
		if id := strings.TrimSpace(*r.CustomerID); id != "" {
			s.CustomerID = &id
		}
	}
	for _, svc := range r.Services {
		s.Services = append(s.Services, svc.ToEntity())
	}
	return s
}
