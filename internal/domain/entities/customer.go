package entities

// Customer is a client of the agency (hotel, travel agency, corporate account).
//
// CustomPricing flags the customer as eligible for a price adjustment. The
// adjustment is not applied by the pricing package yet.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	CustomPricing bool   `json:"custom_pricing"`
}

type CustomerPatch struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	CustomPricing *bool   `json:"custom_pricing"`
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.CustomPricing != nil {
		c.CustomPricing = *p.CustomPricing
	}
}
