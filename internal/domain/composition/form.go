// Package composition builds the service list of a quote: picking services
// from a resolved catalog and accumulating them into a quote form.
package composition

import (
	"errors"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
)

var ErrServiceIndexOutOfRange = errors.New("service index out of range")

// Form accumulates the services of a quote being composed.
type Form struct {
	CustomerID string
	Services   []entities.QuoteService
	Status     entities.QuoteStatus

	customer *entities.Customer
}

// NewForm starts a form from an existing quote, or an empty draft when
// initial is nil.
func NewForm(initial *entities.Quote) *Form {
	f := &Form{Status: entities.QuoteStatusDraft}
	if initial == nil {
		return f
	}
	f.CustomerID = initial.CustomerID
	f.Services = append([]entities.QuoteService(nil), initial.Services...)
	if initial.Status != "" {
		f.Status = initial.Status
	}
	return f
}

// AddService merges s into the form. A line for the same service gets its
// quantity increased and keeps its original price; otherwise s is appended.
func (f *Form) AddService(s entities.QuoteService) {
	for i := range f.Services {
		if f.Services[i].ServiceID == s.ServiceID {
			f.Services[i].Quantity += s.Quantity
			return
		}
	}
	f.Services = append(f.Services, s)
}

// RemoveService drops the line at index. Out of range indexes leave the form
// untouched and return ErrServiceIndexOutOfRange.
func (f *Form) RemoveService(index int) error {
	if index < 0 || index >= len(f.Services) {
		return ErrServiceIndexOutOfRange
	}
	f.Services = append(f.Services[:index], f.Services[index+1:]...)
	return nil
}

func (f *Form) SetCustomer(c entities.Customer) {
	f.customer = &c
	f.CustomerID = c.ID
}

// Customer returns the customer set with SetCustomer, if any.
func (f *Form) Customer() (entities.Customer, bool) {
	if f.customer == nil {
		return entities.Customer{}, false
	}
	return *f.customer, true
}

// Total is recomputed from the current lines on every call.
func (f *Form) Total() float64 {
	return pricing.Total(f.Services)
}

// ApplyTo writes the composed lines, customer, status and derived total into q.
func (f *Form) ApplyTo(q *entities.Quote) {
	q.CustomerID = f.CustomerID
	q.Services = f.Services
	q.Status = f.Status
	q.Total = f.Total()
}
