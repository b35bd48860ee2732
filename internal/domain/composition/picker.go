package composition

import (
	"time"

	"quote_desk/internal/domain/catalog"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
)

// Picker selects one service from a resolved catalog and turns it into a
// quote line.
type Picker struct {
	catalog []entities.Service

	selected    *entities.Service
	quantity    int
	customPrice *float64
}

func NewPicker(available []entities.Service) *Picker {
	return &Picker{catalog: available, quantity: 1}
}

// Select picks serviceID from the catalog and resets the working price to the
// service price. It reports false when the id is not in the catalog.
func (p *Picker) Select(serviceID string) bool {
	s, ok := catalog.Find(p.catalog, serviceID)
	if !ok {
		return false
	}
	p.selected = &s
	price := pricing.Price(&s)
	p.customPrice = &price
	return true
}

func (p *Picker) Selected() (entities.Service, bool) {
	if p.selected == nil {
		return entities.Service{}, false
	}
	return *p.selected, true
}

func (p *Picker) SetQuantity(q int) { p.quantity = q }

// SetCustomPrice overrides the working price. The override wins over the
// base price when the line is built, including an explicit 0.
func (p *Picker) SetCustomPrice(price float64) { p.customPrice = &price }

// Build materializes the selection. It reports false when nothing is selected
// or the quantity is not positive.
func (p *Picker) Build(date time.Time) (entities.QuoteService, bool) {
	if p.selected == nil || p.quantity <= 0 {
		return entities.QuoteService{}, false
	}
	price := p.selected.BasePrice
	if p.customPrice != nil {
		price = *p.customPrice
	}
	return entities.QuoteService{
		ServiceID: p.selected.ID,
		Quantity:  p.quantity,
		Price:     price,
		Date:      date,
	}, true
}

func (p *Picker) Reset() {
	p.selected = nil
	p.quantity = 1
	p.customPrice = nil
}
