package memory

import "quote_desk/internal/domain/entities"

func cloneSheet(s entities.ServiceSheet) entities.ServiceSheet {
	if s.CustomerID != nil {
		id := *s.CustomerID
		s.CustomerID = &id
	}
	if s.Services != nil {
		s.Services = append([]entities.Service(nil), s.Services...)
	}
	return s
}

func cloneQuote(q entities.Quote) entities.Quote {
	if q.Services != nil {
		q.Services = append([]entities.QuoteService(nil), q.Services...)
	}
	return q
}

func cloneSettlement(s entities.Settlement) entities.Settlement {
	if s.Services != nil {
		lines := make([]entities.SettlementService, len(s.Services))
		for i, l := range s.Services {
			if l.ActualPrice != nil {
				p := *l.ActualPrice
				l.ActualPrice = &p
			}
			lines[i] = l
		}
		s.Services = lines
	}
	if s.AdditionalCharges != nil {
		s.AdditionalCharges = append([]entities.AdditionalCharge(nil), s.AdditionalCharges...)
	}
	if s.Payment != nil {
		p := *s.Payment
		s.Payment = &p
	}
	return s
}

func cloneEmailQuote(e entities.EmailQuote) entities.EmailQuote {
	if e.DetectedServices != nil {
		e.DetectedServices = append([]entities.DetectedService(nil), e.DetectedServices...)
	}
	return e
}
