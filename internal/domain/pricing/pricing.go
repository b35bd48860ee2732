// Package pricing computes service prices and line totals.
//
// Sums are accumulated with decimal arithmetic so that totals such as
// 0.1*3 + 0.2 come out exact before being handed back as float64.
package pricing

import (
	"quote_desk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Line is anything priced per unit with a quantity.
type Line interface {
	LinePrice() float64
	LineQuantity() int
}

// Price returns the effective unit price of a service. A nil service is
// priced at 0.
//
// TODO: apply the Customer.CustomPricing adjustment once the discount rate is
// confirmed by product (one code path used a flat 10%, the other none).
func Price(service *entities.Service) float64 {
	if service == nil {
		return 0
	}
	return service.BasePrice
}

// Total is the sum of price*quantity over lines. An empty slice totals 0.
func Total[L Line](lines []L) float64 {
	return sum(lines).InexactFloat64()
}

// SettlementTotal is the sum of the settlement lines (actual price when
// recorded) plus every additional charge.
func SettlementTotal(s entities.Settlement) float64 {
	total := sum(s.Services)
	for _, c := range s.AdditionalCharges {
		total = total.Add(decimal.NewFromFloat(c.Amount))
	}
	return total.InexactFloat64()
}

func sum[L Line](lines []L) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		line := decimal.NewFromFloat(l.LinePrice()).Mul(decimal.NewFromInt(int64(l.LineQuantity())))
		total = total.Add(line)
	}
	return total
}
