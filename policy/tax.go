package policy

import (
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type TaxCalc struct{}

// Calc rates the worse of buy/sell tax: free under 5%, a steep ramp between
// 5% and 20%, zero above 20%.
func (tc *TaxCalc) Calc(data *model.AggregatedData) float64 {
	maxTax := data.Honeypot.BuyTax
	if data.Honeypot.SellTax > maxTax {
		maxTax = data.Honeypot.SellTax
	}

	score := float64(100)
	switch {
	case maxTax > 20:
		score = 0
	case maxTax > HighTaxPercent:
		score = 50 - (maxTax-HighTaxPercent)*5
	case maxTax > ModerateTaxPercent:
		score = 80 - (maxTax-ModerateTaxPercent)*6
	}
	return clampScore(score)
}

func (tc *TaxCalc) Name() string {
	return "tax"
}

func (tc *TaxCalc) Weight() float64 {
	return 0.20
}
