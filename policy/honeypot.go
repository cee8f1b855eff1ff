package policy

import (
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type HoneypotCalc struct{}

func (hc *HoneypotCalc) Calc(data *model.AggregatedData) float64 {
	if data.Honeypot.IsHoneypot {
		return 0
	}
	return 100
}

func (hc *HoneypotCalc) Name() string {
	return "honeypot"
}

func (hc *HoneypotCalc) Weight() float64 {
	return 0.30
}
