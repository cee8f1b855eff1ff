package policy

import (
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type HolderCalc struct{}

func (hc *HolderCalc) Calc(data *model.AggregatedData) float64 {
	score := float64(100)
	if data.Holders.TopHolderPercent > model.WhaleThresholdPercent {
		score -= 40
	}
	if data.Holders.Top10Percent > model.HighConcentrationPercent {
		score -= 30
	}
	if data.Holders.TotalCount < model.MinHolderCount {
		score -= 20
	}
	return clampScore(score)
}

func (hc *HolderCalc) Name() string {
	return "holders"
}

func (hc *HolderCalc) Weight() float64 {
	return 0.15
}
