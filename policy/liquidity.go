package policy

import (
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type LiquidityCalc struct{}

// Calc ramps 0→50 below the minimum liquidity bar and 50→100 up to the good
// liquidity bar, full marks beyond that.
func (lc *LiquidityCalc) Calc(data *model.AggregatedData) float64 {
	totalUSD := data.Liquidity.TotalUSD

	score := float64(100)
	switch {
	case totalUSD < MinLiquidityUSD:
		score = (totalUSD / MinLiquidityUSD) * 50
	case totalUSD < GoodLiquidityUSD:
		score = 50 + ((totalUSD-MinLiquidityUSD)/(GoodLiquidityUSD-MinLiquidityUSD))*50
	}
	return clampScore(score)
}

func (lc *LiquidityCalc) Name() string {
	return "liquidity"
}

func (lc *LiquidityCalc) Weight() float64 {
	return 0.20
}
