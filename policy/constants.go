package policy

// Detection thresholds, tax and concentration values are percentages,
// liquidity values are USD.
const (
	HighTaxPercent     = 10
	ModerateTaxPercent = 5

	MinLiquidityUSD  = 10000
	GoodLiquidityUSD = 50000

	MinLockedPercent = 50
)

// Score bands, inclusive on the lower bound.
const (
	GradeABound = 80
	GradeBBound = 60
	GradeCBound = 40
	GradeDBound = 20

	SafeBound    = 75
	CautionBound = 50
	RiskyBound   = 25
)
