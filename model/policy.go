package model

// ComponentCalc scores one risk category of an aggregated token view on a
// 0-100 scale. Weights across all registered calculators must sum to 1.0.
type ComponentCalc interface {
	Calc(data *AggregatedData) float64
	Name() string
	Weight() float64
}
