package model

import "fmt"

const (
	WhaleThresholdPercent    = 25
	HighConcentrationPercent = 50
	MinHolderCount           = 100
)

// HolderReport is the focused holder-distribution view served by the holder
// endpoint. Its score uses a finer penalty ladder than the main risk engine's
// holder component, the two are intentionally tuned apart.
type HolderReport struct {
	Data     HolderData `json:"data"`
	Warnings []string   `json:"warnings"`
	Score    int        `json:"score"`
}

func AnalyzeHolders(data HolderData) []string {
	warnings := []string{}

	if data.TopHolderPercent > WhaleThresholdPercent {
		warnings = append(warnings, fmt.Sprintf("Top holder owns %.1f%% of supply", data.TopHolderPercent))
	}
	if data.Top10Percent > HighConcentrationPercent {
		warnings = append(warnings, fmt.Sprintf("Top 10 holders own %.1f%% of supply", data.Top10Percent))
	}
	if data.TotalCount < MinHolderCount {
		warnings = append(warnings, fmt.Sprintf("Only %d holders - limited distribution", data.TotalCount))
	}

	return warnings
}

// CalculateHolderScore rates distribution health on 0-100, higher is better.
func CalculateHolderScore(data HolderData) int {
	score := 100

	switch {
	case data.TopHolderPercent > WhaleThresholdPercent:
		score -= 30
	case data.TopHolderPercent > 15:
		score -= 15
	case data.TopHolderPercent > 10:
		score -= 5
	}

	switch {
	case data.Top10Percent > HighConcentrationPercent:
		score -= 25
	case data.Top10Percent > 40:
		score -= 15
	case data.Top10Percent > 30:
		score -= 5
	}

	switch {
	case data.TotalCount < 50:
		score -= 20
	case data.TotalCount < MinHolderCount:
		score -= 10
	case data.TotalCount < 500:
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	return score
}

func NewHolderReport(data HolderData) HolderReport {
	return HolderReport{
		Data:     data,
		Warnings: AnalyzeHolders(data),
		Score:    CalculateHolderScore(data),
	}
}
