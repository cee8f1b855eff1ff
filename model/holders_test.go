package model

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestAnalyzeHolders(t *testing.T) {
	healthy := HolderData{TotalCount: 1000, Top10Percent: 20, TopHolderPercent: 8}
	assert.Equal(t, AnalyzeHolders(healthy), []string{})

	risky := HolderData{TotalCount: 42, Top10Percent: 61.5, TopHolderPercent: 30.2}
	assert.Equal(t, AnalyzeHolders(risky), []string{
		"Top holder owns 30.2% of supply",
		"Top 10 holders own 61.5% of supply",
		"Only 42 holders - limited distribution",
	})
}

func TestCalculateHolderScore(t *testing.T) {
	tests := []struct {
		name string
		data HolderData
		want int
	}{
		{name: "healthy", data: HolderData{TotalCount: 1000, Top10Percent: 20, TopHolderPercent: 8}, want: 100},
		{name: "mild concentration", data: HolderData{TotalCount: 200, Top10Percent: 45, TopHolderPercent: 20}, want: 65},
		{name: "light penalties", data: HolderData{TotalCount: 400, Top10Percent: 35, TopHolderPercent: 12}, want: 85},
		{name: "heavy concentration", data: HolderData{TotalCount: 40, Top10Percent: 60, TopHolderPercent: 30}, want: 25},
		{name: "low count only", data: HolderData{TotalCount: 80, Top10Percent: 10, TopHolderPercent: 5}, want: 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CalculateHolderScore(tt.data), tt.want)
		})
	}
}

// The sub-scorer is tuned apart from the main engine's holder component and
// may legitimately disagree with it on the same input.
func TestNewHolderReport(t *testing.T) {
	data := HolderData{TotalCount: 42, Top10Percent: 61.5, TopHolderPercent: 30.2, WhaleAlert: true}
	report := NewHolderReport(data)

	assert.Equal(t, report.Data, data)
	assert.Equal(t, len(report.Warnings), 3)
	assert.Equal(t, report.Score, 25)
}
