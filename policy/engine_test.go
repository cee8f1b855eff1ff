package policy

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/obadiaha/safe-trade-scout-v2/model"
)

func benignData() model.AggregatedData {
	locked := 60.0
	return model.AggregatedData{
		Honeypot: model.HoneypotData{BuyTax: 2, SellTax: 3},
		Liquidity: model.LiquidityData{
			TotalUSD:      75000,
			LockedPercent: &locked,
		},
		Holders: model.HolderData{
			TotalCount:       1000,
			Top10Percent:     20,
			TopHolderPercent: 8,
		},
		Contract: model.ContractData{IsOpenSource: true},
	}
}

func TestAssessSafetyBenignToken(t *testing.T) {
	data := benignData()

	scores := ComponentScores(&data)
	for _, name := range []string{"honeypot", "tax", "liquidity", "holders", "permissions"} {
		assert.Equal(t, scores[name], float64(100))
	}

	safety := AssessSafety(&data)
	assert.Equal(t, safety.Score, 100)
	assert.Equal(t, safety.Grade, model.GradeA)
	assert.Equal(t, safety.Recommendation, model.RecommendationSafe)
	assert.Equal(t, safety.Summary, cleanSummary)
	assert.Equal(t, DetectFlags(&data), []model.RiskFlag{})
}

func TestAssessSafetyHoneypot(t *testing.T) {
	data := benignData()
	data.Honeypot.IsHoneypot = true

	safety := AssessSafety(&data)
	assert.Equal(t, safety.Score, 0)
	assert.Equal(t, safety.Grade, model.GradeF)
	assert.Equal(t, safety.Recommendation, model.RecommendationAvoid)
	assert.Equal(t, safety.Summary, honeypotSummary)

	flagSet := map[model.RiskFlag]bool{}
	for _, flag := range DetectFlags(&data) {
		flagSet[flag] = true
	}
	assert.Equal(t, flagSet[model.FlagHoneypot], true)
}

func TestAssessSafetyHighSellTaxLowLiquidity(t *testing.T) {
	data := benignData()
	data.Honeypot.BuyTax = 2
	data.Honeypot.SellTax = 15
	data.Liquidity.TotalUSD = 5000
	data.Liquidity.LockedPercent = nil

	assert.Equal(t, DetectFlags(&data), []model.RiskFlag{
		model.FlagHighSellTax,
		model.FlagLowLiquidity,
		model.FlagNoLiquidityLock,
	})

	scores := ComponentScores(&data)
	assert.Equal(t, scores["tax"], float64(25))
	assert.Equal(t, scores["liquidity"], float64(25))

	safety := AssessSafety(&data)
	assert.Equal(t, safety.Score, 70)
	assert.Equal(t, safety.Grade, model.GradeB)
	assert.Equal(t, safety.Recommendation, model.RecommendationCaution)
	assert.Equal(t, safety.Summary, "Risk factors: high sell tax (15.0%), low liquidity.")
}

func TestGenerateSummarySingleIssue(t *testing.T) {
	data := benignData()
	data.Contract.CanMint = true

	flags := DetectFlags(&data)
	assert.Equal(t, GenerateSummary(&data, flags), "Moderate risk: mintable token.")
}

func TestWeightsSumToOne(t *testing.T) {
	sum := float64(0)
	for _, calc := range ComponentCalcs() {
		sum += calc.Weight()
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("component weights sum to %v, want 1.0", sum)
	}
}

func TestGradeAndRecommendationMonotonic(t *testing.T) {
	gradeRank := map[model.Grade]int{
		model.GradeF: 0, model.GradeD: 1, model.GradeC: 2, model.GradeB: 3, model.GradeA: 4,
	}
	recommendationRank := map[model.Recommendation]int{
		model.RecommendationAvoid: 0, model.RecommendationRisky: 1,
		model.RecommendationCaution: 2, model.RecommendationSafe: 3,
	}

	lastGrade, lastRecommendation := -1, -1
	for score := 0; score <= 100; score++ {
		grade := gradeRank[DetermineGrade(score)]
		recommendation := recommendationRank[DetermineRecommendation(score)]
		if grade < lastGrade {
			t.Fatalf("grade rank decreased at score %d", score)
		}
		if recommendation < lastRecommendation {
			t.Fatalf("recommendation rank decreased at score %d", score)
		}
		lastGrade, lastRecommendation = grade, recommendation
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score          int
		grade          model.Grade
		recommendation model.Recommendation
	}{
		{100, model.GradeA, model.RecommendationSafe},
		{80, model.GradeA, model.RecommendationSafe},
		{79, model.GradeB, model.RecommendationSafe},
		{75, model.GradeB, model.RecommendationSafe},
		{74, model.GradeB, model.RecommendationCaution},
		{60, model.GradeB, model.RecommendationCaution},
		{59, model.GradeC, model.RecommendationCaution},
		{50, model.GradeC, model.RecommendationCaution},
		{49, model.GradeC, model.RecommendationRisky},
		{40, model.GradeC, model.RecommendationRisky},
		{39, model.GradeD, model.RecommendationRisky},
		{25, model.GradeD, model.RecommendationRisky},
		{24, model.GradeD, model.RecommendationAvoid},
		{20, model.GradeD, model.RecommendationAvoid},
		{19, model.GradeF, model.RecommendationAvoid},
		{0, model.GradeF, model.RecommendationAvoid},
	}
	for _, tt := range tests {
		assert.Equal(t, DetermineGrade(tt.score), tt.grade)
		assert.Equal(t, DetermineRecommendation(tt.score), tt.recommendation)
	}
}

func TestAssessSafetyIdempotent(t *testing.T) {
	data := benignData()
	data.Honeypot.SellTax = 12
	data.Contract.IsProxy = true
	data.Holders.TopHolderPercent = 30
	data.Holders.WhaleAlert = true

	first, err := json.Marshal(AssessSafety(&data))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(AssessSafety(&data))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, string(first), string(second))
}

func TestScoreStaysInRange(t *testing.T) {
	worst := model.AggregatedData{
		Honeypot: model.HoneypotData{BuyTax: 99, SellTax: 99},
		Holders:  model.HolderData{TopHolderPercent: 90, Top10Percent: 99, WhaleAlert: true},
		Contract: model.ContractData{IsProxy: true, CanMint: true, CanPause: true, CanBlacklist: true, OwnerChangeBalance: true},
	}
	score := CalculateScore(&worst)
	if score < 0 || score > 100 {
		t.Fatalf("score %d out of range", score)
	}
	// honeypot 100*0.30 + tax 0 + liquidity 0 + holders 10*0.15 + permissions 0
	assert.Equal(t, score, 32)
}
