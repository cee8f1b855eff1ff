package policy

import (
	"fmt"
	"math"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/obadiaha/safe-trade-scout-v2/model"
)

const honeypotSummary = "CRITICAL: This token is flagged as a honeypot. Do not trade."

const cleanSummary = "No major risk factors detected. Standard precautions advised."

var componentCalcs = []model.ComponentCalc{
	&HoneypotCalc{},
	&TaxCalc{},
	&LiquidityCalc{},
	&HolderCalc{},
	&PermissionCalc{},
}

func ComponentCalcs() []model.ComponentCalc {
	return componentCalcs
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// DetectFlags evaluates every flag condition independently and returns the
// matches in canonical order.
func DetectFlags(data *model.AggregatedData) []model.RiskFlag {
	detected := mapset.NewSet[model.RiskFlag]()

	if data.Honeypot.IsHoneypot {
		detected.Add(model.FlagHoneypot)
	}
	if data.Honeypot.BuyTax > HighTaxPercent {
		detected.Add(model.FlagHighBuyTax)
	}
	if data.Honeypot.SellTax > HighTaxPercent {
		detected.Add(model.FlagHighSellTax)
	}
	if data.Liquidity.TotalUSD < MinLiquidityUSD {
		detected.Add(model.FlagLowLiquidity)
	}
	if data.Liquidity.LockedPercent == nil || *data.Liquidity.LockedPercent < MinLockedPercent {
		detected.Add(model.FlagNoLiquidityLock)
	}
	if data.Holders.Top10Percent > model.HighConcentrationPercent {
		detected.Add(model.FlagHighHolderConcentration)
	}
	if data.Holders.WhaleAlert {
		detected.Add(model.FlagWhaleDetected)
	}
	if data.Contract.CanMint {
		detected.Add(model.FlagCanMint)
	}
	if data.Contract.CanPause {
		detected.Add(model.FlagCanPause)
	}
	if data.Contract.CanBlacklist {
		detected.Add(model.FlagCanBlacklist)
	}
	if !data.Contract.IsOpenSource {
		detected.Add(model.FlagClosedSource)
	}
	if data.Contract.IsProxy {
		detected.Add(model.FlagProxyContract)
	}

	flags := []model.RiskFlag{}
	for _, flag := range model.AllRiskFlags {
		if detected.Contains(flag) {
			flags = append(flags, flag)
		}
	}
	return flags
}

func ComponentScores(data *model.AggregatedData) map[string]float64 {
	scores := map[string]float64{}
	for _, calc := range componentCalcs {
		scores[calc.Name()] = calc.Calc(data)
	}
	return scores
}

// CalculateScore returns the 0-100 weighted overall score. A honeypot is an
// instant zero, no weighting applied.
func CalculateScore(data *model.AggregatedData) int {
	if data.Honeypot.IsHoneypot {
		return 0
	}

	weighted := float64(0)
	for _, calc := range componentCalcs {
		weighted += calc.Calc(data) * calc.Weight()
	}
	return int(math.Round(weighted))
}

func DetermineGrade(score int) model.Grade {
	switch {
	case score >= GradeABound:
		return model.GradeA
	case score >= GradeBBound:
		return model.GradeB
	case score >= GradeCBound:
		return model.GradeC
	case score >= GradeDBound:
		return model.GradeD
	default:
		return model.GradeF
	}
}

func DetermineRecommendation(score int) model.Recommendation {
	switch {
	case score >= SafeBound:
		return model.RecommendationSafe
	case score >= CautionBound:
		return model.RecommendationCaution
	case score >= RiskyBound:
		return model.RecommendationRisky
	default:
		return model.RecommendationAvoid
	}
}

// GenerateSummary builds the human readable issue line. The honeypot warning
// overrides everything else, remaining issues are reported in a fixed order.
func GenerateSummary(data *model.AggregatedData, flags []model.RiskFlag) string {
	if data.Honeypot.IsHoneypot {
		return honeypotSummary
	}

	flagSet := mapset.NewSet[model.RiskFlag](flags...)
	issues := []string{}

	if flagSet.Contains(model.FlagHighSellTax) {
		issues = append(issues, fmt.Sprintf("high sell tax (%.1f%%)", data.Honeypot.SellTax))
	}
	if flagSet.Contains(model.FlagHighBuyTax) {
		issues = append(issues, fmt.Sprintf("high buy tax (%.1f%%)", data.Honeypot.BuyTax))
	}
	if flagSet.Contains(model.FlagLowLiquidity) {
		issues = append(issues, "low liquidity")
	}
	if flagSet.Contains(model.FlagWhaleDetected) {
		issues = append(issues, "whale concentration detected")
	}
	if flagSet.Contains(model.FlagCanMint) {
		issues = append(issues, "mintable token")
	}
	if flagSet.Contains(model.FlagClosedSource) {
		issues = append(issues, "closed source contract")
	}

	switch len(issues) {
	case 0:
		return cleanSummary
	case 1:
		return fmt.Sprintf("Moderate risk: %s.", issues[0])
	default:
		return fmt.Sprintf("Risk factors: %s.", strings.Join(issues, ", "))
	}
}

// AssessSafety runs flag detection, scoring and the score mappings in data
// dependency order. It is pure and total, it never fails.
func AssessSafety(data *model.AggregatedData) model.SafetyAssessment {
	flags := DetectFlags(data)
	score := CalculateScore(data)

	return model.SafetyAssessment{
		Score:          score,
		Grade:          DetermineGrade(score),
		Recommendation: DetermineRecommendation(score),
		Summary:        GenerateSummary(data, flags),
	}
}
