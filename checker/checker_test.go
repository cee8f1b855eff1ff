package checker

import (
	"context"
	"testing"
	"time"

	"github.com/magiconair/properties/assert"

	"github.com/obadiaha/safe-trade-scout-v2/client"
	"github.com/obadiaha/safe-trade-scout-v2/datastore"
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type stubSecuritySource struct {
	result client.GoPlusResult
	calls  int
}

func (s *stubSecuritySource) FetchTokenSecurity(ctx context.Context, token, chain string) client.GoPlusResult {
	s.calls++
	return s.result
}

type stubMarketSource struct {
	result client.DexScreenerResult
	calls  int
}

func (s *stubMarketSource) FetchLiquidity(ctx context.Context, token, chain string) client.DexScreenerResult {
	s.calls++
	return s.result
}

func benignSecurityResult() client.GoPlusResult {
	return client.GoPlusResult{
		Honeypot: model.HoneypotData{BuyTax: 1, SellTax: 1},
		Contract: model.ContractData{IsOpenSource: true},
		Holders:  model.HolderData{TotalCount: 5000, TopHolderPercent: 5, Top10Percent: 20},
		OK:       true,
	}
}

func benignMarketResult() client.DexScreenerResult {
	pair := "0xpair"
	dex := "uniswap"
	locked := 80.0
	return client.DexScreenerResult{
		Liquidity: model.LiquidityData{
			TotalUSD:      120000,
			MainPair:      &pair,
			Dex:           &dex,
			LockedPercent: &locked,
		},
		OK: true,
	}
}

func newTestChecker(security SecuritySource, market MarketSource) *Checker {
	return &Checker{
		cache:    datastore.NewMemoryCache(10, time.Minute),
		security: security,
		market:   market,
	}
}

func TestCheckBenignToken(t *testing.T) {
	checker := newTestChecker(&stubSecuritySource{result: benignSecurityResult()}, &stubMarketSource{result: benignMarketResult()})

	result, err := checker.Check(context.Background(), "0xAbC0000000000000000000000000000000000001", "Ethereum")
	assert.Equal(t, err, nil)
	assert.Equal(t, result.Token, "0xabc0000000000000000000000000000000000001")
	assert.Equal(t, result.Chain, "ethereum")
	assert.Equal(t, result.Safety.Score, 100)
	assert.Equal(t, result.Safety.Grade, model.GradeA)
	assert.Equal(t, result.Safety.Recommendation, model.RecommendationSafe)
	assert.Equal(t, result.Flags, []model.RiskFlag{})
	assert.Equal(t, result.Sources, model.Sources{GoPlus: true, DexScreener: true, Holders: true})
	assert.Equal(t, result.Cached, false)
	assert.Equal(t, checker.CacheSize(), 1)
}

func TestCheckCacheHit(t *testing.T) {
	security := &stubSecuritySource{result: benignSecurityResult()}
	market := &stubMarketSource{result: benignMarketResult()}
	checker := newTestChecker(security, market)

	first, err := checker.Check(context.Background(), "0xabc", "ethereum")
	assert.Equal(t, err, nil)

	second, err := checker.Check(context.Background(), "0xABC", "ethereum")
	assert.Equal(t, err, nil)
	assert.Equal(t, second.Cached, true)
	// the stored timestamp survives the cache hit
	assert.Equal(t, second.CheckedAt, first.CheckedAt)
	assert.Equal(t, security.calls, 1)
	assert.Equal(t, market.calls, 1)

	// the stored entry itself stays unmarked
	cached, _ := checker.Check(context.Background(), "0xabc", "ethereum")
	assert.Equal(t, cached.Cached, true)
	assert.Equal(t, first.Cached, false)
}

func TestCheckDegradedSources(t *testing.T) {
	checker := newTestChecker(&stubSecuritySource{}, &stubMarketSource{})

	result, err := checker.Check(context.Background(), "0xabc", "ethereum")
	assert.Equal(t, err, nil)
	assert.Equal(t, result.Sources, model.Sources{})
	// default views still score deterministically
	assert.Equal(t, result.Honeypot.IsHoneypot, false)
	assert.Equal(t, result.Liquidity.TotalUSD, float64(0))
}

func TestCheckRiskyTokenFlags(t *testing.T) {
	security := &stubSecuritySource{result: client.GoPlusResult{
		Honeypot: model.HoneypotData{SellTax: 25},
		Contract: model.ContractData{CanMint: true},
		Holders:  model.HolderData{TotalCount: 40, TopHolderPercent: 30, Top10Percent: 60, WhaleAlert: true},
		OK:       true,
	}}
	market := &stubMarketSource{result: client.DexScreenerResult{
		Liquidity: model.LiquidityData{TotalUSD: 2000},
		OK:        true,
	}}
	checker := newTestChecker(security, market)

	result, err := checker.Check(context.Background(), "0xabc", "ethereum")
	assert.Equal(t, err, nil)
	assert.Equal(t, result.Flags, []model.RiskFlag{
		model.FlagHighSellTax,
		model.FlagLowLiquidity,
		model.FlagNoLiquidityLock,
		model.FlagHighHolderConcentration,
		model.FlagWhaleDetected,
		model.FlagCanMint,
		model.FlagClosedSource,
	})
	assert.Equal(t, result.Safety.Score, 41)
	assert.Equal(t, result.Safety.Grade, model.GradeC)
	assert.Equal(t, result.Safety.Recommendation, model.RecommendationRisky)
}

func TestHolderReport(t *testing.T) {
	security := &stubSecuritySource{result: client.GoPlusResult{
		Holders: model.HolderData{TotalCount: 42, TopHolderPercent: 30.2, Top10Percent: 61.5},
		OK:      true,
	}}
	checker := newTestChecker(security, &stubMarketSource{})

	report := checker.HolderReport(context.Background(), "0xAbC", "Ethereum")
	assert.Equal(t, report.Token, "0xabc")
	assert.Equal(t, report.Chain, "ethereum")
	assert.Equal(t, report.Source, true)
	assert.Equal(t, report.Report.Score, 25)
	assert.Equal(t, len(report.Report.Warnings), 3)
}
