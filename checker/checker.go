package checker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/obadiaha/safe-trade-scout-v2/client"
	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/datastore"
	"github.com/obadiaha/safe-trade-scout-v2/model"
	"github.com/obadiaha/safe-trade-scout-v2/notifier"
	"github.com/obadiaha/safe-trade-scout-v2/policy"
)

// SecuritySource supplies the honeypot/contract/holder share of a check.
type SecuritySource interface {
	FetchTokenSecurity(ctx context.Context, token, chain string) client.GoPlusResult
}

// MarketSource supplies the liquidity share of a check.
type MarketSource interface {
	FetchLiquidity(ctx context.Context, token, chain string) client.DexScreenerResult
}

type Checker struct {
	cache     datastore.CheckCache
	security  SecuritySource
	market    MarketSource
	notifiers []notifier.Notifier
}

func NewChecker() *Checker {
	notifiers := []notifier.Notifier{}
	if config.Conf.Notifier.SlackWebHook != "" {
		notifiers = append(notifiers, notifier.NewSlackNotifier(config.Conf.Notifier.SlackWebHook))
	}
	if config.Conf.Notifier.LarkWebHook != "" {
		notifiers = append(notifiers, notifier.NewLarkNotifier(config.Conf.Notifier.LarkWebHook))
	}

	return &Checker{
		cache:     datastore.NewCheckCache(),
		security:  client.NewGoPlusClient(),
		market:    client.NewDexScreenerClient(),
		notifiers: notifiers,
	}
}

// Check runs the full pipeline for one (token, chain) pair: cache lookup,
// concurrent source fetches, aggregation, scoring, cache store. Degraded
// sources fall back to their default views, so the only error path left is
// an unexpected internal failure.
func (c *Checker) Check(ctx context.Context, token, chain string) (*model.CheckResult, error) {
	chain = strings.ToLower(chain)

	if cached, ok := c.cache.Get(chain, token); ok {
		result := *cached
		result.Cached = true
		return &result, nil
	}

	var (
		securityResult client.GoPlusResult
		marketResult   client.DexScreenerResult
	)
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		securityResult = c.security.FetchTokenSecurity(ctx, token, chain)
	}()
	go func() {
		defer wg.Done()
		marketResult = c.market.FetchLiquidity(ctx, token, chain)
	}()
	wg.Wait()

	data := model.AggregatedData{
		Honeypot:  securityResult.Honeypot,
		Liquidity: marketResult.Liquidity,
		Holders:   securityResult.Holders,
		Contract:  securityResult.Contract,
	}

	result := &model.CheckResult{
		Token:     strings.ToLower(token),
		Chain:     chain,
		Safety:    policy.AssessSafety(&data),
		Honeypot:  data.Honeypot,
		Liquidity: data.Liquidity,
		Holders:   data.Holders,
		Contract:  data.Contract,
		Flags:     policy.DetectFlags(&data),
		Sources: model.Sources{
			GoPlus:      securityResult.OK,
			DexScreener: marketResult.OK,
			Holders:     securityResult.OK,
		},
		Cached:    false,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	c.cache.Set(chain, token, result)
	c.notifyHighRisk(result)

	return result, nil
}

// HolderReportResult is the focused holder-distribution response, built from
// the security source alone.
type HolderReportResult struct {
	Token     string             `json:"token"`
	Chain     string             `json:"chain"`
	Report    model.HolderReport `json:"report"`
	Source    bool               `json:"source"`
	CheckedAt string             `json:"checked_at"`
}

func (c *Checker) HolderReport(ctx context.Context, token, chain string) HolderReportResult {
	chain = strings.ToLower(chain)
	securityResult := c.security.FetchTokenSecurity(ctx, token, chain)

	return HolderReportResult{
		Token:     strings.ToLower(token),
		Chain:     chain,
		Report:    model.NewHolderReport(securityResult.Holders),
		Source:    securityResult.OK,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func (c *Checker) CacheSize() int {
	return c.cache.Size()
}

func (c *Checker) notifyHighRisk(result *model.CheckResult) {
	if len(c.notifiers) == 0 || result.Safety.Recommendation != model.RecommendationAvoid {
		return
	}
	for _, n := range c.notifiers {
		go n.Notify(*result)
	}
}
