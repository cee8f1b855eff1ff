package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/model"
	"github.com/obadiaha/safe-trade-scout-v2/utils"
)

type DexScreenerResponse struct {
	Pairs []DexScreenerPair `json:"pairs"`
}

type DexScreenerPair struct {
	ChainID     string         `json:"chainId"`
	DexID       string         `json:"dexId"`
	PairAddress string         `json:"pairAddress"`
	PriceUSD    string         `json:"priceUsd"`
	Liquidity   *PairLiquidity `json:"liquidity"`
}

// PairLiquidity is nullable upstream, missing liquidity counts as zero.
type PairLiquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

func (p *DexScreenerPair) LiquidityUSD() float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.USD
}

// DexScreenerResult is the market source's share of the aggregated view. OK
// reports whether usable pair data came back for the requested chain.
type DexScreenerResult struct {
	Liquidity model.LiquidityData
	OK        bool
}

type DexScreenerClient struct{}

func NewDexScreenerClient() *DexScreenerClient {
	return &DexScreenerClient{}
}

// FetchLiquidity is total: failures and empty pair sets collapse into the
// zero-liquidity default view with OK=false. Pairs are filtered to the
// requested chain, the single deepest pair becomes the main pair while
// total_usd sums every matching pair.
func (d *DexScreenerClient) FetchLiquidity(ctx context.Context, token, chain string) DexScreenerResult {
	defaultResult := DexScreenerResult{}

	chainCfg, ok := utils.GetChainConfig(chain)
	if !ok {
		logrus.Errorf("dexscreener: unsupported chain %s", chain)
		return defaultResult
	}

	url := fmt.Sprintf("%s/tokens/%s", config.Conf.DexScreener.BaseURL, token)

	ctx, cancel := context.WithTimeout(ctx, config.Conf.DexScreener.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.Errorf("dexscreener: build request for token %s is err: %v", token, err)
		return defaultResult
	}
	req.Header.Set("Accept", "application/json")

	resp, err := HTTPClient().Do(req)
	if err != nil {
		logrus.Errorf("dexscreener: fetch token %s is err: %v", token, err)
		return defaultResult
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("dexscreener: fetch token %s got status %d", token, resp.StatusCode)
		return defaultResult
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Errorf("dexscreener: read body for token %s is err: %v", token, err)
		return defaultResult
	}

	data := DexScreenerResponse{}
	if err := json.Unmarshal(body, &data); err != nil {
		logrus.Errorf("dexscreener: unmarshal body for token %s is err: %v", token, err)
		return defaultResult
	}

	if len(data.Pairs) == 0 {
		logrus.Warnf("dexscreener: no pairs found for token %s", token)
		return defaultResult
	}

	chainID := strings.ToLower(chainCfg.DexScreenerChainID)
	chainPairs := []DexScreenerPair{}
	for _, pair := range data.Pairs {
		if strings.ToLower(pair.ChainID) == chainID {
			chainPairs = append(chainPairs, pair)
		}
	}

	if len(chainPairs) == 0 {
		logrus.Warnf("dexscreener: no pairs found for token %s on chain %s", token, chain)
		return defaultResult
	}

	mainPair := chainPairs[0]
	totalLiquidity := decimal.Zero
	for _, pair := range chainPairs {
		if pair.LiquidityUSD() > mainPair.LiquidityUSD() {
			mainPair = pair
		}
		totalLiquidity = totalLiquidity.Add(decimal.NewFromFloat(pair.LiquidityUSD()))
	}

	return DexScreenerResult{
		Liquidity: model.LiquidityData{
			TotalUSD: totalLiquidity.Round(0).InexactFloat64(),
			MainPair: &mainPair.PairAddress,
			Dex:      &mainPair.DexID,
			// locked_percent / lock_end_date stay nil, DexScreener does
			// not report lock data.
			LockedPercent: nil,
			LockEndDate:   nil,
		},
		OK: true,
	}
}
