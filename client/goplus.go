package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/config"
	"github.com/obadiaha/safe-trade-scout-v2/model"
	"github.com/obadiaha/safe-trade-scout-v2/utils"
)

// GoPlusResponse is the token_security API envelope. Every field on the token
// payload is string encoded upstream, booleans as "1"/"0" and percentages as
// decimal fractions.
type GoPlusResponse struct {
	Code    int                        `json:"code"`
	Message string                     `json:"message"`
	Result  map[string]GoPlusTokenData `json:"result"`
}

type GoPlusTokenData struct {
	IsHoneypot         string         `json:"is_honeypot"`
	BuyTax             string         `json:"buy_tax"`
	SellTax            string         `json:"sell_tax"`
	TransferPausable   string         `json:"transfer_pausable"`
	IsBlacklisted      string         `json:"is_blacklisted"`
	IsOpenSource       string         `json:"is_open_source"`
	IsProxy            string         `json:"is_proxy"`
	IsMintable         string         `json:"is_mintable"`
	OwnerChangeBalance string         `json:"owner_change_balance"`
	HolderCount        string         `json:"holder_count"`
	TotalSupply        string         `json:"total_supply"`
	TokenName          string         `json:"token_name"`
	TokenSymbol        string         `json:"token_symbol"`
	Holders            []GoPlusHolder `json:"holders"`
}

type GoPlusHolder struct {
	Address    string `json:"address"`
	Tag        string `json:"tag"`
	IsContract int    `json:"is_contract"`
	Balance    string `json:"balance"`
	Percent    string `json:"percent"`
	IsLocked   int    `json:"is_locked"`
}

// GoPlusResult is the security source's share of the aggregated view. OK
// reports whether the upstream call produced usable data, the embedded data
// is the documented default view when it did not.
type GoPlusResult struct {
	Honeypot model.HoneypotData
	Contract model.ContractData
	Holders  model.HolderData
	OK       bool
}

type GoPlusClient struct{}

func NewGoPlusClient() *GoPlusClient {
	return &GoPlusClient{}
}

func parseNumber(value string) float64 {
	if value == "" {
		return 0
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func parseBool(value string) bool {
	return value == "1"
}

func roundPercent(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func extractHoneypotData(data GoPlusTokenData) model.HoneypotData {
	return model.HoneypotData{
		IsHoneypot:       parseBool(data.IsHoneypot),
		BuyTax:           parseNumber(data.BuyTax) * 100,
		SellTax:          parseNumber(data.SellTax) * 100,
		TransferPausable: parseBool(data.TransferPausable),
		IsBlacklisted:    parseBool(data.IsBlacklisted),
	}
}

func extractContractData(data GoPlusTokenData) model.ContractData {
	return model.ContractData{
		IsOpenSource:       parseBool(data.IsOpenSource),
		IsProxy:            parseBool(data.IsProxy),
		CanMint:            parseBool(data.IsMintable),
		CanPause:           parseBool(data.TransferPausable),
		CanBlacklist:       parseBool(data.IsBlacklisted),
		OwnerChangeBalance: parseBool(data.OwnerChangeBalance),
	}
}

func extractHolderData(data GoPlusTokenData) model.HolderData {
	holderCount, err := strconv.Atoi(data.HolderCount)
	if err != nil {
		holderCount = 0
	}

	percents := make([]float64, 0, len(data.Holders))
	for _, holder := range data.Holders {
		percents = append(percents, parseNumber(holder.Percent))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(percents)))

	var topHolderPercent, top10Percent float64
	if len(percents) > 0 {
		topHolderPercent = percents[0] * 100

		top10 := percents
		if len(top10) > 10 {
			top10 = top10[:10]
		}
		for _, percent := range top10 {
			top10Percent += percent
		}
		top10Percent *= 100
	}

	return model.HolderData{
		TotalCount:       holderCount,
		Top10Percent:     roundPercent(top10Percent),
		TopHolderPercent: roundPercent(topHolderPercent),
		WhaleAlert:       topHolderPercent > model.WhaleThresholdPercent,
	}
}

// FetchTokenSecurity is total: transport failures, non-success codes and an
// unknown token all collapse into the default view with OK=false.
func (g *GoPlusClient) FetchTokenSecurity(ctx context.Context, token, chain string) GoPlusResult {
	defaultResult := GoPlusResult{}

	chainCfg, ok := utils.GetChainConfig(chain)
	if !ok {
		logrus.Errorf("goplus: unsupported chain %s", chain)
		return defaultResult
	}

	url := fmt.Sprintf("%s/token_security/%s?contract_addresses=%s",
		config.Conf.GoPlus.BaseURL, chainCfg.GoPlusChainID, token)

	ctx, cancel := context.WithTimeout(ctx, config.Conf.GoPlus.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.Errorf("goplus: build request for token %s is err: %v", token, err)
		return defaultResult
	}
	req.Header.Set("Accept", "application/json")
	if config.Conf.GoPlus.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+config.Conf.GoPlus.APIKey)
	}

	resp, err := HTTPClient().Do(req)
	if err != nil {
		logrus.Errorf("goplus: fetch token %s is err: %v", token, err)
		return defaultResult
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("goplus: fetch token %s got status %d", token, resp.StatusCode)
		return defaultResult
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Errorf("goplus: read body for token %s is err: %v", token, err)
		return defaultResult
	}

	data := GoPlusResponse{}
	if err := json.Unmarshal(body, &data); err != nil {
		logrus.Errorf("goplus: unmarshal body for token %s is err: %v", token, err)
		return defaultResult
	}

	if data.Code != 1 || data.Result == nil {
		logrus.Errorf("goplus: returned non-success code %d for token %s", data.Code, token)
		return defaultResult
	}

	tokenData, ok := data.Result[strings.ToLower(token)]
	if !ok {
		logrus.Warnf("goplus: no data found for token %s", token)
		return defaultResult
	}

	return GoPlusResult{
		Honeypot: extractHoneypotData(tokenData),
		Contract: extractContractData(tokenData),
		Holders:  extractHolderData(tokenData),
		OK:       true,
	}
}
