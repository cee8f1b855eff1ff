package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig maps one supported chain to the identifiers each upstream
// source expects for it.
type ChainConfig struct {
	ID                 int64
	Name               string
	GoPlusChainID      string
	DexScreenerChainID string
}

var chainConfigs = map[string]ChainConfig{
	ChainEthereum:  {ID: 1, Name: "Ethereum", GoPlusChainID: "1", DexScreenerChainID: "ethereum"},
	ChainBSC:       {ID: 56, Name: "BNB Smart Chain", GoPlusChainID: "56", DexScreenerChainID: "bsc"},
	ChainPolygon:   {ID: 137, Name: "Polygon", GoPlusChainID: "137", DexScreenerChainID: "polygon"},
	ChainArbitrum:  {ID: 42161, Name: "Arbitrum One", GoPlusChainID: "42161", DexScreenerChainID: "arbitrum"},
	ChainOptimism:  {ID: 10, Name: "Optimism", GoPlusChainID: "10", DexScreenerChainID: "optimism"},
	ChainAvalanche: {ID: 43114, Name: "Avalanche C-Chain", GoPlusChainID: "43114", DexScreenerChainID: "avalanche"},
	ChainBase:      {ID: 8453, Name: "Base", GoPlusChainID: "8453", DexScreenerChainID: "base"},
}

var supportedChains = []string{
	ChainEthereum, ChainBSC, ChainPolygon, ChainArbitrum,
	ChainOptimism, ChainAvalanche, ChainBase,
}

func GetChainConfig(chain string) (ChainConfig, bool) {
	cfg, ok := chainConfigs[strings.ToLower(chain)]
	return cfg, ok
}

func IsSupportedChain(chain string) bool {
	_, ok := chainConfigs[strings.ToLower(chain)]
	return ok
}

func SupportedChains() []string {
	return supportedChains
}

func GetChainFromQuery(chain string) string {
	switch chain {
	case ChainEmpty:
		return ChainEthereum
	default:
		return strings.ToLower(chain)
	}
}

// IsValidTokenAddress reports whether addr is a 0x-prefixed 40 hex digit
// contract address.
func IsValidTokenAddress(addr string) bool {
	if !strings.HasPrefix(addr, "0x") {
		return false
	}
	return common.IsHexAddress(addr)
}
