package utils

const (
	ChainEmpty     = ""
	ChainEthereum  = "ethereum"
	ChainBSC       = "bsc"
	ChainPolygon   = "polygon"
	ChainArbitrum  = "arbitrum"
	ChainOptimism  = "optimism"
	ChainAvalanche = "avalanche"
	ChainBase      = "base"
)

const ChainKey = "chain"
