package model

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

type Recommendation string

const (
	RecommendationSafe    Recommendation = "SAFE"
	RecommendationCaution Recommendation = "CAUTION"
	RecommendationRisky   Recommendation = "RISKY"
	RecommendationAvoid   Recommendation = "AVOID"
)

type RiskFlag string

const (
	FlagHoneypot                RiskFlag = "HONEYPOT"
	FlagHighBuyTax              RiskFlag = "HIGH_BUY_TAX"
	FlagHighSellTax             RiskFlag = "HIGH_SELL_TAX"
	FlagLowLiquidity            RiskFlag = "LOW_LIQUIDITY"
	FlagNoLiquidityLock         RiskFlag = "NO_LIQUIDITY_LOCK"
	FlagHighHolderConcentration RiskFlag = "HIGH_HOLDER_CONCENTRATION"
	FlagWhaleDetected           RiskFlag = "WHALE_DETECTED"
	FlagCanMint                 RiskFlag = "CAN_MINT"
	FlagCanPause                RiskFlag = "CAN_PAUSE"
	FlagCanBlacklist            RiskFlag = "CAN_BLACKLIST"
	FlagClosedSource            RiskFlag = "CLOSED_SOURCE"
	FlagProxyContract           RiskFlag = "PROXY_CONTRACT"
)

// AllRiskFlags is the closed flag set in canonical order. Detected flags are
// always reported in this order so identical inputs serialize identically.
var AllRiskFlags = []RiskFlag{
	FlagHoneypot,
	FlagHighBuyTax,
	FlagHighSellTax,
	FlagLowLiquidity,
	FlagNoLiquidityLock,
	FlagHighHolderConcentration,
	FlagWhaleDetected,
	FlagCanMint,
	FlagCanPause,
	FlagCanBlacklist,
	FlagClosedSource,
	FlagProxyContract,
}

type HoneypotData struct {
	IsHoneypot       bool    `json:"is_honeypot"`
	BuyTax           float64 `json:"buy_tax"`
	SellTax          float64 `json:"sell_tax"`
	TransferPausable bool    `json:"transfer_pausable"`
	IsBlacklisted    bool    `json:"is_blacklisted"`
}

type ContractData struct {
	IsOpenSource       bool `json:"is_open_source"`
	IsProxy            bool `json:"is_proxy"`
	CanMint            bool `json:"can_mint"`
	CanPause           bool `json:"can_pause"`
	CanBlacklist       bool `json:"can_blacklist"`
	OwnerChangeBalance bool `json:"owner_change_balance"`
}

type LiquidityData struct {
	TotalUSD float64 `json:"total_usd"`
	MainPair *string `json:"main_pair"`
	Dex      *string `json:"dex"`
	// LockedPercent is never populated by the DexScreener source, it does
	// not report lock data. Callers must treat absence as "no lock known".
	LockedPercent *float64 `json:"locked_percent"`
	LockEndDate   *string  `json:"lock_end_date"`
}

type HolderData struct {
	TotalCount       int     `json:"total_count"`
	Top10Percent     float64 `json:"top10_percent"`
	TopHolderPercent float64 `json:"top_holder_percent"`
	WhaleAlert       bool    `json:"whale_alert"`
}

// AggregatedData is the canonical merged view of both sources. It is built
// once per check and never mutated afterwards.
type AggregatedData struct {
	Honeypot  HoneypotData  `json:"honeypot"`
	Liquidity LiquidityData `json:"liquidity"`
	Holders   HolderData    `json:"holders"`
	Contract  ContractData  `json:"contract"`
}

type SafetyAssessment struct {
	Score          int            `json:"score"`
	Grade          Grade          `json:"grade"`
	Recommendation Recommendation `json:"recommendation"`
	Summary        string         `json:"summary"`
}

// Sources reports which upstream sources returned usable data for a check.
type Sources struct {
	GoPlus      bool `json:"goplus"`
	DexScreener bool `json:"dexscreener"`
	Holders     bool `json:"holders"`
}

type CheckResult struct {
	Token     string           `json:"token"`
	Chain     string           `json:"chain"`
	Safety    SafetyAssessment `json:"safety"`
	Honeypot  HoneypotData     `json:"honeypot"`
	Liquidity LiquidityData    `json:"liquidity"`
	Holders   HolderData       `json:"holders"`
	Contract  ContractData     `json:"contract"`
	Flags     []RiskFlag       `json:"flags"`
	Sources   Sources          `json:"sources"`
	Cached    bool             `json:"cached"`
	CheckedAt string           `json:"checked_at"`
}
