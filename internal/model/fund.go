package model

// RiskProfile is the categorical risk label attached to a fund.
type RiskProfile string

// Known risk profile labels. Unknown covers funds whose label is absent
// from the metric store or outside the recognised set.
const (
	RiskLow     RiskProfile = "Low"
	RiskMedium  RiskProfile = "Medium"
	RiskHigh    RiskProfile = "High"
	RiskUnknown RiskProfile = "Unknown"
)

// ParseRiskProfile maps a raw store value onto a RiskProfile. Values other
// than Low/Medium/High (after title-casing) collapse to RiskUnknown.
func ParseRiskProfile(raw string) RiskProfile {
	switch TitleCase(raw) {
	case "Low":
		return RiskLow
	case "Medium":
		return RiskMedium
	case "High":
		return RiskHigh
	default:
		return RiskUnknown
	}
}

// FundMetricRecord is one fact about one fund as stored in the metric index.
// RawValue is nil when the store holds no value for the key.
type FundMetricRecord struct {
	FundName  string  `json:"fund_name"`
	MetricKey string  `json:"metric_key"`
	RawValue  *string `json:"raw_value"`
}

// FundProfile is the complete per-fund record assembled from individual
// metric lookups. Numeric fields are nil when the metric is absent or
// unparseable; algorithms substitute their own documented defaults.
type FundProfile struct {
	Name             string      `json:"name"`
	RiskProfile      RiskProfile `json:"risk_profile"`
	Nav              *float64    `json:"nav"`
	Return365D       *float64    `json:"return_365d"`
	ReturnYTD        *float64    `json:"return_ytd"`
	ExpenseRatio     *float64    `json:"expense_ratio"`
	ManagementFee    *float64    `json:"management_fee"`
	PricingMechanism string      `json:"pricing_mechanism,omitempty"`
}

// ScoredFund is a FundProfile with a non-negative priority score attached.
type ScoredFund struct {
	FundProfile
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// Recommendation is one ranked entry in a smart-recommendation response.
type Recommendation struct {
	Rank           int        `json:"rank"`
	Fund           ScoredFund `json:"fund"`
	ExpectedReturn string     `json:"expected_return"`
}

// RecommendationResult is the full response of the scoring engine for one
// risk profile and priority.
type RecommendationResult struct {
	RiskProfile         RiskProfile      `json:"risk_profile"`
	Priority            string           `json:"priority"`
	TimeHorizon         string           `json:"time_horizon"`
	Description         string           `json:"description"`
	InvestmentAdvice    string           `json:"investment_advice"`
	InvestmentStrategy  string           `json:"investment_strategy"`
	Recommendations     []Recommendation `json:"recommendations"`
	TotalFundsEvaluated int              `json:"total_funds_evaluated"`
}

// MetricComparison holds one fund's normalized value for a compared metric.
type MetricComparison struct {
	FundName string  `json:"fund_name"`
	Value    float64 `json:"value"`
}
