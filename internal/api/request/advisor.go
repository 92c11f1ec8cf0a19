package request

// RecommendRequest asks for ranked fund recommendations matched to one
// investor context. Priority is one of returns, fees, stability, balanced;
// empty defaults to balanced.
type RecommendRequest struct {
	RiskProfile      string `json:"riskProfile"`
	InvestmentAmount string `json:"investmentAmount"`
	TimeHorizon      string `json:"timeHorizon"`
	Priority         string `json:"priority"`
}

// PortfolioRequest asks for a cross-risk-category allocation.
type PortfolioRequest struct {
	RiskProfile          string `json:"riskProfile"`
	InvestmentAmount     string `json:"investmentAmount"`
	DiversificationLevel string `json:"diversificationLevel"`
}

// ScreeningRequest filters the universe. All criteria are optional and
// applied independently.
type ScreeningRequest struct {
	MinReturn   *float64 `json:"minReturn"`
	MaxFee      *float64 `json:"maxFee"`
	RiskProfile *string  `json:"riskProfile"`
}

// FeeAnalysisRequest projects fee impact over a holding period.
type FeeAnalysisRequest struct {
	InvestmentAmount string `json:"investmentAmount"`
	HoldingPeriod    string `json:"holdingPeriod"`
}

// SmartAlertsRequest asks for the personalized alert digest.
type SmartAlertsRequest struct {
	RiskProfile      string `json:"riskProfile"`
	InvestmentAmount string `json:"investmentAmount"`
	TimeHorizon      string `json:"timeHorizon"`
}
