package model

// AllocationEntry is one bucket of a diversified portfolio. Percentage is
// the static policy share for the bucket; Amount is the monetary slice of
// the parsed investment value. Buckets without funds are omitted from an
// allocation entirely rather than carried at 0%.
type AllocationEntry struct {
	FundName     string      `json:"fund_name"`
	RiskCategory RiskProfile `json:"risk_category"`
	Percentage   float64     `json:"percentage"`
	Amount       float64     `json:"amount"`
	Nav          *float64    `json:"nav"`
	ExpenseRatio *float64    `json:"expense_ratio"`
	Return365D   *float64    `json:"return_365d"`
	Rationale    string      `json:"rationale"`
}

// Portfolio is the result of the allocator: the chosen entries plus the
// heuristic aggregates. ExpectedAnnualReturn and RiskScore are approximate
// by design (no covariance data is available); see the allocator docs.
type Portfolio struct {
	RiskProfile          RiskProfile       `json:"risk_profile"`
	DiversificationLevel string            `json:"diversification_level"`
	TotalInvestment      float64           `json:"total_investment"`
	Allocation           []AllocationEntry `json:"allocation"`
	ExpectedAnnualReturn float64           `json:"expected_annual_return"`
	RiskScore            string            `json:"portfolio_risk_score"`
	RebalancingAdvice    string            `json:"rebalancing_advice"`
}
