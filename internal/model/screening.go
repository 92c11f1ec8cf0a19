package model

// ScreeningCriteria are the optional AND-combined filters applied by the
// screening engine. Nil fields are not applied.
type ScreeningCriteria struct {
	MinReturn   *float64 `json:"min_return,omitempty"`
	MaxFee      *float64 `json:"max_fee,omitempty"`
	RiskProfile *string  `json:"risk_profile,omitempty"`
}

// ScreeningSummary aggregates the surviving funds of a screening run.
type ScreeningSummary struct {
	AvgReturn365D    float64             `json:"avg_return_365d"`
	AvgExpenseRatio  float64             `json:"avg_expense_ratio"`
	RiskDistribution map[RiskProfile]int `json:"risk_distribution"`
}

// ScreeningResult is the full output of the screening engine.
type ScreeningResult struct {
	Criteria           ScreeningCriteria `json:"criteria_applied"`
	TotalFundsScreened int               `json:"total_funds_screened"`
	FundsMatching      int               `json:"funds_matching"`
	ScreenedFunds      []ScoredFund      `json:"screened_funds"`
	Summary            ScreeningSummary  `json:"screening_summary"`
}

// FundFeeAnalysis is the projected cost of holding one fund for the
// analysed period.
type FundFeeAnalysis struct {
	FundName          string      `json:"fund_name"`
	RiskProfile       RiskProfile `json:"risk_profile"`
	TotalExpenseRatio *float64    `json:"total_expense_ratio"`
	AnnualFee         float64     `json:"annual_fee"`
	TotalFees         float64     `json:"total_fees"`
	FeeCategory       string      `json:"fee_category"`
	ValueAfterFees    float64     `json:"value_after_fees"`
}

// SavingsPotential contrasts the cheapest and the most expensive fund of a
// fee analysis run.
type SavingsPotential struct {
	LowestFee        float64 `json:"lowest_fee"`
	HighestFee       float64 `json:"highest_fee"`
	PotentialSavings float64 `json:"potential_savings"`
}

// FeeAnalysisResult is the full output of the fee optimizer.
type FeeAnalysisResult struct {
	InvestmentValue float64           `json:"investment_value"`
	HoldingPeriod   string            `json:"holding_period"`
	Years           int               `json:"years"`
	LowestFeeFunds  []FundFeeAnalysis `json:"lowest_fee_funds"`
	HighestFeeFunds []FundFeeAnalysis `json:"highest_fee_funds"`
	Savings         SavingsPotential  `json:"savings_potential"`
}
