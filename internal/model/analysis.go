package model

// CorrelationEntry is the estimated correlation for one ordered fund pair.
// The estimate is a heuristic proxy computed independently per ordered pair,
// so coefficient(a,b) and coefficient(b,a) are not forced to agree.
type CorrelationEntry struct {
	FundA          string  `json:"fund_a"`
	FundB          string  `json:"fund_b"`
	Coefficient    float64 `json:"coefficient"`
	Interpretation string  `json:"interpretation"`
}

// CorrelationResult is the full pairwise analysis for a fund list.
type CorrelationResult struct {
	Pairs                []CorrelationEntry `json:"pairs"`
	DiversificationScore float64            `json:"diversification_score"`
	Recommendation       string             `json:"recommendation"`
}

// ConsistencyRecord scores how steady a fund's returns are across the
// standard return periods. Volatility is the population standard deviation.
type ConsistencyRecord struct {
	FundName         string  `json:"fund_name"`
	ConsistencyScore float64 `json:"consistency_score"`
	MeanReturn       float64 `json:"mean_return"`
	Volatility       float64 `json:"volatility"`
	Rating           string  `json:"rating"`
}

// ConsistencyResult ranks the computable funds and carries a recommendation
// derived from the leader's rating band. Funds with insufficient return
// data are skipped, not failed.
type ConsistencyResult struct {
	FundsAnalyzed  int                 `json:"funds_analyzed"`
	Ranking        []ConsistencyRecord `json:"consistency_ranking"`
	Recommendation string              `json:"recommendation"`
}

// FundPerformance is one fund's return series over the analysis periods.
// Missing periods are reported as 0 to keep chart series aligned, matching
// the upstream data contract.
type FundPerformance struct {
	FundName string             `json:"fund_name"`
	Returns  map[string]float64 `json:"returns"`
}

// PerformanceResult is the output of the performance analyzer.
type PerformanceResult struct {
	AnalysisType   string            `json:"analysis_type"`
	Periods        []string          `json:"periods"`
	Series         []FundPerformance `json:"series"`
	FundNotes      []string          `json:"fund_notes"`
	ActualFunds    []string          `json:"actual_funds"`
	Insights       []string          `json:"insights"`
	Recommendation string            `json:"recommendation"`
}
