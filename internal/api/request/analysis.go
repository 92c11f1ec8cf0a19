package request

// CorrelationRequest asks for pairwise correlation across named funds.
type CorrelationRequest struct {
	FundNames []string `json:"fundNames"`
}

// ConsistencyRequest asks for consistency scoring across named funds.
type ConsistencyRequest struct {
	FundNames []string `json:"fundNames"`
}

// PerformanceRequest asks for return series over the standard periods.
// AnalysisType selects the insight framing: "trend" or "volatility".
type PerformanceRequest struct {
	FundNames    []string `json:"fundNames"`
	AnalysisType string   `json:"analysisType"`
}

// CompareRequest asks for a side-by-side metric comparison. Metric
// defaults to the trailing-365-day return when empty.
type CompareRequest struct {
	FundNames []string `json:"fundNames"`
	Metric    string   `json:"metric"`
}
