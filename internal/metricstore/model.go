package metricstore

// queryRequest represents the JSON body of an index query. Vector carries a
// zero vector of the index dimension: the engine filters purely on metadata
// and ignores similarity ordering.
type queryRequest struct {
	Vector          []float64      `json:"vector"`
	Filter          map[string]any `json:"filter"`
	TopK            int            `json:"topK"`
	IncludeMetadata bool           `json:"includeMetadata"`
}

// queryResponse represents the raw JSON response structure of the index
// query endpoint. Metadata values are loosely typed upstream (the ingestion
// pipeline writes both strings and numbers), so Value is decoded as any and
// stringified by the caller.
type queryResponse struct {
	Matches []struct {
		ID       string  `json:"id"`
		Score    float64 `json:"score"`
		Metadata struct {
			FundName    string `json:"fund_name"`
			Column      string `json:"column"`
			RiskProfile string `json:"risk_profile"`
			Value       any    `json:"value"`
		} `json:"metadata"`
	} `json:"matches"`
	Message string `json:"message"`
}
