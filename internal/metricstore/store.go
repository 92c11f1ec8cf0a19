// Package metricstore provides access to the external vector index that
// holds one record per (fund, metric) fact. The engine consumes it through
// the Store interface; the concrete client is constructed explicitly and
// injected by the caller, never held as process-wide state.
package metricstore

import "context"

// Metric keys as they appear in the index. These are the exact column
// labels written by the ingestion pipeline.
const (
	KeyFundName     = "Fund Name"
	KeyRiskProfile  = "Risk Profile"
	KeyExpenseRatio = "Total Expense Ratio"
	KeyReturn365D   = "365D"
	KeyReturnYTD    = "Return YTD"
	KeyNav          = "Net Asset Value"
)

// ConsistencyPeriods are the return-period keys sampled by the consistency
// analyzer. At least three must resolve for a fund to be scorable.
var ConsistencyPeriods = []string{"30D", "90D", "180D", "365D"}

// PerformancePeriods are the return-period keys sampled by the performance
// analyzer, ordered short to long.
var PerformancePeriods = []string{"1D", "15D", "30D", "90D", "180D", "270D", "365D", "2Y", "3Y"}

// Store is the single capability the engine consumes from its environment.
//
// LookupMetric returns the most recently written value for a fund/metric
// pair. The boolean is false when the store holds no value; that case is
// never an error. Errors indicate the store itself failed.
//
// ListFunds returns the fund names tagged with the given risk profile, or
// the whole universe when riskProfile is empty.
type Store interface {
	LookupMetric(ctx context.Context, fundName, metricKey string) (string, bool, error)
	ListFunds(ctx context.Context, riskProfile string) ([]string, error)
}
