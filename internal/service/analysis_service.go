package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// minConsistencyPeriods is the minimum number of resolvable return periods
// for a consistency score to be computable.
const minConsistencyPeriods = 3

// AnalysisService estimates pairwise fund correlation, rates return
// consistency, and assembles performance series.
type AnalysisService struct {
	profiles *ProfileService
}

// NewAnalysisService creates a new AnalysisService with the provided
// profile service dependency.
func NewAnalysisService(profiles *ProfileService) *AnalysisService {
	return &AnalysisService{profiles: profiles}
}

// Correlate estimates the correlation of two funds from risk-label
// similarity and return distance. No historical return series exists in
// the store, so this is a heuristic proxy: same-label pairs start at 0.7,
// different-label pairs at 0.3, and each is pulled down by the absolute
// return gap. The result is clamped to [-1, 1].
//
// Each ordered pair is computed independently; symmetry is whatever the
// formula naturally produces, never enforced.
func Correlate(a, b model.FundProfile) float64 {
	gap := math.Abs(valueOr(a.Return365D, 0) - valueOr(b.Return365D, 0))

	var coefficient float64
	if a.RiskProfile == b.RiskProfile {
		coefficient = 0.7 - 0.4*gap/100
	} else {
		coefficient = 0.3 - 0.2*gap/100
	}
	return clamp(coefficient, -1, 1)
}

// AnalyzeCorrelations computes the correlation of every ordered fund pair
// and derives a diversification score from the off-diagonal coefficients.
// Fewer than two funds is invalid input.
func (s *AnalysisService) AnalyzeCorrelations(ctx context.Context, fundNames []string) (model.CorrelationResult, error) {
	if len(fundNames) < 2 {
		return model.CorrelationResult{}, fmt.Errorf("correlation analysis: %w", apperrors.ErrTooFewFunds)
	}

	funds, err := s.profiles.BuildProfiles(ctx, fundNames)
	if err != nil {
		return model.CorrelationResult{}, fmt.Errorf("correlation analysis failed: %w", err)
	}

	var pairs []model.CorrelationEntry
	for i, a := range funds {
		for j, b := range funds {
			if i == j {
				continue
			}
			coefficient := Correlate(a, b)
			pairs = append(pairs, model.CorrelationEntry{
				FundA:          a.Name,
				FundB:          b.Name,
				Coefficient:    coefficient,
				Interpretation: interpretCorrelation(coefficient),
			})
		}
	}

	score := diversificationScore(pairs)
	return model.CorrelationResult{
		Pairs:                pairs,
		DiversificationScore: score,
		Recommendation:       diversificationRecommendation(score),
	}, nil
}

// interpretCorrelation translates a coefficient into its band.
func interpretCorrelation(coefficient float64) string {
	switch {
	case coefficient > 0.7:
		return "High positive correlation - similar movements"
	case coefficient > 0.3:
		return "Moderate positive correlation"
	case coefficient < -0.3:
		return "Negative correlation - moves oppositely"
	default:
		return "Low correlation - good for diversification"
	}
}

// diversificationScore converts the mean absolute off-diagonal coefficient
// into a 0-100 score: lower correlation means better diversification. An
// empty pair set scores a neutral 50.
func diversificationScore(pairs []model.CorrelationEntry) float64 {
	if len(pairs) == 0 {
		return 50
	}
	var sum float64
	for _, pair := range pairs {
		sum += math.Abs(pair.Coefficient)
	}
	return round((1 - sum/float64(len(pairs))) * 100)
}

// diversificationRecommendation bands the diversification score.
func diversificationRecommendation(score float64) string {
	switch {
	case score >= 70:
		return "Excellent diversification - funds complement each other well"
	case score >= 50:
		return "Good diversification - consider minor adjustments"
	default:
		return "Limited diversification - consider adding funds from different categories"
	}
}

// Consistency rates how steady one fund's returns are across the standard
// return periods. Fewer than three resolvable periods returns (nil, nil):
// not computable, not an error, so batch callers continue past it.
//
// The score is mean minus twice the population standard deviation, clamped
// to [0, 100]: a high average return is rewarded, volatility across the
// periods is penalised.
func (s *AnalysisService) Consistency(ctx context.Context, fundName string) (*model.ConsistencyRecord, error) {
	var returns []float64
	for _, period := range metricstore.ConsistencyPeriods {
		raw, found, err := s.profiles.Store().LookupMetric(ctx, fundName, period)
		if err != nil {
			log.Printf("[CONSISTENCY] lookup failed for %q/%q: %v", fundName, period, err)
			continue
		}
		if !found {
			continue
		}
		if value := ParseMetricValue(raw); value != nil {
			returns = append(returns, *value)
		}
	}

	if len(returns) < minConsistencyPeriods {
		return nil, nil
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))
	stddev := math.Sqrt(variance)

	score := clamp(mean-2*stddev, 0, 100)
	return &model.ConsistencyRecord{
		FundName:         fundName,
		ConsistencyScore: round(score),
		MeanReturn:       round(mean),
		Volatility:       round(stddev),
		Rating:           consistencyRating(score),
	}, nil
}

// consistencyRating bands a consistency score.
func consistencyRating(score float64) string {
	switch {
	case score >= 80:
		return "Highly Consistent"
	case score >= 60:
		return "Moderately Consistent"
	case score >= 40:
		return "Variable"
	default:
		return "Highly Variable"
	}
}

// AnalyzeConsistency rates a list of funds and ranks the computable ones
// descending by score. Funds with insufficient return data are skipped.
func (s *AnalysisService) AnalyzeConsistency(ctx context.Context, fundNames []string) (model.ConsistencyResult, error) {
	var ranking []model.ConsistencyRecord
	for _, name := range fundNames {
		record, err := s.Consistency(ctx, name)
		if err != nil {
			return model.ConsistencyResult{}, fmt.Errorf("consistency analysis failed: %w", err)
		}
		if record == nil {
			continue
		}
		ranking = append(ranking, *record)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].ConsistencyScore > ranking[j].ConsistencyScore
	})

	return model.ConsistencyResult{
		FundsAnalyzed:  len(ranking),
		Ranking:        ranking,
		Recommendation: consistencyRecommendation(ranking),
	}, nil
}

// consistencyRecommendation derives advice from the ranking leader's band.
func consistencyRecommendation(ranking []model.ConsistencyRecord) string {
	if len(ranking) == 0 {
		return "Unable to analyze consistency - insufficient data"
	}

	top := ranking[0]
	switch {
	case top.ConsistencyScore >= 80:
		return fmt.Sprintf("%s shows excellent consistency - ideal for a steady growth strategy", top.FundName)
	case top.ConsistencyScore >= 60:
		return fmt.Sprintf("%s offers balanced consistency and growth potential", top.FundName)
	default:
		return "Consider diversification across multiple funds to reduce volatility"
	}
}

// AnalyzePerformance builds the return series of the requested funds over
// the standard analysis periods. Requested names are fuzzy-resolved
// against the universe; a note is recorded for every name that resolved to
// something different. Missing period values are reported as 0 so chart
// series stay aligned.
func (s *AnalysisService) AnalyzePerformance(ctx context.Context, fundNames []string, analysisType string) (model.PerformanceResult, error) {
	known, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return model.PerformanceResult{}, fmt.Errorf("performance analysis failed: %w", err)
	}

	result := model.PerformanceResult{
		AnalysisType:   analysisType,
		Periods:        metricstore.PerformancePeriods,
		Insights:       performanceInsights(analysisType),
		Recommendation: performanceRecommendation(analysisType),
	}

	for _, requested := range fundNames {
		matched := ResolveFundName(requested, known)
		if matched != requested {
			log.Printf("[PERFORMANCE_ANALYZER] fuzzy matched %q to %q", requested, matched)
			result.FundNotes = append(result.FundNotes, fmt.Sprintf("'%s' matched to '%s'", requested, matched))
		}

		series := model.FundPerformance{
			FundName: matched,
			Returns:  make(map[string]float64, len(metricstore.PerformancePeriods)),
		}
		for _, period := range metricstore.PerformancePeriods {
			series.Returns[period] = 0
			raw, found, err := s.profiles.Store().LookupMetric(ctx, matched, period)
			if err != nil {
				log.Printf("[PERFORMANCE_ANALYZER] lookup failed for %q/%q: %v", matched, period, err)
				continue
			}
			if !found {
				continue
			}
			if value := ParseMetricValue(raw); value != nil {
				series.Returns[period] = *value
			}
		}

		result.Series = append(result.Series, series)
		result.ActualFunds = append(result.ActualFunds, matched)
	}

	return result, nil
}

// performanceInsights returns the fixed insight lines per analysis type.
func performanceInsights(analysisType string) []string {
	switch analysisType {
	case "trend":
		return []string{
			"Long-term performance shows the compounding effect over 2-3 years",
			"Short-term volatility is normal - focus on 365D+ returns",
			"Consistent performers show steady growth across all time periods",
		}
	case "volatility":
		return []string{
			"Higher volatility can mean higher potential returns",
			"Lower volatility funds provide more predictable outcomes",
			"Balance volatility with your risk tolerance and time horizon",
		}
	default:
		return nil
	}
}

// performanceRecommendation returns the closing line per analysis type.
func performanceRecommendation(analysisType string) string {
	switch analysisType {
	case "trend":
		return "Focus on funds with consistent upward trends across all time periods for long-term growth"
	case "volatility":
		return "Consider your risk tolerance - higher volatility can mean higher returns but requires a longer investment horizon"
	default:
		return "Analyze multiple time periods to understand fund performance patterns"
	}
}

// CompareFunds fetches one metric for each named fund and returns the
// normalized values side by side. Funds whose value is missing or
// unparseable are omitted. When none of the requested funds has data the
// comparison falls back to the first funds of the universe.
func (s *AnalysisService) CompareFunds(ctx context.Context, fundNames []string, metricKey string) ([]model.MetricComparison, error) {
	if len(fundNames) < 2 {
		return nil, fmt.Errorf("fund comparison: %w", apperrors.ErrTooFewFunds)
	}
	if metricKey == "" {
		metricKey = metricstore.KeyReturn365D
	}

	comparison, err := s.compare(ctx, fundNames, metricKey)
	if err != nil {
		return nil, err
	}
	if len(comparison) > 0 {
		return comparison, nil
	}

	// None of the requested names produced data; compare the first known
	// funds instead so the caller still gets a meaningful chart.
	log.Printf("[COMPARE_FUNDS] no data for %v, falling back to universe", fundNames)
	known, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fund comparison failed: %w", err)
	}
	if len(known) > 5 {
		known = known[:5]
	}
	return s.compare(ctx, known, metricKey)
}

// compare performs one comparison pass without fallback.
func (s *AnalysisService) compare(ctx context.Context, fundNames []string, metricKey string) ([]model.MetricComparison, error) {
	var comparison []model.MetricComparison
	for _, name := range fundNames {
		raw, found, err := s.profiles.Store().LookupMetric(ctx, name, metricKey)
		if err != nil {
			log.Printf("[COMPARE_FUNDS] lookup failed for %q/%q: %v", name, metricKey, err)
			continue
		}
		if !found {
			continue
		}
		value := ParseMetricValue(raw)
		if value == nil {
			continue
		}
		comparison = append(comparison, model.MetricComparison{
			FundName: name,
			Value:    *value,
		})
	}
	return comparison, nil
}
