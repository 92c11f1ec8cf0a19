package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// screeningLimit caps how many survivors a screening response carries.
const screeningLimit = 10

// feeListLimit caps the lowest/highest fee fund lists.
const feeListLimit = 5

// ScreeningService filters the fund universe against inclusion criteria
// and analyses projected holding costs.
type ScreeningService struct {
	profiles *ProfileService
}

// NewScreeningService creates a new ScreeningService with the provided
// profile service dependency.
func NewScreeningService(profiles *ProfileService) *ScreeningService {
	return &ScreeningService{profiles: profiles}
}

// Screen filters every known fund against the criteria and scores the
// survivors. Criteria are optional and independently applied as AND
// filters. Survivors are sorted descending by screening score; ties keep
// store order.
func (s *ScreeningService) Screen(ctx context.Context, criteria model.ScreeningCriteria) (model.ScreeningResult, error) {
	names, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return model.ScreeningResult{}, fmt.Errorf("fund screening failed: %w", err)
	}

	funds, err := s.profiles.BuildProfiles(ctx, names)
	if err != nil {
		return model.ScreeningResult{}, fmt.Errorf("fund screening failed: %w", err)
	}

	var survivors []model.ScoredFund
	for _, fund := range funds {
		if !meetsCriteria(fund, criteria) {
			continue
		}
		survivors = append(survivors, model.ScoredFund{
			FundProfile: fund,
			Score:       screeningScore(fund),
		})
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Score > survivors[j].Score
	})

	result := model.ScreeningResult{
		Criteria:           criteria,
		TotalFundsScreened: len(names),
		FundsMatching:      len(survivors),
		Summary:            summarize(survivors),
	}
	if len(survivors) > screeningLimit {
		survivors = survivors[:screeningLimit]
	}
	result.ScreenedFunds = survivors

	return result, nil
}

// meetsCriteria applies the optional filters. Missing metric values use
// rejection-friendly defaults: a fund without a recorded return fails any
// min_return bar, and a fund without a recorded expense ratio fails any
// max_fee bar (999 sentinel). A risk criterion that is not one of the
// known categories matches nothing; it must never collapse onto the
// untagged bucket.
func meetsCriteria(fund model.FundProfile, criteria model.ScreeningCriteria) bool {
	if criteria.MinReturn != nil && valueOr(fund.Return365D, 0) < *criteria.MinReturn {
		return false
	}
	if criteria.MaxFee != nil && valueOr(fund.ExpenseRatio, 999) > *criteria.MaxFee {
		return false
	}
	if criteria.RiskProfile != nil {
		switch want := model.ParseRiskProfile(*criteria.RiskProfile); want {
		case model.RiskLow, model.RiskMedium, model.RiskHigh:
			if fund.RiskProfile != want {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// screeningScore weighs return against fees: return*0.4 + (5-TER)*10,
// floored at zero.
func screeningScore(fund model.FundProfile) float64 {
	score := valueOr(fund.Return365D, 0)*0.4 + (5-valueOr(fund.ExpenseRatio, 5))*10
	if score < 0 {
		return 0
	}
	return score
}

// summarize aggregates the survivors of a screening run.
func summarize(survivors []model.ScoredFund) model.ScreeningSummary {
	returns := make([]*float64, 0, len(survivors))
	ratios := make([]*float64, 0, len(survivors))
	distribution := map[model.RiskProfile]int{
		model.RiskLow:    0,
		model.RiskMedium: 0,
		model.RiskHigh:   0,
	}

	for _, fund := range survivors {
		returns = append(returns, fund.Return365D)
		ratios = append(ratios, fund.ExpenseRatio)
		if _, known := distribution[fund.RiskProfile]; known {
			distribution[fund.RiskProfile]++
		}
	}

	return model.ScreeningSummary{
		AvgReturn365D:    average(returns),
		AvgExpenseRatio:  average(ratios),
		RiskDistribution: distribution,
	}
}

// AnalyzeFees projects the holding cost of every known fund for an
// investment amount and holding period. A fund without a recorded expense
// ratio is costed at zero rather than excluded, matching the upstream
// analysis. Results sort ascending by total fees.
func (s *ScreeningService) AnalyzeFees(ctx context.Context, investmentAmount, holdingPeriod string) (model.FeeAnalysisResult, error) {
	names, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return model.FeeAnalysisResult{}, fmt.Errorf("fee analysis failed: %w", err)
	}

	funds, err := s.profiles.BuildProfiles(ctx, names)
	if err != nil {
		return model.FeeAnalysisResult{}, fmt.Errorf("fee analysis failed: %w", err)
	}

	investmentValue := ParseInvestmentAmount(investmentAmount)
	years := ParseHoldingPeriodYears(holdingPeriod)

	analysis := make([]model.FundFeeAnalysis, 0, len(funds))
	for _, fund := range funds {
		var annualFee float64
		if fund.ExpenseRatio != nil {
			annualFee = investmentValue * (*fund.ExpenseRatio / 100)
		}
		totalFees := annualFee * float64(years)

		analysis = append(analysis, model.FundFeeAnalysis{
			FundName:          fund.Name,
			RiskProfile:       fund.RiskProfile,
			TotalExpenseRatio: fund.ExpenseRatio,
			AnnualFee:         round(annualFee),
			TotalFees:         round(totalFees),
			FeeCategory:       feeCategory(fund.ExpenseRatio),
			ValueAfterFees:    round(investmentValue - totalFees),
		})
	}

	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].TotalFees < analysis[j].TotalFees
	})

	result := model.FeeAnalysisResult{
		InvestmentValue: investmentValue,
		HoldingPeriod:   holdingPeriod,
		Years:           years,
	}
	if len(analysis) == 0 {
		return result, nil
	}

	lowest := len(analysis)
	if lowest > feeListLimit {
		lowest = feeListLimit
	}
	result.LowestFeeFunds = analysis[:lowest]

	highestStart := len(analysis) - feeListLimit
	if highestStart < 0 {
		highestStart = 0
	}
	result.HighestFeeFunds = analysis[highestStart:]

	result.Savings = model.SavingsPotential{
		LowestFee:        analysis[0].TotalFees,
		HighestFee:       analysis[len(analysis)-1].TotalFees,
		PotentialSavings: round(analysis[len(analysis)-1].TotalFees - analysis[0].TotalFees),
	}

	return result, nil
}

// feeCategory bands an expense ratio: below 0.75 Low, below 1.5 Moderate,
// else High; missing ratios are Unknown.
func feeCategory(expenseRatio *float64) string {
	if expenseRatio == nil {
		return "Unknown"
	}
	switch {
	case *expenseRatio < 0.75:
		return "Low"
	case *expenseRatio < 1.5:
		return "Moderate"
	default:
		return "High"
	}
}
