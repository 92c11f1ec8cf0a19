package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

const (
	// opportunityThreshold is the minimum opportunity score for a fund to
	// be flagged by the scanner.
	opportunityThreshold = 70

	opportunityLimit  = 5
	topPerformerLimit = 3
	marketAlertLimit  = 5
	fundAlertLimit    = 3
)

// InsightService derives market-wide alerts, flagged opportunities, and
// personalized alert digests from the fund universe. All thresholds are
// fixed business constants.
type InsightService struct {
	profiles *ProfileService
}

// NewInsightService creates a new InsightService with the provided profile
// service dependency.
func NewInsightService(profiles *ProfileService) *InsightService {
	return &InsightService{profiles: profiles}
}

// MarketInsights scans the whole universe and assembles the market digest:
// alert strings, top performers, opportunity flags, and the mean return
// per risk category. An empty universe is an error so the caller cannot
// mistake a connectivity problem for a quiet market.
func (s *InsightService) MarketInsights(ctx context.Context) (model.MarketInsights, error) {
	universe, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return model.MarketInsights{}, fmt.Errorf("market insights failed: %w", err)
	}
	if len(universe) == 0 {
		return model.MarketInsights{}, fmt.Errorf("market insights: %w", apperrors.ErrNoFundData)
	}

	funds, err := s.profiles.BuildProfiles(ctx, universe)
	if err != nil {
		return model.MarketInsights{}, fmt.Errorf("market insights failed: %w", err)
	}

	insights := model.MarketInsights{
		Alerts:        marketAlerts(funds),
		TopPerformers: topPerformers(funds),
		Opportunities: marketOpportunities(funds),
		MarketTrends:  marketTrends(funds),
	}
	insights.Summary = marketSummary(insights)
	insights.ActionItems = marketActionItems(insights)
	return insights, nil
}

// marketAlerts builds the market-wide alert strings: exceptional
// performers, low-fee funds, and a hot high-risk category. At most five
// alerts are returned.
func marketAlerts(funds []model.FundProfile) []string {
	var alerts []string

	highPerformers := 0
	lowFeeFunds := 0
	var highRiskReturns []*float64
	for _, fund := range funds {
		if valueOr(fund.Return365D, 0) > 50 {
			highPerformers++
		}
		if valueOr(fund.ExpenseRatio, 5) < 0.75 {
			lowFeeFunds++
		}
		if fund.RiskProfile == model.RiskHigh {
			highRiskReturns = append(highRiskReturns, floatPtr(valueOr(fund.Return365D, 0)))
		}
	}

	if highPerformers > 0 {
		alerts = append(alerts, fmt.Sprintf("%d funds showing exceptional 365D returns above 50%%!", highPerformers))
	}
	if lowFeeFunds > 0 {
		alerts = append(alerts, fmt.Sprintf("%d funds offering low fees under 0.75%% TER!", lowFeeFunds))
	}
	if highRiskAvg := average(highRiskReturns); highRiskAvg > 60 {
		alerts = append(alerts, fmt.Sprintf("High-risk funds averaging %.1f%% annual returns - consider if suitable for your risk tolerance!", highRiskAvg))
	}

	if len(alerts) > marketAlertLimit {
		alerts = alerts[:marketAlertLimit]
	}
	return alerts
}

// topPerformers ranks the universe by trailing-365-day return and keeps
// the leaders.
func topPerformers(funds []model.FundProfile) []model.TopPerformer {
	ranked := make([]model.FundProfile, len(funds))
	copy(ranked, funds)
	sort.SliceStable(ranked, func(i, j int) bool {
		return valueOr(ranked[i].Return365D, 0) > valueOr(ranked[j].Return365D, 0)
	})
	if len(ranked) > topPerformerLimit {
		ranked = ranked[:topPerformerLimit]
	}

	performers := make([]model.TopPerformer, 0, len(ranked))
	for _, fund := range ranked {
		performers = append(performers, model.TopPerformer{
			Name:        fund.Name,
			Return365D:  fund.Return365D,
			RiskProfile: fund.RiskProfile,
			Reason:      "Top annual performer",
		})
	}
	return performers
}

// marketOpportunities flags value and stability opportunities across the
// universe.
func marketOpportunities(funds []model.FundProfile) []string {
	var opportunities []string

	goodValue := 0
	stablePerformers := 0
	for _, fund := range funds {
		if valueOr(fund.Return365D, 0) > 20 && valueOr(fund.ExpenseRatio, 5) < 1.5 {
			goodValue++
		}
		if fund.RiskProfile == model.RiskLow && valueOr(fund.Return365D, 0) > 10 {
			stablePerformers++
		}
	}

	if goodValue > 0 {
		opportunities = append(opportunities, fmt.Sprintf("%d funds offering 20%%+ returns with reasonable fees", goodValue))
	}
	if stablePerformers > 0 {
		opportunities = append(opportunities, fmt.Sprintf("%d low-risk funds still delivering 10%%+ returns", stablePerformers))
	}
	return opportunities
}

// marketTrends computes the mean return per risk category, keyed like
// "high_risk_avg". Categories with no funds are omitted.
func marketTrends(funds []model.FundProfile) map[string]float64 {
	byRisk := map[model.RiskProfile][]*float64{}
	for _, fund := range funds {
		switch fund.RiskProfile {
		case model.RiskLow, model.RiskMedium, model.RiskHigh:
			byRisk[fund.RiskProfile] = append(byRisk[fund.RiskProfile], floatPtr(valueOr(fund.Return365D, 0)))
		}
	}

	trends := make(map[string]float64, len(byRisk))
	for _, risk := range riskBucketOrder {
		returns := byRisk[risk]
		if len(returns) == 0 {
			continue
		}
		trends[fmt.Sprintf("%s_risk_avg", riskTrendKey(risk))] = average(returns)
	}
	return trends
}

func riskTrendKey(risk model.RiskProfile) string {
	switch risk {
	case model.RiskLow:
		return "low"
	case model.RiskMedium:
		return "medium"
	default:
		return "high"
	}
}

// marketSummary condenses the digest into one line.
func marketSummary(insights model.MarketInsights) string {
	switch {
	case len(insights.Alerts) > 3 && len(insights.Opportunities) > 2:
		return "Active market with multiple opportunities and alerts - good time for portfolio review"
	case len(insights.Opportunities) > 2:
		return "Several opportunities identified - consider portfolio expansion"
	default:
		return "Stable market conditions - maintain current strategy"
	}
}

// marketActionItems derives follow-ups from the digest.
func marketActionItems(insights model.MarketInsights) []string {
	var actions []string
	if len(insights.Opportunities) > 0 {
		actions = append(actions, "Review identified opportunities for portfolio fit")
	}
	if len(insights.Alerts) > 2 {
		actions = append(actions, "Monitor market alerts for potential impacts")
	}
	actions = append(actions, "Consider rebalancing if market trends favor different risk profiles")
	return actions
}

// ScanOpportunities scores every fund in the universe and keeps the ones
// in the requested risk category whose opportunity score clears the
// threshold, ranked descending and capped at five.
func (s *InsightService) ScanOpportunities(ctx context.Context, riskProfile model.RiskProfile) (model.OpportunityScan, error) {
	universe, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return model.OpportunityScan{}, fmt.Errorf("opportunity scan failed: %w", err)
	}

	funds, err := s.profiles.BuildProfiles(ctx, universe)
	if err != nil {
		return model.OpportunityScan{}, fmt.Errorf("opportunity scan failed: %w", err)
	}

	var opportunities []model.Opportunity
	for _, fund := range funds {
		if fund.RiskProfile != riskProfile {
			continue
		}
		score := OpportunityScore(fund)
		if score <= opportunityThreshold {
			continue
		}
		opportunities = append(opportunities, model.Opportunity{
			Fund:             fund,
			OpportunityScore: round(score),
			Reason:           opportunityReason(fund),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].OpportunityScore > opportunities[j].OpportunityScore
	})

	found := len(opportunities)
	if found > opportunityLimit {
		opportunities = opportunities[:opportunityLimit]
	}

	return model.OpportunityScan{
		RiskProfile:        riskProfile,
		TotalFundsScanned:  len(universe),
		OpportunitiesFound: found,
		Opportunities:      opportunities,
		MarketTiming:       marketTimingInsights(),
		AlertLevel:         alertLevel(found),
	}, nil
}

// OpportunityScore combines annual return, fee cheapness, and YTD momentum
// into a 0-100 score.
func OpportunityScore(fund model.FundProfile) float64 {
	score := valueOr(fund.Return365D, 0) * 0.6
	score += (5 - valueOr(fund.ExpenseRatio, 5)) * 15
	score += valueOr(fund.ReturnYTD, 0) * 0.4
	return clamp(score, 0, 100)
}

// opportunityReason explains why a fund was flagged.
func opportunityReason(fund model.FundProfile) string {
	return365d := valueOr(fund.Return365D, 0)
	expenseRatio := valueOr(fund.ExpenseRatio, 5)

	switch {
	case return365d > 50 && expenseRatio < 1.5:
		return "Exceptional returns with reasonable fees"
	case return365d > 30:
		return "Strong annual performance trend"
	case expenseRatio < 0.75:
		return "Low-cost investment opportunity"
	default:
		return "Balanced risk-return profile"
	}
}

func marketTimingInsights() []string {
	return []string{
		"Current fund data suggests stable market conditions",
		"Diversification remains key regardless of market timing",
		"Focus on fund fundamentals rather than short-term market movements",
	}
}

// alertLevel bands the scan by how many opportunities cleared the
// threshold before the cap.
func alertLevel(opportunityCount int) string {
	switch {
	case opportunityCount >= 5:
		return "HIGH - Multiple opportunities available"
	case opportunityCount >= 3:
		return "MEDIUM - Several opportunities identified"
	default:
		return "LOW - Limited opportunities in this risk category"
	}
}

// SmartAlerts builds the personalized alert digest for one user context.
// Funds matching the user's risk tolerance are inspected individually and
// the resulting alerts are bucketed by severity, each bucket capped.
func (s *InsightService) SmartAlerts(ctx context.Context, riskProfile model.RiskProfile, investmentAmount, timeHorizon string) (model.SmartAlertsResult, error) {
	funds, err := s.profiles.FundsByRisk(ctx, string(riskProfile))
	if err != nil {
		return model.SmartAlertsResult{}, fmt.Errorf("smart alerts failed: %w", err)
	}

	var alerts model.FundAlerts
	for _, fund := range funds {
		appendFundAlerts(&alerts, fund)
	}
	capAlerts(&alerts)

	return model.SmartAlertsResult{
		RiskProfile:      riskProfile,
		InvestmentAmount: investmentAmount,
		TimeHorizon:      timeHorizon,
		Alerts:           alerts,
		Summary:          summarizeAlerts(alerts),
		SuggestedActions: suggestedActions(alerts),
	}, nil
}

// appendFundAlerts classifies one fund into the severity buckets.
func appendFundAlerts(alerts *model.FundAlerts, fund model.FundProfile) {
	return365d := valueOr(fund.Return365D, 0)
	expenseRatio := valueOr(fund.ExpenseRatio, 5)

	if return365d > 50 {
		alerts.Opportunities = append(alerts.Opportunities,
			fmt.Sprintf("%s showing exceptional 365D returns of %v%%", fund.Name, return365d))
	} else if return365d < 5 {
		alerts.Important = append(alerts.Important,
			fmt.Sprintf("%s underperforming with %v%% annual return", fund.Name, return365d))
	}

	if expenseRatio > 2.0 {
		alerts.Important = append(alerts.Important,
			fmt.Sprintf("%s has high fees at %v%% - consider alternatives", fund.Name, expenseRatio))
	} else if expenseRatio < 0.75 {
		alerts.Opportunities = append(alerts.Opportunities,
			fmt.Sprintf("%s offers low fees at %v%%", fund.Name, expenseRatio))
	}
}

// capAlerts limits every severity bucket so a broad universe does not
// flood the caller.
func capAlerts(alerts *model.FundAlerts) {
	capBucket := func(bucket []string) []string {
		if len(bucket) > fundAlertLimit {
			return bucket[:fundAlertLimit]
		}
		return bucket
	}
	alerts.Urgent = capBucket(alerts.Urgent)
	alerts.Important = capBucket(alerts.Important)
	alerts.Informational = capBucket(alerts.Informational)
	alerts.Opportunities = capBucket(alerts.Opportunities)
}

// summarizeAlerts condenses the buckets into one line, most severe first.
func summarizeAlerts(alerts model.FundAlerts) string {
	total := len(alerts.Urgent) + len(alerts.Important) + len(alerts.Informational) + len(alerts.Opportunities)
	switch {
	case len(alerts.Urgent) > 0:
		return fmt.Sprintf("%d urgent alerts require immediate attention", len(alerts.Urgent))
	case len(alerts.Opportunities) > 2:
		return fmt.Sprintf("%d opportunities identified for portfolio optimization", len(alerts.Opportunities))
	case total > 3:
		return fmt.Sprintf("%d insights available for your investment profile", total)
	default:
		return "Portfolio looks stable with current market conditions"
	}
}

// suggestedActions derives follow-ups from the populated buckets.
func suggestedActions(alerts model.FundAlerts) []string {
	var actions []string
	if len(alerts.Urgent) > 0 {
		actions = append(actions, "Review urgent alerts immediately")
	}
	if len(alerts.Opportunities) > 0 {
		actions = append(actions, "Consider opportunity recommendations for portfolio growth")
	}
	if len(alerts.Important) > 0 {
		actions = append(actions, "Review important insights for portfolio optimization")
	}
	actions = append(actions, "Discuss any alerts with your financial advisor")
	return actions
}
