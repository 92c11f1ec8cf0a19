package model

import "time"

// TopPerformer is one of the leading funds by trailing-365-day return.
type TopPerformer struct {
	Name        string      `json:"name"`
	Return365D  *float64    `json:"return_365d"`
	RiskProfile RiskProfile `json:"risk_profile"`
	Reason      string      `json:"reason"`
}

// MarketInsights is the market-wide digest derived from all fund profiles:
// alert strings, the top three performers, opportunity flags, and the mean
// return per risk category.
type MarketInsights struct {
	Alerts        []string           `json:"alerts"`
	TopPerformers []TopPerformer     `json:"top_performers"`
	Opportunities []string           `json:"opportunities"`
	MarketTrends  map[string]float64 `json:"market_trends"`
	Summary       string             `json:"summary"`
	ActionItems   []string           `json:"action_items"`
}

// Opportunity is one fund flagged by the opportunity scanner.
type Opportunity struct {
	Fund             FundProfile `json:"fund"`
	OpportunityScore float64     `json:"opportunity_score"`
	Reason           string      `json:"reason"`
}

// OpportunityScan is the scanner output for one risk category.
type OpportunityScan struct {
	RiskProfile        RiskProfile   `json:"risk_profile"`
	TotalFundsScanned  int           `json:"total_funds_scanned"`
	OpportunitiesFound int           `json:"opportunities_found"`
	Opportunities      []Opportunity `json:"opportunities"`
	MarketTiming       []string      `json:"market_timing"`
	AlertLevel         string        `json:"alert_level"`
}

// FundAlerts buckets personalized alert strings by severity. Each bucket is
// capped so a broad fund universe cannot flood the caller.
type FundAlerts struct {
	Urgent        []string `json:"urgent"`
	Important     []string `json:"important"`
	Informational []string `json:"informational"`
	Opportunities []string `json:"opportunities"`
}

// SmartAlertsResult is the personalized alert digest for one user context.
type SmartAlertsResult struct {
	RiskProfile      RiskProfile `json:"risk_profile"`
	InvestmentAmount string      `json:"investment_amount"`
	TimeHorizon      string      `json:"time_horizon"`
	Alerts           FundAlerts  `json:"alerts"`
	Summary          string      `json:"alert_summary"`
	SuggestedActions []string    `json:"suggested_actions"`
}

// InsightSnapshot is a persisted MarketInsights digest, refreshed on a
// schedule so dashboards do not trigger a full store scan per request.
type InsightSnapshot struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Insights    MarketInsights `json:"insights"`
}
