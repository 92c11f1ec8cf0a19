package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// DiversificationConservative is the only diversification level with its
// own allocation column; "moderate", "aggressive" and anything else share
// the second column of the policy table.
const DiversificationConservative = "conservative"

// fallbackUniverseLimit caps how many funds the allocator pulls from the
// universe when risk-filtered listing yields nothing.
const fallbackUniverseLimit = 10

// bucketWeights is one row of the allocation policy table: the Low/Medium/
// High percentage split for a (risk profile, diversification) pair.
type bucketWeights struct {
	Low    float64
	Medium float64
	High   float64
}

// allocationTable is the static policy lookup keyed by investor risk
// profile. The first column applies to conservative diversification, the
// second to every other level.
var allocationTable = map[model.RiskProfile][2]bucketWeights{
	model.RiskLow:    {{Low: 70, Medium: 25, High: 5}, {Low: 60, Medium: 30, High: 10}},
	model.RiskMedium: {{Low: 40, Medium: 50, High: 10}, {Low: 30, Medium: 50, High: 20}},
	model.RiskHigh:   {{Low: 20, Medium: 30, High: 50}, {Low: 10, Medium: 30, High: 60}},
}

// riskBucketOrder fixes the order allocation entries are emitted in.
var riskBucketOrder = []model.RiskProfile{model.RiskLow, model.RiskMedium, model.RiskHigh}

// PortfolioService partitions an investment amount across risk buckets and
// selects the best fund per bucket.
type PortfolioService struct {
	profiles *ProfileService
}

// NewPortfolioService creates a new PortfolioService with the provided
// profile service dependency.
func NewPortfolioService(profiles *ProfileService) *PortfolioService {
	return &PortfolioService{profiles: profiles}
}

// BuildPortfolio allocates an investment across the risk buckets of the
// policy table for the given investor risk profile and diversification
// level.
//
// Per bucket with a positive percentage the single fund with the highest
// trailing-365-day return (missing treated as 0) is selected. Buckets with
// no funds are omitted entirely; their percentages are not redistributed,
// so the emitted percentages only sum to 100 when every bucket is covered.
//
// The expected annual return and the risk score are coarse heuristics, not
// covariance-based estimates: the return is a fixed indicative figure and
// the risk score maps the percentage-weighted bucket weights onto
// Conservative/Moderate/Aggressive bands.
func (s *PortfolioService) BuildPortfolio(ctx context.Context, riskProfile, investmentAmount, diversificationLevel string) (model.Portfolio, error) {
	fundsByBucket, err := s.loadFundsByBucket(ctx)
	if err != nil {
		return model.Portfolio{}, err
	}

	total := 0
	for _, funds := range fundsByBucket {
		total += len(funds)
	}
	if total == 0 {
		// Risk-filtered listing found nothing; fall back to the universe
		// and treat everything as medium risk.
		fundsByBucket, err = s.loadFallbackBucket(ctx)
		if err != nil {
			return model.Portfolio{}, err
		}
	}

	risk := model.ParseRiskProfile(riskProfile)
	weights, ok := allocationTable[risk]
	if !ok {
		return model.Portfolio{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownRiskProfile, riskProfile)
	}
	row := weights[1]
	if diversificationLevel == DiversificationConservative {
		row = weights[0]
	}

	investmentValue := ParseInvestmentAmount(investmentAmount)
	allocation := s.allocate(fundsByBucket, row, investmentValue)
	if len(allocation) == 0 {
		return model.Portfolio{}, fmt.Errorf("%w: no funds available for allocation", apperrors.ErrNoFundData)
	}

	return model.Portfolio{
		RiskProfile:          risk,
		DiversificationLevel: diversificationLevel,
		TotalInvestment:      investmentValue,
		Allocation:           allocation,
		ExpectedAnnualReturn: expectedPortfolioReturn(allocation),
		RiskScore:            portfolioRiskScore(allocation),
		RebalancingAdvice:    "Review and rebalance quarterly to maintain target allocation",
	}, nil
}

// allocate emits one entry per non-empty bucket with a positive percentage,
// selecting the bucket's best performer by trailing return.
func (s *PortfolioService) allocate(fundsByBucket map[model.RiskProfile][]model.FundProfile, row bucketWeights, investmentValue float64) []model.AllocationEntry {
	percentages := map[model.RiskProfile]float64{
		model.RiskLow:    row.Low,
		model.RiskMedium: row.Medium,
		model.RiskHigh:   row.High,
	}

	var allocation []model.AllocationEntry
	for _, bucket := range riskBucketOrder {
		percentage := percentages[bucket]
		if percentage <= 0 {
			continue
		}
		funds := fundsByBucket[bucket]
		if len(funds) == 0 {
			continue
		}

		best := funds[0]
		for _, fund := range funds[1:] {
			if valueOr(fund.Return365D, 0) > valueOr(best.Return365D, 0) {
				best = fund
			}
		}

		allocation = append(allocation, model.AllocationEntry{
			FundName:     best.Name,
			RiskCategory: bucket,
			Percentage:   percentage,
			Amount:       round(investmentValue * percentage / 100),
			Nav:          best.Nav,
			ExpenseRatio: best.ExpenseRatio,
			Return365D:   best.Return365D,
			Rationale:    fmt.Sprintf("Best performing %s risk fund for diversification", string(bucket)),
		})
	}
	return allocation
}

// loadFundsByBucket loads the profiles of every fund per risk category.
func (s *PortfolioService) loadFundsByBucket(ctx context.Context) (map[model.RiskProfile][]model.FundProfile, error) {
	fundsByBucket := make(map[model.RiskProfile][]model.FundProfile)
	for _, bucket := range riskBucketOrder {
		funds, err := s.profiles.FundsByRisk(ctx, string(bucket))
		if errors.Is(err, apperrors.ErrNoFundData) {
			// One bucket failing wholesale must not abort the others.
			log.Printf("[PORTFOLIO_BUILDER] %s bucket yielded no data: %v", bucket, err)
			err = nil
			funds = nil
		}
		if err != nil {
			return nil, fmt.Errorf("portfolio building failed: %w", err)
		}
		log.Printf("[PORTFOLIO_BUILDER] retrieved %d funds for %s risk profile", len(funds), bucket)
		fundsByBucket[bucket] = funds
	}
	return fundsByBucket, nil
}

// loadFallbackBucket pulls the first funds of the universe into the medium
// bucket when no risk-tagged funds exist at all.
func (s *PortfolioService) loadFallbackBucket(ctx context.Context) (map[model.RiskProfile][]model.FundProfile, error) {
	log.Printf("[PORTFOLIO_BUILDER] no risk-tagged funds found, falling back to universe")

	names, err := s.profiles.AllFundNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("portfolio building failed: %w", err)
	}
	if len(names) > fallbackUniverseLimit {
		names = names[:fallbackUniverseLimit]
	}

	funds, err := s.profiles.BuildProfiles(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("portfolio building failed: %w", err)
	}
	return map[model.RiskProfile][]model.FundProfile{model.RiskMedium: funds}, nil
}

// expectedPortfolioReturn is a fixed indicative figure: per-fund return
// series are not available, so a covariance-based estimate is impossible.
func expectedPortfolioReturn(allocation []model.AllocationEntry) float64 {
	return 12.5
}

// portfolioRiskScore maps the percentage-weighted bucket weights (Low 1,
// Medium 2, High 3) onto a coarse label: below 1.5 Conservative, below 2.5
// Moderate, otherwise Aggressive.
func portfolioRiskScore(allocation []model.AllocationEntry) string {
	bucketScores := map[model.RiskProfile]float64{
		model.RiskLow:    1,
		model.RiskMedium: 2,
		model.RiskHigh:   3,
	}

	var weighted float64
	for _, entry := range allocation {
		score, ok := bucketScores[entry.RiskCategory]
		if !ok {
			score = 2
		}
		weighted += score * entry.Percentage / 100
	}

	switch {
	case weighted < 1.5:
		return "Conservative"
	case weighted < 2.5:
		return "Moderate"
	default:
		return "Aggressive"
	}
}
