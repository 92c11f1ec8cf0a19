package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// Scoring priorities accepted by the engine. Anything else falls back to
// balanced, which is also the default.
const (
	PriorityReturns   = "returns"
	PriorityFees      = "fees"
	PriorityStability = "stability"
	PriorityBalanced  = "balanced"
)

// recommendationLimit caps how many ranked funds a recommendation returns.
const recommendationLimit = 3

// ScoringService computes priority-weighted fund scores and produces ranked
// recommendation lists.
type ScoringService struct {
	profiles *ProfileService
}

// NewScoringService creates a new ScoringService with the provided
// profile service dependency.
func NewScoringService(profiles *ProfileService) *ScoringService {
	return &ScoringService{profiles: profiles}
}

// QuizQuestion is one question of the risk assessment questionnaire.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// RiskQuiz is the risk assessment questionnaire schema. Each answer scores
// its option position (1-4); the scoring map bands the total onto a risk
// profile.
type RiskQuiz struct {
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []QuizQuestion    `json:"questions"`
	Scoring     map[string]string `json:"scoring"`
	SubmitText  string            `json:"submit_text"`
}

// Quiz returns the risk assessment questionnaire served to clients that
// determine an investor's risk profile before asking for recommendations.
func (s *ScoringService) Quiz() RiskQuiz {
	return RiskQuiz{
		Type:        "quiz",
		Title:       "Investment Risk Profile Assessment",
		Description: "Answer these questions to determine your investment risk tolerance and receive personalized fund recommendations.",
		Questions: []QuizQuestion{
			{ID: "investment_duration", Text: "How long do you plan to keep your money invested?", Type: "select", Options: []string{
				"Less than 1 year",
				"1-3 years",
				"3-5 years",
				"More than 5 years",
			}},
			{ID: "volatility_tolerance", Text: "How comfortable are you with market ups and downs?", Type: "select", Options: []string{
				"I prefer stable, predictable returns",
				"I can handle minor fluctuations",
				"I'm comfortable with moderate volatility",
				"I can handle significant market swings",
			}},
			{ID: "loss_reaction", Text: "If your investment lost 20% in a year, what would you do?", Type: "select", Options: []string{
				"Sell immediately to prevent further losses",
				"Reduce my investment amount",
				"Hold and wait for recovery",
				"Buy more while prices are low",
			}},
			{ID: "investment_goal", Text: "What's your primary investment objective?", Type: "select", Options: []string{
				"Capital preservation (protect my money)",
				"Steady income generation",
				"Long-term wealth growth",
				"Aggressive growth for maximum returns",
			}},
		},
		Scoring: map[string]string{
			"4-8":   "Low Risk",
			"9-12":  "Medium Risk",
			"13-16": "High Risk",
		},
		SubmitText: "Get My Risk Profile",
	}
}

// ScoreFund computes the priority-weighted score for one fund. Missing
// numeric inputs substitute the documented defaults (return 0, expense
// ratio 5) before the formula runs, and the result is floored at zero.
//
// The stability priority is a constant placeholder signal: no volatility
// input exists in the store yet, so every fund scores 50. This is a known
// simplification carried over deliberately.
func (s *ScoringService) ScoreFund(profile model.FundProfile, priority, timeHorizon string) float64 {
	var score float64

	switch priority {
	case PriorityReturns:
		score = valueOr(profile.Return365D, 0) * 0.8
	case PriorityFees:
		// Lower fees score higher; a ratio above 5 goes negative and is
		// floored below.
		score = (5 - valueOr(profile.ExpenseRatio, 5)) * 20
	case PriorityStability:
		score = 50
	default:
		score = valueOr(profile.Return365D, 0)*0.6 + (5-valueOr(profile.ExpenseRatio, 5))*10
	}

	if score < 0 {
		return 0
	}
	return score
}

// Rank scores every fund and sorts descending. The sort is stable: funds
// with equal scores keep their input (store) order. topN truncates after
// the sort; zero or negative topN returns the full ranking.
func (s *ScoringService) Rank(funds []model.FundProfile, priority, timeHorizon string, topN int) []model.ScoredFund {
	scored := make([]model.ScoredFund, 0, len(funds))
	for _, fund := range funds {
		scored = append(scored, model.ScoredFund{
			FundProfile: fund,
			Score:       s.ScoreFund(fund, priority, timeHorizon),
			Rationale:   fundRationale(fund, priority),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// Recommend produces the ranked top recommendations for a risk profile.
func (s *ScoringService) Recommend(ctx context.Context, riskProfile, investmentAmount, timeHorizon, priority string) (model.RecommendationResult, error) {
	if priority == "" {
		priority = PriorityBalanced
	}

	funds, err := s.profiles.FundsByRisk(ctx, riskProfile)
	if err != nil {
		return model.RecommendationResult{}, fmt.Errorf("recommendation failed: %w", err)
	}

	risk := model.ParseRiskProfile(riskProfile)
	result := model.RecommendationResult{
		RiskProfile:         risk,
		Priority:            priority,
		TimeHorizon:         timeHorizon,
		Description:         riskDescription(risk),
		InvestmentAdvice:    investmentAdvice(risk),
		InvestmentStrategy:  investmentStrategy(risk),
		TotalFundsEvaluated: len(funds),
	}

	top := s.Rank(funds, priority, timeHorizon, recommendationLimit)
	for i, fund := range top {
		fund.Score = round(fund.Score)
		result.Recommendations = append(result.Recommendations, model.Recommendation{
			Rank:           i + 1,
			Fund:           fund,
			ExpectedReturn: expectedReturn(fund.FundProfile, timeHorizon),
		})
	}

	return result, nil
}

// fundRationale explains why a fund was selected under a given priority.
func fundRationale(fund model.FundProfile, priority string) string {
	switch priority {
	case PriorityReturns:
		return fmt.Sprintf("%s selected for strong %.2f%% annual return performance", fund.Name, valueOr(fund.Return365D, 0))
	case PriorityFees:
		return fmt.Sprintf("%s offers a competitive %.2f%% expense ratio, keeping more returns invested", fund.Name, valueOr(fund.ExpenseRatio, 0))
	case PriorityStability:
		return fmt.Sprintf("%s chosen for consistent performance and lower volatility risk", fund.Name)
	default:
		return fmt.Sprintf("%s provides an optimal balance of returns, fees and risk management", fund.Name)
	}
}

// expectedReturn projects a fund's indicative return over the requested
// horizon. Month horizons are expressed monthly; everything else annually.
func expectedReturn(fund model.FundProfile, timeHorizon string) string {
	annual := valueOr(fund.Return365D, 0)
	if strings.Contains(strings.ToLower(timeHorizon), "month") {
		return fmt.Sprintf("~%.2f%% monthly", annual/12)
	}
	return fmt.Sprintf("~%.2f%% annually", annual)
}

// riskDescription describes what a risk profile means for the investor.
func riskDescription(risk model.RiskProfile) string {
	switch risk {
	case model.RiskLow:
		return "You prefer stable, predictable returns with minimal risk to your capital. Focus on capital preservation and steady income."
	case model.RiskMedium:
		return "You're comfortable with moderate fluctuations for potentially higher returns. Balanced approach between growth and stability."
	case model.RiskHigh:
		return "You can handle significant volatility for maximum growth potential. Long-term wealth creation is your primary goal."
	default:
		return "Investment strategy tailored to your risk tolerance."
	}
}

// investmentAdvice returns the standing advice text for a risk profile.
func investmentAdvice(risk model.RiskProfile) string {
	switch risk {
	case model.RiskLow:
		return "Consider systematic investment plans (SIP) for regular, disciplined investing. Review performance quarterly and maintain emergency funds separately."
	case model.RiskMedium:
		return "Diversify across different fund types and sectors. Consider increasing equity allocation gradually as you become more comfortable with volatility."
	case model.RiskHigh:
		return "Focus on long-term goals (5+ years) and avoid emotional decision-making during market downturns. Consider aggressive growth funds and emerging market opportunities."
	default:
		return "Consult with a financial advisor for personalized investment guidance."
	}
}

// investmentStrategy returns the strategy line attached to recommendations.
func investmentStrategy(risk model.RiskProfile) string {
	switch risk {
	case model.RiskLow:
		return "Focus on capital preservation with steady, predictable returns"
	case model.RiskMedium:
		return "Balance growth potential with acceptable risk levels"
	case model.RiskHigh:
		return "Pursue aggressive growth for maximum long-term wealth creation"
	default:
		return "Consult with a financial advisor for a personalized strategy"
	}
}
