package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hkpamc/fund-advisor-backend/internal/api/handlers"
	custommiddleware "github.com/hkpamc/fund-advisor-backend/internal/api/middleware"
	"github.com/hkpamc/fund-advisor-backend/internal/config"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
)

// Services bundles the service dependencies the router wires into
// handlers. LeadService may be nil when no encryption key is configured;
// the lead routes are then not mounted.
type Services struct {
	System    *service.SystemService
	Profiles  *service.ProfileService
	Scoring   *service.ScoringService
	Portfolio *service.PortfolioService
	Screening *service.ScreeningService
	Analysis  *service.AnalysisService
	Insights  *service.InsightService
	Snapshots *service.SnapshotService
	Leads     *service.LeadService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(svc.Profiles, svc.Analysis)
			r.Get("/", fundHandler.Funds)
			r.Get("/profile", fundHandler.Profile)
			r.Post("/compare", fundHandler.Compare)
		})

		r.Route("/advisor", func(r chi.Router) {
			advisorHandler := handlers.NewAdvisorHandler(svc.Scoring, svc.Portfolio)
			r.Get("/quiz", advisorHandler.Quiz)
			r.Post("/recommend", advisorHandler.Recommend)
			r.Post("/portfolio", advisorHandler.Portfolio)
		})

		r.Route("/screening", func(r chi.Router) {
			screeningHandler := handlers.NewScreeningHandler(svc.Screening)
			r.Post("/", screeningHandler.Screen)
			r.Post("/fees", screeningHandler.Fees)
		})

		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(svc.Analysis)
			r.Post("/correlation", analysisHandler.Correlation)
			r.Post("/consistency", analysisHandler.Consistency)
			r.Post("/performance", analysisHandler.Performance)
		})

		r.Route("/insights", func(r chi.Router) {
			insightHandler := handlers.NewInsightHandler(svc.Insights, svc.Snapshots)
			r.Get("/market", insightHandler.Market)
			r.Get("/opportunities", insightHandler.Opportunities)
			r.Post("/alerts", insightHandler.Alerts)
			r.Get("/snapshot", insightHandler.LatestSnapshot)
			r.Post("/snapshot/refresh", insightHandler.RefreshSnapshot)
		})

		if svc.Leads != nil {
			r.Route("/lead", func(r chi.Router) {
				leadHandler := handlers.NewLeadHandler(svc.Leads)
				r.Get("/form", leadHandler.Form)
				r.Post("/response", leadHandler.Respond)
				r.Get("/", leadHandler.Leads)
				r.Get("/{leadID}", leadHandler.Lead)
			})
		}
	})

	return r
}
