package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hkpamc/fund-advisor-backend/internal/api"
	"github.com/hkpamc/fund-advisor-backend/internal/config"
	"github.com/hkpamc/fund-advisor-backend/internal/database"
	"github.com/hkpamc/fund-advisor-backend/internal/metricstore"
	"github.com/hkpamc/fund-advisor-backend/internal/repository"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Select the metric store: remote index when configured, otherwise the
	// local table populated by the import command.
	var store metricstore.Store
	if cfg.MetricStore.Endpoint != "" {
		store = metricstore.NewClient(cfg.MetricStore.Endpoint, cfg.MetricStore.APIKey, cfg.MetricStore.TopK)
		log.Printf("Using remote metric store: %s (index %s)", cfg.MetricStore.Endpoint, cfg.MetricStore.IndexName)
	} else {
		store = metricstore.NewSQLiteStore(db)
		log.Printf("Using local metric store")
	}

	// Create repositories
	leadRepo := repository.NewLeadRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db, store)
	profileService := service.NewProfileService(store)
	scoringService := service.NewScoringService(profileService)
	portfolioService := service.NewPortfolioService(profileService)
	screeningService := service.NewScreeningService(profileService)
	analysisService := service.NewAnalysisService(profileService)
	insightService := service.NewInsightService(profileService)
	snapshotService := service.NewSnapshotService(insightService, snapshotRepo)

	var leadService *service.LeadService
	if cfg.Security.LeadEncryptionKey != "" {
		leadService, err = service.NewLeadService(leadRepo, cfg.Security.LeadEncryptionKey)
		if err != nil {
			log.Fatalf("Failed to initialize lead service: %v", err)
		}
	} else {
		log.Printf("LEAD_ENCRYPTION_KEY not set, lead collection disabled")
	}

	// Schedule the insight snapshot refresh
	scheduler := cron.New()
	if spec := cfg.Scheduler.InsightRefreshSpec; spec != "" {
		if _, err := scheduler.AddFunc(spec, snapshotService.RunScheduled); err != nil {
			log.Fatalf("Failed to schedule insight refresh: %v", err)
		}
		scheduler.Start()
		log.Printf("Scheduled insight refresh: %s", spec)
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Profiles:  profileService,
		Scoring:   scoringService,
		Portfolio: portfolioService,
		Screening: screeningService,
		Analysis:  analysisService,
		Insights:  insightService,
		Snapshots: snapshotService,
		Leads:     leadService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
