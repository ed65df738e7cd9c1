package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pnrquality-service/internal/domain/query"
	"pnrquality-service/internal/infrastructure/config"
	"pnrquality-service/internal/infrastructure/persistence"
	"pnrquality-service/internal/interface/repository"
	"pnrquality-service/internal/usecase"
	"pnrquality-service/pkg/logger"
	"pnrquality-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting PNR Quality Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repository.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Set up MongoDB connection for the import staging store
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	mongoDB := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up repositories
	pnrRepo := repository.NewGormPNRRepository(gormDB)
	officeRepo := repository.NewGormOfficeRepository(gormDB)
	batchRepo := repository.NewMongoImportBatchRepository(mongoDB)

	// Set up metrics and usecases
	m := metrics.NewMetrics("pnrquality")
	importer := usecase.NewImporter(pnrRepo, log)
	batchProcessor := usecase.NewBatchProcessor(batchRepo, importer, log, m, cfg.BatchFetchLimit)
	reportBuilder := usecase.NewReportBuilder(pnrRepo, officeRepo, log)

	// Return batches stranded in PROCESSING by a previous run
	if err := batchRepo.ResetProcessing(ctx); err != nil {
		log.Error("Failed to reset stale batches", "error", err)
	}

	// Start batch import polling in a goroutine
	go func() {
		pollTicker := time.NewTicker(cfg.BatchPollInterval)
		defer pollTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Batch processor stopped")
				return
			case <-pollTicker.C:
				if err := batchProcessor.ProcessPendingBatches(ctx); err != nil {
					log.Error("Error processing batches", "error", err)
				}
			}
		}
	}()

	// Start dataset stats refresh in a goroutine
	go func() {
		statsTicker := time.NewTicker(cfg.StatsRefreshInterval)
		defer statsTicker.Stop()

		refresh := func() {
			summary, err := reportBuilder.BuildSummary(ctx, query.All{}, cfg.TrendDays)
			if err != nil {
				log.Error("Error refreshing dataset stats", "error", err)
				m.ErrorsCount.WithLabelValues("stats_refresh").Inc()
				return
			}
			m.TotalPNRs.Set(float64(summary.TotalPNRs))
			m.ReachablePNRs.Set(float64(summary.ReachablePNRs))
			m.AverageQualityScore.Set(summary.AverageScore)
		}

		refresh()
		for {
			select {
			case <-ctx.Done():
				log.Info("Stats refresher stopped")
				return
			case <-statsTicker.C:
				refresh()
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("PNR Quality Service stopped")
}
