package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uniwell/mindcare/internal/api"
	"github.com/uniwell/mindcare/internal/config"
	"github.com/uniwell/mindcare/internal/middleware"
	"github.com/uniwell/mindcare/internal/notify"
	"github.com/uniwell/mindcare/internal/services"
	"github.com/uniwell/mindcare/internal/store"
	"github.com/uniwell/mindcare/internal/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	mem := store.NewMemory()
	store.Seed(mem)

	var notifier notify.Notifier
	if config.AppConfig.SMTPHost != "" {
		notifier = notify.NewMailNotifier(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUsername,
			config.AppConfig.SMTPPassword,
			config.AppConfig.SMTPFrom,
		)
	} else {
		notifier = notify.NewMemoryNotifier()
		logger.Sugar().Info("main: SMTP not configured, notifications stay in memory")
	}

	assessments := services.NewAssessmentService(mem)

	hb := &api.HandlerBundle{
		Sessions:    services.NewSessionService(mem, middleware.SignToken),
		Assessments: assessments,
		Scheduler:   services.NewSchedulerService(mem, notifier, logger),
		Journal:     services.NewJournalService(mem),
		Habits:      services.NewHabitService(mem),
		Community:   services.NewCommunityService(mem),
		Resources:   services.NewResourceService(mem),
		Analytics:   services.NewAnalyticsService(mem, assessments.Catalog()),
		Logger:      logger,
	}

	router := api.NewRouter(hb)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
