package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/config"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/scheduler"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/server/handlers"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/server/router"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/assistant"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/billing"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/finance"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/pos"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/workouts"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/pkg/clients/notify"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// Everything lives in this store; a restart resets the whole dashboard.
	st := store.New()
	if cfg.Seed.DemoData {
		st.Seed()
		baseLogger.Info("demo fixtures seeded")
	}

	billingSvc := billing.NewService(st, baseLogger.Named("svc.billing"))
	financeSvc := finance.NewService(st, baseLogger.Named("svc.finance"))
	posSvc := pos.NewService(st, baseLogger.Named("svc.pos"))
	workoutsSvc := workouts.NewService(st)
	assistantSvc := assistant.NewService(st, cfg.Assistant.ReplyDelay, baseLogger.Named("svc.assistant"))

	engine := router.New(router.Handlers{
		Dashboard: handlers.NewDashboardHandler(billingSvc, financeSvc, posSvc),
		Students:  handlers.NewStudentsHandler(billingSvc, baseLogger.Named("handlers.students")),
		Financial: handlers.NewFinancialHandler(financeSvc, baseLogger.Named("handlers.financial")),
		Store:     handlers.NewStoreHandler(posSvc, baseLogger.Named("handlers.store")),
		Workouts:  handlers.NewWorkoutsHandler(workoutsSvc, baseLogger.Named("handlers.workouts")),
		Chat:      handlers.NewChatHandler(assistantSvc, baseLogger.Named("handlers.chat")),
	}, baseLogger.Named("router"))

	var notifier notify.Client
	if cfg.Digest.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Digest.WebhookURL)
		baseLogger.Info("overdue digest webhook enabled")
	} else {
		baseLogger.Warn("digest webhook url missing, overdue digest will only be logged")
	}

	sched := scheduler.NewScheduler(cfg.Digest, billingSvc, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
