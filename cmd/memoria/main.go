package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/moyan78641/memoria/internal/config"
	"github.com/moyan78641/memoria/internal/notify"
	"github.com/moyan78641/memoria/internal/repository"
	"github.com/moyan78641/memoria/internal/server"
	"github.com/moyan78641/memoria/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load() // .env is optional; deployments set the environment directly

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("timezone", zap.Error(err))
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	memorialRepo := repository.NewMemorialRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	logRepo := repository.NewNotificationLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	authSvc := service.NewAuthService(settingRepo)
	memorialSvc := service.NewMemorialService(memorialRepo)
	reminderSvc := service.NewReminderService(reminderRepo, memorialRepo)
	settingsSvc := service.NewSettingsService(settingRepo)
	statsSvc := service.NewStatisticsService(memorialRepo, logRepo)
	dispatchSvc := service.NewDispatchService(
		memorialRepo, reminderRepo, logRepo, settingRepo,
		notify.NewSMTPSender(), notify.NewBotSender(),
		loc, logger,
	)

	scheduler := service.NewSchedulerService(loc)
	if _, err := scheduler.ScheduleDaily(cfg.DispatchTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := dispatchSvc.Run(jobCtx); err != nil {
			logger.Error("dispatch run", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("schedule dispatch", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := server.NewRouter(server.Handlers{
		Auth:          server.NewAuthHandler(authSvc),
		Memorials:     server.NewMemorialHandler(memorialSvc),
		Notifications: server.NewNotificationHandler(reminderSvc, settingsSvc, dispatchSvc, logRepo),
		Dashboard:     server.NewDashboardHandler(statsSvc, memorialSvc),
		Statistics:    server.NewStatisticsHandler(statsSvc),
		Calendar:      server.NewCalendarHandler(loc),
	}, authSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("dispatch_time", cfg.DispatchTime),
			zap.String("timezone", cfg.Timezone),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
