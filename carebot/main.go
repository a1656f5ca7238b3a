package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebot/carebot/config"
	"carebot/carebot/controllers"
	"carebot/carebot/middlewares"
	"carebot/carebot/routes"
	"carebot/carebot/services/ai"
	"carebot/carebot/sources"
	"carebot/carebot/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	if err := godotenv.Load(); err != nil {
		logging.AppLogger.Info("no .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st := sources.Open(ctx, cfg)
	defer st.Close()

	settings := ai.LoadSettings(cfg.ProviderSettingsFile)
	assistant := ai.New(ctx, cfg, settings)

	authCtrl := controllers.NewAuthController(st, cfg)
	userCtrl := controllers.NewUserController(st)
	chatCtrl := controllers.NewChatController(st, assistant)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/user", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
