package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/openlluna/website/internal/config"
	"github.com/openlluna/website/internal/infra/http/handlers"
	"github.com/openlluna/website/internal/infra/http/middleware"
	"github.com/openlluna/website/internal/infra/mail"
	"github.com/openlluna/website/internal/infra/templates"
	"github.com/openlluna/website/internal/infra/web"
	applog "github.com/openlluna/website/internal/logger"
	"github.com/openlluna/website/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := applog.Must(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Email delivery
	sender, err := mail.NewSender(cfg.Email, logger)
	if err != nil {
		logger.Fatal("email sender", zap.Error(err))
	}

	renderer, err := templates.NewRenderer(templates.Site{
		Name:       cfg.Site.Name,
		URL:        cfg.Site.URL,
		LogoURL:    cfg.Site.LogoURL,
		BrandColor: cfg.Site.BrandColor,
	})
	if err != nil {
		logger.Fatal("email templates", zap.Error(err))
	}

	proxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		logger.Fatal("trusted proxies", zap.Error(err))
	}

	// 2. UseCases
	submitInquiryUC := usecase.NewSubmitInquiryUseCase(
		sender,
		renderer,
		middleware.Recorder{},
		usecase.Mailboxes{
			ContactTo:        cfg.Email.ContactTo,
			ContactFrom:      cfg.Email.ContactFrom,
			ClientFrom:       cfg.Email.ClientFrom,
			ReplyToSubmitter: cfg.Email.ReplyToSubmitter,
		},
		logger,
	)
	submitInquiryUC.SendTimeout = cfg.Email.SendTimeout

	// 3. Handlers
	app := &application{
		contactHandler: handlers.NewContactHandler(submitInquiryUC, logger),
		healthHandler:  handlers.NewHealthHandler(cfg.Email.Provider, cfg.Version),
		pageHandler: handlers.NewPageHandler(web.ContactData{
			SiteName:     cfg.Site.Name,
			SiteURL:      cfg.Site.URL,
			ContactEmail: cfg.Email.ContactTo,
			BrandColor:   cfg.Site.BrandColor,
		}, logger),
		rateLimiter:    middleware.NewRateLimiter(ctx, cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, proxies),
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("email_provider", cfg.Email.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
