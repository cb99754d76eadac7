package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/internal/service"
	"github.com/Sibghat34/shippo-api/internal/shippo"
	httpt "github.com/Sibghat34/shippo-api/internal/transport/http"
	"github.com/Sibghat34/shippo-api/pkg/logger"
	"github.com/Sibghat34/shippo-api/pkg/metric"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	provider := shippo.NewClient(
		&cfg.Shippo,
		log.With("component", "shippo client"),
		metrics.Upstream(),
	)

	labelService := service.NewLabelService(
		provider,
		&cfg.Label,
		log.With("component", "label service"),
		metrics.Label(),
	)

	initHTTPServer(ctx, eg, &cfg.HTTP, labelService, log, metrics)

	return waitForShutdown(eg)
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		if err := metricsServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("app.initMetrics: shutdown: %w", err)
		}
		return nil
	})

	return metrics
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	labelService *service.LabelService,
	log logger.Logger,
	metrics metric.Factory,
) {
	httpServer := httpt.NewHTTPServer(
		httpt.NewLabelHandler(labelService, cfg, log.With("component", "http handler"), metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
