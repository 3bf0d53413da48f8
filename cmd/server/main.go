package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-kit/log/level"

	"github.com/prajwalbharadwajbm/donatetracker/internal/cache"
	"github.com/prajwalbharadwajbm/donatetracker/internal/config"
	"github.com/prajwalbharadwajbm/donatetracker/internal/endpoint"
	"github.com/prajwalbharadwajbm/donatetracker/internal/logger"
	"github.com/prajwalbharadwajbm/donatetracker/internal/metrics"
	"github.com/prajwalbharadwajbm/donatetracker/internal/middleware"
	"github.com/prajwalbharadwajbm/donatetracker/internal/remote"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
	"github.com/prajwalbharadwajbm/donatetracker/internal/transport"
)

const VERSION = "1.0.0"

func init() {
	config.LoadConfigs()
}

func main() {
	log := logger.New(logger.Config{
		Service: "donatetracker",
		Version: VERSION,
	})

	promMetrics := metrics.NewPrometheusMetrics()

	cacheCfg := config.GetCacheConfig()
	appCache, err := cache.NewHybridCache(cacheCfg)
	if err != nil {
		level.Error(log).Log("msg", "failed to initialize cache", "error", err)
		return
	}

	remoteCfg := config.AppConfigInstance.RemoteConfig
	client := remote.NewClient(remote.Config{
		BaseURL: remoteCfg.BaseURL,
		AnonKey: remoteCfg.AnonKey,
		Timeout: remoteCfg.Timeout,
	})

	var source service.CampaignSource = client
	source = remote.NewInstrumentedSource(source, promMetrics)
	source = cache.NewCachedSource(source, appCache, cacheCfg.DefaultTTL)

	serviceCfg := config.AppConfigInstance.ServiceConfig
	var svc service.CampaignService = service.NewReconciler(source, service.Config{
		SeedFallback:    serviceCfg.SeedFallback,
		DefaultImageURL: serviceCfg.DefaultImageURL,
	})
	// Metrics middleware wraps the reconciler directly so it can observe
	// the offline flag; logging wraps outermost.
	svc = middleware.NewServiceMetricsMiddleware(promMetrics)(svc)
	svc = middleware.NewLoggingMiddleware(log)(svc)

	// Warm the collection before serving. A failed load is not fatal:
	// it either fell back to the seed collection or will be retried on
	// the first request.
	startupCtx, cancel := context.WithTimeout(context.Background(), remoteCfg.Timeout)
	if err := svc.Reload(startupCtx); err != nil {
		level.Warn(log).Log("msg", "initial campaign load failed", "error", err)
	}
	cancel()

	endpoints := endpoint.MakeCampaignEndpoints(svc)
	handler := transport.NewHTTPHandler(endpoints, log)

	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware(promMetrics)
	handler = requestIDMiddleware.Middleware(metricsMiddleware.Middleware(handler))

	port := config.AppConfigInstance.GeneralConfig.Port
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	level.Info(log).Log("msg", "starting server", "port", port)
	if err := srv.ListenAndServe(); err != nil {
		level.Error(log).Log("msg", "failed to serve http server", "error", err)
	}
}
