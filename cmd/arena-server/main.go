// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// arena-server runs the battle core behind an HTTP surface with in-memory
// collaborators. Platform deployments replace the memstore wiring with real
// player-record services.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AccelByte/extend-battle-engine/pkg/arena"
	"github.com/AccelByte/extend-battle-engine/pkg/common"
	"github.com/AccelByte/extend-battle-engine/pkg/config"
	"github.com/AccelByte/extend-battle-engine/pkg/httpapi"
	"github.com/AccelByte/extend-battle-engine/pkg/memstore"
	"github.com/AccelByte/extend-battle-engine/pkg/metrics"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(common.GetEnv("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(level)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("unable to parse environment config")
	}

	shutdownTracing, err := setupTracing(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("unable to set up tracing")
	}
	defer shutdownTracing()

	catalog := memstore.NewCatalog()
	if cfg.CreatureCatalogJSON != "" {
		catalog, err = memstore.CatalogFromJSON(cfg.CreatureCatalogJSON)
		if err != nil {
			logrus.WithError(err).Fatal("unable to parse creature catalog")
		}
	}
	records := memstore.NewRecords()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	core, err := arena.New(cfg, arena.Dependencies{
		Creatures:        catalog,
		Ratings:          records,
		OutcomeWriter:    records,
		CreatureRecorder: records,
		Metrics:          metrics.NewMetrics(registry),
	})
	if err != nil {
		logrus.WithError(err).Fatal("unable to construct arena")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go core.Run(ctx)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(core, registry),
	}

	go func() {
		logrus.WithField("addr", cfg.HTTPAddr).Info("arena server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("http shutdown incomplete")
	}
}

// setupTracing wires the global tracer provider. With no Zipkin endpoint the
// provider stays local so envelope scopes still produce spans for log
// correlation.
func setupTracing(cfg *config.Config) (func(), error) {
	otel.SetTextMapPropagator(b3.New())

	if cfg.ZipkinEndpoint == "" {
		provider := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(provider)
		return func() { _ = provider.Shutdown(context.Background()) }, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinEndpoint)
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	logrus.WithField("endpoint", cfg.ZipkinEndpoint).Info("trace export enabled")
	return func() { _ = provider.Shutdown(context.Background()) }, nil
}
