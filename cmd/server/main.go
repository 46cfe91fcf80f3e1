// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/handler"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/metrics"
	"github.com/MKhiriev/go-rsa-verifier/internal/server"
	"github.com/MKhiriev/go-rsa-verifier/internal/service"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("verifier-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.New(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	services, err := service.NewServices(storages, cfg, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, recorder.Handler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewJournalPruner(services.VerifierService, cfg.Storage.JournalRetention, cfg.Workers.PruneInterval, log),
	)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		background.Run(ctx)
	}()

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("starting server")
	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
		<-workersDone
		os.Exit(1)
	}

	<-workersDone
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
