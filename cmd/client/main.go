// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-rsa-verifier/internal/client"
	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

const logFile = "verifier-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("verifier-client", logFile)
	log.Info().Str("build", buildInfo.BuildVersion()).Msg("starting client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
	}
}
