package main

import (
	"fmt"

	"github.com/MKhiriev/go-shard-keeper/internal/config"
	"github.com/MKhiriev/go-shard-keeper/internal/device"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shard-device")
	cfg, err := config.GetDeviceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	app, err := device.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init device app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("device run error")
	}
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
