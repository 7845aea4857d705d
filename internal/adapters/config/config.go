package config

import (
	"github.com/joho/godotenv"
)

type CatalogConfig struct {
	Path string
}

type ConfirmConfig struct {
	// AssumeYes approves every price reduction without prompting; meant for
	// non-interactive runs.
	AssumeYes bool
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Catalog CatalogConfig
	Confirm ConfirmConfig
	Logger  LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Catalog: CatalogConfig{
			Path: getStringEnv("CATALOG_PATH", "products.json"),
		},
		Confirm: ConfirmConfig{
			AssumeYes: getBoolEnv("CONFIRM_ASSUME_YES", false),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "catalog"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
