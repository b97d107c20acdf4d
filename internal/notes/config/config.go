// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"

	"briefnote/pkg/config"
)

// ServiceName - имя сервиса для логирования конфигурации.
const ServiceName = "briefnote"

// Config объединяет все настройки сервиса заметок.
type Config struct {
	Postgres   PostgresConfig
	Redis      RedisConfig
	HTTP       HTTPConfig
	JWT        JWTConfig
	Summarizer SummarizerConfig
	Logging    LoggingConfig
	Shutdown   ShutdownConfig
}

// Load загружает конфигурацию сервиса заметок.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := config.Load[Config](ctx, ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes service config: %w", err)
	}
	return cfg, nil
}
