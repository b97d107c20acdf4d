package config

import "time"

// ShutdownConfig содержит настройки корректного завершения сервиса.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"NOTES_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// GetTimeout возвращает таймаут завершения.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return s.Timeout
}
