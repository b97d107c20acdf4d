package config

import "time"

// SummarizerConfig содержит настройки внешнего сервиса суммаризации.
// BaseURL позволяет использовать любой OpenAI-совместимый endpoint.
type SummarizerConfig struct {
	APIKey  string        `yaml:"api_key" env:"NOTES_SUMMARIZER_API_KEY" env-default:""`
	BaseURL string        `yaml:"base_url" env:"NOTES_SUMMARIZER_BASE_URL" env-default:""`
	Model   string        `yaml:"model" env:"NOTES_SUMMARIZER_MODEL" env-default:"gpt-4o-mini"`
	Timeout time.Duration `yaml:"timeout" env:"NOTES_SUMMARIZER_TIMEOUT" env-default:"60s"`
}
