package config

import "time"

// RedisConfig содержит настройки подключения к Redis для кэша списков заметок.
type RedisConfig struct {
	Host       string        `yaml:"host" env:"NOTES_REDIS_HOST" env-default:"0.0.0.0"`
	Port       int           `yaml:"port" env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password   string        `yaml:"password" env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB         int           `yaml:"db" env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize   int           `yaml:"pool_size" env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout    time.Duration `yaml:"timeout" env:"NOTES_REDIS_TIMEOUT" env-default:"5s"`
	ListingTTL time.Duration `yaml:"listing_ttl" env:"NOTES_REDIS_LISTING_TTL" env-default:"5m"`
	Enabled    bool          `yaml:"enabled" env:"NOTES_REDIS_ENABLED" env-default:"true"`
}
