package config

import "os"

type AppConfig struct {
	DebugMode      bool
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	KafkaConfig    *KafkaConfig
	JwtConfig      *JwtConfig
	SiteConfig     *SiteConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		PostgresConfig: NewPostgresConfig(),
		RedisConfig:    NewRedisConfig(),
		KafkaConfig:    NewKafkaConfig(),
		JwtConfig:      NewJwtConfig(),
		SiteConfig:     NewSiteConfig(),
	}
}
