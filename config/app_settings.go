package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type GitHubConfig struct {
	Token    string        `env:"GITHUB_TOKEN"`
	APIURL   string        `env:"GITHUB_API_URL"`
	CacheTTL time.Duration `env:"GITHUB_CACHE_TTL" envDefault:"5m"`
	Timeout  time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`
}

type SchedulerConfig struct {
	Enabled       bool `env:"APP_SCHEDULE_ENABLED" envDefault:"true"`
	CheckMinutes  int  `env:"APP_SCHEDULE_REPOSITORY_CHECK_MINUTES" envDefault:"30"`
	ActivityLimit int  `env:"APP_SCHEDULE_ACTIVITY_LIMIT" envDefault:"10"`
}

func (sc SchedulerConfig) Interval() time.Duration {
	return time.Duration(sc.CheckMinutes) * time.Minute
}

type EventsConfig struct {
	AMQPURL  string `env:"AMQP_URL"`
	Exchange string `env:"AMQP_EXCHANGE" envDefault:"events"`
}

type AdminConfig struct {
	TokenSecret string `env:"ADMIN_TOKEN_SECRET"`
}

func (ac AdminConfig) Enabled() bool {
	return ac.TokenSecret != ""
}

// Settings groups the typed, env-tagged configuration sections.
type Settings struct {
	GitHub    GitHubConfig
	Scheduler SchedulerConfig
	Events    EventsConfig
	Admin     AdminConfig
}

func LoadSettings() (*Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if settings.Scheduler.CheckMinutes < 1 {
		return nil, fmt.Errorf("APP_SCHEDULE_REPOSITORY_CHECK_MINUTES must be at least 1, got %d", settings.Scheduler.CheckMinutes)
	}
	if settings.Scheduler.ActivityLimit < 1 || settings.Scheduler.ActivityLimit > 100 {
		return nil, fmt.Errorf("APP_SCHEDULE_ACTIVITY_LIMIT must be between 1 and 100, got %d", settings.Scheduler.ActivityLimit)
	}

	return &settings, nil
}
