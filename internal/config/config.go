package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	LineAuth       LineAuthConfig       `toml:"line_auth"`
	SubjectService SubjectServiceConfig `toml:"subject_service"`
	HolidayService HolidayServiceConfig `toml:"holiday_service"`
	Sessions       SessionsConfig       `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// LineAuthConfig настройки проверки LINE id token
type LineAuthConfig struct {
	VerifyURL string `toml:"verify_url"`
	ChannelID string `toml:"channel_id"`
	Timeout   int    `toml:"timeout"` // секунды
}

// SubjectServiceConfig настройки webhook справочника предметов
type SubjectServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// HolidayServiceConfig настройки holiday-webhook (создание записи + напоминания)
type HolidayServiceConfig struct {
	SubmitURL    string `toml:"submit_url"`
	RemindersURL string `toml:"reminders_url"`
	Timeout      int    `toml:"timeout"` // секунды
}

// SessionsConfig настройки хранилища сессий формы
type SessionsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.LineAuth.VerifyURL == "" {
		return fmt.Errorf("config: line_auth.verify_url is required")
	}
	if c.LineAuth.ChannelID == "" {
		return fmt.Errorf("config: line_auth.channel_id is required")
	}
	if c.SubjectService.URL == "" {
		return fmt.Errorf("config: subject_service.url is required")
	}
	if c.HolidayService.SubmitURL == "" {
		return fmt.Errorf("config: holiday_service.submit_url is required")
	}
	if c.HolidayService.RemindersURL == "" {
		return fmt.Errorf("config: holiday_service.reminders_url is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.LineAuth.Timeout <= 0 {
		c.LineAuth.Timeout = 5
	}
	if c.SubjectService.Timeout <= 0 {
		c.SubjectService.Timeout = 10
	}
	if c.HolidayService.Timeout <= 0 {
		c.HolidayService.Timeout = 10
	}
	if c.Sessions.TTLMinutes <= 0 {
		c.Sessions.TTLMinutes = 30
	}
	if c.Sessions.CleanupIntervalMinutes <= 0 {
		c.Sessions.CleanupIntervalMinutes = 5
	}
}
