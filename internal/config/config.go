// Package config загружает конфигурацию сервиса из TOML-файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     Server     `toml:"server"`
	Database   Database   `toml:"database"`
	Migrations Migrations `toml:"migrations"`
	Logs       Logs       `toml:"logs"`
	Metrics    Metrics    `toml:"metrics"`
	Redis      Redis      `toml:"redis"`
	AMQP       AMQP       `toml:"amqp"`
	Auth       Auth       `toml:"auth"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MigrateDSN строка подключения для golang-migrate
func (d Database) MigrateDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Migrations настройки миграций схемы
type Migrations struct {
	Auto bool `toml:"auto"` // применять миграции при старте
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"` // пусто или "stdout" - вывод в stdout
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Redis настройки кеша календарей
type Redis struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// AMQP настройки брокера уведомлений
type AMQP struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
}

// Auth настройки доступа к административным операциям
type Auth struct {
	AdminToken string `toml:"admin_token"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database.host is required")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("config: redis.addr is required when redis is enabled")
	}
	if cfg.AMQP.Enabled && cfg.AMQP.URL == "" {
		return nil, fmt.Errorf("config: amqp.url is required when amqp is enabled")
	}

	return &cfg, nil
}
