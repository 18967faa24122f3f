package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/NC-GuesthouseService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Guesthouse GuesthouseConfig `toml:"guesthouse"`
}

// ServerConfig настройки HTTP-сервера
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

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GuesthouseConfig настройки гостевого дома
type GuesthouseConfig struct {
	Rooms []RoomConfig `toml:"rooms"`
}

// RoomConfig описание комнаты в конфигурации
type RoomConfig struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Capacity int    `toml:"capacity"`
}

// Load читает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
// Значения перекрываются содержимым TOML-файла.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "nc-guesthouse-service",
		},
		Guesthouse: GuesthouseConfig{
			// Три комнаты гостевого дома по умолчанию
			Rooms: []RoomConfig{
				{ID: 1, Name: "Chambre Commit", Capacity: domain.DefaultRoomCapacity},
				{ID: 2, Name: "Chambre Push", Capacity: domain.DefaultRoomCapacity},
				{ID: 3, Name: "Chambre Review", Capacity: domain.DefaultRoomCapacity},
			},
		},
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}

	if len(c.Guesthouse.Rooms) == 0 {
		return fmt.Errorf("config: at least one room must be configured")
	}

	seen := make(map[int64]struct{}, len(c.Guesthouse.Rooms))
	for _, room := range c.Guesthouse.Rooms {
		if room.ID <= 0 {
			return fmt.Errorf("config: room id must be positive, got %d", room.ID)
		}
		if _, ok := seen[room.ID]; ok {
			return fmt.Errorf("config: duplicate room id %d", room.ID)
		}
		seen[room.ID] = struct{}{}

		if room.Name == "" {
			return fmt.Errorf("config: room %d has empty name", room.ID)
		}
		if room.Capacity <= 0 {
			return fmt.Errorf("config: room %d has invalid capacity %d", room.ID, room.Capacity)
		}
	}

	return nil
}
