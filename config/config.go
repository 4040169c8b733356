// Package config loads restaurant-bot settings and opens the configured store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Events   EventsConfig   `yaml:"events"`
	Client   ClientConfig   `yaml:"client"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// Mode is the gin mode: debug, release or test
	Mode string `yaml:"mode"`
	// StaticDir holds the HTML pages; empty disables page routes
	StaticDir       string        `yaml:"static_dir"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// Path is the SQLite file
	Path          string        `yaml:"path"`
	MongoURI      string        `yaml:"mongo_uri"`
	MongoDatabase string        `yaml:"mongo_database"`
	Timeout       time.Duration `yaml:"timeout"`
	SeedOnStart   bool          `yaml:"seed_on_start"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EventsConfig enables Kafka publishing when Brokers is non-empty
type EventsConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type ClientConfig struct {
	APIURL string `yaml:"api_url"`
	// StatePath is the JSON file holding the CLI cart and selected restaurant
	StatePath string        `yaml:"state_path"`
	Timeout   time.Duration `yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "5000",
			Mode:            "debug",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:        DriverSQLite,
			Path:          "restaurant_bot.db",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "restaurant-bot",
			Timeout:       10 * time.Second,
			SeedOnStart:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Events: EventsConfig{
			Topic: "restaurant-bot.events",
		},
		Client: ClientConfig{
			APIURL:    "http://localhost:5000",
			StatePath: defaultStatePath(),
			Timeout:   15 * time.Second,
		},
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".restaurant-bot.json"
	}
	return filepath.Join(home, ".config", "restaurant-bot", "session.json")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case DriverMongo:
		if c.Database.MongoURI == "" || c.Database.MongoDatabase == "" {
			return fmt.Errorf("database.mongo_uri and database.mongo_database are required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	if len(c.Events.Brokers) > 0 && c.Events.Topic == "" {
		return fmt.Errorf("events.topic is required when brokers are set")
	}
	return nil
}

// LoadFromFile reads a YAML file over the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides fields from environment variables that are set
func (c *Config) ApplyEnv(getenv func(string) string) error {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	set("PORT", &c.Server.Port)
	set("GIN_MODE", &c.Server.Mode)
	set("STATIC_DIR", &c.Server.StaticDir)
	set("DB_DRIVER", &c.Database.Driver)
	set("DB_PATH", &c.Database.Path)
	set("MONGODB_URI", &c.Database.MongoURI)
	set("MONGODB_DATABASE", &c.Database.MongoDatabase)
	set("LOG_LEVEL", &c.Logging.Level)
	set("LOG_FORMAT", &c.Logging.Format)
	set("KAFKA_TOPIC", &c.Events.Topic)
	set("API_URL", &c.Client.APIURL)

	if v := strings.TrimSpace(getenv("KAFKA_BROKERS")); v != "" {
		c.Events.Brokers = splitList(v)
	}
	if v := strings.TrimSpace(getenv("SEED_ON_START")); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			c.Database.SeedOnStart = true
		case "0", "false", "no":
			c.Database.SeedOnStart = false
		default:
			return fmt.Errorf("SEED_ON_START: invalid boolean %q", v)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
