package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"restaurant-bot/store/gormstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.SeedOnStart)
	assert.Empty(t, cfg.Events.Brokers)
	assert.Equal(t, "http://localhost:5000", cfg.Client.APIURL)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}},
		{name: "missing port", modify: func(c *Config) { c.Server.Port = " " }, wantErr: true},
		{name: "bad gin mode", modify: func(c *Config) { c.Server.Mode = "prod" }, wantErr: true},
		{name: "unknown driver", modify: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: true},
		{name: "sqlite without path", modify: func(c *Config) { c.Database.Path = "" }, wantErr: true},
		{name: "mongo", modify: func(c *Config) { c.Database.Driver = DriverMongo }},
		{name: "mongo without database", modify: func(c *Config) {
			c.Database.Driver = DriverMongo
			c.Database.MongoDatabase = ""
		}, wantErr: true},
		{name: "brokers without topic", modify: func(c *Config) {
			c.Events.Brokers = []string{"localhost:9092"}
			c.Events.Topic = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "8080"
  static_dir: ./public
database:
  driver: mongo
  mongo_database: food
  seed_on_start: false
events:
  brokers: ["k1:9092", "k2:9092"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Server.StaticDir)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "food", cfg.Database.MongoDatabase)
	assert.False(t, cfg.Database.SeedOnStart)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)

	// untouched sections keep their defaults
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.MongoURI)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"PORT":          "9000",
		"GIN_MODE":      "release",
		"DB_PATH":       "/tmp/x.db",
		"LOG_LEVEL":     "debug",
		"KAFKA_BROKERS": " a:9092, ,b:9092 ",
		"SEED_ON_START": "no",
		"API_URL":       "http://api:5000",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Events.Brokers)
	assert.False(t, cfg.Database.SeedOnStart)
	assert.Equal(t, "http://api:5000", cfg.Client.APIURL)
}

func TestApplyEnvBadBool(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv(envMap(map[string]string{"SEED_ON_START": "maybe"})))
}

func TestLoaderLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"7000\"\nlogging:\n  level: warn\n"), 0o644))

	l := NewLoader(nil)
	l.getenv = envMap(map[string]string{"PORT": "7100"})

	cfg, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Server.Port, "environment overrides file")
	assert.Equal(t, "warn", cfg.Logging.Level, "file overrides defaults")
}

func TestLoaderExplicitMissingFile(t *testing.T) {
	l := NewLoader(nil)
	l.getenv = envMap(nil)
	_, err := l.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoaderRejectsInvalidEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	l := NewLoader(nil)
	l.getenv = envMap(map[string]string{"DB_DRIVER": "oracle"})
	_, err := l.Load(path)
	assert.Error(t, err)
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "bot.db")

	s, err := cfg.OpenStore()
	require.NoError(t, err)
	defer s.Close(context.Background())

	assert.IsType(t, &gormstore.Store{}, s)
	assert.NoError(t, s.Ping(context.Background()))
}
