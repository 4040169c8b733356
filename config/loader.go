package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ProjectConfigFile is looked up in the working directory when no path is given
const ProjectConfigFile = "restaurant-bot.yaml"

// Loader applies settings in order: defaults, YAML file, .env, environment.
type Loader struct {
	log    *zap.SugaredLogger
	getenv func(string) string
}

func NewLoader(log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{log: log, getenv: os.Getenv}
}

// Load reads path, or ProjectConfigFile when path is empty and the file exists
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = ProjectConfigFile
	}
	fileConfig, err := LoadFromFile(path)
	switch {
	case err == nil:
		l.log.Debugw("loaded config file", "path", path)
		config = fileConfig
	case !explicit && errors.Is(err, fs.ErrNotExist):
		l.log.Debug("no config file found, using defaults")
	default:
		return nil, err
	}

	// real environment wins over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.log.Warnw("failed to load .env", "error", err)
	}

	if err := config.ApplyEnv(l.getenv); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
