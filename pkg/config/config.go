package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	HTTP    HTTPConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Dataset.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DASHBOARD_APP_ENV" required:"true"`
	Port         string `envconfig:"DASHBOARD_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DASHBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DASHBOARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DatasetConfig struct {
	// Source selects where the event log is read from: csv or sqlite.
	Source string `envconfig:"DASHBOARD_DATASET_SOURCE" default:"csv"`
	Path   string `envconfig:"DASHBOARD_DATASET_PATH" default:"ai_solutions_web_log.csv"`
	Table  string `envconfig:"DASHBOARD_DATASET_TABLE" default:"events"`
}

func (d DatasetConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(d.Source)) {
	case SourceCSV, SourceSQLite:
		return nil
	}
	return fmt.Errorf("%s must be one of %q, %q", EnvDatasetSource, SourceCSV, SourceSQLite)
}

// IsSQLite reports whether the dataset is read from a SQLite file.
func (d DatasetConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(d.Source), SourceSQLite)
}

type HTTPConfig struct {
	AllowedOrigins []string `envconfig:"DASHBOARD_HTTP_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
