package config

const EnvPrefix = "dashboard"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

const (
	EnvAppEnv        = "DASHBOARD_APP_ENV"
	EnvPort          = "DASHBOARD_APP_PORT"
	EnvLogLevel      = "DASHBOARD_LOG_LEVEL"
	EnvDatasetSource = "DASHBOARD_DATASET_SOURCE"
	EnvDatasetPath   = "DASHBOARD_DATASET_PATH"
	EnvDatasetTable  = "DASHBOARD_DATASET_TABLE"
)
