package config

import "os"

// Supported record-store backends.
const (
	BackendJSONFile = "jsonfile"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port        string
	Backend     string
	DBPath      string
	DatabaseURL string
	SQLitePath  string
	CORSOrigins string
	LogLevel    string
	Environment string

	// Deployment signals for the external video asset resolver. The API
	// never touches media bytes; these are logged at startup so operators
	// can see which source the reviewer UI is pointed at.
	VideoBasePath  string
	UseCloudVideos bool
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8001"),
		Backend:        getEnv("DB_BACKEND", BackendJSONFile),
		DBPath:         getEnv("DB_PATH", "data/validation_database.json"),
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/sign_validation"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/validation_database.db"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		VideoBasePath:  getEnv("VIDEO_BASE_PATH", "videos"),
		UseCloudVideos: getEnv("USE_CLOUD_VIDEOS", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
