package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Storage selects the blob store backend. S3 wins when a bucket is
// configured, otherwise a plain directory on disk. With neither set the
// service runs without blob storage and rejects file operations.
type Storage struct {
	DiskPath   string `env:"DISK_PATH"`
	S3Bucket   string `env:"S3_BUCKET"`
	S3Region   string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"S3_ENDPOINT"` // set for R2/MinIO style endpoints
	S3Key      string `env:"S3_KEY"`
	S3Secret   string `env:"S3_SECRET"`
}

type Config struct {
	BindAddress string   `env:"BIND_ADDRESS" envDefault:"0.0.0.0:8080"`
	TLSDomains  []string `env:"TLS_DOMAINS" envSeparator:","` // e.g. "example.com,example2.com"
	DebugMode   bool     `env:"DEBUG_MODE" envDefault:"false"`

	// Origins allowed to call the API from a browser.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,http://localhost:5175,http://localhost:8787"`

	// MySQL will be used if this is set. Needs parseTime=true in the DSN.
	MySQLDSN string `env:"MYSQL_DSN"`
	// SQLite is the fallback when MYSQL_DSN is not configured.
	SQLiteFile string `env:"SQLITE_FILE" envDefault:"webgis.db"`

	Storage Storage `envPrefix:"STORAGE_"`
}

// Read builds the process configuration from the environment. It is called
// once in main; handlers receive the result by reference and never consult
// the environment themselves.
func Read() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
