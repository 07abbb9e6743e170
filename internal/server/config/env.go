package config

import (
	"os"
	"strings"

	"github.com/dmitrijs2005/puisi/internal/flagx"
	"github.com/joho/godotenv"
)

// loadEnvFile is a seam for tests.
var loadEnvFile = godotenv.Load

// parseEnv loads an env file and copies recognized variables into config.
//
// The file is the one given with -env; without the flag a ".env" in the
// working directory is loaded when present. Variables already set in the
// process environment win over the file.
//
// Recognized variables:
//
//	PORT               HTTP port, becomes ":PORT"
//	GRPC_HEALTH_ADDR   gRPC health bind address
//	DATABASE_URL       PostgreSQL DSN
//	JWT_SECRET         token signing secret
//	AUTH_SERVICE_URL   base URL of the auth service
//	PUISI_SERVICE_URL  base URL of the puisi service
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := loadEnvFile(path); err != nil {
			panic(err)
		}
	} else {
		_ = loadEnvFile()
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(v, ":")
	}
	setFromEnv(&config.EndpointAddrGRPCHealth, "GRPC_HEALTH_ADDR")
	setFromEnv(&config.DatabaseDSN, "DATABASE_URL")
	setFromEnv(&config.SecretKey, "JWT_SECRET")
	setFromEnv(&config.AuthServiceURL, "AUTH_SERVICE_URL")
	setFromEnv(&config.PuisiServiceURL, "PUISI_SERVICE_URL")
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
