package config

import (
	"os"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI         string
	DBName      string
	TLSInsecure bool
}

type CORSConfig struct {
	Origins             []string
	SupportsCredentials bool
}

type LogConfig struct {
	Level string
}

// Load returns application configuration loaded from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnvWithDefault("PORT", "8000"),
		},
		Mongo: MongoConfig{
			URI:         getEnvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName:      getEnvWithDefault("MONGODB_DB_NAME", "mf_data"),
			TLSInsecure: os.Getenv("MONGODB_TLS_INSECURE") == "true",
		},
		CORS: CORSConfig{
			Origins:             strings.Split(getEnvWithDefault("CORS_ORIGINS", "http://localhost:4200"), ","),
			SupportsCredentials: true,
		},
		Log: LogConfig{
			Level: getEnvWithDefault("LOG_LEVEL", "info"),
		},
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
