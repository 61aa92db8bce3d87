package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Port        string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	CORSOrigins []string
}

// Load reads a .env file if one exists and then the environment, applying
// defaults where applicable.
//
// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=asharma DBPWD=secret go run main.go
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getenvDefault("PORT", "8080"),
		DBUser:      os.Getenv("DBUSER"),
		DBPassword:  os.Getenv("DBPWD"),
		DBHost:      getenvDefault("DBHOST", "localhost"),
		DBName:      getenvDefault("DBNAME", "reminders"),
		CORSOrigins: splitOrigins(getenvDefault("CORS_ORIGIN", "http://localhost:5173")),
	}
}

// DSN builds the MySQL data source name. parseTime makes the driver scan
// DATETIME columns into time.Time values.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBName)
}

// splitOrigins parses a comma-separated list of allowed origins.
func splitOrigins(value string) []string {
	var origins []string
	for _, part := range strings.Split(value, ",") {
		if origin := strings.TrimRight(strings.TrimSpace(part), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}
