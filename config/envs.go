package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
	RedisHost     string // Hostname or IP address for the Redis maze cache
	RedisPort     int    // Port number for the Redis maze cache
	RedisPassword string // Password for the Redis maze cache
	MazeCacheTTL  int    // Lifetime of cached maze paths in seconds
	MazeWidth     int    // Default maze width in blocks
	MazeHeight    int    // Default maze height in blocks
	RandomSeed    int64  // Default generation seed
	SessionTTL    int    // Idle lifetime of a guided-run session in minutes
}

// Envs holds the application's configuration loaded from environment variables.
// It is populated by Load.
var Envs Config

// Load reads the configuration into Envs.
func Load() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:        mustGetEnv("HOST_IP"),
		RESTPort:      mustGetEnvAsInt("REST_PORT"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
		RedisHost:     mustGetEnv("REDIS_HOST"),
		RedisPort:     mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		MazeCacheTTL:  getEnvAsIntWithDefault("MAZE_CACHE_TTL", 3600),
		MazeWidth:     getEnvAsIntWithDefault("TMAZE_WIDTH", 9),
		MazeHeight:    getEnvAsIntWithDefault("TMAZE_HEIGHT", 9),
		RandomSeed:    int64(getEnvAsIntWithDefault("RANDOM_SEED", 2)),
		SessionTTL:    getEnvAsIntWithDefault("SESSION_TTL", 30),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return n
}
