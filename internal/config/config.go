package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For duration parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // HTTP listening port
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	JWTSecret     string        // JWT signing secret
	JWTExpiresIn  time.Duration // Token lifetime
	CORSOrigin    string        // Allowed CORS origin, empty disables CORS
	MediaDir      string        // Directory for uploaded media
	RedisAddr     string        // Redis server address
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	AdminEmail    string        // Bootstrap admin email
	AdminName     string        // Bootstrap admin display name
	AdminPassword string        // Bootstrap admin password
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getEnv("PORT", "3000"),                       // HTTP port, default 3000
		DBUser:        os.Getenv("DB_USER"),                         // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),               // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                    // Database port
		DBName:        os.Getenv("DB_NAME"),                         // Database name
		JWTSecret:     os.Getenv("JWT_SECRET"),                      // JWT signing secret
		JWTExpiresIn:  getDuration("JWT_EXPIRES_IN", 7*24*time.Hour), // Token lifetime, default 7 days
		CORSOrigin:    os.Getenv("CORS_ORIGIN"),                     // CORS origin, empty disables
		MediaDir:      getEnv("MEDIA_DIR", "./media"),               // Media directory
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),       // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:       redisDB,                                      // Redis database number
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),                     // Bootstrap admin email
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),        // Bootstrap admin name
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),                  // Bootstrap admin password
		IsProd:        os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the loaded settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the value of an environment variable or a fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses an environment variable as a duration or returns a fallback
func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
