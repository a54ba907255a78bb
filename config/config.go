package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dbEnvKeys maps DSN parameters to the environment variables that supply
// them. Every one of these must be set for the service to start.
var dbEnvKeys = map[string]string{
	"host":     "DB_HOST",
	"port":     "DB_PORT",
	"user":     "DB_USER",
	"password": "DB_PASSWORD",
	"dbname":   "DB_NAME",
}

// dsnParamOrder keeps the assembled DSN stable for logging and debugging.
var dsnParamOrder = []string{"host", "port", "user", "password", "dbname"}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Running without .env file, using process environment")
	}
}

// ConnectDB opens the postgres connection described by the DB_* environment
// variables. Missing configuration is fatal at startup rather than at first
// query.
func ConnectDB() *gorm.DB {
	LoadEnv()

	params := make([]string, 0, len(dsnParamOrder)+1)
	for _, param := range dsnParamOrder {
		value := os.Getenv(dbEnvKeys[param])
		if value == "" {
			log.Fatalf("Missing required environment variable %s", dbEnvKeys[param])
		}
		params = append(params, param+"="+value)
	}
	params = append(params, "sslmode="+envOr("DB_SSLMODE", "disable"))
	dsn := strings.Join(params, " ")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	log.Printf("Connected to database %s on %s", os.Getenv("DB_NAME"), os.Getenv("DB_HOST"))
	return db
}

// JWTSecret returns the secret used to verify session tokens issued by the
// auth service. Must match the signing key configured there.
func JWTSecret() []byte {
	return []byte(envOr("JWT_SECRET", "your_jwt_secret"))
}

// Port returns the HTTP listen address.
func Port() string {
	return ":" + envOr("PORT", "8003")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
