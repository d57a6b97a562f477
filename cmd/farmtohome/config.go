package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	endpoint      string
	dsn           string
	redisAddress  string
	redisPassword string
	logLevel      string
	env           string
	authSecretKey string
	operatorKey   string
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// NewConfig читает флаги и переменные окружения; переменные окружения
// (в том числе из файла .env) имеют приоритет над флагами.
func NewConfig() Config {
	// Файл .env необязателен
	_ = godotenv.Load()

	var (
		endpoint      string
		dsn           string
		redisAddress  string
		redisPassword string
		logLevel      string
		env           string
		authSecretKey string
		operatorKey   string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.StringVar(&redisAddress, "r", "", "redis address for order statistics cache")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	if r := os.Getenv("REDIS_ADDRESS"); r != "" {
		redisAddress = r
	}
	redisPassword = os.Getenv("REDIS_PASSWORD")

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		authSecretKey = secret
	} else {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	operatorKey = os.Getenv("OPERATOR_KEY")
	if operatorKey == "" {
		if env == "production" {
			log.Printf("WARNING: OPERATOR_KEY isn't defined, /api/internal is disabled\n")
		} else {
			operatorKey = "development-operator-key"
		}
	}

	return Config{
		endpoint:      endpoint,
		dsn:           dsn,
		redisAddress:  redisAddress,
		redisPassword: redisPassword,
		logLevel:      logLevel,
		env:           env,
		authSecretKey: authSecretKey,
		operatorKey:   operatorKey,
	}
}
