package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string
	TokenTTL  time.Duration

	// Окно актуальности смс кода
	OTPTTL time.Duration
	// Таймаут обращения к смс-провайдеру
	SMSTimeout time.Duration

	// Twilio credentials; если не заданы, коды пишутся в лог
	SMSAccountSID string
	SMSAuthToken  string
	SMSFromNumber string

	Development bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8000"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "referral_auth"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:      getDurationEnv("TOKEN_TTL", 24*time.Hour),
		OTPTTL:        getDurationEnv("OTP_TTL", 300*time.Second),
		SMSTimeout:    getDurationEnv("SMS_TIMEOUT", 10*time.Second),
		SMSAccountSID: getEnv("SMS_CID", ""),
		SMSAuthToken:  getEnv("SMS_TOKEN", ""),
		SMSFromNumber: getEnv("SMS_NUMBER", ""),
		Development:   getBoolEnv("DEVELOPMENT", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration in %s: %q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
