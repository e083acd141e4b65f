package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Products ProductsConfig
	Images   ImagesConfig
	Payment  PaymentConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  int // in minutes
	RefreshExpiry int // in days
}

type ProductsConfig struct {
	IDPrefix string // alphabetic prefix for allocated product identifiers
}

// ImagesConfig selects and configures the image reference resolver.
// Strategy is one of "file", "inline" or "gcs".
type ImagesConfig struct {
	Strategy string

	// file strategy: public base URL prepended to stored paths
	BaseURL string

	// inline strategy: directory holding the stored binaries
	Dir string

	// gcs strategy
	Bucket         string
	GoogleAccessID string
	PrivateKeyPath string
	URLExpiry      int // in minutes
}

type PaymentConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_HOST", "")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_ACCESS_EXPIRY", 15)
	viper.SetDefault("JWT_REFRESH_EXPIRY", 7)
	viper.SetDefault("PRODUCT_ID_PREFIX", "SARAL")
	viper.SetDefault("IMAGE_STRATEGY", "file")
	viper.SetDefault("IMAGE_BASE_URL", "http://localhost:8080")
	viper.SetDefault("IMAGE_DIR", "uploads")
	viper.SetDefault("IMAGE_URL_EXPIRY", 15)
	viper.SetDefault("PAYMENT_BASE_URL", "https://api.razorpay.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  viper.GetInt("JWT_ACCESS_EXPIRY"),
			RefreshExpiry: viper.GetInt("JWT_REFRESH_EXPIRY"),
		},
		Products: ProductsConfig{
			IDPrefix: viper.GetString("PRODUCT_ID_PREFIX"),
		},
		Images: ImagesConfig{
			Strategy:       viper.GetString("IMAGE_STRATEGY"),
			BaseURL:        viper.GetString("IMAGE_BASE_URL"),
			Dir:            viper.GetString("IMAGE_DIR"),
			Bucket:         viper.GetString("IMAGE_GCS_BUCKET"),
			GoogleAccessID: viper.GetString("IMAGE_GCS_ACCESS_ID"),
			PrivateKeyPath: viper.GetString("IMAGE_GCS_PRIVATE_KEY_PATH"),
			URLExpiry:      viper.GetInt("IMAGE_URL_EXPIRY"),
		},
		Payment: PaymentConfig{
			BaseURL:   viper.GetString("PAYMENT_BASE_URL"),
			KeyID:     viper.GetString("PAYMENT_KEY_ID"),
			KeySecret: viper.GetString("PAYMENT_KEY_SECRET"),
		},
	}
}
