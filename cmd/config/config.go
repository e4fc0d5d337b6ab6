package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port         string        `default:"8080" envconfig:"PORT"`
	ReadTimeout  time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `default:"15s" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
}

type MongoConfig struct {
	URI      string `default:"mongodb://localhost:27017" envconfig:"URI"`
	Database string `default:"ecommerce" envconfig:"DATABASE"`
}

type RedisConfig struct {
	Host            string        `envconfig:"HOST"`
	Port            int           `default:"6379" envconfig:"PORT"`
	Password        string        `envconfig:"PASSWORD"`
	DB              int           `default:"0" envconfig:"DB"`
	ProductCacheTTL time.Duration `default:"5m" envconfig:"PRODUCT_CACHE_TTL"`
}

type RabbitMQConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `default:"5672" envconfig:"PORT"`
	User     string `default:"guest" envconfig:"USER"`
	Password string `default:"guest" envconfig:"PASSWORD"`
}

type Config struct {
	Environment string `default:"development" envconfig:"ENVIRONMENT"`
	Server      ServerConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
}

// Load reads configuration from the environment, with a best-effort .env file
// for local development. Missing values fall back to the struct defaults.
func Load() *Config {
	_ = godotenv.Load()

	var c Config
	envconfig.MustProcess("APP", &c)
	return &c
}
