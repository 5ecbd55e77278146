package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisHoldDB     int    `mapstructure:"REDIS_HOLD_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling engine knobs.
	TrailingSlotPolicy string `mapstructure:"TRAILING_SLOT_POLICY"` // "fit" or "overrun"
	SlotHoldTTLSeconds int    `mapstructure:"SLOT_HOLD_TTL_SECONDS"`
	ReminderLeadMin    int    `mapstructure:"REMINDER_LEAD_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_HOLD_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TRAILING_SLOT_POLICY", "fit")
	viper.SetDefault("SLOT_HOLD_TTL_SECONDS", 300)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
