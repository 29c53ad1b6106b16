package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger     `mapstructure:"logger"`
	API        API        `mapstructure:"api"`
	Session    Session    `mapstructure:"session"`
	Cache      Cache      `mapstructure:"cache"`
	MockServer MockServer `mapstructure:"mock_server"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API configures the connection to the stock-management platform gateway.
type API struct {
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
}

type Session struct {
	DBPath string `mapstructure:"db_path"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type MockServer struct {
	Port int `mapstructure:"port"`
}

type Scheduler struct {
	CronExpression  string        `mapstructure:"cron_expression"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
	ScannerCount    int           `mapstructure:"scanner_count"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("api.max_request_per_min", 60)
	viper.SetDefault("session.db_path", ".stock-backtest/session.db")
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("mock_server.port", 8080)
	viper.SetDefault("scheduler.cron_expression", "*/5 * * * *")
	viper.SetDefault("scheduler.timeout_duration", time.Minute)
	viper.SetDefault("scheduler.scanner_count", 10)
}
