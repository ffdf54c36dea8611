package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Sandbox API
	Port          string        `mapstructure:"PORT"`
	DatabasePath  string        `mapstructure:"DATABASE_PATH"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
	AdminUsername string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string        `mapstructure:"ADMIN_PASSWORD"`

	// Admin console
	APIURL         string        `mapstructure:"API_URL"`
	APIToken       string        `mapstructure:"API_TOKEN"`
	APIUsername    string        `mapstructure:"API_USERNAME"`
	APIPassword    string        `mapstructure:"API_PASSWORD"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	LogLevel                      string `mapstructure:"LOG_LEVEL"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

var keys = []string{
	"PORT",
	"DATABASE_PATH",
	"JWT_SECRET",
	"TOKEN_TTL",
	"ADMIN_USERNAME",
	"ADMIN_PASSWORD",
	"API_URL",
	"API_TOKEN",
	"API_USERNAME",
	"API_PASSWORD",
	"REQUEST_TIMEOUT",
	"LOG_LEVEL",
	"DISCORD_BOT_TOKEN",
	"DISCORD_NOTIFICATIONS_CHANNEL_ID",
}

// LoadConfig reads the process environment, after loading a .env file in
// the working directory when there is one.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "hotel.db")
	v.SetDefault("TOKEN_TTL", "12h")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("API_URL", "http://127.0.0.1:8080/api/")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")

	for _, key := range keys {
		v.BindEnv(key)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}
