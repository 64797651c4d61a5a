// Package config loads the runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port      string `mapstructure:"PORT"`
	GinMode   string `mapstructure:"GIN_MODE"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// SQLite is used unless DBHost is set
	DataDir    string `mapstructure:"DATA_DIR"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	TokenLifetime int    `mapstructure:"TOKEN_LIFETIME_HOURS"`

	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool   `mapstructure:"ENABLE_PPROF"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort string `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	AvatarBucket string `mapstructure:"AVATAR_BUCKET"`

	// Cron expression of the nightly derived-state sweep
	SweepSchedule string `mapstructure:"SWEEP_SCHEDULE"`
}

// Load reads the configuration from environment variables, applying
// defaults for everything that is safe to default.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_LIFETIME_HOURS", 24)
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("AVATAR_BUCKET", "")
	v.SetDefault("SWEEP_SCHEDULE", "0 3 * * *")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// PostgresDSN builds the postgres connection string. Only valid when
// DBHost is set.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}
