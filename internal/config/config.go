// Package config loads runtime configuration from defaults, an optional .env
// file, and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load returns the configured viper instance. Keys:
//
//	ADDR       listen address          (default ":8080")
//	DB_PATH    sqlite database path    (default "./data/compass.db")
//	SECRET_KEY JWT signing secret      (default is dev-only)
//	TOKEN_TTL  session token lifetime  (default 24h)
//	LOG_LEVEL  debug|info|warn|error   (default "info")
func Load() (*viper.Viper, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DB_PATH", "./data/compass.db")
	v.SetDefault("SECRET_KEY", "dev-only-secret-change-me")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat .env: %w", err)
	}

	v.AutomaticEnv()
	return v, nil
}
