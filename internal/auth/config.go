package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string    `yaml:"jwt_secret" json:"jwt_secret"`
	TokenLifetime string    `yaml:"token_lifetime" json:"token_lifetime"`
	DevUsers      []DevUser `yaml:"dev_users" json:"dev_users"`
}

// DevUser is a statically configured principal used by the development-mode
// token endpoint. Production deployments receive tokens from the external
// identity provider and leave this list empty.
type DevUser struct {
	Username string `yaml:"username" json:"username"`
	Email    string `yaml:"email" json:"email"`
	Password string `yaml:"password" json:"password"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_lifetime", "24h")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if _, statErr := os.Stat(configPath); statErr == nil {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
			// Config file not found, use defaults and environment variables
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Environment overrides for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (set JWT_SECRET or config/auth.yaml)")
	}
	if _, err := time.ParseDuration(config.TokenLifetime); err != nil {
		return nil, fmt.Errorf("invalid token_lifetime %q: %w", config.TokenLifetime, err)
	}

	return &config, nil
}

// Lifetime returns the parsed token lifetime
func (c *AuthConfig) Lifetime() time.Duration {
	d, err := time.ParseDuration(c.TokenLifetime)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
