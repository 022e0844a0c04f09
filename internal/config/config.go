package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	AuthMode      string   `mapstructure:"AUTH_MODE"`
	JWTSigningKey string   `mapstructure:"JWT_SIGNING_KEY"`
	SessionTTLMin int      `mapstructure:"SESSION_TTL_MIN"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
	BasePath      string   `mapstructure:"BASE_PATH"`
	DemoPatients  int      `mapstructure:"DEMO_PATIENTS"`
	DemoDoctors   int      `mapstructure:"DEMO_DOCTORS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("AUTH_MODE", "") // auto-detect: "" -> inferred from ENV
	v.SetDefault("SESSION_TTL_MIN", 480)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEMO_PATIENTS", 0)
	v.SetDefault("DEMO_DOCTORS", 0)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("AUTH_MODE")
	v.BindEnv("JWT_SIGNING_KEY")
	v.BindEnv("SESSION_TTL_MIN")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("BASE_PATH")
	v.BindEnv("DEMO_PATIENTS")
	v.BindEnv("DEMO_DOCTORS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() {
		log.Println("WARNING: ============================================================")
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: Demo auth is active — tokenless requests run as admin.")
		log.Println("WARNING: Do NOT use this configuration in production.")
		log.Println("WARNING: Set ENV=production and JWT_SIGNING_KEY for production.")
		log.Println("WARNING: ============================================================")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ResolvedAuthMode returns the effective auth mode. If AUTH_MODE is explicitly
// set, it is returned. Otherwise, the mode is inferred:
//   - ENV=development → "demo" (tokenless requests run as the default admin)
//   - Otherwise       → "credentials" (login against the registered-user table)
func (c *Config) ResolvedAuthMode() string {
	if c.AuthMode != "" {
		return c.AuthMode
	}
	if c.IsDev() {
		return "demo"
	}
	return "credentials"
}

// Validate checks that the configuration is safe to run. Outside demo mode
// a signing key must be set so session tokens cannot be forged.
func (c *Config) Validate() error {
	mode := c.ResolvedAuthMode()
	if mode != "demo" && mode != "credentials" {
		return fmt.Errorf("AUTH_MODE must be \"demo\" or \"credentials\", got %q", mode)
	}
	if mode == "credentials" && c.JWTSigningKey == "" {
		return fmt.Errorf(
			"JWT_SIGNING_KEY must be set when AUTH_MODE is \"credentials\" (current ENV=%q). "+
				"Refusing to start without a token signing key. "+
				"Use AUTH_MODE=demo for a keyless demo deployment", c.Env)
	}
	if c.SessionTTLMin <= 0 {
		return fmt.Errorf("SESSION_TTL_MIN must be positive, got %d", c.SessionTTLMin)
	}
	if c.DemoPatients < 0 || c.DemoDoctors < 0 {
		return fmt.Errorf("demo dataset sizes cannot be negative")
	}
	return nil
}
