package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VidsSkids/epitrello-backend/internal/platform/envutil"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type Config struct {
	HTTPAddr        string
	Environment     string
	Version         string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// fileConfig mirrors Config for the optional yaml overlay. Values from the
// file win over environment defaults; either source alone is enough.
type fileConfig struct {
	HTTPAddr        string `yaml:"http_addr"`
	Environment     string `yaml:"environment"`
	JWTSecretKey    string `yaml:"jwt_secret_key"`
	AccessTokenTTL  int    `yaml:"access_token_ttl"`
	RefreshTokenTTL int    `yaml:"refresh_token_ttl"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		HTTPAddr:        envutil.Str("HTTP_ADDR", ":8080"),
		Environment:     envutil.Str("APP_ENV", "development"),
		Version:         envutil.Str("APP_VERSION", "dev"),
		JWTSecretKey:    envutil.Str("JWT_SECRET_KEY", ""),
		AccessTokenTTL:  time.Duration(envutil.Int("ACCESS_TOKEN_TTL", 3600)) * time.Second,
		RefreshTokenTTL: time.Duration(envutil.Int("REFRESH_TOKEN_TTL", 86400)) * time.Second,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if fc.HTTPAddr != "" {
			cfg.HTTPAddr = fc.HTTPAddr
		}
		if fc.Environment != "" {
			cfg.Environment = fc.Environment
		}
		if fc.JWTSecretKey != "" {
			cfg.JWTSecretKey = fc.JWTSecretKey
		}
		if fc.AccessTokenTTL > 0 {
			cfg.AccessTokenTTL = time.Duration(fc.AccessTokenTTL) * time.Second
		}
		if fc.RefreshTokenTTL > 0 {
			cfg.RefreshTokenTTL = time.Duration(fc.RefreshTokenTTL) * time.Second
		}
		log.Info("loaded config overlay", "path", path)
	}

	if cfg.JWTSecretKey == "" {
		if cfg.Environment == "development" {
			cfg.JWTSecretKey = "defaultsecret"
			log.Warn("JWT_SECRET_KEY not set, using development default")
		} else {
			return Config{}, fmt.Errorf("JWT_SECRET_KEY is required outside development")
		}
	}
	return cfg, nil
}
